package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crm/database"
	"crm/funnel"
	"crm/schemas"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type Stages struct {
	coll *mongo.Collection
}

func NewStages() *Stages {
	return &Stages{coll: database.Collection(database.COLLECTION_STAGES)}
}

func notDeleted() bson.E {
	return bson.E{Key: "deleted", Value: bson.D{{Key: "$ne", Value: true}}}
}

func (s *Stages) Get(ctx context.Context, id bson.ObjectID) (*schemas.Stage, error) {
	filter := bson.D{{Key: "_id", Value: id}, notDeleted()}

	stage := &schemas.Stage{}
	err := s.coll.FindOne(ctx, filter).Decode(stage)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("etapa: %w", funnel.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("falha ao buscar etapa: %w", err)
	}
	return stage, nil
}

func (s *Stages) ListByPipeline(ctx context.Context, pipelineID bson.ObjectID) ([]schemas.Stage, error) {
	filter := bson.D{{Key: "pipeline_id", Value: pipelineID}, notDeleted()}
	opts := options.Find().SetSort(bson.D{{Key: "ordem", Value: 1}})

	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar etapas: %w", err)
	}
	defer cursor.Close(ctx)

	stages := []schemas.Stage{}
	if err := cursor.All(ctx, &stages); err != nil {
		return nil, fmt.Errorf("falha ao decodificar etapas: %w", err)
	}
	return stages, nil
}

func (s *Stages) Insert(ctx context.Context, stage *schemas.Stage) error {
	result, err := s.coll.InsertOne(ctx, stage)
	if err != nil {
		return fmt.Errorf("falha ao inserir etapa: %w", err)
	}
	stage.ID = result.InsertedID.(bson.ObjectID)
	return nil
}

func (s *Stages) ShiftOrdem(ctx context.Context, pipelineID, excludeID bson.ObjectID, lo, hi, delta int) error {
	if lo > hi {
		return nil
	}

	filter := bson.D{
		{Key: "pipeline_id", Value: pipelineID},
		{Key: "_id", Value: bson.D{{Key: "$ne", Value: excludeID}}},
		{Key: "ordem", Value: bson.D{{Key: "$gte", Value: lo}, {Key: "$lte", Value: hi}}},
		notDeleted(),
	}
	update := bson.D{
		{Key: "$inc", Value: bson.D{{Key: "ordem", Value: delta}}},
		{Key: "$set", Value: bson.D{{Key: "updated_at", Value: time.Now()}}},
	}

	if _, err := s.coll.UpdateMany(ctx, filter, update); err != nil {
		return fmt.Errorf("falha ao deslocar etapas: %w", err)
	}
	return nil
}

func (s *Stages) SetOrdem(ctx context.Context, id bson.ObjectID, ordem int) error {
	filter := bson.D{{Key: "_id", Value: id}, notDeleted()}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "ordem", Value: ordem},
		{Key: "updated_at", Value: time.Now()},
	}}}

	result, err := s.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("falha ao atualizar ordem da etapa: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("etapa: %w", funnel.ErrNotFound)
	}
	return nil
}

func (s *Stages) SoftDelete(ctx context.Context, id bson.ObjectID) error {
	filter := bson.D{{Key: "_id", Value: id}, notDeleted()}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "deleted", Value: true},
		{Key: "updated_at", Value: time.Now()},
	}}}

	result, err := s.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("falha ao excluir etapa: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("etapa: %w", funnel.ErrNotFound)
	}
	return nil
}

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

type Pipelines struct {
	coll *mongo.Collection
}

func NewPipelines() *Pipelines {
	return &Pipelines{coll: database.Collection(database.COLLECTION_PIPELINES)}
}

func (p *Pipelines) Get(ctx context.Context, id bson.ObjectID) (*schemas.Pipeline, error) {
	filter := bson.D{{Key: "_id", Value: id}, notDeleted()}

	pipeline := &schemas.Pipeline{}
	err := p.coll.FindOne(ctx, filter).Decode(pipeline)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("funil: %w", funnel.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("falha ao buscar funil: %w", err)
	}
	return pipeline, nil
}

func (p *Pipelines) Insert(ctx context.Context, pipeline *schemas.Pipeline) error {
	result, err := p.coll.InsertOne(ctx, pipeline)
	if err != nil {
		return fmt.Errorf("falha ao inserir funil: %w", err)
	}
	pipeline.ID = result.InsertedID.(bson.ObjectID)
	return nil
}

func (p *Pipelines) List(ctx context.Context, companyID bson.ObjectID) ([]schemas.Pipeline, error) {
	filter := bson.D{notDeleted()}
	if !companyID.IsZero() {
		filter = append(filter, bson.E{Key: "company_id", Value: companyID})
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := p.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar funis: %w", err)
	}
	defer cursor.Close(ctx)

	pipelines := []schemas.Pipeline{}
	if err := cursor.All(ctx, &pipelines); err != nil {
		return nil, fmt.Errorf("falha ao decodificar funis: %w", err)
	}
	return pipelines, nil
}

func (p *Pipelines) Update(ctx context.Context, pipeline *schemas.Pipeline) error {
	filter := bson.D{{Key: "_id", Value: pipeline.ID}, notDeleted()}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "nome", Value: pipeline.Nome},
		{Key: "updated_at", Value: time.Now()},
	}}}

	result, err := p.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("falha ao atualizar funil: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("funil: %w", funnel.ErrNotFound)
	}
	return nil
}

func (p *Pipelines) SoftDelete(ctx context.Context, id bson.ObjectID) error {
	filter := bson.D{{Key: "_id", Value: id}, notDeleted()}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "deleted", Value: true},
		{Key: "updated_at", Value: time.Now()},
	}}}

	result, err := p.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("falha ao excluir funil: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("funil: %w", funnel.ErrNotFound)
	}
	return nil
}

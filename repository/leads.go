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

type Leads struct {
	coll *mongo.Collection
}

func NewLeads() *Leads {
	return &Leads{coll: database.Collection(database.COLLECTION_LEADS)}
}

func (l *Leads) Get(ctx context.Context, id bson.ObjectID) (*schemas.Lead, error) {
	filter := bson.D{{Key: "_id", Value: id}, notDeleted()}

	lead := &schemas.Lead{}
	err := l.coll.FindOne(ctx, filter).Decode(lead)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("lead: %w", funnel.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("falha ao buscar lead: %w", err)
	}
	return lead, nil
}

func (l *Leads) Insert(ctx context.Context, lead *schemas.Lead) error {
	result, err := l.coll.InsertOne(ctx, lead)
	if err != nil {
		return fmt.Errorf("falha ao inserir lead: %w", err)
	}
	lead.ID = result.InsertedID.(bson.ObjectID)
	return nil
}

func (l *Leads) List(ctx context.Context, companyID bson.ObjectID) ([]schemas.Lead, error) {
	filter := bson.D{notDeleted()}
	if !companyID.IsZero() {
		filter = append(filter, bson.E{Key: "company_id", Value: companyID})
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := l.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar leads: %w", err)
	}
	defer cursor.Close(ctx)

	leads := []schemas.Lead{}
	if err := cursor.All(ctx, &leads); err != nil {
		return nil, fmt.Errorf("falha ao decodificar leads: %w", err)
	}
	return leads, nil
}

func (l *Leads) Update(ctx context.Context, id bson.ObjectID, fields bson.D) error {
	if len(fields) == 0 {
		return fmt.Errorf("%w: nenhum campo para atualizar foi fornecido", funnel.ErrInvalidArgument)
	}

	fields = append(fields, bson.E{Key: "updated_at", Value: time.Now()})
	filter := bson.D{{Key: "_id", Value: id}, notDeleted()}
	update := bson.D{{Key: "$set", Value: fields}}

	result, err := l.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("falha ao atualizar lead: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("lead: %w", funnel.ErrNotFound)
	}
	return nil
}

package repository

import (
	"context"
	"fmt"

	"crm/database"
	"crm/schemas"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Events guarda o histórico das negociações. A coleção é somente inserção.
type Events struct {
	coll *mongo.Collection
}

func NewEvents() *Events {
	return &Events{coll: database.Collection(database.COLLECTION_DEAL_EVENTS)}
}

func (e *Events) Append(ctx context.Context, event *schemas.DealEvent) error {
	result, err := e.coll.InsertOne(ctx, event)
	if err != nil {
		return fmt.Errorf("falha ao registrar evento da negociação: %w", err)
	}
	event.ID = result.InsertedID.(bson.ObjectID)
	return nil
}

func (e *Events) ListByDeal(ctx context.Context, dealID bson.ObjectID) ([]schemas.DealEvent, error) {
	filter := bson.D{{Key: "deal_id", Value: dealID}}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := e.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar eventos da negociação: %w", err)
	}
	defer cursor.Close(ctx)

	events := []schemas.DealEvent{}
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("falha ao decodificar eventos: %w", err)
	}
	return events, nil
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"crm/database"
	"crm/funnel"
	"crm/schemas"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type Companies struct {
	coll *mongo.Collection
}

func NewCompanies() *Companies {
	return &Companies{coll: database.Collection(database.COLLECTION_COMPANIES)}
}

func (c *Companies) Get(ctx context.Context, id bson.ObjectID) (*schemas.Company, error) {
	filter := bson.D{{Key: "_id", Value: id}, notDeleted()}

	company := &schemas.Company{}
	err := c.coll.FindOne(ctx, filter).Decode(company)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("empresa: %w", funnel.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("falha ao buscar empresa: %w", err)
	}
	return company, nil
}

func (c *Companies) Insert(ctx context.Context, company *schemas.Company) error {
	result, err := c.coll.InsertOne(ctx, company)
	if err != nil {
		return fmt.Errorf("falha ao inserir empresa: %w", err)
	}
	company.ID = result.InsertedID.(bson.ObjectID)
	return nil
}

func (c *Companies) List(ctx context.Context) ([]schemas.Company, error) {
	opts := options.Find().SetSort(bson.D{{Key: "nome", Value: 1}})

	cursor, err := c.coll.Find(ctx, bson.D{notDeleted()}, opts)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar empresas: %w", err)
	}
	defer cursor.Close(ctx)

	companies := []schemas.Company{}
	if err := cursor.All(ctx, &companies); err != nil {
		return nil, fmt.Errorf("falha ao decodificar empresas: %w", err)
	}
	return companies, nil
}

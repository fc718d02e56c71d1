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

type Products struct {
	coll *mongo.Collection
}

func NewProducts() *Products {
	return &Products{coll: database.Collection(database.COLLECTION_PRODUCTS)}
}

func (p *Products) Get(ctx context.Context, id bson.ObjectID) (*schemas.Product, error) {
	filter := bson.D{{Key: "_id", Value: id}, notDeleted()}

	product := &schemas.Product{}
	err := p.coll.FindOne(ctx, filter).Decode(product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("produto: %w", funnel.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("falha ao buscar produto: %w", err)
	}
	return product, nil
}

func (p *Products) Insert(ctx context.Context, product *schemas.Product) error {
	result, err := p.coll.InsertOne(ctx, product)
	if err != nil {
		return fmt.Errorf("falha ao inserir produto: %w", err)
	}
	product.ID = result.InsertedID.(bson.ObjectID)
	return nil
}

func (p *Products) List(ctx context.Context, companyID bson.ObjectID) ([]schemas.Product, error) {
	filter := bson.D{notDeleted()}
	if !companyID.IsZero() {
		filter = append(filter, bson.E{Key: "company_id", Value: companyID})
	}
	opts := options.Find().SetSort(bson.D{{Key: "nome", Value: 1}})

	cursor, err := p.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar produtos: %w", err)
	}
	defer cursor.Close(ctx)

	products := []schemas.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("falha ao decodificar produtos: %w", err)
	}
	return products, nil
}

func (p *Products) Update(ctx context.Context, id bson.ObjectID, fields bson.D) error {
	if len(fields) == 0 {
		return fmt.Errorf("%w: nenhum campo para atualizar foi fornecido", funnel.ErrInvalidArgument)
	}

	fields = append(fields, bson.E{Key: "updated_at", Value: time.Now()})
	filter := bson.D{{Key: "_id", Value: id}, notDeleted()}
	update := bson.D{{Key: "$set", Value: fields}}

	result, err := p.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("falha ao atualizar produto: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("produto: %w", funnel.ErrNotFound)
	}
	return nil
}

func (p *Products) SoftDelete(ctx context.Context, id bson.ObjectID) error {
	return p.Update(ctx, id, bson.D{{Key: "deleted", Value: true}})
}

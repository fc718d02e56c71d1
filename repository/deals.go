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

type Deals struct {
	coll *mongo.Collection
}

func NewDeals() *Deals {
	return &Deals{coll: database.Collection(database.COLLECTION_DEALS)}
}

func (d *Deals) Get(ctx context.Context, id bson.ObjectID) (*schemas.Deal, error) {
	deal := &schemas.Deal{}
	err := d.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(deal)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("negociação: %w", funnel.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("falha ao buscar negociação: %w", err)
	}
	return deal, nil
}

func (d *Deals) Insert(ctx context.Context, deal *schemas.Deal) error {
	result, err := d.coll.InsertOne(ctx, deal)
	if err != nil {
		return fmt.Errorf("falha ao inserir negociação: %w", err)
	}
	deal.ID = result.InsertedID.(bson.ObjectID)
	return nil
}

// Update substitui o documento condicionado à versão lida. Se nenhum
// documento casa com (_id, version), ou a negociação sumiu ou outro escritor
// passou na frente.
func (d *Deals) Update(ctx context.Context, deal *schemas.Deal) error {
	filter := bson.D{
		{Key: "_id", Value: deal.ID},
		{Key: "version", Value: deal.Version},
	}

	deal.Version++
	deal.UpdatedAt = time.Now()

	result, err := d.coll.ReplaceOne(ctx, filter, deal)
	if err != nil {
		return fmt.Errorf("falha ao atualizar negociação: %w", err)
	}
	if result.MatchedCount == 0 {
		count, countErr := d.coll.CountDocuments(ctx, bson.D{{Key: "_id", Value: deal.ID}})
		if countErr == nil && count == 0 {
			return fmt.Errorf("negociação: %w", funnel.ErrNotFound)
		}
		return fmt.Errorf("%w: a negociação foi modificada por outra operação", funnel.ErrConflict)
	}
	return nil
}

func (d *Deals) List(ctx context.Context, filter funnel.DealFilter) ([]schemas.Deal, error) {
	query := bson.D{notDeleted()}
	if !filter.CompanyID.IsZero() {
		query = append(query, bson.E{Key: "company_id", Value: filter.CompanyID})
	}
	if !filter.PipelineID.IsZero() {
		query = append(query, bson.E{Key: "pipeline_id", Value: filter.PipelineID})
	}
	if !filter.StageID.IsZero() {
		query = append(query, bson.E{Key: "stage_id", Value: filter.StageID})
	}
	if filter.Status != "" {
		query = append(query, bson.E{Key: "status", Value: filter.Status})
	}

	created := bson.D{}
	if !filter.From.IsZero() {
		created = append(created, bson.E{Key: "$gte", Value: filter.From})
	}
	if !filter.To.IsZero() {
		created = append(created, bson.E{Key: "$lte", Value: filter.To})
	}
	if len(created) > 0 {
		query = append(query, bson.E{Key: "created_at", Value: created})
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := d.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar negociações: %w", err)
	}
	defer cursor.Close(ctx)

	deals := []schemas.Deal{}
	if err := cursor.All(ctx, &deals); err != nil {
		return nil, fmt.Errorf("falha ao decodificar negociações: %w", err)
	}
	return deals, nil
}

func (d *Deals) CountByStage(ctx context.Context, stageID bson.ObjectID) (int64, error) {
	filter := bson.D{{Key: "stage_id", Value: stageID}, notDeleted()}
	count, err := d.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("falha ao contar negociações da etapa: %w", err)
	}
	return count, nil
}

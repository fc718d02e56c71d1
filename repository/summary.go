package repository

import (
	"context"
	"fmt"

	"crm/database"
	"crm/funnel"
	"crm/schemas"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// Summaries agrega negociações por etapa direto no banco.
type Summaries struct {
	coll *mongo.Collection
}

func NewSummaries() *Summaries {
	return &Summaries{coll: database.Collection(database.COLLECTION_DEALS)}
}

func (s *Summaries) PipelineSummary(ctx context.Context, pipelineID bson.ObjectID) (map[bson.ObjectID]funnel.StageSummary, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{
			{Key: "pipeline_id", Value: pipelineID},
			{Key: "status", Value: schemas.DealStatusAberta},
			notDeleted(),
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "stage_id", Value: 1},
			{Key: "valor_total", Value: bson.D{{Key: "$sum", Value: "$produtos.valor"}}},
		}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$stage_id"},
			{Key: "deal_count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "valor_total", Value: bson.D{{Key: "$sum", Value: "$valor_total"}}},
		}}},
	}

	cursor, err := s.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("falha ao agregar negociações por etapa: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		StageID    bson.ObjectID `bson:"_id"`
		DealCount  int64         `bson:"deal_count"`
		ValorTotal float64       `bson:"valor_total"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("falha ao decodificar agregação: %w", err)
	}

	summaries := make(map[bson.ObjectID]funnel.StageSummary, len(rows))
	for _, row := range rows {
		summaries[row.StageID] = funnel.StageSummary{
			StageID:    row.StageID,
			DealCount:  row.DealCount,
			ValorTotal: row.ValorTotal,
		}
	}
	return summaries, nil
}

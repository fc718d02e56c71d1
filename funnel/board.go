package funnel

import (
	"context"

	"crm/schemas"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// BoardColumn é uma coluna do kanban: a etapa e suas negociações abertas.
type BoardColumn struct {
	Stage schemas.Stage  `json:"stage"`
	Deals []schemas.Deal `json:"deals"`
}

// Board monta as colunas do kanban de um funil, na ordem das etapas.
func (s *Service) Board(ctx context.Context, pipelineID bson.ObjectID) ([]BoardColumn, error) {
	if _, err := s.st.Pipelines.Get(ctx, pipelineID); err != nil {
		return nil, err
	}

	stages, err := s.st.Stages.ListByPipeline(ctx, pipelineID)
	if err != nil {
		return nil, err
	}

	deals, err := s.st.Deals.List(ctx, DealFilter{
		PipelineID: pipelineID,
		Status:     schemas.DealStatusAberta,
	})
	if err != nil {
		return nil, err
	}

	byStage := make(map[bson.ObjectID][]schemas.Deal, len(stages))
	for _, deal := range deals {
		byStage[deal.StageID] = append(byStage[deal.StageID], deal)
	}

	columns := make([]BoardColumn, 0, len(stages))
	for _, stage := range stages {
		deals := byStage[stage.ID]
		if deals == nil {
			deals = []schemas.Deal{}
		}
		columns = append(columns, BoardColumn{Stage: stage, Deals: deals})
	}
	return columns, nil
}

// Summary agrega contagem e valor somado das negociações por etapa.
func (s *Service) Summary(ctx context.Context, pipelineID bson.ObjectID) ([]StageSummary, error) {
	if _, err := s.st.Pipelines.Get(ctx, pipelineID); err != nil {
		return nil, err
	}

	stages, err := s.st.Stages.ListByPipeline(ctx, pipelineID)
	if err != nil {
		return nil, err
	}

	rows, err := s.st.Summary.PipelineSummary(ctx, pipelineID)
	if err != nil {
		return nil, err
	}

	summaries := make([]StageSummary, 0, len(stages))
	for _, stage := range stages {
		row := rows[stage.ID]
		row.StageID = stage.ID
		row.Nome = stage.Nome
		summaries = append(summaries, row)
	}
	return summaries, nil
}

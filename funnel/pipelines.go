package funnel

import (
	"context"
	"fmt"
	"strings"

	"crm/schemas"

	"go.mongodb.org/mongo-driver/v2/bson"
)

func (s *Service) GetPipeline(ctx context.Context, pipelineID bson.ObjectID) (*schemas.Pipeline, error) {
	return s.st.Pipelines.Get(ctx, pipelineID)
}

func (s *Service) ListPipelines(ctx context.Context, companyID bson.ObjectID) ([]schemas.Pipeline, error) {
	return s.st.Pipelines.List(ctx, companyID)
}

func (s *Service) RenamePipeline(ctx context.Context, pipelineID bson.ObjectID, nome string) (*schemas.Pipeline, error) {
	if strings.TrimSpace(nome) == "" {
		return nil, fmt.Errorf("%w: nome do funil é obrigatório", ErrInvalidArgument)
	}

	pipeline, err := s.st.Pipelines.Get(ctx, pipelineID)
	if err != nil {
		return nil, err
	}
	pipeline.Nome = nome
	if err := s.st.Pipelines.Update(ctx, pipeline); err != nil {
		return nil, err
	}
	return pipeline, nil
}

// DeletePipeline marca o funil como deletado. Funis com negociações abertas
// não podem ser removidos.
func (s *Service) DeletePipeline(ctx context.Context, pipelineID bson.ObjectID) error {
	if _, err := s.st.Pipelines.Get(ctx, pipelineID); err != nil {
		return err
	}

	open, err := s.st.Deals.List(ctx, DealFilter{
		PipelineID: pipelineID,
		Status:     schemas.DealStatusAberta,
	})
	if err != nil {
		return err
	}
	if len(open) > 0 {
		return fmt.Errorf("%w: o funil ainda possui %d negociação(ões) aberta(s)", ErrConflict, len(open))
	}

	return s.st.Pipelines.SoftDelete(ctx, pipelineID)
}

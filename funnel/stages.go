package funnel

import (
	"context"
	"fmt"
	"strings"
	"time"

	"crm/schemas"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"
)

// CreatePipeline cria um funil e, opcionalmente, suas etapas iniciais já na
// ordem recebida.
func (s *Service) CreatePipeline(ctx context.Context, companyID bson.ObjectID, nome string, etapas []string) (*schemas.Pipeline, error) {
	if strings.TrimSpace(nome) == "" {
		return nil, fmt.Errorf("%w: nome do funil é obrigatório", ErrInvalidArgument)
	}

	now := time.Now()
	pipeline := &schemas.Pipeline{
		CompanyID: companyID,
		Nome:      nome,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.st.Tx(ctx, func(ctx context.Context) error {
		if err := s.st.Pipelines.Insert(ctx, pipeline); err != nil {
			return err
		}
		for i, etapa := range etapas {
			stage := &schemas.Stage{
				PipelineID: pipeline.ID,
				Nome:       etapa,
				Ordem:      i,
				CreatedAt:  now,
				UpdatedAt:  now,
			}
			if err := s.st.Stages.Insert(ctx, stage); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("funil criado", zap.String("pipeline_id", pipeline.ID.Hex()), zap.Int("etapas", len(etapas)))
	return pipeline, nil
}

// CreateStage acrescenta uma etapa ao fim do funil: a ordem da nova etapa é a
// quantidade atual de etapas visíveis.
func (s *Service) CreateStage(ctx context.Context, pipelineID bson.ObjectID, nome string) (*schemas.Stage, error) {
	if strings.TrimSpace(nome) == "" {
		return nil, fmt.Errorf("%w: nome da etapa é obrigatório", ErrInvalidArgument)
	}

	if _, err := s.st.Pipelines.Get(ctx, pipelineID); err != nil {
		return nil, err
	}

	stages, err := s.st.Stages.ListByPipeline(ctx, pipelineID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	stage := &schemas.Stage{
		PipelineID: pipelineID,
		Nome:       nome,
		Ordem:      len(stages),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.st.Stages.Insert(ctx, stage); err != nil {
		return nil, err
	}
	return stage, nil
}

// MoveStage recoloca uma etapa na posição pedida e desloca as demais etapas
// do mesmo funil para manter a numeração densa: nenhum leitor observa duas
// etapas com a mesma ordem nem um buraco na sequência.
func (s *Service) MoveStage(ctx context.Context, stageID bson.ObjectID, newPosition int) ([]schemas.Stage, error) {
	stage, err := s.st.Stages.Get(ctx, stageID)
	if err != nil {
		return nil, err
	}

	stages, err := s.st.Stages.ListByPipeline(ctx, stage.PipelineID)
	if err != nil {
		return nil, err
	}

	if newPosition < 0 || newPosition >= len(stages) {
		return nil, fmt.Errorf("%w: posição %d fora do intervalo [0, %d]", ErrInvalidArgument, newPosition, len(stages)-1)
	}

	oldPosition := stage.Ordem
	if newPosition != oldPosition {
		err = s.st.Tx(ctx, func(ctx context.Context) error {
			if newPosition > oldPosition {
				// quem está entre (old, new] desliza uma posição para trás
				if err := s.st.Stages.ShiftOrdem(ctx, stage.PipelineID, stageID, oldPosition+1, newPosition, -1); err != nil {
					return err
				}
			} else {
				// quem está entre [new, old) desliza uma posição para frente
				if err := s.st.Stages.ShiftOrdem(ctx, stage.PipelineID, stageID, newPosition, oldPosition-1, +1); err != nil {
					return err
				}
			}
			return s.st.Stages.SetOrdem(ctx, stageID, newPosition)
		})
		if err != nil {
			return nil, err
		}
		s.logger.Info("etapa reordenada",
			zap.String("stage_id", stageID.Hex()),
			zap.Int("de", oldPosition),
			zap.Int("para", newPosition))
	}

	return s.st.Stages.ListByPipeline(ctx, stage.PipelineID)
}

// DeleteStage marca a etapa como deletada e renumera as sobreviventes na
// mesma transação, para que a sequência visível continue densa. Etapas com
// negociações ativas não podem ser removidas.
func (s *Service) DeleteStage(ctx context.Context, stageID bson.ObjectID) error {
	stage, err := s.st.Stages.Get(ctx, stageID)
	if err != nil {
		return err
	}

	count, err := s.st.Deals.CountByStage(ctx, stageID)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: a etapa ainda possui %d negociação(ões)", ErrConflict, count)
	}

	stages, err := s.st.Stages.ListByPipeline(ctx, stage.PipelineID)
	if err != nil {
		return err
	}

	return s.st.Tx(ctx, func(ctx context.Context) error {
		if err := s.st.Stages.SoftDelete(ctx, stageID); err != nil {
			return err
		}
		return s.st.Stages.ShiftOrdem(ctx, stage.PipelineID, stageID, stage.Ordem+1, len(stages)-1, -1)
	})
}

func (s *Service) ListStages(ctx context.Context, pipelineID bson.ObjectID) ([]schemas.Stage, error) {
	if _, err := s.st.Pipelines.Get(ctx, pipelineID); err != nil {
		return nil, err
	}
	return s.st.Stages.ListByPipeline(ctx, pipelineID)
}

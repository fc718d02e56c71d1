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

type CreateDealInput struct {
	CompanyID         bson.ObjectID
	LeadID            bson.ObjectID
	PipelineID        bson.ObjectID
	StageID           bson.ObjectID
	ResponsibleUserID bson.ObjectID
	Autor             string
}

// CreateDeal abre uma negociação. Sem etapa informada, a negociação nasce na
// primeira etapa do funil.
func (s *Service) CreateDeal(ctx context.Context, in CreateDealInput) (*schemas.Deal, error) {
	if _, err := s.st.Leads.Get(ctx, in.LeadID); err != nil {
		return nil, fmt.Errorf("lead: %w", err)
	}
	if _, err := s.st.Users.Get(ctx, in.ResponsibleUserID); err != nil {
		return nil, fmt.Errorf("usuário responsável: %w", err)
	}
	if _, err := s.st.Pipelines.Get(ctx, in.PipelineID); err != nil {
		return nil, fmt.Errorf("funil: %w", err)
	}

	stages, err := s.st.Stages.ListByPipeline(ctx, in.PipelineID)
	if err != nil {
		return nil, err
	}

	stageID := in.StageID
	if stageID.IsZero() {
		if len(stages) == 0 {
			return nil, fmt.Errorf("%w: o funil não possui etapas", ErrInvalidArgument)
		}
		stageID = stages[0].ID
	} else if !stageBelongs(stages, stageID) {
		return nil, fmt.Errorf("%w: a etapa não pertence ao funil informado", ErrInvalidArgument)
	}

	now := time.Now()
	deal := &schemas.Deal{
		CompanyID:         in.CompanyID,
		LeadID:            in.LeadID,
		PipelineID:        in.PipelineID,
		StageID:           stageID,
		ResponsibleUserID: in.ResponsibleUserID,
		Status:            schemas.DealStatusAberta,
		Produtos:          []schemas.DealProduct{},
		Version:           1,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	err = s.st.Tx(ctx, func(ctx context.Context) error {
		if err := s.st.Deals.Insert(ctx, deal); err != nil {
			return err
		}
		return s.appendEvent(ctx, deal.ID, schemas.DealEventCriacao, "Negociação criada", in.Autor)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("negociação criada", zap.String("deal_id", deal.ID.Hex()))
	return deal, nil
}

// MoveDealStage muda a negociação de etapa dentro do próprio funil. Só é
// permitido enquanto o status for aberta.
func (s *Service) MoveDealStage(ctx context.Context, dealID, stageID bson.ObjectID, autor string) (*schemas.Deal, error) {
	deal, err := s.openDeal(ctx, dealID)
	if err != nil {
		return nil, err
	}

	stage, err := s.st.Stages.Get(ctx, stageID)
	if err != nil {
		return nil, fmt.Errorf("etapa: %w", err)
	}
	if stage.PipelineID != deal.PipelineID {
		return nil, fmt.Errorf("%w: a etapa não pertence ao funil da negociação", ErrInvalidArgument)
	}

	deal.StageID = stageID
	err = s.st.Tx(ctx, func(ctx context.Context) error {
		if err := s.st.Deals.Update(ctx, deal); err != nil {
			return err
		}
		descricao := fmt.Sprintf("Negociação movida para a etapa %q", stage.Nome)
		return s.appendEvent(ctx, deal.ID, schemas.DealEventMudancaEtapa, descricao, autor)
	})
	if err != nil {
		return nil, err
	}
	return deal, nil
}

// MarkWon encerra a negociação como ganha: aplica o desconto (se houver)
// sobre os produtos anexados, move a negociação para a última etapa do funil
// e registra o evento de mudança de status. Tudo em uma unidade atômica.
func (s *Service) MarkWon(ctx context.Context, dealID bson.ObjectID, note string, discount *schemas.Discount, autor string) (*schemas.Deal, error) {
	deal, err := s.openDeal(ctx, dealID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(note) == "" {
		return nil, fmt.Errorf("%w: a justificativa de fechamento é obrigatória", ErrInvalidArgument)
	}
	if err := validateDiscount(discount); err != nil {
		return nil, err
	}

	if err := s.placeInLastStage(ctx, deal); err != nil {
		return nil, err
	}

	if discount != nil && discount.Value > 0 {
		deal.Produtos = applyDiscount(deal.Produtos, *discount)
	}
	deal.Status = schemas.DealStatusGanha

	descricao := fmt.Sprintf("Negociação marcada como GANHO.%s Justificativa: %s", discountSummary(discount), note)
	err = s.st.Tx(ctx, func(ctx context.Context) error {
		if err := s.st.Deals.Update(ctx, deal); err != nil {
			return err
		}
		return s.appendEvent(ctx, deal.ID, schemas.DealEventMudancaStatus, descricao, autor)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("negociação ganha", zap.String("deal_id", deal.ID.Hex()))
	return deal, nil
}

// MarkLost encerra a negociação como perdida. Não há recálculo de valores.
func (s *Service) MarkLost(ctx context.Context, dealID bson.ObjectID, reason, autor string) (*schemas.Deal, error) {
	deal, err := s.openDeal(ctx, dealID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(reason) == "" {
		return nil, fmt.Errorf("%w: o motivo da perda é obrigatório", ErrInvalidArgument)
	}

	if err := s.placeInLastStage(ctx, deal); err != nil {
		return nil, err
	}
	deal.Status = schemas.DealStatusPerdida

	descricao := fmt.Sprintf("Negociação marcada como PERDIDO. Justificativa: %s", reason)
	err = s.st.Tx(ctx, func(ctx context.Context) error {
		if err := s.st.Deals.Update(ctx, deal); err != nil {
			return err
		}
		return s.appendEvent(ctx, deal.ID, schemas.DealEventMudancaStatus, descricao, autor)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("negociação perdida", zap.String("deal_id", deal.ID.Hex()))
	return deal, nil
}

// Annotate registra uma anotação manual no histórico. Não altera a
// negociação, então vale também para negociações já encerradas.
func (s *Service) Annotate(ctx context.Context, dealID bson.ObjectID, descricao, autor string) error {
	if strings.TrimSpace(descricao) == "" {
		return fmt.Errorf("%w: a descrição da anotação é obrigatória", ErrInvalidArgument)
	}
	deal, err := s.visibleDeal(ctx, dealID)
	if err != nil {
		return err
	}
	return s.appendEvent(ctx, deal.ID, schemas.DealEventAnotacao, descricao, autor)
}

// DeleteDeal marca a negociação como excluída e registra o evento.
func (s *Service) DeleteDeal(ctx context.Context, dealID bson.ObjectID, autor string) error {
	deal, err := s.visibleDeal(ctx, dealID)
	if err != nil {
		return err
	}
	deal.Deleted = true
	return s.st.Tx(ctx, func(ctx context.Context) error {
		if err := s.st.Deals.Update(ctx, deal); err != nil {
			return err
		}
		return s.appendEvent(ctx, deal.ID, schemas.DealEventExclusao, "Negociação excluída", autor)
	})
}

// RestoreDeal desfaz a exclusão.
func (s *Service) RestoreDeal(ctx context.Context, dealID bson.ObjectID, autor string) (*schemas.Deal, error) {
	deal, err := s.st.Deals.Get(ctx, dealID)
	if err != nil {
		return nil, err
	}
	if !deal.Deleted {
		return nil, fmt.Errorf("%w: a negociação não está excluída", ErrConflict)
	}
	deal.Deleted = false
	err = s.st.Tx(ctx, func(ctx context.Context) error {
		if err := s.st.Deals.Update(ctx, deal); err != nil {
			return err
		}
		return s.appendEvent(ctx, deal.ID, schemas.DealEventRestauracao, "Negociação restaurada", autor)
	})
	if err != nil {
		return nil, err
	}
	return deal, nil
}

func (s *Service) GetDeal(ctx context.Context, dealID bson.ObjectID) (*schemas.Deal, error) {
	return s.visibleDeal(ctx, dealID)
}

func (s *Service) ListDeals(ctx context.Context, filter DealFilter) ([]schemas.Deal, error) {
	return s.st.Deals.List(ctx, filter)
}

func (s *Service) ListDealEvents(ctx context.Context, dealID bson.ObjectID) ([]schemas.DealEvent, error) {
	if _, err := s.st.Deals.Get(ctx, dealID); err != nil {
		return nil, err
	}
	return s.st.Events.ListByDeal(ctx, dealID)
}

// visibleDeal busca a negociação e esconde as excluídas.
func (s *Service) visibleDeal(ctx context.Context, dealID bson.ObjectID) (*schemas.Deal, error) {
	deal, err := s.st.Deals.Get(ctx, dealID)
	if err != nil {
		return nil, err
	}
	if deal.Deleted {
		return nil, fmt.Errorf("negociação: %w", ErrNotFound)
	}
	return deal, nil
}

// openDeal é visibleDeal mais a guarda de estado terminal: negociações
// ganhas ou perdidas não aceitam novas mutações.
func (s *Service) openDeal(ctx context.Context, dealID bson.ObjectID) (*schemas.Deal, error) {
	deal, err := s.visibleDeal(ctx, dealID)
	if err != nil {
		return nil, err
	}
	if deal.IsTerminal() {
		return nil, fmt.Errorf("%w: a negociação já foi encerrada como %s", ErrConflict, deal.Status)
	}
	return deal, nil
}

// placeInLastStage força a negociação para a etapa de maior ordem do funil,
// se o funil tiver ao menos uma etapa visível.
func (s *Service) placeInLastStage(ctx context.Context, deal *schemas.Deal) error {
	stages, err := s.st.Stages.ListByPipeline(ctx, deal.PipelineID)
	if err != nil {
		return err
	}
	if len(stages) > 0 {
		deal.StageID = stages[len(stages)-1].ID
	}
	return nil
}

func (s *Service) appendEvent(ctx context.Context, dealID bson.ObjectID, tipo, descricao, autor string) error {
	return s.st.Events.Append(ctx, &schemas.DealEvent{
		DealID:    dealID,
		Tipo:      tipo,
		Descricao: descricao,
		Autor:     autor,
		CreatedAt: time.Now(),
	})
}

func stageBelongs(stages []schemas.Stage, stageID bson.ObjectID) bool {
	for _, stage := range stages {
		if stage.ID == stageID {
			return true
		}
	}
	return false
}

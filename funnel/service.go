package funnel

import (
	"go.uber.org/zap"
)

// Stores agrupa as dependências de persistência do serviço.
type Stores struct {
	Pipelines PipelineStore
	Stages    StageStore
	Deals     DealStore
	Events    EventStore
	Tasks     TaskStore
	Leads     LeadStore
	Users     UserStore
	Products  ProductStore
	Summary   SummaryStore
	Tx        TxRunner
}

// Service concentra a lógica de funis e negociações: reordenação de etapas,
// máquina de estados da negociação e distribuição de descontos.
type Service struct {
	st     Stores
	logger *zap.Logger
}

func NewService(st Stores, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{st: st, logger: logger}
}

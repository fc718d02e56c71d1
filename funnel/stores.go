package funnel

import (
	"context"
	"time"

	"crm/schemas"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// As stores são as dependências injetadas do serviço. A implementação real
// fica em repository (MongoDB); os testes usam fakes em memória.

type PipelineStore interface {
	Get(ctx context.Context, id bson.ObjectID) (*schemas.Pipeline, error)
	Insert(ctx context.Context, pipeline *schemas.Pipeline) error
	List(ctx context.Context, companyID bson.ObjectID) ([]schemas.Pipeline, error)
	Update(ctx context.Context, pipeline *schemas.Pipeline) error
	SoftDelete(ctx context.Context, id bson.ObjectID) error
}

type StageStore interface {
	Get(ctx context.Context, id bson.ObjectID) (*schemas.Stage, error)
	// ListByPipeline retorna as etapas não deletadas, por ordem crescente.
	ListByPipeline(ctx context.Context, pipelineID bson.ObjectID) ([]schemas.Stage, error)
	Insert(ctx context.Context, stage *schemas.Stage) error
	// ShiftOrdem soma delta à ordem de toda etapa não deletada do funil cuja
	// ordem esteja em [lo, hi], exceto excludeID.
	ShiftOrdem(ctx context.Context, pipelineID, excludeID bson.ObjectID, lo, hi, delta int) error
	SetOrdem(ctx context.Context, id bson.ObjectID, ordem int) error
	SoftDelete(ctx context.Context, id bson.ObjectID) error
}

type DealFilter struct {
	CompanyID  bson.ObjectID
	PipelineID bson.ObjectID
	StageID    bson.ObjectID
	Status     string
	From       time.Time
	To         time.Time
}

type DealStore interface {
	Get(ctx context.Context, id bson.ObjectID) (*schemas.Deal, error)
	Insert(ctx context.Context, deal *schemas.Deal) error
	// Update é condicionado à versão lida: se outro escritor passou na
	// frente, devolve ErrConflict e não altera nada.
	Update(ctx context.Context, deal *schemas.Deal) error
	List(ctx context.Context, filter DealFilter) ([]schemas.Deal, error)
	CountByStage(ctx context.Context, stageID bson.ObjectID) (int64, error)
}

type EventStore interface {
	Append(ctx context.Context, event *schemas.DealEvent) error
	ListByDeal(ctx context.Context, dealID bson.ObjectID) ([]schemas.DealEvent, error)
}

type TaskStore interface {
	Get(ctx context.Context, id bson.ObjectID) (*schemas.Task, error)
	Insert(ctx context.Context, task *schemas.Task) error
	Update(ctx context.Context, task *schemas.Task) error
	ListByDeal(ctx context.Context, dealID bson.ObjectID) ([]schemas.Task, error)
}

type LeadStore interface {
	Get(ctx context.Context, id bson.ObjectID) (*schemas.Lead, error)
}

type UserStore interface {
	Get(ctx context.Context, id bson.ObjectID) (*schemas.User, error)
}

type ProductStore interface {
	Get(ctx context.Context, id bson.ObjectID) (*schemas.Product, error)
}

// StageSummary é uma linha da agregação por etapa de um funil.
type StageSummary struct {
	StageID    bson.ObjectID `json:"stage_id"`
	Nome       string        `json:"nome"`
	DealCount  int64         `json:"deal_count"`
	ValorTotal float64       `json:"valor_total"`
}

type SummaryStore interface {
	PipelineSummary(ctx context.Context, pipelineID bson.ObjectID) (map[bson.ObjectID]StageSummary, error)
}

// TxRunner executa fn como uma unidade atômica: ou todas as escritas feitas
// com o contexto recebido são aplicadas, ou nenhuma.
type TxRunner func(ctx context.Context, fn func(ctx context.Context) error) error

package funnel

import (
	"context"
	"fmt"
	"sort"

	"crm/schemas"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// memStore guarda tudo em memória imitando a semântica do repositório real:
// cópias na leitura e na escrita, filtro de deletados e CAS de versão nas
// negociações.
type memStore struct {
	pipelines map[bson.ObjectID]schemas.Pipeline
	stages    map[bson.ObjectID]schemas.Stage
	deals     map[bson.ObjectID]schemas.Deal
	events    []schemas.DealEvent
	tasks     map[bson.ObjectID]schemas.Task
	leads     map[bson.ObjectID]schemas.Lead
	users     map[bson.ObjectID]schemas.User
	products  map[bson.ObjectID]schemas.Product
}

func newMemStore() *memStore {
	return &memStore{
		pipelines: map[bson.ObjectID]schemas.Pipeline{},
		stages:    map[bson.ObjectID]schemas.Stage{},
		deals:     map[bson.ObjectID]schemas.Deal{},
		tasks:     map[bson.ObjectID]schemas.Task{},
		leads:     map[bson.ObjectID]schemas.Lead{},
		users:     map[bson.ObjectID]schemas.User{},
		products:  map[bson.ObjectID]schemas.Product{},
	}
}

func newTestService() (*Service, *memStore) {
	m := newMemStore()
	st := Stores{
		Pipelines: (*memPipelines)(m),
		Stages:    (*memStages)(m),
		Deals:     (*memDeals)(m),
		Events:    (*memEvents)(m),
		Tasks:     (*memTasks)(m),
		Leads:     (*memLeads)(m),
		Users:     (*memUsers)(m),
		Products:  (*memProducts)(m),
		Summary:   (*memSummary)(m),
		Tx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	}
	return NewService(st, nil), m
}

type memPipelines memStore

func (m *memPipelines) Get(_ context.Context, id bson.ObjectID) (*schemas.Pipeline, error) {
	p, ok := m.pipelines[id]
	if !ok || p.Deleted {
		return nil, fmt.Errorf("funil: %w", ErrNotFound)
	}
	return &p, nil
}

func (m *memPipelines) Insert(_ context.Context, pipeline *schemas.Pipeline) error {
	if pipeline.ID.IsZero() {
		pipeline.ID = bson.NewObjectID()
	}
	m.pipelines[pipeline.ID] = *pipeline
	return nil
}

func (m *memPipelines) List(_ context.Context, companyID bson.ObjectID) ([]schemas.Pipeline, error) {
	out := []schemas.Pipeline{}
	for _, p := range m.pipelines {
		if p.Deleted {
			continue
		}
		if !companyID.IsZero() && p.CompanyID != companyID {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (m *memPipelines) Update(_ context.Context, pipeline *schemas.Pipeline) error {
	if _, ok := m.pipelines[pipeline.ID]; !ok {
		return fmt.Errorf("funil: %w", ErrNotFound)
	}
	m.pipelines[pipeline.ID] = *pipeline
	return nil
}

func (m *memPipelines) SoftDelete(_ context.Context, id bson.ObjectID) error {
	p, ok := m.pipelines[id]
	if !ok || p.Deleted {
		return fmt.Errorf("funil: %w", ErrNotFound)
	}
	p.Deleted = true
	m.pipelines[id] = p
	return nil
}

type memStages memStore

func (m *memStages) Get(_ context.Context, id bson.ObjectID) (*schemas.Stage, error) {
	s, ok := m.stages[id]
	if !ok || s.Deleted {
		return nil, fmt.Errorf("etapa: %w", ErrNotFound)
	}
	return &s, nil
}

func (m *memStages) ListByPipeline(_ context.Context, pipelineID bson.ObjectID) ([]schemas.Stage, error) {
	out := []schemas.Stage{}
	for _, s := range m.stages {
		if s.Deleted || s.PipelineID != pipelineID {
			continue
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Ordem < out[j].Ordem })
	return out, nil
}

func (m *memStages) Insert(_ context.Context, stage *schemas.Stage) error {
	if stage.ID.IsZero() {
		stage.ID = bson.NewObjectID()
	}
	m.stages[stage.ID] = *stage
	return nil
}

func (m *memStages) ShiftOrdem(_ context.Context, pipelineID, excludeID bson.ObjectID, lo, hi, delta int) error {
	for id, s := range m.stages {
		if s.Deleted || s.PipelineID != pipelineID || id == excludeID {
			continue
		}
		if s.Ordem >= lo && s.Ordem <= hi {
			s.Ordem += delta
			m.stages[id] = s
		}
	}
	return nil
}

func (m *memStages) SetOrdem(_ context.Context, id bson.ObjectID, ordem int) error {
	s, ok := m.stages[id]
	if !ok || s.Deleted {
		return fmt.Errorf("etapa: %w", ErrNotFound)
	}
	s.Ordem = ordem
	m.stages[id] = s
	return nil
}

func (m *memStages) SoftDelete(_ context.Context, id bson.ObjectID) error {
	s, ok := m.stages[id]
	if !ok || s.Deleted {
		return fmt.Errorf("etapa: %w", ErrNotFound)
	}
	s.Deleted = true
	m.stages[id] = s
	return nil
}

type memDeals memStore

func (m *memDeals) Get(_ context.Context, id bson.ObjectID) (*schemas.Deal, error) {
	d, ok := m.deals[id]
	if !ok {
		return nil, fmt.Errorf("negociação: %w", ErrNotFound)
	}
	d.Produtos = append([]schemas.DealProduct{}, d.Produtos...)
	return &d, nil
}

func (m *memDeals) Insert(_ context.Context, deal *schemas.Deal) error {
	if deal.ID.IsZero() {
		deal.ID = bson.NewObjectID()
	}
	m.deals[deal.ID] = *deal
	return nil
}

func (m *memDeals) Update(_ context.Context, deal *schemas.Deal) error {
	stored, ok := m.deals[deal.ID]
	if !ok {
		return fmt.Errorf("negociação: %w", ErrNotFound)
	}
	if stored.Version != deal.Version {
		return fmt.Errorf("%w: a negociação foi modificada por outra operação", ErrConflict)
	}
	deal.Version++
	m.deals[deal.ID] = *deal
	return nil
}

func (m *memDeals) List(_ context.Context, filter DealFilter) ([]schemas.Deal, error) {
	out := []schemas.Deal{}
	for _, d := range m.deals {
		if d.Deleted {
			continue
		}
		if !filter.CompanyID.IsZero() && d.CompanyID != filter.CompanyID {
			continue
		}
		if !filter.PipelineID.IsZero() && d.PipelineID != filter.PipelineID {
			continue
		}
		if !filter.StageID.IsZero() && d.StageID != filter.StageID {
			continue
		}
		if filter.Status != "" && d.Status != filter.Status {
			continue
		}
		if !filter.From.IsZero() && d.CreatedAt.Before(filter.From) {
			continue
		}
		if !filter.To.IsZero() && d.CreatedAt.After(filter.To) {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

func (m *memDeals) CountByStage(_ context.Context, stageID bson.ObjectID) (int64, error) {
	var count int64
	for _, d := range m.deals {
		if !d.Deleted && d.StageID == stageID {
			count++
		}
	}
	return count, nil
}

type memEvents memStore

func (m *memEvents) Append(_ context.Context, event *schemas.DealEvent) error {
	if event.ID.IsZero() {
		event.ID = bson.NewObjectID()
	}
	m.events = append(m.events, *event)
	return nil
}

func (m *memEvents) ListByDeal(_ context.Context, dealID bson.ObjectID) ([]schemas.DealEvent, error) {
	out := []schemas.DealEvent{}
	for _, e := range m.events {
		if e.DealID == dealID {
			out = append(out, e)
		}
	}
	return out, nil
}

type memTasks memStore

func (m *memTasks) Get(_ context.Context, id bson.ObjectID) (*schemas.Task, error) {
	t, ok := m.tasks[id]
	if !ok {
		return nil, fmt.Errorf("tarefa: %w", ErrNotFound)
	}
	return &t, nil
}

func (m *memTasks) Insert(_ context.Context, task *schemas.Task) error {
	if task.ID.IsZero() {
		task.ID = bson.NewObjectID()
	}
	m.tasks[task.ID] = *task
	return nil
}

func (m *memTasks) Update(_ context.Context, task *schemas.Task) error {
	if _, ok := m.tasks[task.ID]; !ok {
		return fmt.Errorf("tarefa: %w", ErrNotFound)
	}
	m.tasks[task.ID] = *task
	return nil
}

func (m *memTasks) ListByDeal(_ context.Context, dealID bson.ObjectID) ([]schemas.Task, error) {
	out := []schemas.Task{}
	for _, t := range m.tasks {
		if t.DealID == dealID {
			out = append(out, t)
		}
	}
	return out, nil
}

type memLeads memStore

func (m *memLeads) Get(_ context.Context, id bson.ObjectID) (*schemas.Lead, error) {
	l, ok := m.leads[id]
	if !ok || l.Deleted {
		return nil, fmt.Errorf("lead: %w", ErrNotFound)
	}
	return &l, nil
}

type memUsers memStore

func (m *memUsers) Get(_ context.Context, id bson.ObjectID) (*schemas.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, fmt.Errorf("usuário: %w", ErrNotFound)
	}
	return &u, nil
}

type memProducts memStore

func (m *memProducts) Get(_ context.Context, id bson.ObjectID) (*schemas.Product, error) {
	p, ok := m.products[id]
	if !ok || p.Deleted {
		return nil, fmt.Errorf("produto: %w", ErrNotFound)
	}
	return &p, nil
}

type memSummary memStore

func (m *memSummary) PipelineSummary(_ context.Context, pipelineID bson.ObjectID) (map[bson.ObjectID]StageSummary, error) {
	out := map[bson.ObjectID]StageSummary{}
	for _, d := range m.deals {
		if d.Deleted || d.PipelineID != pipelineID || d.Status != schemas.DealStatusAberta {
			continue
		}
		row := out[d.StageID]
		row.StageID = d.StageID
		row.DealCount++
		for _, p := range d.Produtos {
			row.ValorTotal += p.Valor
		}
		out[d.StageID] = row
	}
	return out, nil
}

package funnel

import (
	"context"
	"fmt"
	"strings"
	"time"

	"crm/schemas"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// CreateTask cria um lembrete para a negociação e registra o evento de
// tarefa no histórico.
func (s *Service) CreateTask(ctx context.Context, dealID bson.ObjectID, descricao string, dueDate time.Time, autor string) (*schemas.Task, error) {
	if strings.TrimSpace(descricao) == "" {
		return nil, fmt.Errorf("%w: a descrição da tarefa é obrigatória", ErrInvalidArgument)
	}

	deal, err := s.openDeal(ctx, dealID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	task := &schemas.Task{
		DealID:    deal.ID,
		Descricao: descricao,
		DueDate:   dueDate,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.st.Tx(ctx, func(ctx context.Context) error {
		if err := s.st.Tasks.Insert(ctx, task); err != nil {
			return err
		}
		return s.appendEvent(ctx, deal.ID, schemas.DealEventTarefa, "Tarefa criada: "+descricao, autor)
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

func (s *Service) CompleteTask(ctx context.Context, taskID bson.ObjectID) (*schemas.Task, error) {
	task, err := s.st.Tasks.Get(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task.Done {
		return task, nil
	}
	task.Done = true
	if err := s.st.Tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *Service) ListTasks(ctx context.Context, dealID bson.ObjectID) ([]schemas.Task, error) {
	if _, err := s.visibleDeal(ctx, dealID); err != nil {
		return nil, err
	}
	return s.st.Tasks.ListByDeal(ctx, dealID)
}

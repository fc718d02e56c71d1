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

type Tasks struct {
	coll *mongo.Collection
}

func NewTasks() *Tasks {
	return &Tasks{coll: database.Collection(database.COLLECTION_TASKS)}
}

func (t *Tasks) Get(ctx context.Context, id bson.ObjectID) (*schemas.Task, error) {
	task := &schemas.Task{}
	err := t.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(task)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("tarefa: %w", funnel.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("falha ao buscar tarefa: %w", err)
	}
	return task, nil
}

func (t *Tasks) Insert(ctx context.Context, task *schemas.Task) error {
	result, err := t.coll.InsertOne(ctx, task)
	if err != nil {
		return fmt.Errorf("falha ao inserir tarefa: %w", err)
	}
	task.ID = result.InsertedID.(bson.ObjectID)
	return nil
}

func (t *Tasks) Update(ctx context.Context, task *schemas.Task) error {
	filter := bson.D{{Key: "_id", Value: task.ID}}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "descricao", Value: task.Descricao},
		{Key: "due_date", Value: task.DueDate},
		{Key: "done", Value: task.Done},
		{Key: "updated_at", Value: time.Now()},
	}}}

	result, err := t.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("falha ao atualizar tarefa: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("tarefa: %w", funnel.ErrNotFound)
	}
	return nil
}

func (t *Tasks) ListByDeal(ctx context.Context, dealID bson.ObjectID) ([]schemas.Task, error) {
	filter := bson.D{{Key: "deal_id", Value: dealID}}
	opts := options.Find().SetSort(bson.D{{Key: "due_date", Value: 1}})

	cursor, err := t.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar tarefas: %w", err)
	}
	defer cursor.Close(ctx)

	tasks := []schemas.Task{}
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, fmt.Errorf("falha ao decodificar tarefas: %w", err)
	}
	return tasks, nil
}

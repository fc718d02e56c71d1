package schemas

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Task é um lembrete vinculado a uma negociação.
type Task struct {
	ID        bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	DealID    bson.ObjectID `json:"deal_id,omitempty" bson:"deal_id,omitempty"`
	Descricao string        `json:"descricao,omitempty" bson:"descricao,omitempty"`
	DueDate   time.Time     `json:"due_date,omitempty" bson:"due_date,omitempty"`
	Done      bool          `json:"done" bson:"done"`
	CreatedAt time.Time     `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt time.Time     `json:"updated_at" bson:"updated_at,omitempty"`
}

package schemas

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Stage é uma etapa de um funil. O campo Ordem é o índice (base 0) da etapa
// dentro do funil: entre as etapas não deletadas de um funil os valores de
// ordem formam sempre {0, 1, ..., n-1}, sem buracos nem repetições.
type Stage struct {
	ID         bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	PipelineID bson.ObjectID `json:"pipeline_id,omitempty" bson:"pipeline_id,omitempty"`
	Nome       string        `json:"nome,omitempty" bson:"nome,omitempty"`
	Ordem      int           `json:"ordem" bson:"ordem"`
	Deleted    bool          `json:"deleted,omitempty" bson:"deleted,omitempty"`
	CreatedAt  time.Time     `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt  time.Time     `json:"updated_at" bson:"updated_at,omitempty"`
}

package schemas

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Pipeline struct {
	ID        bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	CompanyID bson.ObjectID `json:"company_id,omitempty" bson:"company_id,omitempty"`
	Nome      string        `json:"nome,omitempty" bson:"nome,omitempty"`
	Deleted   bool          `json:"deleted,omitempty" bson:"deleted,omitempty"`
	CreatedAt time.Time     `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt time.Time     `json:"updated_at" bson:"updated_at,omitempty"`
}

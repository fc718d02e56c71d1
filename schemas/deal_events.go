package schemas

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	DealEventCriacao       = "criacao"
	DealEventMudancaEtapa  = "mudanca_etapa"
	DealEventAnotacao      = "anotacao"
	DealEventTarefa        = "tarefa"
	DealEventMudancaStatus = "mudanca_status"
	DealEventExclusao      = "exclusao"
	DealEventRestauracao   = "restauracao"
	DealEventSincronizacao = "sincronizacao"
)

// DealEvent é o histórico da negociação. Somente inserção: nunca é
// atualizado nem removido.
type DealEvent struct {
	ID        bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	DealID    bson.ObjectID `json:"deal_id,omitempty" bson:"deal_id,omitempty"`
	Tipo      string        `json:"tipo,omitempty" bson:"tipo,omitempty"`
	Descricao string        `json:"descricao,omitempty" bson:"descricao,omitempty"`
	Autor     string        `json:"autor,omitempty" bson:"autor,omitempty"`
	CreatedAt time.Time     `json:"created_at" bson:"created_at,omitempty"`
}

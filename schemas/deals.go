package schemas

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	DealStatusAberta  = "aberta"
	DealStatusGanha   = "ganha"
	DealStatusPerdida = "perdida"
)

const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"
)

// DealProduct é a cópia de um produto do catálogo no momento em que foi
// anexado à negociação: mudanças de preço posteriores no catálogo não
// alteram negociações existentes. O valor pode ser reescrito uma única vez,
// pela distribuição de desconto no ganho.
type DealProduct struct {
	ID        bson.ObjectID `json:"id,omitempty" bson:"id,omitempty"`
	ProductID bson.ObjectID `json:"product_id,omitempty" bson:"product_id,omitempty"`
	Nome      string        `json:"nome,omitempty" bson:"nome,omitempty"`
	Valor     float64       `json:"valor" bson:"valor"`
	Parcelas  int           `json:"parcelas" bson:"parcelas"`
}

type Discount struct {
	Type  string  `json:"type,omitempty" bson:"type,omitempty"`
	Value float64 `json:"value" bson:"value"`
}

// Deal é uma negociação: a oportunidade de venda de um lead dentro de um
// funil. Os produtos ficam embutidos no próprio documento, então a transição
// de ganho (status + etapa + valores) é uma escrita única. Version é o
// contador de concorrência otimista: toda mutação compara e incrementa.
type Deal struct {
	ID                bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	CompanyID         bson.ObjectID `json:"company_id,omitempty" bson:"company_id,omitempty"`
	LeadID            bson.ObjectID `json:"lead_id,omitempty" bson:"lead_id,omitempty"`
	PipelineID        bson.ObjectID `json:"pipeline_id,omitempty" bson:"pipeline_id,omitempty"`
	StageID           bson.ObjectID `json:"stage_id,omitempty" bson:"stage_id,omitempty"`
	ResponsibleUserID bson.ObjectID `json:"responsible_user_id,omitempty" bson:"responsible_user_id,omitempty"`
	Status            string        `json:"status,omitempty" bson:"status,omitempty"`
	Produtos          []DealProduct `json:"produtos" bson:"produtos"`
	Deleted           bool          `json:"deleted,omitempty" bson:"deleted,omitempty"`
	Version           int64         `json:"version" bson:"version"`
	CreatedAt         time.Time     `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt         time.Time     `json:"updated_at" bson:"updated_at,omitempty"`
}

func (d *Deal) IsTerminal() bool {
	return d.Status == DealStatusGanha || d.Status == DealStatusPerdida
}

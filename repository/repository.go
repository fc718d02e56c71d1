package repository

import (
	"crm/database"
	"crm/funnel"
)

// NewStores monta as stores Mongo já ligadas às coleções. Exige database.Init
// já executado.
func NewStores() funnel.Stores {
	return funnel.Stores{
		Pipelines: NewPipelines(),
		Stages:    NewStages(),
		Deals:     NewDeals(),
		Events:    NewEvents(),
		Tasks:     NewTasks(),
		Leads:     NewLeads(),
		Users:     NewUsers(),
		Products:  NewProducts(),
		Summary:   NewSummaries(),
		Tx:        database.WithTransaction,
	}
}

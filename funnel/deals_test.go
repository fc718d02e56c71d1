package funnel

import (
	"context"
	"testing"

	"crm/schemas"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type dealFixture struct {
	svc      *Service
	store    *memStore
	lead     schemas.Lead
	user     schemas.User
	pipeline *schemas.Pipeline
	stages   []schemas.Stage
}

func newDealFixture(t *testing.T, etapas ...string) *dealFixture {
	t.Helper()
	svc, store := newTestService()
	ctx := context.Background()

	lead := schemas.Lead{ID: bson.NewObjectID(), Nome: "Maria"}
	store.leads[lead.ID] = lead

	user := schemas.User{ID: bson.NewObjectID(), Name: "João"}
	store.users[user.ID] = user

	pipeline, err := svc.CreatePipeline(ctx, bson.NewObjectID(), "Vendas", etapas)
	require.NoError(t, err)

	stages, err := svc.ListStages(ctx, pipeline.ID)
	require.NoError(t, err)

	return &dealFixture{svc: svc, store: store, lead: lead, user: user, pipeline: pipeline, stages: stages}
}

func (f *dealFixture) createDeal(t *testing.T) *schemas.Deal {
	t.Helper()
	deal, err := f.svc.CreateDeal(context.Background(), CreateDealInput{
		LeadID:            f.lead.ID,
		PipelineID:        f.pipeline.ID,
		ResponsibleUserID: f.user.ID,
		Autor:             f.user.Name,
	})
	require.NoError(t, err)
	return deal
}

func (f *dealFixture) addProduct(t *testing.T, nome string, valor float64) {
	t.Helper()
	product := schemas.Product{ID: bson.NewObjectID(), Nome: nome, ValorTotal: valor}
	f.store.products[product.ID] = product
}

func (f *dealFixture) attachProduct(t *testing.T, dealID bson.ObjectID, nome string, valor float64) {
	t.Helper()
	product := schemas.Product{ID: bson.NewObjectID(), Nome: nome, ValorTotal: valor}
	f.store.products[product.ID] = product
	_, err := f.svc.AttachProduct(context.Background(), dealID, product.ID)
	require.NoError(t, err)
}

func eventTypes(events []schemas.DealEvent) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.Tipo
	}
	return out
}

func TestCreateDealStartsInFirstStage(t *testing.T) {
	f := newDealFixture(t, "Prospecção", "Proposta", "Fechamento")
	ctx := context.Background()

	deal := f.createDeal(t)

	assert.Equal(t, schemas.DealStatusAberta, deal.Status)
	assert.Equal(t, f.stages[0].ID, deal.StageID)
	assert.NotNil(t, deal.Produtos)

	events, err := f.svc.ListDealEvents(ctx, deal.ID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, schemas.DealEventCriacao, events[0].Tipo)
	assert.Equal(t, "João", events[0].Autor)
}

func TestCreateDealWithoutStagesIsRejected(t *testing.T) {
	f := newDealFixture(t)

	_, err := f.svc.CreateDeal(context.Background(), CreateDealInput{
		LeadID:            f.lead.ID,
		PipelineID:        f.pipeline.ID,
		ResponsibleUserID: f.user.ID,
	})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestCreateDealStageMustBelongToPipeline(t *testing.T) {
	f := newDealFixture(t, "A", "B")
	ctx := context.Background()

	other, err := f.svc.CreatePipeline(ctx, bson.NewObjectID(), "Outro", []string{"X"})
	require.NoError(t, err)
	otherStages, err := f.svc.ListStages(ctx, other.ID)
	require.NoError(t, err)

	_, err = f.svc.CreateDeal(ctx, CreateDealInput{
		LeadID:            f.lead.ID,
		PipelineID:        f.pipeline.ID,
		StageID:           otherStages[0].ID,
		ResponsibleUserID: f.user.ID,
	})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestCreateDealUnknownLead(t *testing.T) {
	f := newDealFixture(t, "A")

	_, err := f.svc.CreateDeal(context.Background(), CreateDealInput{
		LeadID:            bson.NewObjectID(),
		PipelineID:        f.pipeline.ID,
		ResponsibleUserID: f.user.ID,
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMoveDealStage(t *testing.T) {
	f := newDealFixture(t, "Prospecção", "Proposta", "Fechamento")
	ctx := context.Background()

	deal := f.createDeal(t)

	moved, err := f.svc.MoveDealStage(ctx, deal.ID, f.stages[1].ID, "João")
	require.NoError(t, err)
	assert.Equal(t, f.stages[1].ID, moved.StageID)

	events, err := f.svc.ListDealEvents(ctx, deal.ID)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, schemas.DealEventMudancaEtapa, events[1].Tipo)
	assert.Contains(t, events[1].Descricao, "Proposta")
}

func TestMoveDealStageToOtherPipelineIsRejected(t *testing.T) {
	f := newDealFixture(t, "A", "B")
	ctx := context.Background()

	deal := f.createDeal(t)

	other, err := f.svc.CreatePipeline(ctx, bson.NewObjectID(), "Outro", []string{"X"})
	require.NoError(t, err)
	otherStages, err := f.svc.ListStages(ctx, other.ID)
	require.NoError(t, err)

	_, err = f.svc.MoveDealStage(ctx, deal.ID, otherStages[0].ID, "João")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestMarkWonDistributesFixedDiscount(t *testing.T) {
	f := newDealFixture(t, "Prospecção", "Proposta", "Fechamento")
	ctx := context.Background()

	deal := f.createDeal(t)
	f.attachProduct(t, deal.ID, "Plano Ouro", 60)
	f.attachProduct(t, deal.ID, "Suporte", 40)

	won, err := f.svc.MarkWon(ctx, deal.ID, "Cliente aceitou a proposta",
		&schemas.Discount{Type: schemas.DiscountFixed, Value: 10}, "João")
	require.NoError(t, err)

	assert.Equal(t, schemas.DealStatusGanha, won.Status)
	assert.Equal(t, f.stages[2].ID, won.StageID, "negociação ganha vai para a última etapa")
	require.Len(t, won.Produtos, 2)
	assert.InDelta(t, 54, won.Produtos[0].Valor, 0.0001)
	assert.InDelta(t, 36, won.Produtos[1].Valor, 0.0001)

	events, err := f.svc.ListDealEvents(ctx, deal.ID)
	require.NoError(t, err)
	last := events[len(events)-1]
	assert.Equal(t, schemas.DealEventMudancaStatus, last.Tipo)
	assert.Contains(t, last.Descricao, "GANHO")
	assert.Contains(t, last.Descricao, "Cliente aceitou a proposta")
}

func TestMarkWonAppliesPercentageDiscount(t *testing.T) {
	f := newDealFixture(t, "A", "B")
	ctx := context.Background()

	deal := f.createDeal(t)
	f.attachProduct(t, deal.ID, "Plano Ouro", 200)

	won, err := f.svc.MarkWon(ctx, deal.ID, "fechado",
		&schemas.Discount{Type: schemas.DiscountPercentage, Value: 25}, "João")
	require.NoError(t, err)
	require.Len(t, won.Produtos, 1)
	assert.InDelta(t, 150, won.Produtos[0].Valor, 0.0001)
}

func TestMarkWonWithoutDiscountKeepsValues(t *testing.T) {
	f := newDealFixture(t, "A", "B")
	ctx := context.Background()

	deal := f.createDeal(t)
	f.attachProduct(t, deal.ID, "Plano Ouro", 100)

	won, err := f.svc.MarkWon(ctx, deal.ID, "fechado", nil, "João")
	require.NoError(t, err)
	assert.InDelta(t, 100, won.Produtos[0].Valor, 0.0001)
}

func TestMarkWonRequiresJustification(t *testing.T) {
	f := newDealFixture(t, "A", "B")

	_, err := f.svc.MarkWon(context.Background(), f.createDeal(t).ID, "   ", nil, "João")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestMarkWonRejectsUnknownDiscountType(t *testing.T) {
	f := newDealFixture(t, "A", "B")

	_, err := f.svc.MarkWon(context.Background(), f.createDeal(t).ID, "fechado",
		&schemas.Discount{Type: "cupom", Value: 10}, "João")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestMarkLost(t *testing.T) {
	f := newDealFixture(t, "A", "B", "C")
	ctx := context.Background()

	deal := f.createDeal(t)
	f.attachProduct(t, deal.ID, "Plano Ouro", 100)

	lost, err := f.svc.MarkLost(ctx, deal.ID, "Concorrente foi mais barato", "João")
	require.NoError(t, err)
	assert.Equal(t, schemas.DealStatusPerdida, lost.Status)
	assert.Equal(t, f.stages[2].ID, lost.StageID)
	assert.InDelta(t, 100, lost.Produtos[0].Valor, 0.0001, "perda não mexe nos valores")

	events, err := f.svc.ListDealEvents(ctx, deal.ID)
	require.NoError(t, err)
	last := events[len(events)-1]
	assert.Contains(t, last.Descricao, "PERDIDO")
	assert.Contains(t, last.Descricao, "Concorrente foi mais barato")
}

func TestMarkLostRequiresReason(t *testing.T) {
	f := newDealFixture(t, "A", "B")

	_, err := f.svc.MarkLost(context.Background(), f.createDeal(t).ID, "", "João")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestClosedDealRejectsMutations(t *testing.T) {
	f := newDealFixture(t, "A", "B")
	ctx := context.Background()

	deal := f.createDeal(t)
	f.addProduct(t, "Plano Ouro", 100)

	_, err := f.svc.MarkWon(ctx, deal.ID, "fechado", nil, "João")
	require.NoError(t, err)

	_, err = f.svc.MoveDealStage(ctx, deal.ID, f.stages[0].ID, "João")
	assert.ErrorIs(t, err, ErrConflict)

	_, err = f.svc.MarkWon(ctx, deal.ID, "de novo", nil, "João")
	assert.ErrorIs(t, err, ErrConflict)

	_, err = f.svc.MarkLost(ctx, deal.ID, "mudou de ideia", "João")
	assert.ErrorIs(t, err, ErrConflict)

	var productID bson.ObjectID
	for id := range f.store.products {
		productID = id
	}
	_, err = f.svc.AttachProduct(ctx, deal.ID, productID)
	assert.ErrorIs(t, err, ErrConflict)

	_, err = f.svc.CreateTask(ctx, deal.ID, "ligar amanhã", deal.CreatedAt, "João")
	assert.ErrorIs(t, err, ErrConflict)
}

func TestAnnotateWorksOnClosedDeal(t *testing.T) {
	f := newDealFixture(t, "A", "B")
	ctx := context.Background()

	deal := f.createDeal(t)
	_, err := f.svc.MarkLost(ctx, deal.ID, "sem orçamento", "João")
	require.NoError(t, err)

	require.NoError(t, f.svc.Annotate(ctx, deal.ID, "cliente pode voltar no ano que vem", "João"))

	events, err := f.svc.ListDealEvents(ctx, deal.ID)
	require.NoError(t, err)
	last := events[len(events)-1]
	assert.Equal(t, schemas.DealEventAnotacao, last.Tipo)
}

func TestAnnotateRequiresDescription(t *testing.T) {
	f := newDealFixture(t, "A")

	err := f.svc.Annotate(context.Background(), f.createDeal(t).ID, " ", "João")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestAttachProductCopiesCatalogPrice(t *testing.T) {
	f := newDealFixture(t, "A", "B")
	ctx := context.Background()

	deal := f.createDeal(t)
	product := schemas.Product{ID: bson.NewObjectID(), Nome: "Plano Ouro", ValorTotal: 100, Parcelas: 3}
	f.store.products[product.ID] = product

	produtos, err := f.svc.AttachProduct(ctx, deal.ID, product.ID)
	require.NoError(t, err)
	require.Len(t, produtos, 1)
	assert.InDelta(t, 100, produtos[0].Valor, 0.0001)
	assert.Equal(t, 3, produtos[0].Parcelas)

	// mudança posterior no catálogo não afeta a cópia
	product.ValorTotal = 999
	f.store.products[product.ID] = product

	got, err := f.svc.GetDeal(ctx, deal.ID)
	require.NoError(t, err)
	assert.InDelta(t, 100, got.Produtos[0].Valor, 0.0001)
}

func TestDetachProduct(t *testing.T) {
	f := newDealFixture(t, "A", "B")
	ctx := context.Background()

	deal := f.createDeal(t)
	f.attachProduct(t, deal.ID, "Plano Ouro", 100)

	got, err := f.svc.GetDeal(ctx, deal.ID)
	require.NoError(t, err)
	require.Len(t, got.Produtos, 1)

	produtos, err := f.svc.DetachProduct(ctx, deal.ID, got.Produtos[0].ID)
	require.NoError(t, err)
	assert.Empty(t, produtos)

	_, err = f.svc.DetachProduct(ctx, deal.ID, bson.NewObjectID())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteAndRestoreDeal(t *testing.T) {
	f := newDealFixture(t, "A", "B")
	ctx := context.Background()

	deal := f.createDeal(t)

	require.NoError(t, f.svc.DeleteDeal(ctx, deal.ID, "João"))

	_, err := f.svc.GetDeal(ctx, deal.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	restored, err := f.svc.RestoreDeal(ctx, deal.ID, "João")
	require.NoError(t, err)
	assert.False(t, restored.Deleted)

	_, err = f.svc.RestoreDeal(ctx, deal.ID, "João")
	assert.ErrorIs(t, err, ErrConflict)

	events, err := f.svc.ListDealEvents(ctx, deal.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{
		schemas.DealEventCriacao,
		schemas.DealEventExclusao,
		schemas.DealEventRestauracao,
	}, eventTypes(events))
}

// TestDealUpdateVersionMismatch fixa o contrato de concorrência otimista do
// DealStore: a escrita é condicionada à versão lida, então o segundo escritor
// de uma corrida recebe Conflict.
func TestDealUpdateVersionMismatch(t *testing.T) {
	f := newDealFixture(t, "A", "B")
	ctx := context.Background()

	deal := f.createDeal(t)
	store := (*memDeals)(f.store)

	first, err := store.Get(ctx, deal.ID)
	require.NoError(t, err)
	second, err := store.Get(ctx, deal.ID)
	require.NoError(t, err)

	first.StageID = f.stages[1].ID
	require.NoError(t, store.Update(ctx, first))

	second.StageID = f.stages[0].ID
	err = store.Update(ctx, second)
	assert.ErrorIs(t, err, ErrConflict)
}

// TestDealLifecycle percorre o caminho feliz inteiro: criação, avanço de
// etapa, produtos, ganho com desconto e histórico completo.
func TestDealLifecycle(t *testing.T) {
	f := newDealFixture(t, "Prospecção", "Proposta", "Fechamento")
	ctx := context.Background()

	deal := f.createDeal(t)
	assert.Equal(t, f.stages[0].ID, deal.StageID)

	_, err := f.svc.MoveDealStage(ctx, deal.ID, f.stages[1].ID, "João")
	require.NoError(t, err)

	f.attachProduct(t, deal.ID, "Plano Ouro", 60)
	f.attachProduct(t, deal.ID, "Suporte", 40)

	won, err := f.svc.MarkWon(ctx, deal.ID, "Proposta aceita",
		&schemas.Discount{Type: schemas.DiscountFixed, Value: 10}, "João")
	require.NoError(t, err)

	assert.Equal(t, schemas.DealStatusGanha, won.Status)
	assert.Equal(t, f.stages[2].ID, won.StageID)

	var total float64
	for _, p := range won.Produtos {
		total += p.Valor
	}
	assert.InDelta(t, 90, total, 0.0001)

	events, err := f.svc.ListDealEvents(ctx, deal.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{
		schemas.DealEventCriacao,
		schemas.DealEventMudancaEtapa,
		schemas.DealEventMudancaStatus,
	}, eventTypes(events))
	assert.Contains(t, events[len(events)-1].Descricao, "GANHO")
}

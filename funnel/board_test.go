package funnel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestBoardGroupsOpenDealsByStage(t *testing.T) {
	f := newDealFixture(t, "Prospecção", "Proposta", "Fechamento")
	ctx := context.Background()

	first := f.createDeal(t)
	second := f.createDeal(t)
	_, err := f.svc.MoveDealStage(ctx, second.ID, f.stages[1].ID, "João")
	require.NoError(t, err)

	closed := f.createDeal(t)
	_, err = f.svc.MarkLost(ctx, closed.ID, "sem orçamento", "João")
	require.NoError(t, err)

	board, err := f.svc.Board(ctx, f.pipeline.ID)
	require.NoError(t, err)
	require.Len(t, board, 3)

	assert.Equal(t, "Prospecção", board[0].Stage.Nome)
	require.Len(t, board[0].Deals, 1)
	assert.Equal(t, first.ID, board[0].Deals[0].ID)

	require.Len(t, board[1].Deals, 1)
	assert.Equal(t, second.ID, board[1].Deals[0].ID)

	// negociação encerrada não aparece, mesmo estando na última etapa
	assert.Empty(t, board[2].Deals)
	assert.NotNil(t, board[2].Deals)
}

func TestBoardUnknownPipeline(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Board(context.Background(), bson.NewObjectID())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSummaryCountsAndTotalsPerStage(t *testing.T) {
	f := newDealFixture(t, "Prospecção", "Proposta")
	ctx := context.Background()

	first := f.createDeal(t)
	f.attachProduct(t, first.ID, "Plano Ouro", 100)
	f.attachProduct(t, first.ID, "Suporte", 50)

	second := f.createDeal(t)
	f.attachProduct(t, second.ID, "Plano Prata", 80)
	_, err := f.svc.MoveDealStage(ctx, second.ID, f.stages[1].ID, "João")
	require.NoError(t, err)

	summary, err := f.svc.Summary(ctx, f.pipeline.ID)
	require.NoError(t, err)
	require.Len(t, summary, 2)

	assert.Equal(t, "Prospecção", summary[0].Nome)
	assert.Equal(t, int64(1), summary[0].DealCount)
	assert.InDelta(t, 150, summary[0].ValorTotal, 0.0001)

	assert.Equal(t, "Proposta", summary[1].Nome)
	assert.Equal(t, int64(1), summary[1].DealCount)
	assert.InDelta(t, 80, summary[1].ValorTotal, 0.0001)
}

func TestSummaryIncludesEmptyStages(t *testing.T) {
	f := newDealFixture(t, "A", "B")

	summary, err := f.svc.Summary(context.Background(), f.pipeline.ID)
	require.NoError(t, err)
	require.Len(t, summary, 2)
	for _, row := range summary {
		assert.Equal(t, int64(0), row.DealCount)
		assert.Zero(t, row.ValorTotal)
	}
}

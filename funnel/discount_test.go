package funnel

import (
	"testing"

	"crm/schemas"

	"github.com/stretchr/testify/assert"
)

func produtos(valores ...float64) []schemas.DealProduct {
	out := make([]schemas.DealProduct, len(valores))
	for i, v := range valores {
		out[i] = schemas.DealProduct{Valor: v}
	}
	return out
}

func valores(produtos []schemas.DealProduct) []float64 {
	out := make([]float64, len(produtos))
	for i, p := range produtos {
		out[i] = p.Valor
	}
	return out
}

func TestApplyDiscountPercentage(t *testing.T) {
	result := applyDiscount(produtos(200, 100), schemas.Discount{
		Type:  schemas.DiscountPercentage,
		Value: 10,
	})
	assert.InDeltaSlice(t, []float64{180, 90}, valores(result), 0.0001)
}

func TestApplyDiscountFixedIsProportional(t *testing.T) {
	// 10 repartidos entre 60 e 40: 6 e 4
	result := applyDiscount(produtos(60, 40), schemas.Discount{
		Type:  schemas.DiscountFixed,
		Value: 10,
	})
	assert.InDeltaSlice(t, []float64{54, 36}, valores(result), 0.0001)
}

func TestApplyDiscountFixedLargerThanTotal(t *testing.T) {
	result := applyDiscount(produtos(60, 40), schemas.Discount{
		Type:  schemas.DiscountFixed,
		Value: 500,
	})
	assert.InDeltaSlice(t, []float64{0, 0}, valores(result), 0.0001)
}

func TestApplyDiscountPercentageOverHundred(t *testing.T) {
	result := applyDiscount(produtos(100), schemas.Discount{
		Type:  schemas.DiscountPercentage,
		Value: 150,
	})
	assert.InDeltaSlice(t, []float64{0}, valores(result), 0.0001)
}

func TestApplyDiscountFixedOnZeroTotal(t *testing.T) {
	result := applyDiscount(produtos(0, 0), schemas.Discount{
		Type:  schemas.DiscountFixed,
		Value: 10,
	})
	assert.InDeltaSlice(t, []float64{0, 0}, valores(result), 0.0001)
}

func TestApplyDiscountFixedOnEmptyList(t *testing.T) {
	result := applyDiscount(nil, schemas.Discount{
		Type:  schemas.DiscountFixed,
		Value: 10,
	})
	assert.Empty(t, result)
}

func TestValidateDiscount(t *testing.T) {
	assert.NoError(t, validateDiscount(nil))
	assert.NoError(t, validateDiscount(&schemas.Discount{Type: schemas.DiscountFixed, Value: 10}))
	assert.NoError(t, validateDiscount(&schemas.Discount{Type: schemas.DiscountPercentage, Value: 0}))

	err := validateDiscount(&schemas.Discount{Type: "cupom", Value: 10})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	err = validateDiscount(&schemas.Discount{Type: schemas.DiscountFixed, Value: -1})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

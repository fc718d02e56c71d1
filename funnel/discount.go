package funnel

import (
	"fmt"

	"crm/schemas"
)

func validateDiscount(d *schemas.Discount) error {
	if d == nil {
		return nil
	}
	if d.Type != schemas.DiscountPercentage && d.Type != schemas.DiscountFixed {
		return fmt.Errorf("%w: tipo de desconto desconhecido %q", ErrInvalidArgument, d.Type)
	}
	if d.Value < 0 {
		return fmt.Errorf("%w: o valor do desconto não pode ser negativo", ErrInvalidArgument)
	}
	return nil
}

// applyDiscount reescreve os valores dos produtos da negociação. O desconto
// fixo é repartido na proporção da participação de cada produto no total
// original, calculado uma única vez antes de qualquer reescrita. Nenhum valor
// fica negativo.
func applyDiscount(produtos []schemas.DealProduct, d schemas.Discount) []schemas.DealProduct {
	switch d.Type {
	case schemas.DiscountPercentage:
		for i := range produtos {
			produtos[i].Valor = floorZero(produtos[i].Valor * (1 - d.Value/100))
		}
	case schemas.DiscountFixed:
		var totalOriginal float64
		for _, p := range produtos {
			totalOriginal += p.Valor
		}
		if totalOriginal == 0 {
			// desconto fixo sobre negociação sem valor: nada a repartir
			return produtos
		}
		for i := range produtos {
			proportion := produtos[i].Valor / totalOriginal
			produtos[i].Valor = floorZero(produtos[i].Valor - d.Value*proportion)
		}
	}
	return produtos
}

func floorZero(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func discountSummary(d *schemas.Discount) string {
	if d == nil || d.Value <= 0 {
		return ""
	}
	if d.Type == schemas.DiscountPercentage {
		return fmt.Sprintf(" Desconto percentual de %.2f%% aplicado.", d.Value)
	}
	return fmt.Sprintf(" Desconto fixo de R$ %.2f distribuído entre os produtos.", d.Value)
}

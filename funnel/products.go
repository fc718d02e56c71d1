package funnel

import (
	"context"
	"fmt"

	"crm/schemas"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// AttachProduct copia o preço e o parcelamento atuais do produto do catálogo
// para dentro da negociação. Mudanças futuras no catálogo não afetam a cópia.
func (s *Service) AttachProduct(ctx context.Context, dealID, productID bson.ObjectID) ([]schemas.DealProduct, error) {
	deal, err := s.openDeal(ctx, dealID)
	if err != nil {
		return nil, err
	}

	product, err := s.st.Products.Get(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("produto: %w", err)
	}

	deal.Produtos = append(deal.Produtos, schemas.DealProduct{
		ID:        bson.NewObjectID(),
		ProductID: product.ID,
		Nome:      product.Nome,
		Valor:     product.ValorTotal,
		Parcelas:  product.Parcelas,
	})

	if err := s.st.Deals.Update(ctx, deal); err != nil {
		return nil, err
	}
	return deal.Produtos, nil
}

// DetachProduct remove um item da negociação pelo id da cópia (não do
// produto do catálogo).
func (s *Service) DetachProduct(ctx context.Context, dealID, dealProductID bson.ObjectID) ([]schemas.DealProduct, error) {
	deal, err := s.openDeal(ctx, dealID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, p := range deal.Produtos {
		if p.ID == dealProductID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("produto da negociação: %w", ErrNotFound)
	}

	deal.Produtos = append(deal.Produtos[:idx], deal.Produtos[idx+1:]...)

	if err := s.st.Deals.Update(ctx, deal); err != nil {
		return nil, err
	}
	return deal.Produtos, nil
}

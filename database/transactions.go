package database

import (
	"context"
)

// WithTransaction executa fn dentro de uma sessão Mongo. Todas as escritas
// feitas com o contexto recebido pela fn entram na mesma transação: ou tudo é
// aplicado, ou nada.
func WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx context.Context) (any, error) {
		return nil, fn(sessCtx)
	})
	return err
}

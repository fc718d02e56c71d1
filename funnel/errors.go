package funnel

import "errors"

// Erros sentinela do núcleo. Os handlers traduzem para o status HTTP:
// NotFound → 404, InvalidArgument → 400, Conflict → 409, resto → 500.
var (
	ErrNotFound        = errors.New("não encontrado")
	ErrInvalidArgument = errors.New("argumento inválido")
	ErrConflict        = errors.New("conflito")
)

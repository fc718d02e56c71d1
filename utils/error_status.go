package utils

import (
	"errors"
	"net/http"

	"crm/funnel"
)

// ErrorStatus traduz os erros sentinela do núcleo para o status HTTP.
func ErrorStatus(err error) int {
	switch {
	case errors.Is(err, funnel.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, funnel.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, funnel.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// IsClientError diz se o erro deve ser mostrado ao cliente como mensagem
// (4xx) ou escondido atrás de um código interno (5xx).
func IsClientError(err error) bool {
	return ErrorStatus(err) < http.StatusInternalServerError
}

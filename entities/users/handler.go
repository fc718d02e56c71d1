package users

import (
	"net/http"

	"crm/repository"
	"crm/utils"

	"go.uber.org/zap"
)

// Handler é somente leitura: o cadastro de usuários pertence ao serviço
// externo de autenticação.
type Handler struct {
	repo   *repository.Users
	logger *zap.Logger
}

func NewHandler(repo *repository.Users, logger *zap.Logger) *Handler {
	return &Handler{repo: repo, logger: logger}
}

func (h *Handler) fail(w http.ResponseWriter, err error, internalErrorCode int) {
	if utils.IsClientError(err) {
		utils.SendResponse(w, utils.ErrorStatus(err), err.Error(), nil, 0)
		return
	}
	h.logger.Error("erro ao operar usuários", zap.Error(err))
	utils.SendResponse(w, http.StatusInternalServerError, "", nil, internalErrorCode)
}

package tasks

import (
	"net/http"

	"crm/funnel"
	"crm/middlewares"
	"crm/utils"

	"go.uber.org/zap"
)

type Handler struct {
	service *funnel.Service
	logger  *zap.Logger
}

func NewHandler(service *funnel.Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) fail(w http.ResponseWriter, err error, internalErrorCode int) {
	if utils.IsClientError(err) {
		utils.SendResponse(w, utils.ErrorStatus(err), err.Error(), nil, 0)
		return
	}
	h.logger.Error("erro ao operar tarefas", zap.Error(err))
	utils.SendResponse(w, http.StatusInternalServerError, "", nil, internalErrorCode)
}

func autorFrom(r *http.Request) string {
	if user, ok := middlewares.UserFrom(r); ok {
		return user.Name
	}
	return ""
}

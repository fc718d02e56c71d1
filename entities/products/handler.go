package products

import (
	"net/http"

	"crm/repository"
	"crm/utils"

	"go.uber.org/zap"
)

type Handler struct {
	repo   *repository.Products
	logger *zap.Logger
}

func NewHandler(repo *repository.Products, logger *zap.Logger) *Handler {
	return &Handler{repo: repo, logger: logger}
}

func (h *Handler) fail(w http.ResponseWriter, err error, internalErrorCode int) {
	if utils.IsClientError(err) {
		utils.SendResponse(w, utils.ErrorStatus(err), err.Error(), nil, 0)
		return
	}
	h.logger.Error("erro ao operar produtos", zap.Error(err))
	utils.SendResponse(w, http.StatusInternalServerError, "", nil, internalErrorCode)
}

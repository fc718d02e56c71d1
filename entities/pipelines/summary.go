package pipelines

import (
	"context"
	"net/http"

	"crm/database"
	"crm/utils"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Summary devolve, por etapa, a quantidade de negociações abertas e o valor
// somado dos produtos anexados.
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	pipelineID, err := bson.ObjectIDFromHex(r.PathValue("id"))
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.INVALID_PIPELINE_ID_FORMAT)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), database.MONGO_TIMEOUT)
	defer cancel()

	summary, err := h.service.Summary(ctx, pipelineID)
	if err != nil {
		h.fail(w, err, utils.CANNOT_FIND_DEALS_IN_MONGODB)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", summary, 0)
}

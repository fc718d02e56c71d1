package pipelines

import (
	"context"
	"net/http"

	"crm/database"
	"crm/utils"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Board devolve as colunas do kanban: cada etapa do funil com suas
// negociações abertas.
func (h *Handler) Board(w http.ResponseWriter, r *http.Request) {
	pipelineID, err := bson.ObjectIDFromHex(r.PathValue("id"))
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.INVALID_PIPELINE_ID_FORMAT)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), database.MONGO_TIMEOUT)
	defer cancel()

	board, err := h.service.Board(ctx, pipelineID)
	if err != nil {
		h.fail(w, err, utils.CANNOT_FIND_DEALS_IN_MONGODB)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", board, 0)
}

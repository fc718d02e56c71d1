package pipelines

import (
	"context"
	"net/http"

	"crm/database"
	"crm/utils"

	"go.mongodb.org/mongo-driver/v2/bson"
)

func (h *Handler) DeleteOne(w http.ResponseWriter, r *http.Request) {
	pipelineID, err := bson.ObjectIDFromHex(r.PathValue("id"))
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.INVALID_PIPELINE_ID_FORMAT)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), database.MONGO_TIMEOUT)
	defer cancel()

	if err := h.service.DeletePipeline(ctx, pipelineID); err != nil {
		h.fail(w, err, utils.CANNOT_UPDATE_PIPELINE_IN_MONGODB)
		return
	}

	utils.SendResponse(w, http.StatusNoContent, "", nil, 0)
}

package stages

import (
	"context"
	"net/http"

	"crm/database"
	"crm/utils"

	"go.mongodb.org/mongo-driver/v2/bson"
)

func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	pipelineID, err := bson.ObjectIDFromHex(r.PathValue("id"))
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.INVALID_PIPELINE_ID_FORMAT)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), database.MONGO_TIMEOUT)
	defer cancel()

	stages, err := h.service.ListStages(ctx, pipelineID)
	if err != nil {
		h.fail(w, err, utils.CANNOT_FIND_STAGES_IN_MONGODB)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", stages, 0)
}

package pipelines

import (
	"context"
	"encoding/json"
	"net/http"

	"crm/database"
	"crm/utils"

	"go.mongodb.org/mongo-driver/v2/bson"
)

func (h *Handler) UpdateOne(w http.ResponseWriter, r *http.Request) {
	pipelineID, err := bson.ObjectIDFromHex(r.PathValue("id"))
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.INVALID_PIPELINE_ID_FORMAT)
		return
	}

	body := struct {
		Nome string `json:"nome"`
	}{}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.PIPELINES_INVALID_REQUEST_DATA)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), database.MONGO_TIMEOUT)
	defer cancel()

	pipeline, err := h.service.RenamePipeline(ctx, pipelineID, body.Nome)
	if err != nil {
		h.fail(w, err, utils.CANNOT_UPDATE_PIPELINE_IN_MONGODB)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", pipeline, 0)
}

package stages

import (
	"context"
	"encoding/json"
	"net/http"

	"crm/database"
	"crm/utils"

	"go.mongodb.org/mongo-driver/v2/bson"
)

func (h *Handler) CreateOne(w http.ResponseWriter, r *http.Request) {
	pipelineID, err := bson.ObjectIDFromHex(r.PathValue("id"))
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.INVALID_PIPELINE_ID_FORMAT)
		return
	}

	body := struct {
		Nome string `json:"nome"`
	}{}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.STAGES_INVALID_REQUEST_DATA)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), database.MONGO_TIMEOUT)
	defer cancel()

	stage, err := h.service.CreateStage(ctx, pipelineID, body.Nome)
	if err != nil {
		h.fail(w, err, utils.CANNOT_INSERT_STAGE_TO_MONGODB)
		return
	}

	utils.SendResponse(w, http.StatusCreated, "", stage, 0)
}

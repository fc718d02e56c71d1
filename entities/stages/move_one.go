package stages

import (
	"context"
	"encoding/json"
	"net/http"

	"crm/database"
	"crm/utils"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// MoveOne muda a posição de uma etapa dentro do funil e devolve a lista de
// etapas já renumerada.
func (h *Handler) MoveOne(w http.ResponseWriter, r *http.Request) {
	stageID, err := bson.ObjectIDFromHex(r.PathValue("id"))
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.INVALID_STAGE_ID_FORMAT)
		return
	}

	body := struct {
		Posicao *int `json:"posicao"`
	}{}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Posicao == nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.STAGES_INVALID_REQUEST_DATA)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), database.MONGO_TIMEOUT)
	defer cancel()

	stages, err := h.service.MoveStage(ctx, stageID, *body.Posicao)
	if err != nil {
		h.fail(w, err, utils.CANNOT_UPDATE_STAGE_IN_MONGODB)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", stages, 0)
}

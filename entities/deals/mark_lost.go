package deals

import (
	"context"
	"encoding/json"
	"net/http"

	"crm/database"
	"crm/utils"

	"go.mongodb.org/mongo-driver/v2/bson"
)

func (h *Handler) MarkLost(w http.ResponseWriter, r *http.Request) {
	dealID, err := bson.ObjectIDFromHex(r.PathValue("id"))
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.INVALID_DEAL_ID_FORMAT)
		return
	}

	body := struct {
		Motivo string `json:"motivo"`
	}{}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.DEALS_INVALID_REQUEST_DATA)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), database.MONGO_TIMEOUT)
	defer cancel()

	deal, err := h.service.MarkLost(ctx, dealID, body.Motivo, autorFrom(r))
	if err != nil {
		h.fail(w, err, utils.CANNOT_UPDATE_DEAL_IN_MONGODB)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", deal, 0)
}

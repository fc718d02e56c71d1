package deals

import (
	"context"
	"net/http"

	"crm/database"
	"crm/utils"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// GetEvents devolve o histórico da negociação em ordem cronológica.
func (h *Handler) GetEvents(w http.ResponseWriter, r *http.Request) {
	dealID, err := bson.ObjectIDFromHex(r.PathValue("id"))
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.INVALID_DEAL_ID_FORMAT)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), database.MONGO_TIMEOUT)
	defer cancel()

	events, err := h.service.ListDealEvents(ctx, dealID)
	if err != nil {
		h.fail(w, err, utils.CANNOT_FIND_DEAL_EVENTS_IN_MONGODB)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", events, 0)
}

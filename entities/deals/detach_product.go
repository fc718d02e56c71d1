package deals

import (
	"context"
	"net/http"

	"crm/database"
	"crm/utils"

	"go.mongodb.org/mongo-driver/v2/bson"
)

func (h *Handler) DetachProduct(w http.ResponseWriter, r *http.Request) {
	dealID, err := bson.ObjectIDFromHex(r.PathValue("id"))
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.INVALID_DEAL_ID_FORMAT)
		return
	}

	itemID, err := bson.ObjectIDFromHex(r.PathValue("itemId"))
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.INVALID_PRODUCT_ID_FORMAT)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), database.MONGO_TIMEOUT)
	defer cancel()

	produtos, err := h.service.DetachProduct(ctx, dealID, itemID)
	if err != nil {
		h.fail(w, err, utils.CANNOT_UPDATE_DEAL_IN_MONGODB)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", produtos, 0)
}

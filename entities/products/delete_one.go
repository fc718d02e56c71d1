package products

import (
	"context"
	"net/http"

	"crm/database"
	"crm/utils"

	"go.mongodb.org/mongo-driver/v2/bson"
)

func (h *Handler) DeleteOne(w http.ResponseWriter, r *http.Request) {
	productID, err := bson.ObjectIDFromHex(r.PathValue("id"))
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.INVALID_PRODUCT_ID_FORMAT)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), database.MONGO_TIMEOUT)
	defer cancel()

	if err := h.repo.SoftDelete(ctx, productID); err != nil {
		h.fail(w, err, utils.CANNOT_UPDATE_PRODUCT_IN_MONGODB)
		return
	}

	utils.SendResponse(w, http.StatusNoContent, "", nil, 0)
}

package products

import (
	"context"
	"net/http"

	"crm/database"
	"crm/utils"

	"go.mongodb.org/mongo-driver/v2/bson"
)

func (h *Handler) GetOne(w http.ResponseWriter, r *http.Request) {
	productID, err := bson.ObjectIDFromHex(r.PathValue("id"))
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.INVALID_PRODUCT_ID_FORMAT)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), database.MONGO_TIMEOUT)
	defer cancel()

	product, err := h.repo.Get(ctx, productID)
	if err != nil {
		h.fail(w, err, utils.CANNOT_FIND_PRODUCTS_IN_MONGODB)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", product, 0)
}

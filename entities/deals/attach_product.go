package deals

import (
	"context"
	"encoding/json"
	"net/http"

	"crm/database"
	"crm/utils"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// AttachProduct anexa um produto do catálogo à negociação. O valor é copiado
// do catálogo no momento do anexo.
func (h *Handler) AttachProduct(w http.ResponseWriter, r *http.Request) {
	dealID, err := bson.ObjectIDFromHex(r.PathValue("id"))
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.INVALID_DEAL_ID_FORMAT)
		return
	}

	body := struct {
		ProductID bson.ObjectID `json:"product_id"`
	}{}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.ProductID.IsZero() {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.DEALS_INVALID_REQUEST_DATA)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), database.MONGO_TIMEOUT)
	defer cancel()

	produtos, err := h.service.AttachProduct(ctx, dealID, body.ProductID)
	if err != nil {
		h.fail(w, err, utils.CANNOT_UPDATE_DEAL_IN_MONGODB)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", produtos, 0)
}

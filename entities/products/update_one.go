package products

import (
	"context"
	"encoding/json"
	"net/http"

	"crm/database"
	"crm/utils"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// UpdateOne atualiza apenas os campos presentes no corpo. Alterar o valor do
// catálogo não mexe em negociações: o preço anexado é uma cópia.
func (h *Handler) UpdateOne(w http.ResponseWriter, r *http.Request) {
	productID, err := bson.ObjectIDFromHex(r.PathValue("id"))
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.INVALID_PRODUCT_ID_FORMAT)
		return
	}

	body := struct {
		Nome       *string  `json:"nome"`
		ValorTotal *float64 `json:"valor_total"`
		Parcelas   *int     `json:"parcelas"`
	}{}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.PRODUCTS_INVALID_REQUEST_DATA)
		return
	}

	fields := bson.D{}
	if body.Nome != nil {
		fields = append(fields, bson.E{Key: "nome", Value: *body.Nome})
	}
	if body.ValorTotal != nil {
		if *body.ValorTotal < 0 {
			utils.SendResponse(w, http.StatusBadRequest, "O valor do produto não pode ser negativo", nil, 0)
			return
		}
		fields = append(fields, bson.E{Key: "valor_total", Value: *body.ValorTotal})
	}
	if body.Parcelas != nil {
		fields = append(fields, bson.E{Key: "parcelas", Value: *body.Parcelas})
	}

	ctx, cancel := context.WithTimeout(r.Context(), database.MONGO_TIMEOUT)
	defer cancel()

	if err := h.repo.Update(ctx, productID, fields); err != nil {
		h.fail(w, err, utils.CANNOT_UPDATE_PRODUCT_IN_MONGODB)
		return
	}

	product, err := h.repo.Get(ctx, productID)
	if err != nil {
		h.fail(w, err, utils.CANNOT_FIND_PRODUCTS_IN_MONGODB)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", product, 0)
}

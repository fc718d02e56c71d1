package products

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"crm/database"
	"crm/schemas"
	"crm/utils"
)

func (h *Handler) CreateOne(w http.ResponseWriter, r *http.Request) {
	product := schemas.Product{}
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.PRODUCTS_INVALID_REQUEST_DATA)
		return
	}
	if strings.TrimSpace(product.Nome) == "" {
		utils.SendResponse(w, http.StatusBadRequest, "O nome do produto é obrigatório", nil, 0)
		return
	}
	if product.ValorTotal < 0 {
		utils.SendResponse(w, http.StatusBadRequest, "O valor do produto não pode ser negativo", nil, 0)
		return
	}

	product.Deleted = false
	product.CreatedAt = time.Now()
	product.UpdatedAt = time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), database.MONGO_TIMEOUT)
	defer cancel()

	if err := h.repo.Insert(ctx, &product); err != nil {
		h.fail(w, err, utils.CANNOT_INSERT_PRODUCT_TO_MONGODB)
		return
	}

	utils.SendResponse(w, http.StatusCreated, "", product, 0)
}

package companies

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
	company := schemas.Company{}
	if err := json.NewDecoder(r.Body).Decode(&company); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.COMPANIES_INVALID_REQUEST_DATA)
		return
	}
	if strings.TrimSpace(company.Nome) == "" {
		utils.SendResponse(w, http.StatusBadRequest, "O nome da empresa é obrigatório", nil, 0)
		return
	}

	company.Deleted = false
	company.CreatedAt = time.Now()
	company.UpdatedAt = time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), database.MONGO_TIMEOUT)
	defer cancel()

	if err := h.repo.Insert(ctx, &company); err != nil {
		h.fail(w, err, utils.CANNOT_INSERT_COMPANY_TO_MONGODB)
		return
	}

	utils.SendResponse(w, http.StatusCreated, "", company, 0)
}

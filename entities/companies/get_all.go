package companies

import (
	"context"
	"net/http"

	"crm/database"
	"crm/utils"
)

func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), database.MONGO_TIMEOUT)
	defer cancel()

	companies, err := h.repo.List(ctx)
	if err != nil {
		h.fail(w, err, utils.CANNOT_FIND_COMPANIES_IN_MONGODB)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", companies, 0)
}

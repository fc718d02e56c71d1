package companies

import (
	"context"
	"net/http"

	"crm/database"
	"crm/utils"

	"go.mongodb.org/mongo-driver/v2/bson"
)

func (h *Handler) GetOne(w http.ResponseWriter, r *http.Request) {
	companyID, err := bson.ObjectIDFromHex(r.PathValue("id"))
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.INVALID_COMPANY_ID_FORMAT)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), database.MONGO_TIMEOUT)
	defer cancel()

	company, err := h.repo.Get(ctx, companyID)
	if err != nil {
		h.fail(w, err, utils.CANNOT_FIND_COMPANIES_IN_MONGODB)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", company, 0)
}

package pipelines

import (
	"context"
	"net/http"

	"crm/database"
	"crm/utils"

	"go.mongodb.org/mongo-driver/v2/bson"
)

func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	companyID := bson.ObjectID{}
	if raw := r.URL.Query().Get("company_id"); raw != "" {
		id, err := bson.ObjectIDFromHex(raw)
		if err != nil {
			utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.INVALID_COMPANY_ID_FORMAT)
			return
		}
		companyID = id
	}

	ctx, cancel := context.WithTimeout(r.Context(), database.MONGO_TIMEOUT)
	defer cancel()

	pipelines, err := h.service.ListPipelines(ctx, companyID)
	if err != nil {
		h.fail(w, err, utils.CANNOT_FIND_PIPELINES_IN_MONGODB)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", pipelines, 0)
}

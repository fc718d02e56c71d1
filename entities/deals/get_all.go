package deals

import (
	"context"
	"net/http"

	"crm/database"
	"crm/funnel"
	"crm/utils"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// GetAll lista negociações. Filtros por query string: company_id,
// pipeline_id, stage_id, status, from e to (datas de criação).
func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := funnel.DealFilter{Status: query.Get("status")}

	ids := []struct {
		param string
		dest  *bson.ObjectID
		code  int
	}{
		{"company_id", &filter.CompanyID, utils.INVALID_COMPANY_ID_FORMAT},
		{"pipeline_id", &filter.PipelineID, utils.INVALID_PIPELINE_ID_FORMAT},
		{"stage_id", &filter.StageID, utils.INVALID_STAGE_ID_FORMAT},
	}
	for _, id := range ids {
		raw := query.Get(id.param)
		if raw == "" {
			continue
		}
		parsed, err := bson.ObjectIDFromHex(raw)
		if err != nil {
			utils.SendResponse(w, http.StatusBadRequest, "", nil, id.code)
			return
		}
		*id.dest = parsed
	}

	if raw := query.Get("from"); raw != "" {
		from, ok := utils.ParseDate(raw)
		if !ok {
			utils.SendResponse(w, http.StatusBadRequest, "Data inicial inválida", nil, 0)
			return
		}
		filter.From = from
	}
	if raw := query.Get("to"); raw != "" {
		to, ok := utils.ParseDate(raw)
		if !ok {
			utils.SendResponse(w, http.StatusBadRequest, "Data final inválida", nil, 0)
			return
		}
		filter.To = to
	}

	ctx, cancel := context.WithTimeout(r.Context(), database.MONGO_TIMEOUT)
	defer cancel()

	deals, err := h.service.ListDeals(ctx, filter)
	if err != nil {
		h.fail(w, err, utils.CANNOT_FIND_DEALS_IN_MONGODB)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", deals, 0)
}

package deals

import (
	"context"
	"encoding/json"
	"net/http"

	"crm/database"
	"crm/funnel"
	"crm/utils"

	"go.mongodb.org/mongo-driver/v2/bson"
)

func (h *Handler) CreateOne(w http.ResponseWriter, r *http.Request) {
	body := struct {
		CompanyID         bson.ObjectID `json:"company_id"`
		LeadID            bson.ObjectID `json:"lead_id"`
		PipelineID        bson.ObjectID `json:"pipeline_id"`
		StageID           bson.ObjectID `json:"stage_id"`
		ResponsibleUserID bson.ObjectID `json:"responsible_user_id"`
	}{}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.DEALS_INVALID_REQUEST_DATA)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), database.MONGO_TIMEOUT)
	defer cancel()

	deal, err := h.service.CreateDeal(ctx, funnel.CreateDealInput{
		CompanyID:         body.CompanyID,
		LeadID:            body.LeadID,
		PipelineID:        body.PipelineID,
		StageID:           body.StageID,
		ResponsibleUserID: body.ResponsibleUserID,
		Autor:             autorFrom(r),
	})
	if err != nil {
		h.fail(w, err, utils.CANNOT_INSERT_DEAL_TO_MONGODB)
		return
	}

	utils.SendResponse(w, http.StatusCreated, "", deal, 0)
}

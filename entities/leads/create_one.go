package leads

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"crm/database"
	"crm/funnel"
	"crm/middlewares"
	"crm/schemas"
	"crm/utils"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// CreateOne cadastra um lead. Quando o corpo traz "pipeline_id", já abre uma
// negociação para o lead na primeira etapa do funil informado.
func (h *Handler) CreateOne(w http.ResponseWriter, r *http.Request) {
	body := struct {
		schemas.Lead
		PipelineID bson.ObjectID `json:"pipeline_id"`
		StageID    bson.ObjectID `json:"stage_id"`
	}{}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.LEADS_INVALID_REQUEST_DATA)
		return
	}
	if strings.TrimSpace(body.Nome) == "" {
		utils.SendResponse(w, http.StatusBadRequest, "O nome do lead é obrigatório", nil, 0)
		return
	}

	lead := body.Lead
	lead.ID = bson.ObjectID{}
	lead.Deleted = false
	lead.CreatedAt = time.Now()
	lead.UpdatedAt = time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), database.MONGO_TIMEOUT)
	defer cancel()

	if err := h.repo.Insert(ctx, &lead); err != nil {
		h.fail(w, err, utils.CANNOT_INSERT_LEAD_TO_MONGODB)
		return
	}

	if body.PipelineID.IsZero() {
		utils.SendResponse(w, http.StatusCreated, "", lead, 0)
		return
	}

	autor := ""
	if user, ok := middlewares.UserFrom(r); ok {
		autor = user.Name
	}

	deal, err := h.service.CreateDeal(ctx, funnel.CreateDealInput{
		CompanyID:         lead.CompanyID,
		LeadID:            lead.ID,
		PipelineID:        body.PipelineID,
		StageID:           body.StageID,
		ResponsibleUserID: lead.Responsible,
		Autor:             autor,
	})
	if err != nil {
		h.fail(w, err, utils.CANNOT_INSERT_DEAL_TO_MONGODB)
		return
	}

	utils.SendResponse(w, http.StatusCreated, "", map[string]any{
		"lead": lead,
		"deal": deal,
	}, 0)
}

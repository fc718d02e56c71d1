package pipelines

import (
	"context"
	"encoding/json"
	"net/http"

	"crm/database"
	"crm/utils"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// CreateOne cria um funil. Quando o corpo traz "etapas", elas são criadas
// junto, já na ordem recebida.
func (h *Handler) CreateOne(w http.ResponseWriter, r *http.Request) {
	body := struct {
		CompanyID bson.ObjectID `json:"company_id"`
		Nome      string        `json:"nome"`
		Etapas    []string      `json:"etapas"`
	}{}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.PIPELINES_INVALID_REQUEST_DATA)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), database.MONGO_TIMEOUT)
	defer cancel()

	pipeline, err := h.service.CreatePipeline(ctx, body.CompanyID, body.Nome, body.Etapas)
	if err != nil {
		h.fail(w, err, utils.CANNOT_INSERT_PIPELINE_TO_MONGODB)
		return
	}

	utils.SendResponse(w, http.StatusCreated, "", pipeline, 0)
}

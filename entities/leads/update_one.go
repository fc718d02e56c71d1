package leads

import (
	"context"
	"encoding/json"
	"net/http"

	"crm/database"
	"crm/schemas"
	"crm/utils"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// UpdateOne atualiza apenas os campos presentes no corpo.
func (h *Handler) UpdateOne(w http.ResponseWriter, r *http.Request) {
	leadID, err := bson.ObjectIDFromHex(r.PathValue("id"))
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.INVALID_LEAD_ID_FORMAT)
		return
	}

	body := schemas.Lead{}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.LEADS_INVALID_REQUEST_DATA)
		return
	}

	fields := bson.D{}
	if body.Nome != "" {
		fields = append(fields, bson.E{Key: "nome", Value: body.Nome})
	}
	if body.Email != "" {
		fields = append(fields, bson.E{Key: "email", Value: body.Email})
	}
	if body.Phone != "" {
		fields = append(fields, bson.E{Key: "phone", Value: body.Phone})
	}
	if body.Segment != "" {
		fields = append(fields, bson.E{Key: "segment", Value: body.Segment})
	}
	if body.Source != "" {
		fields = append(fields, bson.E{Key: "source", Value: body.Source})
	}
	if body.Notes != "" {
		fields = append(fields, bson.E{Key: "notes", Value: body.Notes})
	}
	if !body.Responsible.IsZero() {
		fields = append(fields, bson.E{Key: "responsible", Value: body.Responsible})
	}

	ctx, cancel := context.WithTimeout(r.Context(), database.MONGO_TIMEOUT)
	defer cancel()

	if err := h.repo.Update(ctx, leadID, fields); err != nil {
		h.fail(w, err, utils.CANNOT_UPDATE_LEAD_IN_MONGODB)
		return
	}

	lead, err := h.repo.Get(ctx, leadID)
	if err != nil {
		h.fail(w, err, utils.CANNOT_FIND_LEADS_IN_MONGODB)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", lead, 0)
}

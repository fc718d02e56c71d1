package tasks

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"crm/database"
	"crm/utils"

	"go.mongodb.org/mongo-driver/v2/bson"
)

func (h *Handler) CreateOne(w http.ResponseWriter, r *http.Request) {
	dealID, err := bson.ObjectIDFromHex(r.PathValue("id"))
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.INVALID_DEAL_ID_FORMAT)
		return
	}

	body := struct {
		Descricao string    `json:"descricao"`
		DueDate   time.Time `json:"due_date"`
	}{}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.TASKS_INVALID_REQUEST_DATA)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), database.MONGO_TIMEOUT)
	defer cancel()

	task, err := h.service.CreateTask(ctx, dealID, body.Descricao, body.DueDate, autorFrom(r))
	if err != nil {
		h.fail(w, err, utils.CANNOT_INSERT_TASK_TO_MONGODB)
		return
	}

	utils.SendResponse(w, http.StatusCreated, "", task, 0)
}

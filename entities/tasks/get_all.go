package tasks

import (
	"context"
	"net/http"

	"crm/database"
	"crm/utils"

	"go.mongodb.org/mongo-driver/v2/bson"
)

func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	dealID, err := bson.ObjectIDFromHex(r.PathValue("id"))
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.INVALID_DEAL_ID_FORMAT)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), database.MONGO_TIMEOUT)
	defer cancel()

	tasks, err := h.service.ListTasks(ctx, dealID)
	if err != nil {
		h.fail(w, err, utils.CANNOT_FIND_TASKS_IN_MONGODB)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", tasks, 0)
}

package tasks

import (
	"context"
	"net/http"

	"crm/database"
	"crm/utils"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// CompleteOne marca a tarefa como concluída. Concluir de novo é inócuo.
func (h *Handler) CompleteOne(w http.ResponseWriter, r *http.Request) {
	taskID, err := bson.ObjectIDFromHex(r.PathValue("id"))
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.INVALID_TASK_ID_FORMAT)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), database.MONGO_TIMEOUT)
	defer cancel()

	task, err := h.service.CompleteTask(ctx, taskID)
	if err != nil {
		h.fail(w, err, utils.CANNOT_UPDATE_TASK_IN_MONGODB)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", task, 0)
}

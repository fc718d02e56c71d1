package utils

import "fmt"

// Códigos internos enviados ao cliente no lugar de detalhes de erro. O zero é
// reservado para "sem erro" (ver SendResponse).
const (
	CANNOT_CONNECT_TO_MONGODB = iota + 1

	LEADS_INVALID_REQUEST_DATA
	INVALID_LEAD_ID_FORMAT
	CANNOT_INSERT_LEAD_TO_MONGODB
	CANNOT_FIND_LEADS_IN_MONGODB
	CANNOT_UPDATE_LEAD_IN_MONGODB

	PIPELINES_INVALID_REQUEST_DATA
	INVALID_PIPELINE_ID_FORMAT
	CANNOT_INSERT_PIPELINE_TO_MONGODB
	CANNOT_FIND_PIPELINES_IN_MONGODB
	CANNOT_UPDATE_PIPELINE_IN_MONGODB

	STAGES_INVALID_REQUEST_DATA
	INVALID_STAGE_ID_FORMAT
	CANNOT_INSERT_STAGE_TO_MONGODB
	CANNOT_FIND_STAGES_IN_MONGODB
	CANNOT_UPDATE_STAGE_IN_MONGODB

	DEALS_INVALID_REQUEST_DATA
	INVALID_DEAL_ID_FORMAT
	CANNOT_INSERT_DEAL_TO_MONGODB
	CANNOT_FIND_DEALS_IN_MONGODB
	CANNOT_UPDATE_DEAL_IN_MONGODB
	CANNOT_FIND_DEAL_EVENTS_IN_MONGODB

	PRODUCTS_INVALID_REQUEST_DATA
	INVALID_PRODUCT_ID_FORMAT
	CANNOT_INSERT_PRODUCT_TO_MONGODB
	CANNOT_FIND_PRODUCTS_IN_MONGODB
	CANNOT_UPDATE_PRODUCT_IN_MONGODB

	TASKS_INVALID_REQUEST_DATA
	INVALID_TASK_ID_FORMAT
	CANNOT_INSERT_TASK_TO_MONGODB
	CANNOT_FIND_TASKS_IN_MONGODB
	CANNOT_UPDATE_TASK_IN_MONGODB

	COMPANIES_INVALID_REQUEST_DATA
	INVALID_COMPANY_ID_FORMAT
	CANNOT_INSERT_COMPANY_TO_MONGODB
	CANNOT_FIND_COMPANIES_IN_MONGODB

	USERS_INVALID_REQUEST_DATA
	INVALID_USER_ID_FORMAT
	CANNOT_FIND_USERS_IN_MONGODB
)

func SendInternalError(internalErrorCode int) string {
	return fmt.Sprintf("Ocorreu um erro interno no servidor. Por favor, tente novamene mais tarde (Cod: %d)", internalErrorCode)
}

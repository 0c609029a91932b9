package dto

// SuccessResponse - простой ответ без данных
type SuccessResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

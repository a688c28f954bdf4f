package dto

// MessageResponse is a plain greeting or acknowledgement
type MessageResponse struct {
	Message string `json:"message" example:"Welcome to the Invoice API"`
}

// ErrorResponse is the body of every error the API returns
type ErrorResponse struct {
	Error string `json:"error" example:"Invoice not found"`
}

// NewErrorResponse creates an error response
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// HealthResponse reports liveness and the size of the loaded collections
type HealthResponse struct {
	Status    string `json:"status" example:"healthy"`
	Time      string `json:"time" example:"2024-01-15T12:00:00Z"`
	Invoices  int    `json:"invoices" example:"3"`
	Processes int    `json:"processes" example:"2"`
}

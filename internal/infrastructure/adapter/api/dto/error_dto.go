package dto

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

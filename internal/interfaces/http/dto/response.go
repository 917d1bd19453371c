package dto

import (
	"net/http"
	"time"
)

// errorTimestampLayout is the format used in error response timestamps
const errorTimestampLayout = "2006-01-02 15:04:05"

// ErrorResponse is the body returned for every failed request
type ErrorResponse struct {
	Message   string   `json:"message"`
	Status    int      `json:"status"`
	Error     string   `json:"error"`
	Path      string   `json:"path"`
	Timestamp string   `json:"timestamp"`
	Details   []string `json:"details,omitempty"`
}

// NewErrorResponse creates an error response for the given status and message
func NewErrorResponse(status int, message, path string) ErrorResponse {
	return ErrorResponse{
		Message:   message,
		Status:    status,
		Error:     http.StatusText(status),
		Path:      path,
		Timestamp: time.Now().Format(errorTimestampLayout),
	}
}

// NewValidationErrorResponse creates a 400 response carrying one entry per
// violated field
func NewValidationErrorResponse(path string, details []string) ErrorResponse {
	resp := NewErrorResponse(http.StatusBadRequest, "Erro de validação", path)
	resp.Details = details
	return resp
}

package dto

import (
	"net/http"

	"github.com/clientesvc/backend/internal/domain/shared"
)

// ErrorCodeHTTPStatus maps domain error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	shared.CodeNotFound:         http.StatusNotFound,
	shared.CodeDuplicateCPF:     http.StatusConflict,
	shared.CodeMissingHeader:    http.StatusBadRequest,
	shared.CodeValidationFailed: http.StatusBadRequest,
	shared.CodeInternal:         http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for a domain error code.
// Unknown codes map to 500 Internal Server Error.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

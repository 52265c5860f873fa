package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/philly/arch-gallery/backend/internal/platform/apperror"
)

// Error codes written by middleware. They share the business-code namespace
// used by handlers so clients see a single vocabulary.
const (
	ErrorCodeUnauthorized        = string(apperror.BusinessCodeAuthRequired)
	ErrorCodeForbidden           = string(apperror.BusinessCodeInsufficientRole)
	ErrorCodeUserNotFound        = string(apperror.BusinessCodeUserNotFound)
	ErrorCodeInvalidToken        = "INVALID_TOKEN"
	ErrorCodeTokenExpired        = "TOKEN_EXPIRED"
	ErrorCodeInternalServerError = string(apperror.BusinessCodeGeneral)
)

// WriteJSONError writes a JSON error response with consistent format
// This matches the format used by BaseHandler in the REST layer
func WriteJSONError(w http.ResponseWriter, code string, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	errorResp := map[string]any{
		"error":   code,
		"message": message,
	}

	// Ignore encoding errors here as we're already in error handling
	_ = json.NewEncoder(w).Encode(errorResp)
}

// WriteAppError renders an AppError the same way BaseHandler.HandleError does.
func WriteAppError(w http.ResponseWriter, err *apperror.AppError) {
	WriteJSONError(w, string(err.BusinessCode), err.Message, err.HTTPStatus)
}

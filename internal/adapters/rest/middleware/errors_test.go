package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philly/arch-gallery/backend/internal/platform/apperror"
)

func TestWriteJSONError(t *testing.T) {
	tests := []struct {
		name           string
		code           string
		message        string
		status         int
		expectedStatus int
		expectedBody   map[string]string
	}{
		{
			name:           "writes unauthorized error",
			code:           ErrorCodeUnauthorized,
			message:        "Authentication required",
			status:         http.StatusUnauthorized,
			expectedStatus: http.StatusUnauthorized,
			expectedBody: map[string]string{
				"error":   "AUTHENTICATION_REQUIRED",
				"message": "Authentication required",
			},
		},
		{
			name:           "writes forbidden error",
			code:           ErrorCodeForbidden,
			message:        "Insufficient role",
			status:         http.StatusForbidden,
			expectedStatus: http.StatusForbidden,
			expectedBody: map[string]string{
				"error":   "INSUFFICIENT_ROLE",
				"message": "Insufficient role",
			},
		},
		{
			name:           "writes invalid token error",
			code:           ErrorCodeInvalidToken,
			message:        "Token is invalid",
			status:         http.StatusUnauthorized,
			expectedStatus: http.StatusUnauthorized,
			expectedBody: map[string]string{
				"error":   "INVALID_TOKEN",
				"message": "Token is invalid",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			WriteJSONError(w, tt.code, tt.message, tt.status)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			var response map[string]string
			require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
			assert.Equal(t, tt.expectedBody, response)
		})
	}
}

func TestWriteAppError(t *testing.T) {
	w := httptest.NewRecorder()

	WriteAppError(w, apperror.ErrUnauthenticated)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var response map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, string(apperror.BusinessCodeAuthRequired), response["error"])
	assert.Equal(t, apperror.ErrUnauthenticated.Message, response["message"])
}

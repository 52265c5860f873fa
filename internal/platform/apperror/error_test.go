package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philly/arch-gallery/backend/internal/platform/apperror"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name         string
		code         apperror.ErrorCode
		businessCode apperror.BusinessCode
		message      string
		httpStatus   int
	}{
		{
			name:         "creates not found error",
			code:         apperror.CodeNotFound,
			businessCode: apperror.BusinessCodeAlbumNotFound,
			message:      "album not found",
			httpStatus:   http.StatusNotFound,
		},
		{
			name:         "creates validation error",
			code:         apperror.CodeValidationFailed,
			businessCode: apperror.BusinessCodeInvalidPermissionConfig,
			message:      "protected albums need a password",
			httpStatus:   http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := apperror.New(tt.code, tt.businessCode, tt.message, tt.httpStatus)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.businessCode, err.BusinessCode)
			assert.Equal(t, tt.message, err.Error())
			assert.Equal(t, tt.httpStatus, err.HTTPStatus)
			assert.Nil(t, err.Inner)
			assert.Nil(t, err.Details)
		})
	}
}

func TestWrap(t *testing.T) {
	inner := errors.New("database connection failed")

	err := apperror.Wrap(inner, apperror.CodeInternalError, apperror.BusinessCodeGeneral,
		"failed to fetch album", http.StatusInternalServerError)

	assert.ErrorIs(t, err, inner)
	assert.Equal(t, inner, err.Unwrap())
	assert.Equal(t, apperror.CodeInternalError, err.Code)
}

func TestWithDetailsDoesNotMutateSentinel(t *testing.T) {
	sentinel := apperror.New(apperror.CodeValidationFailed, apperror.BusinessCodeInvalidFormat,
		"validation failed", http.StatusBadRequest)

	detailed := sentinel.WithDetails(map[string]string{"name": "required"})

	assert.Nil(t, sentinel.Details)
	assert.NotNil(t, detailed.Details)
	assert.NotSame(t, sentinel, detailed)
	assert.ErrorIs(t, detailed, sentinel)
}

func TestWithCause(t *testing.T) {
	sentinel := apperror.New(apperror.CodeConflict, apperror.BusinessCodeTransitionConflict,
		"conflict", http.StatusConflict)
	cause := errors.New("zero rows updated")

	wrapped := sentinel.WithCause(cause)

	assert.Nil(t, sentinel.Inner)
	assert.ErrorIs(t, wrapped, cause)
	assert.ErrorIs(t, wrapped, sentinel)
}

func TestIs(t *testing.T) {
	notFound := apperror.New(apperror.CodeNotFound, apperror.BusinessCodeAlbumNotFound,
		"album not found", http.StatusNotFound)

	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{
			name:   "same codes match regardless of message",
			err:    notFound,
			target: apperror.New(apperror.CodeNotFound, apperror.BusinessCodeAlbumNotFound, "other", http.StatusNotFound),
			want:   true,
		},
		{
			name:   "different business code does not match",
			err:    notFound,
			target: apperror.New(apperror.CodeNotFound, apperror.BusinessCodeImageNotFound, "image", http.StatusNotFound),
			want:   false,
		},
		{
			name:   "different error code does not match",
			err:    notFound,
			target: apperror.New(apperror.CodeConflict, apperror.BusinessCodeAlbumNotFound, "conflict", http.StatusConflict),
			want:   false,
		},
		{
			name:   "plain error does not match",
			err:    notFound,
			target: errors.New("regular error"),
			want:   false,
		},
		{
			name:   "matches through fmt wrapping",
			err:    fmt.Errorf("service: %w", notFound),
			target: notFound,
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errors.Is(tt.err, tt.target))
		})
	}
}

func TestAs(t *testing.T) {
	notFound := apperror.New(apperror.CodeNotFound, apperror.BusinessCodePostNotFound,
		"post not found", http.StatusNotFound)

	got, ok := apperror.As(fmt.Errorf("handler: %w", notFound))
	require.True(t, ok)
	assert.Equal(t, apperror.BusinessCodePostNotFound, got.BusinessCode)

	_, ok = apperror.As(errors.New("plain"))
	assert.False(t, ok)
}

func TestFormat(t *testing.T) {
	err := apperror.Wrap(errors.New("database error"), apperror.CodeValidationFailed,
		apperror.BusinessCodeInvalidEmail, "email validation failed", http.StatusBadRequest).
		WithDetails(map[string]string{"field": "email"})

	assert.Equal(t, "email validation failed", fmt.Sprintf("%s", err))
	assert.Equal(t, "email validation failed", fmt.Sprintf("%v", err))

	verbose := fmt.Sprintf("%+v", err)
	for _, want := range []string{
		"Code: VALIDATION_FAILED",
		"BusinessCode: INVALID_EMAIL",
		"HTTPStatus: 400",
		"Caused by: database error",
		"Details: map[field:email]",
	} {
		assert.Contains(t, verbose, want)
	}
}

func TestFormatOmitsEmptySections(t *testing.T) {
	err := apperror.New(apperror.CodeNotFound, apperror.BusinessCodeUserNotFound,
		"user not found", http.StatusNotFound)

	verbose := fmt.Sprintf("%+v", err)
	assert.NotContains(t, verbose, "Caused by:")
	assert.NotContains(t, verbose, "Details:")
}

package application

import (
	"net/http"

	"github.com/philly/arch-gallery/backend/internal/platform/apperror"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		apperror.BusinessCodeUserNotFound,
		"user not found",
		http.StatusNotFound,
	)

	ErrUserAlreadyExists = apperror.New(
		apperror.CodeConflict,
		apperror.BusinessCodeUserAlreadyExists,
		"user already exists",
		http.StatusConflict,
	)

	ErrUsernameTaken = apperror.New(
		apperror.CodeConflict,
		apperror.BusinessCodeUsernameTaken,
		"username already taken",
		http.StatusConflict,
	)

	ErrEmailTaken = apperror.New(
		apperror.CodeConflict,
		apperror.BusinessCodeUserAlreadyExists,
		"email already registered",
		http.StatusConflict,
	)

	ErrInvalidUserData = apperror.New(
		apperror.CodeValidationFailed,
		apperror.BusinessCodeInvalidFormat,
		"invalid user data",
		http.StatusBadRequest,
	)

	ErrInvalidRole = apperror.New(
		apperror.CodeValidationFailed,
		apperror.BusinessCodeInvalidRole,
		"invalid role",
		http.StatusBadRequest,
	)

	ErrSelfChange = apperror.New(
		apperror.CodeConflict,
		apperror.BusinessCodeRoleSelfChange,
		"administrators cannot change their own role or status",
		http.StatusConflict,
	)
)

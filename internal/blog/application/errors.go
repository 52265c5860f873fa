package application

import (
	"net/http"

	"github.com/philly/arch-gallery/backend/internal/platform/apperror"
)

// Error definitions for blog operations
var (
	ErrPostNotFound = apperror.New(
		apperror.CodeNotFound,
		apperror.BusinessCodePostNotFound,
		"post not found",
		http.StatusNotFound,
	)

	ErrCommentNotFound = apperror.New(
		apperror.CodeNotFound,
		apperror.BusinessCodeCommentNotFound,
		"comment not found",
		http.StatusNotFound,
	)

	ErrInvalidPostData = apperror.New(
		apperror.CodeValidationFailed,
		apperror.BusinessCodeInvalidFormat,
		"invalid post data",
		http.StatusBadRequest,
	)

	ErrInvalidCommentData = apperror.New(
		apperror.CodeValidationFailed,
		apperror.BusinessCodeInvalidFormat,
		"invalid comment data",
		http.StatusBadRequest,
	)

	ErrReplyDepthExceeded = apperror.New(
		apperror.CodeValidationFailed,
		apperror.BusinessCodeReplyDepthExceeded,
		"replies may only answer live top-level comments of the same post",
		http.StatusBadRequest,
	)
)

package apperror

import "net/http"

// ErrorCode is the coarse category of an AppError.
type ErrorCode string

const (
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeForbidden        ErrorCode = "FORBIDDEN"
	CodeUnauthorized     ErrorCode = "UNAUTHORIZED"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeConflict         ErrorCode = "CONFLICT"
	CodeInternalError    ErrorCode = "INTERNAL_ERROR"
)

// BusinessCode is the specific reason behind an AppError.
type BusinessCode string

const (
	BusinessCodeGeneral          BusinessCode = "GENERAL"
	BusinessCodeInvalidFormat    BusinessCode = "INVALID_FORMAT"
	BusinessCodePermissionDenied BusinessCode = "PERMISSION_DENIED"
	BusinessCodeAuthRequired     BusinessCode = "AUTHENTICATION_REQUIRED"
	BusinessCodeInsufficientRole BusinessCode = "INSUFFICIENT_ROLE"

	// Users
	BusinessCodeUserNotFound      BusinessCode = "USER_NOT_FOUND"
	BusinessCodeUserAlreadyExists BusinessCode = "USER_ALREADY_EXISTS"
	BusinessCodeUsernameTaken     BusinessCode = "USERNAME_TAKEN"
	BusinessCodeInvalidEmail      BusinessCode = "INVALID_EMAIL"
	BusinessCodeRoleSelfChange    BusinessCode = "ROLE_SELF_CHANGE"
	BusinessCodeInvalidRole       BusinessCode = "INVALID_ROLE"

	// Gallery
	BusinessCodeAlbumNotFound           BusinessCode = "ALBUM_NOT_FOUND"
	BusinessCodeImageNotFound           BusinessCode = "IMAGE_NOT_FOUND"
	BusinessCodeAlbumPasswordInvalid    BusinessCode = "ALBUM_PASSWORD_INVALID"
	BusinessCodeInvalidPermission       BusinessCode = "INVALID_PERMISSION"
	BusinessCodeInvalidPermissionConfig BusinessCode = "INVALID_PERMISSION_CONFIG"
	BusinessCodeCoverImageNotInAlbum    BusinessCode = "COVER_IMAGE_NOT_IN_ALBUM"
	BusinessCodeInvalidImageOrder       BusinessCode = "INVALID_IMAGE_ORDER"
	BusinessCodeNoDeletableImages       BusinessCode = "NO_DELETABLE_IMAGES"

	// Blog
	BusinessCodePostNotFound       BusinessCode = "POST_NOT_FOUND"
	BusinessCodeCommentNotFound    BusinessCode = "COMMENT_NOT_FOUND"
	BusinessCodeReplyDepthExceeded BusinessCode = "REPLY_DEPTH_EXCEEDED"

	// Lifecycle
	BusinessCodeInvalidLifecycleState BusinessCode = "INVALID_LIFECYCLE_STATE"
	BusinessCodeTransitionConflict    BusinessCode = "TRANSITION_CONFLICT"
)

// Common errors shared by several services.
var (
	ErrUnauthenticated = New(
		CodeUnauthorized,
		BusinessCodeAuthRequired,
		"authentication required",
		http.StatusUnauthorized,
	)

	ErrInsufficientRole = New(
		CodeForbidden,
		BusinessCodeInsufficientRole,
		"insufficient role",
		http.StatusForbidden,
	)

	ErrPermissionDenied = New(
		CodeForbidden,
		BusinessCodePermissionDenied,
		"permission denied",
		http.StatusForbidden,
	)

	ErrInvalidInput = New(
		CodeValidationFailed,
		BusinessCodeInvalidFormat,
		"invalid input",
		http.StatusBadRequest,
	)
)

// Internal builds a 500 error wrapping a collaborator failure.
func Internal(inner error, message string) *AppError {
	return Wrap(inner, CodeInternalError, BusinessCodeGeneral, message, http.StatusInternalServerError)
}

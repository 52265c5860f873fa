package application

import (
	"net/http"

	"github.com/philly/arch-gallery/backend/internal/access/domain"
	"github.com/philly/arch-gallery/backend/internal/platform/apperror"
)

var (
	// ErrAlbumPasswordInvalid is returned for a missing or wrong PROTECTED
	// album password. The client already knows the album exists, so this is
	// never downgraded to not-found.
	ErrAlbumPasswordInvalid = apperror.New(
		apperror.CodeForbidden,
		apperror.BusinessCodeAlbumPasswordInvalid,
		"album password required or incorrect",
		http.StatusForbidden,
	)

	ErrInvalidLifecycleState = apperror.New(
		apperror.CodeConflict,
		apperror.BusinessCodeInvalidLifecycleState,
		"item is not in a state that allows this action",
		http.StatusConflict,
	)

	ErrInvalidPermissionConfig = apperror.New(
		apperror.CodeValidationFailed,
		apperror.BusinessCodeInvalidPermissionConfig,
		"invalid permission configuration",
		http.StatusBadRequest,
	)
)

// DenialError turns a denied decision into the error a client sees. Every
// kind uses one policy:
//   - deleted, private, draft and parent denials are reported as notFound so
//     that hidden items cannot be probed;
//   - a bad PROTECTED password is Forbidden;
//   - an owner mismatch on an item the actor can see is Forbidden;
//   - a missing or inactive actor is Unauthorized.
func DenialError(d domain.Decision, notFound *apperror.AppError) error {
	if d.Allowed {
		return nil
	}

	switch d.Reason {
	case domain.ReasonNotFound:
		return notFound
	case domain.ReasonInvalidState:
		return ErrInvalidLifecycleState
	case domain.ReasonInvalidPermissionConfig:
		return ErrInvalidPermissionConfig
	}

	switch d.Rule {
	case domain.RulePassword:
		return ErrAlbumPasswordInvalid
	case domain.RuleUnauthenticated:
		return apperror.ErrUnauthenticated
	case domain.RuleOwnership:
		return apperror.ErrPermissionDenied
	}
	return notFound
}

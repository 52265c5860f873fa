package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/philly/arch-gallery/backend/internal/platform/logger"
	userapp "github.com/philly/arch-gallery/backend/internal/users/application"
	"github.com/philly/arch-gallery/backend/internal/users/domain"
)

// UserLookup resolves a token subject to a registered user.
type UserLookup interface {
	GetBySubject(ctx context.Context, subject string) (*domain.User, error)
}

// AuthAdapter turns the token subject left by the JWT middleware into an
// internal actor carrying the user's id, role and active flag. It must run
// after the JWT middleware.
//
// NOTE: this puts a user lookup on every authenticated request.
type AuthAdapter struct {
	users  UserLookup
	logger logger.Logger
}

// NewAuthAdapter creates a new authentication adapter
func NewAuthAdapter(users UserLookup, logger logger.Logger) *AuthAdapter {
	return &AuthAdapter{
		users:  users,
		logger: logger,
	}
}

// Middleware requires a registered user behind the token.
func (a *AuthAdapter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := ClaimsFromContext(ctx)
		if !ok {
			a.logger.Warn(ctx, "subject not found in context")
			WriteJSONError(w, ErrorCodeUnauthorized, "Authentication required", http.StatusUnauthorized)
			return
		}

		user, err := a.users.GetBySubject(ctx, claims.Subject)
		if err != nil {
			if errors.Is(err, userapp.ErrUserNotFound) {
				WriteJSONError(w, ErrorCodeUserNotFound, "User profile not found", http.StatusNotFound)
				return
			}
			a.logger.Error(ctx, "failed to resolve user", "subject", claims.Subject, "error", err)
			WriteJSONError(w, ErrorCodeInternalServerError, "Failed to resolve user", http.StatusInternalServerError)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithActor(ctx, user.Actor())))
	})
}

// Optional resolves the actor when the request carries a token. Requests
// without one, or whose subject has no profile yet, stay anonymous.
func (a *AuthAdapter) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := ClaimsFromContext(ctx)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		user, err := a.users.GetBySubject(ctx, claims.Subject)
		switch {
		case err == nil:
			ctx = WithActor(ctx, user.Actor())
		case errors.Is(err, userapp.ErrUserNotFound):
			a.logger.Debug(ctx, "token subject has no profile, continuing anonymously", "subject", claims.Subject)
		default:
			a.logger.Error(ctx, "failed to resolve user", "subject", claims.Subject, "error", err)
			WriteJSONError(w, ErrorCodeInternalServerError, "Failed to resolve user", http.StatusInternalServerError)
			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

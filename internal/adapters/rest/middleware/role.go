package middleware

import (
	"net/http"

	access "github.com/philly/arch-gallery/backend/internal/access/domain"
	"github.com/philly/arch-gallery/backend/internal/platform/logger"
)

// RoleMiddleware gates routes on the actor's role.
type RoleMiddleware struct {
	logger logger.Logger
}

func NewRoleMiddleware(logger logger.Logger) *RoleMiddleware {
	return &RoleMiddleware{logger: logger}
}

// RequireRole lets the request through only when the actor is active and
// ranks at least min.
func (m *RoleMiddleware) RequireRole(min access.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			actor := ActorFromContext(ctx)
			if !actor.Authenticated() {
				m.logger.Warn(ctx, "no active actor for role-gated route", "required_role", min)
				WriteJSONError(w, ErrorCodeUnauthorized, "Authentication required", http.StatusUnauthorized)
				return
			}

			if !actor.HasRole(min) {
				m.logger.Warn(ctx, "role denied",
					"user_id", actor.ID,
					"role", actor.Role,
					"required_role", min,
				)
				WriteJSONError(w, ErrorCodeForbidden, "Insufficient role", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

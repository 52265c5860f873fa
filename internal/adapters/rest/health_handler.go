package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/philly/arch-gallery/backend/internal/adapters/api"
)

// Pinger is the readiness dependency; *pgxpool.Pool satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	*BaseHandler
	db Pinger
}

func NewHealthHandler(base *BaseHandler, db Pinger) *HealthHandler {
	return &HealthHandler{
		BaseHandler: base,
		db:          db,
	}
}

// GetLiveness implements the liveness probe endpoint
// This is a lightweight check with no external dependencies
func (h *HealthHandler) GetLiveness(w http.ResponseWriter, r *http.Request) {
	h.WriteJSONResponse(w, r, api.HealthStatus{Status: "ok"}, http.StatusOK)
}

// GetReadiness implements the readiness probe endpoint
// This checks all critical dependencies
func (h *HealthHandler) GetReadiness(w http.ResponseWriter, r *http.Request) {
	checks := map[string]string{}
	status := "ok"
	httpStatus := http.StatusOK

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.logger.Warn(r.Context(), "readiness check failed", "dependency", "database", "error", err)
		checks["database"] = "down"
		status = "unavailable"
		httpStatus = http.StatusServiceUnavailable
	} else {
		checks["database"] = "up"
	}

	h.WriteJSONResponse(w, r, api.HealthStatus{Status: status, Checks: &checks}, httpStatus)
}

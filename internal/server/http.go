package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	access "github.com/philly/arch-gallery/backend/internal/access/domain"
	"github.com/philly/arch-gallery/backend/internal/adapters/api"
	"github.com/philly/arch-gallery/backend/internal/adapters/rest"
	"github.com/philly/arch-gallery/backend/internal/adapters/rest/middleware"
	"github.com/philly/arch-gallery/backend/internal/platform/logger"
)

const apiBaseURL = "/api/v1"

// NewHTTPServer creates and configures the HTTP server with all routes
func NewHTTPServer(
	config Config,
	server api.ServerInterface,
	base *rest.BaseHandler,
	jwtMiddleware *middleware.JWTMiddleware,
	authAdapter *middleware.AuthAdapter,
	roles *middleware.RoleMiddleware,
	log logger.Logger,
) *http.Server {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)

	// Public endpoints still resolve the caller when a token is sent, so
	// owners see their own private content.
	optionalMiddlewares := []api.MiddlewareFunc{
		jwtMiddleware.Optional,
		authAdapter.Optional,
	}

	// Protected endpoints (JWT auth and a registered profile required)
	protectedMiddlewares := []api.MiddlewareFunc{
		jwtMiddleware.Middleware,
		authAdapter.Middleware,
	}

	// JWT-only endpoints (no AuthAdapter because user doesn't exist yet)
	jwtOnlyMiddlewares := []api.MiddlewareFunc{
		jwtMiddleware.Middleware,
	}

	adminMiddlewares := append(append([]api.MiddlewareFunc{}, protectedMiddlewares...),
		roles.RequireRole(access.RoleAdmin),
	)

	routes := routeTable{
		"GET " + apiBaseURL + "/health/live":  nil,
		"GET " + apiBaseURL + "/health/ready": nil,

		"GET " + apiBaseURL + "/search":              optionalMiddlewares,
		"GET " + apiBaseURL + "/albums/{id}":         optionalMiddlewares,
		"GET " + apiBaseURL + "/albums/{id}/images":  optionalMiddlewares,
		"GET " + apiBaseURL + "/images/{id}":         optionalMiddlewares,
		"GET " + apiBaseURL + "/posts/{id}":          optionalMiddlewares,
		"GET " + apiBaseURL + "/posts/{id}/comments": optionalMiddlewares,

		"POST " + apiBaseURL + "/users": jwtOnlyMiddlewares,

		"GET " + apiBaseURL + "/admin/users":             adminMiddlewares,
		"PUT " + apiBaseURL + "/admin/users/{id}/role":   adminMiddlewares,
		"PUT " + apiBaseURL + "/admin/users/{id}/active": adminMiddlewares,
	}

	_ = api.HandlerWithOptions(server, api.ChiServerOptions{
		BaseURL:          apiBaseURL,
		BaseRouter:       r,
		Middlewares:      []api.MiddlewareFunc{routeAwareChiMiddleware(routes, protectedMiddlewares)},
		ErrorHandlerFunc: base.HandleParamError,
	})

	handler := chimw.RequestID(withObservability(r, log))
	handler = cors.New(cors.Options{
		AllowedOrigins:   config.AllowedOrigins(),
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Album-Password"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler(handler)

	return &http.Server{
		Addr:         config.ServerAddress,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// routeTable maps "METHOD pattern" to the middleware chain for that route.
// A nil chain marks a fully public route.
type routeTable map[string][]api.MiddlewareFunc

// routeAwareChiMiddleware applies auth middlewares based on matched chi route
// pattern. Routes missing from the table get defaults.
func routeAwareChiMiddleware(routes routeTable, defaults []api.MiddlewareFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			method := r.Method
			if method == http.MethodHead {
				method = http.MethodGet
			}
			pattern := ""
			if routeCtx := chi.RouteContext(r.Context()); routeCtx != nil {
				pattern = method + " " + routeCtx.RoutePattern()
			}

			chain, ok := routes[pattern]
			if !ok {
				chain = defaults
			}

			handler := next
			for i := len(chain) - 1; i >= 0; i-- {
				handler = chain[i](handler)
			}
			handler.ServeHTTP(w, r)
		})
	}
}

// withObservability adds request logging
func withObservability(handler http.Handler, log logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Use chi's response writer wrapper to capture status code and bytes written
		wrr := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		ctx, actor := middleware.TrackActor(r.Context())
		handler.ServeHTTP(wrr, r.WithContext(ctx))

		var userID string
		if a := actor(); a != nil {
			userID = a.ID.String()
		}

		log.Info(r.Context(), "HTTP request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", wrr.Status(),
			"bytes", wrr.BytesWritten(),
			"duration_ms", time.Since(start).Milliseconds(),
			"remote_addr", r.RemoteAddr,
			"user_agent", r.UserAgent(),
			"user_id", userID,
		)
	})
}

package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	access "github.com/philly/arch-gallery/backend/internal/access/domain"
	"github.com/philly/arch-gallery/backend/internal/adapters/api"
	"github.com/philly/arch-gallery/backend/internal/adapters/rest/middleware"
	"github.com/philly/arch-gallery/backend/internal/platform/apperror"
	"github.com/philly/arch-gallery/backend/internal/platform/logger"
	"github.com/philly/arch-gallery/backend/internal/platform/pagination"
)

// BaseHandler contains common dependencies and helper methods for all handlers
type BaseHandler struct {
	logger logger.Logger
}

// NewBaseHandler creates a new base handler with common dependencies
func NewBaseHandler(logger logger.Logger) *BaseHandler {
	return &BaseHandler{
		logger: logger,
	}
}

// WriteJSONError writes a JSON error response matching OpenAPI spec
func (h *BaseHandler) WriteJSONError(w http.ResponseWriter, r *http.Request, code string, message string, statusCode int) {
	h.writeError(w, r, api.Error{Error: code, Message: message}, statusCode)
}

// WriteJSONResponse writes a successful JSON response
func (h *BaseHandler) WriteJSONResponse(w http.ResponseWriter, r *http.Request, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if statusCode == http.StatusNoContent {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error(r.Context(), "failed to encode response",
			"error", err,
			"status_code", statusCode,
		)
	}
}

// HandleError renders err. AppErrors keep their status and business code;
// anything else is logged and hidden behind a 500.
func (h *BaseHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := apperror.As(err)
	if !ok {
		h.logger.Error(r.Context(), "unhandled error",
			"error", err,
			"method", r.Method,
			"path", r.URL.Path,
		)
		h.WriteJSONError(w, r, string(apperror.BusinessCodeGeneral), "internal server error", http.StatusInternalServerError)
		return
	}

	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.logger.Error(r.Context(), "request failed",
			"error", appErr,
			"cause", appErr.Inner,
			"path", r.URL.Path,
		)
	}

	h.writeError(w, r, api.Error{
		Error:   string(appErr.BusinessCode),
		Message: appErr.Message,
		Details: renderDetails(appErr.Details),
	}, appErr.HTTPStatus)
}

// HandleParamError renders request binding failures from the generated
// router as 400s.
func (h *BaseHandler) HandleParamError(w http.ResponseWriter, r *http.Request, err error) {
	h.HandleError(w, r, apperror.ErrInvalidInput.WithDetails(err.Error()))
}

// DecodeJSON reads the request body into dst. On failure it writes a 400 and
// returns false.
func (h *BaseHandler) DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.HandleError(w, r, apperror.ErrInvalidInput.WithDetails("request body is not valid JSON"))
		return false
	}
	return true
}

// Actor returns the caller resolved by the auth middleware, or nil.
func (h *BaseHandler) Actor(r *http.Request) *access.Actor {
	return middleware.ActorFromContext(r.Context())
}

func (h *BaseHandler) writeError(w http.ResponseWriter, r *http.Request, body api.Error, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error(r.Context(), "failed to encode error response",
			"error", err,
			"error_code", body.Error,
			"status_code", statusCode,
		)
	}
}

// renderDetails turns error details into something that encodes usefully.
// Field errors from ozzo-validation become a field→message map; other errors
// become their message.
func renderDetails(details any) any {
	err, ok := details.(error)
	if !ok {
		return details
	}
	var fields validation.Errors
	if errors.As(err, &fields) {
		out := make(map[string]string, len(fields))
		for field, fieldErr := range fields {
			out[field] = fieldErr.Error()
		}
		return out
	}
	return err.Error()
}

// pageRequest builds a pagination request from optional query parameters.
func pageRequest(page, pageSize *int) pagination.Request {
	var req pagination.Request
	if page != nil {
		req.Page = *page
	}
	if pageSize != nil {
		req.PageSize = *pageSize
	}
	return req
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func stringToPointer(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

package rest

import (
	"net/http"

	openapi_types "github.com/oapi-codegen/runtime/types"

	access "github.com/philly/arch-gallery/backend/internal/access/domain"
	"github.com/philly/arch-gallery/backend/internal/adapters/api"
	"github.com/philly/arch-gallery/backend/internal/adapters/rest/middleware"
	"github.com/philly/arch-gallery/backend/internal/platform/apperror"
	"github.com/philly/arch-gallery/backend/internal/users/application"
)

type UserHandler struct {
	*BaseHandler
	service *application.UserService
}

func NewUserHandler(base *BaseHandler, service *application.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		service:     service,
	}
}

// CreateUser registers a profile for the token's subject. The route runs
// with the JWT middleware only, since the user does not exist yet.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		h.HandleError(w, r, apperror.ErrUnauthenticated)
		return
	}

	var req api.CreateUserJSONRequestBody
	if !h.DecodeJSON(w, r, &req) {
		return
	}

	user, err := h.service.Register(r.Context(), claims.Subject, claims.Email, application.RegisterParams{
		Username:    req.Username,
		DisplayName: deref(req.DisplayName),
		Bio:         deref(req.Bio),
		AvatarURL:   deref(req.AvatarUrl),
	})
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteJSONResponse(w, r, userToAPI(user), http.StatusCreated)
}

func (h *UserHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	actor := h.Actor(r)
	if actor == nil {
		h.HandleError(w, r, apperror.ErrUnauthenticated)
		return
	}

	user, err := h.service.GetByID(r.Context(), actor.ID)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteJSONResponse(w, r, userToAPI(user), http.StatusOK)
}

// ListUsers, ChangeUserRole and SetUserActive sit behind RequireRole(ADMIN);
// the service checks the role again.

func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request, params api.ListUsersParams) {
	page, err := h.service.List(r.Context(), h.Actor(r), pageRequest(params.Page, params.PageSize))
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteJSONResponse(w, r, api.UserPage{
		Items:      mapItems(page.Items, userToAPI),
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages(),
	}, http.StatusOK)
}

func (h *UserHandler) ChangeUserRole(w http.ResponseWriter, r *http.Request, id openapi_types.UUID) {
	var req api.ChangeUserRoleJSONRequestBody
	if !h.DecodeJSON(w, r, &req) {
		return
	}

	role, err := access.ParseRole(string(req.Role))
	if err != nil {
		h.HandleError(w, r, application.ErrInvalidRole.WithDetails(err))
		return
	}

	user, err := h.service.ChangeRole(r.Context(), h.Actor(r), id, role)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteJSONResponse(w, r, userToAPI(user), http.StatusOK)
}

func (h *UserHandler) SetUserActive(w http.ResponseWriter, r *http.Request, id openapi_types.UUID) {
	var req api.SetUserActiveJSONRequestBody
	if !h.DecodeJSON(w, r, &req) {
		return
	}

	user, err := h.service.SetActive(r.Context(), h.Actor(r), id, req.Active)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteJSONResponse(w, r, userToAPI(user), http.StatusOK)
}

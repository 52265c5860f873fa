package rest

import (
	"net/http"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/philly/arch-gallery/backend/internal/adapters/api"
	"github.com/philly/arch-gallery/backend/internal/gallery/application"
	"github.com/philly/arch-gallery/backend/internal/gallery/domain"
)

// AlbumHandler handles album requests
type AlbumHandler struct {
	*BaseHandler
	service *application.AlbumService
}

func NewAlbumHandler(base *BaseHandler, service *application.AlbumService) *AlbumHandler {
	return &AlbumHandler{
		BaseHandler: base,
		service:     service,
	}
}

func (h *AlbumHandler) CreateAlbum(w http.ResponseWriter, r *http.Request) {
	var req api.CreateAlbumJSONRequestBody
	if !h.DecodeJSON(w, r, &req) {
		return
	}

	actor := h.Actor(r)
	album, err := h.service.Create(r.Context(), actor, application.CreateAlbumParams{
		Name:        req.Name,
		Description: deref(req.Description),
		Permission:  domain.Permission(req.Permission),
		Password:    deref(req.Password),
	})
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteJSONResponse(w, r, albumToAPI(album, true), http.StatusCreated)
}

// GetAlbum is public. PROTECTED albums need the X-Album-Password header
// unless the caller owns them.
func (h *AlbumHandler) GetAlbum(w http.ResponseWriter, r *http.Request, id openapi_types.UUID, params api.GetAlbumParams) {
	actor := h.Actor(r)
	album, err := h.service.Get(r.Context(), actor, id, params.XAlbumPassword)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteJSONResponse(w, r, albumToAPI(album, actor.Owns(album.OwnerID)), http.StatusOK)
}

func (h *AlbumHandler) UpdateAlbum(w http.ResponseWriter, r *http.Request, id openapi_types.UUID) {
	var req api.UpdateAlbumJSONRequestBody
	if !h.DecodeJSON(w, r, &req) {
		return
	}

	update := domain.AlbumUpdate{
		Name:         req.Name,
		Description:  req.Description,
		Password:     req.Password,
		CoverImageID: req.CoverImageId,
		ClearCover:   deref(req.ClearCover),
	}
	if req.Permission != nil {
		p := domain.Permission(*req.Permission)
		update.Permission = &p
	}

	album, err := h.service.Update(r.Context(), h.Actor(r), id, update)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteJSONResponse(w, r, albumToAPI(album, true), http.StatusOK)
}

// DeleteAlbum moves the album to the recycle bin.
func (h *AlbumHandler) DeleteAlbum(w http.ResponseWriter, r *http.Request, id openapi_types.UUID) {
	if err := h.service.Delete(r.Context(), h.Actor(r), id); err != nil {
		h.HandleError(w, r, err)
		return
	}
	h.WriteJSONResponse(w, r, nil, http.StatusNoContent)
}

func (h *AlbumHandler) RestoreAlbum(w http.ResponseWriter, r *http.Request, id openapi_types.UUID) {
	album, err := h.service.Restore(r.Context(), h.Actor(r), id)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}
	h.WriteJSONResponse(w, r, albumToAPI(album, true), http.StatusOK)
}

func (h *AlbumHandler) ListRecycledAlbums(w http.ResponseWriter, r *http.Request, params api.ListRecycledAlbumsParams) {
	page, err := h.service.ListRecycled(r.Context(), h.Actor(r), pageRequest(params.Page, params.PageSize))
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteJSONResponse(w, r, api.AlbumPage{
		Items:      mapItems(page.Items, func(a *domain.Album) api.Album { return albumToAPI(a, true) }),
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages(),
	}, http.StatusOK)
}

package rest

import (
	"net/http"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/philly/arch-gallery/backend/internal/adapters/api"
	"github.com/philly/arch-gallery/backend/internal/gallery/application"
	"github.com/philly/arch-gallery/backend/internal/gallery/domain"
	"github.com/philly/arch-gallery/backend/internal/platform/apperror"
)

// ImageHandler handles image requests. Images are registered against files
// that are already stored; upload itself happens elsewhere.
type ImageHandler struct {
	*BaseHandler
	service *application.ImageService
}

func NewImageHandler(base *BaseHandler, service *application.ImageService) *ImageHandler {
	return &ImageHandler{
		BaseHandler: base,
		service:     service,
	}
}

func (h *ImageHandler) RegisterImage(w http.ResponseWriter, r *http.Request, id openapi_types.UUID) {
	var req api.RegisterImageJSONRequestBody
	if !h.DecodeJSON(w, r, &req) {
		return
	}

	image, err := h.service.Register(r.Context(), h.Actor(r), id, domain.ImageMetadata{
		Filename:      req.Filename,
		FilePath:      req.FilePath,
		ThumbnailPath: deref(req.ThumbnailPath),
		FileType:      string(req.FileType),
		FileSize:      req.FileSize,
		Width:         deref(req.Width),
		Height:        deref(req.Height),
		CameraModel:   deref(req.CameraModel),
		SortOrder:     deref(req.SortOrder),
	})
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteJSONResponse(w, r, imageToAPI(image, true), http.StatusCreated)
}

func (h *ImageHandler) GetImage(w http.ResponseWriter, r *http.Request, id openapi_types.UUID, params api.GetImageParams) {
	actor := h.Actor(r)
	image, err := h.service.Get(r.Context(), actor, id, params.XAlbumPassword)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteJSONResponse(w, r, imageToAPI(image, actor.Owns(image.OwnerID)), http.StatusOK)
}

func (h *ImageHandler) ListAlbumImages(w http.ResponseWriter, r *http.Request, id openapi_types.UUID, params api.ListAlbumImagesParams) {
	actor := h.Actor(r)
	page, err := h.service.ListByAlbum(r.Context(), actor, id, params.XAlbumPassword, pageRequest(params.Page, params.PageSize))
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteJSONResponse(w, r, api.ImagePage{
		Items:      mapItems(page.Items, func(i *domain.Image) api.Image { return imageToAPI(i, actor.Owns(i.OwnerID)) }),
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages(),
	}, http.StatusOK)
}

func (h *ImageHandler) DeleteImage(w http.ResponseWriter, r *http.Request, id openapi_types.UUID) {
	if err := h.service.Delete(r.Context(), h.Actor(r), id); err != nil {
		h.HandleError(w, r, err)
		return
	}
	h.WriteJSONResponse(w, r, nil, http.StatusNoContent)
}

func (h *ImageHandler) RestoreImage(w http.ResponseWriter, r *http.Request, id openapi_types.UUID) {
	image, err := h.service.Restore(r.Context(), h.Actor(r), id)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}
	h.WriteJSONResponse(w, r, imageToAPI(image, true), http.StatusOK)
}

func (h *ImageHandler) ReorderAlbumImages(w http.ResponseWriter, r *http.Request, id openapi_types.UUID) {
	var req api.ReorderAlbumImagesJSONRequestBody
	if !h.DecodeJSON(w, r, &req) {
		return
	}

	if err := h.service.Reorder(r.Context(), h.Actor(r), id, req.ImageIds); err != nil {
		h.HandleError(w, r, err)
		return
	}
	h.WriteJSONResponse(w, r, nil, http.StatusNoContent)
}

// BatchDeleteImages answers 200 when at least one image was recycled; the
// others are listed with the error a single delete would have returned.
func (h *ImageHandler) BatchDeleteImages(w http.ResponseWriter, r *http.Request) {
	var req api.BatchDeleteImagesJSONRequestBody
	if !h.DecodeJSON(w, r, &req) {
		return
	}

	result, err := h.service.BatchDelete(r.Context(), h.Actor(r), req.ImageIds)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	resp := api.BatchDeleteResult{
		Deleted: result.Deleted,
		Skipped: make([]api.BatchDeleteSkip, 0, len(result.Skipped)),
	}
	for _, id := range req.ImageIds {
		if err, ok := result.Skipped[id]; ok {
			resp.Skipped = append(resp.Skipped, skipToAPI(id, err))
		}
	}
	h.WriteJSONResponse(w, r, resp, http.StatusOK)
}

func skipToAPI(id uuid.UUID, err error) api.BatchDeleteSkip {
	appErr, ok := apperror.As(err)
	if !ok || appErr.HTTPStatus >= http.StatusInternalServerError {
		return api.BatchDeleteSkip{Id: id, Code: string(apperror.BusinessCodeGeneral), Message: "failed to delete image"}
	}
	return api.BatchDeleteSkip{Id: id, Code: string(appErr.BusinessCode), Message: appErr.Message}
}

func (h *ImageHandler) ListRecycledImages(w http.ResponseWriter, r *http.Request, params api.ListRecycledImagesParams) {
	page, err := h.service.ListRecycled(r.Context(), h.Actor(r), pageRequest(params.Page, params.PageSize))
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteJSONResponse(w, r, api.ImagePage{
		Items:      mapItems(page.Items, func(i *domain.Image) api.Image { return imageToAPI(i, true) }),
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages(),
	}, http.StatusOK)
}

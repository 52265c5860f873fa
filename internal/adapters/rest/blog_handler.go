package rest

import (
	"net/http"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/philly/arch-gallery/backend/internal/adapters/api"
	"github.com/philly/arch-gallery/backend/internal/blog/application"
	"github.com/philly/arch-gallery/backend/internal/blog/domain"
)

// BlogHandler handles posts and their comment threads
type BlogHandler struct {
	*BaseHandler
	posts    *application.PostService
	comments *application.CommentService
}

func NewBlogHandler(base *BaseHandler, posts *application.PostService, comments *application.CommentService) *BlogHandler {
	return &BlogHandler{
		BaseHandler: base,
		posts:       posts,
		comments:    comments,
	}
}

func (h *BlogHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req api.CreatePostJSONRequestBody
	if !h.DecodeJSON(w, r, &req) {
		return
	}

	post, err := h.posts.Create(r.Context(), h.Actor(r), application.CreatePostParams{
		Title:         req.Title,
		Content:       req.Content,
		CoverImageURL: deref(req.CoverImageUrl),
		Tags:          deref(req.Tags),
		IsDraft:       deref(req.IsDraft),
		IsPrivate:     deref(req.IsPrivate),
	})
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteJSONResponse(w, r, postToAPI(post), http.StatusCreated)
}

// GetPost is public. Drafts and private posts are only found by their owner.
func (h *BlogHandler) GetPost(w http.ResponseWriter, r *http.Request, id openapi_types.UUID) {
	post, err := h.posts.Get(r.Context(), h.Actor(r), id)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}
	h.WriteJSONResponse(w, r, postToAPI(post), http.StatusOK)
}

func (h *BlogHandler) UpdatePost(w http.ResponseWriter, r *http.Request, id openapi_types.UUID) {
	var req api.UpdatePostJSONRequestBody
	if !h.DecodeJSON(w, r, &req) {
		return
	}

	post, err := h.posts.Update(r.Context(), h.Actor(r), id, domain.PostUpdate{
		Title:         req.Title,
		Content:       req.Content,
		CoverImageURL: req.CoverImageUrl,
		Tags:          req.Tags,
		IsDraft:       req.IsDraft,
		IsPrivate:     req.IsPrivate,
	})
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteJSONResponse(w, r, postToAPI(post), http.StatusOK)
}

// DeletePost removes the post and its comments permanently.
func (h *BlogHandler) DeletePost(w http.ResponseWriter, r *http.Request, id openapi_types.UUID) {
	if err := h.posts.Delete(r.Context(), h.Actor(r), id); err != nil {
		h.HandleError(w, r, err)
		return
	}
	h.WriteJSONResponse(w, r, nil, http.StatusNoContent)
}

func (h *BlogHandler) ListComments(w http.ResponseWriter, r *http.Request, id openapi_types.UUID) {
	comments, err := h.comments.ListByPost(r.Context(), h.Actor(r), id)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteJSONResponse(w, r, api.CommentList{Items: mapItems(comments, commentToAPI)}, http.StatusOK)
}

func (h *BlogHandler) CreateComment(w http.ResponseWriter, r *http.Request, id openapi_types.UUID) {
	var req api.CreateCommentJSONRequestBody
	if !h.DecodeJSON(w, r, &req) {
		return
	}

	comment, err := h.comments.Create(r.Context(), h.Actor(r), id, application.CreateCommentParams{
		Content:  req.Content,
		ParentID: req.ParentId,
	})
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteJSONResponse(w, r, commentToAPI(comment), http.StatusCreated)
}

// DeleteComment removes the comment and its direct replies.
func (h *BlogHandler) DeleteComment(w http.ResponseWriter, r *http.Request, id openapi_types.UUID) {
	if err := h.comments.Delete(r.Context(), h.Actor(r), id); err != nil {
		h.HandleError(w, r, err)
		return
	}
	h.WriteJSONResponse(w, r, nil, http.StatusNoContent)
}

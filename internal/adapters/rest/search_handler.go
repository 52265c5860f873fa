package rest

import (
	"net/http"

	"github.com/philly/arch-gallery/backend/internal/adapters/api"
	gallery "github.com/philly/arch-gallery/backend/internal/gallery/domain"
	"github.com/philly/arch-gallery/backend/internal/search/application"
	"github.com/philly/arch-gallery/backend/internal/search/domain"
)

// SearchHandler serves the unified search endpoint
type SearchHandler struct {
	*BaseHandler
	engine *application.Engine
}

func NewSearchHandler(base *BaseHandler, engine *application.Engine) *SearchHandler {
	return &SearchHandler{
		BaseHandler: base,
		engine:      engine,
	}
}

// Search is public; anonymous callers only ever see PUBLIC albums, their
// images and published posts. Enum and range checks happen in the engine.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request, params api.SearchParams) {
	page, err := h.engine.Search(r.Context(), h.Actor(r), queryFromParams(params))
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteJSONResponse(w, r, api.SearchPage{
		Items:      mapItems(page.Items, resultToAPI),
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages(),
	}, http.StatusOK)
}

func queryFromParams(params api.SearchParams) domain.Query {
	q := domain.Query{
		Keyword:       deref(params.Q),
		Scope:         domain.Scope(deref(params.Type)),
		CreatedFrom:   params.CreatedFrom,
		CreatedTo:     params.CreatedTo,
		OwnerID:       params.OwnerId,
		ImageCountMin: params.ImageCountMin,
		ImageCountMax: params.ImageCountMax,
		AlbumID:       params.AlbumId,
		FileTypes:     deref(params.FileType),
		Camera:        deref(params.Camera),
		SizeMin:       params.SizeMin,
		SizeMax:       params.SizeMax,
		Tags:          deref(params.Tag),
		Draft:         params.IsDraft,
		Sort:          domain.SortKey(deref(params.Sort)),
		Order:         domain.Order(deref(params.Order)),
		Page:          deref(params.Page),
		PageSize:      deref(params.PageSize),
	}
	if params.Permission != nil {
		p := gallery.Permission(*params.Permission)
		q.Permission = &p
	}
	return q
}

package ports

import (
	"context"

	blog "github.com/philly/arch-gallery/backend/internal/blog/domain"
	gallery "github.com/philly/arch-gallery/backend/internal/gallery/domain"
	"github.com/philly/arch-gallery/backend/internal/search/domain"
)

// ImageCandidate is an image fetched together with its album so the
// resolver does not need a second lookup.
type ImageCandidate struct {
	Image *gallery.Image
	Album *gallery.Album
}

// CandidateStore fetches keyword and attribute matches per kind. Each
// method returns at most Criteria.Limit rows ordered by the query's sort,
// plus the total number of matches. Rows the viewer could never see without
// a password should already be excluded, but callers re-check every row.
type CandidateStore interface {
	FetchAlbums(ctx context.Context, c domain.Criteria) ([]*gallery.Album, int, error)
	FetchImages(ctx context.Context, c domain.Criteria) ([]ImageCandidate, int, error)
	FetchPosts(ctx context.Context, c domain.Criteria) ([]*blog.Post, int, error)
}

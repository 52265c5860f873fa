package domain

import (
	"bytes"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	access "github.com/philly/arch-gallery/backend/internal/access/domain"
	blog "github.com/philly/arch-gallery/backend/internal/blog/domain"
	gallery "github.com/philly/arch-gallery/backend/internal/gallery/domain"
)

const excerptLength = 200

var textPolicy = bluemonday.StrictPolicy()

// ResultItem is the public projection of a search hit. Only one of Album,
// Image and Post is set, matching Kind.
type ResultItem struct {
	Kind      access.Kind
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time

	Album *AlbumSummary
	Image *ImageSummary
	Post  *PostSummary
}

type AlbumSummary struct {
	Description  string
	Permission   gallery.Permission
	ImageCount   int
	CoverImageID *uuid.UUID
}

type ImageSummary struct {
	AlbumID       uuid.UUID
	ThumbnailPath string
	FileType      string
	FileSize      int64
	Width         int
	Height        int
	CameraModel   string
}

type PostSummary struct {
	Excerpt       string
	CoverImageURL string
	Tags          []string
	CommentCount  int
}

func FromAlbum(a *gallery.Album) ResultItem {
	return ResultItem{
		Kind:      access.KindAlbum,
		ID:        a.ID,
		OwnerID:   a.OwnerID,
		Title:     a.Name,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
		Album: &AlbumSummary{
			Description:  a.Description,
			Permission:   a.Permission,
			ImageCount:   a.ImageCount,
			CoverImageID: a.CoverImageID,
		},
	}
}

func FromImage(i *gallery.Image) ResultItem {
	return ResultItem{
		Kind:      access.KindImage,
		ID:        i.ID,
		OwnerID:   i.OwnerID,
		Title:     i.Filename,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
		Image: &ImageSummary{
			AlbumID:       i.AlbumID,
			ThumbnailPath: i.ThumbnailPath,
			FileType:      i.FileType,
			FileSize:      i.FileSize,
			Width:         i.Width,
			Height:        i.Height,
			CameraModel:   i.CameraModel,
		},
	}
}

func FromPost(p *blog.Post) ResultItem {
	return ResultItem{
		Kind:      access.KindPost,
		ID:        p.ID,
		OwnerID:   p.OwnerID,
		Title:     p.Title,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
		Post: &PostSummary{
			Excerpt:       excerpt(p.Content),
			CoverImageURL: p.CoverImageURL,
			Tags:          append([]string(nil), p.Tags...),
			CommentCount:  p.CommentCount,
		},
	}
}

// Less orders results by key and order. Ties fall back to created_at
// ascending, then id, then kind, so the order is total.
func Less(a, b ResultItem, key SortKey, order Order) bool {
	if c := compareKey(a, b, key); c != 0 {
		if order == OrderDesc {
			return c > 0
		}
		return c < 0
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	if c := bytes.Compare(a.ID[:], b.ID[:]); c != 0 {
		return c < 0
	}
	return a.Kind < b.Kind
}

func compareKey(a, b ResultItem, key SortKey) int {
	switch key {
	case SortTitle:
		return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
	case SortUpdatedAt:
		return a.UpdatedAt.Compare(b.UpdatedAt)
	default:
		return a.CreatedAt.Compare(b.CreatedAt)
	}
}

// excerpt strips markup from sanitised post HTML and truncates it.
func excerpt(html string) string {
	text := strings.Join(strings.Fields(textPolicy.Sanitize(html)), " ")
	if runes := []rune(text); len(runes) > excerptLength {
		return string(runes[:excerptLength]) + "…"
	}
	return text
}

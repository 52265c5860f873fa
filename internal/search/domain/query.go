package domain

import (
	"errors"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	access "github.com/philly/arch-gallery/backend/internal/access/domain"
	blog "github.com/philly/arch-gallery/backend/internal/blog/domain"
	gallery "github.com/philly/arch-gallery/backend/internal/gallery/domain"
	"github.com/philly/arch-gallery/backend/internal/platform/pagination"
)

// Scope restricts a search to one kind of content, or all of them.
type Scope string

const (
	ScopeAll   Scope = "all"
	ScopeAlbum Scope = "album"
	ScopeImage Scope = "image"
	ScopePost  Scope = "blog"
)

// SortKey is the field results are ordered by.
type SortKey string

const (
	SortCreatedAt SortKey = "created_at"
	SortUpdatedAt SortKey = "updated_at"
	SortTitle     SortKey = "title"
)

type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

const (
	MaxKeywordLength = 100
	MaxFilterTags    = 10
)

var ErrEmptyScope = errors.New("filters exclude every content kind")

// Query is a validated search request. Attribute filters only exist on some
// kinds; a filter a kind does not carry removes that kind from an "all"
// search instead of being ignored.
type Query struct {
	Keyword string
	Scope   Scope

	CreatedFrom *time.Time
	CreatedTo   *time.Time

	// OwnerID keeps only items owned by that user, on every kind. Images
	// carry their album's owner.
	OwnerID *uuid.UUID

	// Album filters. Permission also restricts images by their album.
	Permission    *gallery.Permission
	ImageCountMin *int
	ImageCountMax *int

	// Image filters.
	AlbumID   *uuid.UUID
	FileTypes []string
	Camera    string
	SizeMin   *int64
	SizeMax   *int64

	// Post filters.
	Tags  []string
	Draft *bool

	Sort     SortKey
	Order    Order
	Page     int
	PageSize int
}

// ApplyDefaults normalises the query in place. It never makes an invalid
// query valid.
func (q *Query) ApplyDefaults() {
	q.Keyword = strings.TrimSpace(q.Keyword)
	q.Camera = strings.TrimSpace(q.Camera)
	if q.Scope == "" {
		q.Scope = ScopeAll
	}
	if q.Sort == "" {
		q.Sort = SortCreatedAt
	}
	if q.Order == "" {
		q.Order = OrderDesc
	}
	for i, ft := range q.FileTypes {
		q.FileTypes[i] = strings.ToLower(strings.TrimSpace(ft))
	}
	for i, tag := range q.Tags {
		q.Tags[i] = strings.ToLower(strings.TrimSpace(tag))
	}

	page := q.Pagination()
	page.ApplyDefaults()
	q.Page, q.PageSize = page.Page, page.PageSize
}

func (q Query) Validate() error {
	fileTypes := make([]interface{}, len(gallery.SupportedFileTypes))
	for i, ft := range gallery.SupportedFileTypes {
		fileTypes[i] = ft
	}

	err := validation.ValidateStruct(&q,
		validation.Field(&q.Keyword, validation.RuneLength(0, MaxKeywordLength)),
		validation.Field(&q.Scope, validation.In(ScopeAll, ScopeAlbum, ScopeImage, ScopePost)),
		validation.Field(&q.Sort, validation.In(SortCreatedAt, SortUpdatedAt, SortTitle)),
		validation.Field(&q.Order, validation.In(OrderAsc, OrderDesc)),
		validation.Field(&q.Page, validation.Min(1), validation.Max(pagination.MaxPage)),
		validation.Field(&q.PageSize, validation.Min(1), validation.Max(pagination.MaxPageSize)),
		validation.Field(&q.Permission, validation.In(gallery.PermissionPublic, gallery.PermissionProtected, gallery.PermissionPrivate)),
		validation.Field(&q.ImageCountMin, validation.Min(0)),
		validation.Field(&q.ImageCountMax, validation.Min(0), validation.By(intNotBelow(q.ImageCountMin))),
		validation.Field(&q.SizeMin, validation.Min(int64(0))),
		validation.Field(&q.SizeMax, validation.Min(int64(0)), validation.By(int64NotBelow(q.SizeMin))),
		validation.Field(&q.FileTypes, validation.Each(validation.In(fileTypes...))),
		validation.Field(&q.Tags, validation.Length(0, MaxFilterTags), validation.Each(validation.Required)),
		validation.Field(&q.CreatedTo, validation.By(notBefore(q.CreatedFrom))),
	)
	if err != nil {
		return err
	}
	if len(q.Kinds()) == 0 {
		return ErrEmptyScope
	}
	return nil
}

// Pagination returns the page window of the query.
func (q Query) Pagination() pagination.Request {
	return pagination.Request{Page: q.Page, PageSize: q.PageSize}
}

// Kinds lists the content kinds the query can match, in a fixed order.
func (q Query) Kinds() []access.Kind {
	var kinds []access.Kind
	for _, kind := range []access.Kind{access.KindAlbum, access.KindImage, access.KindPost} {
		if q.includes(kind) {
			kinds = append(kinds, kind)
		}
	}
	return kinds
}

func (q Query) includes(kind access.Kind) bool {
	if q.Scope != ScopeAll && Scope(kind) != q.Scope {
		return false
	}

	albumFilters := q.ImageCountMin != nil || q.ImageCountMax != nil
	imageFilters := q.AlbumID != nil || len(q.FileTypes) > 0 || q.Camera != "" || q.SizeMin != nil || q.SizeMax != nil
	postFilters := len(q.Tags) > 0 || q.Draft != nil

	switch kind {
	case access.KindAlbum:
		return !imageFilters && !postFilters
	case access.KindImage:
		return !albumFilters && !postFilters
	case access.KindPost:
		return !albumFilters && !imageFilters && q.Permission == nil
	}
	return false
}

func (q Query) ownedBy(owner uuid.UUID) bool {
	return q.OwnerID == nil || *q.OwnerID == owner
}

// MatchesAlbum applies the album post-filters.
func (q Query) MatchesAlbum(a *gallery.Album) bool {
	if !q.ownedBy(a.OwnerID) {
		return false
	}
	if q.ImageCountMin != nil && a.ImageCount < *q.ImageCountMin {
		return false
	}
	if q.ImageCountMax != nil && a.ImageCount > *q.ImageCountMax {
		return false
	}
	return true
}

// MatchesImage applies the image post-filters.
func (q Query) MatchesImage(i *gallery.Image) bool {
	if !q.ownedBy(i.OwnerID) {
		return false
	}
	if q.SizeMin != nil && i.FileSize < *q.SizeMin {
		return false
	}
	if q.SizeMax != nil && i.FileSize > *q.SizeMax {
		return false
	}
	return true
}

// MatchesPost applies the post post-filters. Tags are matched by the store.
func (q Query) MatchesPost(p *blog.Post) bool {
	if !q.ownedBy(p.OwnerID) {
		return false
	}
	return q.Draft == nil || *q.Draft == p.IsDraft
}

func notBefore(from *time.Time) validation.RuleFunc {
	return func(value interface{}) error {
		to, _ := value.(*time.Time)
		if from != nil && to != nil && to.Before(*from) {
			return errors.New("must not be before created_from")
		}
		return nil
	}
}

func intNotBelow(min *int) validation.RuleFunc {
	return func(value interface{}) error {
		max, _ := value.(*int)
		if min != nil && max != nil && *max < *min {
			return errors.New("must not be below the minimum")
		}
		return nil
	}
}

func int64NotBelow(min *int64) validation.RuleFunc {
	return func(value interface{}) error {
		max, _ := value.(*int64)
		if min != nil && max != nil && *max < *min {
			return errors.New("must not be below the minimum")
		}
		return nil
	}
}

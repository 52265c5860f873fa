package ports

import (
	"context"
	"errors"

	"github.com/google/uuid"

	access "github.com/philly/arch-gallery/backend/internal/access/domain"
	"github.com/philly/arch-gallery/backend/internal/gallery/domain"
	"github.com/philly/arch-gallery/backend/internal/platform/pagination"
)

// Canonical repository errors. Adapters translate driver errors into these.
var (
	ErrAlbumNotFound = errors.New("album not found")
	ErrImageNotFound = errors.New("image not found")

	// ErrImageOrderMismatch means an id in a reorder request is not a live
	// image of the album. Nothing is written when it is returned.
	ErrImageOrderMismatch = errors.New("image order does not match the album")
)

// AlbumRepository persists albums. Finders return recycled rows too; callers
// decide visibility.
type AlbumRepository interface {
	Create(ctx context.Context, album *domain.Album) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Album, error)

	// Update writes the whitelisted mutable columns. Lifecycle columns are
	// owned by the lifecycle store and are not touched.
	Update(ctx context.Context, album *domain.Album) error

	// ListRecycled returns the owner's recycled albums, most recently
	// deleted first, with the total count.
	ListRecycled(ctx context.Context, ownerID uuid.UUID, page pagination.Request) ([]*domain.Album, int, error)

	// RefreshImageCount recomputes image_count from live images.
	RefreshImageCount(ctx context.Context, albumID uuid.UUID) error
}

// ImageRepository persists image metadata.
type ImageRepository interface {
	Create(ctx context.Context, image *domain.Image) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Image, error)

	// ListByAlbum returns live images ordered by sort_order then created_at.
	ListByAlbum(ctx context.Context, albumID uuid.UUID, page pagination.Request) ([]*domain.Image, int, error)

	ListRecycled(ctx context.Context, ownerID uuid.UUID, page pagination.Request) ([]*domain.Image, int, error)

	// ExistsInAlbum reports whether a live image with imageID belongs to albumID.
	ExistsInAlbum(ctx context.Context, imageID, albumID uuid.UUID) (bool, error)

	// Reorder sets sort_order of each listed image to its index in ids, all
	// or nothing.
	Reorder(ctx context.Context, albumID uuid.UUID, ids []uuid.UUID) error
}

// LifecycleManager moves albums and images in and out of the recycle bin.
type LifecycleManager interface {
	Transition(ctx context.Context, actor *access.Actor, kind access.Kind, id uuid.UUID, action access.Action) error

	// TransitionMany returns the ids that moved and the error for each that
	// did not.
	TransitionMany(ctx context.Context, actor *access.Actor, kind access.Kind, ids []uuid.UUID, action access.Action) ([]uuid.UUID, map[uuid.UUID]error, error)
}

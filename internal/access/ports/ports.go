package ports

import (
	"context"

	"github.com/google/uuid"

	blog "github.com/philly/arch-gallery/backend/internal/blog/domain"
	gallery "github.com/philly/arch-gallery/backend/internal/gallery/domain"
)

// PasswordVerifier checks a plaintext album password against its stored
// hash. Implementations must be constant-time and bounded by ctx; an expired
// context counts as a failed verification.
type PasswordVerifier interface {
	VerifyPassword(ctx context.Context, plain, hash string) bool
}

// AlbumReader loads the parent album of an image. Recycled albums are
// returned; a missing album is reported with gallery/ports.ErrAlbumNotFound.
type AlbumReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*gallery.Album, error)
}

// PostReader loads the parent post of a comment. A missing post is reported
// with blog/ports.ErrPostNotFound.
type PostReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*blog.Post, error)
}

package ports

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/philly/arch-gallery/backend/internal/blog/domain"
)

var (
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")
)

// PostRepository persists blog posts.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	Update(ctx context.Context, post *domain.Post) error

	// Delete removes the post; its comments go with it.
	Delete(ctx context.Context, id uuid.UUID) error
}

// CommentRepository persists comments. FindByID returns deleted rows too.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)

	// ListByPost returns live comments oldest first.
	ListByPost(ctx context.Context, postID uuid.UUID) ([]*domain.Comment, error)

	// SoftDeleteThread marks the comment and its direct replies deleted and
	// returns how many rows changed.
	SoftDeleteThread(ctx context.Context, id uuid.UUID) (int, error)

	// RefreshCommentCount recomputes posts.comment_count from live comments.
	RefreshCommentCount(ctx context.Context, postID uuid.UUID) error

	// WithTx returns a repository bound to tx.
	WithTx(tx pgx.Tx) CommentRepository
}

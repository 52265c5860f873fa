package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/philly/arch-gallery/backend/internal/blog/domain"
	"github.com/philly/arch-gallery/backend/internal/blog/ports"
	"github.com/philly/arch-gallery/backend/internal/platform/postgres"
)

var postColumns = []string{
	"id", "owner_id", "title", "content", "cover_image_url", "tags",
	"is_draft", "is_private", "comment_count", "created_at", "updated_at",
}

// PostRepository implements ports.PostRepository using PostgreSQL
type PostRepository struct {
	postgres.BaseRepository
}

func NewPostRepository(db *pgxpool.Pool) *PostRepository {
	return &PostRepository{
		BaseRepository: postgres.NewBaseRepository(db),
	}
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) error {
	query, args, err := r.SB.
		Insert("posts").
		Columns(postColumns...).
		Values(
			pgUUID(post.ID),
			pgUUID(post.OwnerID),
			post.Title,
			post.Content,
			pgText(post.CoverImageURL),
			tagsOrEmpty(post.Tags),
			post.IsDraft,
			post.IsPrivate,
			post.CommentCount,
			pgTime(post.CreatedAt),
			pgTime(post.UpdatedAt),
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("PostRepository.Create: build query: %w", err)
	}

	if _, err := r.DB.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("PostRepository.Create: %w", err)
	}
	return nil
}

func (r *PostRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	query, args, err := r.SB.
		Select(postColumns...).
		From("posts").
		Where(sq.Eq{"id": pgUUID(id)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("PostRepository.FindByID: build query: %w", err)
	}

	post, err := scanPost(r.DB.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ports.ErrPostNotFound
		}
		return nil, fmt.Errorf("PostRepository.FindByID: %w", err)
	}
	return post, nil
}

// Update writes the client-editable columns. comment_count is maintained by
// the comment repository.
func (r *PostRepository) Update(ctx context.Context, post *domain.Post) error {
	query, args, err := r.SB.
		Update("posts").
		Set("title", post.Title).
		Set("content", post.Content).
		Set("cover_image_url", pgText(post.CoverImageURL)).
		Set("tags", tagsOrEmpty(post.Tags)).
		Set("is_draft", post.IsDraft).
		Set("is_private", post.IsPrivate).
		Set("updated_at", pgTime(post.UpdatedAt)).
		Where(sq.Eq{"id": pgUUID(post.ID)}).
		ToSql()
	if err != nil {
		return fmt.Errorf("PostRepository.Update: build query: %w", err)
	}

	result, err := r.DB.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("PostRepository.Update: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ports.ErrPostNotFound
	}
	return nil
}

// Delete removes a post. Comments are removed by ON DELETE CASCADE.
func (r *PostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := r.SB.
		Delete("posts").
		Where(sq.Eq{"id": pgUUID(id)}).
		ToSql()
	if err != nil {
		return fmt.Errorf("PostRepository.Delete: build query: %w", err)
	}

	result, err := r.DB.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("PostRepository.Delete: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ports.ErrPostNotFound
	}
	return nil
}

func tagsOrEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

func scanPost(row pgx.Row) (*domain.Post, error) {
	var t postRow
	if err := row.Scan(t.dest()...); err != nil {
		return nil, err
	}
	return t.post(), nil
}

// postRow holds the scan targets for postColumns.
type postRow struct {
	p           domain.Post
	id, ownerID pgtype.UUID
	coverURL    pgtype.Text
}

func (t *postRow) dest() []any {
	return []any{
		&t.id,
		&t.ownerID,
		&t.p.Title,
		&t.p.Content,
		&t.coverURL,
		&t.p.Tags,
		&t.p.IsDraft,
		&t.p.IsPrivate,
		&t.p.CommentCount,
		&t.p.CreatedAt,
		&t.p.UpdatedAt,
	}
}

func (t *postRow) post() *domain.Post {
	post := t.p
	post.ID = uuid.UUID(t.id.Bytes)
	post.OwnerID = uuid.UUID(t.ownerID.Bytes)
	post.CoverImageURL = t.coverURL.String
	return &post
}

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

var commentColumns = []string{
	"id", "post_id", "owner_id", "parent_id", "content", "is_deleted", "created_at", "updated_at",
}

// CommentRepository implements ports.CommentRepository using PostgreSQL
type CommentRepository struct {
	postgres.BaseRepository
}

func NewCommentRepository(db *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{
		BaseRepository: postgres.NewBaseRepository(db),
	}
}

// WithTx creates a new repository instance that uses the provided transaction
func (r *CommentRepository) WithTx(tx pgx.Tx) ports.CommentRepository {
	return &CommentRepository{
		BaseRepository: r.BaseRepository.WithTx(tx),
	}
}

func (r *CommentRepository) Create(ctx context.Context, c *domain.Comment) error {
	query, args, err := r.SB.
		Insert("comments").
		Columns(commentColumns...).
		Values(
			pgUUID(c.ID),
			pgUUID(c.PostID),
			pgUUID(c.OwnerID),
			pgNullUUID(c.ParentID),
			c.Content,
			c.IsDeleted,
			pgTime(c.CreatedAt),
			pgTime(c.UpdatedAt),
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("CommentRepository.Create: build query: %w", err)
	}

	if _, err := r.DB.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("CommentRepository.Create: %w", err)
	}
	return nil
}

func (r *CommentRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	query, args, err := r.SB.
		Select(commentColumns...).
		From("comments").
		Where(sq.Eq{"id": pgUUID(id)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("CommentRepository.FindByID: build query: %w", err)
	}

	comment, err := scanComment(r.DB.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ports.ErrCommentNotFound
		}
		return nil, fmt.Errorf("CommentRepository.FindByID: %w", err)
	}
	return comment, nil
}

func (r *CommentRepository) ListByPost(ctx context.Context, postID uuid.UUID) ([]*domain.Comment, error) {
	query, args, err := r.SB.
		Select(commentColumns...).
		From("comments").
		Where(sq.Eq{"post_id": pgUUID(postID), "is_deleted": false}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("CommentRepository.ListByPost: build query: %w", err)
	}

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("CommentRepository.ListByPost: %w", err)
	}
	comments, err := collect(rows, scanComment)
	if err != nil {
		return nil, fmt.Errorf("CommentRepository.ListByPost: %w", err)
	}
	return comments, nil
}

// SoftDeleteThread marks the comment and its live direct replies deleted.
func (r *CommentRepository) SoftDeleteThread(ctx context.Context, id uuid.UUID) (int, error) {
	cid := pgUUID(id)
	query, args, err := r.SB.
		Update("comments").
		Set("is_deleted", true).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Or{sq.Eq{"id": cid}, sq.Eq{"parent_id": cid}}).
		Where(sq.Eq{"is_deleted": false}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("CommentRepository.SoftDeleteThread: build query: %w", err)
	}

	result, err := r.DB.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("CommentRepository.SoftDeleteThread: %w", err)
	}
	if result.RowsAffected() == 0 {
		return 0, ports.ErrCommentNotFound
	}
	return int(result.RowsAffected()), nil
}

func (r *CommentRepository) RefreshCommentCount(ctx context.Context, postID uuid.UUID) error {
	id := pgUUID(postID)
	query, args, err := r.SB.
		Update("posts").
		Set("comment_count", sq.Expr("(SELECT COUNT(*) FROM comments WHERE post_id = ? AND is_deleted = FALSE)", id)).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("CommentRepository.RefreshCommentCount: build query: %w", err)
	}

	result, err := r.DB.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("CommentRepository.RefreshCommentCount: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ports.ErrPostNotFound
	}
	return nil
}

func scanComment(row pgx.Row) (*domain.Comment, error) {
	var c domain.Comment
	var id, postID, ownerID, parentID pgtype.UUID

	err := row.Scan(
		&id,
		&postID,
		&ownerID,
		&parentID,
		&c.Content,
		&c.IsDeleted,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.ID = uuid.UUID(id.Bytes)
	c.PostID = uuid.UUID(postID.Bytes)
	c.OwnerID = uuid.UUID(ownerID.Bytes)
	c.ParentID = uuidPtr(parentID)
	return &c, nil
}

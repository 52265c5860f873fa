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

	"github.com/philly/arch-gallery/backend/internal/gallery/domain"
	"github.com/philly/arch-gallery/backend/internal/gallery/ports"
	"github.com/philly/arch-gallery/backend/internal/platform/pagination"
	"github.com/philly/arch-gallery/backend/internal/platform/postgres"
)

var albumColumns = []string{
	"id", "owner_id", "name", "description", "permission", "password_hash",
	"cover_image_id", "image_count", "is_deleted", "deleted_at", "created_at", "updated_at",
}

// AlbumRepository implements ports.AlbumRepository using PostgreSQL
type AlbumRepository struct {
	postgres.BaseRepository
}

func NewAlbumRepository(db *pgxpool.Pool) *AlbumRepository {
	return &AlbumRepository{
		BaseRepository: postgres.NewBaseRepository(db),
	}
}

// Create inserts a new album
func (r *AlbumRepository) Create(ctx context.Context, album *domain.Album) error {
	query, args, err := r.SB.
		Insert("albums").
		Columns(albumColumns...).
		Values(
			pgUUID(album.ID),
			pgUUID(album.OwnerID),
			album.Name,
			album.Description,
			string(album.Permission),
			pgText(album.PasswordHash),
			pgNullUUID(album.CoverImageID),
			album.ImageCount,
			album.IsDeleted,
			pgNullTime(album.DeletedAt),
			pgTime(album.CreatedAt),
			pgTime(album.UpdatedAt),
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("AlbumRepository.Create: build query: %w", err)
	}

	if _, err := r.DB.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("AlbumRepository.Create: %w", err)
	}
	return nil
}

// FindByID returns the album whether or not it is recycled
func (r *AlbumRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Album, error) {
	query, args, err := r.SB.
		Select(albumColumns...).
		From("albums").
		Where(sq.Eq{"id": pgUUID(id)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("AlbumRepository.FindByID: build query: %w", err)
	}

	album, err := scanAlbum(r.DB.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ports.ErrAlbumNotFound
		}
		return nil, fmt.Errorf("AlbumRepository.FindByID: %w", err)
	}
	return album, nil
}

// Update writes the mutable columns of a live album
func (r *AlbumRepository) Update(ctx context.Context, album *domain.Album) error {
	query, args, err := r.SB.
		Update("albums").
		Set("name", album.Name).
		Set("description", album.Description).
		Set("permission", string(album.Permission)).
		Set("password_hash", pgText(album.PasswordHash)).
		Set("cover_image_id", pgNullUUID(album.CoverImageID)).
		Set("updated_at", pgTime(album.UpdatedAt)).
		Where(sq.Eq{"id": pgUUID(album.ID), "is_deleted": false}).
		ToSql()
	if err != nil {
		return fmt.Errorf("AlbumRepository.Update: build query: %w", err)
	}

	result, err := r.DB.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("AlbumRepository.Update: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ports.ErrAlbumNotFound
	}
	return nil
}

// ListRecycled returns the owner's recycled albums, most recently deleted first
func (r *AlbumRepository) ListRecycled(ctx context.Context, ownerID uuid.UUID, page pagination.Request) ([]*domain.Album, int, error) {
	where := sq.Eq{"owner_id": pgUUID(ownerID), "is_deleted": true}

	query, args, err := r.SB.
		Select(albumColumns...).
		From("albums").
		Where(where).
		OrderBy("deleted_at DESC", "id ASC").
		Limit(uint64(page.Limit())).
		Offset(uint64(page.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("AlbumRepository.ListRecycled: build query: %w", err)
	}

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("AlbumRepository.ListRecycled: %w", err)
	}
	albums, err := collect(rows, scanAlbum)
	if err != nil {
		return nil, 0, fmt.Errorf("AlbumRepository.ListRecycled: %w", err)
	}

	total, err := r.count(ctx, "albums", where)
	if err != nil {
		return nil, 0, fmt.Errorf("AlbumRepository.ListRecycled: %w", err)
	}
	return albums, total, nil
}

// RefreshImageCount recomputes image_count from the album's live images
func (r *AlbumRepository) RefreshImageCount(ctx context.Context, albumID uuid.UUID) error {
	id := pgUUID(albumID)
	query, args, err := r.SB.
		Update("albums").
		Set("image_count", sq.Expr("(SELECT COUNT(*) FROM images WHERE album_id = ? AND is_deleted = FALSE)", id)).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("AlbumRepository.RefreshImageCount: build query: %w", err)
	}

	result, err := r.DB.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("AlbumRepository.RefreshImageCount: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ports.ErrAlbumNotFound
	}
	return nil
}

func (r *AlbumRepository) count(ctx context.Context, table string, where sq.Sqlizer) (int, error) {
	return r.Count(ctx, r.SB.Select("COUNT(*)").From(table).Where(where))
}

func scanAlbum(row pgx.Row) (*domain.Album, error) {
	var t albumRow
	if err := row.Scan(t.dest()...); err != nil {
		return nil, err
	}
	return t.album(), nil
}

// albumRow holds the scan targets for albumColumns.
type albumRow struct {
	a            domain.Album
	id, ownerID  pgtype.UUID
	coverID      pgtype.UUID
	permission   string
	passwordHash pgtype.Text
	deletedAt    pgtype.Timestamptz
}

func (t *albumRow) dest() []any {
	return []any{
		&t.id,
		&t.ownerID,
		&t.a.Name,
		&t.a.Description,
		&t.permission,
		&t.passwordHash,
		&t.coverID,
		&t.a.ImageCount,
		&t.a.IsDeleted,
		&t.deletedAt,
		&t.a.CreatedAt,
		&t.a.UpdatedAt,
	}
}

func (t *albumRow) album() *domain.Album {
	album := t.a
	album.ID = uuid.UUID(t.id.Bytes)
	album.OwnerID = uuid.UUID(t.ownerID.Bytes)
	// Unknown tiers are kept as-is; the resolver fails closed on them.
	album.Permission = domain.Permission(t.permission)
	album.PasswordHash = t.passwordHash.String
	album.CoverImageID = uuidPtr(t.coverID)
	album.DeletedAt = timePtr(t.deletedAt)
	return &album
}

// collect drains rows with scan and always closes them.
func collect[T any](rows pgx.Rows, scan func(pgx.Row) (T, error)) ([]T, error) {
	defer rows.Close()

	var out []T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return out, nil
}

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

var imageColumns = []string{
	"id", "album_id", "owner_id", "filename", "file_path", "thumbnail_path",
	"file_type", "file_size", "width", "height", "camera_model", "sort_order",
	"is_deleted", "deleted_at", "created_at", "updated_at",
}

// ImageRepository implements ports.ImageRepository using PostgreSQL
type ImageRepository struct {
	postgres.BaseRepository
}

func NewImageRepository(db *pgxpool.Pool) *ImageRepository {
	return &ImageRepository{
		BaseRepository: postgres.NewBaseRepository(db),
	}
}

func (r *ImageRepository) Create(ctx context.Context, image *domain.Image) error {
	query, args, err := r.SB.
		Insert("images").
		Columns(imageColumns...).
		Values(
			pgUUID(image.ID),
			pgUUID(image.AlbumID),
			pgUUID(image.OwnerID),
			image.Filename,
			image.FilePath,
			pgText(image.ThumbnailPath),
			image.FileType,
			image.FileSize,
			image.Width,
			image.Height,
			pgText(image.CameraModel),
			image.SortOrder,
			image.IsDeleted,
			pgNullTime(image.DeletedAt),
			pgTime(image.CreatedAt),
			pgTime(image.UpdatedAt),
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("ImageRepository.Create: build query: %w", err)
	}

	if _, err := r.DB.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("ImageRepository.Create: %w", err)
	}
	return nil
}

func (r *ImageRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Image, error) {
	query, args, err := r.SB.
		Select(imageColumns...).
		From("images").
		Where(sq.Eq{"id": pgUUID(id)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("ImageRepository.FindByID: build query: %w", err)
	}

	image, err := scanImage(r.DB.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ports.ErrImageNotFound
		}
		return nil, fmt.Errorf("ImageRepository.FindByID: %w", err)
	}
	return image, nil
}

func (r *ImageRepository) ListByAlbum(ctx context.Context, albumID uuid.UUID, page pagination.Request) ([]*domain.Image, int, error) {
	where := sq.Eq{"album_id": pgUUID(albumID), "is_deleted": false}
	return r.list(ctx, "ImageRepository.ListByAlbum", where, page, "sort_order ASC", "created_at ASC", "id ASC")
}

func (r *ImageRepository) ListRecycled(ctx context.Context, ownerID uuid.UUID, page pagination.Request) ([]*domain.Image, int, error) {
	where := sq.Eq{"owner_id": pgUUID(ownerID), "is_deleted": true}
	return r.list(ctx, "ImageRepository.ListRecycled", where, page, "deleted_at DESC", "id ASC")
}

func (r *ImageRepository) ExistsInAlbum(ctx context.Context, imageID, albumID uuid.UUID) (bool, error) {
	exists, err := r.Exists(ctx, r.SB.
		Select("1").
		From("images").
		Where(sq.Eq{"id": pgUUID(imageID), "album_id": pgUUID(albumID), "is_deleted": false}))
	if err != nil {
		return false, fmt.Errorf("ImageRepository.ExistsInAlbum: %w", err)
	}
	return exists, nil
}

// reorderImages only writes when every id is a live image of the album, so a
// stale or foreign id leaves the whole order untouched.
const reorderImages = `
UPDATE images AS i
SET sort_order = o.pos - 1, updated_at = now()
FROM unnest($2::uuid[]) WITH ORDINALITY AS o(id, pos)
WHERE i.id = o.id
  AND i.album_id = $1
  AND i.is_deleted = FALSE
  AND (
    SELECT COUNT(*) FROM images c
    WHERE c.id = ANY($2::uuid[]) AND c.album_id = $1 AND c.is_deleted = FALSE
  ) = cardinality($2::uuid[])`

func (r *ImageRepository) Reorder(ctx context.Context, albumID uuid.UUID, ids []uuid.UUID) error {
	pgIDs := make([]pgtype.UUID, len(ids))
	for i, id := range ids {
		pgIDs[i] = pgUUID(id)
	}

	tag, err := r.DB.Exec(ctx, reorderImages, pgUUID(albumID), pgIDs)
	if err != nil {
		return fmt.Errorf("ImageRepository.Reorder: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ports.ErrImageOrderMismatch
	}
	return nil
}

func (r *ImageRepository) list(ctx context.Context, op string, where sq.Sqlizer, page pagination.Request, orderBy ...string) ([]*domain.Image, int, error) {
	query, args, err := r.SB.
		Select(imageColumns...).
		From("images").
		Where(where).
		OrderBy(orderBy...).
		Limit(uint64(page.Limit())).
		Offset(uint64(page.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%s: build query: %w", op, err)
	}

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	images, err := collect(rows, scanImage)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	total, err := r.Count(ctx, r.SB.Select("COUNT(*)").From("images").Where(where))
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	return images, total, nil
}

func scanImage(row pgx.Row) (*domain.Image, error) {
	var t imageRow
	if err := row.Scan(t.dest()...); err != nil {
		return nil, err
	}
	return t.image(), nil
}

// imageRow holds the scan targets for imageColumns.
type imageRow struct {
	i                    domain.Image
	id, albumID, ownerID pgtype.UUID
	thumbnail, camera    pgtype.Text
	deletedAt            pgtype.Timestamptz
}

func (t *imageRow) dest() []any {
	return []any{
		&t.id,
		&t.albumID,
		&t.ownerID,
		&t.i.Filename,
		&t.i.FilePath,
		&t.thumbnail,
		&t.i.FileType,
		&t.i.FileSize,
		&t.i.Width,
		&t.i.Height,
		&t.camera,
		&t.i.SortOrder,
		&t.i.IsDeleted,
		&t.deletedAt,
		&t.i.CreatedAt,
		&t.i.UpdatedAt,
	}
}

func (t *imageRow) image() *domain.Image {
	image := t.i
	image.ID = uuid.UUID(t.id.Bytes)
	image.AlbumID = uuid.UUID(t.albumID.Bytes)
	image.OwnerID = uuid.UUID(t.ownerID.Bytes)
	image.ThumbnailPath = t.thumbnail.String
	image.CameraModel = t.camera.String
	image.DeletedAt = timePtr(t.deletedAt)
	return &image
}

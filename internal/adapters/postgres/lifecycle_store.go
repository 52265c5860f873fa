package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	access "github.com/philly/arch-gallery/backend/internal/access/domain"
	galleryports "github.com/philly/arch-gallery/backend/internal/gallery/ports"
	"github.com/philly/arch-gallery/backend/internal/lifecycle/domain"
	"github.com/philly/arch-gallery/backend/internal/lifecycle/ports"
	"github.com/philly/arch-gallery/backend/internal/platform/postgres"
)

// LifecycleStore implements ports.SubjectStore over the albums and images
// tables.
type LifecycleStore struct {
	postgres.BaseRepository
	albums *AlbumRepository
	images *ImageRepository
}

func NewLifecycleStore(db *pgxpool.Pool, albums *AlbumRepository, images *ImageRepository) *LifecycleStore {
	return &LifecycleStore{
		BaseRepository: postgres.NewBaseRepository(db),
		albums:         albums,
		images:         images,
	}
}

func (s *LifecycleStore) LoadSubject(ctx context.Context, kind access.Kind, id uuid.UUID) (domain.Subject, error) {
	switch kind {
	case access.KindAlbum:
		album, err := s.albums.FindByID(ctx, id)
		if errors.Is(err, galleryports.ErrAlbumNotFound) {
			return nil, ports.ErrSubjectNotFound
		}
		if err != nil {
			return nil, err
		}
		return album, nil
	case access.KindImage:
		image, err := s.images.FindByID(ctx, id)
		if errors.Is(err, galleryports.ErrImageNotFound) {
			return nil, ports.ErrSubjectNotFound
		}
		if err != nil {
			return nil, err
		}
		return image, nil
	}
	return nil, fmt.Errorf("LifecycleStore.LoadSubject: unsupported kind %q", kind)
}

// PersistTransition is a compare-and-set on is_deleted. Zero affected rows
// means either the row is gone or another request moved it first.
func (s *LifecycleStore) PersistTransition(ctx context.Context, kind access.Kind, id uuid.UUID, from, to domain.State) error {
	table, err := lifecycleTable(kind)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	deletedAt := pgNullTime(nil)
	if to == domain.StateRecycled {
		deletedAt = pgTime(now)
	}

	query, args, err := s.SB.
		Update(table).
		Set("is_deleted", to == domain.StateRecycled).
		Set("deleted_at", deletedAt).
		Set("updated_at", pgTime(now)).
		Where(sq.Eq{"id": pgUUID(id), "is_deleted": from == domain.StateRecycled}).
		ToSql()
	if err != nil {
		return fmt.Errorf("LifecycleStore.PersistTransition: build query: %w", err)
	}

	result, err := s.DB.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("LifecycleStore.PersistTransition: %w", err)
	}
	if result.RowsAffected() == 1 {
		return nil
	}

	exists, err := s.Exists(ctx, s.SB.Select("1").From(table).Where(sq.Eq{"id": pgUUID(id)}))
	if err != nil {
		return fmt.Errorf("LifecycleStore.PersistTransition: %w", err)
	}
	if !exists {
		return ports.ErrSubjectNotFound
	}
	return ports.ErrTransitionConflict
}

func lifecycleTable(kind access.Kind) (string, error) {
	switch kind {
	case access.KindAlbum:
		return "albums", nil
	case access.KindImage:
		return "images", nil
	}
	return "", fmt.Errorf("LifecycleStore: unsupported kind %q", kind)
}

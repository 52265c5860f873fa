package application

import (
	"context"
	"errors"

	"github.com/google/uuid"

	accessapp "github.com/philly/arch-gallery/backend/internal/access/application"
	access "github.com/philly/arch-gallery/backend/internal/access/domain"
	"github.com/philly/arch-gallery/backend/internal/gallery/domain"
	"github.com/philly/arch-gallery/backend/internal/gallery/ports"
	"github.com/philly/arch-gallery/backend/internal/platform/apperror"
	"github.com/philly/arch-gallery/backend/internal/platform/logger"
	"github.com/philly/arch-gallery/backend/internal/platform/pagination"
)

// CreateAlbumParams contains the client-supplied fields of a new album
type CreateAlbumParams struct {
	Name        string
	Description string
	Permission  domain.Permission
	Password    string
}

// AlbumService handles album business logic
type AlbumService struct {
	albums    ports.AlbumRepository
	images    ports.ImageRepository
	access    *accessapp.Resolver
	lifecycle ports.LifecycleManager
	hasher    domain.PasswordHasher
	logger    logger.Logger
}

func NewAlbumService(
	albums ports.AlbumRepository,
	images ports.ImageRepository,
	access *accessapp.Resolver,
	lifecycle ports.LifecycleManager,
	hasher domain.PasswordHasher,
	logger logger.Logger,
) *AlbumService {
	return &AlbumService{
		albums:    albums,
		images:    images,
		access:    access,
		lifecycle: lifecycle,
		hasher:    hasher,
		logger:    logger,
	}
}

// Create makes a new album owned by actor. Any active USER may create albums.
func (s *AlbumService) Create(ctx context.Context, actor *access.Actor, params CreateAlbumParams) (*domain.Album, error) {
	if !actor.Authenticated() {
		return nil, apperror.ErrUnauthenticated
	}
	if !actor.HasRole(access.RoleUser) {
		return nil, apperror.ErrInsufficientRole
	}

	album, err := domain.NewAlbum(actor.ID, params.Name, params.Description, params.Permission, params.Password, s.hasher)
	if err != nil {
		if inErr := inputError(err, ErrInvalidAlbumData); inErr != nil {
			return nil, inErr
		}
		s.logger.Error(ctx, "failed to build album", "error", err)
		return nil, apperror.Internal(err, "failed to create album")
	}

	if err := s.albums.Create(ctx, album); err != nil {
		s.logger.Error(ctx, "failed to create album", "error", err)
		return nil, apperror.Internal(err, "failed to create album")
	}

	s.logger.Info(ctx, "album created", "album_id", album.ID, "owner_id", actor.ID, "permission", album.Permission)
	return album, nil
}

// Get returns an album the actor may view. password unlocks PROTECTED
// albums for non-owners.
func (s *AlbumService) Get(ctx context.Context, actor *access.Actor, id uuid.UUID, password *string) (*domain.Album, error) {
	album, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	decision, err := s.access.CanView(ctx, actor, album, accessapp.ViewOptions{Password: password})
	if err != nil {
		s.logger.Error(ctx, "access check failed", "album_id", id, "error", err)
		return nil, apperror.Internal(err, "authorization check failed")
	}
	if decision.Denied() {
		s.logger.Debug(ctx, "album view denied", "album_id", id, "decision", decision)
		return nil, accessapp.DenialError(decision, ErrAlbumNotFound)
	}
	return album, nil
}

// Update applies a whitelisted change set. Only the owner may update.
func (s *AlbumService) Update(ctx context.Context, actor *access.Actor, id uuid.UUID, update domain.AlbumUpdate) (*domain.Album, error) {
	if update.IsEmpty() {
		return nil, apperror.ErrInvalidInput.WithDetails("no fields to update")
	}

	album, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	decision, err := s.access.Resolve(ctx, actor, album, access.ActionModify, accessapp.ViewOptions{})
	if err != nil {
		s.logger.Error(ctx, "access check failed", "album_id", id, "error", err)
		return nil, apperror.Internal(err, "authorization check failed")
	}
	if decision.Denied() {
		s.logger.Debug(ctx, "album update denied", "album_id", id, "decision", decision)
		return nil, accessapp.DenialError(decision, ErrAlbumNotFound)
	}

	if update.CoverImageID != nil {
		ok, err := s.images.ExistsInAlbum(ctx, *update.CoverImageID, album.ID)
		if err != nil {
			s.logger.Error(ctx, "failed to check cover image", "album_id", id, "error", err)
			return nil, apperror.Internal(err, "failed to update album")
		}
		if !ok {
			return nil, ErrCoverImageNotInAlbum
		}
	}

	if err := album.Apply(update, s.hasher); err != nil {
		if inErr := inputError(err, ErrInvalidAlbumData); inErr != nil {
			return nil, inErr
		}
		s.logger.Error(ctx, "failed to apply album update", "album_id", id, "error", err)
		return nil, apperror.Internal(err, "failed to update album")
	}

	if err := s.albums.Update(ctx, album); err != nil {
		if errors.Is(err, ports.ErrAlbumNotFound) {
			return nil, ErrAlbumNotFound
		}
		s.logger.Error(ctx, "failed to update album", "album_id", id, "error", err)
		return nil, apperror.Internal(err, "failed to update album")
	}
	return album, nil
}

// Delete moves the album to its owner's recycle bin.
func (s *AlbumService) Delete(ctx context.Context, actor *access.Actor, id uuid.UUID) error {
	return s.lifecycle.Transition(ctx, actor, access.KindAlbum, id, access.ActionDelete)
}

// Restore brings an album back from the recycle bin and returns it.
func (s *AlbumService) Restore(ctx context.Context, actor *access.Actor, id uuid.UUID) (*domain.Album, error) {
	if err := s.lifecycle.Transition(ctx, actor, access.KindAlbum, id, access.ActionRestore); err != nil {
		return nil, err
	}
	return s.find(ctx, id)
}

// ListRecycled pages through the actor's recycled albums, newest deletion first.
func (s *AlbumService) ListRecycled(ctx context.Context, actor *access.Actor, page pagination.Request) (pagination.Page[*domain.Album], error) {
	if !actor.Authenticated() {
		return pagination.Page[*domain.Album]{}, apperror.ErrUnauthenticated
	}
	page.ApplyDefaults()
	if err := page.Validate(); err != nil {
		return pagination.Page[*domain.Album]{}, apperror.ErrInvalidInput.WithDetails(err)
	}

	albums, total, err := s.albums.ListRecycled(ctx, actor.ID, page)
	if err != nil {
		s.logger.Error(ctx, "failed to list recycled albums", "owner_id", actor.ID, "error", err)
		return pagination.Page[*domain.Album]{}, apperror.Internal(err, "failed to list recycle bin")
	}
	return pagination.NewPage(albums, total, page), nil
}

func (s *AlbumService) find(ctx context.Context, id uuid.UUID) (*domain.Album, error) {
	album, err := s.albums.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ports.ErrAlbumNotFound) {
			return nil, ErrAlbumNotFound
		}
		s.logger.Error(ctx, "failed to load album", "album_id", id, "error", err)
		return nil, apperror.Internal(err, "failed to load album")
	}
	if err := album.CheckInvariants(); err != nil {
		// Only reachable through bad stored data.
		s.logger.Error(ctx, "album violates permission invariants", "album_id", id, "error", err)
	}
	return album, nil
}

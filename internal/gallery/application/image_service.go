package application

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	accessapp "github.com/philly/arch-gallery/backend/internal/access/application"
	access "github.com/philly/arch-gallery/backend/internal/access/domain"
	"github.com/philly/arch-gallery/backend/internal/gallery/domain"
	"github.com/philly/arch-gallery/backend/internal/gallery/ports"
	"github.com/philly/arch-gallery/backend/internal/platform/apperror"
	"github.com/philly/arch-gallery/backend/internal/platform/eventbus"
	"github.com/philly/arch-gallery/backend/internal/platform/events"
	"github.com/philly/arch-gallery/backend/internal/platform/logger"
	"github.com/philly/arch-gallery/backend/internal/platform/pagination"
)

const (
	MaxReorderImages = 500
	MaxBatchImages   = 100
)

// ImageService handles image metadata. File storage and thumbnailing happen
// before Register is called.
type ImageService struct {
	albums    ports.AlbumRepository
	images    ports.ImageRepository
	access    *accessapp.Resolver
	lifecycle ports.LifecycleManager
	eventBus  eventbus.Publisher
	logger    logger.Logger
}

func NewImageService(
	albums ports.AlbumRepository,
	images ports.ImageRepository,
	access *accessapp.Resolver,
	lifecycle ports.LifecycleManager,
	eventBus eventbus.Publisher,
	logger logger.Logger,
) *ImageService {
	return &ImageService{
		albums:    albums,
		images:    images,
		access:    access,
		lifecycle: lifecycle,
		eventBus:  eventBus,
		logger:    logger,
	}
}

// Register records an image in an album the actor owns.
func (s *ImageService) Register(ctx context.Context, actor *access.Actor, albumID uuid.UUID, meta domain.ImageMetadata) (*domain.Image, error) {
	album, err := s.albums.FindByID(ctx, albumID)
	if err != nil {
		if errors.Is(err, ports.ErrAlbumNotFound) {
			return nil, ErrAlbumNotFound
		}
		s.logger.Error(ctx, "failed to load album", "album_id", albumID, "error", err)
		return nil, apperror.Internal(err, "failed to register image")
	}

	decision, err := s.access.Resolve(ctx, actor, album, access.ActionModify, accessapp.ViewOptions{})
	if err != nil {
		s.logger.Error(ctx, "access check failed", "album_id", albumID, "error", err)
		return nil, apperror.Internal(err, "authorization check failed")
	}
	if decision.Denied() {
		s.logger.Debug(ctx, "image registration denied", "album_id", albumID, "decision", decision)
		return nil, accessapp.DenialError(decision, ErrAlbumNotFound)
	}

	image, err := domain.NewImage(album, meta)
	if err != nil {
		if inErr := inputError(err, ErrInvalidImageData); inErr != nil {
			return nil, inErr
		}
		return nil, apperror.Internal(err, "failed to register image")
	}

	if err := s.images.Create(ctx, image); err != nil {
		s.logger.Error(ctx, "failed to create image", "album_id", albumID, "error", err)
		return nil, apperror.Internal(err, "failed to register image")
	}

	s.eventBus.Publish(ctx, eventbus.Event{
		Topic: events.ImageRegisteredTopic,
		Payload: events.ImageRegisteredEvent{
			ImageID:    image.ID,
			AlbumID:    album.ID,
			ActorID:    actor.ID,
			OccurredAt: time.Now().UTC(),
		},
	})
	return image, nil
}

// Get returns an image if its album is visible to the actor.
func (s *ImageService) Get(ctx context.Context, actor *access.Actor, id uuid.UUID, password *string) (*domain.Image, error) {
	image, err := s.images.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ports.ErrImageNotFound) {
			return nil, ErrImageNotFound
		}
		s.logger.Error(ctx, "failed to load image", "image_id", id, "error", err)
		return nil, apperror.Internal(err, "failed to load image")
	}

	decision, err := s.access.CanView(ctx, actor, image, accessapp.ViewOptions{Password: password})
	if err != nil {
		s.logger.Error(ctx, "access check failed", "image_id", id, "error", err)
		return nil, apperror.Internal(err, "authorization check failed")
	}
	if decision.Denied() {
		s.logger.Debug(ctx, "image view denied", "image_id", id, "decision", decision)
		return nil, accessapp.DenialError(decision, ErrImageNotFound)
	}
	return image, nil
}

// ListByAlbum pages through the live images of a visible album.
func (s *ImageService) ListByAlbum(ctx context.Context, actor *access.Actor, albumID uuid.UUID, password *string, page pagination.Request) (pagination.Page[*domain.Image], error) {
	var empty pagination.Page[*domain.Image]

	page.ApplyDefaults()
	if err := page.Validate(); err != nil {
		return empty, apperror.ErrInvalidInput.WithDetails(err)
	}

	album, err := s.albums.FindByID(ctx, albumID)
	if err != nil {
		if errors.Is(err, ports.ErrAlbumNotFound) {
			return empty, ErrAlbumNotFound
		}
		s.logger.Error(ctx, "failed to load album", "album_id", albumID, "error", err)
		return empty, apperror.Internal(err, "failed to list images")
	}

	eval := s.access.Begin()
	opts := accessapp.ViewOptions{Password: password}
	decision, err := eval.CanView(ctx, actor, album, opts)
	if err != nil {
		return empty, apperror.Internal(err, "authorization check failed")
	}
	if decision.Denied() {
		s.logger.Debug(ctx, "album view denied", "album_id", albumID, "decision", decision)
		return empty, accessapp.DenialError(decision, ErrAlbumNotFound)
	}

	images, total, err := s.images.ListByAlbum(ctx, albumID, page)
	if err != nil {
		s.logger.Error(ctx, "failed to list images", "album_id", albumID, "error", err)
		return empty, apperror.Internal(err, "failed to list images")
	}

	visible := images[:0]
	for _, image := range images {
		d, err := eval.CanView(ctx, actor, image, opts)
		if err != nil {
			return empty, apperror.Internal(err, "authorization check failed")
		}
		if d.Allowed {
			visible = append(visible, image)
		} else {
			total--
		}
	}
	return pagination.NewPage(visible, total, page), nil
}

// Delete moves the image to the recycle bin.
func (s *ImageService) Delete(ctx context.Context, actor *access.Actor, id uuid.UUID) error {
	return s.lifecycle.Transition(ctx, actor, access.KindImage, id, access.ActionDelete)
}

// Restore brings an image back. It stays hidden while its album is recycled.
func (s *ImageService) Restore(ctx context.Context, actor *access.Actor, id uuid.UUID) (*domain.Image, error) {
	if err := s.lifecycle.Transition(ctx, actor, access.KindImage, id, access.ActionRestore); err != nil {
		return nil, err
	}
	image, err := s.images.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err, "failed to load image")
	}
	return image, nil
}

// Reorder sets the display position of the listed images to their index in
// ids. Every id must be a live image of the album or nothing changes.
func (s *ImageService) Reorder(ctx context.Context, actor *access.Actor, albumID uuid.UUID, ids []uuid.UUID) error {
	if err := validateIDs(ids, MaxReorderImages); err != nil {
		return ErrInvalidImageOrder.WithDetails(err.Error())
	}

	album, err := s.albums.FindByID(ctx, albumID)
	if err != nil {
		if errors.Is(err, ports.ErrAlbumNotFound) {
			return ErrAlbumNotFound
		}
		s.logger.Error(ctx, "failed to load album", "album_id", albumID, "error", err)
		return apperror.Internal(err, "failed to reorder images")
	}

	decision, err := s.access.Resolve(ctx, actor, album, access.ActionModify, accessapp.ViewOptions{})
	if err != nil {
		s.logger.Error(ctx, "access check failed", "album_id", albumID, "error", err)
		return apperror.Internal(err, "authorization check failed")
	}
	if decision.Denied() {
		s.logger.Debug(ctx, "image reorder denied", "album_id", albumID, "decision", decision)
		return accessapp.DenialError(decision, ErrAlbumNotFound)
	}

	if err := s.images.Reorder(ctx, albumID, ids); err != nil {
		if errors.Is(err, ports.ErrImageOrderMismatch) {
			return ErrInvalidImageOrder.WithDetails("every image must be a live image of this album")
		}
		s.logger.Error(ctx, "failed to reorder images", "album_id", albumID, "error", err)
		return apperror.Internal(err, "failed to reorder images")
	}

	s.logger.Info(ctx, "album images reordered", "album_id", albumID, "count", len(ids))
	return nil
}

// BatchDeleteResult lists the images that went to the recycle bin and the
// reason each of the others was skipped.
type BatchDeleteResult struct {
	Deleted []uuid.UUID
	Skipped map[uuid.UUID]error
}

// BatchDelete recycles each image the actor may delete and skips the rest.
// Album image counts are refreshed once per album.
func (s *ImageService) BatchDelete(ctx context.Context, actor *access.Actor, ids []uuid.UUID) (BatchDeleteResult, error) {
	if !actor.Authenticated() {
		return BatchDeleteResult{}, apperror.ErrUnauthenticated
	}
	if err := validateIDs(ids, MaxBatchImages); err != nil {
		return BatchDeleteResult{}, ErrInvalidImageData.WithDetails(err.Error())
	}

	deleted, skipped, err := s.lifecycle.TransitionMany(ctx, actor, access.KindImage, ids, access.ActionDelete)
	if err != nil {
		return BatchDeleteResult{}, err
	}
	if len(deleted) == 0 {
		for _, id := range ids {
			if appErr, ok := apperror.As(skipped[id]); !ok || appErr.HTTPStatus >= http.StatusInternalServerError {
				return BatchDeleteResult{}, skipped[id]
			}
		}
		return BatchDeleteResult{}, ErrNoDeletableImages
	}

	s.logger.Info(ctx, "images batch deleted", "deleted", len(deleted), "skipped", len(skipped))
	return BatchDeleteResult{Deleted: deleted, Skipped: skipped}, nil
}

func (s *ImageService) ListRecycled(ctx context.Context, actor *access.Actor, page pagination.Request) (pagination.Page[*domain.Image], error) {
	if !actor.Authenticated() {
		return pagination.Page[*domain.Image]{}, apperror.ErrUnauthenticated
	}
	page.ApplyDefaults()
	if err := page.Validate(); err != nil {
		return pagination.Page[*domain.Image]{}, apperror.ErrInvalidInput.WithDetails(err)
	}

	images, total, err := s.images.ListRecycled(ctx, actor.ID, page)
	if err != nil {
		s.logger.Error(ctx, "failed to list recycled images", "owner_id", actor.ID, "error", err)
		return pagination.Page[*domain.Image]{}, apperror.Internal(err, "failed to list recycle bin")
	}
	return pagination.NewPage(images, total, page), nil
}

func validateIDs(ids []uuid.UUID, max int) error {
	if err := validation.Validate(ids, validation.Required, validation.Length(1, max)); err != nil {
		return err
	}
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			return errors.New("ids must not contain the nil uuid")
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("duplicate id %s", id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

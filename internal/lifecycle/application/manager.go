package application

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	accessapp "github.com/philly/arch-gallery/backend/internal/access/application"
	access "github.com/philly/arch-gallery/backend/internal/access/domain"
	"github.com/philly/arch-gallery/backend/internal/lifecycle/domain"
	"github.com/philly/arch-gallery/backend/internal/lifecycle/ports"
	"github.com/philly/arch-gallery/backend/internal/platform/apperror"
	"github.com/philly/arch-gallery/backend/internal/platform/eventbus"
	"github.com/philly/arch-gallery/backend/internal/platform/events"
	"github.com/philly/arch-gallery/backend/internal/platform/logger"
)

var (
	ErrAlbumNotFound = apperror.New(
		apperror.CodeNotFound,
		apperror.BusinessCodeAlbumNotFound,
		"album not found",
		http.StatusNotFound,
	)

	ErrImageNotFound = apperror.New(
		apperror.CodeNotFound,
		apperror.BusinessCodeImageNotFound,
		"image not found",
		http.StatusNotFound,
	)

	ErrTransitionConflict = apperror.New(
		apperror.CodeConflict,
		apperror.BusinessCodeTransitionConflict,
		"item was changed by another request",
		http.StatusConflict,
	)

	ErrUnsupportedKind = apperror.New(
		apperror.CodeValidationFailed,
		apperror.BusinessCodeInvalidFormat,
		"only albums and images can be recycled",
		http.StatusBadRequest,
	)
)

// Manager moves albums and images between the active set and the recycle
// bin. Blog posts and comments have their own delete semantics and are not
// handled here.
type Manager struct {
	store    ports.SubjectStore
	access   ports.Authorizer
	eventBus eventbus.Publisher
	logger   logger.Logger
}

func NewManager(
	store ports.SubjectStore,
	access ports.Authorizer,
	eventBus eventbus.Publisher,
	logger logger.Logger,
) *Manager {
	return &Manager{
		store:    store,
		access:   access,
		eventBus: eventBus,
		logger:   logger,
	}
}

// Transition applies a delete or restore on behalf of actor.
func (m *Manager) Transition(ctx context.Context, actor *access.Actor, kind access.Kind, id uuid.UUID, action access.Action) error {
	if err := checkRequest(kind, action); err != nil {
		return err
	}
	subject, to, err := m.apply(ctx, actor, kind, id, action)
	if err != nil {
		return err
	}
	m.publish(ctx, actor, subject, to)
	return nil
}

// TransitionMany applies the same action to each id independently. Failures
// are reported per id and never stop the rest of the batch. Images moved in
// one call produce a single event per album.
func (m *Manager) TransitionMany(ctx context.Context, actor *access.Actor, kind access.Kind, ids []uuid.UUID, action access.Action) ([]uuid.UUID, map[uuid.UUID]error, error) {
	if err := checkRequest(kind, action); err != nil {
		return nil, nil, err
	}

	var (
		applied  []uuid.UUID
		subjects []domain.Subject
		to       domain.State
	)
	failed := make(map[uuid.UUID]error)
	for _, id := range ids {
		subject, next, err := m.apply(ctx, actor, kind, id, action)
		if err != nil {
			failed[id] = err
			continue
		}
		applied = append(applied, id)
		subjects = append(subjects, subject)
		to = next
	}

	if kind == access.KindImage {
		m.publishImageBatch(ctx, actor, subjects, to)
	} else {
		for _, subject := range subjects {
			m.publish(ctx, actor, subject, to)
		}
	}
	return applied, failed, nil
}

func checkRequest(kind access.Kind, action access.Action) error {
	if _, ok := notFoundFor(kind); !ok {
		return ErrUnsupportedKind
	}
	if action != access.ActionDelete && action != access.ActionRestore {
		return apperror.ErrInvalidInput.WithDetails("action must be delete or restore")
	}
	return nil
}

// apply loads, authorizes and persists one transition.
func (m *Manager) apply(ctx context.Context, actor *access.Actor, kind access.Kind, id uuid.UUID, action access.Action) (domain.Subject, domain.State, error) {
	notFound, _ := notFoundFor(kind)

	subject, err := m.store.LoadSubject(ctx, kind, id)
	if err != nil {
		if errors.Is(err, ports.ErrSubjectNotFound) {
			return nil, "", notFound
		}
		m.logger.Error(ctx, "failed to load lifecycle subject", "kind", kind, "id", id, "error", err)
		return nil, "", apperror.Internal(err, "failed to load item")
	}

	decision, err := m.access.Resolve(ctx, actor, subject, action, accessapp.ViewOptions{})
	if err != nil {
		m.logger.Error(ctx, "access check failed", "kind", kind, "id", id, "error", err)
		return nil, "", apperror.Internal(err, "authorization check failed")
	}
	if decision.Denied() {
		m.logger.Debug(ctx, "lifecycle transition denied", "kind", kind, "id", id, "action", action, "decision", decision)
		return nil, "", accessapp.DenialError(decision, notFound)
	}

	from := subject.LifecycleState()
	to, err := domain.Next(from, action)
	if err != nil {
		return nil, "", accessapp.ErrInvalidLifecycleState.WithDetails(err.Error())
	}

	if err := m.store.PersistTransition(ctx, kind, id, from, to); err != nil {
		switch {
		case errors.Is(err, ports.ErrTransitionConflict):
			return nil, "", ErrTransitionConflict
		case errors.Is(err, ports.ErrSubjectNotFound):
			return nil, "", notFound
		}
		m.logger.Error(ctx, "failed to persist lifecycle transition", "kind", kind, "id", id, "from", from, "to", to, "error", err)
		return nil, "", apperror.Internal(err, "failed to update item")
	}

	m.logger.Info(ctx, "lifecycle transition applied", "kind", kind, "id", id, "from", from, "to", to)
	return subject, to, nil
}

func (m *Manager) publish(ctx context.Context, actor *access.Actor, subject domain.Subject, to domain.State) {
	now := time.Now().UTC()
	recycled := to == domain.StateRecycled

	switch subject.ResourceKind() {
	case access.KindAlbum:
		topic := events.AlbumRestoredTopic
		if recycled {
			topic = events.AlbumRecycledTopic
		}
		m.eventBus.Publish(ctx, eventbus.Event{
			Topic: topic,
			Payload: events.AlbumLifecycleEvent{
				AlbumID:    subject.ResourceID(),
				ActorID:    actor.IDOrNil(),
				OccurredAt: now,
			},
		})

	case access.KindImage:
		topic := events.ImageRestoredTopic
		if recycled {
			topic = events.ImageRecycledTopic
		}
		m.eventBus.Publish(ctx, eventbus.Event{
			Topic: topic,
			Payload: events.ImageLifecycleEvent{
				ImageID:    subject.ResourceID(),
				AlbumID:    parentAlbum(subject),
				ActorID:    actor.IDOrNil(),
				OccurredAt: now,
			},
		})
	}
}

func (m *Manager) publishImageBatch(ctx context.Context, actor *access.Actor, subjects []domain.Subject, to domain.State) {
	if len(subjects) == 0 {
		return
	}
	topic := events.ImageRestoredTopic
	if to == domain.StateRecycled {
		topic = events.ImageRecycledTopic
	}

	var order []uuid.UUID
	byAlbum := make(map[uuid.UUID][]uuid.UUID)
	for _, subject := range subjects {
		albumID := parentAlbum(subject)
		if _, seen := byAlbum[albumID]; !seen {
			order = append(order, albumID)
		}
		byAlbum[albumID] = append(byAlbum[albumID], subject.ResourceID())
	}

	now := time.Now().UTC()
	for _, albumID := range order {
		m.eventBus.Publish(ctx, eventbus.Event{
			Topic: topic,
			Payload: events.ImageBatchLifecycleEvent{
				ImageIDs:   byAlbum[albumID],
				AlbumID:    albumID,
				ActorID:    actor.IDOrNil(),
				OccurredAt: now,
			},
		})
	}
}

func parentAlbum(subject domain.Subject) uuid.UUID {
	if img, ok := subject.(interface{ ParentAlbumID() uuid.UUID }); ok {
		return img.ParentAlbumID()
	}
	return uuid.Nil
}

func notFoundFor(kind access.Kind) (*apperror.AppError, bool) {
	switch kind {
	case access.KindAlbum:
		return ErrAlbumNotFound, true
	case access.KindImage:
		return ErrImageNotFound, true
	}
	return nil, false
}

package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	accessapp "github.com/philly/arch-gallery/backend/internal/access/application"
	access "github.com/philly/arch-gallery/backend/internal/access/domain"
	"github.com/philly/arch-gallery/backend/internal/blog/domain"
	"github.com/philly/arch-gallery/backend/internal/blog/ports"
	"github.com/philly/arch-gallery/backend/internal/platform/apperror"
	"github.com/philly/arch-gallery/backend/internal/platform/eventbus"
	"github.com/philly/arch-gallery/backend/internal/platform/events"
	"github.com/philly/arch-gallery/backend/internal/platform/logger"
)

// PostService handles blog post business logic
type PostService struct {
	posts     ports.PostRepository
	access    *accessapp.Resolver
	eventBus  eventbus.Publisher
	logger    logger.Logger
	sanitizer *bluemonday.Policy
}

func NewPostService(
	posts ports.PostRepository,
	access *accessapp.Resolver,
	eventBus eventbus.Publisher,
	logger logger.Logger,
) *PostService {
	return &PostService{
		posts:     posts,
		access:    access,
		eventBus:  eventBus,
		logger:    logger,
		sanitizer: bluemonday.UGCPolicy(),
	}
}

// CreatePostParams contains parameters for creating a new post
type CreatePostParams = domain.PostFields

// Create publishes or drafts a post. Only AUTHORs and above may write posts.
func (s *PostService) Create(ctx context.Context, actor *access.Actor, params CreatePostParams) (*domain.Post, error) {
	if !actor.Authenticated() {
		return nil, apperror.ErrUnauthenticated
	}
	if !actor.HasRole(access.RoleAuthor) {
		return nil, apperror.ErrInsufficientRole
	}

	params.Content = s.sanitizer.Sanitize(params.Content)
	post, err := domain.NewPost(actor.ID, params)
	if err != nil {
		return nil, ErrInvalidPostData.WithDetails(err)
	}

	if err := s.posts.Create(ctx, post); err != nil {
		s.logger.Error(ctx, "failed to create post", "error", err)
		return nil, apperror.Internal(err, "failed to create post")
	}

	s.eventBus.Publish(ctx, eventbus.Event{
		Topic: events.PostCreatedTopic,
		Payload: events.PostCreatedEvent{
			PostID:     post.ID,
			ActorID:    actor.ID,
			Title:      post.Title,
			OccurredAt: time.Now().UTC(),
		},
	})
	return post, nil
}

// Get returns a post the actor may read. Drafts and private posts are
// reported as missing to everyone but their owner.
func (s *PostService) Get(ctx context.Context, actor *access.Actor, id uuid.UUID) (*domain.Post, error) {
	post, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	decision, err := s.access.CanView(ctx, actor, post, accessapp.ViewOptions{})
	if err != nil {
		return nil, apperror.Internal(err, "authorization check failed")
	}
	if decision.Denied() {
		s.logger.Debug(ctx, "post view denied", "post_id", id, "decision", decision)
		return nil, accessapp.DenialError(decision, ErrPostNotFound)
	}
	return post, nil
}

// Update applies a whitelisted change set on behalf of the owner.
func (s *PostService) Update(ctx context.Context, actor *access.Actor, id uuid.UUID, update domain.PostUpdate) (*domain.Post, error) {
	if update.IsEmpty() {
		return nil, apperror.ErrInvalidInput.WithDetails("no fields to update")
	}

	post, err := s.authorize(ctx, actor, id, access.ActionModify)
	if err != nil {
		return nil, err
	}

	if update.Content != nil {
		clean := s.sanitizer.Sanitize(*update.Content)
		update.Content = &clean
	}
	if err := post.Apply(update); err != nil {
		return nil, ErrInvalidPostData.WithDetails(err)
	}

	if err := s.posts.Update(ctx, post); err != nil {
		if errors.Is(err, ports.ErrPostNotFound) {
			return nil, ErrPostNotFound
		}
		s.logger.Error(ctx, "failed to update post", "error", err, "post_id", id)
		return nil, apperror.Internal(err, "failed to update post")
	}
	return post, nil
}

// Delete removes a post and, through the foreign key, its comments.
func (s *PostService) Delete(ctx context.Context, actor *access.Actor, id uuid.UUID) error {
	if _, err := s.authorize(ctx, actor, id, access.ActionDelete); err != nil {
		return err
	}

	if err := s.posts.Delete(ctx, id); err != nil {
		if errors.Is(err, ports.ErrPostNotFound) {
			return ErrPostNotFound
		}
		s.logger.Error(ctx, "failed to delete post", "error", err, "post_id", id)
		return apperror.Internal(err, "failed to delete post")
	}

	s.logger.Info(ctx, "post deleted", "post_id", id, "actor_id", actor.ID)
	s.eventBus.Publish(ctx, eventbus.Event{
		Topic: events.PostDeletedTopic,
		Payload: events.PostDeletedEvent{
			PostID:     id,
			ActorID:    actor.ID,
			OccurredAt: time.Now().UTC(),
		},
	})
	return nil
}

func (s *PostService) authorize(ctx context.Context, actor *access.Actor, id uuid.UUID, action access.Action) (*domain.Post, error) {
	post, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	decision, err := s.access.Resolve(ctx, actor, post, action, accessapp.ViewOptions{})
	if err != nil {
		s.logger.Error(ctx, "access check failed", "post_id", id, "error", err)
		return nil, apperror.Internal(err, "authorization check failed")
	}
	if decision.Denied() {
		s.logger.Debug(ctx, "post mutation denied", "post_id", id, "action", action, "decision", decision)
		return nil, accessapp.DenialError(decision, ErrPostNotFound)
	}
	return post, nil
}

func (s *PostService) find(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ports.ErrPostNotFound) {
			return nil, ErrPostNotFound
		}
		s.logger.Error(ctx, "failed to find post", "error", err, "post_id", id)
		return nil, apperror.Internal(err, "failed to retrieve post")
	}
	return post, nil
}

package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/microcosm-cc/bluemonday"

	accessapp "github.com/philly/arch-gallery/backend/internal/access/application"
	access "github.com/philly/arch-gallery/backend/internal/access/domain"
	"github.com/philly/arch-gallery/backend/internal/blog/domain"
	"github.com/philly/arch-gallery/backend/internal/blog/ports"
	"github.com/philly/arch-gallery/backend/internal/platform/apperror"
	"github.com/philly/arch-gallery/backend/internal/platform/eventbus"
	"github.com/philly/arch-gallery/backend/internal/platform/events"
	"github.com/philly/arch-gallery/backend/internal/platform/logger"
	"github.com/philly/arch-gallery/backend/internal/platform/postgres"
)

// CreateCommentParams contains parameters for a new comment or reply
type CreateCommentParams struct {
	Content  string
	ParentID *uuid.UUID
}

// CommentService handles comment threads under blog posts
type CommentService struct {
	posts     ports.PostRepository
	comments  ports.CommentRepository
	txManager postgres.TransactionManager
	access    *accessapp.Resolver
	eventBus  eventbus.Publisher
	logger    logger.Logger
	sanitizer *bluemonday.Policy
}

func NewCommentService(
	posts ports.PostRepository,
	comments ports.CommentRepository,
	txManager postgres.TransactionManager,
	access *accessapp.Resolver,
	eventBus eventbus.Publisher,
	logger logger.Logger,
) *CommentService {
	return &CommentService{
		posts:     posts,
		comments:  comments,
		txManager: txManager,
		access:    access,
		eventBus:  eventBus,
		logger:    logger,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// Create adds a comment to a post the actor can read.
func (s *CommentService) Create(ctx context.Context, actor *access.Actor, postID uuid.UUID, params CreateCommentParams) (*domain.Comment, error) {
	if !actor.Authenticated() {
		return nil, apperror.ErrUnauthenticated
	}

	eval := s.access.Begin()
	post, err := s.visiblePost(ctx, eval, actor, postID)
	if err != nil {
		return nil, err
	}

	var parent *domain.Comment
	if params.ParentID != nil {
		parent, err = s.comments.FindByID(ctx, *params.ParentID)
		if err != nil {
			if errors.Is(err, ports.ErrCommentNotFound) {
				return nil, ErrCommentNotFound
			}
			s.logger.Error(ctx, "failed to load parent comment", "error", err, "comment_id", *params.ParentID)
			return nil, apperror.Internal(err, "failed to create comment")
		}
	}

	comment, err := domain.NewComment(post, actor.ID, s.sanitizer.Sanitize(params.Content), parent)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrReplyDepthExceeded),
			errors.Is(err, domain.ErrParentMismatch),
			errors.Is(err, domain.ErrParentDeleted):
			return nil, ErrReplyDepthExceeded.WithDetails(err.Error())
		}
		return nil, ErrInvalidCommentData.WithDetails(err)
	}

	err = s.inTx(ctx, func(repo ports.CommentRepository) error {
		if err := repo.Create(ctx, comment); err != nil {
			return err
		}
		return repo.RefreshCommentCount(ctx, post.ID)
	})
	if err != nil {
		s.logger.Error(ctx, "failed to create comment", "error", err, "post_id", postID)
		return nil, apperror.Internal(err, "failed to create comment")
	}

	s.eventBus.Publish(ctx, eventbus.Event{
		Topic: events.CommentCreatedTopic,
		Payload: events.CommentCreatedEvent{
			CommentID:  comment.ID,
			PostID:     post.ID,
			ActorID:    actor.ID,
			OccurredAt: time.Now().UTC(),
		},
	})
	return comment, nil
}

// ListByPost returns the live comments of a post the actor can read.
func (s *CommentService) ListByPost(ctx context.Context, actor *access.Actor, postID uuid.UUID) ([]*domain.Comment, error) {
	eval := s.access.Begin()
	if _, err := s.visiblePost(ctx, eval, actor, postID); err != nil {
		return nil, err
	}

	comments, err := s.comments.ListByPost(ctx, postID)
	if err != nil {
		s.logger.Error(ctx, "failed to list comments", "error", err, "post_id", postID)
		return nil, apperror.Internal(err, "failed to list comments")
	}

	visible := comments[:0]
	for _, c := range comments {
		d, err := eval.CanView(ctx, actor, c, accessapp.ViewOptions{})
		if err != nil {
			return nil, apperror.Internal(err, "authorization check failed")
		}
		if d.Allowed {
			visible = append(visible, c)
		}
	}
	return visible, nil
}

// Delete removes a comment and its direct replies. The comment's author and
// the post's owner may both do this.
func (s *CommentService) Delete(ctx context.Context, actor *access.Actor, id uuid.UUID) error {
	comment, err := s.comments.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ports.ErrCommentNotFound) {
			return ErrCommentNotFound
		}
		s.logger.Error(ctx, "failed to load comment", "error", err, "comment_id", id)
		return apperror.Internal(err, "failed to delete comment")
	}

	decision, err := s.access.Resolve(ctx, actor, comment, access.ActionDelete, accessapp.ViewOptions{})
	if err != nil {
		s.logger.Error(ctx, "access check failed", "comment_id", id, "error", err)
		return apperror.Internal(err, "authorization check failed")
	}
	if decision.Denied() {
		s.logger.Debug(ctx, "comment delete denied", "comment_id", id, "decision", decision)
		return accessapp.DenialError(decision, ErrCommentNotFound)
	}

	var removed int
	err = s.inTx(ctx, func(repo ports.CommentRepository) error {
		n, err := repo.SoftDeleteThread(ctx, id)
		if err != nil {
			return err
		}
		removed = n
		return repo.RefreshCommentCount(ctx, comment.PostID)
	})
	if err != nil {
		if errors.Is(err, ports.ErrCommentNotFound) {
			return ErrCommentNotFound
		}
		s.logger.Error(ctx, "failed to delete comment", "error", err, "comment_id", id)
		return apperror.Internal(err, "failed to delete comment")
	}

	s.logger.Info(ctx, "comment thread deleted", "comment_id", id, "removed", removed, "rule", decision.Rule)
	s.eventBus.Publish(ctx, eventbus.Event{
		Topic: events.CommentDeletedTopic,
		Payload: events.CommentDeletedEvent{
			CommentID:  id,
			PostID:     comment.PostID,
			ActorID:    actor.ID,
			Removed:    removed,
			OccurredAt: time.Now().UTC(),
		},
	})
	return nil
}

func (s *CommentService) visiblePost(ctx context.Context, eval *accessapp.Evaluation, actor *access.Actor, postID uuid.UUID) (*domain.Post, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, ports.ErrPostNotFound) {
			return nil, ErrPostNotFound
		}
		s.logger.Error(ctx, "failed to find post", "error", err, "post_id", postID)
		return nil, apperror.Internal(err, "failed to retrieve post")
	}
	eval.RememberPost(post)

	decision, err := eval.CanView(ctx, actor, post, accessapp.ViewOptions{})
	if err != nil {
		return nil, apperror.Internal(err, "authorization check failed")
	}
	if decision.Denied() {
		return nil, accessapp.DenialError(decision, ErrPostNotFound)
	}
	return post, nil
}

// inTx runs fn against a transaction-bound comment repository.
func (s *CommentService) inTx(ctx context.Context, fn func(ports.CommentRepository) error) error {
	return postgres.RunInTx(ctx, s.txManager, func(tx pgx.Tx) error {
		return fn(s.comments.WithTx(tx))
	})
}

package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	access "github.com/philly/arch-gallery/backend/internal/access/domain"
	"github.com/philly/arch-gallery/backend/internal/platform/apperror"
	"github.com/philly/arch-gallery/backend/internal/platform/eventbus"
	"github.com/philly/arch-gallery/backend/internal/platform/events"
	"github.com/philly/arch-gallery/backend/internal/platform/logger"
	"github.com/philly/arch-gallery/backend/internal/platform/pagination"
	"github.com/philly/arch-gallery/backend/internal/users/domain"
	"github.com/philly/arch-gallery/backend/internal/users/ports"
)

// RegisterParams contains the profile fields supplied at sign-up
type RegisterParams struct {
	Username    string
	DisplayName string
	Bio         string
	AvatarURL   string
}

type UserService struct {
	repo     ports.UserRepository
	eventBus eventbus.Publisher
	logger   logger.Logger
}

func NewUserService(repo ports.UserRepository, eventBus eventbus.Publisher, logger logger.Logger) *UserService {
	return &UserService{
		repo:     repo,
		eventBus: eventBus,
		logger:   logger,
	}
}

// Register creates the local account for a verified identity. The subject
// and email come from the token, never from the request body.
func (s *UserService) Register(ctx context.Context, subject, email string, params RegisterParams) (*domain.User, error) {
	if _, err := s.repo.FindBySubject(ctx, subject); err == nil {
		return nil, ErrUserAlreadyExists
	} else if !errors.Is(err, ports.ErrUserNotFound) {
		s.logger.Error(ctx, "failed to look up subject", "error", err)
		return nil, apperror.Internal(err, "failed to register user")
	}

	user, err := domain.NewUser(subject, email, params.Username)
	if err != nil {
		return nil, ErrInvalidUserData.WithDetails(err)
	}
	if err := user.UpdateProfile(params.DisplayName, params.Bio, params.AvatarURL); err != nil {
		return nil, ErrInvalidUserData.WithDetails(err)
	}

	exists, err := s.repo.ExistsByUsername(ctx, user.Username)
	if err != nil {
		s.logger.Error(ctx, "failed to check username availability", "error", err)
		return nil, apperror.Internal(err, "failed to register user")
	}
	if exists {
		return nil, ErrUsernameTaken
	}

	exists, err = s.repo.ExistsByEmail(ctx, user.Email)
	if err != nil {
		s.logger.Error(ctx, "failed to check email availability", "error", err)
		return nil, apperror.Internal(err, "failed to register user")
	}
	if exists {
		return nil, ErrEmailTaken
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, ports.ErrDuplicateUser) {
			return nil, ErrUserAlreadyExists
		}
		s.logger.Error(ctx, "failed to save user", "error", err)
		return nil, apperror.Internal(err, "failed to register user")
	}

	s.logger.Info(ctx, "user registered", "user_id", user.ID, "username", user.Username)
	s.eventBus.Publish(ctx, eventbus.Event{
		Topic: events.UserRegisteredTopic,
		Payload: events.UserRegisteredEvent{
			UserID:     user.ID,
			Username:   user.Username,
			OccurredAt: time.Now().UTC(),
		},
	})
	return user, nil
}

func (s *UserService) GetBySubject(ctx context.Context, subject string) (*domain.User, error) {
	user, err := s.repo.FindBySubject(ctx, subject)
	if err != nil {
		return nil, s.lookupError(ctx, err)
	}
	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.lookupError(ctx, err)
	}
	return user, nil
}

// ChangeRole sets target's role. Administrators cannot demote themselves.
func (s *UserService) ChangeRole(ctx context.Context, actor *access.Actor, target uuid.UUID, role access.Role) (*domain.User, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if actor.ID == target {
		return nil, ErrSelfChange
	}

	user, err := s.GetByID(ctx, target)
	if err != nil {
		return nil, err
	}

	from := user.Role
	if err := user.ChangeRole(role); err != nil {
		return nil, ErrInvalidRole
	}
	if err := s.save(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "user role changed", "user_id", target, "actor_id", actor.ID, "from", from, "to", role)
	s.eventBus.Publish(ctx, eventbus.Event{
		Topic: events.UserRoleChangedTopic,
		Payload: events.UserRoleChangedEvent{
			UserID:     target,
			ActorID:    actor.ID,
			From:       from.String(),
			To:         role.String(),
			OccurredAt: time.Now().UTC(),
		},
	})
	return user, nil
}

// SetActive enables or disables target's account.
func (s *UserService) SetActive(ctx context.Context, actor *access.Actor, target uuid.UUID, active bool) (*domain.User, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if actor.ID == target {
		return nil, ErrSelfChange
	}

	user, err := s.GetByID(ctx, target)
	if err != nil {
		return nil, err
	}

	user.SetActive(active)
	if err := s.save(ctx, user); err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "user status changed", "user_id", target, "actor_id", actor.ID, "active", active)
	return user, nil
}

func (s *UserService) List(ctx context.Context, actor *access.Actor, req pagination.Request) (pagination.Page[*domain.User], error) {
	if err := requireAdmin(actor); err != nil {
		return pagination.Page[*domain.User]{}, err
	}

	req.ApplyDefaults()
	if err := req.Validate(); err != nil {
		return pagination.Page[*domain.User]{}, apperror.ErrInvalidInput.WithDetails(err)
	}

	users, total, err := s.repo.List(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.logger.Error(ctx, "failed to list users", "error", err)
		return pagination.Page[*domain.User]{}, apperror.Internal(err, "failed to list users")
	}
	return pagination.NewPage(users, total, req), nil
}

func (s *UserService) save(ctx context.Context, user *domain.User) error {
	if err := s.repo.Update(ctx, user); err != nil {
		if errors.Is(err, ports.ErrUserNotFound) {
			return ErrUserNotFound
		}
		s.logger.Error(ctx, "failed to update user", "error", err, "user_id", user.ID)
		return apperror.Internal(err, "failed to update user")
	}
	return nil
}

func (s *UserService) lookupError(ctx context.Context, err error) error {
	if errors.Is(err, ports.ErrUserNotFound) {
		return ErrUserNotFound
	}
	s.logger.Error(ctx, "failed to find user", "error", err)
	return apperror.Internal(err, "failed to retrieve user")
}

func requireAdmin(actor *access.Actor) error {
	if !actor.Authenticated() {
		return apperror.ErrUnauthenticated
	}
	if !actor.HasRole(access.RoleAdmin) {
		return apperror.ErrInsufficientRole
	}
	return nil
}

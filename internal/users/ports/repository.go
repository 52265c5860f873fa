package ports

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/philly/arch-gallery/backend/internal/users/domain"
)

var (
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUser is returned by Create when subject, username or
	// email collides with an existing row.
	ErrDuplicateUser = errors.New("duplicate user")
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindBySubject(ctx context.Context, subject string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// List returns one page of users, newest first, and the total count.
	List(ctx context.Context, limit, offset int) ([]*domain.User, int, error)
}

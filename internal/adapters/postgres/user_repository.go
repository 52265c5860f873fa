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

	access "github.com/philly/arch-gallery/backend/internal/access/domain"
	"github.com/philly/arch-gallery/backend/internal/platform/postgres"
	"github.com/philly/arch-gallery/backend/internal/users/domain"
	"github.com/philly/arch-gallery/backend/internal/users/ports"
)

var userColumns = []string{
	"id", "subject", "email", "username", "display_name", "bio", "avatar_url",
	"role", "is_active", "created_at", "updated_at",
}

// UserRepository implements ports.UserRepository using PostgreSQL
type UserRepository struct {
	postgres.BaseRepository
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		BaseRepository: postgres.NewBaseRepository(db),
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	query, args, err := r.SB.
		Insert("users").
		Columns(userColumns...).
		Values(
			pgUUID(user.ID),
			user.Subject,
			user.Email,
			user.Username,
			pgText(user.DisplayName),
			pgText(user.Bio),
			pgText(user.AvatarURL),
			user.Role.String(),
			user.IsActive,
			pgTime(user.CreatedAt),
			pgTime(user.UpdatedAt),
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("UserRepository.Create: build query: %w", err)
	}

	if _, err := r.DB.Exec(ctx, query, args...); err != nil {
		if postgres.IsUniqueViolation(err) {
			return ports.ErrDuplicateUser
		}
		return fmt.Errorf("UserRepository.Create: %w", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.findOne(ctx, "UserRepository.FindByID", sq.Eq{"id": pgUUID(id)})
}

func (r *UserRepository) FindBySubject(ctx context.Context, subject string) (*domain.User, error) {
	return r.findOne(ctx, "UserRepository.FindBySubject", sq.Eq{"subject": subject})
}

// Update writes profile, role and status columns
func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	query, args, err := r.SB.
		Update("users").
		Set("display_name", pgText(user.DisplayName)).
		Set("bio", pgText(user.Bio)).
		Set("avatar_url", pgText(user.AvatarURL)).
		Set("role", user.Role.String()).
		Set("is_active", user.IsActive).
		Set("updated_at", pgTime(user.UpdatedAt)).
		Where(sq.Eq{"id": pgUUID(user.ID)}).
		ToSql()
	if err != nil {
		return fmt.Errorf("UserRepository.Update: build query: %w", err)
	}

	result, err := r.DB.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("UserRepository.Update: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ports.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, "UserRepository.ExistsByUsername", sq.Eq{"username": username})
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "UserRepository.ExistsByEmail", sq.Eq{"email": email})
}

func (r *UserRepository) List(ctx context.Context, limit, offset int) ([]*domain.User, int, error) {
	query, args, err := r.SB.
		Select(userColumns...).
		From("users").
		OrderBy("created_at DESC", "id ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("UserRepository.List: build query: %w", err)
	}

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("UserRepository.List: %w", err)
	}
	users, err := collect(rows, scanUser)
	if err != nil {
		return nil, 0, fmt.Errorf("UserRepository.List: %w", err)
	}

	total, err := r.Count(ctx, r.SB.Select("COUNT(*)").From("users"))
	if err != nil {
		return nil, 0, fmt.Errorf("UserRepository.List: %w", err)
	}
	return users, total, nil
}

func (r *UserRepository) findOne(ctx context.Context, op string, where sq.Sqlizer) (*domain.User, error) {
	query, args, err := r.SB.
		Select(userColumns...).
		From("users").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: build query: %w", op, err)
	}

	user, err := scanUser(r.DB.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ports.ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return user, nil
}

func (r *UserRepository) exists(ctx context.Context, op string, where sq.Sqlizer) (bool, error) {
	exists, err := r.Exists(ctx, r.SB.Select("1").From("users").Where(where))
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return exists, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	var id pgtype.UUID
	var displayName, bio, avatarURL pgtype.Text
	var role string

	err := row.Scan(
		&id,
		&u.Subject,
		&u.Email,
		&u.Username,
		&displayName,
		&bio,
		&avatarURL,
		&role,
		&u.IsActive,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	parsed, err := access.ParseRole(role)
	if err != nil {
		return nil, fmt.Errorf("scanUser: %w", err)
	}

	u.ID = uuid.UUID(id.Bytes)
	u.DisplayName = displayName.String
	u.Bio = bio.String
	u.AvatarURL = avatarURL.String
	u.Role = parsed
	return &u, nil
}

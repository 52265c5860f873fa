package domain

import (
	"errors"
	"regexp"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	access "github.com/philly/arch-gallery/backend/internal/access/domain"
)

const (
	MinUsernameLength = 3
	MaxUsernameLength = 30
	MaxBioLength      = 500
)

var ErrEmptySubject = errors.New("identity subject cannot be empty")

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// User is a registered account. Subject is the identity provider's id for
// the account and never changes.
type User struct {
	ID          uuid.UUID
	Subject     string
	Email       string
	Username    string
	DisplayName string
	Bio         string
	AvatarURL   string
	Role        access.Role
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewUser creates an active USER.
func NewUser(subject, email, username string) (*User, error) {
	if strings.TrimSpace(subject) == "" {
		return nil, ErrEmptySubject
	}

	now := time.Now().UTC()
	u := &User{
		ID:        uuid.New(),
		Subject:   subject,
		Email:     strings.ToLower(strings.TrimSpace(email)),
		Username:  strings.TrimSpace(username),
		Role:      access.RoleUser,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	return u, nil
}

func (u *User) Validate() error {
	return validation.ValidateStruct(u,
		validation.Field(&u.Email, validation.Required, is.EmailFormat),
		validation.Field(&u.Username,
			validation.Required,
			validation.Length(MinUsernameLength, MaxUsernameLength),
			validation.Match(usernamePattern).Error("may contain letters, digits, '_' and '-' only"),
		),
		validation.Field(&u.Bio, validation.RuneLength(0, MaxBioLength)),
		validation.Field(&u.AvatarURL, is.URL),
	)
}

// UpdateProfile overwrites the non-empty fields.
func (u *User) UpdateProfile(displayName, bio, avatarURL string) error {
	next := *u
	if displayName != "" {
		next.DisplayName = strings.TrimSpace(displayName)
	}
	if bio != "" {
		next.Bio = bio
	}
	if avatarURL != "" {
		next.AvatarURL = strings.TrimSpace(avatarURL)
	}
	if err := next.Validate(); err != nil {
		return err
	}
	next.UpdatedAt = time.Now().UTC()
	*u = next
	return nil
}

func (u *User) ChangeRole(role access.Role) error {
	if !role.IsValid() {
		return access.ErrInvalidRole
	}
	u.Role = role
	u.UpdatedAt = time.Now().UTC()
	return nil
}

func (u *User) SetActive(active bool) {
	u.IsActive = active
	u.UpdatedAt = time.Now().UTC()
}

// Actor is the identity this account acts as. Deactivated accounts yield an
// inactive actor, which the access rules treat as anonymous.
func (u *User) Actor() *access.Actor {
	return &access.Actor{ID: u.ID, Role: u.Role, Active: u.IsActive}
}

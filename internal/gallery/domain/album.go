package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	access "github.com/philly/arch-gallery/backend/internal/access/domain"
	lifecycle "github.com/philly/arch-gallery/backend/internal/lifecycle/domain"
)

const (
	MaxAlbumNameLength        = 100
	MaxAlbumDescriptionLength = 2000
	MaxAlbumPasswordLength    = 72 // bcrypt input limit
)

var ErrInvalidOwner = errors.New("owner ID is required")

// Album is a collection of images with its own visibility tier.
type Album struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	Name         string
	Description  string
	Permission   Permission
	PasswordHash string // set iff Permission == PROTECTED
	CoverImageID *uuid.UUID
	ImageCount   int
	IsDeleted    bool
	DeletedAt    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewAlbum validates input and hashes the password for PROTECTED albums.
func NewAlbum(ownerID uuid.UUID, name, description string, permission Permission, password string, hasher PasswordHasher) (*Album, error) {
	if ownerID == uuid.Nil {
		return nil, ErrInvalidOwner
	}

	now := time.Now().UTC()
	album := &Album{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := album.validateText(); err != nil {
		return nil, err
	}

	var pw *string
	if password != "" {
		pw = &password
	}
	if err := album.SetPermission(permission, pw, hasher); err != nil {
		return nil, err
	}
	return album, nil
}

// SetPermission changes the visibility tier. A nil password keeps an
// existing PROTECTED hash; any supplied password must come with PROTECTED.
func (a *Album) SetPermission(p Permission, password *string, hasher PasswordHasher) error {
	if !p.IsValid() {
		return ErrInvalidPermission
	}
	supplied := password != nil && *password != ""

	if p != PermissionProtected {
		if supplied {
			return fmt.Errorf("%w: password given for %s album", ErrInvalidPermissionConfig, p)
		}
		a.Permission = p
		a.PasswordHash = ""
		return nil
	}

	if !supplied {
		if password == nil && a.Permission == PermissionProtected && a.PasswordHash != "" {
			return nil
		}
		return fmt.Errorf("%w: PROTECTED requires a password", ErrInvalidPermissionConfig)
	}
	if len(*password) > MaxAlbumPasswordLength {
		return fmt.Errorf("%w: password longer than %d bytes", ErrInvalidPermissionConfig, MaxAlbumPasswordLength)
	}

	hash, err := hasher.HashPassword(*password)
	if err != nil {
		return fmt.Errorf("hash album password: %w", err)
	}
	a.Permission = p
	a.PasswordHash = hash
	return nil
}

// Apply copies whitelisted fields from u onto the album. The cover image
// ownership check needs the image store and is done by the caller.
func (a *Album) Apply(u AlbumUpdate, hasher PasswordHasher) error {
	if err := u.Validate(); err != nil {
		return err
	}

	next := *a
	if u.Name != nil {
		next.Name = strings.TrimSpace(*u.Name)
	}
	if u.Description != nil {
		next.Description = strings.TrimSpace(*u.Description)
	}
	if err := next.validateText(); err != nil {
		return err
	}

	switch {
	case u.Permission != nil:
		if err := next.SetPermission(*u.Permission, u.Password, hasher); err != nil {
			return err
		}
	case u.Password != nil:
		// Password rotation on the current tier.
		if next.Permission != PermissionProtected {
			return fmt.Errorf("%w: password given for %s album", ErrInvalidPermissionConfig, next.Permission)
		}
		if err := next.SetPermission(PermissionProtected, u.Password, hasher); err != nil {
			return err
		}
	}

	if u.ClearCover {
		next.CoverImageID = nil
	} else if u.CoverImageID != nil {
		id := *u.CoverImageID
		next.CoverImageID = &id
	}

	next.UpdatedAt = time.Now().UTC()
	*a = next
	return nil
}

// CheckInvariants reports a broken permission/password pairing, which can
// only come from bad stored data.
func (a *Album) CheckInvariants() error {
	if !a.Permission.IsValid() {
		return ErrInvalidPermission
	}
	if (a.Permission == PermissionProtected) != (a.PasswordHash != "") {
		return ErrInvalidPermissionConfig
	}
	return nil
}

func (a *Album) validateText() error {
	return validation.ValidateStruct(a,
		validation.Field(&a.Name, validation.Required, validation.RuneLength(1, MaxAlbumNameLength)),
		validation.Field(&a.Description, validation.RuneLength(0, MaxAlbumDescriptionLength)),
	)
}

func (a *Album) ResourceKind() access.Kind       { return access.KindAlbum }
func (a *Album) ResourceID() uuid.UUID           { return a.ID }
func (a *Album) ResourceOwner() uuid.UUID        { return a.OwnerID }
func (a *Album) LifecycleState() lifecycle.State { return lifecycle.StateOf(a.IsDeleted) }

// AlbumUpdate is the complete set of fields a client may change on an
// album. Fields left nil are untouched.
type AlbumUpdate struct {
	Name         *string
	Description  *string
	Permission   *Permission
	Password     *string
	CoverImageID *uuid.UUID
	ClearCover   bool
}

func (u AlbumUpdate) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.Name, validation.NilOrNotEmpty, validation.RuneLength(1, MaxAlbumNameLength)),
		validation.Field(&u.Description, validation.RuneLength(0, MaxAlbumDescriptionLength)),
		validation.Field(&u.Permission, validation.In(PermissionPublic, PermissionProtected, PermissionPrivate).
			Error("must be PUBLIC, PROTECTED or PRIVATE")),
		validation.Field(&u.CoverImageID, validation.When(u.ClearCover, validation.Nil.Error("conflicts with clear_cover"))),
	)
}

func (u AlbumUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.Permission == nil &&
		u.Password == nil && u.CoverImageID == nil && !u.ClearCover
}

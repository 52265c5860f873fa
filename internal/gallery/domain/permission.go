package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Permission is the three-tier album visibility.
type Permission string

const (
	PermissionPublic    Permission = "PUBLIC"
	PermissionProtected Permission = "PROTECTED"
	PermissionPrivate   Permission = "PRIVATE"
)

var (
	ErrInvalidPermission = errors.New("permission must be PUBLIC, PROTECTED or PRIVATE")

	// ErrInvalidPermissionConfig covers every malformed permission/password
	// combination: PROTECTED without a password, or a password on a
	// non-PROTECTED album.
	ErrInvalidPermissionConfig = errors.New("invalid permission configuration")
)

func ParsePermission(s string) (Permission, error) {
	p := Permission(strings.ToUpper(strings.TrimSpace(s)))
	if !p.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPermission, s)
	}
	return p, nil
}

func (p Permission) IsValid() bool {
	switch p {
	case PermissionPublic, PermissionProtected, PermissionPrivate:
		return true
	}
	return false
}

// PasswordHasher produces a salted one-way hash of an album password.
type PasswordHasher interface {
	HashPassword(plain string) (string, error)
}

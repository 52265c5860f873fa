package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Role is an ordered, closed set of account roles. The zero value is not a
// valid role.
type Role int

const (
	RoleGuest Role = iota + 1
	RoleUser
	RoleAuthor
	RoleAdmin
)

var ErrInvalidRole = errors.New("invalid role")

var roleNames = map[Role]string{
	RoleGuest:  "GUEST",
	RoleUser:   "USER",
	RoleAuthor: "AUTHOR",
	RoleAdmin:  "ADMIN",
}

// ParseRole accepts the canonical upper-case names, case-insensitively.
func ParseRole(s string) (Role, error) {
	needle := strings.ToUpper(strings.TrimSpace(s))
	for role, name := range roleNames {
		if name == needle {
			return role, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidRole, s)
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

func (r Role) IsValid() bool {
	_, ok := roleNames[r]
	return ok
}

// AtLeast reports whether r ranks at or above min.
func (r Role) AtLeast(min Role) bool {
	return r.IsValid() && min.IsValid() && r >= min
}

package ports

import (
	"context"
	"errors"

	"github.com/google/uuid"

	accessapp "github.com/philly/arch-gallery/backend/internal/access/application"
	access "github.com/philly/arch-gallery/backend/internal/access/domain"
	"github.com/philly/arch-gallery/backend/internal/lifecycle/domain"
)

var (
	ErrSubjectNotFound = errors.New("lifecycle subject not found")

	// ErrTransitionConflict means the stored state no longer matched the
	// expected from-state when the update ran.
	ErrTransitionConflict = errors.New("lifecycle state changed concurrently")
)

// SubjectStore loads and moves recyclable items. LoadSubject must return
// recycled rows too.
type SubjectStore interface {
	LoadSubject(ctx context.Context, kind access.Kind, id uuid.UUID) (domain.Subject, error)

	// PersistTransition updates the item only if it is still in from.
	PersistTransition(ctx context.Context, kind access.Kind, id uuid.UUID, from, to domain.State) error
}

// Authorizer is the part of the access resolver the manager needs.
type Authorizer interface {
	Resolve(ctx context.Context, actor *access.Actor, item access.Resource, action access.Action, opts accessapp.ViewOptions) (access.Decision, error)
}

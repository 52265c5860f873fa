package domain

import (
	"errors"
	"fmt"

	access "github.com/philly/arch-gallery/backend/internal/access/domain"
)

// State is the lifecycle state of a recyclable item.
type State string

const (
	StateActive   State = "active"
	StateRecycled State = "recycled"
)

var ErrInvalidTransition = errors.New("invalid lifecycle transition")

// StateOf maps a soft-delete flag to a State.
func StateOf(deleted bool) State {
	if deleted {
		return StateRecycled
	}
	return StateActive
}

// Next returns the state reached by applying action to from. Deleting a
// recycled item and restoring an active one are both rejected.
func Next(from State, action access.Action) (State, error) {
	switch {
	case from == StateActive && action == access.ActionDelete:
		return StateRecycled, nil
	case from == StateRecycled && action == access.ActionRestore:
		return StateActive, nil
	}
	return from, fmt.Errorf("%w: %s from %s", ErrInvalidTransition, action, from)
}

// Subject is a resource that moves through the recycle bin.
type Subject interface {
	access.Resource
	LifecycleState() State
}

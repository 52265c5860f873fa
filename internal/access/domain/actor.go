package domain

import "github.com/google/uuid"

// Actor is the authenticated identity behind a request. A nil *Actor is an
// anonymous request, which is not the same thing as a GUEST.
type Actor struct {
	ID     uuid.UUID
	Role   Role
	Active bool
}

// NewActor builds an active actor.
func NewActor(id uuid.UUID, role Role) *Actor {
	return &Actor{ID: id, Role: role, Active: true}
}

// Authenticated reports whether a is present and active. Inactive accounts
// keep their identity for auditing but never act as owners.
func (a *Actor) Authenticated() bool {
	return a != nil && a.Active && a.ID != uuid.Nil
}

// Owns reports whether the authenticated actor is ownerID.
func (a *Actor) Owns(ownerID uuid.UUID) bool {
	return a.Authenticated() && a.ID == ownerID
}

// HasRole reports whether the authenticated actor ranks at least min.
func (a *Actor) HasRole(min Role) bool {
	return a.Authenticated() && a.Role.AtLeast(min)
}

// IDOrNil returns the actor id, or uuid.Nil for anonymous and inactive actors.
func (a *Actor) IDOrNil() uuid.UUID {
	if !a.Authenticated() {
		return uuid.Nil
	}
	return a.ID
}

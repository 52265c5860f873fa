package middleware

import (
	"context"

	access "github.com/philly/arch-gallery/backend/internal/access/domain"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	claimsKey    contextKey = "jwtClaims"
	actorKey     contextKey = "actor"
	actorSlotKey contextKey = "actorSlot"
)

// Claims are the identity claims taken from a verified bearer token.
type Claims struct {
	Subject string
	Email   string
}

// WithClaims stores verified token claims on ctx.
func WithClaims(ctx context.Context, claims Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFromContext returns the claims set by the JWT middleware.
func ClaimsFromContext(ctx context.Context) (Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(Claims)
	return claims, ok
}

// WithActor stores the resolved actor on ctx and reports it to any slot
// opened by TrackActor further up.
func WithActor(ctx context.Context, actor *access.Actor) context.Context {
	if slot, ok := ctx.Value(actorSlotKey).(*actorSlot); ok {
		slot.actor = actor
	}
	return context.WithValue(ctx, actorKey, actor)
}

type actorSlot struct {
	actor *access.Actor
}

// TrackActor lets outer middleware see the actor resolved by inner
// middleware. The returned function reports it once the request is done.
func TrackActor(ctx context.Context) (context.Context, func() *access.Actor) {
	slot := &actorSlot{}
	return context.WithValue(ctx, actorSlotKey, slot), func() *access.Actor { return slot.actor }
}

// ActorFromContext returns the request's actor, or nil for anonymous
// requests.
func ActorFromContext(ctx context.Context) *access.Actor {
	actor, _ := ctx.Value(actorKey).(*access.Actor)
	return actor
}

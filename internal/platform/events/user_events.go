package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/philly/arch-gallery/backend/internal/platform/eventbus"
)

const (
	UserRegisteredTopic  eventbus.Topic = "user.registered"
	UserRoleChangedTopic eventbus.Topic = "user.role_changed"
)

type UserRegisteredEvent struct {
	UserID     uuid.UUID
	Username   string
	OccurredAt time.Time
}

// UserRoleChangedEvent records an administrative role change
type UserRoleChangedEvent struct {
	UserID     uuid.UUID
	ActorID    uuid.UUID
	From       string
	To         string
	OccurredAt time.Time
}

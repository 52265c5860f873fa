package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/philly/arch-gallery/backend/internal/platform/eventbus"
)

// Event topics for albums and images
const (
	AlbumRecycledTopic   eventbus.Topic = "album.recycled"
	AlbumRestoredTopic   eventbus.Topic = "album.restored"
	ImageRecycledTopic   eventbus.Topic = "image.recycled"
	ImageRestoredTopic   eventbus.Topic = "image.restored"
	ImageRegisteredTopic eventbus.Topic = "image.registered"
)

// AlbumLifecycleEvent is published when an album enters or leaves the recycle bin
type AlbumLifecycleEvent struct {
	AlbumID    uuid.UUID
	ActorID    uuid.UUID
	OccurredAt time.Time
}

// ImageLifecycleEvent is published when an image enters or leaves the recycle bin
type ImageLifecycleEvent struct {
	ImageID    uuid.UUID
	AlbumID    uuid.UUID
	ActorID    uuid.UUID
	OccurredAt time.Time
}

// ImageBatchLifecycleEvent is published on the image recycle and restore
// topics when several images of one album move in a single request
type ImageBatchLifecycleEvent struct {
	ImageIDs   []uuid.UUID
	AlbumID    uuid.UUID
	ActorID    uuid.UUID
	OccurredAt time.Time
}

// ImageRegisteredEvent is published after image metadata is recorded
type ImageRegisteredEvent struct {
	ImageID    uuid.UUID
	AlbumID    uuid.UUID
	ActorID    uuid.UUID
	OccurredAt time.Time
}

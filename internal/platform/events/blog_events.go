package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/philly/arch-gallery/backend/internal/platform/eventbus"
)

// Event topics for posts and comments
const (
	PostCreatedTopic    eventbus.Topic = "post.created"
	PostDeletedTopic    eventbus.Topic = "post.deleted"
	CommentCreatedTopic eventbus.Topic = "comment.created"
	CommentDeletedTopic eventbus.Topic = "comment.deleted"
)

// PostCreatedEvent is published when a new post is created
type PostCreatedEvent struct {
	PostID     uuid.UUID
	ActorID    uuid.UUID // Author who created the post
	Title      string
	OccurredAt time.Time
}

// PostDeletedEvent is published when a post is removed
type PostDeletedEvent struct {
	PostID     uuid.UUID
	ActorID    uuid.UUID
	OccurredAt time.Time
}

// CommentCreatedEvent is published when a comment or reply is added
type CommentCreatedEvent struct {
	CommentID  uuid.UUID
	PostID     uuid.UUID
	ActorID    uuid.UUID
	OccurredAt time.Time
}

// CommentDeletedEvent is published when a comment thread is removed.
// Removed counts the comment itself plus any replies.
type CommentDeletedEvent struct {
	CommentID  uuid.UUID
	PostID     uuid.UUID
	ActorID    uuid.UUID
	Removed    int
	OccurredAt time.Time
}

package domain

import (
	"errors"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	access "github.com/philly/arch-gallery/backend/internal/access/domain"
)

const MaxCommentLength = 500

var (
	ErrReplyDepthExceeded = errors.New("replies may only answer top-level comments")
	ErrParentMismatch     = errors.New("parent comment belongs to another post")
	ErrParentDeleted      = errors.New("parent comment was deleted")
)

// Comment is a top-level comment (ParentID nil) or a reply to one.
type Comment struct {
	ID        uuid.UUID
	PostID    uuid.UUID
	OwnerID   uuid.UUID
	ParentID  *uuid.UUID
	Content   string
	IsDeleted bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewComment creates a comment on post, optionally replying to parent.
// Threads are at most two levels deep.
func NewComment(post *Post, ownerID uuid.UUID, content string, parent *Comment) (*Comment, error) {
	if ownerID == uuid.Nil {
		return nil, ErrInvalidAuthorID
	}

	now := time.Now().UTC()
	c := &Comment{
		ID:        uuid.New(),
		PostID:    post.ID,
		OwnerID:   ownerID,
		Content:   strings.TrimSpace(content),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if parent != nil {
		switch {
		case parent.PostID != post.ID:
			return nil, ErrParentMismatch
		case !parent.IsTopLevel():
			return nil, ErrReplyDepthExceeded
		case parent.IsDeleted:
			return nil, ErrParentDeleted
		}
		parentID := parent.ID
		c.ParentID = &parentID
	}

	if err := validation.ValidateStruct(c,
		validation.Field(&c.Content, validation.Required, validation.RuneLength(1, MaxCommentLength)),
	); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Comment) IsTopLevel() bool { return c.ParentID == nil }

func (c *Comment) ResourceKind() access.Kind { return access.KindComment }
func (c *Comment) ResourceID() uuid.UUID     { return c.ID }
func (c *Comment) ResourceOwner() uuid.UUID  { return c.OwnerID }

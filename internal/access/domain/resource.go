package domain

import "github.com/google/uuid"

// Kind identifies a content type the resolver understands.
type Kind string

const (
	KindAlbum   Kind = "album"
	KindImage   Kind = "image"
	KindPost    Kind = "blog"
	KindComment Kind = "comment"
)

// Action is an operation an actor requests on a resource.
type Action string

const (
	ActionView    Action = "view"
	ActionModify  Action = "modify"
	ActionDelete  Action = "delete"
	ActionRestore Action = "restore"
)

func (a Action) IsMutation() bool {
	return a == ActionModify || a == ActionDelete || a == ActionRestore
}

// Resource is a content snapshot the resolver can decide on.
type Resource interface {
	ResourceKind() Kind
	ResourceID() uuid.UUID
	ResourceOwner() uuid.UUID
}

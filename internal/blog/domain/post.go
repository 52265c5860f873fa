package domain

import (
	"errors"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	access "github.com/philly/arch-gallery/backend/internal/access/domain"
)

// Business rule constants
const (
	MaxTitleLength    = 200
	MinContentLength  = 10
	MaxCoverURLLength = 512
	MaxTags           = 10
	MaxTagLength      = 30
)

var ErrInvalidAuthorID = errors.New("author ID is required")

// Post is a blog post. Drafts and private posts are visible to their owner
// only; there is no recycle bin for posts.
type Post struct {
	ID            uuid.UUID
	OwnerID       uuid.UUID
	Title         string
	Content       string // sanitised HTML
	CoverImageURL string
	Tags          []string
	IsDraft       bool
	IsPrivate     bool
	CommentCount  int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// PostFields are the client-supplied fields of a new post.
type PostFields struct {
	Title         string
	Content       string
	CoverImageURL string
	Tags          []string
	IsDraft       bool
	IsPrivate     bool
}

func NewPost(ownerID uuid.UUID, f PostFields) (*Post, error) {
	if ownerID == uuid.Nil {
		return nil, ErrInvalidAuthorID
	}

	now := time.Now().UTC()
	post := &Post{
		ID:            uuid.New(),
		OwnerID:       ownerID,
		Title:         strings.TrimSpace(f.Title),
		Content:       f.Content,
		CoverImageURL: strings.TrimSpace(f.CoverImageURL),
		Tags:          NormalizeTags(f.Tags),
		IsDraft:       f.IsDraft,
		IsPrivate:     f.IsPrivate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := post.Validate(); err != nil {
		return nil, err
	}
	return post, nil
}

func (p *Post) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Title, validation.Required, validation.RuneLength(1, MaxTitleLength)),
		validation.Field(&p.Content, validation.Required, validation.RuneLength(MinContentLength, 0)),
		validation.Field(&p.CoverImageURL, validation.Length(0, MaxCoverURLLength), is.URL),
		validation.Field(&p.Tags, validation.Length(0, MaxTags), validation.Each(validation.RuneLength(1, MaxTagLength))),
	)
}

// Apply copies whitelisted fields from u onto the post.
func (p *Post) Apply(u PostUpdate) error {
	next := *p
	if u.Title != nil {
		next.Title = strings.TrimSpace(*u.Title)
	}
	if u.Content != nil {
		next.Content = *u.Content
	}
	if u.CoverImageURL != nil {
		next.CoverImageURL = strings.TrimSpace(*u.CoverImageURL)
	}
	if u.Tags != nil {
		next.Tags = NormalizeTags(*u.Tags)
	}
	if u.IsDraft != nil {
		next.IsDraft = *u.IsDraft
	}
	if u.IsPrivate != nil {
		next.IsPrivate = *u.IsPrivate
	}
	if err := next.Validate(); err != nil {
		return err
	}

	next.UpdatedAt = time.Now().UTC()
	*p = next
	return nil
}

// PubliclyVisible reports whether anyone, not just the owner, may read p.
func (p *Post) PubliclyVisible() bool {
	return !p.IsDraft && !p.IsPrivate
}

func (p *Post) ResourceKind() access.Kind { return access.KindPost }
func (p *Post) ResourceID() uuid.UUID     { return p.ID }
func (p *Post) ResourceOwner() uuid.UUID  { return p.OwnerID }

// PostUpdate is the complete set of fields a client may change on a post.
type PostUpdate struct {
	Title         *string
	Content       *string
	CoverImageURL *string
	Tags          *[]string
	IsDraft       *bool
	IsPrivate     *bool
}

func (u PostUpdate) IsEmpty() bool {
	return u.Title == nil && u.Content == nil && u.CoverImageURL == nil &&
		u.Tags == nil && u.IsDraft == nil && u.IsPrivate == nil
}

// NormalizeTags trims, drops empties and removes case-insensitive duplicates
// while keeping first-seen order.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		key := strings.ToLower(tag)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, tag)
	}
	return out
}

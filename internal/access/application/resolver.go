package application

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/philly/arch-gallery/backend/internal/access/domain"
	"github.com/philly/arch-gallery/backend/internal/access/ports"
	blog "github.com/philly/arch-gallery/backend/internal/blog/domain"
	blogports "github.com/philly/arch-gallery/backend/internal/blog/ports"
	gallery "github.com/philly/arch-gallery/backend/internal/gallery/domain"
	galleryports "github.com/philly/arch-gallery/backend/internal/gallery/ports"
	"github.com/philly/arch-gallery/backend/internal/platform/logger"
)

// ViewOptions carries request-supplied context for a view decision.
type ViewOptions struct {
	// Password is the plaintext offered for a PROTECTED album, if any.
	Password *string
	// RecycleBin marks a request made through the owner's recycle bin.
	RecycleBin bool
}

// WithPassword returns ViewOptions carrying password when it is non-empty.
func WithPassword(password string) ViewOptions {
	if password == "" {
		return ViewOptions{}
	}
	return ViewOptions{Password: &password}
}

// Resolver decides whether an actor may view or mutate a content item. It
// holds collaborators only; all per-request state lives in an Evaluation.
type Resolver struct {
	albums    ports.AlbumReader
	posts     ports.PostReader
	passwords ports.PasswordVerifier
	logger    logger.Logger
}

func NewResolver(
	albums ports.AlbumReader,
	posts ports.PostReader,
	passwords ports.PasswordVerifier,
	logger logger.Logger,
) *Resolver {
	return &Resolver{
		albums:    albums,
		posts:     posts,
		passwords: passwords,
		logger:    logger,
	}
}

// Begin starts a request-scoped evaluation whose parent lookups are cached.
// Do not share an Evaluation between requests.
func (r *Resolver) Begin() *Evaluation {
	return &Evaluation{
		resolver: r,
		albums:   make(map[uuid.UUID]*gallery.Album),
		posts:    make(map[uuid.UUID]*blog.Post),
	}
}

// CanView is a one-shot convenience around Begin().CanView.
func (r *Resolver) CanView(ctx context.Context, actor *domain.Actor, item domain.Resource, opts ViewOptions) (domain.Decision, error) {
	return r.Begin().CanView(ctx, actor, item, opts)
}

// CanMutate is a one-shot convenience around Begin().CanMutate.
func (r *Resolver) CanMutate(ctx context.Context, actor *domain.Actor, item domain.Resource, action domain.Action) (domain.Decision, error) {
	return r.Begin().CanMutate(ctx, actor, item, action)
}

// Resolve is a one-shot convenience around Begin().Resolve.
func (r *Resolver) Resolve(ctx context.Context, actor *domain.Actor, item domain.Resource, action domain.Action, opts ViewOptions) (domain.Decision, error) {
	return r.Begin().Resolve(ctx, actor, item, action, opts)
}

// Evaluation is a single request's view of the resolver. It is safe for
// concurrent use by the goroutines serving that request.
type Evaluation struct {
	resolver *Resolver

	mu     sync.Mutex
	albums map[uuid.UUID]*gallery.Album
	posts  map[uuid.UUID]*blog.Post
}

// RememberAlbum seeds the parent cache with an album the caller already
// loaded, such as one joined alongside search candidates.
func (e *Evaluation) RememberAlbum(album *gallery.Album) {
	if album != nil {
		e.mu.Lock()
		e.albums[album.ID] = album
		e.mu.Unlock()
	}
}

// RememberPost seeds the parent cache with a post.
func (e *Evaluation) RememberPost(post *blog.Post) {
	if post != nil {
		e.mu.Lock()
		e.posts[post.ID] = post
		e.mu.Unlock()
	}
}

// Resolve is the entry point for callers. Mutations are checked with
// CanMutate; when that denies, an actor that cannot even see the item gets
// the view denial instead so the item's existence is not confirmed.
func (e *Evaluation) Resolve(ctx context.Context, actor *domain.Actor, item domain.Resource, action domain.Action, opts ViewOptions) (domain.Decision, error) {
	if !action.IsMutation() {
		return e.CanView(ctx, actor, item, opts)
	}

	decision, err := e.CanMutate(ctx, actor, item, action)
	if err != nil || decision.Allowed {
		return decision, err
	}

	if action == domain.ActionRestore {
		opts.RecycleBin = true
	}
	view, err := e.CanView(ctx, actor, item, opts)
	if err != nil {
		return domain.Decision{}, err
	}
	if view.Denied() {
		return view, nil
	}
	return decision, nil
}

// CanView decides read access to item.
func (e *Evaluation) CanView(ctx context.Context, actor *domain.Actor, item domain.Resource, opts ViewOptions) (domain.Decision, error) {
	switch it := item.(type) {
	case *gallery.Album:
		if d, done := recycleGate(actor, it.OwnerID, it.IsDeleted, opts); done {
			return d, nil
		}
		return e.viewAlbum(ctx, actor, it, opts.Password), nil

	case *gallery.Image:
		if d, done := recycleGate(actor, it.OwnerID, it.IsDeleted, opts); done {
			return d, nil
		}
		if opts.RecycleBin {
			// The owner browsing their own recycle bin does not need the
			// album to be live.
			return domain.Allow(domain.RuleRecycleBin), nil
		}
		return e.viewImage(ctx, actor, it, opts.Password)

	case *blog.Post:
		if opts.RecycleBin {
			return domain.Deny(domain.ReasonNotFound, domain.RuleRecycleBin), nil
		}
		return viewPost(actor, it), nil

	case *blog.Comment:
		if it.IsDeleted || opts.RecycleBin {
			return domain.Deny(domain.ReasonNotFound, domain.RuleDeleted), nil
		}
		post, err := e.post(ctx, it.PostID)
		if err != nil {
			if errors.Is(err, blogports.ErrPostNotFound) {
				return domain.Deny(domain.ReasonNotFound, domain.RuleParent), nil
			}
			return domain.Decision{}, err
		}
		return inherit(viewPost(actor, post)), nil
	}

	return domain.Decision{}, fmt.Errorf("access: unsupported resource %T", item)
}

// CanMutate decides write access. Only the owner may mutate; ADMIN is not a
// bypass. A post's owner may also delete comments on it.
func (e *Evaluation) CanMutate(ctx context.Context, actor *domain.Actor, item domain.Resource, action domain.Action) (domain.Decision, error) {
	if !action.IsMutation() {
		return domain.Decision{}, fmt.Errorf("access: %s is not a mutation", action)
	}
	if !actor.Authenticated() {
		return domain.Deny(domain.ReasonForbidden, domain.RuleUnauthenticated), nil
	}
	if gone(item, action) {
		return domain.Deny(domain.ReasonNotFound, domain.RuleDeleted), nil
	}
	if actor.Owns(item.ResourceOwner()) {
		return domain.Allow(domain.RuleOwner), nil
	}

	if comment, ok := item.(*blog.Comment); ok && action == domain.ActionDelete {
		post, err := e.post(ctx, comment.PostID)
		switch {
		case errors.Is(err, blogports.ErrPostNotFound):
			return domain.Deny(domain.ReasonNotFound, domain.RuleParent), nil
		case err != nil:
			return domain.Decision{}, err
		case actor.Owns(post.OwnerID):
			return domain.Allow(domain.RuleModeration), nil
		}
	}

	return domain.Deny(domain.ReasonForbidden, domain.RuleOwnership), nil
}

// gone reports whether item no longer accepts action because it was deleted.
// Recycled albums and images still accept delete and restore; the lifecycle
// state machine rules on those.
func gone(item domain.Resource, action domain.Action) bool {
	switch it := item.(type) {
	case *gallery.Album:
		return it.IsDeleted && action == domain.ActionModify
	case *gallery.Image:
		return it.IsDeleted && action == domain.ActionModify
	case *blog.Comment:
		return it.IsDeleted
	}
	return false
}

// recycleGate handles the soft-delete rules shared by albums and images. It
// reports done when the decision is final.
func recycleGate(actor *domain.Actor, ownerID uuid.UUID, deleted bool, opts ViewOptions) (domain.Decision, bool) {
	switch {
	case deleted && opts.RecycleBin && actor.Owns(ownerID):
		return domain.Allow(domain.RuleRecycleBin), true
	case deleted:
		return domain.Deny(domain.ReasonNotFound, domain.RuleDeleted), true
	case opts.RecycleBin:
		return domain.Deny(domain.ReasonNotFound, domain.RuleRecycleBin), true
	}
	return domain.Decision{}, false
}

func (e *Evaluation) viewAlbum(ctx context.Context, actor *domain.Actor, album *gallery.Album, password *string) domain.Decision {
	if actor.Owns(album.OwnerID) {
		return domain.Allow(domain.RuleOwner)
	}

	switch album.Permission {
	case gallery.PermissionPublic:
		return domain.Allow(domain.RulePublic)
	case gallery.PermissionPrivate:
		return domain.Deny(domain.ReasonForbidden, domain.RulePrivate)
	case gallery.PermissionProtected:
		if password == nil || *password == "" || album.PasswordHash == "" {
			return domain.Deny(domain.ReasonForbidden, domain.RulePassword)
		}
		if !e.resolver.passwords.VerifyPassword(ctx, *password, album.PasswordHash) {
			e.resolver.logger.Debug(ctx, "album password rejected", "album_id", album.ID)
			return domain.Deny(domain.ReasonForbidden, domain.RulePassword)
		}
		return domain.Allow(domain.RulePassword)
	}

	// Unknown tiers only come from corrupt rows; fail closed.
	e.resolver.logger.Error(ctx, "album has invalid permission", "album_id", album.ID, "permission", album.Permission)
	return domain.Deny(domain.ReasonForbidden, domain.RulePrivate)
}

// viewImage resolves the parent album first and then applies the album's
// decision to the image. The image never widens what the album allows.
func (e *Evaluation) viewImage(ctx context.Context, actor *domain.Actor, image *gallery.Image, password *string) (domain.Decision, error) {
	album, err := e.album(ctx, image.AlbumID)
	if err != nil {
		if errors.Is(err, galleryports.ErrAlbumNotFound) {
			return domain.Deny(domain.ReasonNotFound, domain.RuleParent), nil
		}
		return domain.Decision{}, err
	}
	if album.IsDeleted {
		return domain.Deny(domain.ReasonNotFound, domain.RuleParent), nil
	}
	return inherit(e.viewAlbum(ctx, actor, album, password)), nil
}

func viewPost(actor *domain.Actor, post *blog.Post) domain.Decision {
	switch {
	case actor.Owns(post.OwnerID):
		return domain.Allow(domain.RuleOwner)
	case post.IsDraft:
		return domain.Deny(domain.ReasonForbidden, domain.RuleDraft)
	case post.IsPrivate:
		return domain.Deny(domain.ReasonForbidden, domain.RulePrivate)
	}
	return domain.Allow(domain.RulePublic)
}

// inherit keeps a parent's decision but keeps the password rule visible, as
// callers must report a bad password the same way for images and albums.
func inherit(parent domain.Decision) domain.Decision {
	if parent.Allowed || parent.Rule == domain.RulePassword {
		return parent
	}
	return domain.Deny(parent.Reason, domain.RuleParent)
}

// The lock is not held across store calls.
func (e *Evaluation) album(ctx context.Context, id uuid.UUID) (*gallery.Album, error) {
	e.mu.Lock()
	album, ok := e.albums[id]
	e.mu.Unlock()
	if ok {
		return album, nil
	}

	album, err := e.resolver.albums.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	e.RememberAlbum(album)
	return album, nil
}

func (e *Evaluation) post(ctx context.Context, id uuid.UUID) (*blog.Post, error) {
	e.mu.Lock()
	post, ok := e.posts[id]
	e.mu.Unlock()
	if ok {
		return post, nil
	}

	post, err := e.resolver.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	e.RememberPost(post)
	return post, nil
}

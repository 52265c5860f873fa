package application_test

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/philly/arch-gallery/backend/internal/blog/domain"
	"github.com/philly/arch-gallery/backend/internal/blog/ports"
	gallery "github.com/philly/arch-gallery/backend/internal/gallery/domain"
	galleryports "github.com/philly/arch-gallery/backend/internal/gallery/ports"
	"github.com/philly/arch-gallery/backend/internal/platform/eventbus"
	"github.com/philly/arch-gallery/backend/internal/platform/postgres"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, msg string, args ...any) {}
func (m *mockLogger) Info(ctx context.Context, msg string, args ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, msg string, args ...any)  {}
func (m *mockLogger) Error(ctx context.Context, msg string, args ...any) {}

type noVerifier struct{}

func (noVerifier) VerifyPassword(ctx context.Context, plain, hash string) bool { return false }

type noAlbums struct{}

func (noAlbums) FindByID(ctx context.Context, id uuid.UUID) (*gallery.Album, error) {
	return nil, galleryports.ErrAlbumNotFound
}

type memPosts struct {
	mu    sync.Mutex
	posts map[uuid.UUID]*domain.Post
}

func newMemPosts() *memPosts { return &memPosts{posts: make(map[uuid.UUID]*domain.Post)} }

func (r *memPosts) Create(ctx context.Context, post *domain.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *post
	r.posts[post.ID] = &copied
	return nil
}

func (r *memPosts) FindByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[id]
	if !ok {
		return nil, ports.ErrPostNotFound
	}
	copied := *p
	return &copied, nil
}

func (r *memPosts) Update(ctx context.Context, post *domain.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.posts[post.ID]; !ok {
		return ports.ErrPostNotFound
	}
	copied := *post
	r.posts[post.ID] = &copied
	return nil
}

func (r *memPosts) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.posts[id]; !ok {
		return ports.ErrPostNotFound
	}
	delete(r.posts, id)
	return nil
}

type memComments struct {
	mu        sync.Mutex
	posts     *memPosts
	comments  map[uuid.UUID]*domain.Comment
	txBound   int
	failWrite error
}

func newMemComments(posts *memPosts) *memComments {
	return &memComments{posts: posts, comments: make(map[uuid.UUID]*domain.Comment)}
}

func (r *memComments) Create(ctx context.Context, c *domain.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWrite != nil {
		return r.failWrite
	}
	copied := *c
	r.comments[c.ID] = &copied
	return nil
}

func (r *memComments) FindByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.comments[id]
	if !ok {
		return nil, ports.ErrCommentNotFound
	}
	copied := *c
	return &copied, nil
}

func (r *memComments) ListByPost(ctx context.Context, postID uuid.UUID) ([]*domain.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Comment
	for _, c := range r.comments {
		if c.PostID == postID && !c.IsDeleted {
			copied := *c
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *memComments) SoftDeleteThread(ctx context.Context, id uuid.UUID) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWrite != nil {
		return 0, r.failWrite
	}
	target, ok := r.comments[id]
	if !ok || target.IsDeleted {
		return 0, ports.ErrCommentNotFound
	}
	n := 0
	for _, c := range r.comments {
		if c.IsDeleted {
			continue
		}
		if c.ID == id || (c.ParentID != nil && *c.ParentID == id) {
			c.IsDeleted = true
			n++
		}
	}
	return n, nil
}

func (r *memComments) RefreshCommentCount(ctx context.Context, postID uuid.UUID) error {
	r.mu.Lock()
	count := 0
	for _, c := range r.comments {
		if c.PostID == postID && !c.IsDeleted {
			count++
		}
	}
	r.mu.Unlock()

	r.posts.mu.Lock()
	defer r.posts.mu.Unlock()
	if p, ok := r.posts.posts[postID]; ok {
		p.CommentCount = count
	}
	return nil
}

func (r *memComments) WithTx(tx pgx.Tx) ports.CommentRepository {
	r.mu.Lock()
	r.txBound++
	r.mu.Unlock()
	return r
}

type fakeTx struct {
	manager   *fakeTxManager
	committed bool
}

func (t *fakeTx) Commit(ctx context.Context) error {
	t.committed = true
	t.manager.commits++
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	if t.committed {
		return pgx.ErrTxClosed
	}
	t.manager.rollbacks++
	return nil
}

func (t *fakeTx) Tx() pgx.Tx { return nil }

type fakeTxManager struct {
	commits   int
	rollbacks int
	beginErr  error
}

func (m *fakeTxManager) BeginTx(ctx context.Context) (postgres.Transaction, error) {
	if m.beginErr != nil {
		return nil, m.beginErr
	}
	return &fakeTx{manager: m}, nil
}

var errDiskFull = errors.New("disk full")

type recordingPublisher struct {
	mu     sync.Mutex
	events []eventbus.Event
}

func (p *recordingPublisher) Publish(ctx context.Context, event eventbus.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *recordingPublisher) last() eventbus.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.events[len(p.events)-1]
}

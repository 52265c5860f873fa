package application_test

import (
	"context"
	"sync"

	"github.com/google/uuid"

	blog "github.com/philly/arch-gallery/backend/internal/blog/domain"
	blogports "github.com/philly/arch-gallery/backend/internal/blog/ports"
	gallery "github.com/philly/arch-gallery/backend/internal/gallery/domain"
	galleryports "github.com/philly/arch-gallery/backend/internal/gallery/ports"
	"github.com/philly/arch-gallery/backend/internal/platform/apperror"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, msg string, args ...any) {}
func (m *mockLogger) Info(ctx context.Context, msg string, args ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, msg string, args ...any)  {}
func (m *mockLogger) Error(ctx context.Context, msg string, args ...any) {}

// fakeHasher and fakeVerifier agree on a trivial "hashed:" scheme.
type fakeHasher struct{}

func (fakeHasher) HashPassword(plain string) (string, error) { return "hashed:" + plain, nil }

type fakeVerifier struct {
	mu    sync.Mutex
	calls int
}

func (v *fakeVerifier) VerifyPassword(ctx context.Context, plain, hash string) bool {
	v.mu.Lock()
	v.calls++
	v.mu.Unlock()
	return ctx.Err() == nil && hash == "hashed:"+plain
}

func (v *fakeVerifier) Calls() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.calls
}

type fakeAlbums struct {
	mu      sync.Mutex
	albums  map[uuid.UUID]*gallery.Album
	lookups int
	err     error
}

func newFakeAlbums(albums ...*gallery.Album) *fakeAlbums {
	f := &fakeAlbums{albums: make(map[uuid.UUID]*gallery.Album)}
	for _, a := range albums {
		f.albums[a.ID] = a
	}
	return f
}

func (f *fakeAlbums) FindByID(ctx context.Context, id uuid.UUID) (*gallery.Album, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lookups++
	if f.err != nil {
		return nil, f.err
	}
	a, ok := f.albums[id]
	if !ok {
		return nil, galleryports.ErrAlbumNotFound
	}
	return a, nil
}

type fakePosts struct {
	posts   map[uuid.UUID]*blog.Post
	lookups int
	err     error
}

func newFakePosts(posts ...*blog.Post) *fakePosts {
	f := &fakePosts{posts: make(map[uuid.UUID]*blog.Post)}
	for _, p := range posts {
		f.posts[p.ID] = p
	}
	return f
}

func (f *fakePosts) FindByID(ctx context.Context, id uuid.UUID) (*blog.Post, error) {
	f.lookups++
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.posts[id]
	if !ok {
		return nil, blogports.ErrPostNotFound
	}
	return p, nil
}

var errNotFound = apperror.New(apperror.CodeNotFound, apperror.BusinessCodeAlbumNotFound, "album not found", 404)

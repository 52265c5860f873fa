package application_test

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	access "github.com/philly/arch-gallery/backend/internal/access/domain"
	blog "github.com/philly/arch-gallery/backend/internal/blog/domain"
	blogports "github.com/philly/arch-gallery/backend/internal/blog/ports"
	"github.com/philly/arch-gallery/backend/internal/gallery/domain"
	"github.com/philly/arch-gallery/backend/internal/gallery/ports"
	lifecycle "github.com/philly/arch-gallery/backend/internal/lifecycle/domain"
	lifecycleports "github.com/philly/arch-gallery/backend/internal/lifecycle/ports"
	"github.com/philly/arch-gallery/backend/internal/platform/eventbus"
	"github.com/philly/arch-gallery/backend/internal/platform/pagination"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, msg string, args ...any) {}
func (m *mockLogger) Info(ctx context.Context, msg string, args ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, msg string, args ...any)  {}
func (m *mockLogger) Error(ctx context.Context, msg string, args ...any) {}

type fakeHasher struct{}

func (fakeHasher) HashPassword(plain string) (string, error) { return "hashed:" + plain, nil }

type fakeVerifier struct{}

func (fakeVerifier) VerifyPassword(ctx context.Context, plain, hash string) bool {
	return hash == "hashed:"+plain
}

type noPosts struct{}

func (noPosts) FindByID(ctx context.Context, id uuid.UUID) (*blog.Post, error) {
	return nil, blogports.ErrPostNotFound
}

// memStore is an in-memory gallery: album and image repositories plus the
// lifecycle subject store, sharing one set of rows.
type memStore struct {
	mu        sync.Mutex
	albums    map[uuid.UUID]*domain.Album
	images    map[uuid.UUID]*domain.Image
	refreshed []uuid.UUID
}

func newMemStore() *memStore {
	return &memStore{
		albums: make(map[uuid.UUID]*domain.Album),
		images: make(map[uuid.UUID]*domain.Image),
	}
}

type albumRepo struct{ *memStore }
type imageRepo struct{ *memStore }

func (s *memStore) Albums() ports.AlbumRepository { return albumRepo{s} }
func (s *memStore) Images() ports.ImageRepository { return imageRepo{s} }

func (r albumRepo) Create(ctx context.Context, album *domain.Album) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *album
	r.albums[album.ID] = &copied
	return nil
}

func (r albumRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Album, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.albums[id]
	if !ok {
		return nil, ports.ErrAlbumNotFound
	}
	copied := *a
	return &copied, nil
}

func (r albumRepo) Update(ctx context.Context, album *domain.Album) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.albums[album.ID]
	if !ok {
		return ports.ErrAlbumNotFound
	}
	copied := *album
	copied.IsDeleted = existing.IsDeleted
	copied.DeletedAt = existing.DeletedAt
	r.albums[album.ID] = &copied
	return nil
}

func (r albumRepo) ListRecycled(ctx context.Context, ownerID uuid.UUID, page pagination.Request) ([]*domain.Album, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Album
	for _, a := range r.albums {
		if a.IsDeleted && a.OwnerID == ownerID {
			copied := *a
			out = append(out, &copied)
		}
	}
	return pagination.Slice(out, page), len(out), nil
}

func (r albumRepo) RefreshImageCount(ctx context.Context, albumID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, img := range r.images {
		if img.AlbumID == albumID && !img.IsDeleted {
			count++
		}
	}
	if a, ok := r.albums[albumID]; ok {
		a.ImageCount = count
	}
	r.refreshed = append(r.refreshed, albumID)
	return nil
}

func (r imageRepo) Create(ctx context.Context, image *domain.Image) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *image
	r.images[image.ID] = &copied
	return nil
}

func (r imageRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Image, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	img, ok := r.images[id]
	if !ok {
		return nil, ports.ErrImageNotFound
	}
	copied := *img
	return &copied, nil
}

func (r imageRepo) ListByAlbum(ctx context.Context, albumID uuid.UUID, page pagination.Request) ([]*domain.Image, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Image
	for _, img := range r.images {
		if img.AlbumID == albumID && !img.IsDeleted {
			copied := *img
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return pagination.Slice(out, page), len(out), nil
}

func (r imageRepo) ListRecycled(ctx context.Context, ownerID uuid.UUID, page pagination.Request) ([]*domain.Image, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Image
	for _, img := range r.images {
		if img.IsDeleted && img.OwnerID == ownerID {
			copied := *img
			out = append(out, &copied)
		}
	}
	return pagination.Slice(out, page), len(out), nil
}

func (r imageRepo) ExistsInAlbum(ctx context.Context, imageID, albumID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	img, ok := r.images[imageID]
	return ok && img.AlbumID == albumID && !img.IsDeleted, nil
}

func (r imageRepo) Reorder(ctx context.Context, albumID uuid.UUID, ids []uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range ids {
		img, ok := r.images[id]
		if !ok || img.AlbumID != albumID || img.IsDeleted {
			return ports.ErrImageOrderMismatch
		}
	}
	for i, id := range ids {
		r.images[id].SortOrder = i
	}
	return nil
}

func (s *memStore) LoadSubject(ctx context.Context, kind access.Kind, id uuid.UUID) (lifecycle.Subject, error) {
	switch kind {
	case access.KindAlbum:
		if a, err := s.Albums().FindByID(ctx, id); err == nil {
			return a, nil
		}
	case access.KindImage:
		if img, err := s.Images().FindByID(ctx, id); err == nil {
			return img, nil
		}
	}
	return nil, lifecycleports.ErrSubjectNotFound
}

func (s *memStore) PersistTransition(ctx context.Context, kind access.Kind, id uuid.UUID, from, to lifecycle.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	deleted := to == lifecycle.StateRecycled
	switch kind {
	case access.KindAlbum:
		a := s.albums[id]
		if lifecycle.StateOf(a.IsDeleted) != from {
			return lifecycleports.ErrTransitionConflict
		}
		a.IsDeleted = deleted
	case access.KindImage:
		img := s.images[id]
		if lifecycle.StateOf(img.IsDeleted) != from {
			return lifecycleports.ErrTransitionConflict
		}
		img.IsDeleted = deleted
	}
	return nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []eventbus.Event
}

func (p *recordingPublisher) Publish(ctx context.Context, event eventbus.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *recordingPublisher) topics() []eventbus.Topic {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]eventbus.Topic, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Topic)
	}
	return out
}

package application_test

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	accessapp "github.com/philly/arch-gallery/backend/internal/access/application"
	access "github.com/philly/arch-gallery/backend/internal/access/domain"
	blog "github.com/philly/arch-gallery/backend/internal/blog/domain"
	blogports "github.com/philly/arch-gallery/backend/internal/blog/ports"
	gallery "github.com/philly/arch-gallery/backend/internal/gallery/domain"
	galleryports "github.com/philly/arch-gallery/backend/internal/gallery/ports"
	"github.com/philly/arch-gallery/backend/internal/platform/pagination"
	"github.com/philly/arch-gallery/backend/internal/search/application"
	"github.com/philly/arch-gallery/backend/internal/search/domain"
	"github.com/philly/arch-gallery/backend/internal/search/ports"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, msg string, args ...any) {}
func (m *mockLogger) Info(ctx context.Context, msg string, args ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, msg string, args ...any)  {}
func (m *mockLogger) Error(ctx context.Context, msg string, args ...any) {}

type fakeVerifier struct{}

func (fakeVerifier) VerifyPassword(ctx context.Context, plain, hash string) bool {
	return hash == "hashed:"+plain
}

// fakeStore matches keywords and pages like the real store but applies no
// visibility pre-filter, so every check is left to the engine.
type fakeStore struct {
	mu     sync.Mutex
	albums []*gallery.Album
	images []ports.ImageCandidate
	posts  []*blog.Post
	calls  map[access.Kind][]domain.Criteria
	err    error
}

func (s *fakeStore) record(kind access.Kind, c domain.Criteria) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.calls == nil {
		s.calls = make(map[access.Kind][]domain.Criteria)
	}
	s.calls[kind] = append(s.calls[kind], c)
}

func (s *fakeStore) FetchAlbums(ctx context.Context, c domain.Criteria) ([]*gallery.Album, int, error) {
	s.record(access.KindAlbum, c)
	if s.err != nil {
		return nil, 0, s.err
	}
	var hits []*gallery.Album
	for _, a := range s.albums {
		if matches(c.Query.Keyword, a.Name, a.Description) {
			hits = append(hits, a)
		}
	}
	sortRows(hits, domain.FromAlbum, c.Query)
	return window(hits, c), len(hits), nil
}

func (s *fakeStore) FetchImages(ctx context.Context, c domain.Criteria) ([]ports.ImageCandidate, int, error) {
	s.record(access.KindImage, c)
	if s.err != nil {
		return nil, 0, s.err
	}
	var hits []ports.ImageCandidate
	for _, ic := range s.images {
		if matches(c.Query.Keyword, ic.Image.Filename, ic.Image.CameraModel) {
			hits = append(hits, ic)
		}
	}
	sortRows(hits, func(ic ports.ImageCandidate) domain.ResultItem { return domain.FromImage(ic.Image) }, c.Query)
	return window(hits, c), len(hits), nil
}

func (s *fakeStore) FetchPosts(ctx context.Context, c domain.Criteria) ([]*blog.Post, int, error) {
	s.record(access.KindPost, c)
	if s.err != nil {
		return nil, 0, s.err
	}
	var hits []*blog.Post
	for _, p := range s.posts {
		if matches(c.Query.Keyword, p.Title, p.Content) {
			hits = append(hits, p)
		}
	}
	sortRows(hits, domain.FromPost, c.Query)
	return window(hits, c), len(hits), nil
}

func matches(keyword string, fields ...string) bool {
	if keyword == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}

func sortRows[T any](rows []T, project func(T) domain.ResultItem, q domain.Query) {
	sort.SliceStable(rows, func(i, j int) bool {
		return domain.Less(project(rows[i]), project(rows[j]), q.Sort, q.Order)
	})
}

func window[T any](rows []T, c domain.Criteria) []T {
	if c.Offset >= len(rows) {
		return nil
	}
	end := c.Offset + c.Limit
	if end > len(rows) {
		end = len(rows)
	}
	return rows[c.Offset:end]
}

type countingAlbums struct {
	mu      sync.Mutex
	albums  map[uuid.UUID]*gallery.Album
	lookups int
}

func (c *countingAlbums) FindByID(ctx context.Context, id uuid.UUID) (*gallery.Album, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lookups++
	if a, ok := c.albums[id]; ok {
		return a, nil
	}
	return nil, galleryports.ErrAlbumNotFound
}

type noPosts struct{}

func (noPosts) FindByID(ctx context.Context, id uuid.UUID) (*blog.Post, error) {
	return nil, blogports.ErrPostNotFound
}

// world is a small gallery: u2 owns one album of each permission with one
// image each plus a public, a draft and a private post. u1 owns one private
// album with an image. Everything mentions "sunset".
type world struct {
	u1, u2  *access.Actor
	store   *fakeStore
	albums  *countingAlbums
	engine  *application.Engine
	public  *gallery.Album
	byTitle map[string]uuid.UUID
}

var t0 = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func newWorld(t *testing.T) *world {
	t.Helper()
	w := &world{
		u1:      access.NewActor(uuid.New(), access.RoleUser),
		u2:      access.NewActor(uuid.New(), access.RoleAuthor),
		store:   &fakeStore{},
		albums:  &countingAlbums{albums: make(map[uuid.UUID]*gallery.Album)},
		byTitle: make(map[string]uuid.UUID),
	}

	minute := 0
	next := func() time.Time {
		minute++
		return t0.Add(time.Duration(minute) * time.Minute)
	}
	addAlbum := func(owner *access.Actor, name string, perm gallery.Permission, size int64) *gallery.Album {
		a := &gallery.Album{ID: uuid.New(), OwnerID: owner.ID, Name: name, Permission: perm, ImageCount: 1}
		if perm == gallery.PermissionProtected {
			a.PasswordHash = "hashed:p1"
		}
		a.CreatedAt = next()
		a.UpdatedAt = a.CreatedAt
		img := &gallery.Image{ID: uuid.New(), AlbumID: a.ID, OwnerID: owner.ID, Filename: strings.ToLower(name) + ".jpg",
			FileType: gallery.FileTypeJPEG, FileSize: size}
		img.CreatedAt = next()
		img.UpdatedAt = img.CreatedAt

		w.store.albums = append(w.store.albums, a)
		w.store.images = append(w.store.images, ports.ImageCandidate{Image: img, Album: a})
		w.albums.albums[a.ID] = a
		w.byTitle[a.Name] = a.ID
		w.byTitle[img.Filename] = img.ID
		return a
	}
	addPost := func(owner *access.Actor, title string, draft, private bool) {
		p := &blog.Post{ID: uuid.New(), OwnerID: owner.ID, Title: title, Content: "<p>a long sunset walk</p>",
			IsDraft: draft, IsPrivate: private}
		p.CreatedAt = next()
		p.UpdatedAt = p.CreatedAt
		w.store.posts = append(w.store.posts, p)
		w.byTitle[p.Title] = p.ID
	}

	w.public = addAlbum(w.u2, "Sunset Beach", gallery.PermissionPublic, 1<<20)
	addAlbum(w.u2, "Sunset Secret", gallery.PermissionProtected, 10<<20)
	addAlbum(w.u2, "Sunset Hidden", gallery.PermissionPrivate, 20<<20)
	addPost(w.u2, "Sunset Notes", false, false)
	addPost(w.u2, "Sunset Draft", true, false)
	addPost(w.u2, "Sunset Diary", false, true)
	addAlbum(w.u1, "Sunset Mine", gallery.PermissionPrivate, 5<<20)

	resolver := accessapp.NewResolver(w.albums, noPosts{}, fakeVerifier{}, &mockLogger{})
	w.engine = application.NewEngine(w.store, resolver, application.Config{MaxCandidates: 100}, &mockLogger{})
	return w
}

func titles(items []domain.ResultItem) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Title)
	}
	return out
}

func TestSearchNeverLeaksToAnonymous(t *testing.T) {
	w := newWorld(t)

	for _, scope := range []domain.Scope{domain.ScopeAll, domain.ScopeAlbum, domain.ScopeImage, domain.ScopePost} {
		t.Run(string(scope), func(t *testing.T) {
			page, err := w.engine.Search(context.Background(), nil, domain.Query{Keyword: "sunset", Scope: scope, PageSize: 50})
			require.NoError(t, err)

			for _, item := range page.Items {
				switch item.Kind {
				case access.KindAlbum:
					assert.Equal(t, gallery.PermissionPublic, item.Album.Permission, item.Title)
				case access.KindImage:
					assert.Equal(t, w.public.ID, item.Image.AlbumID, item.Title)
				case access.KindPost:
					assert.Equal(t, "Sunset Notes", item.Title)
				}
			}
		})
	}

	page, err := w.engine.Search(context.Background(), nil, domain.Query{Keyword: "sunset"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Sunset Beach", "sunset beach.jpg", "Sunset Notes"}, titles(page.Items))
	assert.Equal(t, 3, page.Total)
}

func TestSearchOwnerSeesOwnHiddenContentOnly(t *testing.T) {
	w := newWorld(t)

	page, err := w.engine.Search(context.Background(), w.u1, domain.Query{Keyword: "sunset", PageSize: 50})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		"Sunset Beach", "sunset beach.jpg", "Sunset Notes",
		"Sunset Mine", "sunset mine.jpg",
	}, titles(page.Items))

	page, err = w.engine.Search(context.Background(), w.u2, domain.Query{Keyword: "sunset", PageSize: 50})
	require.NoError(t, err)
	assert.Equal(t, 9, page.Total)
	assert.NotContains(t, titles(page.Items), "Sunset Mine")
}

func TestSearchOwnerScopedListings(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()
	yes := true

	page, err := w.engine.Search(ctx, w.u2, domain.Query{Scope: domain.ScopePost, OwnerID: &w.u2.ID, Draft: &yes})
	require.NoError(t, err)
	assert.Equal(t, []string{"Sunset Draft"}, titles(page.Items))
	assert.Equal(t, 1, page.Total)

	page, err = w.engine.Search(ctx, w.u2, domain.Query{Scope: domain.ScopeAlbum, OwnerID: &w.u2.ID})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Sunset Beach", "Sunset Secret", "Sunset Hidden"}, titles(page.Items))

	// Someone else asking for u2's drafts or albums still only gets what
	// they could see anyway.
	page, err = w.engine.Search(ctx, w.u1, domain.Query{Scope: domain.ScopePost, OwnerID: &w.u2.ID, Draft: &yes})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Zero(t, page.Total)

	page, err = w.engine.Search(ctx, nil, domain.Query{OwnerID: &w.u2.ID, PageSize: 50})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Sunset Beach", "sunset beach.jpg", "Sunset Notes"}, titles(page.Items))
}

func TestSearchProtectedAlbumsStayOutOfResults(t *testing.T) {
	w := newWorld(t)

	page, err := w.engine.Search(context.Background(), w.u1, domain.Query{Keyword: "secret"})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Zero(t, page.Total)
}

func TestSearchMergedPagination(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()

	var all []string
	for p := 1; p <= 3; p++ {
		page, err := w.engine.Search(ctx, w.u1, domain.Query{Keyword: "sunset", Page: p, PageSize: 2})
		require.NoError(t, err)
		assert.Equal(t, 5, page.Total)
		assert.Equal(t, 3, page.TotalPages())
		all = append(all, titles(page.Items)...)
	}

	// Newest first, across kinds.
	assert.Equal(t, []string{"sunset mine.jpg", "Sunset Mine", "Sunset Notes", "sunset beach.jpg", "Sunset Beach"}, all)

	page, err := w.engine.Search(ctx, w.u1, domain.Query{Keyword: "sunset", Page: 4, PageSize: 2})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 5, page.Total)
}

func TestSearchMergedDeduplicates(t *testing.T) {
	w := newWorld(t)
	w.store.albums = append(w.store.albums, w.public)

	page, err := w.engine.Search(context.Background(), nil, domain.Query{Keyword: "beach"})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)
	assert.ElementsMatch(t, []string{"Sunset Beach", "sunset beach.jpg"}, titles(page.Items))
}

func TestSearchTieBreak(t *testing.T) {
	owner := access.NewActor(uuid.New(), access.RoleUser)
	low := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	high := uuid.MustParse("00000000-0000-0000-0000-000000000002")

	album := &gallery.Album{ID: high, OwnerID: owner.ID, Name: "Dawn", Permission: gallery.PermissionPublic, CreatedAt: t0, UpdatedAt: t0}
	sameIDAlbum := &gallery.Album{ID: low, OwnerID: owner.ID, Name: "Dawn", Permission: gallery.PermissionPublic, CreatedAt: t0, UpdatedAt: t0}
	post := &blog.Post{ID: low, OwnerID: owner.ID, Title: "dawn", CreatedAt: t0, UpdatedAt: t0}
	older := &blog.Post{ID: high, OwnerID: owner.ID, Title: "Dawn", CreatedAt: t0.Add(-time.Hour), UpdatedAt: t0}

	store := &fakeStore{albums: []*gallery.Album{album, sameIDAlbum}, posts: []*blog.Post{post, older}}
	resolver := accessapp.NewResolver(&countingAlbums{}, noPosts{}, fakeVerifier{}, &mockLogger{})
	engine := application.NewEngine(store, resolver, application.Config{}, &mockLogger{})

	for _, order := range []domain.Order{domain.OrderAsc, domain.OrderDesc} {
		t.Run(string(order), func(t *testing.T) {
			page, err := engine.Search(context.Background(), nil, domain.Query{Sort: domain.SortTitle, Order: order})
			require.NoError(t, err)
			require.Len(t, page.Items, 4)

			got := make([]string, 0, 4)
			for _, item := range page.Items {
				got = append(got, string(item.Kind)+":"+item.ID.String()[35:])
			}
			// Equal titles: created_at ascending, then id, then kind. The
			// direction only applies to the sort key itself.
			assert.Equal(t, []string{"blog:2", "album:1", "blog:1", "album:2"}, got)
		})
	}
}

func TestSearchSingleKindPushesDown(t *testing.T) {
	w := newWorld(t)

	page, err := w.engine.Search(context.Background(), nil, domain.Query{Scope: domain.ScopeAlbum, Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"Sunset Beach"}, titles(page.Items))
	// The store matched four albums; three were rejected by the resolver.
	assert.Equal(t, 1, page.Total)

	require.Len(t, w.store.calls[access.KindAlbum], 1)
	criteria := w.store.calls[access.KindAlbum][0]
	assert.Equal(t, 10, criteria.Limit)
	assert.Equal(t, 0, criteria.Offset)
	assert.Equal(t, uuid.Nil, criteria.ViewerID)
	assert.Empty(t, w.store.calls[access.KindImage])
	assert.Empty(t, w.store.calls[access.KindPost])

	_, err = w.engine.Search(context.Background(), w.u2, domain.Query{Scope: domain.ScopePost, Page: 3, PageSize: 1})
	require.NoError(t, err)
	criteria = w.store.calls[access.KindPost][0]
	assert.Equal(t, 1, criteria.Limit)
	assert.Equal(t, 2, criteria.Offset)
	assert.Equal(t, w.u2.ID, criteria.ViewerID)
}

func TestSearchMergedFetchesFullCandidateSets(t *testing.T) {
	w := newWorld(t)

	_, err := w.engine.Search(context.Background(), w.u1, domain.Query{Keyword: "sunset", Page: 2, PageSize: 1})
	require.NoError(t, err)

	for _, kind := range []access.Kind{access.KindAlbum, access.KindImage, access.KindPost} {
		require.Len(t, w.store.calls[kind], 1, kind)
		assert.Equal(t, 100, w.store.calls[kind][0].Limit, kind)
		assert.Equal(t, 0, w.store.calls[kind][0].Offset, kind)
	}
}

func TestSearchMergedTotalCountsRowsPastTheCap(t *testing.T) {
	owner := access.NewActor(uuid.New(), access.RoleAuthor)
	store := &fakeStore{}
	for i := 0; i < 3; i++ {
		a := &gallery.Album{ID: uuid.New(), OwnerID: owner.ID, Name: "Harbour", Permission: gallery.PermissionPublic,
			CreatedAt: t0.Add(time.Duration(i) * time.Minute)}
		store.albums = append(store.albums, a)
	}
	for i := 0; i < 2; i++ {
		store.posts = append(store.posts, &blog.Post{ID: uuid.New(), OwnerID: owner.ID, Title: "Harbour walk",
			CreatedAt: t0.Add(time.Duration(10+i) * time.Minute)})
	}

	resolver := accessapp.NewResolver(&countingAlbums{}, noPosts{}, fakeVerifier{}, &mockLogger{})
	engine := application.NewEngine(store, resolver, application.Config{MaxCandidates: 2}, &mockLogger{})

	page, err := engine.Search(context.Background(), nil, domain.Query{Keyword: "harbour"})
	require.NoError(t, err)
	assert.Len(t, page.Items, 4)
	assert.Equal(t, 5, page.Total)
	assert.Equal(t, 2, store.calls[access.KindAlbum][0].Limit)
}

func TestSearchImageCandidatesCarryTheirAlbum(t *testing.T) {
	w := newWorld(t)

	_, err := w.engine.Search(context.Background(), w.u1, domain.Query{Scope: domain.ScopeImage})
	require.NoError(t, err)
	assert.Zero(t, w.albums.lookups)
}

func TestSearchPostFilters(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()
	threshold := int64(8 << 20)

	page, err := w.engine.Search(ctx, w.u2, domain.Query{Scope: domain.ScopeImage, SizeMin: &threshold})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"sunset secret.jpg", "sunset hidden.jpg"}, titles(page.Items))
	assert.Equal(t, 2, page.Total)

	// An anonymous caller gets nothing back from the same filter: the only
	// images above the threshold are in albums it cannot see.
	page, err = w.engine.Search(ctx, nil, domain.Query{Scope: domain.ScopeImage, SizeMin: &threshold})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Zero(t, page.Total)

	w.public.ImageCount = 7
	atLeast := 5
	page, err = w.engine.Search(ctx, nil, domain.Query{ImageCountMin: &atLeast})
	require.NoError(t, err)
	assert.Equal(t, []string{"Sunset Beach"}, titles(page.Items))
	assert.Empty(t, w.store.calls[access.KindImage])
	assert.Empty(t, w.store.calls[access.KindPost])
}

func TestSearchKindSpecificFiltersNarrowScope(t *testing.T) {
	w := newWorld(t)

	page, err := w.engine.Search(context.Background(), nil, domain.Query{FileTypes: []string{"IMAGE/JPEG"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"sunset beach.jpg"}, titles(page.Items))
	assert.Empty(t, w.store.calls[access.KindAlbum])
	assert.Empty(t, w.store.calls[access.KindPost])
	assert.Len(t, w.store.calls[access.KindImage], 1)
}

func TestSearchRejectsInvalidQueries(t *testing.T) {
	from := t0
	to := t0.Add(-time.Hour)
	lo, hi := 5, 2
	tags := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k"}
	album := uuid.New()

	tests := []struct {
		name  string
		query domain.Query
	}{
		{name: "page size too large", query: domain.Query{PageSize: 51}},
		{name: "negative page", query: domain.Query{Page: -1}},
		{name: "page past the last allowed", query: domain.Query{Page: pagination.MaxPage + 1}},
		{name: "page that would overflow the offset", query: domain.Query{Keyword: "sunset", Page: 922337203685477582, PageSize: 10}},
		{name: "huge page on a single kind", query: domain.Query{Scope: domain.ScopeAlbum, Page: 922337203685477582, PageSize: 10}},
		{name: "unknown scope", query: domain.Query{Scope: "video"}},
		{name: "unknown sort", query: domain.Query{Sort: "popularity"}},
		{name: "unknown order", query: domain.Query{Order: "sideways"}},
		{name: "inverted time range", query: domain.Query{CreatedFrom: &from, CreatedTo: &to}},
		{name: "inverted count range", query: domain.Query{ImageCountMin: &lo, ImageCountMax: &hi}},
		{name: "unsupported file type", query: domain.Query{FileTypes: []string{"image/gif"}}},
		{name: "too many tags", query: domain.Query{Tags: tags}},
		{name: "filters on disjoint kinds", query: domain.Query{AlbumID: &album, Tags: []string{"travel"}}},
		{name: "album filter on post scope", query: domain.Query{Scope: domain.ScopePost, ImageCountMin: &lo}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newWorld(t)
			_, err := w.engine.Search(context.Background(), nil, tt.query)
			assert.ErrorIs(t, err, application.ErrInvalidQuery)
			assert.Empty(t, w.store.calls)
		})
	}
}

func TestSearchStoreFailurePropagates(t *testing.T) {
	w := newWorld(t)
	boom := errors.New("connection reset")
	w.store.err = boom

	_, err := w.engine.Search(context.Background(), nil, domain.Query{Keyword: "sunset"})
	assert.ErrorIs(t, err, boom)

	_, err = w.engine.Search(context.Background(), nil, domain.Query{Scope: domain.ScopePost})
	assert.ErrorIs(t, err, boom)
}

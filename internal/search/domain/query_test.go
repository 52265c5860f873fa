package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	access "github.com/philly/arch-gallery/backend/internal/access/domain"
	blog "github.com/philly/arch-gallery/backend/internal/blog/domain"
	gallery "github.com/philly/arch-gallery/backend/internal/gallery/domain"
	"github.com/philly/arch-gallery/backend/internal/search/domain"
)

func TestApplyDefaults(t *testing.T) {
	q := domain.Query{Keyword: "  sunset ", FileTypes: []string{" Image/PNG"}, Tags: []string{"Travel "}}
	q.ApplyDefaults()

	assert.Equal(t, "sunset", q.Keyword)
	assert.Equal(t, domain.ScopeAll, q.Scope)
	assert.Equal(t, domain.SortCreatedAt, q.Sort)
	assert.Equal(t, domain.OrderDesc, q.Order)
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 10, q.PageSize)
	assert.Equal(t, []string{"image/png"}, q.FileTypes)
	assert.Equal(t, []string{"travel"}, q.Tags)
}

func TestKinds(t *testing.T) {
	perm := gallery.PermissionPublic
	count := 3
	album := uuid.New()
	yes := true

	tests := []struct {
		name  string
		query domain.Query
		want  []access.Kind
	}{
		{name: "all", query: domain.Query{Scope: domain.ScopeAll}, want: []access.Kind{access.KindAlbum, access.KindImage, access.KindPost}},
		{name: "single scope", query: domain.Query{Scope: domain.ScopePost}, want: []access.Kind{access.KindPost}},
		{name: "permission drops posts", query: domain.Query{Scope: domain.ScopeAll, Permission: &perm}, want: []access.Kind{access.KindAlbum, access.KindImage}},
		{name: "image count keeps albums", query: domain.Query{Scope: domain.ScopeAll, ImageCountMin: &count}, want: []access.Kind{access.KindAlbum}},
		{name: "album id keeps images", query: domain.Query{Scope: domain.ScopeAll, AlbumID: &album}, want: []access.Kind{access.KindImage}},
		{name: "tags keep posts", query: domain.Query{Scope: domain.ScopeAll, Tags: []string{"x"}}, want: []access.Kind{access.KindPost}},
		{name: "owner keeps every kind", query: domain.Query{Scope: domain.ScopeAll, OwnerID: &album}, want: []access.Kind{access.KindAlbum, access.KindImage, access.KindPost}},
		{name: "draft keeps posts", query: domain.Query{Scope: domain.ScopeAll, Draft: &yes}, want: []access.Kind{access.KindPost}},
		{name: "scope and filter disagree", query: domain.Query{Scope: domain.ScopeAlbum, Tags: []string{"x"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.query.Kinds())
		})
	}
}

func TestOwnerAndDraftFilters(t *testing.T) {
	owner, other := uuid.New(), uuid.New()
	yes, no := true, false

	draft := &blog.Post{ID: uuid.New(), OwnerID: owner, IsDraft: true}
	published := &blog.Post{ID: uuid.New(), OwnerID: owner}
	foreign := &blog.Post{ID: uuid.New(), OwnerID: other, IsDraft: true}

	mine := domain.Query{OwnerID: &owner, Draft: &yes}
	assert.True(t, mine.MatchesPost(draft))
	assert.False(t, mine.MatchesPost(published))
	assert.False(t, mine.MatchesPost(foreign))

	live := domain.Query{Draft: &no}
	assert.True(t, live.MatchesPost(published))
	assert.False(t, live.MatchesPost(draft))

	byOwner := domain.Query{OwnerID: &owner}
	assert.True(t, byOwner.MatchesAlbum(&gallery.Album{OwnerID: owner}))
	assert.False(t, byOwner.MatchesAlbum(&gallery.Album{OwnerID: other}))
	assert.True(t, byOwner.MatchesImage(&gallery.Image{OwnerID: owner}))
	assert.False(t, byOwner.MatchesImage(&gallery.Image{OwnerID: other}))
}

func TestValidateAcceptsDefaults(t *testing.T) {
	q := domain.Query{}
	q.ApplyDefaults()
	require.NoError(t, q.Validate())
}

func TestFromAlbumOmitsPasswordHash(t *testing.T) {
	item := domain.FromAlbum(&gallery.Album{
		ID:           uuid.New(),
		Name:         "Locked",
		Permission:   gallery.PermissionProtected,
		PasswordHash: "hashed:p1",
	})

	assert.Equal(t, access.KindAlbum, item.Kind)
	require.NotNil(t, item.Album)
	assert.Nil(t, item.Image)
	assert.Nil(t, item.Post)
	assert.NotContains(t, item.Album.Description, "hashed")
}

func TestFromPostExcerpt(t *testing.T) {
	item := domain.FromPost(&blog.Post{ID: uuid.New(), Title: "T", Content: "<p>Golden <b>hour</b>\n at   the pier</p>"})
	require.NotNil(t, item.Post)
	assert.Equal(t, "Golden hour at the pier", item.Post.Excerpt)
}

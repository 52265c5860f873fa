package application_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	accessapp "github.com/philly/arch-gallery/backend/internal/access/application"
	access "github.com/philly/arch-gallery/backend/internal/access/domain"
	"github.com/philly/arch-gallery/backend/internal/gallery/application"
	"github.com/philly/arch-gallery/backend/internal/gallery/domain"
	lifecycleapp "github.com/philly/arch-gallery/backend/internal/lifecycle/application"
	"github.com/philly/arch-gallery/backend/internal/platform/apperror"
	"github.com/philly/arch-gallery/backend/internal/platform/eventbus"
	"github.com/philly/arch-gallery/backend/internal/platform/events"
	"github.com/philly/arch-gallery/backend/internal/platform/pagination"
)

type fixture struct {
	store     *memStore
	publisher *recordingPublisher
	albums    *application.AlbumService
	images    *application.ImageService
	owner     *access.Actor
	stranger  *access.Actor
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := newMemStore()
	publisher := &recordingPublisher{}
	resolver := accessapp.NewResolver(store.Albums(), noPosts{}, fakeVerifier{}, &mockLogger{})
	manager := lifecycleapp.NewManager(store, resolver, publisher, &mockLogger{})

	return &fixture{
		store:     store,
		publisher: publisher,
		albums:    application.NewAlbumService(store.Albums(), store.Images(), resolver, manager, fakeHasher{}, &mockLogger{}),
		images:    application.NewImageService(store.Albums(), store.Images(), resolver, manager, publisher, &mockLogger{}),
		owner:     access.NewActor(uuid.New(), access.RoleUser),
		stranger:  access.NewActor(uuid.New(), access.RoleAdmin),
	}
}

func (f *fixture) album(t *testing.T, perm domain.Permission, password string) *domain.Album {
	t.Helper()
	album, err := f.albums.Create(context.Background(), f.owner, application.CreateAlbumParams{
		Name:       "Album " + string(perm),
		Permission: perm,
		Password:   password,
	})
	require.NoError(t, err)
	return album
}

func (f *fixture) image(t *testing.T, album *domain.Album, sortOrder int) *domain.Image {
	t.Helper()
	img, err := f.images.Register(context.Background(), f.owner, album.ID, domain.ImageMetadata{
		Filename:  "photo.jpg",
		FilePath:  "/uploads/photo.jpg",
		FileType:  "IMAGE/JPEG",
		FileSize:  1 << 20,
		SortOrder: sortOrder,
	})
	require.NoError(t, err)
	return img
}

func pw(s string) *string { return &s }

func TestAlbumCreate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		actor   *access.Actor
		params  application.CreateAlbumParams
		wantErr error
	}{
		{name: "anonymous", actor: nil, params: application.CreateAlbumParams{Name: "A", Permission: domain.PermissionPublic}, wantErr: apperror.ErrUnauthenticated},
		{name: "guest", actor: access.NewActor(uuid.New(), access.RoleGuest), params: application.CreateAlbumParams{Name: "A", Permission: domain.PermissionPublic}, wantErr: apperror.ErrInsufficientRole},
		{name: "protected without password", actor: f.owner, params: application.CreateAlbumParams{Name: "A", Permission: domain.PermissionProtected}, wantErr: accessapp.ErrInvalidPermissionConfig},
		{name: "password on public album", actor: f.owner, params: application.CreateAlbumParams{Name: "A", Permission: domain.PermissionPublic, Password: "x"}, wantErr: accessapp.ErrInvalidPermissionConfig},
		{name: "unknown permission", actor: f.owner, params: application.CreateAlbumParams{Name: "A", Permission: "SECRET"}, wantErr: accessapp.ErrInvalidPermissionConfig},
		{name: "blank name", actor: f.owner, params: application.CreateAlbumParams{Name: "   ", Permission: domain.PermissionPublic}, wantErr: application.ErrInvalidAlbumData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.albums.Create(ctx, tt.actor, tt.params)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	album := f.album(t, domain.PermissionProtected, "p1")
	assert.Equal(t, "hashed:p1", album.PasswordHash)
	assert.Equal(t, f.owner.ID, album.OwnerID)
}

func TestAlbumGet(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	private := f.album(t, domain.PermissionPrivate, "")
	protected := f.album(t, domain.PermissionProtected, "p1")

	_, err := f.albums.Get(ctx, f.stranger, private.ID, nil)
	assert.ErrorIs(t, err, application.ErrAlbumNotFound)

	_, err = f.albums.Get(ctx, nil, protected.ID, pw("wrong"))
	assert.ErrorIs(t, err, accessapp.ErrAlbumPasswordInvalid)

	got, err := f.albums.Get(ctx, nil, protected.ID, pw("p1"))
	require.NoError(t, err)
	assert.Equal(t, protected.ID, got.ID)

	got, err = f.albums.Get(ctx, f.owner, private.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, private.ID, got.ID)

	_, err = f.albums.Get(ctx, f.owner, uuid.New(), nil)
	assert.ErrorIs(t, err, application.ErrAlbumNotFound)
}

func TestAlbumUpdate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	public := f.album(t, domain.PermissionPublic, "")
	private := f.album(t, domain.PermissionPrivate, "")
	other := f.album(t, domain.PermissionPublic, "")
	inAlbum := f.image(t, public, 0)
	elsewhere := f.image(t, other, 0)
	protectedTier := domain.PermissionProtected

	tests := []struct {
		name    string
		actor   *access.Actor
		id      uuid.UUID
		update  domain.AlbumUpdate
		wantErr error
	}{
		{name: "empty update", actor: f.owner, id: public.ID, wantErr: apperror.ErrInvalidInput},
		{name: "stranger on public album", actor: f.stranger, id: public.ID, update: domain.AlbumUpdate{Name: pw("x")}, wantErr: apperror.ErrPermissionDenied},
		{name: "stranger on private album", actor: f.stranger, id: private.ID, update: domain.AlbumUpdate{Name: pw("x")}, wantErr: application.ErrAlbumNotFound},
		{name: "cover from another album", actor: f.owner, id: public.ID, update: domain.AlbumUpdate{CoverImageID: &elsewhere.ID}, wantErr: application.ErrCoverImageNotInAlbum},
		{name: "protected without password", actor: f.owner, id: public.ID, update: domain.AlbumUpdate{Permission: &protectedTier}, wantErr: accessapp.ErrInvalidPermissionConfig},
		{name: "password on public album", actor: f.owner, id: public.ID, update: domain.AlbumUpdate{Password: pw("p")}, wantErr: accessapp.ErrInvalidPermissionConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.albums.Update(ctx, tt.actor, tt.id, tt.update)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	updated, err := f.albums.Update(ctx, f.owner, public.ID, domain.AlbumUpdate{
		Name:         pw("Renamed"),
		Permission:   &protectedTier,
		Password:     pw("p2"),
		CoverImageID: &inAlbum.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, "hashed:p2", updated.PasswordHash)
	require.NotNil(t, updated.CoverImageID)
	assert.Equal(t, inAlbum.ID, *updated.CoverImageID)

	// Back to PRIVATE drops the hash.
	privateTier := domain.PermissionPrivate
	updated, err = f.albums.Update(ctx, f.owner, public.ID, domain.AlbumUpdate{Permission: &privateTier})
	require.NoError(t, err)
	assert.Empty(t, updated.PasswordHash)

	stored, err := f.store.Albums().FindByID(ctx, public.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PermissionPrivate, stored.Permission)
}

func TestAlbumLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	album := f.album(t, domain.PermissionPublic, "")

	require.NoError(t, f.albums.Delete(ctx, f.owner, album.ID))

	_, err := f.albums.Get(ctx, f.owner, album.ID, nil)
	assert.ErrorIs(t, err, application.ErrAlbumNotFound)

	_, err = f.albums.Update(ctx, f.owner, album.ID, domain.AlbumUpdate{Name: pw("x")})
	assert.ErrorIs(t, err, application.ErrAlbumNotFound)

	err = f.albums.Delete(ctx, f.owner, album.ID)
	assert.ErrorIs(t, err, accessapp.ErrInvalidLifecycleState)

	bin, err := f.albums.ListRecycled(ctx, f.owner, pagination.Request{})
	require.NoError(t, err)
	require.Len(t, bin.Items, 1)
	assert.Equal(t, album.ID, bin.Items[0].ID)

	bin, err = f.albums.ListRecycled(ctx, f.stranger, pagination.Request{})
	require.NoError(t, err)
	assert.Empty(t, bin.Items)

	_, err = f.albums.Restore(ctx, f.stranger, album.ID)
	assert.ErrorIs(t, err, application.ErrAlbumNotFound)

	restored, err := f.albums.Restore(ctx, f.owner, album.ID)
	require.NoError(t, err)
	assert.False(t, restored.IsDeleted)

	assert.Contains(t, f.publisher.topics(), events.AlbumRecycledTopic)
	assert.Contains(t, f.publisher.topics(), events.AlbumRestoredTopic)

	_, err = f.albums.ListRecycled(ctx, nil, pagination.Request{})
	assert.ErrorIs(t, err, apperror.ErrUnauthenticated)
}

func TestImageRegister(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	album := f.album(t, domain.PermissionPrivate, "")

	img := f.image(t, album, 0)
	assert.Equal(t, album.ID, img.AlbumID)
	assert.Equal(t, f.owner.ID, img.OwnerID)
	assert.Equal(t, domain.FileTypeJPEG, img.FileType)
	assert.Equal(t, []eventbus.Topic{events.ImageRegisteredTopic}, f.publisher.topics())

	meta := domain.ImageMetadata{Filename: "a.jpg", FilePath: "/a.jpg", FileType: domain.FileTypeJPEG, FileSize: 10}

	_, err := f.images.Register(ctx, f.stranger, album.ID, meta)
	assert.ErrorIs(t, err, application.ErrAlbumNotFound)

	_, err = f.images.Register(ctx, nil, album.ID, meta)
	assert.ErrorIs(t, err, application.ErrAlbumNotFound)

	bad := meta
	bad.FileType = "image/gif"
	_, err = f.images.Register(ctx, f.owner, album.ID, bad)
	assert.ErrorIs(t, err, application.ErrInvalidImageData)

	tooBig := meta
	tooBig.FileSize = domain.MaxStandardFileSize + 1
	_, err = f.images.Register(ctx, f.owner, album.ID, tooBig)
	assert.ErrorIs(t, err, application.ErrInvalidImageData)

	require.NoError(t, f.albums.Delete(ctx, f.owner, album.ID))
	_, err = f.images.Register(ctx, f.owner, album.ID, meta)
	assert.ErrorIs(t, err, application.ErrAlbumNotFound)
}

func TestImageVisibilityFollowsAlbum(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	protected := f.album(t, domain.PermissionProtected, "p1")
	private := f.album(t, domain.PermissionPrivate, "")
	a := f.image(t, protected, 2)
	b := f.image(t, protected, 1)
	hidden := f.image(t, private, 0)

	_, err := f.images.Get(ctx, nil, a.ID, nil)
	assert.ErrorIs(t, err, accessapp.ErrAlbumPasswordInvalid)

	got, err := f.images.Get(ctx, nil, a.ID, pw("p1"))
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)

	_, err = f.images.Get(ctx, f.stranger, hidden.ID, nil)
	assert.ErrorIs(t, err, application.ErrImageNotFound)

	_, err = f.images.ListByAlbum(ctx, f.stranger, protected.ID, nil, pagination.Request{})
	assert.ErrorIs(t, err, accessapp.ErrAlbumPasswordInvalid)

	_, err = f.images.ListByAlbum(ctx, f.stranger, private.ID, nil, pagination.Request{})
	assert.ErrorIs(t, err, application.ErrAlbumNotFound)

	page, err := f.images.ListByAlbum(ctx, f.stranger, protected.ID, pw("p1"), pagination.Request{})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, 2, page.Total)
	assert.Equal(t, b.ID, page.Items[0].ID)

	_, err = f.images.ListByAlbum(ctx, f.owner, protected.ID, nil, pagination.Request{PageSize: 51})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestImageLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	album := f.album(t, domain.PermissionPublic, "")
	img := f.image(t, album, 0)

	require.NoError(t, f.images.Delete(ctx, f.owner, img.ID))
	_, err := f.images.Get(ctx, f.owner, img.ID, nil)
	assert.ErrorIs(t, err, application.ErrImageNotFound)

	bin, err := f.images.ListRecycled(ctx, f.owner, pagination.Request{})
	require.NoError(t, err)
	require.Len(t, bin.Items, 1)

	err = f.images.Delete(ctx, f.stranger, img.ID)
	assert.ErrorIs(t, err, application.ErrImageNotFound)

	require.NoError(t, f.albums.Delete(ctx, f.owner, album.ID))
	restored, err := f.images.Restore(ctx, f.owner, img.ID)
	require.NoError(t, err)
	assert.False(t, restored.IsDeleted)

	// Restored, but the album is still in the recycle bin.
	_, err = f.images.Get(ctx, f.owner, img.ID, nil)
	assert.ErrorIs(t, err, application.ErrImageNotFound)

	_, err = f.albums.Restore(ctx, f.owner, album.ID)
	require.NoError(t, err)
	_, err = f.images.Get(ctx, nil, img.ID, nil)
	assert.NoError(t, err)
}

func TestImageReorder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	album := f.album(t, domain.PermissionPublic, "")
	other := f.album(t, domain.PermissionPublic, "")
	a := f.image(t, album, 0)
	b := f.image(t, album, 1)
	c := f.image(t, album, 2)
	foreign := f.image(t, other, 0)
	recycled := f.image(t, album, 3)
	require.NoError(t, f.images.Delete(ctx, f.owner, recycled.ID))

	require.NoError(t, f.images.Reorder(ctx, f.owner, album.ID, []uuid.UUID{c.ID, a.ID, b.ID}))
	page, err := f.images.ListByAlbum(ctx, nil, album.ID, nil, pagination.Request{})
	require.NoError(t, err)
	require.Len(t, page.Items, 3)
	assert.Equal(t, []uuid.UUID{c.ID, a.ID, b.ID}, []uuid.UUID{page.Items[0].ID, page.Items[1].ID, page.Items[2].ID})

	tests := []struct {
		name  string
		actor *access.Actor
		album uuid.UUID
		ids   []uuid.UUID
		want  error
	}{
		{name: "empty", actor: f.owner, album: album.ID, want: application.ErrInvalidImageOrder},
		{name: "duplicate", actor: f.owner, album: album.ID, ids: []uuid.UUID{a.ID, a.ID}, want: application.ErrInvalidImageOrder},
		{name: "nil id", actor: f.owner, album: album.ID, ids: []uuid.UUID{uuid.Nil}, want: application.ErrInvalidImageOrder},
		{name: "image of another album", actor: f.owner, album: album.ID, ids: []uuid.UUID{a.ID, foreign.ID}, want: application.ErrInvalidImageOrder},
		{name: "recycled image", actor: f.owner, album: album.ID, ids: []uuid.UUID{recycled.ID, a.ID}, want: application.ErrInvalidImageOrder},
		{name: "not the owner", actor: f.stranger, album: album.ID, ids: []uuid.UUID{a.ID}, want: apperror.ErrPermissionDenied},
		{name: "anonymous", actor: nil, album: album.ID, ids: []uuid.UUID{a.ID}, want: apperror.ErrUnauthenticated},
		{name: "unknown album", actor: f.owner, album: uuid.New(), ids: []uuid.UUID{a.ID}, want: application.ErrAlbumNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := f.images.Reorder(ctx, tt.actor, tt.album, tt.ids)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	// A rejected order leaves the previous one in place.
	assert.Equal(t, 0, f.store.images[c.ID].SortOrder)
	assert.Equal(t, 1, f.store.images[a.ID].SortOrder)
}

func TestImageBatchDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	first := f.album(t, domain.PermissionPublic, "")
	second := f.album(t, domain.PermissionPrivate, "")
	a := f.image(t, first, 0)
	b := f.image(t, first, 1)
	c := f.image(t, second, 0)

	strangers := f.album(t, domain.PermissionPublic, "")
	theirs := f.image(t, strangers, 0)
	f.store.albums[strangers.ID].OwnerID = f.stranger.ID
	f.store.images[theirs.ID].OwnerID = f.stranger.ID

	before := len(f.publisher.events)
	missing := uuid.New()
	result, err := f.images.BatchDelete(ctx, f.owner, []uuid.UUID{a.ID, theirs.ID, b.ID, missing, c.ID})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{a.ID, b.ID, c.ID}, result.Deleted)
	require.Len(t, result.Skipped, 2)
	assert.ErrorIs(t, result.Skipped[theirs.ID], apperror.ErrPermissionDenied)
	assert.ErrorIs(t, result.Skipped[missing], application.ErrImageNotFound)
	assert.False(t, f.store.images[theirs.ID].IsDeleted)

	// One event per album, not per image.
	published := f.publisher.events[before:]
	require.Len(t, published, 2)
	updater := application.NewImageCountUpdater(f.store.Albums(), &mockLogger{})
	for _, event := range published {
		assert.Equal(t, events.ImageRecycledTopic, event.Topic)
		require.NoError(t, updater.Handle(ctx, event))
	}
	assert.Equal(t, []uuid.UUID{first.ID, second.ID}, f.store.refreshed)
	assert.Zero(t, f.store.albums[first.ID].ImageCount)

	payload, ok := published[0].Payload.(events.ImageBatchLifecycleEvent)
	require.True(t, ok)
	assert.Equal(t, []uuid.UUID{a.ID, b.ID}, payload.ImageIDs)

	_, err = f.images.BatchDelete(ctx, f.owner, []uuid.UUID{theirs.ID, a.ID})
	assert.ErrorIs(t, err, application.ErrNoDeletableImages)

	_, err = f.images.BatchDelete(ctx, nil, []uuid.UUID{a.ID})
	assert.ErrorIs(t, err, apperror.ErrUnauthenticated)

	_, err = f.images.BatchDelete(ctx, f.owner, nil)
	assert.ErrorIs(t, err, application.ErrInvalidImageData)

	tooMany := make([]uuid.UUID, application.MaxBatchImages+1)
	for i := range tooMany {
		tooMany[i] = uuid.New()
	}
	_, err = f.images.BatchDelete(ctx, f.owner, tooMany)
	assert.ErrorIs(t, err, application.ErrInvalidImageData)
}

func TestImageCountUpdater(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	album := f.album(t, domain.PermissionPublic, "")
	f.image(t, album, 0)
	gone := f.image(t, album, 1)
	f.store.images[gone.ID].IsDeleted = true

	bus := eventbus.NewBus(&mockLogger{})
	updater := application.NewImageCountUpdater(f.store.Albums(), &mockLogger{})
	updater.Subscribe(bus)

	bus.Publish(ctx, eventbus.Event{
		Topic:   events.ImageRecycledTopic,
		Payload: events.ImageLifecycleEvent{ImageID: gone.ID, AlbumID: album.ID},
	})
	drainCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	require.NoError(t, bus.Drain(drainCtx))

	stored, err := f.store.Albums().FindByID(ctx, album.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.ImageCount)
	assert.Equal(t, []uuid.UUID{album.ID}, f.store.refreshed)

	err = updater.Handle(ctx, eventbus.Event{Topic: events.ImageRecycledTopic, Payload: "junk"})
	assert.Error(t, err)
}

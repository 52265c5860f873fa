package application

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/philly/arch-gallery/backend/internal/gallery/ports"
	"github.com/philly/arch-gallery/backend/internal/platform/eventbus"
	"github.com/philly/arch-gallery/backend/internal/platform/events"
	"github.com/philly/arch-gallery/backend/internal/platform/logger"
)

// ImageCountUpdater keeps albums.image_count in step with image lifecycle
// events. Counts are recomputed, not incremented, so replays are harmless.
type ImageCountUpdater struct {
	albums ports.AlbumRepository
	logger logger.Logger
}

func NewImageCountUpdater(albums ports.AlbumRepository, logger logger.Logger) *ImageCountUpdater {
	return &ImageCountUpdater{albums: albums, logger: logger}
}

// Subscribe registers the updater on bus.
func (u *ImageCountUpdater) Subscribe(bus *eventbus.Bus) {
	for _, topic := range []eventbus.Topic{
		events.ImageRegisteredTopic,
		events.ImageRecycledTopic,
		events.ImageRestoredTopic,
	} {
		bus.Subscribe(topic, u.Handle)
	}
}

func (u *ImageCountUpdater) Handle(ctx context.Context, event eventbus.Event) error {
	var albumID uuid.UUID
	switch p := event.Payload.(type) {
	case events.ImageLifecycleEvent:
		albumID = p.AlbumID
	case events.ImageBatchLifecycleEvent:
		albumID = p.AlbumID
	case events.ImageRegisteredEvent:
		albumID = p.AlbumID
	default:
		return fmt.Errorf("image count: unexpected payload %T on %s", event.Payload, event.Topic)
	}
	if albumID == uuid.Nil {
		return nil
	}

	if err := u.albums.RefreshImageCount(ctx, albumID); err != nil {
		return fmt.Errorf("refresh image count for album %s: %w", albumID, err)
	}
	u.logger.Debug(ctx, "album image count refreshed", "album_id", albumID, "topic", event.Topic)
	return nil
}

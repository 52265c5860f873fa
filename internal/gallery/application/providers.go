package application

import (
	"github.com/google/wire"

	"github.com/philly/arch-gallery/backend/internal/gallery/ports"
	lifecycleapp "github.com/philly/arch-gallery/backend/internal/lifecycle/application"
)

var ProviderSet = wire.NewSet(
	NewAlbumService,
	NewImageService,
	NewImageCountUpdater,
	wire.Bind(new(ports.LifecycleManager), new(*lifecycleapp.Manager)),
)

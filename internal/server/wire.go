//go:build wireinject
// +build wireinject

package server

import (
	"context"

	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"

	accessapp "github.com/philly/arch-gallery/backend/internal/access/application"
	accessports "github.com/philly/arch-gallery/backend/internal/access/ports"
	"github.com/philly/arch-gallery/backend/internal/adapters/credential"
	"github.com/philly/arch-gallery/backend/internal/adapters/postgres"
	"github.com/philly/arch-gallery/backend/internal/adapters/rest"
	"github.com/philly/arch-gallery/backend/internal/adapters/rest/middleware"
	blogapp "github.com/philly/arch-gallery/backend/internal/blog/application"
	galleryapp "github.com/philly/arch-gallery/backend/internal/gallery/application"
	gallery "github.com/philly/arch-gallery/backend/internal/gallery/domain"
	lifecycleapp "github.com/philly/arch-gallery/backend/internal/lifecycle/application"
	"github.com/philly/arch-gallery/backend/internal/platform/eventbus"
	"github.com/philly/arch-gallery/backend/internal/platform/logger"
	platformpg "github.com/philly/arch-gallery/backend/internal/platform/postgres"
	searchapp "github.com/philly/arch-gallery/backend/internal/search/application"
	userapp "github.com/philly/arch-gallery/backend/internal/users/application"
)

// InitializeApp creates a fully configured App with all dependencies
func InitializeApp(ctx context.Context) (*App, func(), error) {
	wire.Build(
		// Bootstrap phase
		logger.NewBootstrapLogger,
		LoadConfig,

		// Logger configuration
		provideLoggerConfig,
		logger.NewConfiguredLogger,

		// Database
		ConnectDatabase,
		platformpg.NewTransactionManager,
		wire.Bind(new(rest.Pinger), new(*pgxpool.Pool)),

		// Repository providers (includes interface binding)
		postgres.ProviderSet,
		wire.Bind(new(accessports.AlbumReader), new(*postgres.AlbumRepository)),
		wire.Bind(new(accessports.PostReader), new(*postgres.PostRepository)),

		// Credentials
		provideCredentialConfig,
		credential.NewBcrypt,
		wire.Bind(new(gallery.PasswordHasher), new(*credential.Bcrypt)),
		wire.Bind(new(accessports.PasswordVerifier), new(*credential.Bcrypt)),

		// Events
		eventbus.ProviderSet,
		provideSubscribers,

		// Application services
		accessapp.ProviderSet,
		lifecycleapp.ProviderSet,
		galleryapp.ProviderSet,
		blogapp.ProviderSet,
		userapp.ProviderSet,
		provideSearchConfig,
		searchapp.ProviderSet,

		// REST handlers
		rest.ProviderSet,

		// Auth middleware
		provideJWTConfig,
		middleware.ProviderSet,

		// HTTP Server
		NewHTTPServer,

		// App
		NewApp,
	)

	return nil, nil, nil
}

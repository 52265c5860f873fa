package server

import (
	"github.com/philly/arch-gallery/backend/internal/adapters/credential"
	"github.com/philly/arch-gallery/backend/internal/adapters/rest/middleware"
	galleryapp "github.com/philly/arch-gallery/backend/internal/gallery/application"
	"github.com/philly/arch-gallery/backend/internal/platform/eventbus"
	"github.com/philly/arch-gallery/backend/internal/platform/logger"
	searchapp "github.com/philly/arch-gallery/backend/internal/search/application"
)

// provideLoggerConfig creates logger config from server config
func provideLoggerConfig(config Config) logger.Config {
	return logger.Config{
		Environment: config.Environment,
		LogLevel:    config.LogLevel,
		Backend:     config.LogBackend,
	}
}

func provideJWTConfig(config Config) middleware.JWTConfig {
	return middleware.JWTConfig{
		JWKS:   config.JWKSEndpoint,
		Issuer: config.JWTIssuer,
	}
}

func provideCredentialConfig(config Config) credential.Config {
	return credential.Config{
		Cost:          config.BcryptCost,
		VerifyTimeout: config.PasswordVerifyTimeout,
	}
}

func provideSearchConfig(config Config) searchapp.Config {
	return searchapp.Config{MaxCandidates: config.SearchMaxCandidates}
}

// Subscribers marks that event handlers have been registered on the bus.
type Subscribers struct{}

func provideSubscribers(bus *eventbus.Bus, imageCounts *galleryapp.ImageCountUpdater) Subscribers {
	imageCounts.Subscribe(bus)
	return Subscribers{}
}

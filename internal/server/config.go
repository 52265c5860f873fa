package server

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"

	"github.com/philly/arch-gallery/backend/internal/platform/logger"
)

type Config struct {
	DatabaseURL           string        `mapstructure:"DATABASE_URL"`
	JWKSEndpoint          string        `mapstructure:"JWKS_ENDPOINT"` // Generic JWKS endpoint for JWT validation
	JWTIssuer             string        `mapstructure:"JWT_ISSUER"`    // Expected JWT issuer for validation
	ServerAddress         string        `mapstructure:"SERVER_ADDRESS"`
	Environment           string        `mapstructure:"ENVIRONMENT"`
	LogLevel              string        `mapstructure:"LOG_LEVEL"`   // debug, info, warn, error
	LogBackend            string        `mapstructure:"LOG_BACKEND"` // slog or zerolog
	CORSAllowedOrigins    string        `mapstructure:"CORS_ALLOWED_ORIGINS"`
	PasswordVerifyTimeout time.Duration `mapstructure:"PASSWORD_VERIFY_TIMEOUT"`
	BcryptCost            int           `mapstructure:"BCRYPT_COST"`
	SearchMaxCandidates   int           `mapstructure:"SEARCH_MAX_CANDIDATES"`
}

// AllowedOrigins splits CORS_ALLOWED_ORIGINS on commas.
func (c Config) AllowedOrigins() []string {
	var origins []string
	for _, origin := range strings.Split(c.CORSAllowedOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

func LoadConfig(bootstrapLogger *logger.BootstrapLogger) (Config, error) {
	ctx := context.Background()

	// It's okay if the file doesn't exist - we'll use environment variables
	if err := godotenv.Load(); err != nil {
		bootstrapLogger.Info(ctx, "no .env file found, using environment variables only")
	} else {
		bootstrapLogger.Info(ctx, "loaded .env file")
	}

	config, err := readConfig(viper.New())
	if err != nil {
		bootstrapLogger.Error(ctx, "failed to load configuration", "error", err)
		return Config{}, err
	}

	bootstrapLogger.Info(ctx, "configuration loaded",
		"environment", config.Environment,
		"log_level", config.LogLevel,
		"log_backend", config.LogBackend,
		"server_address", config.ServerAddress,
	)
	return config, nil
}

// readConfig applies defaults, reads the environment through v and
// validates the result.
func readConfig(v *viper.Viper) (Config, error) {
	v.SetDefault("DATABASE_URL", "postgresql://localhost:5432/archgallery?sslmode=disable")
	v.SetDefault("SERVER_ADDRESS", ":8080")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_BACKEND", "slog")
	v.SetDefault("JWKS_ENDPOINT", "")
	v.SetDefault("JWT_ISSUER", "")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("PASSWORD_VERIFY_TIMEOUT", "2s")
	v.SetDefault("BCRYPT_COST", 12)
	v.SetDefault("SEARCH_MAX_CANDIDATES", 1000)

	// Viper will now see all environment variables, including those loaded by godotenv
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// Validate checks required keys and value ranges.
func (c Config) Validate() error {
	var errs []error
	if c.JWKSEndpoint == "" {
		errs = append(errs, errors.New("JWKS_ENDPOINT is required"))
	}
	if c.JWTIssuer == "" {
		errs = append(errs, errors.New("JWT_ISSUER is required"))
	}
	if c.LogBackend != "slog" && c.LogBackend != "zerolog" {
		errs = append(errs, fmt.Errorf("LOG_BACKEND must be slog or zerolog, got %q", c.LogBackend))
	}
	if c.PasswordVerifyTimeout <= 0 {
		errs = append(errs, errors.New("PASSWORD_VERIFY_TIMEOUT must be positive"))
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost))
	}
	if c.SearchMaxCandidates < 1 {
		errs = append(errs, errors.New("SEARCH_MAX_CANDIDATES must be at least 1"))
	}
	return errors.Join(errs...)
}

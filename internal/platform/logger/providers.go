package logger

import (
	"github.com/google/wire"
)

// ProviderSet is the wire provider set for the logger.
var ProviderSet = wire.NewSet(
	NewBootstrapLogger,
	NewConfiguredLogger,
)

// Config holds the values needed to configure the logger
type Config struct {
	Environment string
	LogLevel    string
	Backend     string // "slog" (default) or "zerolog"
}

// NewConfiguredLogger creates the main application logger from config
func NewConfiguredLogger(config Config) Logger {
	if config.Backend == "zerolog" {
		return NewZerologAdapter(config.Environment, config.LogLevel)
	}
	return NewSlogAdapter(config.Environment, config.LogLevel)
}

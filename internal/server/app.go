package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/philly/arch-gallery/backend/internal/platform/eventbus"
	"github.com/philly/arch-gallery/backend/internal/platform/logger"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	server *http.Server
	bus    *eventbus.Bus
	logger logger.Logger
}

func NewApp(server *http.Server, bus *eventbus.Bus, subscribers Subscribers, logger logger.Logger) *App {
	return &App{
		server: server,
		bus:    bus,
		logger: logger,
	}
}

// Run starts the application and handles graceful shutdown
func (a *App) Run() error {
	ctx := context.Background()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)
	go func() {
		a.logger.Info(ctx, "starting server", "addr", a.server.Addr)
		serverErrors <- a.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
	case sig := <-sigChan:
		a.logger.Info(ctx, "shutting down server", "signal", sig.String())

		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
		defer cancel()

		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to gracefully shutdown server: %w", err)
		}
		// Let in-flight event handlers (image recounts) finish before the
		// pool is closed by cleanup.
		if err := a.bus.Drain(shutdownCtx); err != nil {
			a.logger.Warn(ctx, "event handlers still running at shutdown", "error", err)
		}
	}

	a.logger.Info(ctx, "server stopped")
	return nil
}

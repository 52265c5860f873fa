package main

import (
	"context"
	"fmt"
	"os"

	"github.com/philly/arch-gallery/backend/internal/server"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "arch-gallery: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Cancelled on return so the JWKS refresh goroutine stops with the app.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, cleanup, err := server.InitializeApp(ctx)
	if err != nil {
		return fmt.Errorf("initialize: %w", err)
	}
	defer cleanup()

	return app.Run()
}

package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// SlogAdapter implements Logger on top of log/slog.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter uses a text handler in development and JSON elsewhere.
func NewSlogAdapter(env string, level string) *SlogAdapter {
	return newSlogAdapter(env, level, os.Stdout)
}

func newSlogAdapter(env, level string, out io.Writer) *SlogAdapter {
	opts := &slog.HandlerOptions{Level: slogLevel(level)}
	var handler slog.Handler
	if env == "development" {
		handler = slog.NewTextHandler(out, opts)
	} else {
		handler = slog.NewJSONHandler(out, opts)
	}

	return &SlogAdapter{
		logger: slog.New(handler).With("service", "arch-gallery"),
	}
}

func slogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

func (s *SlogAdapter) Debug(ctx context.Context, msg string, args ...any) {
	s.logger.DebugContext(ctx, msg, withRequestID(ctx, args)...)
}

func (s *SlogAdapter) Info(ctx context.Context, msg string, args ...any) {
	s.logger.InfoContext(ctx, msg, withRequestID(ctx, args)...)
}

func (s *SlogAdapter) Warn(ctx context.Context, msg string, args ...any) {
	s.logger.WarnContext(ctx, msg, withRequestID(ctx, args)...)
}

func (s *SlogAdapter) Error(ctx context.Context, msg string, args ...any) {
	s.logger.ErrorContext(ctx, msg, withRequestID(ctx, args)...)
}

// withRequestID prepends the chi request id, if ctx carries one.
func withRequestID(ctx context.Context, args []any) []any {
	if ctx == nil {
		return args
	}
	id := chimw.GetReqID(ctx)
	if id == "" {
		return args
	}
	return append([]any{"request_id", id}, args...)
}

var _ Logger = (*SlogAdapter)(nil)

package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// ZerologAdapter implements Logger on top of rs/zerolog.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter uses a console writer in development and JSON elsewhere.
func NewZerologAdapter(env string, level string) *ZerologAdapter {
	return newZerologAdapter(env, level, os.Stdout)
}

func newZerologAdapter(env, level string, out io.Writer) *ZerologAdapter {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	w := out
	if env == "development" {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	return &ZerologAdapter{
		logger: zerolog.New(w).Level(lvl).With().
			Timestamp().
			Str("service", "arch-gallery").
			Logger(),
	}
}

func (z *ZerologAdapter) Debug(ctx context.Context, msg string, args ...any) {
	withFields(z.logger.Debug().Ctx(ctx), withRequestID(ctx, args)).Msg(msg)
}

func (z *ZerologAdapter) Info(ctx context.Context, msg string, args ...any) {
	withFields(z.logger.Info().Ctx(ctx), withRequestID(ctx, args)).Msg(msg)
}

func (z *ZerologAdapter) Warn(ctx context.Context, msg string, args ...any) {
	withFields(z.logger.Warn().Ctx(ctx), withRequestID(ctx, args)).Msg(msg)
}

func (z *ZerologAdapter) Error(ctx context.Context, msg string, args ...any) {
	withFields(z.logger.Error().Ctx(ctx), withRequestID(ctx, args)).Msg(msg)
}

// withFields converts slog-style alternating key/value args into zerolog fields.
// A dangling key is logged under "!BADKEY" the same way slog does.
func withFields(e *zerolog.Event, args []any) *zerolog.Event {
	if e == nil {
		return e
	}
	for i := 0; i < len(args); i += 2 {
		if i+1 == len(args) {
			e = e.Interface("!BADKEY", args[i])
			break
		}
		key, ok := args[i].(string)
		if !ok {
			key = fmt.Sprint(args[i])
		}
		switch v := args[i+1].(type) {
		case error:
			e = e.AnErr(key, v)
		case fmt.Stringer:
			e = e.Stringer(key, v)
		default:
			e = e.Interface(key, v)
		}
	}
	return e
}

var _ Logger = (*ZerologAdapter)(nil)

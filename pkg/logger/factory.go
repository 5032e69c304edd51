package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// New creates a logger from cfg with optional context extractors.
// When cfg.SentryDSN is set, records are also sent to Sentry: errors create
// issues, records at or above cfg.SentryMinLevel are stored as logs.
// If Sentry cannot be initialized the logger keeps writing to the output only.
func New(cfg Config, extractors ...ContextExtractor) *slog.Logger {
	handler := newOutputHandler(cfg)

	if cfg.SentryDSN == "" {
		return slog.New(NewContextHandler(handler, extractors...))
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.SentryDSN,
		Environment: cfg.SentryEnvironment,
		EnableLogs:  true,
	}); err != nil {
		slog.New(handler).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		return slog.New(NewContextHandler(handler, extractors...))
	}

	sentryHandler := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   sentryLogLevels(cfg.SentryMinLevel),
	}.NewSentryHandler(context.Background())

	return slog.New(NewContextHandler(NewMultiHandler(handler, sentryHandler), extractors...))
}

// Discard returns a logger that drops every record.
// Use this as a default when logging is not configured.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newOutputHandler(cfg Config) slog.Handler {
	var out io.Writer = os.Stdout
	if cfg.Output != nil {
		out = cfg.Output
	}
	opts := &slog.HandlerOptions{Level: cfg.Level}
	if strings.EqualFold(cfg.Format, FormatText) {
		return slog.NewTextHandler(out, opts)
	}
	return slog.NewJSONHandler(out, opts)
}

func sentryLogLevels(minLevel slog.Level) []slog.Level {
	var levels []slog.Level
	for _, l := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if l >= minLevel {
			levels = append(levels, l)
		}
	}
	if len(levels) == 0 {
		return []slog.Level{slog.LevelError}
	}
	return levels
}

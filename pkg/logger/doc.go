// Package logger provides structured logging with context extraction and Sentry integration.
//
// The package extends log/slog with automatic context-based attribute
// injection and optional Sentry error reporting.
//
// # Basic Usage
//
//	cfg, err := logger.ConfigFromEnv()
//	if err != nil {
//		return err
//	}
//	log := logger.New(cfg, i18n.LanguageExtractor())
//
//	log.InfoContext(ctx, "request processed", slog.Int("status", 200))
//	// {"level":"INFO","msg":"request processed","status":200,"language":"de"}
//
// Environment variables: LOG_FORMAT (json or text), LOG_LEVEL, SENTRY_DSN,
// SENTRY_ENVIRONMENT and SENTRY_MIN_LEVEL.
//
// # Sentry Integration
//
// With SENTRY_DSN set, New fans records out to the configured output and to
// Sentry. Errors create issues; records at or above SENTRY_MIN_LEVEL are
// stored as Sentry logs. Without a DSN, or when Sentry fails to initialize,
// the logger writes to the output only, so the same code path works in
// development and production.
//
// # Context Extractors
//
// A ContextExtractor pulls one attribute out of a context:
//
//	type ContextExtractor func(ctx context.Context) (slog.Attr, bool)
//
// Extractors run on every log call. Returning false skips the attribute.
// NewContextHandler adds extractors to any slog.Handler, and
// NewMultiHandler writes to several handlers at once.
//
// Discard returns a logger that drops everything; libraries use it as their
// default.
package logger

package logger

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Config holds logger configuration, loadable from the environment.
type Config struct {
	// Output defaults to os.Stdout.
	Output io.Writer `env:"-"`

	Format string     `env:"LOG_FORMAT" envDefault:"json"`
	Level  slog.Level `env:"LOG_LEVEL" envDefault:"info"`

	// Sentry is enabled when SentryDSN is set.
	SentryDSN         string     `env:"SENTRY_DSN"`
	SentryEnvironment string     `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
	SentryMinLevel    slog.Level `env:"SENTRY_MIN_LEVEL" envDefault:"warn"`
}

// ConfigFromEnv reads Config from environment variables.
func ConfigFromEnv() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("logger: parse config: %w", err)
	}
	return cfg, nil
}

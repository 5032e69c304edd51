package i18n

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the scalar part of the configuration, loadable from the environment.
type Config struct {
	Locales         map[string]string `env:"I18N_LOCALES" envSeparator:"," envKeyValSeparator:":"`
	DefaultLanguage string            `env:"I18N_DEFAULT_LANGUAGE" envDefault:"en"`
	Language        string            `env:"I18N_LANGUAGE"`
	MissingStrategy string            `env:"I18N_MISSING_STRATEGY" envDefault:"fallback"`
	MaxDepth        int               `env:"I18N_MAX_DEPTH" envDefault:"32"`
	CacheSize       int               `env:"I18N_CACHE_SIZE" envDefault:"0"`
	CollectMissing  bool              `env:"I18N_COLLECT_MISSING" envDefault:"false"`
}

// ConfigFromEnv reads Config from environment variables.
func ConfigFromEnv() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("i18n: parse config: %w", err)
	}
	return cfg, nil
}

// WithConfig applies every non-zero field of cfg.
func WithConfig(cfg Config) Option {
	return func(i *I18n) error {
		if cfg.DefaultLanguage != "" {
			i.defaultLang = cfg.DefaultLanguage
		}
		if cfg.Language != "" {
			i.language = cfg.Language
		}
		if cfg.MissingStrategy != "" {
			strategy, err := ParseMissingStrategy(cfg.MissingStrategy)
			if err != nil {
				return err
			}
			i.strategy = strategy
		}
		if cfg.MaxDepth > 0 {
			i.maxDepth = cfg.MaxDepth
		}
		if cfg.CacheSize > 0 {
			i.cacheSize = cfg.CacheSize
		}
		if cfg.CollectMissing {
			i.collector = &missingCollector{}
		}
		if len(cfg.Locales) > 0 {
			if i.locales == nil {
				i.locales = make(map[string]string, len(cfg.Locales))
			}
			for lang, locale := range cfg.Locales {
				i.locales[lang] = locale
			}
		}
		return nil
	}
}

package i18n

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"
)

// MissingStrategy decides what happens when a translation cannot be resolved.
type MissingStrategy string

const (
	// StrategyFallback degrades to the default language or the bare key.
	StrategyFallback MissingStrategy = "fallback"
	// StrategyStrict turns every missing translation into an error.
	StrategyStrict MissingStrategy = "strict"
)

// ParseMissingStrategy validates a strategy name. An empty name means fallback.
func ParseMissingStrategy(s string) (MissingStrategy, error) {
	switch MissingStrategy(s) {
	case "", StrategyFallback:
		return StrategyFallback, nil
	case StrategyStrict:
		return StrategyStrict, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStrategy, s)
	}
}

// MissingReason classifies a missing translation.
type MissingReason string

const (
	// MissingKey means the key does not exist in the table or category.
	MissingKey MissingReason = "missingKey"
	// MissingLanguage means the key has no template for the requested language.
	MissingLanguage MissingReason = "missingLanguage"
	// MissingFallback means the default language template is empty as well.
	MissingFallback MissingReason = "missingFallback"
)

// MissingTranslation describes one missing-translation event.
type MissingTranslation struct {
	Key             string
	Category        string
	Language        string
	DefaultLanguage string
	Reason          MissingReason
}

// MissingHandler observes missing translations. It is called for every event
// regardless of the strategy and must be safe for concurrent use.
type MissingHandler func(MissingTranslation)

// MissingTranslationError is returned under StrategyStrict.
// It matches ErrMissingTranslation with errors.Is.
type MissingTranslationError struct {
	MissingTranslation
}

func (e *MissingTranslationError) Error() string {
	return fmt.Sprintf("%s: %s for key %q (language %q, default %q)",
		ErrMissingTranslation, e.Reason, e.Key, e.Language, e.DefaultLanguage)
}

func (e *MissingTranslationError) Is(target error) bool {
	return target == ErrMissingTranslation
}

// MaxCollectedMissing bounds the in-memory collector. Once full, the oldest
// event is dropped for every new one.
const MaxCollectedMissing = 1000

// missingCollector keeps the latest MaxCollectedMissing events in memory.
type missingCollector struct {
	mu     sync.Mutex
	events []MissingTranslation
}

func (c *missingCollector) add(m MissingTranslation) {
	c.mu.Lock()
	if len(c.events) >= MaxCollectedMissing {
		n := copy(c.events, c.events[len(c.events)-MaxCollectedMissing+1:])
		c.events = c.events[:n]
	}
	c.events = append(c.events, m)
	c.mu.Unlock()
}

func (c *missingCollector) list() []MissingTranslation {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.events)
}

func (c *missingCollector) reset() {
	c.mu.Lock()
	c.events = nil
	c.mu.Unlock()
}

// reportMissing notifies every observer and applies the strategy. Under
// fallback it returns a nil error.
func (i *I18n) reportMissing(m MissingTranslation) error {
	i.logger.Debug("missing translation",
		slog.String("key", m.Key),
		slog.String("category", m.Category),
		slog.String("language", m.Language),
		slog.String("reason", string(m.Reason)),
	)
	if i.collector != nil {
		i.collector.add(m)
	}
	if i.onMissing != nil {
		i.onMissing(m)
	}
	if i.strategy == StrategyStrict {
		return &MissingTranslationError{MissingTranslation: m}
	}
	return nil
}

// MissingTranslations returns the collected events, oldest first. Only the
// latest MaxCollectedMissing are kept. It returns nil unless collection is
// enabled.
func (i *I18n) MissingTranslations() []MissingTranslation {
	if i.collector == nil {
		return nil
	}
	return i.collector.list()
}

// ResetMissingTranslations drops all collected events.
func (i *I18n) ResetMissingTranslations() {
	if i.collector != nil {
		i.collector.reset()
	}
}

// LogMissing returns a MissingHandler that logs every event at warn level.
func LogMissing(log *slog.Logger) MissingHandler {
	return func(m MissingTranslation) {
		log.Warn("missing translation",
			slog.String("key", m.Key),
			slog.String("category", m.Category),
			slog.String("language", m.Language),
			slog.String("default_language", m.DefaultLanguage),
			slog.String("reason", string(m.Reason)),
		)
	}
}

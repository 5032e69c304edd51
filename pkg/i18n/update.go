package i18n

import "fmt"

type fieldState uint8

const (
	fieldUnset fieldState = iota
	fieldCleared
	fieldSet
)

// Field is a tri-state update value: left unset it keeps the current
// setting, Clear resets it and Set replaces it.
type Field[T any] struct {
	value T
	state fieldState
}

// Set returns a Field that replaces the current setting with v.
func Set[T any](v T) Field[T] {
	return Field[T]{value: v, state: fieldSet}
}

// Clear returns a Field that resets the current setting to its default.
func Clear[T any]() Field[T] {
	return Field[T]{state: fieldCleared}
}

// IsUnset reports whether the field leaves the setting untouched.
func (f Field[T]) IsUnset() bool { return f.state == fieldUnset }

// IsCleared reports whether the field resets the setting.
func (f Field[T]) IsCleared() bool { return f.state == fieldCleared }

// Get returns the value and whether the field carries one.
func (f Field[T]) Get() (T, bool) {
	return f.value, f.state == fieldSet
}

// Update describes a reconfiguration applied by I18n.With. Zero-value
// fields are left untouched.
type Update struct {
	// Language is the language used when Translate is called with "".
	// Clearing it falls back to the default language.
	Language Field[string]
	// DefaultLanguage cleared resets to DefaultLang.
	DefaultLanguage Field[string]
	// MissingStrategy cleared resets to StrategyFallback.
	MissingStrategy Field[MissingStrategy]
	// Formatters replaces the whole hook map; cleared means no hooks at all.
	Formatters Field[map[string]FormatterFunc]
	Locales    Field[map[string]string]
	// CollectMissing set to true keeps an existing collector.
	CollectMissing Field[bool]
	OnMissing      Field[MissingHandler]
}

// With returns a copy of i with u applied. The copy shares the table and
// every cache with i, so reconfiguring is cheap.
func (i *I18n) With(u Update) (*I18n, error) {
	c := *i

	if v, ok := u.DefaultLanguage.Get(); ok {
		if v == "" {
			return nil, ErrEmptyLanguage
		}
		c.defaultLang = v
	} else if u.DefaultLanguage.IsCleared() {
		c.defaultLang = DefaultLang
	}

	if v, ok := u.Language.Get(); ok {
		if v == "" {
			return nil, ErrEmptyLanguage
		}
		c.language = v
	} else if u.Language.IsCleared() {
		c.language = ""
	}

	if v, ok := u.MissingStrategy.Get(); ok {
		strategy, err := ParseMissingStrategy(string(v))
		if err != nil {
			return nil, fmt.Errorf("failed to apply update: %w", err)
		}
		c.strategy = strategy
	} else if u.MissingStrategy.IsCleared() {
		c.strategy = StrategyFallback
	}

	if v, ok := u.Formatters.Get(); ok {
		c.formatters = cloneFormatters(v)
	} else if u.Formatters.IsCleared() {
		c.formatters = nil
	}

	if v, ok := u.Locales.Get(); ok {
		c.locales = cloneLocales(v)
	} else if u.Locales.IsCleared() {
		c.locales = nil
	}

	if v, ok := u.CollectMissing.Get(); ok {
		if !v {
			c.collector = nil
		} else if c.collector == nil {
			c.collector = &missingCollector{}
		}
	} else if u.CollectMissing.IsCleared() {
		c.collector = nil
	}

	if v, ok := u.OnMissing.Get(); ok {
		c.onMissing = v
	} else if u.OnMissing.IsCleared() {
		c.onMissing = nil
	}

	c.languages = buildLanguagesList(c.defaultLang, c.table)

	return &c, nil
}

package i18n

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/dmitrymomot/msgfmt/pkg/logger"
	"github.com/dmitrymomot/msgfmt/pkg/messageformat"
)

// DefaultLang is the default language code used when no default language is specified.
const DefaultLang = "en"

// M holds placeholder values by name.
type M map[string]any

// FormatterFunc is a named hook applied by "{name|hook}" placeholders.
type FormatterFunc = messageformat.FormatterFunc

// I18n binds a translation table to a language fallback policy and renders
// its templates. It is immutable after creation and safe for concurrent use;
// use With to derive a reconfigured instance.
type I18n struct {
	table Table
	// Keys per category, for TranslateIn.
	categories map[string]map[string]struct{}

	engine      *messageformat.Engine
	formatters  map[string]FormatterFunc
	locales     map[string]string
	pluralRules map[string]messageformat.PluralRule

	collector *missingCollector
	onMissing MissingHandler
	logger    *slog.Logger

	language    string
	defaultLang string
	strategy    MissingStrategy
	languages   []string

	maxDepth  int
	cacheSize int
}

// Option configures the I18n instance during construction.
type Option func(*I18n) error

// New creates a new I18n instance with the given options.
// All configuration happens during construction, making the instance
// immutable and thread-safe from creation.
func New(opts ...Option) (*I18n, error) {
	i := &I18n{
		table:       make(Table),
		formatters:  DefaultFormatters(),
		pluralRules: make(map[string]messageformat.PluralRule),
		logger:      logger.Discard(),
		defaultLang: DefaultLang,
		strategy:    StrategyFallback,
		maxDepth:    messageformat.DefaultMaxDepth,
	}

	for _, opt := range opts {
		if err := opt(i); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if i.defaultLang == "" {
		return nil, ErrEmptyLanguage
	}

	providerOpts := []messageformat.ProviderOption{messageformat.WithFormatterCacheSize(i.cacheSize)}
	for lang, rule := range i.pluralRules {
		providerOpts = append(providerOpts, messageformat.WithCustomPluralRule(lang, rule))
	}
	i.engine = messageformat.NewEngine(
		messageformat.WithProvider(messageformat.NewProvider(providerOpts...)),
		messageformat.WithTemplateCacheSize(i.cacheSize),
		messageformat.WithMaxDepth(i.maxDepth),
	)

	i.categories = categoryIndex(i.table)
	i.languages = buildLanguagesList(i.defaultLang, i.table)

	return i, nil
}

// WithDefaultLanguage sets the default/fallback language.
func WithDefaultLanguage(lang string) Option {
	return func(i *I18n) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		i.defaultLang = lang
		return nil
	}
}

// WithLanguage sets the language used when Translate is called without one.
// It defaults to the default language.
func WithLanguage(lang string) Option {
	return func(i *I18n) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		i.language = lang
		return nil
	}
}

// WithTable merges a translation table. Multiple tables may be added as long
// as they do not define different templates for the same key and language.
func WithTable(t Table) Option {
	return func(i *I18n) error {
		return i.table.merge(t)
	}
}

// WithTranslations adds messages for one language and category. The map can
// be nested; it is flattened into dot-separated keys.
//
//	i18n.WithTranslations("en", "ui", map[string]any{
//		"buttons": map[string]any{"save": "Save"},
//	})
//	// key "buttons.save"
func WithTranslations(lang, category string, translations map[string]any) Option {
	return func(i *I18n) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		if len(translations) == 0 {
			return nil
		}
		return i.table.merge(messagesTable(lang, category, translations))
	}
}

// WithMissingStrategy selects fallback (default) or strict handling of
// missing translations.
func WithMissingStrategy(s MissingStrategy) Option {
	return func(i *I18n) error {
		strategy, err := ParseMissingStrategy(string(s))
		if err != nil {
			return err
		}
		i.strategy = strategy
		return nil
	}
}

// WithFormatters adds "{name|hook}" formatter hooks on top of DefaultFormatters.
// A hook with an existing name replaces it.
func WithFormatters(formatters map[string]FormatterFunc) Option {
	return func(i *I18n) error {
		if i.formatters == nil {
			i.formatters = make(map[string]FormatterFunc, len(formatters))
		}
		for name, fn := range formatters {
			if fn == nil {
				delete(i.formatters, name)
				continue
			}
			i.formatters[name] = fn
		}
		return nil
	}
}

// WithLocales maps languages to the locales used for number, date and
// plural formatting, e.g. {"en": "en-GB"}.
func WithLocales(locales map[string]string) Option {
	return func(i *I18n) error {
		if i.locales == nil {
			i.locales = make(map[string]string, len(locales))
		}
		maps.Copy(i.locales, locales)
		return nil
	}
}

// WithCollectMissing keeps missing-translation events in memory, see
// MissingTranslations.
func WithCollectMissing(enabled bool) Option {
	return func(i *I18n) error {
		if enabled {
			i.collector = &missingCollector{}
		} else {
			i.collector = nil
		}
		return nil
	}
}

// WithMissingHandler sets a handler called for every missing translation.
// Useful for detecting untranslated keys during development or monitoring
// gaps in translations.
func WithMissingHandler(handler MissingHandler) Option {
	return func(i *I18n) error {
		i.onMissing = handler
		return nil
	}
}

// WithPluralRule registers a custom cardinal plural rule for a language.
// It replaces the CLDR rule for the language and its regional variants.
func WithPluralRule(lang string, rule messageformat.PluralRule) Option {
	return func(i *I18n) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		if rule == nil {
			return ErrNilPluralRule
		}
		i.pluralRules[lang] = rule
		return nil
	}
}

// WithMaxDepth limits how deeply branch messages may nest.
func WithMaxDepth(n int) Option {
	return func(i *I18n) error {
		if n > 0 {
			i.maxDepth = n
		}
		return nil
	}
}

// WithCacheSize bounds every template and formatter cache. Zero means unbounded.
func WithCacheSize(n int) Option {
	return func(i *I18n) error {
		i.cacheSize = max(n, 0)
		return nil
	}
}

// WithLogger sets the logger for missing translations (debug) and template
// errors (error). Logging is discarded by default.
func WithLogger(log *slog.Logger) Option {
	return func(i *I18n) error {
		if log != nil {
			i.logger = log
		}
		return nil
	}
}

// Translate renders key in lang with the given placeholder values. An empty
// lang means the configured language.
//
// Resolution: the exact language, then its base language ("de-AT" → "de"),
// then the default language. Missing translations are reported to the
// observers; under StrategyFallback the best available text or the bare key
// is returned, under StrategyStrict a *MissingTranslationError.
// Template syntax errors are always returned.
func (i *I18n) Translate(lang, key string, values ...M) (string, error) {
	return i.translate(lang, DefaultCategory, false, key, values)
}

// TranslateIn is Translate restricted to the keys of one category. Keys
// without a category belong to DefaultCategory.
func (i *I18n) TranslateIn(lang, category, key string, values ...M) (string, error) {
	return i.translate(lang, category, true, key, values)
}

func (i *I18n) translate(lang, category string, scoped bool, key string, values []M) (string, error) {
	if lang == "" {
		lang = i.Language()
	}
	event := MissingTranslation{
		Key:             key,
		Category:        category,
		Language:        lang,
		DefaultLanguage: i.defaultLang,
	}

	entry, ok := i.lookup(category, scoped, key)
	if !ok {
		event.Reason = MissingKey
		if err := i.reportMissing(event); err != nil {
			return "", err
		}
		return key, nil
	}
	if !scoped {
		event.Category = entry.Category
	}

	text, textLang := i.resolveText(entry, lang)
	if text == "" && textLang != i.defaultLang {
		event.Reason = MissingLanguage
		if err := i.reportMissing(event); err != nil {
			return "", err
		}
		text, textLang = entry.Text(i.defaultLang), i.defaultLang
	}
	if text == "" {
		event.Reason = MissingFallback
		if err := i.reportMissing(event); err != nil {
			return "", err
		}
		return key, nil
	}

	return i.render(key, textLang, text, values)
}

func (i *I18n) lookup(category string, scoped bool, key string) (Entry, bool) {
	if scoped {
		if _, ok := i.categories[category][key]; !ok {
			return Entry{}, false
		}
	}
	entry, ok := i.table[key]
	return entry, ok
}

// resolveText returns the template for lang or its base language.
// The returned language is the one the text belongs to; with no text it is
// lang itself, or the default language when lang falls back to it anyway.
func (i *I18n) resolveText(entry Entry, lang string) (string, string) {
	if text := entry.Text(lang); text != "" {
		return text, lang
	}
	base := baseLanguage(lang)
	if base != lang {
		if text := entry.Text(base); text != "" {
			return text, base
		}
	}
	if base == i.defaultLang {
		return "", i.defaultLang
	}
	return "", lang
}

func (i *I18n) render(key, lang, text string, values []M) (string, error) {
	vals, err := messageformat.ValuesOf(mergeValues(values))
	if err != nil {
		return "", fmt.Errorf("i18n: key %q: %w", key, err)
	}

	out, err := i.engine.Render(text, messageformat.RenderContext{
		Values:          vals,
		Formatters:      i.formatters,
		Locales:         i.locales,
		Key:             key,
		Language:        lang,
		DefaultLanguage: i.defaultLang,
	})
	if err != nil {
		var serr *messageformat.SyntaxError
		if errors.As(err, &serr) {
			i.logger.Error("template syntax error",
				slog.String("key", serr.Key),
				slog.String("language", serr.Language),
				slog.String("expression", serr.Expression),
				slog.Int("line", serr.Line),
				slog.Int("column", serr.Column),
				slog.String("error", serr.Err.Error()),
			)
		}
		return "", err
	}
	return out, nil
}

// Has reports whether key exists in the table.
func (i *I18n) Has(key string) bool {
	_, ok := i.table[key]
	return ok
}

// Entry returns the table entry for key.
func (i *I18n) Entry(key string) (Entry, bool) {
	e, ok := i.table[key]
	return e, ok
}

// Languages returns the languages present in the table, default language first.
func (i *I18n) Languages() []string {
	return i.languages
}

// Categories returns the categories present in the table, sorted.
func (i *I18n) Categories() []string {
	return slices.Sorted(maps.Keys(i.categories))
}

// DefaultLanguage returns the default/fallback language.
func (i *I18n) DefaultLanguage() string {
	return i.defaultLang
}

// Language returns the language used when Translate is called with "".
func (i *I18n) Language() string {
	if i.language == "" {
		return i.defaultLang
	}
	return i.language
}

// Strategy returns the missing translation strategy.
func (i *I18n) Strategy() MissingStrategy {
	return i.strategy
}

// Engine returns the rendering engine that owns the template and formatter caches.
func (i *I18n) Engine() *messageformat.Engine {
	return i.engine
}

func buildLanguagesList(defaultLang string, t Table) []string {
	langs := []string{defaultLang}
	for _, lang := range t.Languages() {
		if lang != defaultLang {
			langs = append(langs, lang)
		}
	}
	return langs
}

func mergeValues(values []M) map[string]any {
	switch len(values) {
	case 0:
		return nil
	case 1:
		return values[0]
	}
	merged := make(map[string]any)
	for _, v := range values {
		maps.Copy(merged, v)
	}
	return merged
}

func cloneFormatters(m map[string]FormatterFunc) map[string]FormatterFunc {
	if m == nil {
		return nil
	}
	return maps.Clone(m)
}

func cloneLocales(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	return maps.Clone(m)
}

// baseLanguage strips the region from a language tag (e.g., "en-US" → "en").
// Returns the input unchanged if there is no region.
func baseLanguage(lang string) string {
	if i := strings.IndexByte(lang, '-'); i > 0 {
		return lang[:i]
	}
	return lang
}

package messageformat

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dmitrymomot/msgfmt/pkg/cache"
)

// ResolveLocale picks the locale used for formatting. An entry in overrides
// for language wins; otherwise the language code itself is the locale. An
// empty language resolves through defaultLanguage the same way.
func ResolveLocale(lang, defaultLanguage string, overrides map[string]string) string {
	if lang == "" {
		lang = defaultLanguage
	}
	if locale, ok := overrides[lang]; ok && locale != "" {
		return locale
	}
	return lang
}

// Provider resolves locale-bound plural rules and formatters and memoizes
// them per locale and options. All methods are safe for concurrent use.
type Provider struct {
	rules       *cache.Memory[PluralRule]
	numbers     *cache.Memory[*NumberFormatter]
	dates       *cache.Memory[*DateTimeFormatter]
	customRules map[string]PluralRule
	formats     map[string]*LocaleFormat
}

// ProviderOption configures a Provider.
type ProviderOption func(*Provider)

// WithCustomPluralRule replaces the CLDR cardinal rule for a language.
// The rule applies to the exact locale and to every regional variant of it.
func WithCustomPluralRule(lang string, rule PluralRule) ProviderOption {
	return func(p *Provider) {
		if lang != "" && rule != nil {
			p.customRules[lang] = rule
		}
	}
}

// WithLocaleFormat registers currency and date conventions for a locale,
// overriding the bundled presets.
func WithLocaleFormat(locale string, lf *LocaleFormat) ProviderOption {
	return func(p *Provider) {
		if locale != "" && lf != nil {
			p.formats[locale] = lf
		}
	}
}

// WithFormatterCacheSize bounds each formatter cache. Zero means unbounded.
func WithFormatterCacheSize(n int) ProviderOption {
	return func(p *Provider) {
		p.rules = cache.NewMemory[PluralRule](cache.WithMaxEntries(n))
		p.numbers = cache.NewMemory[*NumberFormatter](cache.WithMaxEntries(n))
		p.dates = cache.NewMemory[*DateTimeFormatter](cache.WithMaxEntries(n))
	}
}

// NewProvider creates a Provider with empty caches.
func NewProvider(opts ...ProviderOption) *Provider {
	p := &Provider{
		rules:       cache.NewMemory[PluralRule](),
		numbers:     cache.NewMemory[*NumberFormatter](),
		dates:       cache.NewMemory[*DateTimeFormatter](),
		customRules: make(map[string]PluralRule),
		formats:     make(map[string]*LocaleFormat),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Reset empties the rule and formatter caches.
func (p *Provider) Reset() {
	p.rules.Clear()
	p.numbers.Clear()
	p.dates.Clear()
}

// PluralRule returns the plural rule of the given kind for locale.
func (p *Provider) PluralRule(locale string, kind PluralKind) PluralRule {
	rule, _ := p.rules.GetOrSet(kind.String()+"|"+locale, func() (PluralRule, error) {
		if kind == Cardinal {
			if custom, ok := p.customRule(locale); ok {
				return custom, nil
			}
		}
		return CLDRPluralRule(parseTag(locale), kind), nil
	})
	return rule
}

// PluralCategories reports the categories locale uses for kind.
func (p *Provider) PluralCategories(locale string, kind PluralKind) []string {
	return PluralCategories(p.PluralRule(locale, kind))
}

// Number returns a number formatter for locale and opts.
func (p *Provider) Number(locale string, opts NumberOptions) *NumberFormatter {
	f, _ := p.numbers.GetOrSet(locale+"|"+opts.signature(), func() (*NumberFormatter, error) {
		if opts.Style == "" {
			opts.Style = NumberDecimal
		}
		return &NumberFormatter{
			printer: message.NewPrinter(parseTag(locale)),
			format:  p.LocaleFormat(locale),
			options: opts,
		}, nil
	})
	return f
}

// DateTime returns a date or time formatter for locale and opts.
func (p *Provider) DateTime(locale string, opts DateTimeOptions) *DateTimeFormatter {
	f, _ := p.dates.GetOrSet(locale+"|"+opts.signature(), func() (*DateTimeFormatter, error) {
		return &DateTimeFormatter{format: p.LocaleFormat(locale), options: opts}, nil
	})
	return f
}

// LocaleFormat returns the currency and date conventions for locale,
// falling back from the full tag to its base language and then to English.
func (p *Provider) LocaleFormat(locale string) *LocaleFormat {
	if lf, ok := p.formats[locale]; ok {
		return lf
	}
	tag := parseTag(locale)
	base, _ := tag.Base()
	for _, candidate := range []string{tag.String(), base.String()} {
		if lf, ok := p.formats[candidate]; ok {
			return lf
		}
		if lf, ok := localeFormats[candidate]; ok {
			return lf
		}
	}
	return localeFormats["en"]
}

func (p *Provider) customRule(locale string) (PluralRule, bool) {
	if rule, ok := p.customRules[locale]; ok {
		return rule, true
	}
	base, _ := parseTag(locale).Base()
	rule, ok := p.customRules[base.String()]
	return rule, ok
}

// parseTag parses a locale identifier. Unknown or malformed identifiers
// yield the undetermined tag, which formats with root locale data.
func parseTag(locale string) language.Tag {
	tag, err := language.Parse(locale)
	if err != nil {
		return language.Und
	}
	return tag
}

package i18n

import (
	"time"

	"github.com/dmitrymomot/msgfmt/pkg/messageformat"
)

// Translator provides a simplified translation interface with a fixed language and category context.
// It wraps an I18n instance and eliminates the need to specify language and category for each translation.
type Translator struct {
	i18n     *I18n
	language string
	category string
	scoped   bool
}

// NewTranslator creates a Translator bound to language. If language is
// empty, it defaults to the I18n instance's current language. With a
// category, lookups are restricted to that category; without one they see
// the whole table.
func NewTranslator(i18n *I18n, language string, category ...string) *Translator {
	if i18n == nil {
		panic("i18n: service is not provided")
	}
	if language == "" {
		language = i18n.Language()
	}
	t := &Translator{i18n: i18n, language: language}
	if len(category) > 0 {
		t.category = category[0]
		t.scoped = true
	}
	return t
}

// Translate renders key using the translator's language and category context.
func (t *Translator) Translate(key string, values ...M) (string, error) {
	return t.i18n.translate(t.language, t.category, t.scoped, key, values)
}

// TranslateMessage translates a key with a single placeholder map. It falls
// back to the key on error, which suits validation message callbacks.
func (t *Translator) TranslateMessage(key string, values map[string]any) string {
	out, err := t.Translate(key, values)
	if err != nil {
		return key
	}
	return out
}

// FormatNumber formats n with the locale's decimal format.
func (t *Translator) FormatNumber(n float64) string {
	return t.provider().Number(t.locale(), messageformat.NumberOptions{Style: messageformat.NumberDecimal}).Format(n)
}

// FormatCurrency formats a currency amount with locale-specific formatting.
func (t *Translator) FormatCurrency(amount float64) string {
	return t.provider().Number(t.locale(), messageformat.NumberOptions{Style: messageformat.NumberCurrency}).Format(amount)
}

// FormatPercent formats a percentage with locale-specific formatting.
// The input should be a decimal (0.5 for 50%).
func (t *Translator) FormatPercent(n float64) string {
	return t.provider().Number(t.locale(), messageformat.NumberOptions{Style: messageformat.NumberPercent}).Format(n)
}

// FormatDate formats a date in the given style.
func (t *Translator) FormatDate(date time.Time, style messageformat.DateTimeStyle) string {
	opts := messageformat.DateTimeOptions{Field: messageformat.FieldDate, Style: style}
	return t.provider().DateTime(t.locale(), opts).Format(date)
}

// FormatTime formats a time of day in the given style.
func (t *Translator) FormatTime(tm time.Time, style messageformat.DateTimeStyle) string {
	opts := messageformat.DateTimeOptions{Field: messageformat.FieldTime, Style: style}
	return t.provider().DateTime(t.locale(), opts).Format(tm)
}

// Language returns the translator's language.
func (t *Translator) Language() string {
	return t.language
}

// Category returns the translator's category and whether lookups are scoped to it.
func (t *Translator) Category() (string, bool) {
	return t.category, t.scoped
}

// Locale returns the locale used for formatting.
func (t *Translator) Locale() string {
	return t.locale()
}

func (t *Translator) locale() string {
	return messageformat.ResolveLocale(t.language, t.i18n.defaultLang, t.i18n.locales)
}

func (t *Translator) provider() *messageformat.Provider {
	return t.i18n.engine.Provider()
}

package i18n

import (
	"golang.org/x/text/language"
)

// maxAcceptLanguageLength prevents DoS attacks through oversized Accept-Language headers.
const maxAcceptLanguageLength = 4096

// LanguageMatcher picks the best available language for an Accept-Language
// header using CLDR matching: "de-AT" matches "de", "en-US" matches "en-GB",
// and quality values are honoured. It is safe for concurrent use.
type LanguageMatcher struct {
	matcher   language.Matcher
	available []string
}

// NewLanguageMatcher creates a matcher for the available languages. The
// first language is the fallback when nothing matches.
func NewLanguageMatcher(available []string) *LanguageMatcher {
	tags := make([]language.Tag, len(available))
	for idx, lang := range available {
		tag, err := language.Parse(lang)
		if err != nil {
			tag = language.Und
		}
		tags[idx] = tag
	}
	return &LanguageMatcher{
		matcher:   language.NewMatcher(tags),
		available: available,
	}
}

// Match returns the most applicable available language for header.
// If no match is found, it returns the first available language.
//
// Example header: "en-US,en;q=0.9,pl;q=0.8"
// Available: ["pl", "en", "de"]
// Returns: "en" (highest quality match)
func (m *LanguageMatcher) Match(header string) string {
	if lang, ok := m.Lookup(header); ok {
		return lang
	}
	if len(m.available) == 0 {
		return ""
	}
	return m.available[0]
}

// Lookup is Match without the fallback: it reports false when header is
// empty, malformed or matches none of the available languages. A single
// language tag such as a cookie value is a valid header.
func (m *LanguageMatcher) Lookup(header string) (string, bool) {
	if len(m.available) == 0 || header == "" {
		return "", false
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	desired, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(desired) == 0 {
		return "", false
	}

	_, idx, confidence := m.matcher.Match(desired...)
	if confidence == language.No || idx < 0 || idx >= len(m.available) {
		return "", false
	}
	return m.available[idx], true
}

// Languages returns the available languages in preference order.
func (m *LanguageMatcher) Languages() []string {
	return m.available
}

// NegotiateLanguage is a one-shot form of LanguageMatcher.Match.
func NegotiateLanguage(header string, available []string) string {
	return NewLanguageMatcher(available).Match(header)
}

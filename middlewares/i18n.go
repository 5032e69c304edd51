package middlewares

import (
	"net/http"

	"github.com/dmitrymomot/msgfmt/pkg/i18n"
)

// DefaultLanguageCookie is the cookie read by the default extractor chain.
const DefaultLanguageCookie = "lang"

// I18nConfig configures the I18n middleware.
type I18nConfig struct {
	Category        string
	Extractor       Extractor
	ContentLanguage bool

	scoped       bool
	extractorSet bool
}

// I18nOption configures I18nConfig.
type I18nOption func(*I18nConfig)

// WithI18nCategory restricts the request translator to one category.
func WithI18nCategory(category string) I18nOption {
	return func(cfg *I18nConfig) {
		cfg.Category = category
		cfg.scoped = true
	}
}

// WithI18nExtractor sets a custom language extractor chain.
func WithI18nExtractor(ext Extractor) I18nOption {
	return func(cfg *I18nConfig) {
		cfg.Extractor = ext
		cfg.extractorSet = true
	}
}

// WithI18nContentLanguage sets the Content-Language response header to the
// resolved language.
func WithI18nContentLanguage() I18nOption {
	return func(cfg *I18nConfig) {
		cfg.ContentLanguage = true
	}
}

// I18n returns middleware that resolves the user's language, creates a
// Translator, and stores both in the request context.
//
// Candidate values from the extractor chain are matched against the
// languages of svc ("de-AT" selects "de"); values that match nothing are
// skipped. Without a match the default language is used.
// The default chain is: "lang" cookie, then Accept-Language.
func I18n(svc *i18n.I18n, opts ...I18nOption) func(http.Handler) http.Handler {
	cfg := &I18nConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	if !cfg.extractorSet {
		cfg.Extractor = NewExtractor(
			FromCookie(DefaultLanguageCookie),
			FromAcceptLanguage(),
		)
	}

	matcher := i18n.NewLanguageMatcher(svc.Languages())

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang, ok := cfg.Extractor.ExtractMatch(r, matcher.Lookup)
			if !ok {
				lang = svc.DefaultLanguage()
			}

			var tr *i18n.Translator
			if cfg.scoped {
				tr = i18n.NewTranslator(svc, lang, cfg.Category)
			} else {
				tr = i18n.NewTranslator(svc, lang)
			}

			if cfg.ContentLanguage {
				w.Header().Set("Content-Language", lang)
			}

			next.ServeHTTP(w, r.WithContext(i18n.WithTranslatorContext(r.Context(), tr)))
		})
	}
}

// GetTranslator extracts the Translator from the request context.
// Returns nil if the I18n middleware is not used.
func GetTranslator(r *http.Request) *i18n.Translator {
	return i18n.TranslatorFromContext(r.Context())
}

// GetLanguage extracts the resolved language from the request context.
// Returns an empty string if the I18n middleware is not used.
func GetLanguage(r *http.Request) string {
	return i18n.LanguageFromContext(r.Context())
}

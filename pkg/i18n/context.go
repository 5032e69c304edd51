package i18n

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/msgfmt/pkg/logger"
)

type translatorKey struct{}

type languageKey struct{}

// WithTranslatorContext returns a copy of ctx carrying tr and its language.
func WithTranslatorContext(ctx context.Context, tr *Translator) context.Context {
	ctx = context.WithValue(ctx, translatorKey{}, tr)
	return context.WithValue(ctx, languageKey{}, tr.Language())
}

// TranslatorFromContext returns the Translator stored in ctx, or nil.
func TranslatorFromContext(ctx context.Context) *Translator {
	if tr, ok := ctx.Value(translatorKey{}).(*Translator); ok {
		return tr
	}
	return nil
}

// LanguageFromContext returns the language stored in ctx, or "".
func LanguageFromContext(ctx context.Context) string {
	if lang, ok := ctx.Value(languageKey{}).(string); ok {
		return lang
	}
	return ""
}

// LanguageExtractor adds the request language to log records.
func LanguageExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		lang := LanguageFromContext(ctx)
		if lang == "" {
			return slog.Attr{}, false
		}
		return slog.String("language", lang), true
	}
}

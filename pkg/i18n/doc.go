// Package i18n binds a translation table to a language fallback policy and
// renders its ICU-style templates through package messageformat.
//
// An I18n instance is immutable after creation and safe for concurrent use.
// It owns the template and formatter caches, so create one per table and
// share it.
//
// # Basic Usage
//
//	svc, err := i18n.New(
//		i18n.WithDefaultLanguage("en"),
//		i18n.WithTable(i18n.Table{
//			"inbox.summary": {
//				Category: "inbox",
//				Values: map[string]string{
//					"en": "{count, plural, =0 {No messages} one {# message} other {# messages}}",
//					"de": "{count, plural, =0 {Keine Nachrichten} one {# Nachricht} other {# Nachrichten}}",
//				},
//			},
//		}),
//	)
//
//	msg, err := svc.Translate("de", "inbox.summary", i18n.M{"count": 3})
//	// msg == "3 Nachrichten"
//
// # Resolution and missing translations
//
// Translate looks up the key, then the template for the requested language,
// its base language ("de-AT" → "de") and finally the default language. Each
// gap is reported as a MissingTranslation with reason MissingKey,
// MissingLanguage or MissingFallback to the handler set with
// WithMissingHandler and to the in-memory collector enabled with
// WithCollectMissing.
//
// Under StrategyFallback (the default) Translate degrades to the default
// language text or the bare key. Under StrategyStrict it returns a
// *MissingTranslationError matching ErrMissingTranslation.
//
// Template syntax errors (*messageformat.SyntaxError) are never hidden by
// the fallback policy.
//
// # Categories
//
// TranslateIn restricts lookups to the keys of one category. Keys without a
// category live in DefaultCategory:
//
//	text, err := svc.TranslateIn("en", "inbox", "inbox.summary", i18n.M{"count": 1})
//
// # Formatter hooks
//
// Simple placeholders may name a hook: "Hello, {name|title}!". The built-in
// hooks are listed in DefaultFormatters; WithFormatters adds more.
//
// # Loading tables
//
// WithTableFile reads a whole table document (JSON, YAML or TOML).
// WithTableDir reads per-language message files laid out as
// {lang}/{category}.{json,yaml,yml,toml}:
//
//	//go:embed translations
//	var translationsFS embed.FS
//
//	subFS, _ := fs.Sub(translationsFS, "translations")
//	svc, err := i18n.New(i18n.WithTableDir(subFS))
//
// # Reconfiguring
//
// With returns a copy that shares the table and caches. Every Update field
// is tri-state, so "leave as is", "reset" and "replace" are distinct:
//
//	strict, err := svc.With(i18n.Update{
//		MissingStrategy: i18n.Set(i18n.StrategyStrict),
//		OnMissing:       i18n.Clear[i18n.MissingHandler](),
//	})
package i18n

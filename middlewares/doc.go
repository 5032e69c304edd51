// Package middlewares provides net/http middleware for msgfmt applications.
//
// # I18n
//
// I18n middleware resolves the request language, binds an i18n.Translator
// to it and stores both in the request context. It works with any router
// that accepts func(http.Handler) http.Handler, chi included.
//
//	svc, err := i18n.New(i18n.WithTableDir(os.DirFS("locales")))
//	if err != nil {
//	    return err
//	}
//
//	r := chi.NewRouter()
//	r.Use(middlewares.I18n(svc, middlewares.WithI18nContentLanguage()))
//	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
//	    msg, err := middlewares.GetTranslator(r).Translate("inbox.summary", i18n.M{"count": 3})
//	    ...
//	})
//
// By default the language comes from the "lang" cookie, then from the
// Accept-Language header. Every candidate is matched against the languages
// of the translation table, so "de-AT" selects "de" and unknown values are
// skipped. When nothing matches, the default language is used.
//
// # Extractors
//
// An Extractor tries sources in order and returns the first hit:
//
//	middlewares.I18n(svc, middlewares.WithI18nExtractor(
//	    middlewares.NewExtractor(
//	        middlewares.FromURLParam("lang"), // chi "/{lang}/..."
//	        middlewares.FromQuery("lang"),
//	        middlewares.FromCookie("lang"),
//	        middlewares.FromAcceptLanguage(),
//	    ),
//	))
//
// Use i18n.LanguageExtractor with logger.New to add the resolved language
// to every log record written with the request context.
package middlewares

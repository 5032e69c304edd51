package middlewares

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// ExtractorSource extracts a value from the request.
// Returns the value and true if found, or ("", false) if not present.
type ExtractorSource = func(r *http.Request) (string, bool)

// Extractor tries multiple sources in order and returns the first match.
type Extractor struct {
	sources []ExtractorSource
}

// NewExtractor creates an Extractor that tries the given sources in order.
func NewExtractor(sources ...ExtractorSource) Extractor {
	return Extractor{sources: sources}
}

// Extract iterates sources in order and returns the first non-empty value.
// Returns ("", false) if all sources miss.
func (e Extractor) Extract(r *http.Request) (string, bool) {
	return e.ExtractMatch(r, nil)
}

// ExtractMatch is Extract with a filter: a source value is used only if
// match accepts it, and the value returned by match replaces it.
// A nil match accepts every value.
func (e Extractor) ExtractMatch(r *http.Request, match func(string) (string, bool)) (string, bool) {
	for _, src := range e.sources {
		v, ok := src(r)
		if !ok || v == "" {
			continue
		}
		if match == nil {
			return v, true
		}
		if m, ok := match(v); ok {
			return m, true
		}
	}
	return "", false
}

// FromHeader returns a source that reads from a request header.
func FromHeader(name string) ExtractorSource {
	return func(r *http.Request) (string, bool) {
		v := r.Header.Get(name)
		if v == "" {
			return "", false
		}
		return v, true
	}
}

// FromAcceptLanguage returns a source that reads the Accept-Language header.
func FromAcceptLanguage() ExtractorSource {
	return FromHeader("Accept-Language")
}

// FromQuery returns a source that reads from a query parameter.
func FromQuery(name string) ExtractorSource {
	return func(r *http.Request) (string, bool) {
		v := r.URL.Query().Get(name)
		if v == "" {
			return "", false
		}
		return v, true
	}
}

// FromCookie returns a source that reads from a plain cookie.
func FromCookie(name string) ExtractorSource {
	return func(r *http.Request) (string, bool) {
		c, err := r.Cookie(name)
		if err != nil || c.Value == "" {
			return "", false
		}
		return c.Value, true
	}
}

// FromURLParam returns a source that reads a chi URL parameter, e.g. "lang"
// in "/{lang}/docs".
func FromURLParam(name string) ExtractorSource {
	return func(r *http.Request) (string, bool) {
		v := chi.URLParam(r, name)
		if v == "" {
			return "", false
		}
		return v, true
	}
}

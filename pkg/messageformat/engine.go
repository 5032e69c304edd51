package messageformat

import (
	"errors"

	"github.com/dmitrymomot/msgfmt/pkg/cache"
)

// DefaultMaxDepth is the default limit for nested branch rendering.
const DefaultMaxDepth = 32

// FormatContext describes where a formatter hook is being applied.
type FormatContext struct {
	Key         string
	Language    string
	Locale      string
	Placeholder string
}

// FormatterFunc is a named hook applied by "{name|hook}" placeholders.
type FormatterFunc func(v Value, fc FormatContext) string

// RenderContext is the per-call input of Render.
type RenderContext struct {
	// Values holds placeholder values by name.
	Values Values
	// Formatters holds hooks for "{name|hook}" placeholders.
	Formatters map[string]FormatterFunc
	// Locales maps a language to the locale used for formatting it.
	Locales map[string]string
	// Key identifies the template in error reports.
	Key             string
	Language        string
	DefaultLanguage string
}

// Engine compiles and renders templates. It owns the compiled-template cache
// and a formatter Provider; share one Engine to share the caches.
// Engine is safe for concurrent use.
type Engine struct {
	templates *cache.Memory[*CompiledTemplate]
	provider  *Provider
	maxDepth  int
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithMaxDepth sets how deeply branch messages may nest before rendering
// fails with ErrRecursionLimit. Values below 1 are ignored.
func WithMaxDepth(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.maxDepth = n
		}
	}
}

// WithTemplateCacheSize bounds the compiled-template cache.
// Zero means unbounded.
func WithTemplateCacheSize(n int) EngineOption {
	return func(e *Engine) {
		e.templates = cache.NewMemory[*CompiledTemplate](cache.WithMaxEntries(n))
	}
}

// WithProvider sets the formatter provider, for example one configured
// with custom plural rules.
func WithProvider(p *Provider) EngineOption {
	return func(e *Engine) {
		if p != nil {
			e.provider = p
		}
	}
}

// NewEngine creates an Engine with fresh caches.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		templates: cache.NewMemory[*CompiledTemplate](),
		maxDepth:  DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.provider == nil {
		e.provider = NewProvider()
	}
	return e
}

// Provider returns the engine's formatter provider.
func (e *Engine) Provider() *Provider {
	return e.provider
}

// Compile returns the cached token sequence of template, compiling it on
// first use. The returned value is shared and must not be modified.
func (e *Engine) Compile(template string) (*CompiledTemplate, error) {
	ct, serr := e.compile(template)
	if serr != nil {
		serr.Line, serr.Column = position(template, serr.Offset)
		return nil, serr
	}
	return ct, nil
}

// compile returns a private copy of any syntax error so callers may
// annotate it; the cache loader's error value is shared between callers.
func (e *Engine) compile(source string) (*CompiledTemplate, *SyntaxError) {
	ct, err := e.templates.GetOrSet(source, func() (*CompiledTemplate, error) {
		ct, serr := compile(source)
		if serr != nil {
			return nil, serr
		}
		return ct, nil
	})
	if err != nil {
		var serr *SyntaxError
		if errors.As(err, &serr) {
			cp := *serr
			return nil, &cp
		}
		return nil, &SyntaxError{Err: err}
	}
	return ct, nil
}

// Render renders template with the values in rc:
// ICU expressions are resolved first, then simple "{name}" and
// "{name|hook}" placeholders are substituted, and finally apostrophe
// escapes are removed.
//
// A plural or selectordinal argument whose value is missing or not a number
// fails with ErrInvalidValue.
func (e *Engine) Render(template string, rc RenderContext) (string, error) {
	r := &renderer{
		engine: e,
		rc:     &rc,
		locale: ResolveLocale(rc.Language, rc.DefaultLanguage, rc.Locales),
		root:   template,
	}
	out, err := r.render()
	if err != nil {
		return "", err
	}
	return out, nil
}

// CachedTemplates returns the number of compiled templates held in the cache.
func (e *Engine) CachedTemplates() int {
	return e.templates.Len()
}

// Reset drops compiled templates and the provider's cached rules and
// formatters. Custom rules and locale formats are kept.
func (e *Engine) Reset() {
	e.templates.Clear()
	e.provider.Reset()
}

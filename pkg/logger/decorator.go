package logger

import (
	"context"
	"log/slog"
)

// ContextExtractor extracts a slog attribute from context.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// contextHandler adds attributes taken from the log call's context.
// A record that already carries an attribute with the same top-level key
// keeps its own value, so "language" logged explicitly by the translator
// is not repeated by i18n.LanguageExtractor.
type contextHandler struct {
	next       slog.Handler
	extractors []ContextExtractor
	// keys bound with WithAttrs at the top level.
	bound map[string]struct{}
	group bool
}

// NewContextHandler wraps next so that every record gets the attributes
// produced by extractors. Nil extractors are ignored.
func NewContextHandler(next slog.Handler, extractors ...ContextExtractor) slog.Handler {
	clean := make([]ContextExtractor, 0, len(extractors))
	for _, ex := range extractors {
		if ex != nil {
			clean = append(clean, ex)
		}
	}
	if len(clean) == 0 {
		return next
	}
	return &contextHandler{next: next, extractors: clean}
}

func (h *contextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *contextHandler) Handle(ctx context.Context, rec slog.Record) error {
	var present map[string]struct{}
	if !h.group {
		present = make(map[string]struct{}, rec.NumAttrs()+len(h.bound))
		for k := range h.bound {
			present[k] = struct{}{}
		}
		rec.Attrs(func(a slog.Attr) bool {
			present[a.Key] = struct{}{}
			return true
		})
	}

	for _, ex := range h.extractors {
		attr, ok := ex(ctx)
		if !ok {
			continue
		}
		if _, dup := present[attr.Key]; dup {
			continue
		}
		rec.AddAttrs(attr)
	}
	return h.next.Handle(ctx, rec)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := &contextHandler{
		next:       h.next.WithAttrs(attrs),
		extractors: h.extractors,
		group:      h.group,
		bound:      h.bound,
	}
	if !h.group {
		c.bound = make(map[string]struct{}, len(h.bound)+len(attrs))
		for k := range h.bound {
			c.bound[k] = struct{}{}
		}
		for _, a := range attrs {
			c.bound[a.Key] = struct{}{}
		}
	}
	return c
}

// WithGroup nests extracted attributes in the group like any other record
// attribute; duplicate detection only applies at the top level.
func (h *contextHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &contextHandler{
		next:       h.next.WithGroup(name),
		extractors: h.extractors,
		bound:      h.bound,
		group:      true,
	}
}

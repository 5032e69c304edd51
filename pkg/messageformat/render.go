package messageformat

import (
	"fmt"
	"strings"
)

type renderer struct {
	engine *Engine
	rc     *RenderContext
	locale string
	// root is the original template; all error offsets point into it.
	root string
}

func (r *renderer) render() (string, error) {
	var b strings.Builder
	if err := r.renderSource(&b, r.root, 0, 0, ""); err != nil {
		return "", err
	}
	out := r.replacePlaceholders(b.String())
	return Unescape(out), nil
}

// renderSource renders src, which starts at byte base of the root template.
// pound is the escaped text that replaces '#', empty outside plural branches.
func (r *renderer) renderSource(b *strings.Builder, src string, base, depth int, pound string) error {
	if depth > r.engine.maxDepth {
		return r.fail(ErrRecursionLimit, base, "", fmt.Sprintf("more than %d nested branches", r.engine.maxDepth))
	}

	ct, serr := r.engine.compile(src)
	if serr != nil {
		return r.locate(serr, base)
	}

	for _, tok := range ct.Tokens {
		switch tok.Kind {
		case TokenText:
			b.WriteString(tok.Text)
		case TokenPound:
			if pound == "" {
				b.WriteByte('#')
			} else {
				b.WriteString(pound)
			}
		case TokenExpression:
			if err := r.renderExpression(b, tok.Expr, base+tok.Offset, base, depth, pound); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *renderer) renderExpression(b *strings.Builder, expr *Expression, at, base, depth int, pound string) error {
	value := r.rc.Values[expr.Name]
	provider := r.engine.provider

	switch expr.Type {
	case TypeSelect:
		selector := PluralOther
		if value.IsValid() {
			selector = value.String()
		}
		branch, ok := expr.Options.Lookup(selector)
		if !ok {
			branch, ok = expr.Options.Lookup(PluralOther)
		}
		if !ok {
			return r.fail(ErrNoMatchingBranch, at, expr.Raw,
				fmt.Sprintf("no branch for %q, add an 'other' branch", selector))
		}
		return r.renderSource(b, branch.Text, base+expr.OptionsOffset+branch.Offset, depth+1, pound)

	case TypePlural, TypeSelectOrdinal:
		n, ok := value.Float()
		if !ok {
			return r.fail(ErrInvalidValue, at, expr.Raw,
				fmt.Sprintf("value of %q is not a number", expr.Name))
		}
		adjusted := n - expr.Options.Offset

		branch, ok := expr.Options.Lookup("=" + formatPlain(adjusted))
		var category string
		if !ok {
			kind := Cardinal
			if expr.Type == TypeSelectOrdinal {
				kind = Ordinal
			}
			category = provider.PluralRule(r.locale, kind)(adjusted)
			branch, ok = expr.Options.Lookup(category)
		}
		if !ok {
			branch, ok = expr.Options.Lookup(PluralOther)
		}
		if !ok {
			return r.fail(ErrNoMatchingBranch, at, expr.Raw,
				fmt.Sprintf("no branch for %s (category %q), add an 'other' branch", formatPlain(adjusted), category))
		}
		hash := Escape(provider.Number(r.locale, NumberOptions{}).Format(adjusted))
		return r.renderSource(b, branch.Text, base+expr.OptionsOffset+branch.Offset, depth+1, hash)

	case TypeNumber:
		n, ok := value.Float()
		if !ok {
			return r.fail(ErrInvalidValue, at, expr.Raw,
				fmt.Sprintf("value of %q is not a number", expr.Name))
		}
		if expr.Number == nil {
			return r.fail(ErrInvalidStyle, at, expr.Raw, "")
		}
		b.WriteString(Escape(provider.Number(r.locale, *expr.Number).Format(n)))

	case TypeDate, TypeTime:
		t, ok := value.Time()
		if !ok {
			return r.fail(ErrInvalidValue, at, expr.Raw,
				fmt.Sprintf("value of %q is not a timestamp", expr.Name))
		}
		if expr.DateTime == nil {
			return r.fail(ErrInvalidStyle, at, expr.Raw, "")
		}
		b.WriteString(Escape(provider.DateTime(r.locale, *expr.DateTime).Format(t)))
	}
	return nil
}

func (r *renderer) fail(cause error, offset int, expr, detail string) *SyntaxError {
	line, column := position(r.root, offset)
	return &SyntaxError{
		Err:        cause,
		Key:        r.rc.Key,
		Language:   r.rc.Language,
		Expression: expr,
		Detail:     detail,
		Offset:     offset,
		Line:       line,
		Column:     column,
	}
}

// locate moves a compile error of a sub-message into root coordinates.
func (r *renderer) locate(serr *SyntaxError, base int) *SyntaxError {
	serr.Offset += base
	serr.Line, serr.Column = position(r.root, serr.Offset)
	serr.Key = r.rc.Key
	serr.Language = r.rc.Language
	return serr
}

package messageformat

import (
	"strings"
)

// replacePlaceholders substitutes simple "{name}" and "{name|hook}"
// placeholders in rendered text. Quoted braces are skipped, and a
// placeholder without a value is left untouched so that Unescape can
// still turn it into literal text.
//
// Example:
//
//	text:   "Hello, {name}! Last seen {when|date}."
//	values: Values{"name": String("John"), "when": Time(t)}
func (r *renderer) replacePlaceholders(text string) string {
	if strings.IndexByte(text, '{') < 0 {
		return text
	}

	mask := quoteMask(text)
	var b strings.Builder
	b.Grow(len(text))

	for i := 0; i < len(text); i++ {
		c := text[i]
		if c != '{' || mask[i] {
			b.WriteByte(c)
			continue
		}

		end := i + 1
		for end < len(text) && (mask[end] || (text[end] != '{' && text[end] != '}')) {
			end++
		}
		if end >= len(text) || text[end] != '}' {
			b.WriteByte(c)
			continue
		}

		name, hook, ok := parsePlaceholder(text[i+1 : end])
		value, exists := r.rc.Values[name]
		if !ok || !exists || !value.IsValid() {
			b.WriteByte(c)
			continue
		}

		b.WriteString(Escape(r.formatPlaceholder(name, hook, value)))
		i = end
	}

	return b.String()
}

func (r *renderer) formatPlaceholder(name, hook string, value Value) string {
	if hook != "" {
		if fn := r.rc.Formatters[hook]; fn != nil {
			return fn(value, FormatContext{
				Key:         r.rc.Key,
				Language:    r.rc.Language,
				Locale:      r.locale,
				Placeholder: name,
			})
		}
	}
	return value.String()
}

// parsePlaceholder splits "name" or "name|hook", allowing spaces around
// both parts.
func parsePlaceholder(inner string) (name, hook string, ok bool) {
	name, hook, hasHook := strings.Cut(inner, "|")
	name = strings.TrimSpace(name)
	hook = strings.TrimSpace(hook)
	if !isPlaceholderName(name) {
		return "", "", false
	}
	if hasHook && !isPlaceholderName(hook) {
		return "", "", false
	}
	return name, hook, true
}

func isPlaceholderName(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '_', r == '.', r == '-':
		default:
			return false
		}
	}
	return true
}

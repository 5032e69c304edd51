package messageformat

import "strings"

// quoteMask reports, for every byte of text, whether it sits inside a quoted
// run. A lone apostrophe toggles quoting and is itself never quoted. A
// doubled apostrophe is a literal and leaves the state unchanged.
func quoteMask(text string) []bool {
	mask := make([]bool, len(text))
	quoted := false
	for i := 0; i < len(text); i++ {
		if text[i] != '\'' {
			mask[i] = quoted
			continue
		}
		if i+1 < len(text) && text[i+1] == '\'' {
			mask[i], mask[i+1] = quoted, quoted
			i++
			continue
		}
		quoted = !quoted
	}
	return mask
}

// IsQuoted reports whether the byte at index lies inside an apostrophe-quoted
// run. Syntax characters at quoted positions are literal text.
func IsQuoted(text string, index int) bool {
	if index < 0 || index >= len(text) {
		return false
	}
	return quoteMask(text[:min(index+2, len(text))])[index]
}

// Unescape removes quoting apostrophes and collapses doubled apostrophes.
// It is the last step of rendering and runs once on the final text.
//
//	Unescape("It''s working")               // It's working
//	Unescape("Use '{braces}' for literals") // Use {braces} for literals
func Unescape(text string) string {
	if strings.IndexByte(text, '\'') < 0 {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c != '\'' {
			b.WriteByte(c)
			continue
		}
		if i+1 < len(text) && text[i+1] == '\'' {
			b.WriteByte('\'')
			i++
		}
	}
	return b.String()
}

// Escape doubles every apostrophe so that s comes out of Unescape unchanged.
// Formatted values are escaped before they are spliced into rendered text.
func Escape(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

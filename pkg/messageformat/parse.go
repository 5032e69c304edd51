package messageformat

import (
	"regexp"
	"strconv"
	"strings"
)

// ExpressionType names the kind of an ICU expression.
type ExpressionType string

// Recognized expression types. Branch types select a sub-message,
// argument types format a single value.
const (
	TypePlural        ExpressionType = "plural"
	TypeSelect        ExpressionType = "select"
	TypeSelectOrdinal ExpressionType = "selectordinal"
	TypeNumber        ExpressionType = "number"
	TypeDate          ExpressionType = "date"
	TypeTime          ExpressionType = "time"
)

// IsBranch reports whether t selects between sub-messages.
func (t ExpressionType) IsBranch() bool {
	return t == TypePlural || t == TypeSelect || t == TypeSelectOrdinal
}

// IsArgument reports whether t formats a single value.
func (t ExpressionType) IsArgument() bool {
	return t == TypeNumber || t == TypeDate || t == TypeTime
}

func (t ExpressionType) valid() bool {
	return t.IsBranch() || t.IsArgument()
}

// ParsedExpression is the split form of "name, type, options".
type ParsedExpression struct {
	Name          string
	Type          ExpressionType
	OptionsSource string

	// OptionsOffset is the byte offset of OptionsSource inside the raw expression.
	OptionsOffset int
}

// Branch is one selector's raw sub-message.
type Branch struct {
	Text string
	// Offset is the byte offset of Text inside the options source.
	Offset int
}

// ParsedOptions holds the branches of a plural, select or selectordinal
// expression. An "other" branch is not required here; its absence only
// matters when no other branch matches at render time.
type ParsedOptions struct {
	Branches map[string]Branch
	Offset   float64
}

// Lookup returns the branch for selector.
func (o *ParsedOptions) Lookup(selector string) (Branch, bool) {
	b, ok := o.Branches[selector]
	return b, ok
}

// FindMatchingBrace returns the index of the '}' closing the '{' at open,
// or -1 when the expression is unterminated. Quoted braces are ignored.
func FindMatchingBrace(text string, open int) int {
	return findMatchingBrace(text, quoteMask(text), open)
}

// FindTopLevelComma returns the index of the first unquoted ',' at brace
// depth zero starting from from, or -1.
func FindTopLevelComma(text string, from int) int {
	return findTopLevelComma(text, quoteMask(text), from)
}

func findMatchingBrace(text string, mask []bool, open int) int {
	if open < 0 || open >= len(text) || text[open] != '{' || mask[open] {
		return -1
	}
	depth := 0
	for i := open; i < len(text); i++ {
		if mask[i] {
			continue
		}
		switch text[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func findTopLevelComma(text string, mask []bool, from int) int {
	if from < 0 {
		from = 0
	}
	depth := 0
	for i := from; i < len(text); i++ {
		if mask[i] {
			continue
		}
		switch text[i] {
		case '{':
			depth++
		case '}':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// ParseExpression splits the inside of a "{...}" block into name, type and
// options. It returns false for anything that is not an ICU expression, such
// as a plain "{name}" placeholder, so callers can leave it as text.
//
// Branch types need all three segments. Argument types may omit the style:
// "{price, number}" parses with an empty options source.
func ParseExpression(raw string) (ParsedExpression, bool) {
	return parseExpression(raw, quoteMask(raw))
}

func parseExpression(raw string, mask []bool) (ParsedExpression, bool) {
	first := findTopLevelComma(raw, mask, 0)
	if first < 0 {
		return ParsedExpression{}, false
	}

	name := strings.TrimSpace(raw[:first])
	if name == "" {
		return ParsedExpression{}, false
	}

	second := findTopLevelComma(raw, mask, first+1)
	if second < 0 {
		typ := ExpressionType(strings.TrimSpace(raw[first+1:]))
		if !typ.IsArgument() {
			return ParsedExpression{}, false
		}
		return ParsedExpression{Name: name, Type: typ, OptionsOffset: len(raw)}, true
	}

	typ := ExpressionType(strings.TrimSpace(raw[first+1 : second]))
	if !typ.valid() {
		return ParsedExpression{}, false
	}

	options := raw[second+1:]
	if strings.TrimSpace(options) == "" {
		return ParsedExpression{}, false
	}

	return ParsedExpression{
		Name:          name,
		Type:          typ,
		OptionsSource: options,
		OptionsOffset: second + 1,
	}, true
}

var (
	offsetDirective = regexp.MustCompile(`^\s*offset\s*:`)
	offsetValue     = regexp.MustCompile(`^\s*offset\s*:\s*(-?\d+(?:\.\d+)?)`)
)

// ParseOffset reads an optional leading "offset: N" directive. Without a
// directive it returns offset 0 and start 0. ok is false when the directive
// is present but its value is not a number.
func ParseOffset(src string) (offset float64, start int, ok bool) {
	if !offsetDirective.MatchString(src) {
		return 0, 0, true
	}
	m := offsetValue.FindStringSubmatchIndex(src)
	if m == nil {
		return 0, 0, false
	}
	end := m[1]
	// "offset:1x" is malformed, the number must be followed by a separator.
	if end < len(src) && !isSpace(src[end]) && src[end] != '{' {
		return 0, 0, false
	}
	v, err := strconv.ParseFloat(src[m[2]:m[3]], 64)
	if err != nil {
		return 0, 0, false
	}
	return v, end, true
}

// ParseOptions parses "selector {message} selector {message} ..." with an
// optional leading offset directive. It returns false when an offset is not
// allowed, a selector has no message, a message is unterminated, or no
// selector was found at all.
func ParseOptions(src string, allowOffset bool) (*ParsedOptions, bool) {
	return parseOptions(src, quoteMask(src), allowOffset)
}

func parseOptions(src string, mask []bool, allowOffset bool) (*ParsedOptions, bool) {
	offset, i, ok := ParseOffset(src)
	if !ok {
		return nil, false
	}
	if i > 0 && !allowOffset {
		return nil, false
	}

	opts := &ParsedOptions{Branches: make(map[string]Branch), Offset: offset}
	n := len(src)

	for {
		for i < n && isSpace(src[i]) {
			i++
		}
		if i >= n {
			break
		}

		start := i
		for i < n && !isSpace(src[i]) && !(src[i] == '{' && !mask[i]) {
			i++
		}
		selector := src[start:i]
		if selector == "" {
			return nil, false
		}

		for i < n && isSpace(src[i]) {
			i++
		}
		if i >= n || src[i] != '{' || mask[i] {
			return nil, false
		}

		end := findMatchingBrace(src, mask, i)
		if end < 0 {
			return nil, false
		}

		opts.Branches[selector] = Branch{Text: src[i+1 : end], Offset: i + 1}
		i = end + 1
	}

	if len(opts.Branches) == 0 {
		return nil, false
	}
	return opts, true
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

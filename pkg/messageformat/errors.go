package messageformat

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Sentinel causes carried by SyntaxError. Use errors.Is to test for them.
var (
	ErrUnterminatedExpression = errors.New("messageformat: unterminated expression")
	ErrUnmatchedBrace         = errors.New("messageformat: unmatched closing brace")
	ErrUnsupportedExpression  = errors.New("messageformat: unsupported expression type")
	ErrInvalidOptions         = errors.New("messageformat: malformed option list")
	ErrInvalidStyle           = errors.New("messageformat: unknown format style")
	ErrNoMatchingBranch       = errors.New("messageformat: no matching branch")
	ErrInvalidValue           = errors.New("messageformat: invalid value")
	ErrRecursionLimit         = errors.New("messageformat: nesting too deep")
	ErrUnsupportedValue       = errors.New("messageformat: unsupported value type")
)

// SyntaxError reports a template authoring problem. Line and Column point
// into the original template so the source text can be fixed; both are
// 1-based and Column counts characters, not bytes.
type SyntaxError struct {
	Err        error
	Key        string
	Language   string
	Expression string
	Detail     string
	Offset     int
	Line       int
	Column     int
}

func (e *SyntaxError) Error() string {
	var b strings.Builder
	b.WriteString(e.Err.Error())
	if e.Expression != "" {
		fmt.Fprintf(&b, " in %q", e.Expression)
	}
	fmt.Fprintf(&b, " at line %d, column %d", e.Line, e.Column)
	if e.Key != "" || e.Language != "" {
		fmt.Fprintf(&b, " (key %q, language %q)", e.Key, e.Language)
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	return b.String()
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// position converts a byte offset into a 1-based line and column.
func position(text string, offset int) (line, column int) {
	if offset > len(text) {
		offset = len(text)
	}
	if offset < 0 {
		offset = 0
	}
	head := text[:offset]
	line = strings.Count(head, "\n") + 1
	if i := strings.LastIndexByte(head, '\n'); i >= 0 {
		head = head[i+1:]
	}
	return line, utf8.RuneCountInString(head) + 1
}

package messageformat

import (
	"fmt"
	"strings"
)

// TokenKind identifies a token of a compiled template.
type TokenKind uint8

const (
	// TokenText is literal text, inserted verbatim.
	TokenText TokenKind = iota
	// TokenPound is an unquoted '#'. Inside a plural branch it renders the
	// offset-adjusted number, anywhere else a literal '#'.
	TokenPound
	// TokenExpression is a branch or argument expression.
	TokenExpression
)

// Expression is a parsed ICU expression. Options is set for branch types,
// Number or DateTime for argument types.
type Expression struct {
	Options       *ParsedOptions
	Number        *NumberOptions
	DateTime      *DateTimeOptions
	Raw           string
	Name          string
	Type          ExpressionType
	OptionsSource string
	// OptionsOffset is the byte offset of OptionsSource within the compiled source.
	OptionsOffset int
}

// Token is one element of a compiled template.
type Token struct {
	Expr *Expression
	Text string
	// Offset is the byte offset of the token within the compiled source.
	// For expressions it points at the opening brace.
	Offset int
	Kind   TokenKind
}

// CompiledTemplate is the token sequence of one template string. It is
// shared through the engine cache and must never be modified.
type CompiledTemplate struct {
	Source string
	Tokens []Token
}

// compile tokenizes source. Errors carry offsets relative to source; the
// renderer shifts them into the coordinates of the original template.
func compile(source string) (*CompiledTemplate, *SyntaxError) {
	mask := quoteMask(source)
	ct := &CompiledTemplate{Source: source}

	var text strings.Builder
	textStart := 0
	flush := func(next int) {
		if text.Len() > 0 {
			ct.Tokens = append(ct.Tokens, Token{Kind: TokenText, Text: text.String(), Offset: textStart})
			text.Reset()
		}
		textStart = next
	}

	for i := 0; i < len(source); i++ {
		c := source[i]
		if mask[i] || (c != '{' && c != '}' && c != '#') {
			if text.Len() == 0 {
				textStart = i
			}
			text.WriteByte(c)
			continue
		}

		switch c {
		case '#':
			flush(i + 1)
			ct.Tokens = append(ct.Tokens, Token{Kind: TokenPound, Text: "#", Offset: i})

		case '}':
			return nil, &SyntaxError{Err: ErrUnmatchedBrace, Expression: "}", Offset: i}

		case '{':
			end := findMatchingBrace(source, mask, i)
			if end < 0 {
				return nil, &SyntaxError{Err: ErrUnterminatedExpression, Expression: source[i:], Offset: i}
			}
			raw := source[i+1 : end]
			rawMask := mask[i+1 : end]

			parsed, ok := parseExpression(raw, rawMask)
			if !ok {
				if findTopLevelComma(raw, rawMask, 0) >= 0 {
					return nil, &SyntaxError{
						Err:        ErrUnsupportedExpression,
						Expression: "{" + raw + "}",
						Offset:     i,
					}
				}
				// Plain placeholder such as "{name}": kept as text for the
				// simple substitution pass.
				if text.Len() == 0 {
					textStart = i
				}
				text.WriteString(source[i : end+1])
				i = end
				continue
			}

			expr, err := buildExpression(raw, rawMask, parsed)
			if err != nil {
				return nil, &SyntaxError{
					Err:        err.cause,
					Detail:     err.detail,
					Expression: "{" + raw + "}",
					Offset:     i,
				}
			}
			expr.OptionsOffset += i + 1

			flush(end + 1)
			ct.Tokens = append(ct.Tokens, Token{Kind: TokenExpression, Expr: expr, Offset: i})
			i = end
		}
	}
	flush(len(source))

	return ct, nil
}

type expressionError struct {
	cause  error
	detail string
}

func buildExpression(raw string, mask []bool, parsed ParsedExpression) (*Expression, *expressionError) {
	expr := &Expression{
		Raw:           "{" + raw + "}",
		Name:          parsed.Name,
		Type:          parsed.Type,
		OptionsSource: parsed.OptionsSource,
		OptionsOffset: parsed.OptionsOffset,
	}

	switch parsed.Type {
	case TypePlural, TypeSelectOrdinal, TypeSelect:
		opts, ok := parseOptions(parsed.OptionsSource, mask[parsed.OptionsOffset:], parsed.Type != TypeSelect)
		if !ok {
			return nil, &expressionError{
				cause:  ErrInvalidOptions,
				detail: fmt.Sprintf("%s options %q", parsed.Type, strings.TrimSpace(parsed.OptionsSource)),
			}
		}
		expr.Options = opts

	case TypeNumber:
		opts, err := ParseNumberStyle(parsed.OptionsSource)
		if err != nil {
			return nil, &expressionError{cause: ErrInvalidStyle, detail: fmt.Sprintf("style %q", strings.TrimSpace(parsed.OptionsSource))}
		}
		expr.Number = &opts

	case TypeDate, TypeTime:
		field := FieldDate
		if parsed.Type == TypeTime {
			field = FieldTime
		}
		opts, err := ParseDateTimeStyle(field, parsed.OptionsSource)
		if err != nil {
			return nil, &expressionError{cause: ErrInvalidStyle, detail: fmt.Sprintf("style %q", strings.TrimSpace(parsed.OptionsSource))}
		}
		expr.DateTime = &opts
	}

	return expr, nil
}

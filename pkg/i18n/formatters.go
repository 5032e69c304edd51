package i18n

import (
	"bytes"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/dmitrymomot/msgfmt/pkg/messageformat"
)

// Names of the built-in formatter hooks.
const (
	FormatUpper        = "upper"
	FormatLower        = "lower"
	FormatTitle        = "title"
	FormatTrim         = "trim"
	FormatNumber       = "number"
	FormatStripHTML    = "strip_html"
	FormatSanitizeHTML = "sanitize_html"
	FormatMarkdown     = "markdown"
)

var (
	strictPolicy = bluemonday.StrictPolicy()
	ugcPolicy    = bluemonday.UGCPolicy()
	markdown     = goldmark.New()
)

// DefaultFormatters returns a fresh map with the built-in hooks:
//
//	upper, lower, title  locale-aware case mapping
//	trim                 surrounding whitespace removed
//	number               locale decimal formatting of numeric values
//	strip_html           all markup removed
//	sanitize_html        markup reduced to a safe subset
//	markdown             Markdown rendered to sanitized HTML
func DefaultFormatters() map[string]FormatterFunc {
	return map[string]FormatterFunc{
		FormatUpper:        caseFormatter(cases.Upper),
		FormatLower:        caseFormatter(cases.Lower),
		FormatTitle:        caseFormatter(cases.Title),
		FormatTrim:         formatTrim,
		FormatNumber:       formatNumber,
		FormatStripHTML:    formatStripHTML,
		FormatSanitizeHTML: formatSanitizeHTML,
		FormatMarkdown:     formatMarkdown,
	}
}

func caseFormatter(newCaser func(language.Tag, ...cases.Option) cases.Caser) FormatterFunc {
	return func(v messageformat.Value, fc messageformat.FormatContext) string {
		// Casers keep state and are not safe for concurrent use.
		return newCaser(localeTag(fc.Locale)).String(v.String())
	}
}

func formatTrim(v messageformat.Value, _ messageformat.FormatContext) string {
	return strings.TrimSpace(v.String())
}

func formatNumber(v messageformat.Value, fc messageformat.FormatContext) string {
	if k := v.Kind(); k != messageformat.KindNumber && k != messageformat.KindString {
		return v.String()
	}
	n, ok := v.Float()
	if !ok {
		return v.String()
	}
	return message.NewPrinter(localeTag(fc.Locale)).Sprint(number.Decimal(n))
}

func formatStripHTML(v messageformat.Value, _ messageformat.FormatContext) string {
	return strictPolicy.Sanitize(v.String())
}

func formatSanitizeHTML(v messageformat.Value, _ messageformat.FormatContext) string {
	return ugcPolicy.Sanitize(v.String())
}

func formatMarkdown(v messageformat.Value, _ messageformat.FormatContext) string {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(v.String()), &buf); err != nil {
		return strictPolicy.Sanitize(v.String())
	}
	return strings.TrimSpace(ugcPolicy.Sanitize(buf.String()))
}

func localeTag(locale string) language.Tag {
	tag, err := language.Parse(locale)
	if err != nil {
		return language.Und
	}
	return tag
}

// Package messageformat renders locale-sensitive ICU-style message templates.
//
// A template mixes literal text, branch expressions (plural, select,
// selectordinal), argument expressions (number, date, time) and simple
// named placeholders:
//
//	{gender, select, male {He} female {She} other {They}} has
//	{count, plural, =0 {no messages} one {# message} other {# messages}}.
//
// # Rendering
//
// An [Engine] owns every cache: compiled templates keyed by the exact
// template text, plus plural rules and formatters keyed by locale and
// options. Caches are pure memoization, so an Engine may be shared freely
// between goroutines:
//
//	engine := messageformat.NewEngine()
//	out, err := engine.Render(tpl, messageformat.RenderContext{
//		Key:      "inbox.summary",
//		Language: "en",
//		Values: messageformat.Values{
//			"gender": messageformat.String("female"),
//			"count":  messageformat.Int(1),
//		},
//	})
//	// out == "She has 1 message."
//
// Rendering runs in three passes: ICU expressions are resolved (branch text
// is compiled and rendered recursively), then "{name}" and "{name|hook}"
// placeholders are substituted, then apostrophe escapes are removed.
//
// # Branches
//
// select looks up the value's text, then "other". plural and selectordinal
// subtract the optional "offset:" first, try an exact "=N" selector, then
// the CLDR plural category of the locale, then "other". Inside a plural
// branch an unquoted '#' renders the offset-adjusted number.
//
// # Arguments
//
// number accepts the styles decimal (default), integer, percent, scientific
// and currency. date and time accept short, medium (default), long and full.
// Any other style is a [SyntaxError] wrapping [ErrInvalidStyle].
//
// # Escaping
//
// A lone apostrophe starts or ends a quoted run in which braces, commas and
// '#' are literal text. Two apostrophes produce one literal apostrophe:
//
//	It''s '{'not a placeholder'}'   →   It's {not a placeholder}
//
// # Errors
//
// Authoring problems are reported as [*SyntaxError] with the template key,
// language, the offending expression and its line and column in the
// original template. They are never recovered from silently.
package messageformat

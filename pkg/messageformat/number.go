package messageformat

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// NumberStyle is a named number format preset.
type NumberStyle string

const (
	NumberDecimal    NumberStyle = "decimal"
	NumberInteger    NumberStyle = "integer"
	NumberPercent    NumberStyle = "percent"
	NumberScientific NumberStyle = "scientific"
	NumberCurrency   NumberStyle = "currency"
)

// NumberOptions are the resolved options of a number argument.
type NumberOptions struct {
	Style NumberStyle
}

func (o NumberOptions) signature() string {
	if o.Style == "" {
		return string(NumberDecimal)
	}
	return string(o.Style)
}

// ParseNumberStyle translates the style segment of "{n, number, style}".
// An empty style means plain decimal formatting.
func ParseNumberStyle(style string) (NumberOptions, error) {
	switch s := NumberStyle(strings.TrimSpace(style)); s {
	case "", NumberDecimal:
		return NumberOptions{Style: NumberDecimal}, nil
	case NumberInteger, NumberPercent, NumberScientific, NumberCurrency:
		return NumberOptions{Style: s}, nil
	default:
		return NumberOptions{}, fmt.Errorf("%w: number style %q", ErrInvalidStyle, style)
	}
}

// NumberFormatter formats numbers for one locale and style.
// It is immutable and safe for concurrent use.
type NumberFormatter struct {
	printer *message.Printer
	format  *LocaleFormat
	options NumberOptions
}

// Format renders n.
func (f *NumberFormatter) Format(n float64) string {
	if math.IsNaN(n) {
		return "NaN"
	}
	if math.IsInf(n, 0) {
		if n < 0 {
			return "-∞"
		}
		return "∞"
	}

	switch f.options.Style {
	case NumberInteger:
		return f.printer.Sprint(number.Decimal(n, number.MaxFractionDigits(0)))
	case NumberPercent:
		return f.printer.Sprint(number.Percent(n))
	case NumberScientific:
		return f.printer.Sprint(number.Scientific(n))
	case NumberCurrency:
		amount := f.printer.Sprint(number.Decimal(n, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
		return f.format.PlaceCurrency(amount)
	default:
		return f.printer.Sprint(number.Decimal(n))
	}
}

// Options returns the options the formatter was built with.
func (f *NumberFormatter) Options() NumberOptions {
	return f.options
}

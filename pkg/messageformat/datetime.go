package messageformat

import (
	"fmt"
	"strings"
	"time"
)

// DateTimeField selects the date or the time-of-day part of a timestamp.
type DateTimeField uint8

const (
	FieldDate DateTimeField = iota
	FieldTime
)

// DateTimeOptions are the resolved options of a date or time argument.
type DateTimeOptions struct {
	Field DateTimeField
	Style DateTimeStyle
}

func (o DateTimeOptions) signature() string {
	field := "date"
	if o.Field == FieldTime {
		field = "time"
	}
	return field + ":" + o.Style.String()
}

// ParseDateTimeStyle translates the style segment of "{d, date, style}" or
// "{t, time, style}". An empty style means medium.
func ParseDateTimeStyle(field DateTimeField, style string) (DateTimeOptions, error) {
	opts := DateTimeOptions{Field: field}
	switch strings.TrimSpace(style) {
	case "", "medium":
		opts.Style = StyleMedium
	case "short":
		opts.Style = StyleShort
	case "long":
		opts.Style = StyleLong
	case "full":
		opts.Style = StyleFull
	default:
		return DateTimeOptions{}, fmt.Errorf("%w: %s style %q", ErrInvalidStyle, fieldName(field), style)
	}
	return opts, nil
}

func fieldName(f DateTimeField) string {
	if f == FieldTime {
		return "time"
	}
	return "date"
}

// DateTimeFormatter formats timestamps for one locale and style.
// It is immutable and safe for concurrent use.
type DateTimeFormatter struct {
	format  *LocaleFormat
	options DateTimeOptions
}

// Format renders t.
func (f *DateTimeFormatter) Format(t time.Time) string {
	if f.options.Field == FieldTime {
		return f.format.FormatTime(t, f.options.Style)
	}
	return f.format.FormatDate(t, f.options.Style)
}

// Options returns the options the formatter was built with.
func (f *DateTimeFormatter) Options() DateTimeOptions {
	return f.options
}

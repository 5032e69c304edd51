package messageformat

import (
	"strings"
	"time"
)

// DateTimeStyle is the verbosity of a date or time rendering.
type DateTimeStyle uint8

const (
	StyleShort DateTimeStyle = iota
	StyleMedium
	StyleLong
	StyleFull
)

func (s DateTimeStyle) String() string {
	switch s {
	case StyleShort:
		return "short"
	case StyleLong:
		return "long"
	case StyleFull:
		return "full"
	default:
		return "medium"
	}
}

// LocaleFormat holds the locale conventions that CLDR number data does not
// cover here: currency symbol placement and Go time layouts per style.
// It is immutable after creation and safe for concurrent use.
type LocaleFormat struct {
	currencySymbol   string
	currencyPosition string // "before" or "after"
	dateLayouts      [4]string
	timeLayouts      [4]string
}

// LocaleFormatOption configures a LocaleFormat during construction.
type LocaleFormatOption func(*LocaleFormat)

// NewLocaleFormat creates a new LocaleFormat with the given options.
// If no options are provided, it defaults to US English conventions.
func NewLocaleFormat(opts ...LocaleFormatOption) *LocaleFormat {
	lf := &LocaleFormat{
		currencySymbol:   "$",
		currencyPosition: "before",
		dateLayouts:      [4]string{"1/2/06", "Jan 2, 2006", "January 2, 2006", "Monday, January 2, 2006"},
		timeLayouts:      [4]string{"3:04 PM", "3:04:05 PM", "3:04:05 PM MST", "3:04:05 PM MST"},
	}

	for _, opt := range opts {
		opt(lf)
	}

	return lf
}

// WithCurrencySymbol sets the currency symbol.
func WithCurrencySymbol(symbol string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.currencySymbol = symbol
	}
}

// WithCurrencyPosition sets the currency position ("before" or "after").
func WithCurrencyPosition(pos string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		if pos == "before" || pos == "after" {
			lf.currencyPosition = pos
		}
	}
}

// WithDateLayouts sets the Go time layouts for the short, medium, long and
// full date styles.
func WithDateLayouts(short, medium, long, full string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.dateLayouts = [4]string{short, medium, long, full}
	}
}

// WithTimeLayouts sets the Go time layouts for the short, medium, long and
// full time styles.
func WithTimeLayouts(short, medium, long, full string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.timeLayouts = [4]string{short, medium, long, full}
	}
}

// FormatDate formats t as a date in the given style.
func (lf *LocaleFormat) FormatDate(t time.Time, style DateTimeStyle) string {
	return t.Format(lf.dateLayouts[style])
}

// FormatTime formats t as a time of day in the given style.
func (lf *LocaleFormat) FormatTime(t time.Time, style DateTimeStyle) string {
	return t.Format(lf.timeLayouts[style])
}

// PlaceCurrency attaches the currency symbol to an already localized amount.
func (lf *LocaleFormat) PlaceCurrency(amount string) string {
	negative := strings.HasPrefix(amount, "-")
	amount = strings.TrimPrefix(amount, "-")

	var result string
	if lf.currencyPosition == "before" {
		if tightSymbol(lf.currencySymbol) {
			result = lf.currencySymbol + amount
		} else {
			result = lf.currencySymbol + " " + amount
		}
	} else {
		result = amount + " " + lf.currencySymbol
	}

	if negative {
		result = "-" + result
	}
	return result
}

func tightSymbol(symbol string) bool {
	switch symbol {
	case "$", "¥", "£", "₩":
		return true
	}
	return strings.HasSuffix(symbol, "$")
}

func numericDates(short, long string) LocaleFormatOption {
	return WithDateLayouts(short, long, long, long)
}

func hours24() LocaleFormatOption {
	return WithTimeLayouts("15:04", "15:04:05", "15:04:05 MST", "15:04:05 MST")
}

// Month and weekday names come from Go's time package and are English only,
// so non-English presets use numeric layouts for every date style.
var localeFormats = map[string]*LocaleFormat{
	"en": NewLocaleFormat(),
	"en-GB": NewLocaleFormat(
		WithCurrencySymbol("£"),
		WithDateLayouts("02/01/2006", "2 Jan 2006", "2 January 2006", "Monday, 2 January 2006"),
		hours24(),
	),
	"de": NewLocaleFormat(
		WithCurrencySymbol("€"),
		WithCurrencyPosition("after"),
		numericDates("02.01.06", "02.01.2006"),
		hours24(),
	),
	"fr": NewLocaleFormat(
		WithCurrencySymbol("€"),
		WithCurrencyPosition("after"),
		numericDates("02/01/2006", "02/01/2006"),
		hours24(),
	),
	"es": NewLocaleFormat(
		WithCurrencySymbol("€"),
		WithCurrencyPosition("after"),
		numericDates("2/1/06", "02/01/2006"),
		hours24(),
	),
	"it": NewLocaleFormat(
		WithCurrencySymbol("€"),
		WithCurrencyPosition("after"),
		numericDates("02/01/06", "02/01/2006"),
		hours24(),
	),
	"pt": NewLocaleFormat(
		WithCurrencySymbol("R$"),
		numericDates("02/01/2006", "02/01/2006"),
		hours24(),
	),
	"ja": NewLocaleFormat(
		WithCurrencySymbol("¥"),
		numericDates("2006/01/02", "2006/01/02"),
		hours24(),
	),
	"zh": NewLocaleFormat(
		WithCurrencySymbol("¥"),
		numericDates("2006/1/2", "2006-01-02"),
		hours24(),
	),
	"ko": NewLocaleFormat(
		WithCurrencySymbol("₩"),
		numericDates("06. 1. 2.", "2006. 1. 2."),
		hours24(),
	),
	"pl": NewLocaleFormat(
		WithCurrencySymbol("zł"),
		WithCurrencyPosition("after"),
		numericDates("02.01.2006", "02.01.2006"),
		hours24(),
	),
	"ru": NewLocaleFormat(
		WithCurrencySymbol("₽"),
		WithCurrencyPosition("after"),
		numericDates("02.01.2006", "02.01.2006"),
		hours24(),
	),
	"uk": NewLocaleFormat(
		WithCurrencySymbol("₴"),
		WithCurrencyPosition("after"),
		numericDates("02.01.06", "02.01.2006"),
		hours24(),
	),
	"ar": NewLocaleFormat(
		WithCurrencySymbol("SAR"),
		WithCurrencyPosition("after"),
		numericDates("2/1/2006", "02/01/2006"),
		WithTimeLayouts("3:04 PM", "3:04:05 PM", "3:04:05 PM MST", "3:04:05 PM MST"),
	),
}

package messageformat

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

// PluralRule maps a number to a plural category.
type PluralRule func(n float64) string

// PluralKind selects between cardinal ("3 files") and ordinal ("3rd file") rules.
type PluralKind uint8

const (
	Cardinal PluralKind = iota
	Ordinal
)

func (k PluralKind) String() string {
	if k == Ordinal {
		return "ordinal"
	}
	return "cardinal"
}

// Plural category constants as defined by Unicode CLDR.
// Not all languages use all categories.
const (
	PluralZero  = "zero"
	PluralOne   = "one"
	PluralTwo   = "two"
	PluralFew   = "few"
	PluralMany  = "many"
	PluralOther = "other"
)

// CLDRPluralRule returns the CLDR plural rule of the given kind for tag.
// Languages without CLDR data resolve every number to "other".
func CLDRPluralRule(tag language.Tag, kind PluralKind) PluralRule {
	rules := plural.Cardinal
	if kind == Ordinal {
		rules = plural.Ordinal
	}
	return func(n float64) string {
		i, v, w, f, t := pluralOperands(n)
		return formName(rules.MatchPlural(tag, i, v, w, f, t))
	}
}

func formName(form plural.Form) string {
	switch form {
	case plural.Zero:
		return PluralZero
	case plural.One:
		return PluralOne
	case plural.Two:
		return PluralTwo
	case plural.Few:
		return PluralFew
	case plural.Many:
		return PluralMany
	default:
		return PluralOther
	}
}

// overflowOperand marks an operand too long for int. Rules compare i with
// small constants and take it modulo powers of ten, so the low seven digits
// plus a non-zero high part select the same category.
const overflowOperand = 10_000_000

// pluralOperands derives the CLDR operands of n:
// i integer digits, v and w the count of visible fraction digits with and
// without trailing zeros, f and t the fraction digits as integers.
func pluralOperands(n float64) (i, v, w, f, t int) {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, 0, 0, 0, 0
	}
	s := strconv.FormatFloat(math.Abs(n), 'f', -1, 64)
	intPart, frac, _ := strings.Cut(s, ".")

	i = operand(intPart)
	if frac == "" {
		return i, 0, 0, 0, 0
	}
	v = len(frac)
	f = operand(frac)
	trimmed := strings.TrimRight(frac, "0")
	w = len(trimmed)
	t = operand(trimmed)
	return i, v, w, f, t
}

func operand(digits string) int {
	if digits == "" {
		return 0
	}
	if n, err := strconv.Atoi(digits); err == nil {
		return n
	}
	low := digits[max(len(digits)-7, 0):]
	n, err := strconv.Atoi(low)
	if err != nil {
		return 0
	}
	return n + overflowOperand
}

// categorySamples covers every CLDR category boundary used by the bundled rules.
var categorySamples = []float64{
	0, 1, 2, 3, 4, 5, 6, 7, 10, 11, 12, 13, 14, 20, 21, 22, 23, 100, 101, 102,
	103, 111, 1000, 1000000, 0.5, 1.5,
}

// PluralCategories returns the categories rule can produce, in CLDR order.
// Use it to check that a message provides a branch for every category
// a locale needs.
func PluralCategories(rule PluralRule) []string {
	seen := make(map[string]bool)
	for _, n := range categorySamples {
		seen[rule(n)] = true
	}

	order := []string{PluralZero, PluralOne, PluralTwo, PluralFew, PluralMany, PluralOther}
	result := make([]string, 0, len(seen))
	for _, form := range order {
		if seen[form] {
			result = append(result, form)
		}
	}
	return result
}

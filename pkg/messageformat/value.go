package messageformat

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindString
	KindNumber
	KindBool
	KindTime
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindTime:
		return "time"
	default:
		return "invalid"
	}
}

// Value is a placeholder value: a string, a number, a boolean or a timestamp.
// The zero Value is invalid and behaves like an absent value.
type Value struct {
	t    time.Time
	str  string
	num  float64
	kind Kind
	b    bool
}

// Values maps placeholder names to values.
type Values map[string]Value

// String returns a string Value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Number returns a numeric Value.
func Number(n float64) Value { return Value{kind: KindNumber, num: n} }

// Int returns a numeric Value from an integer.
func Int(n int64) Value { return Value{kind: KindNumber, num: float64(n)} }

// Bool returns a boolean Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Time returns a timestamp Value.
func Time(t time.Time) Value { return Value{kind: KindTime, t: t} }

// ValueOf converts a host value into a Value. Strings, booleans, every
// integer and float type, time.Time and fmt.Stringer are accepted; anything
// else yields ErrUnsupportedValue.
func ValueOf(v any) (Value, error) {
	switch x := v.(type) {
	case Value:
		return x, nil
	case string:
		return String(x), nil
	case bool:
		return Bool(x), nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return Number(float64(x)), nil
	case uint8:
		return Number(float64(x)), nil
	case uint16:
		return Number(float64(x)), nil
	case uint32:
		return Number(float64(x)), nil
	case uint64:
		return Number(float64(x)), nil
	case float32:
		return Number(float64(x)), nil
	case float64:
		return Number(x), nil
	case time.Time:
		return Time(x), nil
	case *time.Time:
		if x == nil {
			return Value{}, nil
		}
		return Time(*x), nil
	case fmt.Stringer:
		return String(x.String()), nil
	case nil:
		return Value{}, nil
	default:
		return Value{}, fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
}

// ValuesOf converts a map of host values.
func ValuesOf(m map[string]any) (Values, error) {
	if len(m) == 0 {
		return nil, nil
	}
	out := make(Values, len(m))
	for name, raw := range m {
		v, err := ValueOf(raw)
		if err != nil {
			return nil, fmt.Errorf("placeholder %q: %w", name, err)
		}
		out[name] = v
	}
	return out, nil
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsValid reports whether v holds a value.
func (v Value) IsValid() bool { return v.kind != KindInvalid }

// Float coerces v to a number. Strings are parsed, booleans map to 1 and 0,
// and timestamps become Unix milliseconds.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case KindNumber:
		return v.num, !math.IsNaN(v.num)
	case KindString:
		n, err := strconv.ParseFloat(strings.TrimSpace(v.str), 64)
		if err != nil || math.IsNaN(n) {
			return 0, false
		}
		return n, true
	case KindBool:
		if v.b {
			return 1, true
		}
		return 0, true
	case KindTime:
		return float64(v.t.UnixMilli()), true
	default:
		return 0, false
	}
}

// Time coerces v to a timestamp. Numbers are read as Unix milliseconds and
// strings as RFC 3339.
func (v Value) Time() (time.Time, bool) {
	switch v.kind {
	case KindTime:
		return v.t, true
	case KindNumber:
		if math.IsNaN(v.num) || math.IsInf(v.num, 0) {
			return time.Time{}, false
		}
		return time.UnixMilli(int64(v.num)).UTC(), true
	case KindString:
		t, err := time.Parse(time.RFC3339, strings.TrimSpace(v.str))
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	default:
		return time.Time{}, false
	}
}

// String returns the plain, locale-independent text form of v. It is used
// for select matching and for simple placeholders without a formatter.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return formatPlain(v.num)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindTime:
		return v.t.Format(time.RFC3339)
	default:
		return ""
	}
}

func formatPlain(n float64) string {
	if n == 0 {
		// Avoid "-0".
		return "0"
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

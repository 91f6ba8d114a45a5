package engine

import "strconv"

// ValueKind discriminates the scalar kinds a cell can hold
type ValueKind int

const (
	KindNull ValueKind = iota
	KindInt
	KindFloat
	KindText
)

// Value is a single table cell: an integer, a float, a text string, or
// null. The zero Value is null.
type Value struct {
	Kind  ValueKind
	Int   int64
	Float float64
	Text  string
}

// Null returns the null value
func Null() Value {
	return Value{}
}

// NewInt returns an integer value
func NewInt(v int64) Value {
	return Value{Kind: KindInt, Int: v}
}

// NewFloat returns a float value
func NewFloat(v float64) Value {
	return Value{Kind: KindFloat, Float: v}
}

// NewText returns a text value
func NewText(s string) Value {
	return Value{Kind: KindText, Text: s}
}

// IsNull reports whether the value is null
func (v Value) IsNull() bool {
	return v.Kind == KindNull
}

// AsFloat coerces the value to a float64 for numeric comparison.
// Integers and all-digit text coerce through integer parsing first;
// other text must parse as a float. ok is false when the value has no
// numeric reading.
func (v Value) AsFloat() (float64, bool) {
	switch v.Kind {
	case KindInt:
		return float64(v.Int), true
	case KindFloat:
		return v.Float, true
	case KindText:
		if isDigits(v.Text) {
			if n, err := strconv.ParseInt(v.Text, 10, 64); err == nil {
				return float64(n), true
			}
		}
		f, err := strconv.ParseFloat(v.Text, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// String renders the value for text comparison and display. Numbers
// are stringified the way they were stored, null renders as NULL.
func (v Value) String() string {
	switch v.Kind {
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case KindText:
		return v.Text
	default:
		return "NULL"
	}
}

// isDigits reports whether s is non-empty and entirely ASCII digits
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}

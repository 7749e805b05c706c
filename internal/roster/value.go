package roster

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Kind is the opportunistic type of a raw cell.
type Kind int

const (
	KindEmpty Kind = iota
	KindNumber
	KindString
)

// numeralPattern matches the integer and decimal numerals a cell may hold.
var numeralPattern = regexp.MustCompile(`^-?(\d+\.?|\.\d+|\d+\.\d+)([eE][-+]?\d+)?$`)

// leadingIntPattern matches the integer prefix of a string.
var leadingIntPattern = regexp.MustCompile(`^[-+]?\d+`)

// Value is a raw scalar cell: empty, a number, or a string.
type Value struct {
	kind Kind
	num  float64
	str  string
}

// Empty returns the empty value.
func Empty() Value { return Value{} }

// Number returns a numeric value.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// String returns a string value. Unlike ParseValue it keeps blank strings.
func String(s string) Value { return Value{kind: KindString, str: s} }

// ParseValue types a cell: numerals become numbers, blank cells become
// Empty, everything else is kept as a trimmed string.
func ParseValue(cell string) Value {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return Value{}
	}
	if numeralPattern.MatchString(cell) {
		if f, err := strconv.ParseFloat(cell, 64); err == nil && !math.IsInf(f, 0) {
			return Number(f)
		}
	}
	return Value{kind: KindString, str: cell}
}

// Kind returns the kind of the value.
func (v Value) Kind() Kind { return v.kind }

// IsEmpty reports whether the value holds nothing.
func (v Value) IsEmpty() bool { return v.kind == KindEmpty }

// Float returns the numeric content. Strings holding a numeral also
// convert; anything else reports false.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case KindNumber:
		return v.num, true
	case KindString:
		s := strings.TrimSpace(v.str)
		if numeralPattern.MatchString(s) {
			if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(f, 0) {
				return f, true
			}
		}
	}
	return 0, false
}

// LeadingInt mirrors parseInt: numbers truncate toward zero, strings
// yield their leading integer prefix.
func (v Value) LeadingInt() (int, bool) {
	switch v.kind {
	case KindNumber:
		return intFromFloat(math.Trunc(v.num))
	case KindString:
		m := leadingIntPattern.FindString(strings.TrimSpace(v.str))
		if m == "" {
			return 0, false
		}
		n, err := strconv.Atoi(m)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

// intFromFloat converts an integral float, rejecting NaN and values
// outside the int range.
func intFromFloat(f float64) (int, bool) {
	if math.IsNaN(f) || f >= float64(math.MaxInt) || f < float64(math.MinInt) {
		return 0, false
	}
	return int(f), true
}

// Truthy reports whether the value is present and non-zero.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindNumber:
		return v.num != 0
	case KindString:
		n, ok := v.LeadingInt()
		return ok && n != 0
	}
	return false
}

// String renders the value the way it appeared in the source.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindString:
		return v.str
	}
	return ""
}

// Or returns v unless it is empty, in which case def is returned.
func (v Value) Or(def Value) Value {
	if v.IsEmpty() {
		return def
	}
	return v
}

// MarshalJSON encodes empty as null, numbers as numbers and strings as strings.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNumber:
		return json.Marshal(v.num)
	case KindString:
		return json.Marshal(v.str)
	}
	return []byte("null"), nil
}

// UnmarshalJSON accepts null, numbers and strings.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch x := raw.(type) {
	case nil:
		*v = Value{}
	case float64:
		*v = Number(x)
	case string:
		*v = Value{kind: KindString, str: x}
	default:
		*v = Value{kind: KindString, str: string(data)}
	}
	return nil
}

// Equal reports whether two values have the same kind and content.
func (v Value) Equal(o Value) bool {
	return v.kind == o.kind && v.num == o.num && v.str == o.str
}

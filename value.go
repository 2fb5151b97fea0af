package calc

import (
	"strconv"
	"strings"
)

// Value is a number produced by evaluating an expression: either an int64 or
// a float64. Whether a value is integer or floating-point is decided once,
// when its literal is parsed, and carried through every operation. The zero
// Value is the integer 0.
type Value struct {
	i int64
	f float64
	k valueKind
}

type valueKind int8

const (
	kindInt valueKind = iota
	kindFloat
)

// Int returns an integer value.
func Int(n int64) Value {
	return Value{i: n}
}

// Float returns a floating-point value.
func Float(x float64) Value {
	return Value{f: x, k: kindFloat}
}

// IsInt reports whether the value is an integer.
func (v Value) IsInt() bool {
	return v.k == kindInt
}

// AsInt returns the value as an int64, truncating if it is a float.
func (v Value) AsInt() int64 {
	if v.k == kindFloat {
		return int64(v.f)
	}
	return v.i
}

// AsFloat returns the value as a float64.
func (v Value) AsFloat() float64 {
	if v.k == kindFloat {
		return v.f
	}
	return float64(v.i)
}

// String formats the value. Integers have no decimal point; floats always
// carry one (or an exponent), so 5.0 prints as "5.0" rather than "5".
func (v Value) String() string {
	if v.k == kindInt {
		return strconv.FormatInt(v.i, 10)
	}
	s := strconv.FormatFloat(v.f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eIN") {
		// No decimal point, exponent, Inf, or NaN: mark it as a float.
		s += ".0"
	}
	return s
}

// parseNumber converts a number token into a value. The literal is a float
// exactly when it contains a decimal point.
func parseNumber(tok Token) (Value, error) {
	if strings.ContainsRune(tok.Text, '.') {
		f, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			return Value{}, &NumberError{Col: tok.Pos, Literal: tok.Text}
		}
		return Float(f), nil
	}
	n, err := strconv.ParseInt(tok.Text, 10, 64)
	if err != nil {
		return Value{}, &NumberError{Col: tok.Pos, Literal: tok.Text}
	}
	return Int(n), nil
}

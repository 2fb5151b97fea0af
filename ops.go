package calc

import "math"

type assoc int8

const (
	assocLeft assoc = iota
	assocRight
)

// opInfo describes one operator: how the shunting-yard pass orders it, what
// the evaluator must check before applying it, and how to apply it. Exactly
// one of eval1 and eval2, matching unary, is set.
type opInfo struct {
	prec  int
	assoc assoc
	unary bool
	// intOnly operators accept only integer operands.
	intOnly bool
	// nonzeroRHS operators reject a zero right operand.
	nonzeroRHS bool
	eval1      func(Value) Value
	eval2      func(Value, Value) Value
}

// opTable is the operator registry. It is never mutated after
// initialization, so concurrent reads are safe. Precedence values only
// matter relative to each other; higher binds tighter.
var opTable = [...]opInfo{
	OpPow:      {prec: 4, assoc: assocRight, eval2: pow},
	OpPos:      {prec: 5, assoc: assocRight, unary: true, eval1: func(v Value) Value { return v }},
	OpNeg:      {prec: 5, assoc: assocRight, unary: true, eval1: neg},
	OpMul:      {prec: 3, assoc: assocLeft, eval2: mul},
	OpDiv:      {prec: 3, assoc: assocLeft, nonzeroRHS: true, eval2: div},
	OpFloorDiv: {prec: 3, assoc: assocLeft, intOnly: true, nonzeroRHS: true, eval2: floorDiv},
	OpMod:      {prec: 3, assoc: assocLeft, intOnly: true, nonzeroRHS: true, eval2: mod},
	OpAdd:      {prec: 2, assoc: assocLeft, eval2: add},
	OpSub:      {prec: 2, assoc: assocLeft, eval2: sub},
}

func neg(v Value) Value {
	if v.IsInt() {
		return Int(-v.i)
	}
	return Float(-v.f)
}

func add(l, r Value) Value {
	if l.IsInt() && r.IsInt() {
		return Int(l.i + r.i)
	}
	return Float(l.AsFloat() + r.AsFloat())
}

func sub(l, r Value) Value {
	if l.IsInt() && r.IsInt() {
		return Int(l.i - r.i)
	}
	return Float(l.AsFloat() - r.AsFloat())
}

func mul(l, r Value) Value {
	if l.IsInt() && r.IsInt() {
		return Int(l.i * r.i)
	}
	return Float(l.AsFloat() * r.AsFloat())
}

// div is true division. The result is a float even for two integer operands.
// The evaluator has already rejected a zero divisor.
func div(l, r Value) Value {
	return Float(l.AsFloat() / r.AsFloat())
}

// floorDiv divides integers, flooring toward negative infinity.
func floorDiv(l, r Value) Value {
	q := l.i / r.i
	if l.i%r.i != 0 && (l.i < 0) != (r.i < 0) {
		q--
	}
	return Int(q)
}

// mod is the floored modulo: the result takes the sign of the divisor, so
// that l == (l//r)*r + l%r.
func mod(l, r Value) Value {
	m := l.i % r.i
	if m != 0 && (m < 0) != (r.i < 0) {
		m += r.i
	}
	return Int(m)
}

// pow exponentiates. Two integer operands with a non-negative exponent give
// an integer; a negative exponent gives a float. The evaluator has already
// rejected a zero base with a negative exponent.
func pow(l, r Value) Value {
	if l.IsInt() && r.IsInt() && r.i >= 0 {
		return Int(ipow(l.i, r.i))
	}
	return Float(math.Pow(l.AsFloat(), r.AsFloat()))
}

// ipow is exponentiation by squaring.
func ipow(base, exp int64) int64 {
	r := int64(1)
	for exp > 0 {
		if exp&1 == 1 {
			r *= base
		}
		base *= base
		exp >>= 1
	}
	return r
}

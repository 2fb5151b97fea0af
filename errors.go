package calc

import (
	"errors"
	"strconv"
)

// Broad error kinds. Every error returned by this package matches
// ErrCalculator with errors.Is; malformed input additionally matches
// ErrInvalidExpression, and a zero divisor matches ErrDivisionByZero.
var (
	ErrCalculator        = errors.New("calculator error")
	ErrInvalidExpression = errors.New("invalid expression")
	ErrDivisionByZero    = errors.New("division by zero")
)

// SymbolError is an error indicating a symbol that is not part of any
// recognized token. It implements InputError.
type SymbolError struct {
	// Col is the position of the symbol.
	Col int
	// Symbol is the text that was not understood.
	Symbol string
}

func (err *SymbolError) Error() string {
	return errpos(err.Col, "invalid symbol "+strconv.Quote(err.Symbol))
}

func (err *SymbolError) Pos() int { return err.Col }

func (err *SymbolError) Is(target error) bool {
	return target == ErrInvalidExpression || target == ErrCalculator
}

// NumberError is an error indicating a number literal that cannot be
// represented, e.g. one that overflows an int64. It implements InputError.
type NumberError struct {
	// Col is the position of the literal.
	Col int
	// Literal is the text of the number.
	Literal string
}

func (err *NumberError) Error() string {
	return errpos(err.Col, "invalid number "+strconv.Quote(err.Literal))
}

func (err *NumberError) Pos() int { return err.Col }

func (err *NumberError) Is(target error) bool {
	return target == ErrInvalidExpression || target == ErrCalculator
}

// BracketError is an error indicating unbalanced parentheses. It implements
// InputError.
type BracketError struct {
	// Col is the position of the unmatched parenthesis, or the end of the
	// input for an open parenthesis that is never closed.
	Col int
	// Bracket is the unmatched parenthesis.
	Bracket string
}

func (err *BracketError) Error() string {
	if err.Bracket == "(" {
		return errpos(err.Col, "open parenthesis with no close parenthesis")
	}
	return errpos(err.Col, "close parenthesis with no open parenthesis")
}

func (err *BracketError) Pos() int { return err.Col }

func (err *BracketError) Is(target error) bool {
	return target == ErrInvalidExpression || target == ErrCalculator
}

// OperandError is an error indicating an operator without enough operands.
// It implements InputError.
type OperandError struct {
	// Col is the position of the operator.
	Col int
	// Op is the operator's symbol.
	Op string
	// Unary is whether the operator takes one operand rather than two.
	Unary bool
}

func (err *OperandError) Error() string {
	return errpos(err.Col, "not enough operands for "+err.Op)
}

func (err *OperandError) Pos() int { return err.Col }

func (err *OperandError) Is(target error) bool {
	return target == ErrInvalidExpression || target == ErrCalculator
}

// IntOperandError is an error indicating an integer-only operator applied to
// a float operand. It implements InputError.
type IntOperandError struct {
	// Col is the position of the operator.
	Col int
	// Op is the operator's symbol.
	Op string
}

func (err *IntOperandError) Error() string {
	return errpos(err.Col, "operator "+err.Op+" requires integer operands")
}

func (err *IntOperandError) Pos() int { return err.Col }

func (err *IntOperandError) Is(target error) bool {
	return target == ErrInvalidExpression || target == ErrCalculator
}

// DivisionByZeroError is an error indicating a division or modulo with a
// zero divisor. It implements InputError.
type DivisionByZeroError struct {
	// Col is the position of the operator.
	Col int
	// Op is the operator's symbol.
	Op string
}

func (err *DivisionByZeroError) Error() string {
	return errpos(err.Col, "division by zero in "+err.Op)
}

func (err *DivisionByZeroError) Pos() int { return err.Col }

func (err *DivisionByZeroError) Is(target error) bool {
	return target == ErrDivisionByZero || target == ErrCalculator
}

// LeftoverError is an error indicating an expression that does not reduce to
// a single value, e.g. "2 3".
type LeftoverError struct {
	// Values is the number of values left after evaluation.
	Values int
}

func (err *LeftoverError) Error() string {
	return "incomplete expression: " + strconv.Itoa(err.Values) + " values remain"
}

func (err *LeftoverError) Is(target error) bool {
	return target == ErrInvalidExpression || target == ErrCalculator
}

// EmptyError is an error indicating an empty expression.
type EmptyError struct{}

func (err *EmptyError) Error() string {
	return "empty expression"
}

func (err *EmptyError) Is(target error) bool {
	return target == ErrInvalidExpression || target == ErrCalculator
}

// Error is a calculator failure that is not one of the specific kinds above.
// Calculate reports any panic from the pipeline as an Error wrapping the
// cause.
type Error struct {
	// Cause is the underlying failure.
	Cause error
}

func (err *Error) Error() string {
	return "calculator: " + err.Cause.Error()
}

func (err *Error) Unwrap() error { return err.Cause }

func (err *Error) Is(target error) bool {
	return target == ErrCalculator
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error caused by a
// token in the input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*SymbolError)(nil)
	_ InputError = (*NumberError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*OperandError)(nil)
	_ InputError = (*IntOperandError)(nil)
	_ InputError = (*DivisionByZeroError)(nil)
)

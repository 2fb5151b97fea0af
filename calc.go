package calc

import (
	"fmt"
	"strings"
	"unicode"
)

// Calculate evaluates an arithmetic expression and returns its value.
// Whitespace in the expression is ignored. Every returned error matches
// ErrCalculator; errors caused by the input also match ErrInvalidExpression
// or ErrDivisionByZero.
func Calculate(expression string) (v Value, err error) {
	// A panic anywhere in the pipeline is a bug; report it as an ordinary
	// error rather than unwinding into the caller.
	defer func() {
		if p := recover(); p != nil {
			v, err = Value{}, &Error{Cause: fmt.Errorf("%v", p)}
		}
	}()
	expression = stripSpace(expression)
	if expression == "" {
		return Value{}, &EmptyError{}
	}
	// The converter detects unbalanced parentheses on its own, but checking
	// the raw characters first reports the imbalance before any other
	// problem with the expression.
	if err := checkParens(expression); err != nil {
		return Value{}, err
	}
	tokens, err := Tokenize(expression)
	if err != nil {
		return Value{}, err
	}
	rpn, err := ToPostfix(tokens)
	if err != nil {
		return Value{}, err
	}
	return EvaluatePostfix(rpn)
}

// stripSpace removes all whitespace from an expression.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// checkParens verifies that parentheses pair up over the raw characters.
// Open positions go on a stack so the error names the parenthesis that is
// actually unmatched, not merely the last one opened.
func checkParens(s string) error {
	var opens []int
	pos := 0
	for _, r := range s {
		pos++
		switch r {
		case '(':
			opens = append(opens, pos)
		case ')':
			if len(opens) == 0 {
				return &BracketError{Col: pos, Bracket: ")"}
			}
			opens = opens[:len(opens)-1]
		}
	}
	if len(opens) > 0 {
		return &BracketError{Col: opens[len(opens)-1], Bracket: "("}
	}
	return nil
}

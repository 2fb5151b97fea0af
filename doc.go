// Package calc implements a calculator for arithmetic expressions.
//
// Expressions are evaluated in three stages: a tokenizer splits the input
// into number and operator tokens, a shunting-yard pass reorders them into
// postfix notation, and a stack machine computes the result. Each stage is
// exported, so callers can run the pipeline piecewise, but most will only
// want Calculate.
//
// Numbers are either integers or floats. A literal with a decimal point is a
// float, anything else is an integer. Division always produces a float;
// floor division and modulo accept only integers, and floor toward negative
// infinity rather than truncating.
package calc

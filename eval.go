package calc

// EvaluatePostfix computes the value of a postfix token sequence with a
// value stack. It returns an InputError for an operator with too few
// operands or with operands the operator table rejects, and a LeftoverError
// when the sequence does not reduce to exactly one value.
func EvaluatePostfix(tokens []Token) (Value, error) {
	var stack []Value
	for _, tok := range tokens {
		switch tok.Kind {
		case TokenNumber:
			v, err := parseNumber(tok)
			if err != nil {
				return Value{}, err
			}
			stack = append(stack, v)
		case TokenOperator:
			info := &opTable[tok.Op]
			if info.unary {
				if len(stack) < 1 {
					return Value{}, &OperandError{Col: tok.Pos, Op: tok.Op.String(), Unary: true}
				}
				v := stack[len(stack)-1]
				stack[len(stack)-1] = info.eval1(v)
				continue
			}
			if len(stack) < 2 {
				return Value{}, &OperandError{Col: tok.Pos, Op: tok.Op.String()}
			}
			right := stack[len(stack)-1]
			left := stack[len(stack)-2]
			stack = stack[:len(stack)-1]
			if err := validate(tok, info, left, right); err != nil {
				return Value{}, err
			}
			stack[len(stack)-1] = info.eval2(left, right)
		case TokenOpen, TokenClose:
			// Parentheses never survive conversion, so one here means the
			// sequence did not come from ToPostfix.
			return Value{}, &BracketError{Col: tok.Pos, Bracket: tok.text()}
		default:
			return Value{}, &SymbolError{Col: tok.Pos, Symbol: tok.text()}
		}
	}
	if len(stack) != 1 {
		return Value{}, &LeftoverError{Values: len(stack)}
	}
	return stack[0], nil
}

// validate applies the operator table's operand rules. The zero-divisor
// check comes first, so "10.5 // 0" reports division by zero rather than a
// type error.
func validate(tok Token, info *opInfo, left, right Value) error {
	if info.nonzeroRHS && right.AsFloat() == 0 {
		return &DivisionByZeroError{Col: tok.Pos, Op: tok.Op.String()}
	}
	if info.intOnly && !(left.IsInt() && right.IsInt()) {
		return &IntOperandError{Col: tok.Pos, Op: tok.Op.String()}
	}
	// Raising zero to a negative power divides by zero.
	if tok.Op == OpPow && left.AsFloat() == 0 && right.AsFloat() < 0 {
		return &DivisionByZeroError{Col: tok.Pos, Op: tok.Op.String()}
	}
	return nil
}

package calc

// ToPostfix reorders an infix token sequence into postfix (reverse Polish)
// order using the shunting-yard algorithm. Parentheses are consumed by the
// conversion; an unmatched parenthesis produces a BracketError.
func ToPostfix(tokens []Token) ([]Token, error) {
	output := make([]Token, 0, len(tokens))
	var stack []Token
	for _, tok := range tokens {
		switch tok.Kind {
		case TokenNumber:
			output = append(output, tok)
		case TokenOperator:
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if !shouldPop(top, tok) {
					break
				}
				output = append(output, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
		case TokenOpen:
			stack = append(stack, tok)
		case TokenClose:
			for {
				if len(stack) == 0 {
					return nil, &BracketError{Col: tok.Pos, Bracket: ")"}
				}
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Kind == TokenOpen {
					break
				}
				output = append(output, top)
			}
		}
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.Kind == TokenOpen {
			return nil, &BracketError{Col: top.Pos, Bracket: "("}
		}
		output = append(output, top)
	}
	return output, nil
}

// shouldPop reports whether the operator on top of the stack must move to
// the output before cur is pushed: it must when it binds tighter than cur,
// or equally tightly and cur is left-associative. Right-associative
// operators never pop on a tie, which keeps chains like 2**3**2 grouped
// right to left.
func shouldPop(top, cur Token) bool {
	if top.Kind != TokenOperator {
		return false
	}
	ti, ci := opTable[top.Op], opTable[cur.Op]
	if ti.prec > ci.prec {
		return true
	}
	return ti.prec == ci.prec && ci.assoc == assocLeft
}

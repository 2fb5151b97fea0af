package calc

import "unicode"

// Tokenize splits an expression into tokens. Whitespace separates tokens and
// is otherwise ignored. Any text that is not a number, operator, or
// parenthesis produces a SymbolError carrying the offending text.
//
// A + or - is the unary operator when it is the first token, follows an open
// parenthesis, or follows another operator; otherwise it is the binary one.
// Consecutive signs are therefore all unary, so "--5" negates twice.
func Tokenize(expression string) ([]Token, error) {
	var toks []Token
	src := []rune(expression)
	for i := 0; i < len(src); {
		r := src[i]
		// Positions are 1-based rune counts, for error messages.
		pos := i + 1
		switch {
		case unicode.IsSpace(r):
			i++
		case '0' <= r && r <= '9', r == '.':
			lit, n, ok := scanNumber(src[i:])
			if !ok {
				return nil, &SymbolError{Col: pos, Symbol: lit}
			}
			toks = append(toks, Token{Kind: TokenNumber, Text: lit, Pos: pos})
			i += n
		case r == '(':
			toks = append(toks, Token{Kind: TokenOpen, Pos: pos})
			i++
		case r == ')':
			toks = append(toks, Token{Kind: TokenClose, Pos: pos})
			i++
		case r == '*':
			if i+1 < len(src) && src[i+1] == '*' {
				toks = append(toks, Token{Kind: TokenOperator, Op: OpPow, Pos: pos})
				i += 2
				break
			}
			toks = append(toks, Token{Kind: TokenOperator, Op: OpMul, Pos: pos})
			i++
		case r == '/':
			if i+1 < len(src) && src[i+1] == '/' {
				toks = append(toks, Token{Kind: TokenOperator, Op: OpFloorDiv, Pos: pos})
				i += 2
				break
			}
			toks = append(toks, Token{Kind: TokenOperator, Op: OpDiv, Pos: pos})
			i++
		case r == '+':
			toks = append(toks, Token{Kind: TokenOperator, Op: OpAdd, Pos: pos})
			i++
		case r == '-':
			toks = append(toks, Token{Kind: TokenOperator, Op: OpSub, Pos: pos})
			i++
		case r == '%':
			toks = append(toks, Token{Kind: TokenOperator, Op: OpMod, Pos: pos})
			i++
		default:
			// Collect the whole run of junk so that it shows up in the
			// error message.
			j := i
			for j < len(src) && !tokenRune(src[j]) {
				j++
			}
			return nil, &SymbolError{Col: pos, Symbol: string(src[i:j])}
		}
	}
	retagUnary(toks)
	return toks, nil
}

// scanNumber scans a number literal at the start of src. It returns the
// literal text, the number of runes consumed, and whether the literal is
// well formed. A literal is digits with an optional fractional part, or a
// fractional part alone; a second decimal point is malformed.
func scanNumber(src []rune) (lit string, n int, ok bool) {
	dig, dot := false, false
	for n < len(src) {
		switch r := src[n]; {
		case '0' <= r && r <= '9':
			dig = true
		case r == '.':
			if dot {
				// Include the stray point in the reported text.
				n++
				return string(src[:n]), n, false
			}
			dot = true
		default:
			return string(src[:n]), n, dig
		}
		n++
	}
	return string(src[:n]), n, dig
}

// tokenRune reports whether a rune can start a recognized token. It bounds
// the text reported for an invalid symbol.
func tokenRune(r rune) bool {
	switch r {
	case '+', '-', '*', '/', '%', '(', ')', '.':
		return true
	}
	return '0' <= r && r <= '9' || unicode.IsSpace(r)
}

// retagUnary reclassifies + and - tokens as their unary forms. A sign is
// unary when it starts the expression, follows an open parenthesis, or
// follows another operator of either arity.
func retagUnary(toks []Token) {
	for i, t := range toks {
		if t.Kind != TokenOperator || (t.Op != OpAdd && t.Op != OpSub) {
			continue
		}
		if i > 0 {
			prev := toks[i-1]
			if prev.Kind != TokenOpen && prev.Kind != TokenOperator {
				continue
			}
		}
		if t.Op == OpAdd {
			toks[i].Op = OpPos
		} else {
			toks[i].Op = OpNeg
		}
	}
}

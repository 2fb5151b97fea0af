package calc

import "strconv"

// Token is a single lexical unit of an expression.
type Token struct {
	// Kind is the token's class.
	Kind TokenKind
	// Text is the literal text of a number token. It is empty for other
	// kinds.
	Text string
	// Op identifies the operator of an operator token, including whether it
	// is the unary or binary form. It is OpNone for other kinds.
	Op Op
	// Pos is the position of the token as the number of runes up to and
	// including its first rune in the input given to Tokenize.
	Pos int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.text() + "@" + strconv.Itoa(t.Pos)
}

// text returns the token's source representation: the literal of a number,
// the symbol of an operator, or the bracket rune.
func (t Token) text() string {
	switch t.Kind {
	case TokenNumber:
		return t.Text
	case TokenOperator:
		return t.Op.String()
	case TokenOpen:
		return "("
	case TokenClose:
		return ")"
	default:
		return ""
	}
}

// TokenKind is the class of a token.
type TokenKind int8

const (
	TokenNone TokenKind = iota
	// TokenNumber is an integer or real literal.
	TokenNumber
	// TokenOperator is a unary or binary operator.
	TokenOperator
	// TokenOpen is an open parenthesis.
	TokenOpen
	// TokenClose is a close parenthesis.
	TokenClose
)

func (k TokenKind) String() string {
	switch k {
	case TokenNone:
		return "None"
	case TokenNumber:
		return "Number"
	case TokenOperator:
		return "Operator"
	case TokenOpen:
		return "Open"
	case TokenClose:
		return "Close"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Op identifies an operator. The unary and binary forms of + and - are
// distinct operators.
type Op int8

const (
	OpNone Op = iota
	// OpAdd is binary +.
	OpAdd
	// OpSub is binary -.
	OpSub
	// OpMul is *.
	OpMul
	// OpDiv is true division, /.
	OpDiv
	// OpFloorDiv is floor division, //.
	OpFloorDiv
	// OpMod is the modulo operator, %.
	OpMod
	// OpPow is exponentiation, **.
	OpPow
	// OpPos is unary +.
	OpPos
	// OpNeg is unary -.
	OpNeg
)

// String returns the operator's symbol. Unary + and - are written u+ and u-
// to keep them distinct from their binary forms.
func (op Op) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpFloorDiv:
		return "//"
	case OpMod:
		return "%"
	case OpPow:
		return "**"
	case OpPos:
		return "u+"
	case OpNeg:
		return "u-"
	default:
		return "Op(" + strconv.Itoa(int(op)) + ")"
	}
}

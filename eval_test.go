package calc

import (
	"errors"
	"testing"
)

// rpnTokens builds a postfix token sequence from source forms, the inverse
// of texts.
func rpnTokens(src ...string) []Token {
	ops := map[string]Op{
		"+": OpAdd, "-": OpSub, "*": OpMul, "/": OpDiv,
		"//": OpFloorDiv, "%": OpMod, "**": OpPow,
		"u+": OpPos, "u-": OpNeg,
	}
	toks := make([]Token, len(src))
	for i, s := range src {
		if op, ok := ops[s]; ok {
			toks[i] = Token{Kind: TokenOperator, Op: op, Pos: i + 1}
			continue
		}
		toks[i] = Token{Kind: TokenNumber, Text: s, Pos: i + 1}
	}
	return toks
}

func TestEvaluatePostfix(t *testing.T) {
	cases := []struct {
		name string
		src  []string
		want Value
	}{
		{"add", []string{"2", "2", "+"}, Int(4)},
		{"sub", []string{"5", "3", "-"}, Int(2)},
		{"mul", []string{"4", "2", "*"}, Int(8)},
		{"div", []string{"10", "2", "/"}, Float(5)},
		{"pow", []string{"2", "3", "**"}, Int(8)},
		{"floordiv", []string{"10", "3", "//"}, Int(3)},
		{"mod", []string{"10", "3", "%"}, Int(1)},
		{"neg", []string{"5", "u-"}, Int(-5)},
		{"pos", []string{"3", "u+"}, Int(3)},
		{"neg-then-add", []string{"2", "3", "u-", "+"}, Int(-1)},
		{"float-mul", []string{"2.5", "2", "*"}, Float(5)},
		{"float-add", []string{"5.5", "2.5", "+"}, Float(8)},
		{"float-div", []string{"10.0", "4.0", "/"}, Float(2.5)},
		{"float-neg", []string{"2.5", "u-"}, Float(-2.5)},
		// floor division and modulo floor toward negative infinity
		{"floordiv-neg", []string{"-7", "2", "//"}, Int(-4)},
		{"mod-neg", []string{"-7", "3", "%"}, Int(2)},
		// mixed operands promote to float
		{"promote", []string{"1", "0.5", "+"}, Float(1.5)},
		// integer pow with negative exponent is a float
		{"pow-negexp", []string{"2", "1", "u-", "**"}, Float(0.5)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := EvaluatePostfix(rpnTokens(c.src...))
			if err != nil {
				t.Fatalf("evaluating %v: unexpected error %v", c.src, err)
			}
			if got != c.want {
				t.Errorf("evaluating %v: want %v, got %v", c.src, c.want, got)
			}
		})
	}
}

func TestEvaluatePostfixDivisionByZero(t *testing.T) {
	cases := [][]string{
		{"5", "0", "/"},
		{"10", "0", "//"},
		{"5", "0", "%"},
		{"5", "0.0", "/"},
		// zero check happens before the integer-only check
		{"10.5", "0", "//"},
		// zero base, negative exponent
		{"0", "1", "u-", "**"},
	}
	for _, src := range cases {
		got, err := EvaluatePostfix(rpnTokens(src...))
		if err == nil {
			t.Errorf("evaluating %v: no error, got %v", src, got)
			continue
		}
		if !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("evaluating %v: error %v is not ErrDivisionByZero", src, err)
		}
	}
}

func TestEvaluatePostfixIntegerOnly(t *testing.T) {
	cases := [][]string{
		{"10.5", "3", "//"},
		{"10", "3.5", "%"},
		{"10.5", "3.5", "//"},
	}
	for _, src := range cases {
		got, err := EvaluatePostfix(rpnTokens(src...))
		if err == nil {
			t.Errorf("evaluating %v: no error, got %v", src, got)
			continue
		}
		var ie *IntOperandError
		if !errors.As(err, &ie) {
			t.Errorf("evaluating %v: error %v is not an IntOperandError", src, err)
		}
		if !errors.Is(err, ErrInvalidExpression) {
			t.Errorf("evaluating %v: error %v is not ErrInvalidExpression", src, err)
		}
	}
}

func TestEvaluatePostfixNotEnoughOperands(t *testing.T) {
	cases := [][]string{
		{"2", "+"},
		{"+"},
		{"u-"},
		{"*"},
	}
	for _, src := range cases {
		_, err := EvaluatePostfix(rpnTokens(src...))
		var oe *OperandError
		if !errors.As(err, &oe) {
			t.Errorf("evaluating %v: error %v is not an OperandError", src, err)
		}
	}
}

func TestEvaluatePostfixLeftover(t *testing.T) {
	cases := [][]string{
		{"2", "3"},
		{"2", "3", "4", "+"},
		{},
	}
	for _, src := range cases {
		_, err := EvaluatePostfix(rpnTokens(src...))
		var le *LeftoverError
		if !errors.As(err, &le) {
			t.Errorf("evaluating %v: error %v is not a LeftoverError", src, err)
		}
	}
}

func TestEvaluatePostfixStrayParen(t *testing.T) {
	cases := []struct {
		name    string
		toks    []Token
		bracket string
	}{
		{"open", []Token{
			{Kind: TokenNumber, Text: "2", Pos: 1},
			{Kind: TokenOpen, Pos: 2},
		}, "("},
		{"close", []Token{
			{Kind: TokenClose, Pos: 1},
		}, ")"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := EvaluatePostfix(c.toks)
			var br *BracketError
			if !errors.As(err, &br) {
				t.Fatalf("error %v is not a BracketError", err)
			}
			if br.Bracket != c.bracket {
				t.Errorf("want bracket %q, got %q", c.bracket, br.Bracket)
			}
			if !errors.Is(err, ErrInvalidExpression) {
				t.Errorf("error %v is not ErrInvalidExpression", err)
			}
		})
	}
}

func TestValueString(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{Int(5), "5"},
		{Int(-5), "-5"},
		{Int(0), "0"},
		{Float(5), "5.0"},
		{Float(2.5), "2.5"},
		{Float(-0.5), "-0.5"},
		{Float(1e21), "1e+21"},
	}
	for _, c := range cases {
		if got := c.v.String(); got != c.want {
			t.Errorf("formatting %#v: want %q, got %q", c.v, c.want, got)
		}
	}
}

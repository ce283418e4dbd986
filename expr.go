package infix

import (
	"io"
	"strings"
)

// Expr is a scanned expression whose structure has been checked. It can be
// evaluated any number of times and is safe for concurrent use.
type Expr struct {
	toks []Token
	// grouped is the fully parenthesized form.
	grouped string
}

// Parse scans an expression and checks its structure. The only error that
// can occur when evaluating the result is division by zero.
func Parse(src io.RuneScanner) (*Expr, error) {
	toks, err := Lex(src)
	if err != nil {
		return nil, err
	}
	g := machine[string]{leaf: Token.text, join: group}
	s, err := g.run(toks)
	if err != nil {
		return nil, err
	}
	return &Expr{toks: toks, grouped: s}, nil
}

// ParseString is a shortcut to parse a string expression.
func ParseString(src string) (*Expr, error) {
	return Parse(strings.NewReader(src))
}

func group(p operator, a, b string) (string, error) {
	return "(" + a + " " + string(p.op) + " " + b + ")", nil
}

// Eval evaluates the expression.
func (e *Expr) Eval() (float64, error) {
	return NewEvaluator().Eval(e)
}

// Tokens returns a copy of the expression's tokens.
func (e *Expr) Tokens() []Token {
	return append(([]Token)(nil), e.toks...)
}

// String returns the expression with every reduction grouped in parentheses,
// e.g. "((6 + 7) - (2 * 3))" for "(6+7)-2*3".
func (e *Expr) String() string {
	return e.grouped
}

package infix

// Add returns a + b.
func Add(a, b float64) float64 {
	return a + b
}

// Sub returns a - b.
func Sub(a, b float64) float64 {
	return a - b
}

// Mul returns a * b.
func Mul(a, b float64) float64 {
	return a * b
}

// Div returns a / b. If b is zero, of either sign, the result is an
// *EvalError with kind DivisionByZero. Other divisions which produce
// infinities or NaN, e.g. Inf/Inf, are not errors.
func Div(a, b float64) (float64, error) {
	if b == 0 {
		return 0, &EvalError{Kind: DivisionByZero, Op: "/"}
	}
	return a / b, nil
}

type operator struct {
	// prec is the precedence value. Higher is more binding. Parens have 0.
	prec int8
	// op is the operator rune, or ( for a paren marker.
	op rune
}

// reducesBefore reports whether p, pending on the operator stack, must be
// reduced before next is pushed. All operators are left-associative, so
// equal precedence reduces. A paren marker never reduces.
func (p operator) reducesBefore(next operator) bool {
	if p.isParen() {
		return false
	}
	return p.prec >= next.prec
}

func (p operator) isParen() bool {
	return p.prec == 0
}

// apply combines two operands with the operator.
func (p operator) apply(a, b float64) (float64, error) {
	switch p.op {
	case '+':
		return Add(a, b), nil
	case '-':
		return Sub(a, b), nil
	case '*':
		return Mul(a, b), nil
	case '/':
		return Div(a, b)
	default:
		panic("infix: apply on invalid operator " + string(p.op))
	}
}

// binop gets a binary operator for an operator rune. If there is no such
// operator, the result has a prec of 0.
func binop(r rune) operator {
	switch r {
	case '+', '-':
		return operator{1, r}
	case '*', '/':
		return operator{2, r}
	default:
		return operator{}
	}
}

// parenop is the marker pushed for a left paren.
var parenop = operator{0, '('}

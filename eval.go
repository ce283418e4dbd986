package infix

import (
	"io"
	"strings"
)

// Evaluator evaluates token sequences using an operand stack and an operator
// stack. The stacks are retained between evaluations, so evaluating many
// expressions with one Evaluator allocates less. It is not safe to use an
// Evaluator concurrently.
type Evaluator struct {
	m machine[float64]
}

// NewEvaluator creates a new Evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{m: machine[float64]{leaf: numleaf, join: operator.apply}}
}

// Evaluate evaluates a token sequence and returns its value.
func (ev *Evaluator) Evaluate(toks []Token) (float64, error) {
	return ev.m.run(toks)
}

// Eval evaluates a parsed expression.
func (ev *Evaluator) Eval(e *Expr) (float64, error) {
	return ev.m.run(e.toks)
}

// EvalString scans and evaluates a string expression.
func (ev *Evaluator) EvalString(src string) (float64, error) {
	toks, err := Tokenize(src)
	if err != nil {
		return 0, err
	}
	return ev.m.run(toks)
}

// Evaluate evaluates a token sequence. It is safe to call concurrently.
func Evaluate(toks []Token) (float64, error) {
	return NewEvaluator().Evaluate(toks)
}

// Eval is a shortcut to scan and evaluate an expression.
func Eval(src io.RuneScanner) (float64, error) {
	toks, err := Lex(src)
	if err != nil {
		return 0, err
	}
	return Evaluate(toks)
}

// EvalString is a shortcut to scan and evaluate a string expression.
func EvalString(src string) (float64, error) {
	return Eval(strings.NewReader(src))
}

func numleaf(tok Token) float64 {
	return tok.Value
}

// operand is a value on the operand stack.
type operand[T any] struct {
	v T
	// pos is the position of the leftmost token contributing to v.
	pos int
}

// pending is an operator or paren marker on the operator stack.
type pending struct {
	operator
	pos int
}

// machine is the two-stack reduction algorithm, generic over the operand
// type so that the same reductions can compute values or render groupings.
type machine[T any] struct {
	vals []operand[T]
	ops  []pending
	// leaf produces the operand for a number token.
	leaf func(Token) T
	// join reduces two operands with an operator.
	join func(p operator, a, b T) (T, error)
}

// run makes a single left-to-right pass over toks.
func (m *machine[T]) run(toks []Token) (T, error) {
	var zero T
	m.vals = m.vals[:0]
	m.ops = m.ops[:0]
	for _, tok := range toks {
		switch tok.Kind {
		case TokenNumber:
			m.vals = append(m.vals, operand[T]{v: m.leaf(tok), pos: tok.Pos})
		case TokenLeftParen:
			m.ops = append(m.ops, pending{parenop, tok.Pos})
		case TokenRightParen:
			for {
				if len(m.ops) == 0 {
					return zero, &EvalError{Kind: UnbalancedParens, Col: tok.Pos, Op: ")"}
				}
				if m.top().isParen() {
					m.ops = m.ops[:len(m.ops)-1]
					break
				}
				if err := m.reduce(); err != nil {
					return zero, err
				}
			}
		case TokenOperator:
			p := binop(tok.Op)
			if p.isParen() {
				return zero, &TokenError{Col: tok.Pos, Tok: tok}
			}
			for len(m.ops) > 0 && m.top().reducesBefore(p) {
				if err := m.reduce(); err != nil {
					return zero, err
				}
			}
			m.ops = append(m.ops, pending{p, tok.Pos})
		default:
			return zero, &TokenError{Col: tok.Pos, Tok: tok}
		}
	}
	for len(m.ops) > 0 {
		if top := m.top(); top.isParen() {
			return zero, &EvalError{Kind: UnbalancedParens, Col: top.pos, Op: "("}
		}
		if err := m.reduce(); err != nil {
			return zero, err
		}
	}
	switch len(m.vals) {
	case 0:
		return zero, &EvalError{Kind: MalformedExpression}
	case 1:
		return m.vals[0].v, nil
	default:
		// Point at the first value that has no operator joining it.
		return zero, &EvalError{Kind: MalformedExpression, Col: m.vals[1].pos, N: len(m.vals)}
	}
}

// top is a shortcut to get the top of the operator stack.
func (m *machine[T]) top() pending {
	return m.ops[len(m.ops)-1]
}

// reduce pops the top operator and two operands b then a and pushes a op b.
func (m *machine[T]) reduce() error {
	p := m.top()
	m.ops = m.ops[:len(m.ops)-1]
	if len(m.vals) < 2 {
		return &EvalError{Kind: InsufficientOperands, Col: p.pos, Op: string(p.op)}
	}
	b := m.vals[len(m.vals)-1]
	a := m.vals[len(m.vals)-2]
	m.vals = m.vals[:len(m.vals)-2]
	r, err := m.join(p.operator, a.v, b.v)
	if err != nil {
		if ee, _ := err.(*EvalError); ee != nil && ee.Col == 0 {
			ee.Col = p.pos
		}
		return err
	}
	m.vals = append(m.vals, operand[T]{v: r, pos: a.pos})
	return nil
}

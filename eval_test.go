package infix_test

import (
	"errors"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/infix"
)

func TestEval(t *testing.T) {
	cases := []struct {
		name string
		src  string
		r    float64
	}{
		{"num", "1", 1},
		{"decimal", "2.5", 2.5},
		{"parens", "(1)", 1},
		{"deep-parens", "((((7))))", 7},
		{"add", "4+5+6", 4 + 5 + 6},
		{"sub", "8-3-2", 3},
		{"mul", "4*5*6", 4 * 5 * 6},
		{"div", "8/4/2", 1},
		{"mixed-left", "8/4*2", 4},
		{"mixed-right", "8-2+1", 7},
		{"precedence", "2+3*4", 14},
		{"precedence-div", "18 / 3 + 2", 8},
		{"grouping", "(2+3)*4", 20},
		{"example", "(6+7)-2*3", 7},
		{"right-group", "8-(3-2)", 7},
		{"two-groups", "(8 - 2) * (5 - 3)", 12},
		{"group-div", "(10 + 5) / (3 + 2)", 3},
		{"nested", "2*(3+(4-1)*2)", 18},
		{"spaced", "  6 +\t7\n", 13},
		{"zero-numerator", "0/5", 0},
		{"fraction", ".5+.25", 0.75},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := infix.EvalString(c.src)
			require.NoError(t, err)
			assert.Equal(t, c.r, r)
		})
	}
}

func TestEvalErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		kind infix.EvalErrorKind
		col  int
	}{
		{"div-zero", "5/0", infix.DivisionByZero, 2},
		{"div-zero-decimal", "5/0.0", infix.DivisionByZero, 2},
		{"div-zero-expr", "1+5/(2-2)", infix.DivisionByZero, 4},
		{"unclosed", "(1+2", infix.UnbalancedParens, 1},
		{"unopened", "1+2)", infix.UnbalancedParens, 4},
		{"unopened-first", ")", infix.UnbalancedParens, 1},
		{"inner-unclosed", "((1+2)", infix.UnbalancedParens, 1},
		{"empty", "", infix.MalformedExpression, 0},
		{"blank", "   ", infix.MalformedExpression, 0},
		{"empty-parens", "()", infix.MalformedExpression, 0},
		{"adjacent", "1 2", infix.MalformedExpression, 3},
		{"implicit-mul", "2(3)", infix.MalformedExpression, 3},
		{"unary-minus", "-5+3", infix.InsufficientOperands, 1},
		{"unary-after-op", "3*-2", infix.InsufficientOperands, 2},
		{"trailing-op", "1+", infix.InsufficientOperands, 2},
		{"lone-op", "*", infix.InsufficientOperands, 1},
		{"op-before-close", "(1+)", infix.InsufficientOperands, 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := infix.EvalString(c.src)
			var ee *infix.EvalError
			require.ErrorAs(t, err, &ee, "result %v", r)
			assert.Equal(t, c.kind, ee.Kind, "error %v", err)
			assert.Equal(t, c.col, ee.Pos(), "error %v", err)
			assert.ErrorIs(t, err, &infix.EvalError{Kind: c.kind})
			var ie infix.InputError
			assert.ErrorAs(t, err, &ie)
		})
	}
}

func TestEvalLexError(t *testing.T) {
	_, err := infix.EvalString("1.2.3+1")
	var le *infix.LexError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "number", le.Kind)
	var ee *infix.EvalError
	assert.False(t, errors.As(err, &ee))
}

func TestEvalErrorMessages(t *testing.T) {
	cases := []struct {
		src string
		msg string
	}{
		{"5/0", "2: division by zero"},
		{"(1+2", "1: open paren with no close paren"},
		{"1+2)", "4: close paren with no open paren"},
		{"", "no expression"},
		{"1 2 3", "3: missing operator: 3 values without an operator between them"},
		{"-5+3", `1: not enough operands for "-"`},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			_, err := infix.EvalString(c.src)
			require.Error(t, err)
			assert.Equal(t, c.msg, err.Error())
		})
	}
}

func TestEvalWhitespace(t *testing.T) {
	a, err := infix.EvalString("6 + 7")
	require.NoError(t, err)
	b, err := infix.EvalString("6+7")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestEvalIdempotent(t *testing.T) {
	for _, src := range []string{"(6+7)-2*3", "1/3", "5/0", "(1"} {
		r1, err1 := infix.EvalString(src)
		r2, err2 := infix.EvalString(src)
		assert.Equal(t, r1, r2, src)
		assert.Equal(t, err1, err2, src)
	}
}

func TestEvalNonFinite(t *testing.T) {
	huge := "1" + strings.Repeat("0", 400)
	r, err := infix.EvalString(huge + "-" + huge)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(r), "want NaN, got %v", r)

	r, err = infix.EvalString("1/" + huge)
	require.NoError(t, err)
	assert.Equal(t, 0.0, r)
}

func TestEvaluateTokens(t *testing.T) {
	toks := []infix.Token{
		{Kind: infix.TokenNumber, Value: 7, Pos: 1},
		{Kind: infix.TokenOperator, Op: '-', Pos: 2},
		{Kind: infix.TokenNumber, Value: 10, Pos: 3},
	}
	r, err := infix.Evaluate(toks)
	require.NoError(t, err)
	assert.Equal(t, -3.0, r)
}

func TestEvaluateInvalidTokens(t *testing.T) {
	cases := []struct {
		name string
		toks []infix.Token
	}{
		{"bad-op", []infix.Token{
			{Kind: infix.TokenNumber, Value: 2, Pos: 1},
			{Kind: infix.TokenOperator, Op: '^', Pos: 2},
			{Kind: infix.TokenNumber, Value: 3, Pos: 3},
		}},
		{"none", []infix.Token{{Kind: infix.TokenNone, Pos: 1}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := infix.Evaluate(c.toks)
			var te *infix.TokenError
			require.ErrorAs(t, err, &te)
			assert.Equal(t, c.toks[te.Pos()-1], te.Tok)
		})
	}
}

func TestEvaluatorReuse(t *testing.T) {
	ev := infix.NewEvaluator()
	srcs := []struct {
		src string
		r   float64
		err bool
	}{
		{"1+2", 3, false},
		{"(1", 0, true},
		{"2*3", 6, false},
		{"1 2", 0, true},
		{"9/3", 3, false},
	}
	// Failures must not leave anything behind on the stacks.
	for _, s := range srcs {
		r, err := ev.EvalString(s.src)
		if s.err {
			assert.Error(t, err, s.src)
			continue
		}
		require.NoError(t, err, s.src)
		assert.Equal(t, s.r, r, s.src)
	}
}

func TestEvalConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r, err := infix.EvalString("(6+7)-2*3")
				assert.NoError(t, err)
				assert.Equal(t, 7.0, r)
			}
		}()
	}
	wg.Wait()
}

package infix

import "strconv"

// EvalErrorKind classifies evaluation failures.
type EvalErrorKind int8

const (
	// UnbalancedParens is a close paren with no open paren before it, or an
	// open paren never closed.
	UnbalancedParens EvalErrorKind = iota + 1
	// InsufficientOperands is a reduction attempted with fewer than two
	// operands available, e.g. from a leading -.
	InsufficientOperands
	// MalformedExpression is an expression that leaves other than exactly
	// one value, e.g. an empty expression or two adjacent numbers.
	MalformedExpression
	// DivisionByZero is a division with a zero divisor.
	DivisionByZero
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=EvalErrorKind
//go:generate go mod tidy

// EvalError is an error from evaluating a well-lexed token sequence. It
// implements InputError.
type EvalError struct {
	// Kind is the class of failure.
	Kind EvalErrorKind
	// Col is the position of the token which caused the error, or 0 if the
	// error was detected at the end of input.
	Col int
	// Op is the source text of the operator or paren involved in the error,
	// if any.
	Op string
	// N is the number of values left over for MalformedExpression.
	N int
}

func (err *EvalError) Error() string {
	var msg string
	switch err.Kind {
	case UnbalancedParens:
		if err.Op == ")" {
			msg = "close paren with no open paren"
		} else {
			msg = "open paren with no close paren"
		}
	case InsufficientOperands:
		msg = "not enough operands for " + strconv.Quote(err.Op)
	case MalformedExpression:
		if err.N == 0 {
			msg = "no expression"
		} else {
			msg = "missing operator: " + strconv.Itoa(err.N) + " values without an operator between them"
		}
	case DivisionByZero:
		msg = "division by zero"
	default:
		msg = "evaluation failed: " + err.Kind.String()
	}
	return errpos(err.Col, msg)
}

func (err *EvalError) Pos() int {
	return err.Col
}

// Is reports whether target is an *EvalError of the same kind. This allows
// errors.Is(err, &EvalError{Kind: DivisionByZero}).
func (err *EvalError) Is(target error) bool {
	t, ok := target.(*EvalError)
	return ok && t.Kind == err.Kind
}

// TokenError is an error indicating a token that cannot appear in an
// evaluation, such as an operator outside Operators. Only hand-built token
// sequences produce it. It implements InputError.
type TokenError struct {
	// Col is the position of the token.
	Col int
	// Tok is the invalid token.
	Tok Token
}

func (err *TokenError) Error() string {
	return errpos(err.Col, "invalid token "+err.Tok.String())
}

func (err *TokenError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position. A
// position of 0 is omitted.
func errpos(pos int, msg string) string {
	if pos <= 0 {
		return msg
	}
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error, or 0 if the
	// error has no single position.
	Pos() int
}

var (
	_ InputError = (*EvalError)(nil)
	_ InputError = (*TokenError)(nil)
	_ InputError = (*LexError)(nil)
)

package infix

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Token is a single lexical element of an expression.
type Token struct {
	// Kind is the token's type.
	Kind TokenKind
	// Value is the value of a TokenNumber.
	Value float64
	// Op is the operator rune of a TokenOperator.
	Op rune
	// Pos is the 1-based rune column at which the token starts.
	Pos int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.text() + "@" + strconv.Itoa(t.Pos)
}

// text is the source form of the token.
func (t Token) text() string {
	switch t.Kind {
	case TokenNumber:
		return strconv.FormatFloat(t.Value, 'g', -1, 64)
	case TokenOperator:
		return string(t.Op)
	case TokenLeftParen:
		return "("
	case TokenRightParen:
		return ")"
	default:
		return ""
	}
}

// TokenKind is the type of a token.
type TokenKind int8

const (
	TokenNone TokenKind = iota
	// TokenNumber is a non-negative decimal numeral.
	TokenNumber
	// TokenOperator is one of the runes in Operators.
	TokenOperator
	// TokenLeftParen is (.
	TokenLeftParen
	// TokenRightParen is ).
	TokenRightParen
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=TokenKind -trimprefix=Token
//go:generate go mod tidy

// Operators contains the runes which are lexed as binary operators.
const Operators = "+-*/"

type lexer struct {
	src io.RuneScanner
	buf strings.Builder
	// col is the number of runes read so far.
	col int
}

// Lex scans every token from src. On error, the tokens scanned so far are
// returned along with the error.
func Lex(src io.RuneScanner) ([]Token, error) {
	l := lexer{src: src}
	var toks []Token
	for {
		tok, err := l.next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return toks, nil
			}
			return toks, err
		}
		toks = append(toks, tok)
	}
}

// Tokenize is a shortcut to scan the tokens of a string.
func Tokenize(src string) ([]Token, error) {
	return Lex(strings.NewReader(src))
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (rune, error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.col++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.col--
}

// next scans the next token from the input. At the end of input, the result
// is io.EOF.
func (l *lexer) next() (Token, error) {
	defer l.buf.Reset()
	for {
		r, err := l.readRune()
		if err != nil {
			// Either io.EOF or an error from the reader. Both end the scan.
			return Token{}, err
		}
		tok := Token{Pos: l.col}
		switch {
		case unicode.IsSpace(r):
			continue
		case '0' <= r && r <= '9', r == '.':
			l.unreadRune()
			v, err := l.scanNum()
			if err != nil {
				return Token{}, err
			}
			tok.Kind = TokenNumber
			tok.Value = v
			return tok, nil
		case r == '(':
			tok.Kind = TokenLeftParen
			return tok, nil
		case r == ')':
			tok.Kind = TokenRightParen
			return tok, nil
		case strings.ContainsRune(Operators, r):
			tok.Kind = TokenOperator
			tok.Op = r
			return tok, nil
		default:
			// Write the rune so that it shows up in the error message.
			l.buf.WriteRune(r)
			return Token{}, l.error("")
		}
	}
}

// scanNum scans a maximal run of digits and decimal points.
func (l *lexer) scanNum() (float64, error) {
	var dig, dot bool
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return 0, err
		}
		if r == '.' {
			l.buf.WriteRune(r)
			if dot {
				return 0, l.error("number")
			}
			dot = true
			continue
		}
		if r < '0' || '9' < r {
			l.unreadRune()
			break
		}
		l.buf.WriteRune(r)
		dig = true
	}
	if !dig {
		return 0, l.error("number")
	}
	v, err := strconv.ParseFloat(l.buf.String(), 64)
	if err != nil {
		// Too many digits gives ±Inf with ErrRange. Keep the infinity.
		if errors.Is(err, strconv.ErrRange) {
			return v, nil
		}
		return 0, l.error("number")
	}
	return v, nil
}

func (l *lexer) error(kind string) error {
	return &LexError{
		Text: l.buf.String(),
		Kind: kind,
		Col:  l.col,
	}
}

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the token the lexer was scanning when the invalid rune was
	// encountered, plus the invalid rune.
	Text string
	// Kind is the type of token the lexer was scanning. This is "number" or
	// the empty string if a token kind hadn't been decided.
	Kind string
	// Col is the total number of runes scanned by the lexer up to and
	// including this error.
	Col int
}

func (err *LexError) Error() string {
	pos := "column " + strconv.Itoa(err.Col)
	if err.Kind == "" {
		return "invalid token at " + pos + ": " + err.Text
	}
	return "invalid " + err.Kind + " token at " + pos + ": " + err.Text
}

func (err *LexError) Pos() int {
	return err.Col
}

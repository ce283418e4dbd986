// Package infix implements a calculator for arithmetic in infix notation.
//
// Expressions contain non-negative decimal numbers, the binary operators
// + - * /, and parentheses. "*" and "/" bind more tightly than "+" and "-",
// and operators of equal precedence group left to right, so "8-3-2" is
// "(8-3)-2". There is no unary minus: "-5+3" is an error.
//
// Evaluation is a single pass over the tokens with an operand stack and an
// operator stack. EvalString is the usual entry point. Parse checks an
// expression once so that it can be evaluated or displayed later.
//
package infix

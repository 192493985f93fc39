// Package evaluator computes the value of arithmetic expressions.
package evaluator

import (
	"fmt"

	"go.creack.net/calc/ast"
	"go.creack.net/calc/lexer"
	"go.creack.net/calc/parser"
)

// Resolve computes the value of the tree in post-order. Division follows
// IEEE-754: 1/0 is +Inf and 0/0 is NaN.
func Resolve(expr ast.Expr) float64 {
	switch e := expr.(type) {
	case ast.NumberExpr:
		return e.Value
	case ast.PrefixExpr:
		return resolvePrefix(e)
	case ast.BinaryExpr:
		return resolveBinary(e)
	default:
		return 0
	}
}

func resolvePrefix(e ast.PrefixExpr) float64 {
	switch e.Operator {
	case lexer.TokPlus:
		return Resolve(e.Right)
	case lexer.TokMinus:
		return -Resolve(e.Right)
	default: // Not produced by the parser.
		return 0
	}
}

func resolveBinary(e ast.BinaryExpr) float64 {
	switch e.Operator {
	case lexer.TokPlus:
		return Resolve(e.Left) + Resolve(e.Right)
	case lexer.TokMinus:
		return Resolve(e.Left) - Resolve(e.Right)
	case lexer.TokMultiply:
		return Resolve(e.Left) * Resolve(e.Right)
	case lexer.TokDivide:
		return Resolve(e.Left) / Resolve(e.Right)
	default: // Not produced by the parser.
		return 0
	}
}

// Evaluate lexes, parses and resolves the given expression.
//
// A malformed number yields a *lexer.NumericConversionError. Other malformed
// input is repaired silently unless parser.Strict is given, in which case a
// *parser.SyntaxError is returned.
func Evaluate(input string, opts ...parser.Option) (float64, error) {
	tokens, err := lexer.Tokenize(input)
	if err != nil {
		return 0, fmt.Errorf("tokenize: %w", err)
	}
	expr, err := parser.Parse(tokens, opts...)
	if err != nil {
		return 0, fmt.Errorf("parse: %w", err)
	}
	return Resolve(expr), nil
}

// MustEvaluate is like Evaluate but panics on error. Meant for inputs known
// to be valid.
func MustEvaluate(input string) float64 {
	v, err := Evaluate(input)
	if err != nil {
		panic(fmt.Errorf("evaluate %q: %w", input, err))
	}
	return v
}

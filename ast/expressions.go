package ast

import (
	"fmt"
	"strconv"

	"go.creack.net/calc/lexer"
)

type NumberExpr struct {
	Value float64
}

func (NumberExpr) expr() {}

func (n NumberExpr) Dump() string {
	return strconv.FormatFloat(n.Value, 'f', -1, 64)
}

// PrefixExpr is a unary sign applied to Right.
type PrefixExpr struct {
	Operator lexer.TokenType // TokPlus or TokMinus.
	Right    Expr
}

func (PrefixExpr) expr() {}

func (p PrefixExpr) Dump() string {
	return fmt.Sprintf("(%s%s)", p.Operator, dump(p.Right))
}

type BinaryExpr struct {
	Left     Expr
	Operator lexer.TokenType // TokPlus, TokMinus, TokMultiply or TokDivide.
	Right    Expr
}

func (BinaryExpr) expr() {}

func (b BinaryExpr) Dump() string {
	return fmt.Sprintf("(%s %s %s)", dump(b.Left), b.Operator, dump(b.Right))
}

func dump(e Expr) string {
	if e == nil {
		return "<nil>"
	}
	return e.Dump()
}

package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.creack.net/calc/lexer"
)

func TestDump(t *testing.T) {
	tests := []struct {
		name string
		expr Expr
		want string
	}{
		{name: "integer", expr: NumberExpr{Value: 4}, want: "4"},
		{name: "decimal", expr: NumberExpr{Value: 2.33}, want: "2.33"},
		{name: "large", expr: NumberExpr{Value: 1e21}, want: "1000000000000000000000"},
		{name: "prefix", expr: PrefixExpr{Operator: lexer.TokMinus, Right: NumberExpr{Value: 6}}, want: "(-6)"},
		{
			name: "binary",
			expr: BinaryExpr{
				Left:     BinaryExpr{Left: NumberExpr{Value: 1}, Operator: lexer.TokPlus, Right: NumberExpr{Value: 2}},
				Operator: lexer.TokDivide,
				Right:    PrefixExpr{Operator: lexer.TokPlus, Right: NumberExpr{Value: .5}},
			},
			want: "((1 + 2) / (+0.5))",
		},
		{name: "nil child", expr: PrefixExpr{Operator: lexer.TokMinus}, want: "(-<nil>)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.expr.Dump())
		})
	}
}

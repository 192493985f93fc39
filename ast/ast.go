// Package ast defines the syntax tree of an arithmetic expression.
package ast

// Structure following the grammar:
//
//	expr    := term ( ('+' | '-') term )*
//	term    := factor ( ('*' | '/') factor )*
//	factor  := number | ('+' | '-') factor | '(' expr ')'
//
// Precedence is encoded by the shape of the tree: lower precedence
// operators sit closer to the root.

// Expr is a node of the tree. The set of nodes is closed, see the expr()
// marker: NumberExpr, PrefixExpr and BinaryExpr.
type Expr interface {
	// Dump renders the node fully parenthesized. For a parsed tree, the
	// output parses back to the same tree.
	Dump() string
	expr()
}

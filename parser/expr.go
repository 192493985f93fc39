package parser

import (
	"go.creack.net/calc/ast"
	"go.creack.net/calc/lexer"
)

// parseExpr parses the lowest precedence level: term (('+' | '-') term)*.
func parseExpr(p *parser) (ast.Expr, error) {
	left, err := parseTerm(p)
	if err != nil {
		return nil, err
	}
	for p.curToken.Type.IsOneOf(lexer.TokPlus, lexer.TokMinus) {
		if left, err = parseBinaryExpr(p, left, parseTerm); err != nil {
			return nil, err
		}
	}
	return left, nil
}

// parseTerm parses factor (('*' | '/') factor)*.
func parseTerm(p *parser) (ast.Expr, error) {
	left, err := parseFactor(p)
	if err != nil {
		return nil, err
	}
	for p.curToken.Type.IsOneOf(lexer.TokMultiply, lexer.TokDivide) {
		if left, err = parseBinaryExpr(p, left, parseFactor); err != nil {
			return nil, err
		}
	}
	return left, nil
}

// parseBinaryExpr consumes the operator and folds left with the next
// operand, keeping the operators left-associative.
func parseBinaryExpr(p *parser, left ast.Expr, operand func(*parser) (ast.Expr, error)) (ast.Expr, error) {
	operator := p.curToken.Type
	p.nextToken()
	right, err := operand(p)
	if err != nil {
		return nil, err
	}

	return ast.BinaryExpr{
		Left:     left,
		Operator: operator,
		Right:    right,
	}, nil
}

func parseFactor(p *parser) (ast.Expr, error) {
	switch p.curToken.Type {
	case lexer.TokNumber:
		number := p.curToken.Num
		p.nextToken()
		return ast.NumberExpr{Value: number}, nil
	case lexer.TokPlus, lexer.TokMinus:
		return parsePrefixExpr(p)
	case lexer.TokParenLeft:
		return parseGroupingExpr(p)
	}

	if p.strict {
		return nil, p.errorf("expected operand but got %s", p.curToken.Type)
	}
	// Missing operand, read as 0. The token is left for the caller.
	return ast.NumberExpr{Value: 0}, nil
}

func parsePrefixExpr(p *parser) (ast.Expr, error) {
	operator := p.curToken.Type
	p.nextToken()
	right, err := parseFactor(p)
	if err != nil {
		return nil, err
	}

	return ast.PrefixExpr{
		Operator: operator,
		Right:    right,
	}, nil
}

func parseGroupingExpr(p *parser) (ast.Expr, error) {
	p.nextToken() // Consume the '('.
	expr, err := parseExpr(p)
	if err != nil {
		return nil, err
	}
	if p.strict {
		if err := p.expect(lexer.TokParenRight); err != nil {
			return nil, err
		}
	}
	// Consume the closing token, whatever it is.
	p.nextToken()
	return expr, nil
}

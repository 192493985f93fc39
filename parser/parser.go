package parser

import (
	"fmt"

	"go.creack.net/calc/ast"
	"go.creack.net/calc/lexer"
)

type parser struct {
	tokens []lexer.Token
	idx    int // Index of curToken in tokens.

	curToken lexer.Token

	strict bool
}

func newParser(tokens []lexer.Token, opts ...Option) *parser {
	p := &parser{tokens: tokens}
	for _, opt := range opts {
		opt(p)
	}
	p.curToken = p.tokenAt(0)
	return p
}

// Parse builds the tree for the given tokens, as returned by lexer.Tokenize.
//
// By default malformed input is repaired silently: a missing operand reads
// as 0, the token closing a parenthesis is not checked, and trailing tokens
// are ignored. Use Strict to get a *SyntaxError instead.
func Parse(tokens []lexer.Token, opts ...Option) (ast.Expr, error) {
	for _, tok := range tokens {
		if tok.Type == lexer.TokError {
			return nil, &SyntaxError{Pos: tok.Pos(), Token: tok, Msg: tok.Value}
		}
	}

	p := newParser(tokens, opts...)
	expr, err := parseExpr(p)
	if err != nil {
		return nil, err
	}
	if p.strict {
		if err := p.expect(lexer.TokEOF); err != nil {
			return nil, err
		}
	}
	return expr, nil
}

// tokenAt returns the token at index i. Past the end of the slice, it
// returns the EOF sentinel.
func (p *parser) tokenAt(i int) lexer.Token {
	if i < len(p.tokens) {
		return p.tokens[i]
	}
	if n := len(p.tokens); n > 0 && p.tokens[n-1].Type == lexer.TokEOF {
		return p.tokens[n-1]
	}
	return lexer.Token{Type: lexer.TokEOF}
}

// nextToken advances the cursor. Advancing from EOF stays on EOF.
func (p *parser) nextToken() lexer.Token {
	if p.curToken.Type != lexer.TokEOF {
		p.idx++
	}
	p.curToken = p.tokenAt(p.idx)
	return p.curToken
}

// expect checks if the current token is of the expected type.
func (p *parser) expect(kind ...lexer.TokenType) error {
	if p.curToken.Type.IsOneOf(kind...) {
		return nil
	}
	return p.errorf("expected %v but got %s", kind, p.curToken.Type)
}

func (p *parser) errorf(format string, args ...any) *SyntaxError {
	return &SyntaxError{
		Pos:   p.curToken.Pos(),
		Token: p.curToken,
		Msg:   fmt.Sprintf(format, args...),
	}
}

// SyntaxError reports malformed input. Only returned in strict mode, or
// when the tokens hold a TokError.
type SyntaxError struct {
	Pos   int         // Byte offset of the offending token.
	Token lexer.Token // Offending token.
	Msg   string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %d: %s", e.Pos, e.Msg)
}

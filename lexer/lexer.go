// Package lexer provides a simple lexical analyzer for arithmetic expressions.
package lexer

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const numberChars = "0123456789."

type Lexer struct {
	input string

	curToken Token
	err      error // Set when a TokError is emitted.

	atEOF bool

	pos   int // Current position in input.
	start int // Position of the start of the current token.
}

// New creates a new Lexer for the given input.
func New(input string) *Lexer {
	return &Lexer{
		input: input,
	}
}

// NextToken returns the next token from the input.
// Once the input is exhausted, every call returns TokEOF.
func (l *Lexer) NextToken() Token {
	l.curToken = Token{Type: TokEOF, pos: l.pos}
	state := lexText
	for {
		state = state(l)
		if state == nil {
			return l.curToken
		}
	}
}

// Err returns the error behind the last TokError, if any.
func (l *Lexer) Err() error {
	return l.err
}

// Tokenize lexes the whole input. The returned slice always ends with
// exactly one TokEOF.
func Tokenize(input string) ([]Token, error) {
	l := New(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		if tok.Type == TokError {
			return nil, l.Err()
		}
		tokens = append(tokens, tok)
		if tok.Type == TokEOF {
			return tokens, nil
		}
	}
}

func (l *Lexer) next() rune {
	if l.pos >= len(l.input) {
		l.atEOF = true
		return 0
	}
	r, n := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += n
	return r
}

func (l *Lexer) backup() {
	// If we reached eof, we can't back up.
	// If we are at the beginning of the input, we can't back up.
	if l.atEOF || l.pos == 0 {
		return
	}
	_, n := utf8.DecodeLastRuneInString(l.input[:l.pos])
	l.pos -= n
}

func (l *Lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

func (l *Lexer) acceptRun(valid string) bool {
	accepted := false
	for strings.ContainsRune(valid, l.next()) {
		accepted = true
	}
	l.backup()
	return accepted
}

func (l *Lexer) thisToken(tt TokenType) Token {
	t := Token{
		Type:  tt,
		Value: l.input[l.start:l.pos],
		pos:   l.start,
	}
	l.start = l.pos
	return t
}

func (l *Lexer) emitToken(t Token) stateFn {
	l.curToken = t
	return nil
}

func (l *Lexer) emit(tt TokenType) stateFn {
	return l.emitToken(l.thisToken(tt))
}

func (l *Lexer) ignore() {
	l.start = l.pos
}

// fail emits a TokError for err and drops the rest of the input.
func (l *Lexer) fail(err error) stateFn {
	l.err = err
	l.curToken = Token{
		Type:  TokError,
		Value: err.Error(),
		pos:   l.start,
	}
	l.start = 0
	l.pos = 0
	l.input = l.input[:0]
	return nil
}

// NumericConversionError reports a number literal that could not be
// converted to a float64, e.g. "1.2.3" or a lone ".".
type NumericConversionError struct {
	Text string // Offending literal.
	Pos  int    // Byte offset in the input.
	Err  error  // Underlying strconv error.
}

func (e *NumericConversionError) Error() string {
	return fmt.Sprintf("invalid number %q at %d: %s", e.Text, e.Pos, e.Err)
}

func (e *NumericConversionError) Unwrap() error { return e.Err }

package lexer

import (
	"strconv"
	"strings"
)

type stateFn func(*Lexer) stateFn

// List of runes that just advance one and emit a token.
var singles = map[rune]TokenType{
	'*': TokMultiply,
	'/': TokDivide,
	'+': TokPlus,
	'-': TokMinus,
	'(': TokParenLeft,
	')': TokParenRight,
}

func lexText(l *Lexer) stateFn {
	for {
		r := l.peek()
		if l.atEOF {
			return l.emit(TokEOF)
		}
		if strings.ContainsRune(numberChars, r) {
			return lexNumber
		}
		l.next()
		if tok, ok := singles[r]; ok {
			return l.emit(tok)
		}
		// Anything else, whitespace included, is dropped.
		l.ignore()
	}
}

func lexNumber(l *Lexer) stateFn {
	l.acceptRun(numberChars)
	text := l.input[l.start:l.pos]
	// Out of range literals fail too, so every number is finite.
	number, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return l.fail(&NumericConversionError{Text: text, Pos: l.start, Err: err})
	}
	tok := l.thisToken(TokNumber)
	tok.Num = number
	return l.emitToken(tok)
}

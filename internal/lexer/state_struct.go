package lexer

import (
	"chaic/internal/report"
	"chaic/internal/token"
)

// scanStructName reads the identifier after the `struct` keyword (spec
// §4.2, grounded on _StructNameState).
func (l *Lexer) scanStructName() {
	l.r.next()
	c := l.skipSpaces()
	if c == ':' {
		report.Fatal("lexer", "expected a struct name")
	}

	for isVarNameChar(c) {
		l.lexeme.WriteByte(c)
		c = l.r.next()
	}

	l.emit(token.StructName, l.takeLexeme())
	l.r.backtrack()
	l.state = stateDefault
}

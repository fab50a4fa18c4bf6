package lexer

import (
	"strings"

	"chaic/internal/report"
	"chaic/internal/token"
)

// scanIndexOperator consumes the body of a '[...]' index expression,
// tracking nested bracket depth, sub-tokenizes it, and closes with a
// CloseBracket (spec §4.2, grounded on _IndexOperatorState). Default
// already emitted IndexOperator and OpenBracket before entering this
// state and backtracked onto the leading '['.
func (l *Lexer) scanIndexOperator() {
	c := l.r.next()
	if c != '[' {
		report.ICE("lexer: index operator state entered without a leading '['")
	}

	var buf strings.Builder
	detectedEnd := false
	opens := 1

	for opens != 0 && c != nul {
		c = l.r.next()
		switch c {
		case '[':
			opens++
		case ']':
			opens--
		}

		if opens == 0 && c == ']' {
			detectedEnd = true
			break
		}
		if c != '\n' && !(isSpace(c) && buf.Len() == 0) {
			buf.WriteByte(c)
		}
	}

	if !detectedEnd {
		report.Fatal("lexer", "expected ']' to close an index operator")
	}

	l.tokens = append(l.tokens, subTokenize(buf.String())...)
	l.emit(token.CloseBracket, "]")
	l.state = stateDefault
}

package lexer

import (
	"chaic/internal/report"
	"chaic/internal/token"
)

// scanOperator performs maximal-munch operator resolution: starting from
// the character that triggered this state, it keeps extending a candidate
// string for as long as each next raw byte is itself a recognized
// single-character operator component, then looks the whole candidate up.
// If the candidate as a whole isn't a known operator, it falls back to
// just the first character and rewinds the cursor past whatever extra
// bytes it over-consumed (spec §4.2, grounded on _OperatorState).
func (l *Lexer) scanOperator() {
	l.r.backtrack()
	first := l.r.next()
	h := string(first)

	for {
		c := l.r.next()
		if _, ok := operators[string(c)]; !ok {
			l.r.backtrack()
			break
		}
		h += string(c)
	}

	entry, found := operators[h]
	lexeme := h
	if !found {
		entry, found = operators[string(first)]
		if !found {
			report.Fatal("lexer", "unrecognized operator starting with %q", string(first))
		}
		lexeme = string(first)
		for i := 0; i < len(h)-1; i++ {
			l.r.backtrack()
		}
	}

	if entry.kind != token.None {
		l.emit(entry.kind, lexeme)
	}
	l.state = entry.next
}

// scanAsterisksOperator disambiguates a bare '*' between multiplication
// and dereference based on what the lexer just emitted: an operand-ending
// token means multiplication, anything else means dereference (spec
// §4.2's AsterisksOperator state).
func (l *Lexer) scanAsterisksOperator() {
	switch l.lastKind() {
	case token.VariableReference, token.RValueChar, token.RValueNumber, token.RValueString:
		l.emit(token.MulOp, "*")
	default:
		l.emit(token.DereferenceOp, "")
	}
	l.state = stateDefault
}

func (l *Lexer) lastKind() token.Kind {
	if len(l.tokens) == 0 {
		return token.None
	}
	return l.tokens[len(l.tokens)-1].Kind
}

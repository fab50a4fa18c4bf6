package lexer

import (
	"chaic/internal/report"
	"chaic/internal/token"
)

// scanVariableName parses whatever follows a type keyword: an optional
// pointer declarator, an optional array declarator, then a comma-separated
// list of one or more variable names (spec §4.2's VariableName state,
// grounded on _VariableNameState).
func (l *Lexer) scanVariableName() {
	l.r.next()
	c := l.skipSpaces()

	if c == '(' || (c != '*' && (c == ':' || isOperatorChar(c))) {
		l.r.backtrack()
		l.state = stateDefault
		return
	}

	if c == '*' {
		l.r.backtrack()
		l.parsePointerDeclarator()
		c = l.r.next()
	}

	if c == '[' {
		l.parseArrayDeclarator()
		c = l.r.next()
	}

	if c == '\n' || c == nul {
		l.r.backtrack()
		l.state = stateDefault
		return
	}

	vars, commas := 0, 0
	for isVarNameChar(c) || isSpace(c) {
		if !isSpace(c) {
			l.lexeme.WriteByte(c)
		}
		c = l.r.next()

		if c == ',' {
			if l.lexeme.Len() == 0 {
				report.Fatal("lexer", "expected a variable name before a comma")
			}
			l.emit(token.VariableName, l.takeLexeme())
			l.emit(token.Comma, "")
			commas++
			vars++
			c = l.r.next()
		}
	}
	if l.lexeme.Len() > 0 {
		l.emit(token.VariableName, l.takeLexeme())
		vars++
	}
	if commas >= vars {
		report.Fatal("lexer", "expected a variable name after the trailing comma")
	}

	if !isSpace(c) {
		l.r.backtrack()
	}
	l.state = stateDefault
}

// parsePointerDeclarator consumes each '*' in a run, emitting PointerDef
// for each one, rejecting any space between them (spec §4.2, grounded on
// _ParsePointerDecleration).
func (l *Lexer) parsePointerDeclarator() {
	c := l.r.next()
	for c == '*' {
		l.emit(token.PointerDef, "*")
		c = l.r.next()
	}
	if !isSpace(c) && c != nul {
		l.r.backtrack()
	}
}

// parseArrayDeclarator parses the body of a single '[...]' declarator:
// empty yields DynamicArrayDef, "..." followed by digits yields
// StaticArrayDef(n). A nested '[' recurses (spec §4.2, grounded on
// _ParseArrayDecleration).
func (l *Lexer) parseArrayDeclarator() {
	c := l.r.next()

	sawDots := false
	for c != ']' && c != '\n' && c != nul {
		switch {
		case isDigit(c):
			l.lexeme.WriteByte(c)
		case c == '.' && !sawDots && l.lexeme.Len() == 0:
			d2, d3 := l.r.next(), l.r.next()
			if d2 != '.' || d3 != '.' {
				report.Fatal("lexer", "expected three dots in a static array size declarator")
			}
			sawDots = true
		default:
			report.Fatal("lexer", "unexpected character %q in an array size declarator", string(c))
		}
		c = l.r.next()
	}

	switch {
	case l.lexeme.Len() == 0 && !sawDots:
		l.emit(token.DynamicArrayDef, "")
	case l.lexeme.Len() > 0 && sawDots:
		l.emit(token.StaticArrayDef, l.takeLexeme())
	default:
		report.Fatal("lexer", "malformed static array size declarator")
	}

	c = l.r.next()
	for isSpace(c) {
		c = l.r.next()
	}
	switch c {
	case ']':
		report.Fatal("lexer", "found a closing ']' that was never opened")
	case '[':
		l.parseArrayDeclarator()
	case nul:
	default:
		l.r.backtrack()
	}
}

package lexer

import "chaic/internal/token"

// scanIndentation measures the indent level of the line just begun: each
// tab or each run of exactly four spaces counts as one level. Per spec §9
// Open Question 1, a rise of any magnitude emits exactly one
// StartIndentation, while a fall emits one EndIndentation per level
// dropped (spec §4.2's Indentation state, grounded on _IndentationState).
func (l *Lexer) scanIndentation() {
	c := l.r.next()
	if c == '\n' {
		c = l.r.next()
	}

	local := 0
loop:
	for {
		switch {
		case c == '\t':
			local++
			c = l.r.next()
		case c == ' ':
			spaces := 0
			for c == ' ' && spaces < 4 {
				c = l.r.next()
				spaces++
			}
			if spaces == 4 {
				local++
			} else {
				break loop
			}
		default:
			break loop
		}
	}

	if local > l.indent {
		l.emit(token.StartIndentation, "")
		l.indent = local
	}
	for l.indent > local {
		l.emit(token.EndIndentation, "")
		l.indent--
	}

	l.r.backtrack()
	l.state = stateDefault
}

package lexer

import "chaic/internal/report"

// scanComment discards everything up to the end of the line (spec §4.2,
// grounded on _CommentState).
func (l *Lexer) scanComment() {
	c := l.r.next()
	for c != '\n' && c != nul {
		c = l.r.next()
	}
	if c == '\n' {
		l.r.backtrack()
	}
	l.state = stateDefault
}

// scanMultilineComment discards everything up to the closing "*\"
// sequence (spec §4.2, grounded on _MultiLineCommentState).
func (l *Lexer) scanMultilineComment() {
	c := l.r.next()
	for c != nul {
		if c == '*' {
			n := l.r.next()
			if n == '\\' {
				l.state = stateDefault
				return
			}
			l.r.backtrack()
		}
		c = l.r.next()
	}
	report.Fatal("lexer", "multi-line comment was never closed")
}

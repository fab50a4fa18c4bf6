package lexer

import (
	"strings"

	"chaic/internal/report"
	"chaic/internal/token"
)

// scanFunctionName reads the name after the `function` keyword, or a bare
// Lambda if the name is omitted and parameters open immediately (spec
// §4.2, grounded on _FunctionNameState).
func (l *Lexer) scanFunctionName() {
	l.r.next()
	c := l.skipSpaces()

	if c == '(' {
		l.r.backtrack()
		l.emit(token.Lambda, "")
		l.state = stateFunctionParameters
		return
	}

	for isVarNameChar(c) {
		l.lexeme.WriteByte(c)
		c = l.r.next()
	}

	if c == '\n' {
		report.Fatal("lexer", "did not expect a newline immediately after a function name")
	}

	l.emit(token.FunctionName, l.takeLexeme())
	if c == '(' {
		l.r.backtrack()
	}
	l.state = stateFunctionParameters
}

// scanFunctionParameters splits a declared parameter list on top-level
// commas and recursively sub-tokenizes each argument's raw text, splicing
// the results between StartFunctionParameters and EndFunctionParameters
// (spec §4.2, grounded on _FunctionParameterState).
func (l *Lexer) scanFunctionParameters() {
	l.r.next()
	c := l.skipSpaces()
	if c != '(' {
		report.Fatal("lexer", "expected '(' to open a parameter declaration")
	}

	var args []string
	var buf strings.Builder
	detectedEnd := false

	for {
		c = l.r.next()
		if c == ',' || c == ')' || c == nul {
			if c == ')' {
				detectedEnd = true
			}
			if buf.Len() > 0 {
				args = append(args, buf.String())
			}
			buf.Reset()
			if c != ',' {
				break
			}
		} else if !(isSpace(c) && buf.Len() == 0) {
			buf.WriteByte(c)
		}
	}

	if !detectedEnd {
		report.Fatal("lexer", "expected ')' to close a parameter declaration")
	}

	l.emit(token.StartFunctionParameters, "")
	for _, arg := range args {
		l.tokens = append(l.tokens, subTokenize(arg)...)
	}
	l.emit(token.EndFunctionParameters, "")
	l.state = stateDefault
}

// scanFunctionCallArguments splits a call's argument list on top-level
// commas (tracking nested-paren depth so a call passed as an argument
// doesn't split early), sub-tokenizes each argument, and splices a Comma
// after every one except the last (spec §4.2, grounded on
// _FunctionParamaterState).
func (l *Lexer) scanFunctionCallArguments() {
	l.r.next()
	c := l.skipSpaces()
	if c != '(' {
		report.Fatal("lexer", "expected '(' to open a call's argument list")
	}

	var args []string
	var buf strings.Builder
	detectedEnd := false
	opens := 1

	for opens != 0 && c != nul {
		c = l.r.next()
		switch c {
		case '(':
			opens++
		case ')':
			opens--
		}

		switch {
		case c == ')' && opens == 0:
			detectedEnd = true
			if buf.Len() > 0 {
				args = append(args, buf.String())
			}
			buf.Reset()
		case c == ',' && opens == 1:
			if buf.Len() == 0 {
				report.Fatal("lexer", "expected an argument after a comma in a function call")
			}
			args = append(args, buf.String())
			buf.Reset()
		case c == nul:
			// unterminated, reported below
		default:
			if !(isSpace(c) && buf.Len() == 0) {
				buf.WriteByte(c)
			}
		}
	}

	if !detectedEnd {
		report.Fatal("lexer", "expected ')' to close a function call")
	}

	for _, arg := range args {
		l.tokens = append(l.tokens, subTokenize(arg)...)
		l.emit(token.Comma, "")
	}
	if len(l.tokens) > 0 && l.tokens[len(l.tokens)-1].Kind == token.Comma {
		l.tokens = l.tokens[:len(l.tokens)-1]
	}

	l.emit(token.CloseBracket, ")")
	l.state = stateDefault
}

// scanArrow routes to FunctionType only when the arrow immediately follows
// a parameter list; any other use of "->" falls back to Default (spec
// §4.2, grounded on _ArrowState).
func (l *Lexer) scanArrow() {
	n := len(l.tokens)
	if n >= 2 && l.tokens[n-2].Kind == token.EndFunctionParameters {
		l.state = stateFunctionType
		return
	}
	l.state = stateDefault
}

// scanFunctionType accumulates the raw return-type text up to the line's
// end or its trailing ':', emits it verbatim as FunctionType, and
// recursively sub-tokenizes it so the type's own declarator tokens are
// also available to whatever consumes the stream (spec §4.2, grounded on
// _FunctionTypeState).
func (l *Lexer) scanFunctionType() {
	l.r.next()
	c := l.skipSpaces()

	for c != '\n' && c != nul && c != ':' {
		l.lexeme.WriteByte(c)
		c = l.r.next()
	}

	lexeme := l.takeLexeme()
	l.emit(token.FunctionType, lexeme)
	l.tokens = append(l.tokens, subTokenize(lexeme)...)

	l.r.backtrack()
	l.state = stateDefault
}

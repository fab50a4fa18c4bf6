// Package parser builds the AST node set of internal/ast from a flat
// token stream produced by internal/lexer. It is a hand-written recursive
// descent parser over a token slice rather than a streaming lexer, since
// internal/lexer.Tokenize already materializes the whole stream (spec
// §4.2's sub-lexing already resolved every splice by the time this package
// sees it).
package parser

import (
	"chaic/internal/report"
	"chaic/internal/token"
)

// Parser walks a fixed token slice with a single cursor. Every parse
// function assumes it starts positioned on the first token of its
// production and leaves the cursor on the first token past it, mirroring
// the teacher's own recursive-descent parser discipline (got/assert/want).
type Parser struct {
	tokens []token.Token
	pos    int

	scope *scope
	funcs map[string]funcSignature
}

// New creates a Parser over a complete token stream.
func New(tokens []token.Token) *Parser {
	return &Parser{
		tokens: tokens,
		funcs:  make(map[string]funcSignature),
	}
}

func (p *Parser) cur() token.Token {
	if p.pos >= len(p.tokens) {
		return token.New(token.EOF, "")
	}
	return p.tokens[p.pos]
}

func (p *Parser) peek(n int) token.Token {
	if p.pos+n >= len(p.tokens) {
		return token.New(token.EOF, "")
	}
	return p.tokens[p.pos+n]
}

func (p *Parser) next() token.Token {
	tok := p.cur()
	p.pos++
	return tok
}

func (p *Parser) atEnd() bool {
	return p.pos >= len(p.tokens)
}

// expect asserts the current token's kind and consumes it, fatally
// reporting a parse error otherwise (spec §7: every lexical/structural
// error is fatal, no recovery).
func (p *Parser) expect(kind token.Kind) token.Token {
	tok := p.cur()
	if tok.Kind != kind {
		report.Fatal("parser", "expected token kind %d, got %d (%q)", kind, tok.Kind, tok.Lexeme)
	}
	return p.next()
}

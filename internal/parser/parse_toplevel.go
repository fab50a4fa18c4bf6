package parser

import (
	"chaic/internal/ast"
	"chaic/internal/report"
	"chaic/internal/token"
)

// ParseFile builds the top-level declaration list: a sequence of
// FunctionDeclaration and Struct nodes in source order (spec §5's
// sequential-ordering guarantee for lowering).
func ParseFile(tokens []token.Token) []ast.Node {
	p := New(tokens)
	p.prescanFunctionSignatures()

	var decls []ast.Node
	for !p.atEnd() {
		switch p.cur().Kind {
		case token.EndLine:
			p.next()
		case token.FunctionName:
			decls = append(decls, p.parseFunctionDeclaration())
		case token.StructName:
			decls = append(decls, p.parseStruct())
		case token.EOF:
			return decls
		default:
			report.Fatal("parser", "expected a function or struct declaration at the top level, found token kind %d", p.cur().Kind)
		}
	}
	return decls
}

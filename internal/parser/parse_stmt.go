package parser

import (
	"strconv"

	"chaic/internal/ast"
	"chaic/internal/report"
	"chaic/internal/token"
	"chaic/internal/types"
)

// parseStatementList parses the body of a function: a sequence of
// statements until the block's EndIndentation (spec §4.4: a
// FunctionDeclaration lowers its children in order, stopping at the
// first ReturnStatement).
func (p *Parser) parseStatementList() []ast.Node {
	var stmts []ast.Node
	for p.cur().Kind != token.EndIndentation && p.cur().Kind != token.EOF {
		if p.cur().Kind == token.EndLine {
			p.next()
			continue
		}
		stmts = append(stmts, p.parseStatement()...)
	}
	return stmts
}

// parseStatement parses exactly one source line's worth of statement and
// returns the node(s) it produces -- more than one for a declaration that
// names several variables at once ("int32 x, y").
func (p *Parser) parseStatement() []ast.Node {
	switch p.cur().Kind {
	case token.ReturnKeyword:
		return []ast.Node{p.parseReturnStatement()}
	case token.IfKeyword, token.ElseKeyword:
		report.Fatal("parser", "conditional statements are lexed but have no lowering contract in this front end")
		return nil
	default:
		if p.cur().Kind.IsPrimitiveType() {
			return p.parseVariableDeclaration()
		}
		return []ast.Node{p.parseExpressionUntilLineEnd()}
	}
}

// parseVariableDeclaration parses a declared type (with any pointer/array
// declarators) followed by a comma-separated identifier list, producing
// one VariableDeclaration per name (spec §4.4 and SPEC_FULL.md §C).
func (p *Parser) parseVariableDeclaration() []ast.Node {
	vt := primitiveVariableType(p.next().Kind)
	typ := p.parseDeclaredType(vt)

	var decls []ast.Node
	for {
		name := p.expect(token.VariableName).Lexeme
		p.scope.declare(name, vt)
		decls = append(decls, ast.NewVariableDeclaration(name, typ))

		if p.cur().Kind == token.Comma {
			p.next()
			continue
		}
		break
	}

	p.expect(token.EndLine)
	return decls
}

// parseDeclaredType consumes any pointer/array declarator tokens following
// a base primitive type, building the nested types.Type wrapper
// SPEC_FULL.md §C adds on top of spec §3's plain AbstractType.
func (p *Parser) parseDeclaredType(vt types.VariableType) types.Type {
	var typ types.Type = types.NewPrimitive(vt, types.RValue)

	for p.cur().Kind == token.PointerDef {
		p.next()
		typ = types.PointerType{Elem: typ}
	}

	for p.cur().Kind == token.DynamicArrayDef || p.cur().Kind == token.StaticArrayDef {
		if p.cur().Kind == token.DynamicArrayDef {
			p.next()
			typ = types.ArrayType{Elem: typ, Dynamic: true}
			continue
		}

		n, err := strconv.ParseUint(p.cur().Lexeme, 10, 64)
		if err != nil {
			report.Fatal("parser", "malformed static array length %q", p.cur().Lexeme)
		}
		p.next()
		typ = types.ArrayType{Elem: typ, Len: n}
	}

	return typ
}

// parseReturnStatement parses `return` optionally followed by an
// expression (spec §4.4: no children means return-void).
func (p *Parser) parseReturnStatement() ast.Node {
	p.expect(token.ReturnKeyword)

	if p.cur().Kind == token.EndLine {
		p.next()
		return ast.NewReturnStatement()
	}

	// parseExpressionUntilLineEnd already consumes the trailing EndLine.
	return ast.NewReturnStatement(p.parseExpressionUntilLineEnd())
}

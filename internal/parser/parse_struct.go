package parser

import (
	"chaic/internal/ast"
	"chaic/internal/report"
	"chaic/internal/token"
	"chaic/internal/types"
)

// parseStruct parses a StructName token through its indented member list
// (spec §4.4's Struct node: name plus members, each a name/type pair).
func (p *Parser) parseStruct() *ast.Struct {
	name := p.expect(token.StructName).Lexeme
	p.expect(token.EndLine)
	p.expect(token.StartIndentation)

	var members []ast.Member
	for p.cur().Kind != token.EndIndentation {
		if !p.cur().Kind.IsPrimitiveType() {
			report.Fatal("parser", "expected a member type in struct %q, found token kind %d", name, p.cur().Kind)
		}
		vt := primitiveVariableType(p.next().Kind)

		if p.cur().Kind == token.PointerDef || p.cur().Kind == token.DynamicArrayDef || p.cur().Kind == token.StaticArrayDef {
			report.Fatal("parser", "pointer and array member declarators are not supported")
		}

		for {
			fieldName := p.expect(token.VariableName).Lexeme
			members = append(members, ast.Member{Name: fieldName, Field: types.NewPrimitive(vt, types.RValue)})
			if p.cur().Kind == token.Comma {
				p.next()
				continue
			}
			break
		}

		p.expect(token.EndLine)
	}

	p.expect(token.EndIndentation)
	return ast.NewStruct(name, members)
}

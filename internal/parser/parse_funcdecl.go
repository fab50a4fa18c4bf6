package parser

import (
	"chaic/internal/ast"
	"chaic/internal/report"
	"chaic/internal/token"
	"chaic/internal/types"
)

// parseFunctionDeclaration parses a FunctionName token through either a
// trailing EndLine (an external, bodyless declaration -- SPEC_FULL.md §C's
// generalization of spec §9 Open Question 4) or a full indented body.
func (p *Parser) parseFunctionDeclaration() *ast.FunctionDeclaration {
	name := p.expect(token.FunctionName).Lexeme

	params := p.parseParamList()

	returnType := types.NewPrimitive(types.None, types.RValue)
	if p.cur().Kind == token.Arrow {
		p.next()
		p.expect(token.FunctionType)
		if !p.cur().Kind.IsPrimitiveType() {
			report.Fatal("parser", "function %q declares a non-primitive return type, which this front end does not support", name)
		}
		returnType = types.NewPrimitive(primitiveVariableType(p.next().Kind), types.RValue)
	}

	p.expect(token.EndLine)

	prevScope := p.scope
	p.scope = newScope()
	for _, param := range params {
		p.scope.declare(param.Name, param.Type.Get())
	}

	var body []ast.Node
	if p.cur().Kind == token.StartIndentation {
		p.next()
		body = p.parseStatementList()
		p.expect(token.EndIndentation)
	}

	p.scope = prevScope

	return ast.NewFunctionDeclaration(name, returnType, params, body...)
}

// parseParamList parses the declared-parameter token run between
// StartFunctionParameters and EndFunctionParameters. Declared parameters
// are spliced with no Comma delimiter between them (internal/lexer splits
// on commas before sub-tokenizing each parameter in isolation), so each
// iteration reads exactly one "<type> <name>" pair.
func (p *Parser) parseParamList() []types.Parameter {
	p.expect(token.StartFunctionParameters)

	var params []types.Parameter
	for p.cur().Kind != token.EndFunctionParameters {
		if !p.cur().Kind.IsPrimitiveType() {
			report.Fatal("parser", "expected a parameter type, found token kind %d", p.cur().Kind)
		}
		vt := primitiveVariableType(p.next().Kind)

		if p.cur().Kind == token.PointerDef || p.cur().Kind == token.DynamicArrayDef || p.cur().Kind == token.StaticArrayDef {
			report.Fatal("parser", "pointer and array parameter declarators are not supported")
		}

		name := p.expect(token.VariableName).Lexeme
		params = append(params, types.Parameter{Name: name, Type: types.NewPrimitive(vt, types.RValue)})
	}

	p.expect(token.EndFunctionParameters)
	return params
}

package parser

import (
	"chaic/internal/token"
	"chaic/internal/types"
)

// primitiveVariableType maps a primitive-type keyword token kind to its
// types.VariableType tag. Callers must check Kind.IsPrimitiveType first.
func primitiveVariableType(kind token.Kind) types.VariableType {
	switch kind {
	case token.Int8Type:
		return types.Int8
	case token.Int16Type:
		return types.Int16
	case token.Int32Type:
		return types.Int32
	case token.Int64Type:
		return types.Int64
	case token.Uint8Type:
		return types.Uint8
	case token.Uint16Type:
		return types.Uint16
	case token.Uint32Type:
		return types.Uint32
	case token.Uint64Type:
		return types.Uint64
	case token.Float32Type:
		return types.Float32
	case token.Float64Type:
		return types.Float64
	case token.BoolType:
		return types.Bool
	case token.StringType:
		return types.String
	default:
		return types.Int32
	}
}

// prescanFunctionSignatures populates p.funcs with every top-level
// function's return type before any body is parsed, so a call to a
// function declared later in the file still resolves (spec §9 Open
// Question 3 notes this language has no nested function declarations, so
// a flat forward scan for FunctionName tokens is safe).
func (p *Parser) prescanFunctionSignatures() {
	for i := 0; i < len(p.tokens); i++ {
		if p.tokens[i].Kind != token.FunctionName {
			continue
		}
		name := p.tokens[i].Lexeme

		depth := 0
		j := i + 1
		for ; j < len(p.tokens); j++ {
			switch p.tokens[j].Kind {
			case token.StartFunctionParameters:
				depth++
			case token.EndFunctionParameters:
				depth--
			}
			if depth == 0 && p.tokens[j].Kind == token.EndFunctionParameters {
				j++
				break
			}
		}

		rt := types.None
		if j < len(p.tokens) && p.tokens[j].Kind == token.Arrow {
			j++
			if j < len(p.tokens) && p.tokens[j].Kind == token.FunctionType {
				j++
				if j < len(p.tokens) && p.tokens[j].Kind.IsPrimitiveType() {
					rt = primitiveVariableType(p.tokens[j].Kind)
				}
			}
		}

		p.funcs[name] = funcSignature{returnType: rt}
	}
}

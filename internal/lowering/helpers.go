package lowering

import (
	lltypes "github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"

	"chaic/internal/ast"
	"chaic/internal/types"
)

// loadIfAddress loads through v when node is one of the address-yielding
// node kinds (VariableExpression, FieldAccess, IndexExpression,
// Dereference), matching the lhsVar.Type().(*types.PointerType).ElemType
// load idiom used wherever the front end consumes an addressable operand
// as a value. Literal and BinaryExpression results are already values and
// pass through unchanged.
func loadIfAddress(ctx *LoweringContext, node ast.Node, v value.Value) value.Value {
	switch node.(type) {
	case *ast.VariableExpression, *ast.FieldAccess, *ast.IndexExpression, *ast.Dereference:
		ptrType := v.Type().(*lltypes.PointerType)
		return ctx.Backend.BuildLoad(ptrType.ElemType, v)
	default:
		return v
	}
}

// operandTag reports the VariableType tag a binary or index operand should
// be cast from. A Literal carries its own type explicitly; every other
// node kind is assumed to already evaluate to the caller-supplied expected
// tag, since this front end performs no separate type-checking pass ahead
// of lowering.
func operandTag(node ast.Node, expected types.VariableType) types.VariableType {
	if lit, ok := node.(*ast.Literal); ok {
		return lit.Type.Get()
	}
	return expected
}

// recordFor finds the record descriptor owning struct type st. Struct
// lowering is the only place new entries are added to ctx.Records, so a
// miss here means a field access was aimed at a slot that was never
// produced from a Struct declaration.
func recordFor(ctx *LoweringContext, st *lltypes.StructType) types.ObjectReferenceInfo {
	for _, info := range ctx.Records {
		if info.Struct == st {
			return info
		}
	}

	panic("recordFor: struct type has no registered record")
}

package lowering

import (
	lltypes "github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"

	"chaic/internal/ast"
	"chaic/internal/report"
	"chaic/internal/types"
)

// lowerIndexExpression addresses an element of an array-typed slot,
// casting the index to Int64 first (SPEC_FULL.md §C).
func lowerIndexExpression(ctx *LoweringContext, ie *ast.IndexExpression) value.Value {
	baseAddr := Lower(ctx, ie.Target())

	indexNode := ie.Index()
	index := loadIfAddress(ctx, indexNode, Lower(ctx, indexNode))
	index = ctx.Backend.CastValue(index, operandTag(indexNode, types.Int64), types.Int64)

	ptrType, ok := baseAddr.Type().(*lltypes.PointerType)
	if !ok {
		report.ICE("lowerIndexExpression: indexed target is not an addressable slot")
	}

	return ctx.Backend.BuildArrayElemAddr(ptrType.ElemType, baseAddr, index)
}

package lowering

import (
	lltypes "github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"

	"chaic/internal/ast"
	"chaic/internal/report"
)

// lowerDereference loads the pointer-typed slot produced by its operand,
// yielding the pointer value itself, which becomes the effective address
// for whatever expression encloses this node (SPEC_FULL.md §C).
func lowerDereference(ctx *LoweringContext, d *ast.Dereference) value.Value {
	slot := Lower(ctx, d.Operand())

	ptrType, ok := slot.Type().(*lltypes.PointerType)
	if !ok {
		report.ICE("lowerDereference: operand is not a pointer-typed slot")
	}

	return ctx.Backend.BuildLoad(ptrType.ElemType, slot)
}

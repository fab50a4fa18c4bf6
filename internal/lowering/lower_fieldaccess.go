package lowering

import (
	lltypes "github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"

	"chaic/internal/ast"
	"chaic/internal/report"
)

// lowerFieldAccess addresses a named member of a struct-typed slot,
// supplemented in SPEC_FULL.md §C as the lowering companion of
// Struct/ObjectReferenceInfo.
func lowerFieldAccess(ctx *LoweringContext, fa *ast.FieldAccess) value.Value {
	baseAddr := Lower(ctx, fa.Target())

	ptrType, ok := baseAddr.Type().(*lltypes.PointerType)
	if !ok {
		report.ICE("lowerFieldAccess: base of field %q is not an addressable slot", fa.FieldName)
	}

	structType, ok := ptrType.ElemType.(*lltypes.StructType)
	if !ok {
		report.Fatal("lowering", "field access %q on a non-struct value", fa.FieldName)
	}

	info := recordFor(ctx, structType)
	idx, ok := info.Indices[fa.FieldName]
	if !ok {
		report.Fatal("lowering", "struct has no field named %q", fa.FieldName)
	}

	return ctx.Backend.BuildStructFieldAddr(structType, baseAddr, idx)
}

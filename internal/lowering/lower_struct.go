package lowering

import (
	lltypes "github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"

	"chaic/internal/ast"
	"chaic/internal/types"
)

// lowerStruct defines the struct's IR layout and records it under its name
// so later FieldAccess/VariableDeclaration lowering can resolve it (spec
// §4.4).
func lowerStruct(ctx *LoweringContext, s *ast.Struct) value.Value {
	fieldTypes := make([]lltypes.Type, len(s.Members))
	indices := make(map[string]int, len(s.Members))

	for i, m := range s.Members {
		fieldTypes[i] = m.Field.LLVMType(ctx.Records)
		indices[m.Name] = i
	}

	st := ctx.Backend.DefineStruct(s.Name, fieldTypes...)
	ctx.Records[s.Name] = types.ObjectReferenceInfo{Struct: st, Indices: indices}
	return nil
}

package lowering

import (
	"github.com/llir/llvm/ir/value"

	"chaic/internal/ast"
	"chaic/internal/report"
)

// lowerVariableExpression returns the variable's allocation slot -- its
// address, not its loaded value (spec §4.4).
func lowerVariableExpression(ctx *LoweringContext, ve *ast.VariableExpression) value.Value {
	slot, ok := lookupVariable(ctx, ve.Name)
	if !ok {
		report.Fatal("lowering", "reference to undeclared variable %q", ve.Name)
	}

	return slot
}

// lowerVariableDeclaration allocates a new stack slot for the declared
// name, rejecting a redeclaration (spec §4.4).
func lowerVariableDeclaration(ctx *LoweringContext, vd *ast.VariableDeclaration) value.Value {
	if _, exists := ctx.Variables[vd.Name]; exists {
		report.Fatal("lowering", "redeclaration of variable %q", vd.Name)
	}

	slot := ctx.Backend.BuildAlloca(vd.Type.LLVMType(ctx.Records))
	ctx.Variables[vd.Name] = slot
	return slot
}

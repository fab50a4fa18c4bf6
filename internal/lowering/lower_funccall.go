package lowering

import (
	lltypes "github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"

	"chaic/internal/ast"
	"chaic/internal/report"
	"chaic/internal/types"
)

// lowerFunctionCall implements the original ASTFunctionCall's Codegen
// contract, generalized per SPEC_FULL.md §C: every argument is cast to its
// declared parameter type, then the call is emitted against whatever
// symbol lowerFunctionDeclaration already registered for the callee,
// whether internal or external (replacing the original's hard-coded
// sleep/_sleep/nanosleep branches).
func lowerFunctionCall(ctx *LoweringContext, fc *ast.FunctionCall) value.Value {
	params, ok := ctx.FunctionSignatures[fc.Name]
	if !ok {
		report.Fatal("lowering", "call to undeclared function %q", fc.Name)
	}

	fn := ctx.Backend.GetFunction(fc.Name)
	if fn == nil {
		report.ICE("lowerFunctionCall: function %q has a signature but no declared symbol", fc.Name)
	}

	args := make([]value.Value, len(fc.Arguments))
	for i, arg := range fc.Arguments {
		var v value.Value

		if arg.Field.GetKind() == types.LValue {
			slot, ok := lookupVariable(ctx, arg.Data)
			if !ok {
				report.Fatal("lowering", "reference to undeclared variable %q in call to %q", arg.Data, fc.Name)
			}
			ptrType := slot.Type().(*lltypes.PointerType)
			v = ctx.Backend.BuildLoad(ptrType.ElemType, slot)
		} else {
			v = lowerLiteral(ctx, ast.NewLiteral(arg.Data, arg.Field))
		}

		if i < len(params) {
			v = ctx.Backend.CastValue(v, arg.Field.Get(), params[i].Type.Get())
		}

		args[i] = v
	}

	return ctx.Backend.BuildCall(fn, args...)
}

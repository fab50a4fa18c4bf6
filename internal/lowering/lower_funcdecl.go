package lowering

import (
	lltypes "github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"

	"chaic/internal/ast"
	"chaic/internal/report"
	"chaic/internal/types"
)

// lowerFunctionDeclaration implements the original ASTFunctionDecleration's
// Codegen contract: a bodyless declaration (FunctionDeclaration.IsExternal)
// becomes a declared-only external symbol (SPEC_FULL.md §C's
// generalization of spec §9 Open Question 4); otherwise it creates the
// function, allocates and stores each parameter under "<fn>::<param>",
// lowers children up to and including the first ReturnStatement, removes
// the parameter slots from scope, and emits an implicit return-void if the
// body falls off the end unterminated.
func lowerFunctionDeclaration(ctx *LoweringContext, fd *ast.FunctionDeclaration) value.Value {
	ctx.FunctionSignatures[fd.Name] = fd.Params

	paramTypes := make([]lltypes.Type, len(fd.Params))
	for i, p := range fd.Params {
		paramTypes[i] = p.Type.LLVMType(ctx.Records)
	}
	var retType lltypes.Type = lltypes.Void
	if fd.ReturnType.Get() != types.None {
		retType = fd.ReturnType.LLVMType(ctx.Records)
	}

	if fd.IsExternal() {
		ctx.Backend.GetOrInsertFunction(fd.Name, paramTypes, retType)
		return nil
	}

	paramNames := make([]string, len(fd.Params))
	for i, p := range fd.Params {
		paramNames[i] = p.Name
	}

	fn := ctx.Backend.DeclareFunction(fd.Name, paramNames, paramTypes, retType)
	entry := fn.NewBlock("entry")

	ctx.Backend.SaveInsertPoint()
	ctx.Backend.SetInsertPoint(fn, entry)

	paramSlots := make([]string, len(fd.Params))
	for i, p := range fd.Params {
		slotName := fd.Name + "::" + p.Name
		slot := ctx.Backend.BuildAlloca(paramTypes[i])
		ctx.Backend.BuildStore(fn.Params[i], slot)
		ctx.Variables[slotName] = slot
		paramSlots[i] = slotName
	}

	for _, child := range fd.Children() {
		Lower(ctx, child)
		if _, isReturn := child.(*ast.ReturnStatement); isReturn {
			break
		}
	}

	for _, slotName := range paramSlots {
		delete(ctx.Variables, slotName)
	}

	if !ctx.Backend.HasTerminator() {
		if fd.ReturnType.Get() != types.None {
			report.Warn("lowering", "function %q falls off its end without returning a value", fd.Name)
		}
		ctx.Backend.BuildRetVoid()
	}

	ctx.Backend.RestoreInsertPoint()
	return nil
}

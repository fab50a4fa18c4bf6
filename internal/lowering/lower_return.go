package lowering

import (
	"github.com/llir/llvm/ir/value"

	"chaic/internal/ast"
)

// lowerReturnStatement lowers the statement's single child, if any, and
// emits a return of that value, or a bare return-void otherwise (spec
// §4.4).
func lowerReturnStatement(ctx *LoweringContext, rs *ast.ReturnStatement) value.Value {
	children := rs.Children()
	if len(children) == 0 {
		ctx.Backend.BuildRetVoid()
		return nil
	}

	v := loadIfAddress(ctx, children[0], Lower(ctx, children[0]))
	ctx.Backend.BuildRet(v)
	return nil
}

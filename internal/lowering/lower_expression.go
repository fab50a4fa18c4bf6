package lowering

import (
	"github.com/llir/llvm/ir/value"

	"chaic/internal/ast"
	"chaic/internal/report"
)

// lowerExpression reassembles the flat RPN child sequence into a binary
// tree with an explicit operand stack, mirroring the original
// ASTExpression::Codegen's use of std::stack<Ref<ASTNodeBase>>: each
// BinaryExpression operator pops its right operand then its left operand
// off the stack, attaches them (right first, so child[0]=right,
// child[1]=left), and pushes itself back on. The single node left on the
// stack once the sequence is exhausted is the root, which is then lowered.
func lowerExpression(ctx *LoweringContext, expr *ast.Expression) value.Value {
	var stack []ast.Node

	for _, child := range expr.Children() {
		be, isOperator := child.(*ast.BinaryExpression)
		if !isOperator {
			stack = append(stack, child)
			continue
		}

		n := len(stack)
		if n < 2 {
			report.ICE("lowerExpression: operator %v has fewer than two operands on the stack", be.Op)
		}

		rhs, lhs := stack[n-1], stack[n-2]
		stack = stack[:n-2]

		be.PushChild(rhs)
		be.PushChild(lhs)
		stack = append(stack, be)
	}

	if len(stack) != 1 {
		report.ICE("lowerExpression: malformed RPN sequence left %d operands on the stack", len(stack))
	}

	return Lower(ctx, stack[0])
}

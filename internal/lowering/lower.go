package lowering

import (
	"github.com/llir/llvm/ir/value"

	"chaic/internal/ast"
	"chaic/internal/report"
)

// Lower dispatches node to its lowering function and returns its value
// handle, or nil for statement nodes that produce none (spec §4.4). This
// is the single type switch spec §9's design note asks for in place of
// virtual dispatch across node kinds.
func Lower(ctx *LoweringContext, node ast.Node) value.Value {
	switch n := node.(type) {
	case *ast.Literal:
		return lowerLiteral(ctx, n)
	case *ast.VariableExpression:
		return lowerVariableExpression(ctx, n)
	case *ast.VariableDeclaration:
		return lowerVariableDeclaration(ctx, n)
	case *ast.BinaryExpression:
		return lowerBinaryExpression(ctx, n)
	case *ast.Expression:
		return lowerExpression(ctx, n)
	case *ast.ReturnStatement:
		return lowerReturnStatement(ctx, n)
	case *ast.Struct:
		return lowerStruct(ctx, n)
	case *ast.FunctionDeclaration:
		return lowerFunctionDeclaration(ctx, n)
	case *ast.FunctionCall:
		return lowerFunctionCall(ctx, n)
	case *ast.FieldAccess:
		return lowerFieldAccess(ctx, n)
	case *ast.IndexExpression:
		return lowerIndexExpression(ctx, n)
	case *ast.Dereference:
		return lowerDereference(ctx, n)
	default:
		report.ICE("lowering: unhandled AST node kind %T", node)
		return nil
	}
}

// LowerAll lowers each top-level node (declarations at file scope) in
// source order, per spec §5's sequential-ordering guarantee.
func LowerAll(ctx *LoweringContext, nodes []ast.Node) {
	for _, n := range nodes {
		Lower(ctx, n)
	}
}

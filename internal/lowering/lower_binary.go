package lowering

import (
	"github.com/llir/llvm/ir/value"

	"chaic/internal/ast"
	"chaic/internal/report"
	"chaic/internal/types"
)

// lowerBinaryExpression implements the original ASTBinaryExpression's
// Codegen contract: children[1] is the left operand, children[0] is the
// right operand; both are cast to ExpectedType where they differ, then
// dispatched by operator class (spec §4.4/§4.5).
func lowerBinaryExpression(ctx *LoweringContext, be *ast.BinaryExpression) value.Value {
	lhsNode, rhsNode := be.Children()[1], be.Children()[0]
	expected := be.ExpectedType.Get()

	if be.Op == ast.Assignment {
		addr := Lower(ctx, lhsNode)
		rhs := loadIfAddress(ctx, rhsNode, Lower(ctx, rhsNode))
		rhs = ctx.Backend.CastValue(rhs, operandTag(rhsNode, expected), expected)
		ctx.Backend.BuildStore(rhs, addr)
		return addr
	}

	lhs := ctx.Backend.CastValue(
		loadIfAddress(ctx, lhsNode, Lower(ctx, lhsNode)), operandTag(lhsNode, expected), expected)
	rhs := ctx.Backend.CastValue(
		loadIfAddress(ctx, rhsNode, Lower(ctx, rhsNode)), operandTag(rhsNode, expected), expected)

	switch {
	case be.Op.IsMathOp():
		return lowerMathOp(ctx, be.Op, expected, lhs, rhs)
	case be.Op.IsCmpOp():
		return lowerCmpOp(ctx, be.Op, expected, lhs, rhs)
	default:
		report.ICE("lowerBinaryExpression: operator %v is neither math nor comparison", be.Op)
		return nil
	}
}

func lowerMathOp(ctx *LoweringContext, op ast.BinaryExpressionType, tag types.VariableType, lhs, rhs value.Value) value.Value {
	if tag.IsFloat() {
		switch op {
		case ast.Add:
			return ctx.Backend.BuildFAdd(lhs, rhs)
		case ast.Sub:
			return ctx.Backend.BuildFSub(lhs, rhs)
		case ast.Mul:
			return ctx.Backend.BuildFMul(lhs, rhs)
		case ast.Div:
			return ctx.Backend.BuildFDiv(lhs, rhs)
		default:
			report.Fatal("lowering", "modulo is not defined over floating-point operands")
			return nil
		}
	}

	switch op {
	case ast.Add:
		return ctx.Backend.BuildAdd(lhs, rhs)
	case ast.Sub:
		return ctx.Backend.BuildSub(lhs, rhs)
	case ast.Mul:
		return ctx.Backend.BuildMul(lhs, rhs)
	case ast.Div:
		return ctx.Backend.BuildSDiv(lhs, rhs)
	case ast.Mod:
		return ctx.Backend.BuildSRem(lhs, rhs)
	default:
		report.ICE("lowerMathOp: unreachable operator %v", op)
		return nil
	}
}

func lowerCmpOp(ctx *LoweringContext, op ast.BinaryExpressionType, tag types.VariableType, lhs, rhs value.Value) value.Value {
	if tag.IsFloat() {
		switch op {
		case ast.Less:
			return ctx.Backend.BuildFCmpOLT(lhs, rhs)
		case ast.LessEq:
			return ctx.Backend.BuildFCmpOLE(lhs, rhs)
		case ast.Greater:
			return ctx.Backend.BuildFCmpOGT(lhs, rhs)
		case ast.GreaterEq:
			return ctx.Backend.BuildFCmpOGE(lhs, rhs)
		case ast.Eq:
			return ctx.Backend.BuildFCmpOEQ(lhs, rhs)
		}
	}

	switch op {
	case ast.Less:
		return ctx.Backend.BuildICmpSLT(lhs, rhs)
	case ast.LessEq:
		return ctx.Backend.BuildICmpSLE(lhs, rhs)
	case ast.Greater:
		return ctx.Backend.BuildICmpSGT(lhs, rhs)
	case ast.GreaterEq:
		return ctx.Backend.BuildICmpSGE(lhs, rhs)
	case ast.Eq:
		return ctx.Backend.BuildICmpEq(lhs, rhs)
	default:
		report.ICE("lowerCmpOp: unreachable operator %v", op)
		return nil
	}
}

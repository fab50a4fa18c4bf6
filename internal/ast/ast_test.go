package ast_test

import (
	"testing"

	"chaic/internal/ast"
	"chaic/internal/types"
)

func TestBinaryExpressionClassification(t *testing.T) {
	tests := []struct {
		op       ast.BinaryExpressionType
		wantMath bool
		wantCmp  bool
	}{
		{ast.Add, true, false},
		{ast.Mod, true, false},
		{ast.Less, false, true},
		{ast.Eq, false, true},
		{ast.Assignment, false, false},
	}

	for _, tt := range tests {
		if got := tt.op.IsMathOp(); got != tt.wantMath {
			t.Errorf("%v.IsMathOp() = %v, want %v", tt.op, got, tt.wantMath)
		}
		if got := tt.op.IsCmpOp(); got != tt.wantCmp {
			t.Errorf("%v.IsCmpOp() = %v, want %v", tt.op, got, tt.wantCmp)
		}
	}
}

func TestBinaryExpressionChildOrderIsReversed(t *testing.T) {
	lhs := ast.NewVariableExpression("a")
	rhs := ast.NewLiteral("1", types.NewPrimitive(types.Int32, types.RValue))

	be := ast.NewBinaryExpression(ast.Add, types.NewPrimitive(types.Int32, types.RValue))
	// Per spec §4.4: child[1] is LHS, child[0] is RHS -- push RHS, then LHS.
	be.PushChild(rhs)
	be.PushChild(lhs)

	children := be.Children()
	if len(children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(children))
	}

	if children[1] != ast.Node(lhs) {
		t.Error("children[1] should be the left operand")
	}
	if children[0] != ast.Node(rhs) {
		t.Error("children[0] should be the right operand")
	}
}

func TestFunctionDeclarationIsExternal(t *testing.T) {
	ext := ast.NewFunctionDeclaration("sleep", types.NewPrimitive(types.Int32, types.RValue), []types.Parameter{
		{Name: "ms", Type: types.NewPrimitive(types.Int32, types.RValue)},
	})

	if !ext.IsExternal() {
		t.Error("a FunctionDeclaration with no body children should be external")
	}

	withBody := ast.NewFunctionDeclaration("f", types.NewPrimitive(types.Int32, types.RValue), nil,
		ast.NewReturnStatement(ast.NewLiteral("1", types.NewPrimitive(types.Int32, types.RValue))))

	if withBody.IsExternal() {
		t.Error("a FunctionDeclaration with body children should not be external")
	}
}

func TestFieldAccessTarget(t *testing.T) {
	base := ast.NewVariableExpression("p")
	fa := ast.NewFieldAccess(base, "x")

	if fa.Target() != ast.Node(base) {
		t.Error("FieldAccess.Target() should return the base expression")
	}
	if fa.FieldName != "x" {
		t.Errorf("FieldName = %q, want %q", fa.FieldName, "x")
	}
}

func TestIndexExpressionTargetAndIndex(t *testing.T) {
	base := ast.NewVariableExpression("arr")
	idx := ast.NewLiteral("2", types.NewPrimitive(types.Int32, types.RValue))
	ie := ast.NewIndexExpression(base, idx)

	if ie.Target() != ast.Node(base) {
		t.Error("IndexExpression.Target() mismatch")
	}
	if ie.Index() != ast.Node(idx) {
		t.Error("IndexExpression.Index() mismatch")
	}
}

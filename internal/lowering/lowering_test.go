package lowering_test

import (
	"strings"
	"testing"

	lltypes "github.com/llir/llvm/ir/types"

	"chaic/internal/ast"
	"chaic/internal/irgen"
	"chaic/internal/lowering"
	"chaic/internal/types"
)

func TestLowerVariableDeclarationAndAssignment(t *testing.T) {
	backend := irgen.NewBackend()
	ctx := lowering.NewLoweringContext(backend)

	fn := backend.DeclareFunction("main", nil, nil, types.Int32.LLVMType())
	entry := fn.NewBlock("entry")
	backend.SetInsertPoint(fn, entry)

	decl := ast.NewVariableDeclaration("x", types.NewPrimitive(types.Int32, types.LValue))
	lowering.Lower(ctx, decl)

	if _, ok := ctx.Variables["x"]; !ok {
		t.Fatal("expected variable x to be registered after declaration")
	}

	lhs := ast.NewVariableExpression("x")
	rhs := ast.NewLiteral("7", types.NewPrimitive(types.Int32, types.RValue))
	assign := ast.NewBinaryExpression(ast.Assignment, types.NewPrimitive(types.Int32, types.RValue))
	assign.PushChild(rhs)
	assign.PushChild(lhs)

	lowering.Lower(ctx, assign)
	backend.BuildRet(irgen.ConstInt(lltypes.I32, 0))

	ir := backend.Module.String()
	if !strings.Contains(ir, "alloca i32") {
		t.Errorf("expected an i32 alloca in generated IR, got:\n%s", ir)
	}
	if !strings.Contains(ir, "store i32 7") {
		t.Errorf("expected a store of the literal 7, got:\n%s", ir)
	}
}

func TestLowerExpressionRPNReassembly(t *testing.T) {
	backend := irgen.NewBackend()
	ctx := lowering.NewLoweringContext(backend)

	fn := backend.DeclareFunction("compute", nil, nil, types.Int32.LLVMType())
	entry := fn.NewBlock("entry")
	backend.SetInsertPoint(fn, entry)

	// (2 + 3) * 4, in RPN: 2 3 + 4 *
	two := ast.NewLiteral("2", types.NewPrimitive(types.Int32, types.RValue))
	three := ast.NewLiteral("3", types.NewPrimitive(types.Int32, types.RValue))
	four := ast.NewLiteral("4", types.NewPrimitive(types.Int32, types.RValue))
	add := ast.NewBinaryExpression(ast.Add, types.NewPrimitive(types.Int32, types.RValue))
	mul := ast.NewBinaryExpression(ast.Mul, types.NewPrimitive(types.Int32, types.RValue))

	expr := ast.NewExpression(two, three, add, four, mul)

	v := lowering.Lower(ctx, expr)
	if v == nil {
		t.Fatal("expected a value from lowering the expression")
	}
	backend.BuildRet(v)

	ir := backend.Module.String()
	if !strings.Contains(ir, "add i32 2, 3") {
		t.Errorf("expected the addition to run before the multiplication, got:\n%s", ir)
	}
	if !strings.Contains(ir, "mul i32") {
		t.Errorf("expected a multiplication instruction, got:\n%s", ir)
	}
}

func TestLowerFunctionDeclarationExternalIsDeclaredOnly(t *testing.T) {
	backend := irgen.NewBackend()
	ctx := lowering.NewLoweringContext(backend)

	sleep := ast.NewFunctionDeclaration("sleep", types.NewPrimitive(types.None, types.RValue), []types.Parameter{
		{Name: "ms", Type: types.NewPrimitive(types.Int32, types.RValue)},
	})

	lowering.Lower(ctx, sleep)

	fn := backend.GetFunction("sleep")
	if fn == nil {
		t.Fatal("expected an external symbol to be declared for sleep")
	}
	if len(fn.Blocks) != 0 {
		t.Error("an external function declaration should have no basic blocks")
	}
}

func TestLowerFunctionDeclarationWithBodyReturns(t *testing.T) {
	backend := irgen.NewBackend()
	ctx := lowering.NewLoweringContext(backend)

	body := ast.NewReturnStatement(ast.NewLiteral("1", types.NewPrimitive(types.Int32, types.RValue)))
	fd := ast.NewFunctionDeclaration("one", types.NewPrimitive(types.Int32, types.RValue), nil, body)

	lowering.Lower(ctx, fd)

	fn := backend.GetFunction("one")
	if fn == nil {
		t.Fatal("expected function one to be declared")
	}
	if len(fn.Blocks) != 1 {
		t.Fatalf("expected exactly one basic block, got %d", len(fn.Blocks))
	}

	ir := backend.Module.String()
	if !strings.Contains(ir, "ret i32 1") {
		t.Errorf("expected the literal return value in generated IR, got:\n%s", ir)
	}
}

func TestLowerStructAndFieldAccess(t *testing.T) {
	backend := irgen.NewBackend()
	ctx := lowering.NewLoweringContext(backend)

	point := ast.NewStruct("Point", []ast.Member{
		{Name: "x", Field: types.NewPrimitive(types.Int32, types.RValue)},
		{Name: "y", Field: types.NewPrimitive(types.Int32, types.RValue)},
	})
	lowering.Lower(ctx, point)

	if _, ok := ctx.Records["Point"]; !ok {
		t.Fatal("expected Point to be registered as a record")
	}

	fn := backend.DeclareFunction("main", nil, nil, types.Int32.LLVMType())
	entry := fn.NewBlock("entry")
	backend.SetInsertPoint(fn, entry)

	decl := ast.NewVariableDeclaration("p", types.NewUserDefined("Point", types.LValue))
	lowering.Lower(ctx, decl)

	fa := ast.NewFieldAccess(ast.NewVariableExpression("p"), "y")
	addr := lowering.Lower(ctx, fa)
	if addr == nil {
		t.Fatal("expected a non-nil address from field access")
	}
	backend.BuildRet(irgen.ConstInt(lltypes.I32, 0))

	ir := backend.Module.String()
	if !strings.Contains(ir, "getelementptr") {
		t.Errorf("expected a getelementptr instruction, got:\n%s", ir)
	}
}

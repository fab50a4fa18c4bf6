package irgen

import (
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	lltypes "github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// BuildAlloca emits a stack allocation of typ at the current insertion
// point and returns the resulting pointer-typed slot handle.
func (b *Backend) BuildAlloca(typ lltypes.Type) *ir.InstAlloca {
	return b.block.NewAlloca(typ)
}

// BuildLoad emits a load from a pointer-typed slot.
func (b *Backend) BuildLoad(elemType lltypes.Type, slot value.Value) *ir.InstLoad {
	return b.block.NewLoad(elemType, slot)
}

// BuildStore emits a store of val into slot.
func (b *Backend) BuildStore(val value.Value, slot value.Value) *ir.InstStore {
	return b.block.NewStore(val, slot)
}

// -----------------------------------------------------------------------------
// Arithmetic.

func (b *Backend) BuildAdd(lhs, rhs value.Value) value.Value  { return b.block.NewAdd(lhs, rhs) }
func (b *Backend) BuildSub(lhs, rhs value.Value) value.Value  { return b.block.NewSub(lhs, rhs) }
func (b *Backend) BuildMul(lhs, rhs value.Value) value.Value  { return b.block.NewMul(lhs, rhs) }
func (b *Backend) BuildSDiv(lhs, rhs value.Value) value.Value { return b.block.NewSDiv(lhs, rhs) }
func (b *Backend) BuildSRem(lhs, rhs value.Value) value.Value { return b.block.NewSRem(lhs, rhs) }

func (b *Backend) BuildFAdd(lhs, rhs value.Value) value.Value { return b.block.NewFAdd(lhs, rhs) }
func (b *Backend) BuildFSub(lhs, rhs value.Value) value.Value { return b.block.NewFSub(lhs, rhs) }
func (b *Backend) BuildFMul(lhs, rhs value.Value) value.Value { return b.block.NewFMul(lhs, rhs) }
func (b *Backend) BuildFDiv(lhs, rhs value.Value) value.Value { return b.block.NewFDiv(lhs, rhs) }

// -----------------------------------------------------------------------------
// Comparisons.

func (b *Backend) BuildICmpEq(lhs, rhs value.Value) value.Value {
	return b.block.NewICmp(enum.IPredEQ, lhs, rhs)
}

func (b *Backend) BuildICmpSLT(lhs, rhs value.Value) value.Value {
	return b.block.NewICmp(enum.IPredSLT, lhs, rhs)
}

func (b *Backend) BuildICmpSLE(lhs, rhs value.Value) value.Value {
	return b.block.NewICmp(enum.IPredSLE, lhs, rhs)
}

func (b *Backend) BuildICmpSGT(lhs, rhs value.Value) value.Value {
	return b.block.NewICmp(enum.IPredSGT, lhs, rhs)
}

func (b *Backend) BuildICmpSGE(lhs, rhs value.Value) value.Value {
	return b.block.NewICmp(enum.IPredSGE, lhs, rhs)
}

func (b *Backend) BuildFCmpOEQ(lhs, rhs value.Value) value.Value {
	return b.block.NewFCmp(enum.FPredOEQ, lhs, rhs)
}

func (b *Backend) BuildFCmpOLT(lhs, rhs value.Value) value.Value {
	return b.block.NewFCmp(enum.FPredOLT, lhs, rhs)
}

func (b *Backend) BuildFCmpOLE(lhs, rhs value.Value) value.Value {
	return b.block.NewFCmp(enum.FPredOLE, lhs, rhs)
}

func (b *Backend) BuildFCmpOGT(lhs, rhs value.Value) value.Value {
	return b.block.NewFCmp(enum.FPredOGT, lhs, rhs)
}

func (b *Backend) BuildFCmpOGE(lhs, rhs value.Value) value.Value {
	return b.block.NewFCmp(enum.FPredOGE, lhs, rhs)
}

// -----------------------------------------------------------------------------
// Control flow and calls.

// BuildCall emits a call to fn with args, returning the call's result
// value (void for a void-returning function, per llir/llvm's convention).
func (b *Backend) BuildCall(fn value.Value, args ...value.Value) value.Value {
	return b.block.NewCall(fn, args...)
}

func (b *Backend) BuildRet(val value.Value) *ir.TermRet {
	return b.block.NewRet(val)
}

func (b *Backend) BuildRetVoid() *ir.TermRet {
	return b.block.NewRet(nil)
}

func (b *Backend) BuildBr(target *ir.Block) *ir.TermBr {
	return b.block.NewBr(target)
}

func (b *Backend) BuildCondBr(cond value.Value, thenBlock, elseBlock *ir.Block) *ir.TermCondBr {
	return b.block.NewCondBr(cond, thenBlock, elseBlock)
}

// HasTerminator reports whether the current block already ends in a
// terminator instruction (ret/br/condbr), matching the check
// FunctionDeclaration lowering makes before implicitly emitting ret-void.
func (b *Backend) HasTerminator() bool {
	return b.block.Term != nil
}

// -----------------------------------------------------------------------------
// Aggregates.

// DefineStruct registers a named struct type in the module and returns its
// IR struct type handle (spec §4.4's Struct lowering contract).
func (b *Backend) DefineStruct(name string, fieldTypes ...lltypes.Type) *lltypes.StructType {
	st := lltypes.NewStruct(fieldTypes...)
	b.Module.NewTypeDef(name, st)
	return st
}

// BuildStructFieldAddr computes the address of field index idx within a
// struct-typed slot (a GEP with a leading zero index, the standard
// pattern for "address of the Nth field" over a pointer-to-struct).
func (b *Backend) BuildStructFieldAddr(structType lltypes.Type, slot value.Value, idx int) value.Value {
	return b.block.NewGetElementPtr(
		structType,
		slot,
		constant.NewInt(lltypes.I32, 0),
		constant.NewInt(lltypes.I32, int64(idx)),
	)
}

// BuildArrayElemAddr computes the address of the element at index idx
// within an array-typed slot.
func (b *Backend) BuildArrayElemAddr(arrayType lltypes.Type, slot value.Value, idx value.Value) value.Value {
	return b.block.NewGetElementPtr(
		arrayType,
		slot,
		constant.NewInt(lltypes.I32, 0),
		idx,
	)
}

// ConstInt builds an integer constant of the given type.
func ConstInt(typ *lltypes.IntType, x int64) *constant.Int {
	return constant.NewInt(typ, x)
}

// ConstFloat builds a floating-point constant of the given type.
func ConstFloat(typ *lltypes.FloatType, x float64) *constant.Float {
	return constant.NewFloat(typ, x)
}

// ConstBool builds a boolean (i1) constant.
func ConstBool(x bool) *constant.Int {
	return constant.NewBool(x)
}

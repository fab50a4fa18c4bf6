package irgen_test

import (
	"testing"

	lltypes "github.com/llir/llvm/ir/types"

	"chaic/internal/irgen"
	"chaic/internal/types"
)

func TestCastValueIntWidening(t *testing.T) {
	b := irgen.NewBackend()
	fn := b.DeclareFunction("f", nil, nil, lltypes.Void)
	block := fn.NewBlock("entry")
	b.SetInsertPoint(fn, block)

	v := irgen.ConstInt(lltypes.I8, 5)
	out := b.CastValue(v, types.Int8, types.Int32)

	if out.Type() != lltypes.I32 {
		t.Errorf("CastValue(int8->int32) produced type %v, want i32", out.Type())
	}
}

func TestCastValueSameTypeIsNoop(t *testing.T) {
	b := irgen.NewBackend()
	fn := b.DeclareFunction("f", nil, nil, lltypes.Void)
	block := fn.NewBlock("entry")
	b.SetInsertPoint(fn, block)

	v := irgen.ConstInt(lltypes.I32, 5)
	out := b.CastValue(v, types.Int32, types.Int32)

	if out != v {
		t.Error("CastValue with matching source and target type should return the same value unchanged")
	}
}

func TestCastValueIntToFloat(t *testing.T) {
	b := irgen.NewBackend()
	fn := b.DeclareFunction("f", nil, nil, lltypes.Void)
	block := fn.NewBlock("entry")
	b.SetInsertPoint(fn, block)

	v := irgen.ConstInt(lltypes.I32, 5)
	out := b.CastValue(v, types.Int32, types.Float64)

	if out.Type() != lltypes.Double {
		t.Errorf("CastValue(int32->float64) produced type %v, want double", out.Type())
	}
}

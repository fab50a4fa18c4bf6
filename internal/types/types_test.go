package types_test

import (
	"testing"

	lltypes "github.com/llir/llvm/ir/types"

	"chaic/internal/types"
)

func TestVariableTypePredicates(t *testing.T) {
	tests := []struct {
		vt        types.VariableType
		isInt     bool
		isSigned  bool
		isFloat   bool
	}{
		{types.Int32, true, true, false},
		{types.Uint32, true, false, false},
		{types.Float64, false, false, true},
		{types.Bool, false, false, false},
		{types.String, false, false, false},
	}

	for _, tt := range tests {
		if got := tt.vt.IsInteger(); got != tt.isInt {
			t.Errorf("%v.IsInteger() = %v, want %v", tt.vt, got, tt.isInt)
		}
		if got := tt.vt.IsSigned(); got != tt.isSigned {
			t.Errorf("%v.IsSigned() = %v, want %v", tt.vt, got, tt.isSigned)
		}
		if got := tt.vt.IsFloat(); got != tt.isFloat {
			t.Errorf("%v.IsFloat() = %v, want %v", tt.vt, got, tt.isFloat)
		}
	}
}

func TestIntBits(t *testing.T) {
	if got := types.Int64.IntBits(); got != 64 {
		t.Errorf("Int64.IntBits() = %d, want 64", got)
	}

	if got := types.Uint8.IntBits(); got != 8 {
		t.Errorf("Uint8.IntBits() = %d, want 8", got)
	}
}

func TestAbstractTypeEqual(t *testing.T) {
	a := types.NewPrimitive(types.Int32, types.RValue)
	b := types.NewPrimitive(types.Int32, types.LValue)

	if !a.Equal(b) {
		t.Error("Int32 RValue and Int32 LValue should be Equal (TypeKind is a usage qualifier)")
	}

	c := types.NewUserDefined("Point", types.RValue)
	d := types.NewUserDefined("Point", types.LValue)

	if !c.Equal(d) {
		t.Error("two UserDefinedType(\"Point\") should be Equal")
	}

	e := types.NewUserDefined("Vector", types.RValue)
	if c.Equal(e) {
		t.Error("UserDefinedType with different names should not be Equal")
	}

	if a.Equal(c) {
		t.Error("a primitive and a record type should never be Equal")
	}
}

func TestLLVMTypeMapping(t *testing.T) {
	tests := []struct {
		vt   types.VariableType
		want lltypes.Type
	}{
		{types.Int32, lltypes.I32},
		{types.Uint64, lltypes.I64},
		{types.Float32, lltypes.Float},
		{types.Float64, lltypes.Double},
		{types.Bool, lltypes.I1},
	}

	for _, tt := range tests {
		if got := tt.vt.LLVMType(); got != tt.want {
			t.Errorf("%v.LLVMType() = %v, want %v", tt.vt, got, tt.want)
		}
	}
}

func TestAbstractTypeLLVMTypeUserDefined(t *testing.T) {
	records := map[string]types.ObjectReferenceInfo{
		"Point": {Struct: lltypes.NewStruct(lltypes.I32, lltypes.I32), Indices: map[string]int{"x": 0, "y": 1}},
	}

	at := types.NewUserDefined("Point", types.RValue)
	if got := at.LLVMType(records); got != records["Point"].Struct {
		t.Errorf("LLVMType for user-defined type did not resolve to the recorded struct layout")
	}
}

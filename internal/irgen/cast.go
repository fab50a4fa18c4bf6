package irgen

import (
	"github.com/llir/llvm/ir/enum"
	lltypes "github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"

	"chaic/internal/types"
)

// CastValue implements spec §4.5's AbstractType::CastValue: it converts v
// (of the VariableType srcTag) into the IR representation of targetTag,
// covering every pair among signed int, unsigned int, float, and bool with
// the conventional semantics. A cast to None/void (or to any other tag
// outside those families) is a program error: CastValue panics on it.
func (b *Backend) CastValue(v value.Value, srcTag, targetTag types.VariableType) value.Value {
	if srcTag == targetTag {
		return v
	}

	switch {
	case targetTag.IsFloat():
		return b.castToFloat(v, srcTag, targetTag)
	case targetTag.IsInteger():
		return b.castToInt(v, srcTag, targetTag)
	case targetTag == types.Bool:
		return b.castToBool(v, srcTag)
	default:
		panic("CastValue: unsupported target type " + targetTag.String())
	}
}

func (b *Backend) castToFloat(v value.Value, srcTag, targetTag types.VariableType) value.Value {
	dstType := targetTag.LLVMType().(*lltypes.FloatType)

	switch {
	case srcTag.IsFloat():
		srcBits, dstBits := floatBits(srcTag), floatBits(targetTag)
		if srcBits < dstBits {
			return b.block.NewFPExt(v, dstType)
		}
		return b.block.NewFPTrunc(v, dstType)
	case srcTag.IsSigned():
		return b.block.NewSIToFP(v, dstType)
	case srcTag.IsInteger(): // unsigned
		return b.block.NewUIToFP(v, dstType)
	case srcTag == types.Bool:
		return b.block.NewUIToFP(v, dstType)
	default:
		panic("castToFloat: unsupported source type " + srcTag.String())
	}
}

func (b *Backend) castToInt(v value.Value, srcTag, targetTag types.VariableType) value.Value {
	dstType := targetTag.LLVMType().(*lltypes.IntType)

	switch {
	case srcTag.IsFloat():
		if targetTag.IsSigned() {
			return b.block.NewFPToSI(v, dstType)
		}
		return b.block.NewFPToUI(v, dstType)
	case srcTag == types.Bool:
		return b.block.NewZExt(v, dstType)
	case srcTag.IsInteger():
		srcBits, dstBits := srcTag.IntBits(), targetTag.IntBits()
		switch {
		case srcBits == dstBits:
			return v
		case srcBits > dstBits:
			return b.block.NewTrunc(v, dstType)
		case srcTag.IsSigned():
			return b.block.NewSExt(v, dstType)
		default:
			return b.block.NewZExt(v, dstType)
		}
	default:
		panic("castToInt: unsupported source type " + srcTag.String())
	}
}

func (b *Backend) castToBool(v value.Value, srcTag types.VariableType) value.Value {
	if srcTag.IsFloat() {
		zero := ConstFloat(srcTag.LLVMType().(*lltypes.FloatType), 0)
		return b.block.NewFCmp(enum.FPredUNE, v, zero)
	}

	if !srcTag.IsInteger() {
		panic("castToBool: unsupported source type " + srcTag.String())
	}

	zero := ConstInt(srcTag.LLVMType().(*lltypes.IntType), 0)
	return b.block.NewICmp(enum.IPredNE, v, zero)
}

func floatBits(vt types.VariableType) int {
	if vt == types.Float32 {
		return 32
	}
	return 64
}

package lowering

import (
	"strconv"

	"github.com/llir/llvm/ir/constant"
	lltypes "github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"

	"chaic/internal/ast"
	"chaic/internal/report"
	"chaic/internal/types"
)

// lowerLiteral emits an IR constant of the literal's declared type, parsed
// from its verbatim source text (spec §4.4).
func lowerLiteral(ctx *LoweringContext, lit *ast.Literal) value.Value {
	switch lit.Type.Get() {
	case types.Bool:
		return constant.NewBool(lit.Text == "true")
	case types.Int8, types.Int16, types.Int32, types.Int64,
		types.Uint8, types.Uint16, types.Uint32, types.Uint64:
		bits := lit.Type.Get().IntBits()
		x, err := strconv.ParseInt(lit.Text, 10, bits)
		if err != nil {
			report.Fatal("lowering", "malformed integer literal %q: %s", lit.Text, err)
		}
		return constant.NewInt(lit.Type.Get().LLVMType().(*lltypes.IntType), x)
	case types.Float32:
		x, err := strconv.ParseFloat(lit.Text, 32)
		if err != nil {
			report.Fatal("lowering", "malformed float literal %q: %s", lit.Text, err)
		}
		return constant.NewFloat(lltypes.Float, x)
	case types.Float64:
		x, err := strconv.ParseFloat(lit.Text, 64)
		if err != nil {
			report.Fatal("lowering", "malformed float literal %q: %s", lit.Text, err)
		}
		return constant.NewFloat(lltypes.Double, x)
	case types.String:
		return lowerStringLiteral(ctx, lit.Text)
	default:
		report.ICE("lowerLiteral: unsupported literal type %v", lit.Type.Get())
		return nil
	}
}

// lowerStringLiteral interns text as a global null-terminated byte array
// and returns an i8 pointer to its first element, matching the String
// tag's pointer-to-byte semantics (spec §3).
func lowerStringLiteral(ctx *LoweringContext, text string) value.Value {
	name := ctx.nextStringLiteralName()
	backing := constant.NewCharArrayFromString(text + "\x00")
	global := ctx.Backend.Module.NewGlobalDef(name, backing)

	zero := constant.NewInt(lltypes.I32, 0)
	return ctx.Backend.Block().NewGetElementPtr(backing.Typ, global, zero, zero)
}

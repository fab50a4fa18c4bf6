package types

import (
	lltypes "github.com/llir/llvm/ir/types"
)

// Type is the common interface over AbstractType and the compound
// declarator types (PointerType, ArrayType) supplemented in SPEC_FULL.md
// §C: VariableDeclaration's declared type can be a bare AbstractType, a
// pointer to one, or an array of one, and all three need to resolve to an
// IR type the same way.
type Type interface {
	LLVMType(records map[string]ObjectReferenceInfo) lltypes.Type
}

// PointerType models a PointerDef declarator (`T*`): a pointer to another
// Type, allocated as a pointer-sized slot per SPEC_FULL.md §C.
type PointerType struct {
	Elem Type
}

func (pt PointerType) LLVMType(records map[string]ObjectReferenceInfo) lltypes.Type {
	return lltypes.NewPointer(pt.Elem.LLVMType(records))
}

// ArrayType models a StaticArrayDef/DynamicArrayDef declarator. A dynamic
// array (`T[]`) has no compile-time-known length and is represented as a
// pointer to its element type; a static array (`T[...N]`) has a fixed
// length and lowers to an IR array type.
type ArrayType struct {
	Elem    Type
	Len     uint64
	Dynamic bool
}

func (at ArrayType) LLVMType(records map[string]ObjectReferenceInfo) lltypes.Type {
	if at.Dynamic {
		return lltypes.NewPointer(at.Elem.LLVMType(records))
	}

	return lltypes.NewArray(at.Len, at.Elem.LLVMType(records))
}

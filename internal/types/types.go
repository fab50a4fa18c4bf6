// Package types implements the front end's type model: the closed
// VariableType tag set, the AbstractType wrapper that pairs a tag with an
// LValue/RValue qualifier, and the compound and record type descriptors.
// The numeric cast matrix lives in internal/irgen (Backend.CastValue).
package types

import (
	lltypes "github.com/llir/llvm/ir/types"
)

// VariableType is the closed set of primitive type tags, plus the single
// escape hatch for a named user-defined record.
type VariableType int

const (
	None VariableType = iota // void

	Int8
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64
	Bool
	String // pointer-to-byte semantics

	UserDefinedType
)

func (vt VariableType) String() string {
	switch vt {
	case None:
		return "none"
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint8:
		return "uint8"
	case Uint16:
		return "uint16"
	case Uint32:
		return "uint32"
	case Uint64:
		return "uint64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Bool:
		return "bool"
	case String:
		return "string"
	case UserDefinedType:
		return "struct"
	default:
		return "unknown"
	}
}

// IsInteger reports whether vt is a signed or unsigned integer tag.
func (vt VariableType) IsInteger() bool {
	switch vt {
	case Int8, Int16, Int32, Int64, Uint8, Uint16, Uint32, Uint64:
		return true
	default:
		return false
	}
}

// IsSigned reports whether vt is a signed integer tag.
func (vt VariableType) IsSigned() bool {
	switch vt {
	case Int8, Int16, Int32, Int64:
		return true
	default:
		return false
	}
}

// IsFloat reports whether vt is a floating-point tag.
func (vt VariableType) IsFloat() bool {
	return vt == Float32 || vt == Float64
}

// IntBits returns the bit width of an integer tag. Panics if vt is not an
// integer tag; callers must check IsInteger first.
func (vt VariableType) IntBits() int {
	switch vt {
	case Int8, Uint8:
		return 8
	case Int16, Uint16:
		return 16
	case Int32, Uint32:
		return 32
	case Int64, Uint64:
		return 64
	default:
		panic("IntBits called on non-integer VariableType")
	}
}

// -----------------------------------------------------------------------------

// TypeKind qualifies an AbstractType as either an addressable location or a
// computed value, matching spec §3's LValue/RValue distinction.
type TypeKind int

const (
	RValue TypeKind = iota
	LValue
)

// AbstractType is either a primitive VariableType or a reference to a
// previously-declared record (UserDefinedType(name)), qualified with a
// TypeKind. AbstractType values are immutable once constructed.
type AbstractType struct {
	tag        VariableType
	kind       TypeKind
	recordName string
}

// NewPrimitive builds an AbstractType over a primitive VariableType.
func NewPrimitive(tag VariableType, kind TypeKind) AbstractType {
	return AbstractType{tag: tag, kind: kind}
}

// NewUserDefined builds an AbstractType referring to a named record.
func NewUserDefined(name string, kind TypeKind) AbstractType {
	return AbstractType{tag: UserDefinedType, kind: kind, recordName: name}
}

// Get returns the type's VariableType tag.
func (at AbstractType) Get() VariableType {
	return at.tag
}

// GetKind returns the type's LValue/RValue qualifier.
func (at AbstractType) GetKind() TypeKind {
	return at.kind
}

// WithKind returns a copy of at with its TypeKind qualifier replaced.
func (at AbstractType) WithKind(kind TypeKind) AbstractType {
	at.kind = kind
	return at
}

// GetUserDefinedType returns the record name for a UserDefinedType. Callers
// must check Get() == UserDefinedType first.
func (at AbstractType) GetUserDefinedType() string {
	return at.recordName
}

// Equal reports whether two AbstractTypes denote the same type (ignoring
// TypeKind, which is a usage qualifier, not a distinguishing property of
// the type itself).
func (at AbstractType) Equal(other AbstractType) bool {
	if at.tag != other.tag {
		return false
	}

	if at.tag == UserDefinedType {
		return at.recordName == other.recordName
	}

	return true
}

// -----------------------------------------------------------------------------

// Parameter is a named, typed function parameter (spec §3).
type Parameter struct {
	Name string
	Type AbstractType
}

// Argument is a call-site argument: either an RValue literal (Data holds
// the literal text) or a variable reference (Data holds the variable
// name), per spec §3.
type Argument struct {
	Field AbstractType
	Data  string
}

// ObjectReferenceInfo is the record descriptor created once when a struct
// is lowered (spec §3): the IR struct layout plus a field-name-to-ordinal
// map. Once created it is never mutated.
type ObjectReferenceInfo struct {
	Struct  *lltypes.StructType
	Indices map[string]int
}

// -----------------------------------------------------------------------------

// LLVMType returns the IR type handle for a primitive VariableType. It
// panics on None and UserDefinedType: the former has no value
// representation, the latter must be resolved through the records map
// (internal/lowering.LoweringContext), since its layout is not known to
// this package.
func (vt VariableType) LLVMType() lltypes.Type {
	switch vt {
	case Int8, Uint8:
		return lltypes.I8
	case Int16, Uint16:
		return lltypes.I16
	case Int32, Uint32:
		return lltypes.I32
	case Int64, Uint64:
		return lltypes.I64
	case Float32:
		return lltypes.Float
	case Float64:
		return lltypes.Double
	case Bool:
		return lltypes.I1
	case String:
		return lltypes.I8Ptr
	default:
		panic("LLVMType has no primitive mapping for " + vt.String())
	}
}

// LLVMType returns the IR type handle for at. For a UserDefinedType,
// records must be non-nil and contain an entry for the record name.
func (at AbstractType) LLVMType(records map[string]ObjectReferenceInfo) lltypes.Type {
	if at.tag == UserDefinedType {
		return records[at.recordName].Struct
	}

	return at.tag.LLVMType()
}

// Package token defines the lexical token vocabulary produced by
// internal/lexer and consumed when constructing the AST.
package token

// Kind identifies the lexical class of a Token. The set is closed: every
// member that the lexer can emit is enumerated here.
type Kind int

const (
	None Kind = iota

	// Names and references.
	VariableName
	VariableReference
	FunctionName
	FunctionCall
	FunctionType
	StructName
	Lambda

	// Literals.
	RValueNumber
	RValueString
	RValueChar

	// Brackets and structure.
	OpenBracket
	CloseBracket
	StartIndentation
	EndIndentation
	StartFunctionParameters
	EndFunctionParameters
	Comma
	EndLine
	IndexOperator

	// Declarators.
	PointerDef
	StaticArrayDef
	DynamicArrayDef

	// Operators.
	DereferenceOp
	MulOp
	SubOp
	AddOp
	DivOp
	ModOp
	EqOp
	NeqOp
	LessOp
	LessEqOp
	GreaterOp
	GreaterEqOp
	Assign
	Arrow

	// Keywords: control flow and declarations.
	FunctionKeyword
	StructKeyword
	ReturnKeyword
	IfKeyword
	ElseKeyword

	// Keywords: primitive type names.
	Int8Type
	Int16Type
	Int32Type
	Int64Type
	Uint8Type
	Uint16Type
	Uint32Type
	Uint64Type
	Float32Type
	Float64Type
	BoolType
	StringType

	EOF
)

// names gives a human-readable label for each Kind, used by diagnostics and
// test failure output. Not every Kind needs an entry that differs from its
// Go identifier, but spelling them out makes report messages readable.
var names = map[Kind]string{
	None:                    "None",
	VariableName:            "VariableName",
	VariableReference:       "VariableReference",
	FunctionName:            "FunctionName",
	FunctionCall:            "FunctionCall",
	FunctionType:            "FunctionType",
	StructName:              "StructName",
	Lambda:                  "Lambda",
	RValueNumber:            "RValueNumber",
	RValueString:            "RValueString",
	RValueChar:              "RValueChar",
	OpenBracket:             "OpenBracket",
	CloseBracket:            "CloseBracket",
	StartIndentation:        "StartIndentation",
	EndIndentation:          "EndIndentation",
	StartFunctionParameters: "StartFunctionParameters",
	EndFunctionParameters:   "EndFunctionParameters",
	Comma:                   "Comma",
	EndLine:                 "EndLine",
	IndexOperator:           "IndexOperator",
	PointerDef:              "PointerDef",
	StaticArrayDef:          "StaticArrayDef",
	DynamicArrayDef:         "DynamicArrayDef",
	DereferenceOp:           "DereferenceOp",
	MulOp:                   "MulOp",
	SubOp:                   "SubOp",
	AddOp:                   "AddOp",
	DivOp:                   "DivOp",
	ModOp:                   "ModOp",
	EqOp:                    "EqOp",
	NeqOp:                   "NeqOp",
	LessOp:                  "LessOp",
	LessEqOp:                "LessEqOp",
	GreaterOp:               "GreaterOp",
	GreaterEqOp:             "GreaterEqOp",
	Assign:                  "Assign",
	Arrow:                   "Arrow",
	FunctionKeyword:         "FunctionKeyword",
	StructKeyword:           "StructKeyword",
	ReturnKeyword:           "ReturnKeyword",
	IfKeyword:               "IfKeyword",
	ElseKeyword:             "ElseKeyword",
	Int8Type:                "Int8Type",
	Int16Type:               "Int16Type",
	Int32Type:               "Int32Type",
	Int64Type:               "Int64Type",
	Uint8Type:               "Uint8Type",
	Uint16Type:              "Uint16Type",
	Uint32Type:              "Uint32Type",
	Uint64Type:              "Uint64Type",
	Float32Type:             "Float32Type",
	Float64Type:             "Float64Type",
	BoolType:                "BoolType",
	StringType:              "StringType",
	EOF:                     "EOF",
}

func (k Kind) String() string {
	if name, ok := names[k]; ok {
		return name
	}

	return "Unknown"
}

// Token is a single lexical unit: a kind plus the verbatim source lexeme.
// Tokens are value objects -- produced once by the lexer and never mutated.
// Structural tokens (StartIndentation, EndIndentation, EndLine, Comma,
// StartFunctionParameters, EndFunctionParameters, IndexOperator and
// DereferenceOp) carry an empty Lexeme; OpenBracket and CloseBracket carry
// the bracket character.
type Token struct {
	Kind   Kind
	Lexeme string
}

// New constructs a Token. It exists mainly so call sites read as
// token.New(token.AddOp, "+") rather than a bare struct literal.
func New(kind Kind, lexeme string) Token {
	return Token{Kind: kind, Lexeme: lexeme}
}

// IsPrimitiveType reports whether k is one of the primitive-type keyword
// kinds (the tokens that introduce a VariableType in a declarator).
func (k Kind) IsPrimitiveType() bool {
	switch k {
	case Int8Type, Int16Type, Int32Type, Int64Type,
		Uint8Type, Uint16Type, Uint32Type, Uint64Type,
		Float32Type, Float64Type, BoolType, StringType:
		return true
	default:
		return false
	}
}

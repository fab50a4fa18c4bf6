package lexer

import "chaic/internal/token"

// state names one node of the lexer's finite state machine (spec §4.2).
type state int

const (
	stateDefault state = iota
	stateVariableName
	stateRValue
	stateOperator
	stateAsterisksOperator
	stateIndentation
	stateFunctionName
	stateFunctionParameters // declared parameter list
	stateFunctionParamaters // call argument list
	stateArrow
	stateFunctionType
	stateStructName
	stateComment
	stateMultilineComment
	stateIndexOperator
)

type keywordEntry struct {
	kind token.Kind
	next state
}

// keywords maps a fully accumulated identifier to the token it produces and
// the state the lexer transitions to immediately afterward (spec §4.3).
// Primitive type names all behave the same way: push the type's own token
// and move on to parse the variable name(s) that follow it.
var keywords = buildKeywords()

func buildKeywords() map[string]keywordEntry {
	m := map[string]keywordEntry{
		// function/struct are purely structural: the node that follows
		// (FunctionName/StructName) carries the information the AST layer
		// needs, so the keyword itself pushes no token.
		"function": {token.None, stateFunctionName},
		"struct":   {token.None, stateStructName},
		"return":   {token.ReturnKeyword, stateRValue},
		"if":       {token.IfKeyword, stateRValue},
		"else":     {token.ElseKeyword, stateDefault},
	}
	for name, kind := range dataTypeKinds {
		m[name] = keywordEntry{kind, stateVariableName}
	}
	return m
}

// dataTypeKinds mirrors the original's g_DataTypes set: every primitive
// type name and the token it pushes when it opens a declaration.
var dataTypeKinds = map[string]token.Kind{
	"int8":    token.Int8Type,
	"int16":   token.Int16Type,
	"int32":   token.Int32Type,
	"int64":   token.Int64Type,
	"uint8":   token.Uint8Type,
	"uint16":  token.Uint16Type,
	"uint32":  token.Uint32Type,
	"uint64":  token.Uint64Type,
	"float32": token.Float32Type,
	"float64": token.Float64Type,
	"bool":    token.BoolType,
	"string":  token.StringType,
}

type operatorEntry struct {
	// kind is token.None when the state reached decides the emitted token
	// itself (AsterisksOperator, Comment, MultilineComment introducers).
	kind token.Kind
	next state
}

// operators maps every single-character operator component and every
// multi-character operator lexeme to the token it produces and the state
// the lexer resumes in. The single-character entries exist partly to carry
// their own token and partly to drive the maximal-munch loop in
// scanOperator, which only checks whether the next raw byte is itself a
// table key.
var operators = map[string]operatorEntry{
	"=":  {token.Assign, stateRValue},
	"+":  {token.AddOp, stateDefault},
	"-":  {token.SubOp, stateDefault},
	"*":  {token.None, stateAsterisksOperator},
	"/":  {token.DivOp, stateDefault},
	"%":  {token.ModOp, stateDefault},
	"<":  {token.LessOp, stateDefault},
	">":  {token.GreaterOp, stateDefault},
	"!":  {token.None, stateDefault},
	"\\": {token.None, stateDefault},

	"==": {token.EqOp, stateDefault},
	"!=": {token.NeqOp, stateDefault},
	"<=": {token.LessEqOp, stateDefault},
	">=": {token.GreaterEqOp, stateDefault},
	"->": {token.Arrow, stateArrow},

	`\\`: {token.None, stateComment},
	`\*`: {token.None, stateMultilineComment},
}

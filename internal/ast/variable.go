package ast

import "chaic/internal/types"

// VariableExpression references a previously declared variable by name.
// Lowering looks it up in variables[name] and returns the address handle
// (the allocation slot), not the loaded value (spec §4.4).
type VariableExpression struct {
	Base

	Name string
}

// NewVariableExpression constructs a VariableExpression node.
func NewVariableExpression(name string) *VariableExpression {
	return &VariableExpression{Name: name}
}

// VariableDeclaration introduces a new named slot of the given type.
// Lowering rejects redeclaration (spec §4.4). Type may be a bare
// AbstractType, or a PointerType/ArrayType declarator wrapping one
// (SPEC_FULL.md §C).
type VariableDeclaration struct {
	Base

	Name string
	Type types.Type
}

// NewVariableDeclaration constructs a VariableDeclaration node.
func NewVariableDeclaration(name string, typ types.Type) *VariableDeclaration {
	return &VariableDeclaration{Name: name, Type: typ}
}

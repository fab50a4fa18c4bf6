package ast

import "chaic/internal/types"

// FunctionDeclaration declares a function with a name, return type, and
// parameter list (spec §3/§4.4). A FunctionDeclaration with no children is
// an external (declared-only) routine: SPEC_FULL.md §C generalizes spec §9
// Open Question 4's hard-coded sleep/_sleep/nanosleep into this single
// case, so any bodyless declaration becomes an externally linked symbol.
type FunctionDeclaration struct {
	Base

	Name       string
	ReturnType types.AbstractType
	Params     []types.Parameter
}

// NewFunctionDeclaration constructs a FunctionDeclaration node. Pass no
// body children to declare an external routine.
func NewFunctionDeclaration(name string, returnType types.AbstractType, params []types.Parameter, body ...Node) *FunctionDeclaration {
	return &FunctionDeclaration{
		Base:       NewBase(body...),
		Name:       name,
		ReturnType: returnType,
		Params:     params,
	}
}

// IsExternal reports whether this declaration has no body and should
// therefore lower to a declared-only external symbol.
func (fd *FunctionDeclaration) IsExternal() bool {
	return len(fd.Children()) == 0
}

package ast

import "chaic/internal/types"

// FunctionCall invokes a previously declared function by name with a
// fixed argument list (spec §3/§4.4). Each Argument is either an RValue
// literal (Data holds the literal text) or a variable reference (Data
// holds the variable name); lowering casts each to the function's
// declared parameter type where they differ.
type FunctionCall struct {
	Base

	Name      string
	Arguments []types.Argument
}

// NewFunctionCall constructs a FunctionCall node.
func NewFunctionCall(name string, arguments []types.Argument) *FunctionCall {
	return &FunctionCall{Name: name, Arguments: arguments}
}

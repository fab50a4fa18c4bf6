package ast

// ReturnStatement lowers its single child (if any) and emits a return of
// that value, or a return-void if it has no children (spec §4.4).
type ReturnStatement struct {
	Base
}

// NewReturnStatement constructs a ReturnStatement. Pass no value to return
// void.
func NewReturnStatement(value ...Node) *ReturnStatement {
	return &ReturnStatement{Base: NewBase(value...)}
}

package ast

// IndexExpression reads an element of an array-typed slot (`a[i]`),
// supplemented in SPEC_FULL.md §C as the lowering counterpart of the
// StaticArrayDef/DynamicArrayDef/IndexOperator token kinds spec §4.2
// names without a lowering contract. Its first child is the base array
// expression, its second is the index expression; lowering casts the
// index to Int64 before addressing.
type IndexExpression struct {
	Base
}

// NewIndexExpression constructs an IndexExpression over base and index.
func NewIndexExpression(base, index Node) *IndexExpression {
	return &IndexExpression{Base: NewBase(base, index)}
}

// Target returns the base array expression.
func (ie *IndexExpression) Target() Node {
	return ie.Children()[0]
}

// Index returns the index expression.
func (ie *IndexExpression) Index() Node {
	return ie.Children()[1]
}

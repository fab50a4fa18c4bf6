package ast

import "chaic/internal/types"

// BinaryExpressionType is enumerated so operator kind can be detected by
// numeric range (spec §3): Add..Mod are the math operators, Less..Eq are
// the comparisons, Assignment sits above both. IsMathOp/IsCmpOp below rely
// on this ordering for cheap classification -- do not reorder without
// updating them.
type BinaryExpressionType int

const (
	Add BinaryExpressionType = iota
	Sub
	Mul
	Div
	Mod

	Less
	LessEq
	Greater
	GreaterEq
	Eq

	Assignment
)

// BinaryExpression holds exactly two children with a deliberately reversed
// child order: child[1] is the left operand, child[0] is the right operand.
// This is not a bug -- it reflects the RPN assembly in spec §4.4/§4.5's
// Expression container (see internal/ast's Expression doc comment and
// DESIGN.md's Open Question 2), and is confirmed against the original
// ASTBinaryExpression::Codegen, which reads children[1] as LHS and
// children[0] as RHS.
type BinaryExpression struct {
	Base

	Op           BinaryExpressionType
	ExpectedType types.AbstractType
}

// NewBinaryExpression constructs a BinaryExpression node with no children
// attached yet; children are attached by the Expression RPN reassembly.
func NewBinaryExpression(op BinaryExpressionType, expectedType types.AbstractType) *BinaryExpression {
	return &BinaryExpression{Op: op, ExpectedType: expectedType}
}

// IsMathOp reports whether op is one of the arithmetic operators.
func (op BinaryExpressionType) IsMathOp() bool {
	return op <= Mod
}

// IsCmpOp reports whether op is one of the comparison operators.
func (op BinaryExpressionType) IsCmpOp() bool {
	return op <= Eq && op > Mod
}

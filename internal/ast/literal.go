package ast

import "chaic/internal/types"

// Literal is a constant value written verbatim in source. Lowering emits
// an IR constant of Type parsed from Text (spec §4.4).
type Literal struct {
	Base

	Text string
	Type types.AbstractType
}

// NewLiteral constructs a Literal node.
func NewLiteral(text string, typ types.AbstractType) *Literal {
	return &Literal{Text: text, Type: typ}
}

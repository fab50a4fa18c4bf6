package ast

import "chaic/internal/types"

// Member is one field of a Struct declaration: a name plus its declared
// type (spec §3/§4.4).
type Member struct {
	Name  string
	Field types.AbstractType
}

// Struct produces an IR aggregate-type layout by mapping each member's
// type to its IR type (recursively for nested user-defined types, which
// must already be declared -- forward references are not supported).
// Lowering stores {layout, field_index} under records[name] (spec §4.4).
type Struct struct {
	Base

	Name    string
	Members []Member
}

// NewStruct constructs a Struct node.
func NewStruct(name string, members []Member) *Struct {
	return &Struct{Name: name, Members: members}
}

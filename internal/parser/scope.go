package parser

import "chaic/internal/types"

// scope tracks the statically known type of every name visible in the
// function currently being parsed. This front end has no separate
// type-checking pass (spec §4.4 folds semantic checks into lowering), so
// the parser keeps just enough local bookkeeping to fill in
// BinaryExpression's required ExpectedType field at construction time.
type scope struct {
	vars map[string]types.VariableType
}

func newScope() *scope {
	return &scope{vars: make(map[string]types.VariableType)}
}

func (s *scope) declare(name string, vt types.VariableType) {
	s.vars[name] = vt
}

// lookup returns the declared type of name, defaulting to Int32 for a name
// this pass never saw declared (eg. a name used before its declaration, or
// one that is never declared at all) -- the
// front end has no general type-checker to fall back on, so this is a
// best-effort default rather than a hard error.
func (s *scope) lookup(name string) types.VariableType {
	if vt, ok := s.vars[name]; ok {
		return vt
	}
	return types.Int32
}

// funcSignature is the subset of a function declaration the parser needs
// to infer a call expression's type: its return type.
type funcSignature struct {
	returnType types.VariableType
}

package ast

import "surge/internal/source"

// Param is one parameter of a function, event, error, or modifier.
// Location is LocNone when the type is a value type (no location applies).
type Param struct {
	Type     TypeID
	Name     source.Symbol // may be NoSymbol for an unnamed return parameter
	Location DataLocation
	Span     source.Span
}

// OverrideSpecifier is an `override` or `override(A, B)` clause.
type OverrideSpecifier struct {
	Bases []source.Symbol // empty for a bare `override`
	Span  source.Span
}

// ModifierInvocation is one entry of a function's modifier list, e.g.
// `onlyOwner` or `lock(msg.sender)`.
type ModifierInvocation struct {
	Name source.Symbol
	Args []ExprID // nil when invoked without a parameter list
	Span source.Span
}

// FunctionDecl is a function, constructor, receive, or fallback declaration.
// Body is NoStmtID for an interface/abstract function with no implementation.
type FunctionDecl struct {
	Kind        FunctionKind
	Name        source.Symbol // NoSymbol for constructor/receive/fallback
	Params      []ParamID
	Returns     []ParamID
	Visibility  Visibility
	Mutability  Mutability
	Virtual     bool
	Override    *OverrideSpecifier
	Modifiers   []ModifierInvocation
	Body        StmtID
	Span        source.Span
	NameSpan    source.Span
}

// ModifierDecl is a `modifier Name(...) { ... }` declaration.
type ModifierDecl struct {
	Name     source.Symbol
	Params   []ParamID
	Virtual  bool
	Override *OverrideSpecifier
	Body     StmtID
	Span     source.Span
}

func (it *Items) NewParam(p Param) ParamID {
	return ParamID(it.Params.Allocate(p))
}

func (it *Items) GetParam(id ParamID) *Param {
	return it.Params.Get(uint32(id))
}

func (it *Items) NewParams(ps []Param) []ParamID {
	if len(ps) == 0 {
		return nil
	}
	ids := make([]ParamID, len(ps))
	for i, p := range ps {
		ids[i] = it.NewParam(p)
	}
	return ids
}

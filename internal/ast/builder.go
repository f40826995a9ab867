package ast

// Builder owns every arena needed to hold the parsed structure of a single
// compilation unit. The parser allocates exclusively through a Builder and
// hands the resulting FileID (plus the Builder itself) to later stages;
// nothing downstream mutates the arenas in place.
type Builder struct {
	Files *Files
	Items *Items
	Types *Types
	Exprs *Exprs
	Stmts *Stmts
	Yul   *Yul
}

// NewBuilder allocates a Builder with arena capacities sized for a
// source file of roughly capHint top-level tokens. Passing 0 uses the
// per-arena defaults.
func NewBuilder(capHint uint) *Builder {
	return &Builder{
		Files: NewFiles(capHint),
		Items: NewItems(capHint),
		Types: NewTypes(capHint),
		Exprs: NewExprs(capHint),
		Stmts: NewStmts(capHint),
		Yul:   NewYul(capHint),
	}
}

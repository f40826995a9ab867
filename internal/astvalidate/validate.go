// Package astvalidate runs the purely syntactic checks over a parsed file
// that don't require name resolution or types: placeholder placement,
// break/continue nesting, loop-body shape, unchecked-block nesting, name
// clashes between a function and its enclosing contract, enum/struct
// member-count bounds, modifier placeholder presence, receive/fallback
// signature shape, and pragma version shape.
//
// It runs after the parser and before the import resolver/HIR lowerer, and
// never assumes the tree came from this package's own parser: every check
// re-derives its answer from the tree itself rather than trusting a flag
// the parser may have already set, so a tree rebuilt by another producer
// (a cache, a fuzzer, a future incremental editor) gets the same guarantees.
package astvalidate

import (
	"surge/internal/ast"
	"surge/internal/diag"
	"surge/internal/source"
)

// Validate walks every item of file and reports violations to rep.
func Validate(b *ast.Builder, file ast.FileID, rep diag.Reporter) {
	v := &validator{b: b, rep: rep}
	f := b.Files.Get(file)
	if f == nil {
		return
	}
	for _, id := range f.Items {
		v.item(id)
	}
}

type validator struct {
	b   *ast.Builder
	rep diag.Reporter
}

func (v *validator) errorf(code diag.Code, span source.Span, msg string) {
	diag.ReportError(v.rep, code, span, msg).Emit()
}

func (v *validator) item(id ast.ItemID) {
	it := v.b.Items.Get(id)
	if it == nil {
		return
	}
	switch it.Kind {
	case ast.ItemPragma:
		v.pragma(v.b.Items.Pragma(id))
	case ast.ItemContract:
		v.contract(v.b.Items.Contract(id))
	case ast.ItemFreeFunction:
		v.function(source.NoSymbol, v.b.Items.FreeFunction(id))
	case ast.ItemFreeStruct:
		v.structDecl(v.b.Items.FreeStruct(id))
	case ast.ItemFreeEnum:
		v.enumDecl(v.b.Items.FreeEnum(id))
	}
}

func (v *validator) contract(c *ast.ContractDecl) {
	if c == nil {
		return
	}
	for _, id := range c.Items {
		ci := v.b.Items.GetContractItem(id)
		if ci == nil {
			continue
		}
		switch ci.Kind {
		case ast.CIFunction:
			v.function(c.Name, v.b.Items.Function(id))
		case ast.CIModifier:
			v.modifier(v.b.Items.Modifier(id))
		case ast.CIStruct:
			v.structDecl(v.b.Items.Struct(id))
		case ast.CIEnum:
			v.enumDecl(v.b.Items.Enum(id))
		}
	}
}

func (v *validator) function(contractName source.Symbol, fn *ast.FunctionDecl) {
	if fn == nil {
		return
	}
	if fn.Kind == ast.FuncKindOrdinary && fn.Name != source.NoSymbol && contractName != source.NoSymbol && fn.Name == contractName {
		v.errorf(diag.SynFnNameShadowsContract, fn.NameSpan, "function cannot have the same name as its enclosing contract")
	}
	switch fn.Kind {
	case ast.FuncKindReceive:
		v.receiveShape(fn)
	case ast.FuncKindFallback:
		v.fallbackShape(fn)
	}
	if fn.Body.IsValid() {
		v.stmt(fn.Body, loopCtx{})
	}
}

func (v *validator) receiveShape(fn *ast.FunctionDecl) {
	ok := len(fn.Params) == 0 && len(fn.Returns) == 0 &&
		fn.Visibility == ast.VisExternal && fn.Mutability == ast.MutPayable
	if !ok {
		v.errorf(diag.SynBadReceiveFallbackShape, fn.Span, "receive() must take no parameters, return nothing, and be declared 'external payable'")
	}
}

func (v *validator) fallbackShape(fn *ast.FunctionDecl) {
	ok := fn.Visibility == ast.VisExternal && len(fn.Params) <= 1 && len(fn.Returns) <= 1
	if !ok {
		v.errorf(diag.SynBadReceiveFallbackShape, fn.Span, "fallback() must be 'external' with at most one parameter and one return value")
	}
}

func (v *validator) modifier(md *ast.ModifierDecl) {
	if md == nil || !md.Body.IsValid() {
		return
	}
	if !v.containsPlaceholder(md.Body) {
		v.errorf(diag.SynModifierWithoutPlaceholder, md.Span, "modifier body must contain at least one '_' placeholder")
	}
	v.stmt(md.Body, loopCtx{insideModifier: true})
}

func (v *validator) structDecl(sd *ast.StructDecl) {
	if sd == nil {
		return
	}
	if len(sd.Fields) < 1 {
		v.errorf(diag.SynEmptyStruct, sd.Span, "struct must declare at least one field")
	}
}

func (v *validator) enumDecl(ed *ast.EnumDecl) {
	if ed == nil {
		return
	}
	if len(ed.Variants) < 1 || len(ed.Variants) > 256 {
		v.errorf(diag.SynEnumVariantCount, ed.Span, "enum must declare between 1 and 256 variants")
	}
}

// loopCtx tracks the structural context a statement is nested in: how many
// enclosing loops (for break/continue), whether an unchecked block already
// encloses this point (for nesting), and whether a modifier body encloses
// this point (for placeholder placement).
type loopCtx struct {
	loopDepth      int
	uncheckedDepth int
	insideModifier bool
}

func (v *validator) stmt(id ast.StmtID, ctx loopCtx) {
	st := v.b.Stmts.Get(id)
	if st == nil {
		return
	}
	switch st.Kind {
	case ast.SBlock:
		blk := v.b.Stmts.BlockOf(st)
		for _, s := range blk.Stmts {
			v.stmt(s, ctx)
		}
	case ast.SIf:
		ifs := v.b.Stmts.IfOf(st)
		v.stmt(ifs.Then, ctx)
		if ifs.Else.IsValid() {
			v.stmt(ifs.Else, ctx)
		}
	case ast.SFor:
		f := v.b.Stmts.ForOf(st)
		v.checkSoleLoopBody(f.Body)
		if f.Init.IsValid() {
			v.stmt(f.Init, ctx)
		}
		v.stmt(f.Body, ctx.enterLoop())
	case ast.SWhile:
		w := v.b.Stmts.WhileOf(st)
		v.checkSoleLoopBody(w.Body)
		v.stmt(w.Body, ctx.enterLoop())
	case ast.SDoWhile:
		d := v.b.Stmts.DoWhileOf(st)
		v.checkSoleLoopBody(d.Body)
		v.stmt(d.Body, ctx.enterLoop())
	case ast.SBreak, ast.SContinue:
		if ctx.loopDepth == 0 {
			v.errorf(diag.SynLoopControlOutsideLoop, st.Span, "break/continue must be inside a loop")
		}
	case ast.SUnchecked:
		u := v.b.Stmts.UncheckedOf(st)
		if ctx.uncheckedDepth > 0 {
			v.errorf(diag.SynNestedUnchecked, st.Span, "unchecked blocks cannot nest")
		}
		v.stmt(u.Body, ctx.enterUnchecked())
	case ast.STry:
		t := v.b.Stmts.TryOf(st)
		v.stmt(t.Body, ctx)
		for _, c := range t.Catches {
			v.stmt(c.Body, ctx)
		}
	case ast.SPlaceholder:
		if !ctx.insideModifier {
			v.errorf(diag.SynPlaceholderOutsideModifier, st.Span, "'_' placeholder is only valid inside a modifier body")
		}
	}
}

func (c loopCtx) enterLoop() loopCtx {
	c.loopDepth++
	return c
}

func (c loopCtx) enterUnchecked() loopCtx {
	c.uncheckedDepth++
	return c
}

// containsPlaceholder reports whether id's subtree contains a placeholder
// statement anywhere reachable without crossing into a nested function
// (which cannot happen in Solidity's grammar, since function/modifier
// bodies never nest another declaration).
func (v *validator) containsPlaceholder(id ast.StmtID) bool {
	st := v.b.Stmts.Get(id)
	if st == nil {
		return false
	}
	switch st.Kind {
	case ast.SPlaceholder:
		return true
	case ast.SBlock:
		blk := v.b.Stmts.BlockOf(st)
		for _, s := range blk.Stmts {
			if v.containsPlaceholder(s) {
				return true
			}
		}
	case ast.SIf:
		ifs := v.b.Stmts.IfOf(st)
		if v.containsPlaceholder(ifs.Then) {
			return true
		}
		if ifs.Else.IsValid() && v.containsPlaceholder(ifs.Else) {
			return true
		}
	case ast.SFor:
		return v.containsPlaceholder(v.b.Stmts.ForOf(st).Body)
	case ast.SWhile:
		return v.containsPlaceholder(v.b.Stmts.WhileOf(st).Body)
	case ast.SDoWhile:
		return v.containsPlaceholder(v.b.Stmts.DoWhileOf(st).Body)
	case ast.SUnchecked:
		return v.containsPlaceholder(v.b.Stmts.UncheckedOf(st).Body)
	case ast.STry:
		t := v.b.Stmts.TryOf(st)
		if v.containsPlaceholder(t.Body) {
			return true
		}
		for _, c := range t.Catches {
			if v.containsPlaceholder(c.Body) {
				return true
			}
		}
	}
	return false
}

package ast

import "surge/internal/source"

// StmtKind tags the payload of a Stmt.
type StmtKind uint8

const (
	SBlock StmtKind = iota
	SIf
	SFor
	SWhile
	SDoWhile
	SReturn
	SBreak
	SContinue
	SEmit
	SRevert
	SThrow
	SUnchecked
	STry
	SVarDecl
	SExprStmt
	SPlaceholder
	SAssembly
)

// Stmt is a generic statement node: Kind selects which kind-specific arena
// Payload indexes into. Break/Continue/Throw/Placeholder need no payload.
type Stmt struct {
	Kind    StmtKind
	Span    source.Span
	Payload uint32
}

// BlockStmt is `{ stmt... }`.
type BlockStmt struct {
	Stmts []StmtID
	Span  source.Span
}

// IfStmt is `if (cond) then [else else_]`.
type IfStmt struct {
	Cond ExprID
	Then StmtID
	Else StmtID // NoStmtID if absent
	Span source.Span
}

// ForStmt is `for (init; cond; post) body`; Init/Cond/Post may each be
// the respective "no value" sentinel when omitted.
type ForStmt struct {
	Init StmtID
	Cond ExprID
	Post ExprID
	Body StmtID
	Span source.Span
}

// WhileStmt is `while (cond) body`.
type WhileStmt struct {
	Cond ExprID
	Body StmtID
	Span source.Span
}

// DoWhileStmt is `do body while (cond);`.
type DoWhileStmt struct {
	Body StmtID
	Cond ExprID
	Span source.Span
}

// ReturnStmt is `return [value];`.
type ReturnStmt struct {
	Value ExprID // NoExprID if bare `return;`
	Span  source.Span
}

// EmitStmt is `emit Call(...);`.
type EmitStmt struct {
	Call ExprID
	Span source.Span
}

// RevertStmt is `revert [Path](args);`; Callee is NoExprID for the bare
// builtin `revert();`/`revert("reason");` form distinguished by Args.
type RevertStmt struct {
	Callee ExprID
	Args   []CallArg
	Span   source.Span
}

// UncheckedStmt is `unchecked { ... }`; Body is always a BlockStmt.
type UncheckedStmt struct {
	Body StmtID
	Span source.Span
}

// CatchClause is one `catch [Name] ([params]) { ... }` clause of a try
// statement. Name is NoSymbol for the bare fallback `catch { ... }` form.
type CatchClause struct {
	Name   source.Symbol
	Params []ParamID
	Body   StmtID
	Span   source.Span
}

// TryStmt is `try expr [returns (params)] { ... } catch ... `.
type TryStmt struct {
	Expr    ExprID
	Returns []ParamID
	Body    StmtID
	Catches []CatchClause
	Span    source.Span
}

// VarDeclName is one binding of a (possibly tuple) variable-declaration
// statement; Type is NoTypeID for an omitted destructuring slot
// `(uint a, , bool c) = f();`.
type VarDeclName struct {
	Type     TypeID
	Name     source.Symbol
	Location DataLocation
	Span     source.Span
}

// VarDeclStmt is a local variable declaration, single or tuple-destructured.
type VarDeclStmt struct {
	Names []VarDeclName
	Init  ExprID // NoExprID if no initializer
	Span  source.Span
}

// ExprStmt is a bare expression used as a statement.
type ExprStmt struct {
	Expr ExprID
	Span source.Span
}

// AssemblyStmt is an inline-assembly block with its optional dialect tag
// and flag list, e.g. `assembly ("memory-safe") { ... }`.
type AssemblyStmt struct {
	Dialect string
	Flags   []string
	Body    YulBlock
	Span    source.Span
}

// Stmts manages allocation of Stmt and its per-kind payloads.
type Stmts struct {
	Arena      *Arena[Stmt]
	Block      *Arena[BlockStmt]
	If         *Arena[IfStmt]
	For        *Arena[ForStmt]
	While      *Arena[WhileStmt]
	DoWhile    *Arena[DoWhileStmt]
	Return     *Arena[ReturnStmt]
	Emit       *Arena[EmitStmt]
	Revert     *Arena[RevertStmt]
	Unchecked  *Arena[UncheckedStmt]
	Try        *Arena[TryStmt]
	VarDecl    *Arena[VarDeclStmt]
	ExprStmt   *Arena[ExprStmt]
	Assembly   *Arena[AssemblyStmt]
}

func NewStmts(capHint uint) *Stmts {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Stmts{
		Arena:     NewArena[Stmt](capHint),
		Block:     NewArena[BlockStmt](capHint),
		If:        NewArena[IfStmt](capHint),
		For:       NewArena[ForStmt](capHint),
		While:     NewArena[WhileStmt](capHint),
		DoWhile:   NewArena[DoWhileStmt](capHint),
		Return:    NewArena[ReturnStmt](capHint),
		Emit:      NewArena[EmitStmt](capHint),
		Revert:    NewArena[RevertStmt](capHint),
		Unchecked: NewArena[UncheckedStmt](capHint),
		Try:       NewArena[TryStmt](capHint),
		VarDecl:   NewArena[VarDeclStmt](capHint),
		ExprStmt:  NewArena[ExprStmt](capHint),
		Assembly:  NewArena[AssemblyStmt](capHint),
	}
}

func (s *Stmts) newStmt(kind StmtKind, span source.Span, payload uint32) StmtID {
	return StmtID(s.Arena.Allocate(Stmt{Kind: kind, Span: span, Payload: payload}))
}

func (s *Stmts) Get(id StmtID) *Stmt {
	return s.Arena.Get(uint32(id))
}

func (s *Stmts) NewBlock(b BlockStmt) StmtID {
	payload := s.Block.Allocate(b)
	return s.newStmt(SBlock, b.Span, payload)
}

func (s *Stmts) NewIf(i IfStmt) StmtID {
	payload := s.If.Allocate(i)
	return s.newStmt(SIf, i.Span, payload)
}

func (s *Stmts) NewFor(f ForStmt) StmtID {
	payload := s.For.Allocate(f)
	return s.newStmt(SFor, f.Span, payload)
}

func (s *Stmts) NewWhile(w WhileStmt) StmtID {
	payload := s.While.Allocate(w)
	return s.newStmt(SWhile, w.Span, payload)
}

func (s *Stmts) NewDoWhile(d DoWhileStmt) StmtID {
	payload := s.DoWhile.Allocate(d)
	return s.newStmt(SDoWhile, d.Span, payload)
}

func (s *Stmts) NewReturn(r ReturnStmt) StmtID {
	payload := s.Return.Allocate(r)
	return s.newStmt(SReturn, r.Span, payload)
}

func (s *Stmts) NewBreak(span source.Span) StmtID {
	return s.newStmt(SBreak, span, 0)
}

func (s *Stmts) NewContinue(span source.Span) StmtID {
	return s.newStmt(SContinue, span, 0)
}

func (s *Stmts) NewThrow(span source.Span) StmtID {
	return s.newStmt(SThrow, span, 0)
}

func (s *Stmts) NewPlaceholder(span source.Span) StmtID {
	return s.newStmt(SPlaceholder, span, 0)
}

func (s *Stmts) NewEmit(e EmitStmt) StmtID {
	payload := s.Emit.Allocate(e)
	return s.newStmt(SEmit, e.Span, payload)
}

func (s *Stmts) NewRevert(r RevertStmt) StmtID {
	payload := s.Revert.Allocate(r)
	return s.newStmt(SRevert, r.Span, payload)
}

func (s *Stmts) NewUnchecked(u UncheckedStmt) StmtID {
	payload := s.Unchecked.Allocate(u)
	return s.newStmt(SUnchecked, u.Span, payload)
}

func (s *Stmts) NewTry(t TryStmt) StmtID {
	payload := s.Try.Allocate(t)
	return s.newStmt(STry, t.Span, payload)
}

func (s *Stmts) NewVarDecl(v VarDeclStmt) StmtID {
	payload := s.VarDecl.Allocate(v)
	return s.newStmt(SVarDecl, v.Span, payload)
}

func (s *Stmts) NewExprStmt(x ExprStmt) StmtID {
	payload := s.ExprStmt.Allocate(x)
	return s.newStmt(SExprStmt, x.Span, payload)
}

func (s *Stmts) NewAssembly(a AssemblyStmt) StmtID {
	payload := s.Assembly.Allocate(a)
	return s.newStmt(SAssembly, a.Span, payload)
}

func (s *Stmts) BlockOf(st *Stmt) *BlockStmt {
	if st == nil || st.Kind != SBlock {
		return nil
	}
	return s.Block.Get(st.Payload)
}

func (s *Stmts) IfOf(st *Stmt) *IfStmt {
	if st == nil || st.Kind != SIf {
		return nil
	}
	return s.If.Get(st.Payload)
}

func (s *Stmts) ForOf(st *Stmt) *ForStmt {
	if st == nil || st.Kind != SFor {
		return nil
	}
	return s.For.Get(st.Payload)
}

func (s *Stmts) WhileOf(st *Stmt) *WhileStmt {
	if st == nil || st.Kind != SWhile {
		return nil
	}
	return s.While.Get(st.Payload)
}

func (s *Stmts) DoWhileOf(st *Stmt) *DoWhileStmt {
	if st == nil || st.Kind != SDoWhile {
		return nil
	}
	return s.DoWhile.Get(st.Payload)
}

func (s *Stmts) ReturnOf(st *Stmt) *ReturnStmt {
	if st == nil || st.Kind != SReturn {
		return nil
	}
	return s.Return.Get(st.Payload)
}

func (s *Stmts) EmitOf(st *Stmt) *EmitStmt {
	if st == nil || st.Kind != SEmit {
		return nil
	}
	return s.Emit.Get(st.Payload)
}

func (s *Stmts) RevertOf(st *Stmt) *RevertStmt {
	if st == nil || st.Kind != SRevert {
		return nil
	}
	return s.Revert.Get(st.Payload)
}

func (s *Stmts) UncheckedOf(st *Stmt) *UncheckedStmt {
	if st == nil || st.Kind != SUnchecked {
		return nil
	}
	return s.Unchecked.Get(st.Payload)
}

func (s *Stmts) TryOf(st *Stmt) *TryStmt {
	if st == nil || st.Kind != STry {
		return nil
	}
	return s.Try.Get(st.Payload)
}

func (s *Stmts) VarDeclOf(st *Stmt) *VarDeclStmt {
	if st == nil || st.Kind != SVarDecl {
		return nil
	}
	return s.VarDecl.Get(st.Payload)
}

func (s *Stmts) ExprStmtOf(st *Stmt) *ExprStmt {
	if st == nil || st.Kind != SExprStmt {
		return nil
	}
	return s.ExprStmt.Get(st.Payload)
}

func (s *Stmts) AssemblyOf(st *Stmt) *AssemblyStmt {
	if st == nil || st.Kind != SAssembly {
		return nil
	}
	return s.Assembly.Get(st.Payload)
}

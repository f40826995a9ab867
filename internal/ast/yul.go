package ast

import "surge/internal/source"

// YulStmtKind tags the payload of a YulStmt.
type YulStmtKind uint8

const (
	YulSBlock YulStmtKind = iota
	YulSAssign
	YulSVarDecl
	YulSIf
	YulSFor
	YulSSwitch
	YulSFunctionDef
	YulSExprStmt
	YulSBreak
	YulSContinue
	YulSLeave
)

// YulStmt is a generic Yul statement node, using the same tagged-payload
// pattern as the surrounding Solidity statement arena.
type YulStmt struct {
	Kind    YulStmtKind
	Span    source.Span
	Payload uint32
}

// YulBlock is `{ yulstmt... }`.
type YulBlock struct {
	Stmts []YulStmtID
	Span  source.Span
}

// YulAssign is `path... := expr` (multi-assignment for multi-value calls).
type YulAssign struct {
	Targets []source.Symbol
	Value   YulExprID
	Span    source.Span
}

// YulVarDecl is `let name... [:= expr]`.
type YulVarDecl struct {
	Names []source.Symbol
	Value YulExprID // NoYulExprID if omitted
	Span  source.Span
}

// YulIf is `if cond { body }`; Yul has no else branch.
type YulIf struct {
	Cond YulExprID
	Body YulBlock
	Span source.Span
}

// YulFor is `for { init } cond { post } { body }`.
type YulFor struct {
	Init YulBlock
	Cond YulExprID
	Post YulBlock
	Body YulBlock
	Span source.Span
}

// YulCase is one `case literal { body }` arm of a switch, or the `default`
// arm when Literal is the zero Expr (IsDefault true).
type YulCase struct {
	IsDefault bool
	Literal   YulExprID
	Body      YulBlock
	Span      source.Span
}

// YulSwitch is `switch expr case ... [default { ... }]`.
type YulSwitch struct {
	Value YulExprID
	Cases []YulCase
	Span  source.Span
}

// YulTypedName is a function parameter or return name with an optional
// Yul type annotation (e.g. `x: u256` under a typed dialect).
type YulTypedName struct {
	Name source.Symbol
	Type source.Symbol // NoSymbol when untyped
	Span source.Span
}

// YulFunctionDef is `function name(params) -> returns { body }`.
type YulFunctionDef struct {
	Name    source.Symbol
	Params  []YulTypedName
	Returns []YulTypedName
	Body    YulBlock
	Span    source.Span
}

// YulExprStmt wraps a call expression used as a statement.
type YulExprStmt struct {
	Expr YulExprID
	Span source.Span
}

// Yul manages allocation of YulStmt and its per-kind payloads. It lives
// inside the same ast package as the statement arena it is referenced
// from (AssemblyStmt.Body) but keeps its own expression arena since Yul
// expressions (identifiers, literals, calls) are a disjoint grammar from
// Solidity's.
type Yul struct {
	Arena        *Arena[YulStmt]
	Block        *Arena[YulBlock]
	Assign       *Arena[YulAssign]
	VarDecl      *Arena[YulVarDecl]
	If           *Arena[YulIf]
	For          *Arena[YulFor]
	Switch       *Arena[YulSwitch]
	FunctionDef  *Arena[YulFunctionDef]
	ExprStmt     *Arena[YulExprStmt]
	Exprs        *YulExprs
}

func NewYul(capHint uint) *Yul {
	if capHint == 0 {
		capHint = 1 << 6
	}
	return &Yul{
		Arena:       NewArena[YulStmt](capHint),
		Block:       NewArena[YulBlock](capHint),
		Assign:      NewArena[YulAssign](capHint),
		VarDecl:     NewArena[YulVarDecl](capHint),
		If:          NewArena[YulIf](capHint),
		For:         NewArena[YulFor](capHint),
		Switch:      NewArena[YulSwitch](capHint),
		FunctionDef: NewArena[YulFunctionDef](capHint),
		ExprStmt:    NewArena[YulExprStmt](capHint),
		Exprs:       NewYulExprs(capHint),
	}
}

func (y *Yul) newStmt(kind YulStmtKind, span source.Span, payload uint32) YulStmtID {
	return YulStmtID(y.Arena.Allocate(YulStmt{Kind: kind, Span: span, Payload: payload}))
}

func (y *Yul) Get(id YulStmtID) *YulStmt {
	return y.Arena.Get(uint32(id))
}

// NewBlock wraps a nested `{ ... }` appearing directly as a statement
// (the outermost block of an assembly statement is stored inline on
// AssemblyStmt.Body instead and never goes through this arena).
func (y *Yul) NewBlock(b YulBlock) YulStmtID {
	payload := y.Block.Allocate(b)
	return y.newStmt(YulSBlock, b.Span, payload)
}

func (y *Yul) NewAssign(a YulAssign) YulStmtID {
	payload := y.Assign.Allocate(a)
	return y.newStmt(YulSAssign, a.Span, payload)
}

func (y *Yul) NewVarDecl(v YulVarDecl) YulStmtID {
	payload := y.VarDecl.Allocate(v)
	return y.newStmt(YulSVarDecl, v.Span, payload)
}

func (y *Yul) NewIf(i YulIf) YulStmtID {
	payload := y.If.Allocate(i)
	return y.newStmt(YulSIf, i.Span, payload)
}

func (y *Yul) NewFor(f YulFor) YulStmtID {
	payload := y.For.Allocate(f)
	return y.newStmt(YulSFor, f.Span, payload)
}

func (y *Yul) NewSwitch(s YulSwitch) YulStmtID {
	payload := y.Switch.Allocate(s)
	return y.newStmt(YulSSwitch, s.Span, payload)
}

func (y *Yul) NewFunctionDef(f YulFunctionDef) YulStmtID {
	payload := y.FunctionDef.Allocate(f)
	return y.newStmt(YulSFunctionDef, f.Span, payload)
}

func (y *Yul) NewExprStmt(x YulExprStmt) YulStmtID {
	payload := y.ExprStmt.Allocate(x)
	return y.newStmt(YulSExprStmt, x.Span, payload)
}

func (y *Yul) NewBreak(span source.Span) YulStmtID {
	return y.newStmt(YulSBreak, span, 0)
}

func (y *Yul) NewContinue(span source.Span) YulStmtID {
	return y.newStmt(YulSContinue, span, 0)
}

func (y *Yul) NewLeave(span source.Span) YulStmtID {
	return y.newStmt(YulSLeave, span, 0)
}

func (y *Yul) BlockOf(st *YulStmt) *YulBlock {
	if st == nil || st.Kind != YulSBlock {
		return nil
	}
	return y.Block.Get(st.Payload)
}

func (y *Yul) AssignOf(st *YulStmt) *YulAssign {
	if st == nil || st.Kind != YulSAssign {
		return nil
	}
	return y.Assign.Get(st.Payload)
}

func (y *Yul) VarDeclOf(st *YulStmt) *YulVarDecl {
	if st == nil || st.Kind != YulSVarDecl {
		return nil
	}
	return y.VarDecl.Get(st.Payload)
}

func (y *Yul) IfOf(st *YulStmt) *YulIf {
	if st == nil || st.Kind != YulSIf {
		return nil
	}
	return y.If.Get(st.Payload)
}

func (y *Yul) ForOf(st *YulStmt) *YulFor {
	if st == nil || st.Kind != YulSFor {
		return nil
	}
	return y.For.Get(st.Payload)
}

func (y *Yul) SwitchOf(st *YulStmt) *YulSwitch {
	if st == nil || st.Kind != YulSSwitch {
		return nil
	}
	return y.Switch.Get(st.Payload)
}

func (y *Yul) FunctionDefOf(st *YulStmt) *YulFunctionDef {
	if st == nil || st.Kind != YulSFunctionDef {
		return nil
	}
	return y.FunctionDef.Get(st.Payload)
}

func (y *Yul) ExprStmtOf(st *YulStmt) *YulExprStmt {
	if st == nil || st.Kind != YulSExprStmt {
		return nil
	}
	return y.ExprStmt.Get(st.Payload)
}

// YulExprKind tags the payload of a YulExpr.
type YulExprKind uint8

const (
	YulEIdent YulExprKind = iota
	YulELiteral
	YulECall
)

// YulExpr is a generic Yul expression node. Ident/Literal store their
// value inline (Name/Text); Call indexes into the Call arena.
type YulExpr struct {
	Kind    YulExprKind
	Span    source.Span
	Name    source.Symbol
	Text    string
	Payload uint32
}

// YulCall is `name(args...)`.
type YulCall struct {
	Name source.Symbol
	Args []YulExprID
	Span source.Span
}

// YulExprs manages allocation of YulExpr and its Call payload.
type YulExprs struct {
	Arena *Arena[YulExpr]
	Call  *Arena[YulCall]
}

func NewYulExprs(capHint uint) *YulExprs {
	if capHint == 0 {
		capHint = 1 << 6
	}
	return &YulExprs{
		Arena: NewArena[YulExpr](capHint),
		Call:  NewArena[YulCall](capHint),
	}
}

func (e *YulExprs) Get(id YulExprID) *YulExpr {
	return e.Arena.Get(uint32(id))
}

func (e *YulExprs) NewIdent(name source.Symbol, span source.Span) YulExprID {
	return YulExprID(e.Arena.Allocate(YulExpr{Kind: YulEIdent, Span: span, Name: name}))
}

func (e *YulExprs) NewLiteral(text string, span source.Span) YulExprID {
	return YulExprID(e.Arena.Allocate(YulExpr{Kind: YulELiteral, Span: span, Text: text}))
}

func (e *YulExprs) NewCall(c YulCall) YulExprID {
	payload := e.Call.Allocate(c)
	return YulExprID(e.Arena.Allocate(YulExpr{Kind: YulECall, Span: c.Span, Payload: payload}))
}

func (e *YulExprs) CallOf(x *YulExpr) *YulCall {
	if x == nil || x.Kind != YulECall {
		return nil
	}
	return e.Call.Get(x.Payload)
}

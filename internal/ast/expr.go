package ast

import "surge/internal/source"

// UnaryOp enumerates Solidity's unary and increment/decrement operators.
type UnaryOp uint8

const (
	UnNeg UnaryOp = iota
	UnNot
	UnBitNot
	UnInc
	UnDec
	UnDelete
)

// BinaryOp enumerates Solidity's binary operators, excluding assignment.
type BinaryOp uint8

const (
	BinAdd BinaryOp = iota
	BinSub
	BinMul
	BinDiv
	BinMod
	BinPow
	BinAnd // &&
	BinOr  // ||
	BinBitAnd
	BinBitOr
	BinBitXor
	BinShl
	BinShr
	BinEq
	BinNeq
	BinLt
	BinLe
	BinGt
	BinGe
)

// AssignOp enumerates plain and compound assignment operators.
type AssignOp uint8

const (
	AsgAssign AssignOp = iota
	AsgAdd
	AsgSub
	AsgMul
	AsgDiv
	AsgMod
	AsgBitAnd
	AsgBitOr
	AsgBitXor
	AsgShl
	AsgShr
)

// ExprKind tags the payload of an Expr.
type ExprKind uint8

const (
	EIdent ExprKind = iota
	EIntLit
	ERationalLit
	EStringLit
	EHexStringLit
	EUnicodeStringLit
	EBoolLit
	EThis
	ESuper
	EUnary
	EBinary
	EAssign
	EConditional
	ECall
	ECallOptions
	EMember
	EIndex
	EIndexRange
	ENew
	ETuple
	EInlineArray
	EElementaryTypeExpr
	ETypeExpr
)

// Expr is a generic expression node: Kind selects which kind-specific
// arena Payload indexes into. Literal and identifier kinds are small
// enough to need no side payload and store their data inline.
type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload uint32
	Name    source.Symbol // EIdent
	Text    string         // literal lexeme, kinds EIntLit/ERationalLit/EStringLit/EHexStringLit/EUnicodeStringLit
	Bool    bool           // EBoolLit
}

// UnaryExpr is `op operand` or `operand op` for increment/decrement.
type UnaryExpr struct {
	Op      UnaryOp
	Operand ExprID
	Prefix  bool
	Span    source.Span
}

// BinaryExpr is `left op right`.
type BinaryExpr struct {
	Op    BinaryOp
	Left  ExprID
	Right ExprID
	Span  source.Span
}

// AssignExpr is `target op= value`.
type AssignExpr struct {
	Op     AssignOp
	Target ExprID
	Value  ExprID
	Span   source.Span
}

// ConditionalExpr is the ternary `cond ? then : else`.
type ConditionalExpr struct {
	Cond ExprID
	Then ExprID
	Else ExprID
	Span source.Span
}

// CallArg is one argument of a call; Name is NoSymbol for positional
// arguments, set for named-argument call syntax `f({a: 1, b: 2})`.
type CallArg struct {
	Name  source.Symbol
	Value ExprID
}

// CallExpr is `callee(args)`, with either purely positional or purely
// named arguments (Solidity does not mix the two).
type CallExpr struct {
	Callee ExprID
	Args   []CallArg
	Span   source.Span
}

// CallOption is one entry of a call-options block `{value: x, gas: y}`.
type CallOption struct {
	Name  source.Symbol
	Value ExprID
}

// CallOptionsExpr is `callee{opt: val, ...}`, which a following CallExpr
// then invokes as its Callee.
type CallOptionsExpr struct {
	Callee  ExprID
	Options []CallOption
	Span    source.Span
}

// MemberExpr is `object.name`.
type MemberExpr struct {
	Object ExprID
	Name   source.Symbol
	Span   source.Span
}

// IndexExpr is `object[index]`.
type IndexExpr struct {
	Object ExprID
	Index  ExprID
	Span   source.Span
}

// IndexRangeExpr is the calldata/storage slice form `object[from:to]`;
// From/To are NoExprID when omitted.
type IndexRangeExpr struct {
	Object ExprID
	From   ExprID
	To     ExprID
	Span   source.Span
}

// NewExpr is `new T`, typically immediately invoked by a CallExpr (for a
// contract constructor) or indexed by a CallExpr with a single length
// argument (for a dynamic array: `new uint256[](n)`).
type NewExpr struct {
	Type TypeID
	Span source.Span
}

// TupleExpr is a parenthesized group or tuple, including destructuring
// targets with omitted slots: `(a, , c) = f()`. A slot holding NoExprID
// is an omitted component.
type TupleExpr struct {
	Elems []ExprID
	Span  source.Span
}

// InlineArrayExpr is an array literal `[a, b, c]`.
type InlineArrayExpr struct {
	Elems []ExprID
	Span  source.Span
}

// ElementaryTypeExpr is a bare elementary type name used in expression
// position, almost always as the callee of an explicit conversion such as
// `uint256(x)` or `payable(x)`.
type ElementaryTypeExpr struct {
	Type TypeID
	Span source.Span
}

// TypeExpr is `type(T)`, used for `type(T).min/.max/.interfaceId/.name`.
type TypeExpr struct {
	Type TypeID
	Span source.Span
}

// Exprs manages allocation of Expr and its per-kind payloads.
type Exprs struct {
	Arena          *Arena[Expr]
	Unary          *Arena[UnaryExpr]
	Binary         *Arena[BinaryExpr]
	Assign         *Arena[AssignExpr]
	Conditional    *Arena[ConditionalExpr]
	Call           *Arena[CallExpr]
	CallOptions    *Arena[CallOptionsExpr]
	Member         *Arena[MemberExpr]
	Index          *Arena[IndexExpr]
	IndexRange     *Arena[IndexRangeExpr]
	New            *Arena[NewExpr]
	Tuple          *Arena[TupleExpr]
	InlineArray    *Arena[InlineArrayExpr]
	ElementaryType *Arena[ElementaryTypeExpr]
	TypeExprArena  *Arena[TypeExpr]
}

func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Exprs{
		Arena:          NewArena[Expr](capHint),
		Unary:          NewArena[UnaryExpr](capHint),
		Binary:         NewArena[BinaryExpr](capHint),
		Assign:         NewArena[AssignExpr](capHint),
		Conditional:    NewArena[ConditionalExpr](capHint),
		Call:           NewArena[CallExpr](capHint),
		CallOptions:    NewArena[CallOptionsExpr](capHint),
		Member:         NewArena[MemberExpr](capHint),
		Index:          NewArena[IndexExpr](capHint),
		IndexRange:     NewArena[IndexRangeExpr](capHint),
		New:            NewArena[NewExpr](capHint),
		Tuple:          NewArena[TupleExpr](capHint),
		InlineArray:    NewArena[InlineArrayExpr](capHint),
		ElementaryType: NewArena[ElementaryTypeExpr](capHint),
		TypeExprArena:  NewArena[TypeExpr](capHint),
	}
}

func (e *Exprs) newExpr(kind ExprKind, span source.Span, payload uint32) ExprID {
	return ExprID(e.Arena.Allocate(Expr{Kind: kind, Span: span, Payload: payload}))
}

func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

func (e *Exprs) NewIdent(name source.Symbol, span source.Span) ExprID {
	return ExprID(e.Arena.Allocate(Expr{Kind: EIdent, Span: span, Name: name}))
}

func (e *Exprs) NewThis(span source.Span) ExprID {
	return ExprID(e.Arena.Allocate(Expr{Kind: EThis, Span: span}))
}

func (e *Exprs) NewSuper(span source.Span) ExprID {
	return ExprID(e.Arena.Allocate(Expr{Kind: ESuper, Span: span}))
}

func (e *Exprs) NewIntLit(text string, span source.Span) ExprID {
	return ExprID(e.Arena.Allocate(Expr{Kind: EIntLit, Span: span, Text: text}))
}

func (e *Exprs) NewRationalLit(text string, span source.Span) ExprID {
	return ExprID(e.Arena.Allocate(Expr{Kind: ERationalLit, Span: span, Text: text}))
}

func (e *Exprs) NewStringLit(text string, span source.Span) ExprID {
	return ExprID(e.Arena.Allocate(Expr{Kind: EStringLit, Span: span, Text: text}))
}

func (e *Exprs) NewHexStringLit(text string, span source.Span) ExprID {
	return ExprID(e.Arena.Allocate(Expr{Kind: EHexStringLit, Span: span, Text: text}))
}

func (e *Exprs) NewUnicodeStringLit(text string, span source.Span) ExprID {
	return ExprID(e.Arena.Allocate(Expr{Kind: EUnicodeStringLit, Span: span, Text: text}))
}

func (e *Exprs) NewBoolLit(value bool, span source.Span) ExprID {
	return ExprID(e.Arena.Allocate(Expr{Kind: EBoolLit, Span: span, Bool: value}))
}

func (e *Exprs) NewUnary(u UnaryExpr) ExprID {
	payload := e.Unary.Allocate(u)
	return e.newExpr(EUnary, u.Span, payload)
}

func (e *Exprs) NewBinary(b BinaryExpr) ExprID {
	payload := e.Binary.Allocate(b)
	return e.newExpr(EBinary, b.Span, payload)
}

func (e *Exprs) NewAssign(a AssignExpr) ExprID {
	payload := e.Assign.Allocate(a)
	return e.newExpr(EAssign, a.Span, payload)
}

func (e *Exprs) NewConditional(c ConditionalExpr) ExprID {
	payload := e.Conditional.Allocate(c)
	return e.newExpr(EConditional, c.Span, payload)
}

func (e *Exprs) NewCall(c CallExpr) ExprID {
	payload := e.Call.Allocate(c)
	return e.newExpr(ECall, c.Span, payload)
}

func (e *Exprs) NewCallOptions(c CallOptionsExpr) ExprID {
	payload := e.CallOptions.Allocate(c)
	return e.newExpr(ECallOptions, c.Span, payload)
}

func (e *Exprs) NewMember(m MemberExpr) ExprID {
	payload := e.Member.Allocate(m)
	return e.newExpr(EMember, m.Span, payload)
}

func (e *Exprs) NewIndex(ix IndexExpr) ExprID {
	payload := e.Index.Allocate(ix)
	return e.newExpr(EIndex, ix.Span, payload)
}

func (e *Exprs) NewIndexRange(ix IndexRangeExpr) ExprID {
	payload := e.IndexRange.Allocate(ix)
	return e.newExpr(EIndexRange, ix.Span, payload)
}

func (e *Exprs) NewNew(n NewExpr) ExprID {
	payload := e.New.Allocate(n)
	return e.newExpr(ENew, n.Span, payload)
}

func (e *Exprs) NewTuple(tu TupleExpr) ExprID {
	payload := e.Tuple.Allocate(tu)
	return e.newExpr(ETuple, tu.Span, payload)
}

func (e *Exprs) NewInlineArray(a InlineArrayExpr) ExprID {
	payload := e.InlineArray.Allocate(a)
	return e.newExpr(EInlineArray, a.Span, payload)
}

func (e *Exprs) NewElementaryTypeExpr(t ElementaryTypeExpr) ExprID {
	payload := e.ElementaryType.Allocate(t)
	return e.newExpr(EElementaryTypeExpr, t.Span, payload)
}

func (e *Exprs) NewTypeExpr(t TypeExpr) ExprID {
	payload := e.TypeExprArena.Allocate(t)
	return e.newExpr(ETypeExpr, t.Span, payload)
}

func (e *Exprs) UnaryOf(x *Expr) *UnaryExpr {
	if x == nil || x.Kind != EUnary {
		return nil
	}
	return e.Unary.Get(x.Payload)
}

func (e *Exprs) BinaryOf(x *Expr) *BinaryExpr {
	if x == nil || x.Kind != EBinary {
		return nil
	}
	return e.Binary.Get(x.Payload)
}

func (e *Exprs) AssignOf(x *Expr) *AssignExpr {
	if x == nil || x.Kind != EAssign {
		return nil
	}
	return e.Assign.Get(x.Payload)
}

func (e *Exprs) ConditionalOf(x *Expr) *ConditionalExpr {
	if x == nil || x.Kind != EConditional {
		return nil
	}
	return e.Conditional.Get(x.Payload)
}

func (e *Exprs) CallOf(x *Expr) *CallExpr {
	if x == nil || x.Kind != ECall {
		return nil
	}
	return e.Call.Get(x.Payload)
}

func (e *Exprs) CallOptionsOf(x *Expr) *CallOptionsExpr {
	if x == nil || x.Kind != ECallOptions {
		return nil
	}
	return e.CallOptions.Get(x.Payload)
}

func (e *Exprs) MemberOf(x *Expr) *MemberExpr {
	if x == nil || x.Kind != EMember {
		return nil
	}
	return e.Member.Get(x.Payload)
}

func (e *Exprs) IndexOf(x *Expr) *IndexExpr {
	if x == nil || x.Kind != EIndex {
		return nil
	}
	return e.Index.Get(x.Payload)
}

func (e *Exprs) IndexRangeOf(x *Expr) *IndexRangeExpr {
	if x == nil || x.Kind != EIndexRange {
		return nil
	}
	return e.IndexRange.Get(x.Payload)
}

func (e *Exprs) NewOf(x *Expr) *NewExpr {
	if x == nil || x.Kind != ENew {
		return nil
	}
	return e.New.Get(x.Payload)
}

func (e *Exprs) TupleOf(x *Expr) *TupleExpr {
	if x == nil || x.Kind != ETuple {
		return nil
	}
	return e.Tuple.Get(x.Payload)
}

func (e *Exprs) InlineArrayOf(x *Expr) *InlineArrayExpr {
	if x == nil || x.Kind != EInlineArray {
		return nil
	}
	return e.InlineArray.Get(x.Payload)
}

func (e *Exprs) ElementaryTypeOf(x *Expr) *ElementaryTypeExpr {
	if x == nil || x.Kind != EElementaryTypeExpr {
		return nil
	}
	return e.ElementaryType.Get(x.Payload)
}

func (e *Exprs) TypeExprOf(x *Expr) *TypeExpr {
	if x == nil || x.Kind != ETypeExpr {
		return nil
	}
	return e.TypeExprArena.Get(x.Payload)
}

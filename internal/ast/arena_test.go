package ast_test

import (
	"testing"

	"surge/internal/ast"
	"surge/internal/source"
)

func TestArenaAllocateAndGet(t *testing.T) {
	a := ast.NewArena[int](0)
	id1 := a.Allocate(10)
	id2 := a.Allocate(20)
	if id1 == id2 {
		t.Fatalf("expected distinct ids, got %d and %d", id1, id2)
	}
	if got := *a.Get(id1); got != 10 {
		t.Fatalf("Get(id1) = %d, want 10", got)
	}
	if got := *a.Get(id2); got != 20 {
		t.Fatalf("Get(id2) = %d, want 20", got)
	}
}

func TestArenaGetOutOfRangeReturnsNil(t *testing.T) {
	a := ast.NewArena[int](0)
	a.Allocate(1)
	if a.Get(0) != nil {
		t.Fatalf("Get(0) should be nil, it is the reserved sentinel")
	}
	if a.Get(99) != nil {
		t.Fatalf("Get(99) should be nil, out of range")
	}
}

func TestItemsContractRoundTrip(t *testing.T) {
	it := ast.NewItems(0)
	fooSym := source.Symbol(1)
	span := source.Span{}

	stateVarID := it.NewStateVar(ast.StateVarDecl{
		Name:       fooSym,
		Visibility: ast.VisPublic,
		Mutability: ast.MutNonpayable,
		Span:       span,
	})

	decl := ast.ContractDecl{
		Kind:  ast.ContractKindContract,
		Name:  fooSym,
		Items: []ast.ContractItemID{stateVarID},
		Span:  span,
	}
	itemID := it.NewContract(decl)

	item := it.Get(itemID)
	if item == nil || item.Kind != ast.ItemContract {
		t.Fatalf("expected ItemContract, got %+v", item)
	}

	got := it.Contract(itemID)
	if got == nil || got.Name != fooSym {
		t.Fatalf("Contract lookup mismatch: %+v", got)
	}
	if len(got.Items) != 1 || got.Items[0] != stateVarID {
		t.Fatalf("contract items mismatch: %+v", got.Items)
	}

	sv := it.StateVar(stateVarID)
	if sv == nil || sv.Name != fooSym {
		t.Fatalf("StateVar lookup mismatch: %+v", sv)
	}
}

func TestExprsBinaryRoundTrip(t *testing.T) {
	ex := ast.NewExprs(0)
	span := source.Span{}

	lhs := ex.NewIntLit("1", span)
	rhs := ex.NewIntLit("2", span)
	addID := ex.NewBinary(ast.BinaryExpr{Op: ast.BinAdd, Left: lhs, Right: rhs, Span: span})

	e := ex.Get(addID)
	if e == nil || e.Kind != ast.EBinary {
		t.Fatalf("expected EBinary, got %+v", e)
	}
	bin := ex.BinaryOf(e)
	if bin == nil || bin.Op != ast.BinAdd || bin.Left != lhs || bin.Right != rhs {
		t.Fatalf("binary payload mismatch: %+v", bin)
	}
}

func TestStmtsIfRoundTrip(t *testing.T) {
	ex := ast.NewExprs(0)
	st := ast.NewStmts(0)
	span := source.Span{}

	cond := ex.NewBoolLit(true, span)
	thenBlock := st.NewBlock(ast.BlockStmt{Span: span})
	ifID := st.NewIf(ast.IfStmt{Cond: cond, Then: thenBlock, Else: ast.NoStmtID, Span: span})

	s := st.Get(ifID)
	if s == nil || s.Kind != ast.SIf {
		t.Fatalf("expected SIf, got %+v", s)
	}
	ifStmt := st.IfOf(s)
	if ifStmt == nil || ifStmt.Cond != cond || ifStmt.Then != thenBlock {
		t.Fatalf("if payload mismatch: %+v", ifStmt)
	}
	if ifStmt.Else.IsValid() {
		t.Fatalf("expected no else branch")
	}
}

func TestYulAssemblyRoundTrip(t *testing.T) {
	y := ast.NewYul(0)
	span := source.Span{}

	lit := y.Exprs.NewLiteral("0x40", span)
	ident := y.Exprs.NewIdent(source.Symbol(2), span)
	call := y.Exprs.NewCall(ast.YulCall{Name: source.Symbol(3), Args: []ast.YulExprID{lit, ident}, Span: span})

	x := y.Exprs.Get(call)
	if x == nil || x.Kind != ast.YulECall {
		t.Fatalf("expected YulECall, got %+v", x)
	}
	c := y.Exprs.CallOf(x)
	if c == nil || len(c.Args) != 2 {
		t.Fatalf("call payload mismatch: %+v", c)
	}

	stmtID := y.NewExprStmt(ast.YulExprStmt{Expr: call, Span: span})
	s := y.Get(stmtID)
	if s == nil || s.Kind != ast.YulSExprStmt {
		t.Fatalf("expected YulSExprStmt, got %+v", s)
	}
}

package hir

import (
	"testing"

	"surge/internal/ast"
	"surge/internal/astvalidate"
	"surge/internal/diag"
	"surge/internal/lexer"
	"surge/internal/parser"
	"surge/internal/source"
)

func parseFile(t *testing.T, src string) (*ast.Builder, ast.FileID, source.FileID, *diag.Bag) {
	t.Helper()
	bag := diag.NewBag(64)
	rep := diag.BagReporter{Bag: bag}

	files := source.NewMap()
	fid := files.Add("Test.sol", []byte(src), 0)
	sf := files.Get(fid)

	syms := source.NewSymbolTable()
	ab := ast.NewBuilder(0)

	lx := lexer.New(sf, lexer.Options{Reporter: rep})
	fileAST := parser.ParseFile(lx, ab, syms, rep, fid)
	astvalidate.Validate(ab, fileAST, rep)
	return ab, fileAST, fid, bag
}

func TestLowerContractWithStateVarAndFunction(t *testing.T) {
	ab, fileAST, fid, bag := parseFile(t, `
contract Counter {
    uint256 public count;

    function increment() public {
        count = count + 1;
    }
}
`)
	if bag.HasErrors() {
		t.Fatalf("unexpected parse diagnostics: %v", bag.Items())
	}

	hb := NewBuilder(0)
	hf := Lower(hb, ab, fid, fileAST, nil)

	if len(hf.Items) != 1 {
		t.Fatalf("expected 1 top-level item, got %d", len(hf.Items))
	}
	item := hb.Item(hf.Items[0])
	if item.Kind != ItemKindContract {
		t.Fatalf("expected a contract item, got %v", item.Kind)
	}

	c := hb.Contract(item.ContractID())
	if len(c.Vars) != 1 {
		t.Fatalf("expected 1 state var, got %d", len(c.Vars))
	}
	if len(c.Functions) != 1 {
		t.Fatalf("expected 1 function, got %d", len(c.Functions))
	}
	fn := hb.FunctionOf(c.Functions[0])
	if fn.Kind != ast.FuncKindOrdinary {
		t.Fatalf("expected an ordinary function, got %v", fn.Kind)
	}
	if fn.Contract != item.ContractID() {
		t.Fatalf("function's Contract back-reference = %v, want %v", fn.Contract, item.ContractID())
	}
}

func TestLowerIsIdempotentPerSourceFile(t *testing.T) {
	ab, fileAST, fid, bag := parseFile(t, `contract C {}`)
	if bag.HasErrors() {
		t.Fatalf("unexpected parse diagnostics: %v", bag.Items())
	}

	hb := NewBuilder(0)
	first := Lower(hb, ab, fid, fileAST, nil)
	second := Lower(hb, ab, fid, fileAST, nil)

	if first != second {
		t.Fatal("lowering the same source file twice must return the cached File, not a fresh one")
	}
	if hb.Contracts.Len() != 1 {
		t.Fatalf("expected exactly 1 contract allocated, got %d", hb.Contracts.Len())
	}
}

func TestLowerContractBasesAreUnresolvedUntilNameResolution(t *testing.T) {
	ab, fileAST, fid, bag := parseFile(t, `
contract Base {}
contract Derived is Base {}
`)
	if bag.HasErrors() {
		t.Fatalf("unexpected parse diagnostics: %v", bag.Items())
	}

	hb := NewBuilder(0)
	hf := Lower(hb, ab, fid, fileAST, nil)
	if len(hf.Items) != 2 {
		t.Fatalf("expected 2 top-level items, got %d", len(hf.Items))
	}

	derivedItem := hb.Item(hf.Items[1])
	derived := hb.Contract(derivedItem.ContractID())
	if len(derived.Bases) != 1 {
		t.Fatalf("expected 1 base, got %d", len(derived.Bases))
	}
	if derived.Bases[0].Resolved != NoContractID {
		t.Fatalf("base should be unresolved until the name resolver runs, got %v", derived.Bases[0].Resolved)
	}
	if len(derived.Linearization) != 0 {
		t.Fatal("linearization must be empty until the name resolver computes it")
	}
}

func TestLowerImportFormsProduceViewAliases(t *testing.T) {
	ab, fileAST, fid, bag := parseFile(t, `
import "./A.sol";
import "./B.sol" as Bee;
import {Foo, Bar as Baz} from "./C.sol";
import * as Glob from "./D.sol";
`)
	if bag.HasErrors() {
		t.Fatalf("unexpected parse diagnostics: %v", bag.Items())
	}

	resolved := map[string]source.FileID{
		"./A.sol": 10, "./B.sol": 11, "./C.sol": 12, "./D.sol": 13,
	}
	hb := NewBuilder(0)
	hf := Lower(hb, ab, fid, fileAST, func(literal string) (source.FileID, bool) {
		id, ok := resolved[literal]
		return id, ok
	})

	if len(hf.Imports) != 4 {
		t.Fatalf("expected 4 import aliases, got %d", len(hf.Imports))
	}
	if hf.Imports[0].Kind != ast.ImportPlain || hf.Imports[0].Target != 10 {
		t.Fatalf("plain import = %+v", hf.Imports[0])
	}
	if hf.Imports[1].Kind != ast.ImportAliased || hf.Imports[1].Target != 11 {
		t.Fatalf("aliased import = %+v", hf.Imports[1])
	}
	if hf.Imports[2].Kind != ast.ImportNamed || len(hf.Imports[2].Members) != 2 {
		t.Fatalf("named import = %+v", hf.Imports[2])
	}
	if hf.Imports[3].Kind != ast.ImportGlob || hf.Imports[3].Target != 13 {
		t.Fatalf("glob import = %+v", hf.Imports[3])
	}
}

func TestLowerFreeDeclarationsHaveNoContract(t *testing.T) {
	ab, fileAST, fid, bag := parseFile(t, `
function helper() pure returns (uint256) {
    return 1;
}
struct Point { uint256 x; uint256 y; }
enum Color { Red, Green, Blue }
error NotFound();
uint256 constant MAX = 100;
`)
	if bag.HasErrors() {
		t.Fatalf("unexpected parse diagnostics: %v", bag.Items())
	}

	hb := NewBuilder(0)
	hf := Lower(hb, ab, fid, fileAST, nil)
	if len(hf.Items) != 5 {
		t.Fatalf("expected 5 top-level items, got %d", len(hf.Items))
	}

	fnItem := hb.Item(hf.Items[0])
	fn := hb.FunctionOf(fnItem.FunctionID())
	if fn.Contract != NoContractID {
		t.Fatalf("free function must have NoContractID, got %v", fn.Contract)
	}

	structItem := hb.Item(hf.Items[1])
	st := hb.StructOf(structItem.StructID())
	if len(st.Fields) != 2 {
		t.Fatalf("expected 2 struct fields, got %d", len(st.Fields))
	}

	enumItem := hb.Item(hf.Items[2])
	en := hb.EnumOf(enumItem.EnumID())
	if len(en.Variants) != 3 {
		t.Fatalf("expected 3 enum variants, got %d", len(en.Variants))
	}

	errItem := hb.Item(hf.Items[3])
	if errItem.Kind != ItemKindError {
		t.Fatalf("expected an error item, got %v", errItem.Kind)
	}

	constItem := hb.Item(hf.Items[4])
	v := hb.Var(constItem.VarID())
	if v.Mutability != ast.MutConstant {
		t.Fatalf("expected a constant var, got mutability %v", v.Mutability)
	}
}

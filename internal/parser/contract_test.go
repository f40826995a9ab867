package parser

import (
	"testing"

	"surge/internal/ast"
)

func contractItems(t *testing.T, p parsed) []ast.ContractItemID {
	t.Helper()
	f := p.b.Files.Get(p.file)
	if len(f.Items) != 1 {
		t.Fatalf("expected 1 top-level item, got %d", len(f.Items))
	}
	c := p.b.Items.Contract(f.Items[0])
	if c == nil {
		t.Fatal("expected a contract")
	}
	return c.Items
}

func TestParseStateVariables(t *testing.T) {
	src := `
contract C {
    uint256 public total;
    address private owner;
    uint256 constant RATE = 3;
    mapping(address => uint256) balances;
}
`
	p := parseSource(t, src)
	requireNoErrors(t, p)
	items := contractItems(t, p)
	if len(items) != 4 {
		t.Fatalf("expected 4 state variables, got %d", len(items))
	}
	for _, id := range items {
		it := p.b.Items.GetContractItem(id)
		if it.Kind != ast.CIStateVar {
			t.Fatalf("expected CIStateVar, got %v", it.Kind)
		}
	}
}

func TestParseEventsErrorsModifiers(t *testing.T) {
	src := `
contract C {
    event Transfer(address indexed from, address indexed to, uint256 value);
    error Unauthorized(address caller);
    modifier onlyOwner() {
        require(msg.sender == owner());
        _;
    }
}
`
	p := parseSource(t, src)
	requireNoErrors(t, p)
	items := contractItems(t, p)
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
}

func TestParseUsingForDirectives(t *testing.T) {
	src := `
contract C {
    using SafeMath for uint256;
    using {add, sub as -} for uint256 global;
}
`
	p := parseSource(t, src)
	requireNoErrors(t, p)
	items := contractItems(t, p)
	if len(items) != 2 {
		t.Fatalf("expected 2 using-for items, got %d", len(items))
	}
}

func TestParseEnumVariantCountEnforced(t *testing.T) {
	p := parseSource(t, "contract C { enum Empty {} }")
	if !p.bag.HasErrors() {
		t.Fatal("expected a diagnostic for an enum with no variants")
	}
}

func TestParseEmptyStructRejected(t *testing.T) {
	p := parseSource(t, "contract C { struct S {} }")
	if !p.bag.HasErrors() {
		t.Fatal("expected a diagnostic for a struct with no fields")
	}
}

func TestParseFunctionModifiersAnyOrder(t *testing.T) {
	// Solidity allows visibility/mutability/virtual/override/modifier
	// invocations in any order after the parameter list.
	src := `
contract C {
    function a() public virtual pure returns (uint256) {}
    function b() virtual public pure returns (uint256) {}
    function c() pure virtual public returns (uint256) {}
}
`
	p := parseSource(t, src)
	requireNoErrors(t, p)
	items := contractItems(t, p)
	if len(items) != 3 {
		t.Fatalf("expected 3 functions, got %d", len(items))
	}
}

package astvalidate

import (
	"testing"

	"surge/internal/ast"
	"surge/internal/diag"
	"surge/internal/lexer"
	"surge/internal/parser"
	"surge/internal/source"
)

func validateSource(t *testing.T, src string) *diag.Bag {
	t.Helper()
	fs := source.NewMap()
	fid := fs.AddVirtual("test.sol", []byte(src))
	sf := fs.Get(fid)

	bag := diag.NewBag(64)
	rep := diag.BagReporter{Bag: bag}
	lx := lexer.New(sf, lexer.Options{Reporter: rep})
	b := ast.NewBuilder(0)
	syms := source.NewSymbolTable()

	f := parser.ParseFile(lx, b, syms, rep, fid)
	if bag.HasErrors() {
		t.Fatalf("source failed to parse cleanly: %v", bag.Items())
	}
	Validate(b, f, rep)
	return bag
}

func hasCode(bag *diag.Bag, code diag.Code) bool {
	for _, d := range bag.Items() {
		if d.Code == code {
			return true
		}
	}
	return false
}

func TestVarDeclSoleLoopBodyRejected(t *testing.T) {
	bag := validateSource(t, `
function f() public {
    while (true) uint256 x = 1;
}
`)
	if !hasCode(bag, diag.SynVarDeclSoleLoopBody) {
		t.Fatal("expected SynVarDeclSoleLoopBody")
	}
}

func TestNestedUncheckedRejected(t *testing.T) {
	bag := validateSource(t, `
function f() public {
    unchecked {
        unchecked { }
    }
}
`)
	if !hasCode(bag, diag.SynNestedUnchecked) {
		t.Fatal("expected SynNestedUnchecked")
	}
}

func TestTransitivelyNestedUncheckedRejected(t *testing.T) {
	// A block/if in between still counts as nesting; the parser's old
	// direct-child-only check would have missed this.
	bag := validateSource(t, `
function f() public {
    unchecked {
        if (true) {
            unchecked { }
        }
    }
}
`)
	if !hasCode(bag, diag.SynNestedUnchecked) {
		t.Fatal("expected SynNestedUnchecked through an intervening if-block")
	}
}

func TestBreakContinueOutsideLoopRejected(t *testing.T) {
	bag := validateSource(t, `
function f() public {
    break;
}
`)
	if !hasCode(bag, diag.SynLoopControlOutsideLoop) {
		t.Fatal("expected SynLoopControlOutsideLoop")
	}
}

func TestBreakInsideLoopAccepted(t *testing.T) {
	bag := validateSource(t, `
function f() public {
    for (uint256 i = 0; i < 10; i = i + 1) {
        if (i == 5) break;
    }
}
`)
	if hasCode(bag, diag.SynLoopControlOutsideLoop) {
		t.Fatal("did not expect SynLoopControlOutsideLoop")
	}
}

func TestPlaceholderOutsideModifierRejected(t *testing.T) {
	bag := validateSource(t, `
function f() public {
    _;
}
`)
	if !hasCode(bag, diag.SynPlaceholderOutsideModifier) {
		t.Fatal("expected SynPlaceholderOutsideModifier")
	}
}

func TestModifierWithoutPlaceholderRejected(t *testing.T) {
	bag := validateSource(t, `
contract C {
    modifier onlyOwner() {
        require(true);
    }
}
`)
	if !hasCode(bag, diag.SynModifierWithoutPlaceholder) {
		t.Fatal("expected SynModifierWithoutPlaceholder")
	}
}

func TestModifierWithPlaceholderAccepted(t *testing.T) {
	bag := validateSource(t, `
contract C {
    modifier onlyOwner() {
        require(true);
        _;
    }
}
`)
	if hasCode(bag, diag.SynModifierWithoutPlaceholder) {
		t.Fatal("did not expect SynModifierWithoutPlaceholder")
	}
}

func TestFunctionNameShadowsContractRejected(t *testing.T) {
	bag := validateSource(t, `
contract Token {
    function Token() public {}
}
`)
	if !hasCode(bag, diag.SynFnNameShadowsContract) {
		t.Fatal("expected SynFnNameShadowsContract")
	}
}

func TestReceiveShapeRejected(t *testing.T) {
	bag := validateSource(t, `
contract C {
    receive() external returns (uint256) {}
}
`)
	if !hasCode(bag, diag.SynBadReceiveFallbackShape) {
		t.Fatal("expected SynBadReceiveFallbackShape for a receive() with a return value")
	}
}

func TestReceiveShapeAccepted(t *testing.T) {
	bag := validateSource(t, `
contract C {
    receive() external payable {}
}
`)
	if hasCode(bag, diag.SynBadReceiveFallbackShape) {
		t.Fatal("did not expect SynBadReceiveFallbackShape")
	}
}

func TestFallbackShapeAccepted(t *testing.T) {
	bag := validateSource(t, `
contract C {
    fallback(bytes calldata input) external returns (bytes memory) {}
}
`)
	if hasCode(bag, diag.SynBadReceiveFallbackShape) {
		t.Fatal("did not expect SynBadReceiveFallbackShape")
	}
}

func TestPragmaVersionShape(t *testing.T) {
	bag := validateSource(t, "pragma solidity ^0.8.0;\n")
	if hasCode(bag, diag.SynBadPragmaVersion) {
		t.Fatal("did not expect SynBadPragmaVersion for '^0.8.0'")
	}

	bag = validateSource(t, "pragma solidity >=0.7.0 <0.9.0;\n")
	if hasCode(bag, diag.SynBadPragmaVersion) {
		t.Fatal("did not expect SynBadPragmaVersion for a two-term range")
	}
}

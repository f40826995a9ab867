package parser

import (
	"testing"
)

func TestParseYulLetAndAssign(t *testing.T) {
	p := parseSource(t, `
function f() public {
    assembly {
        let x := 1
        let y, z := f(x)
        x := add(x, y)
    }
}
`)
	requireNoErrors(t, p)
}

func TestParseYulMultiAssignVsCallStmt(t *testing.T) {
	p := parseSource(t, `
function f() public {
    assembly {
        a, b := f()
        g()
    }
}
`)
	requireNoErrors(t, p)
}

func TestParseYulDottedPathNotMultiAssignTarget(t *testing.T) {
	p := parseSource(t, `
function f() public {
    assembly {
        mstore(a.slot, 1)
    }
}
`)
	requireNoErrors(t, p)
}

func TestParseYulIfForSwitch(t *testing.T) {
	p := parseSource(t, `
function f() public {
    assembly {
        if lt(x, 10) { x := add(x, 1) }
        for { let i := 0 } lt(i, 10) { i := add(i, 1) } { }
        switch x
        case 0 { }
        default { }
    }
}
`)
	requireNoErrors(t, p)
}

func TestParseYulFunctionDefAndLeave(t *testing.T) {
	p := parseSource(t, `
function f() public {
    assembly {
        function power(base, exponent) -> result {
            result := 1
            leave
        }
    }
}
`)
	requireNoErrors(t, p)
}

func TestParseYulNestedBlock(t *testing.T) {
	p := parseSource(t, `
function f() public {
    assembly {
        {
            let x := 1
        }
    }
}
`)
	requireNoErrors(t, p)
}

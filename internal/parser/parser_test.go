package parser

import (
	"testing"

	"surge/internal/ast"
	"surge/internal/diag"
	"surge/internal/lexer"
	"surge/internal/source"
)

// parsed bundles the outputs of parsing one virtual source file, so test
// bodies can inspect both the resulting tree and whatever diagnostics fired.
type parsed struct {
	b    *ast.Builder
	file ast.FileID
	bag  *diag.Bag
}

func parseSource(t *testing.T, src string) parsed {
	t.Helper()
	fs := source.NewMap()
	fid := fs.AddVirtual("test.sol", []byte(src))
	sf := fs.Get(fid)

	bag := diag.NewBag(64)
	rep := diag.BagReporter{Bag: bag}
	lx := lexer.New(sf, lexer.Options{Reporter: rep})
	b := ast.NewBuilder(0)
	syms := source.NewSymbolTable()

	f := ParseFile(lx, b, syms, rep, fid)
	return parsed{b: b, file: f, bag: bag}
}

func (p parsed) errorMessages(t *testing.T) []string {
	t.Helper()
	var msgs []string
	for _, d := range p.bag.Items() {
		if d.Severity >= diag.SevError {
			msgs = append(msgs, d.Message)
		}
	}
	return msgs
}

func requireNoErrors(t *testing.T, p parsed) {
	t.Helper()
	if p.bag.HasErrors() {
		t.Fatalf("unexpected parse errors: %v", p.errorMessages(t))
	}
}

func TestParseFileEmpty(t *testing.T) {
	p := parseSource(t, "")
	requireNoErrors(t, p)
	f := p.b.Files.Get(p.file)
	if f == nil {
		t.Fatal("expected a File node even for empty input")
	}
	if len(f.Items) != 0 {
		t.Fatalf("expected no items, got %d", len(f.Items))
	}
}

func TestParseFileRecoversFromGarbageTopLevelItem(t *testing.T) {
	// A stray ')' can't start any top-level item; the parser must report it
	// and keep going rather than stopping at the first declaration.
	p := parseSource(t, ")\ncontract C {}\n")
	if !p.bag.HasErrors() {
		t.Fatal("expected a diagnostic for the stray ')'")
	}
	f := p.b.Files.Get(p.file)
	if len(f.Items) != 1 {
		t.Fatalf("expected the contract to still be parsed, got %d items", len(f.Items))
	}
	it := p.b.Items.Get(f.Items[0])
	if it.Kind != ast.ItemContract {
		t.Fatalf("expected the surviving item to be a contract, got %v", it.Kind)
	}
}

package project

import (
	"path/filepath"
	"testing"

	"surge/internal/ast"
	"surge/internal/diag"
	"surge/internal/source"
)

func newResolver(t *testing.T, loader source.FileLoader) (*Resolver, *diag.Bag) {
	t.Helper()
	bag := diag.NewBag(64)
	rep := diag.BagReporter{Bag: bag}
	r := NewResolver(source.NewMap(), ast.NewBuilder(0), source.NewSymbolTable(), loader, rep)
	return r, bag
}

func TestResolverDedupsDiamondImport(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "App.sol"), `
import "./A.sol";
import "./B.sol";
contract App {}
`)
	writeFile(t, filepath.Join(dir, "A.sol"), `import "./Common.sol";`)
	writeFile(t, filepath.Join(dir, "B.sol"), `import "./Common.sol";`)
	writeFile(t, filepath.Join(dir, "Common.sol"), `library Common {}`)

	r, bag := newResolver(t, &RemapLoader{})
	metas, units, err := r.Build([]string{filepath.Join(dir, "App.sol")})
	if err != nil {
		t.Fatal(err)
	}
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	if len(metas) != 4 {
		t.Fatalf("expected 4 units (App, A, B, Common), got %d: %+v", len(metas), metas)
	}
	if len(units) != 4 {
		t.Fatalf("expected 4 distinct units, got %d", len(units))
	}
	common, ok := units[filepath.Join(dir, "Common.sol")]
	if !ok {
		t.Fatal("expected Common.sol to be a unit")
	}
	if !common.AST.IsValid() {
		t.Fatal("expected a valid AST id for Common.sol")
	}
}

func TestResolverToleratesImportCycle(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "A.sol"), `import "./B.sol";`)
	writeFile(t, filepath.Join(dir, "B.sol"), `import "./A.sol";`)

	r, bag := newResolver(t, &RemapLoader{})
	metas, _, err := r.Build([]string{filepath.Join(dir, "A.sol")})
	if err != nil {
		t.Fatal(err)
	}
	if bag.HasErrors() {
		t.Fatalf("a file import cycle must not be an error: %v", bag.Items())
	}
	if len(metas) != 2 {
		t.Fatalf("expected 2 units, got %d", len(metas))
	}
}

func TestResolverReportsUnresolvedImport(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "App.sol"), `import "./Missing.sol";`)

	r, bag := newResolver(t, &RemapLoader{})
	_, _, err := r.Build([]string{filepath.Join(dir, "App.sol")})
	if err != nil {
		t.Fatal(err)
	}
	if !bag.HasErrors() {
		t.Fatal("expected an unresolved-import diagnostic")
	}
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.SynImportFileNotFound {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected SynImportFileNotFound, got %v", bag.Items())
	}
}

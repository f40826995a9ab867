package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMapAddAndGet(t *testing.T) {
	m := NewMap()
	id := m.Add("a.sol", []byte("contract C {}"), 0)
	f := m.Get(id)
	if f.Path != "a.sol" {
		t.Fatalf("Path = %q, want a.sol", f.Path)
	}
	if string(f.Content) != "contract C {}" {
		t.Fatalf("Content mismatch")
	}
}

func TestMapAddAllocatesFreshIDs(t *testing.T) {
	m := NewMap()
	id1 := m.Add("a.sol", []byte("x"), 0)
	id2 := m.Add("a.sol", []byte("y"), 0)
	if id1 == id2 {
		t.Fatalf("re-adding the same path must allocate a new FileID")
	}
	latest, ok := m.GetByPath("a.sol")
	if !ok || latest.ID != id2 {
		t.Fatalf("GetByPath must return the most recently added file")
	}
}

func TestMapLoadNormalizesBOMAndCRLF(t *testing.T) {
	m := NewMap()
	dir := t.TempDir()
	path := filepath.Join(dir, "c.sol")
	content := append([]byte{0xEF, 0xBB, 0xBF}, []byte("contract C {}\r\nfunction f() {}\r\n")...)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	id, err := m.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := m.Get(id)
	if f.Flags&FileHadBOM == 0 {
		t.Fatalf("expected FileHadBOM")
	}
	if f.Flags&FileNormalizedCRLF == 0 {
		t.Fatalf("expected FileNormalizedCRLF")
	}
	if len(f.Content) >= 3 && f.Content[0] == 0xEF && f.Content[1] == 0xBB && f.Content[2] == 0xBF {
		t.Fatalf("BOM should have been stripped")
	}
}

func TestMapResolveLineCol(t *testing.T) {
	m := NewMap()
	id := m.Add("x.sol", []byte("line1\nline2\nline3"), 0)
	start, end := m.Resolve(Span{File: id, Start: 6, End: 11})
	if start != (LineCol{Line: 2, Col: 1}) {
		t.Fatalf("start = %+v, want line 2 col 1", start)
	}
	if end != (LineCol{Line: 2, Col: 6}) {
		t.Fatalf("end = %+v, want line 2 col 6", end)
	}
}

func TestFileGetLine(t *testing.T) {
	m := NewMap()
	id := m.Add("x.sol", []byte("one\ntwo\nthree"), 0)
	f := m.Get(id)
	if f.GetLine(1) != "one" {
		t.Fatalf("line 1 = %q", f.GetLine(1))
	}
	if f.GetLine(2) != "two" {
		t.Fatalf("line 2 = %q", f.GetLine(2))
	}
	if f.GetLine(3) != "three" {
		t.Fatalf("line 3 = %q", f.GetLine(3))
	}
	if f.GetLine(4) != "" {
		t.Fatalf("line 4 should be empty, got %q", f.GetLine(4))
	}
}

func TestMapSnippet(t *testing.T) {
	m := NewMap()
	id := m.Add("x.sol", []byte("uint256 public n;"), 0)
	got := m.Snippet(Span{File: id, Start: 0, End: 7})
	if got != "uint256" {
		t.Fatalf("Snippet = %q, want uint256", got)
	}
}

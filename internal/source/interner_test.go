package source

import (
	"sync"
	"testing"
)

func TestSymbolTableInternDedups(t *testing.T) {
	tab := NewSymbolTable()
	a := tab.Intern("transfer")
	b := tab.Intern("transfer")
	c := tab.Intern("approve")
	if a != b {
		t.Fatalf("interning the same string twice must return the same Symbol")
	}
	if a == c {
		t.Fatalf("interning distinct strings must return distinct Symbols")
	}
	if a == NoSymbol {
		t.Fatalf("a real string must not intern to NoSymbol")
	}
}

func TestSymbolTableLookupRoundTrip(t *testing.T) {
	tab := NewSymbolTable()
	id := tab.Intern("Counter")
	s, ok := tab.Lookup(id)
	if !ok || s != "Counter" {
		t.Fatalf("Lookup(%d) = (%q, %v), want (\"Counter\", true)", id, s, ok)
	}
	if tab.MustLookup(id) != "Counter" {
		t.Fatalf("MustLookup must agree with Lookup")
	}
}

func TestSymbolTableUnknownID(t *testing.T) {
	tab := NewSymbolTable()
	if _, ok := tab.Lookup(Symbol(999)); ok {
		t.Fatalf("expected Lookup to fail for an unallocated Symbol")
	}
}

func TestSymbolTableNoSymbolIsEmptyString(t *testing.T) {
	tab := NewSymbolTable()
	s, ok := tab.Lookup(NoSymbol)
	if !ok || s != "" {
		t.Fatalf("NoSymbol must map to the empty string, got (%q, %v)", s, ok)
	}
}

func TestSymbolTableConcurrentInternIsLinearizable(t *testing.T) {
	tab := NewSymbolTable()
	const workers = 16
	results := make([][]Symbol, workers)
	var wg sync.WaitGroup
	names := []string{"a", "b", "c", "d", "e"}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			out := make([]Symbol, len(names))
			for i, n := range names {
				out[i] = tab.Intern(n)
			}
			results[idx] = out
		}(w)
	}
	wg.Wait()
	for i := range names {
		for w := 1; w < workers; w++ {
			if results[w][i] != results[0][i] {
				t.Fatalf("two workers interning %q received different Symbols", names[i])
			}
		}
	}
}

func TestSymbolTableSnapshotIsDefensiveCopy(t *testing.T) {
	tab := NewSymbolTable()
	tab.Intern("x")
	snap := tab.Snapshot()
	snap[0] = "corrupted"
	s, _ := tab.Lookup(NoSymbol)
	if s != "" {
		t.Fatalf("mutating a snapshot must not affect the table")
	}
}

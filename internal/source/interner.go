package source

import (
	"slices"
	"sync"
)

// Symbol is a process-wide interned string identity (spec: "Symbol").
// Symbols are created on first use and never freed within a session;
// comparison is by identity, not by content.
type Symbol uint32

// NoSymbol is the sentinel for "no symbol" (maps to the empty string).
const NoSymbol Symbol = 0

// SymbolTable is the single source of truth for symbol identity: an
// append-only, concurrent-safe table from string content to Symbol and back.
type SymbolTable struct {
	mu    sync.RWMutex
	byID  []string
	index map[string]Symbol
}

// NewSymbolTable returns a table pre-seeded with NoSymbol -> "".
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		byID:  []string{""},
		index: map[string]Symbol{"": NoSymbol},
	}
}

// Intern returns the Symbol for s, allocating one on first use. Safe for
// concurrent use by multiple session workers (§5: "readers never block" on
// the fast path; writers take a brief exclusive lock only to grow the table).
func (t *SymbolTable) Intern(s string) Symbol {
	t.mu.RLock()
	if id, ok := t.index[s]; ok {
		t.mu.RUnlock()
		return id
	}
	t.mu.RUnlock()

	// Copy so the interned string does not alias caller-owned memory.
	owned := string([]byte(s))

	t.mu.Lock()
	defer t.mu.Unlock()
	if id, ok := t.index[owned]; ok {
		return id
	}
	id := Symbol(len(t.byID))
	t.byID = append(t.byID, owned)
	t.index[owned] = id
	return id
}

// InternBytes interns the string content of b without requiring the caller
// to allocate a string first.
func (t *SymbolTable) InternBytes(b []byte) Symbol {
	return t.Intern(string(b))
}

// Lookup returns the string content of id, or ("", false) if id was never
// allocated by this table.
func (t *SymbolTable) Lookup(id Symbol) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if int(id) < 0 || int(id) >= len(t.byID) {
		return "", false
	}
	return t.byID[id], true
}

// MustLookup is Lookup but panics on an unknown Symbol; callers that hold
// only Symbols minted by this table should never hit the panic path.
func (t *SymbolTable) MustLookup(id Symbol) string {
	s, ok := t.Lookup(id)
	if !ok {
		panic("source: symbol not present in this table")
	}
	return s
}

// Len returns the number of distinct symbols, including NoSymbol.
func (t *SymbolTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.byID)
}

// Snapshot returns a defensive copy of every interned string, indexed by Symbol.
func (t *SymbolTable) Snapshot() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.byID)
}

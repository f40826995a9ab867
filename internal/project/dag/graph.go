// Package dag turns the flat set of resolved compilation units produced by
// project.Resolver into an import graph and a topological batch order for
// scheduling concurrent lowering/name-resolution passes.
// Import cycles are legal (spec's type checker only rejects type-level
// recursion, not file-level cycles), so this package never treats one as
// an error: Topo.Cyclic/Cycles is informational only.
package dag

import (
	"slices"

	"surge/internal/project"
)

// Graph is the adjacency-list import graph over a ModuleIndex's node ids.
type Graph struct {
	Edges   [][]ModuleID // Edges[from] = []to, sorted and de-duplicated
	Indeg   []int        // in-degree counting only edges between present nodes
	Present []bool       // whether a node actually has a loaded unit backing it
}

// ModuleSlot holds the resolved metadata for one node in the graph.
type ModuleSlot struct {
	Meta    project.ModuleMeta
	Present bool
}

// BuildGraph builds the import graph from a set of already-resolved module
// metas (see project.Resolver.Build). Duplicate paths cannot occur here:
// the resolver dedups by resolved path before a meta is ever produced, so
// the first (only) entry for each id simply wins.
func BuildGraph(idx ModuleIndex, metas []project.ModuleMeta) (Graph, []ModuleSlot) {
	nodeCount := len(idx.IDToName)
	g := Graph{
		Edges:   make([][]ModuleID, nodeCount),
		Indeg:   make([]int, nodeCount),
		Present: make([]bool, nodeCount),
	}
	slots := make([]ModuleSlot, nodeCount)
	for i, name := range idx.IDToName {
		slots[i].Meta.Path = name
	}

	for _, meta := range metas {
		if meta.Path == "" {
			continue
		}
		id, ok := idx.NameToID[meta.Path]
		if !ok || slots[int(id)].Present {
			continue
		}
		slots[int(id)].Meta = meta
		slots[int(id)].Present = true
		g.Present[int(id)] = true
	}

	for from := range slots {
		slot := &slots[from]
		if !slot.Present || len(slot.Meta.Imports) == 0 {
			continue
		}
		seen := make(map[ModuleID]struct{}, len(slot.Meta.Imports))
		for _, dep := range slot.Meta.Imports {
			if dep.Path == "" {
				continue
			}
			toID, ok := idx.NameToID[dep.Path]
			if !ok || ModuleID(from) == toID || !g.Present[int(toID)] {
				continue // unresolved or self-import: resolver already handled/reported it
			}
			if _, dup := seen[toID]; dup {
				continue
			}
			seen[toID] = struct{}{}
			g.Edges[from] = append(g.Edges[from], toID)
			if g.Present[int(toID)] {
				g.Indeg[int(toID)]++
			}
		}
		if len(g.Edges[from]) > 1 {
			slices.Sort(g.Edges[from])
		}
	}

	return g, slots
}

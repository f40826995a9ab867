package project

import "surge/internal/source"

// ImportMeta is one resolved import edge: the canonical path it resolved to
// and the span of the import-literal string that produced it (diagnostics
// about a broken import point here, never at the importer as a whole).
type ImportMeta struct {
	Path string
	Span source.Span
}

// ModuleMeta describes one parsed compilation unit for the purposes of
// graph-building and incremental hashing. Path is the canonical resolved
// filesystem path used as the dedup key: two import literals that resolve
// to the same Path are the same unit (see dag.BuildIndex).
type ModuleMeta struct {
	Path        string
	Span        source.Span
	Imports     []ImportMeta
	ContentHash Digest // hash of this file's own bytes
	ModuleHash  Digest // H(ContentHash, dep1.ModuleHash, dep2.ModuleHash, ...)
}

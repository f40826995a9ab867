package project

import (
	"errors"
	"fmt"
	"path/filepath"

	"surge/internal/ast"
	"surge/internal/astvalidate"
	"surge/internal/diag"
	"surge/internal/lexer"
	"surge/internal/parser"
	"surge/internal/source"
)

// Unit is one compilation unit discovered by Resolver.Build: a resolved
// path paired with both of its IDs (the source map's, for span decoding,
// and the AST builder's, for everything downstream).
type Unit struct {
	Path   string
	Source source.FileID
	AST    ast.FileID
}

// Resolver drives the source-graph build: starting from a set of entry
// paths, it loads, lexes, parses, and runs the AST validator over every
// file reachable by import, following spec 4.2/4.6's policy (remap, then
// include-path search; dedup identical resolved paths to one unit; cycles
// are legal and left for the caller to schedule around).
type Resolver struct {
	Files    *source.Map
	Builder  *ast.Builder
	Symbols  *source.SymbolTable
	Loader   source.FileLoader
	Reporter diag.Reporter
}

// NewResolver constructs a Resolver sharing the given session state.
func NewResolver(files *source.Map, b *ast.Builder, syms *source.SymbolTable, loader source.FileLoader, rep diag.Reporter) *Resolver {
	return &Resolver{Files: files, Builder: b, Symbols: syms, Loader: loader, Reporter: rep}
}

// Build loads entryPaths and everything they transitively import. It
// returns one ModuleMeta per discovered unit (in discovery order, suitable
// for dag.BuildIndex/BuildGraph) and a path -> Unit index for looking up
// the parsed AST of any file in the set.
func (r *Resolver) Build(entryPaths []string) ([]ModuleMeta, map[string]Unit, error) {
	units := make(map[string]Unit, len(entryPaths))
	metas := make([]ModuleMeta, 0, len(entryPaths))
	queue := make([]string, 0, len(entryPaths))
	for _, p := range entryPaths {
		queue = append(queue, filepath.Clean(p))
	}

	for len(queue) > 0 {
		path := queue[0]
		queue = queue[1:]
		if _, ok := units[path]; ok {
			continue
		}
		meta, unit, deps, err := r.load(path)
		if err != nil {
			return nil, nil, err
		}
		units[path] = unit
		metas = append(metas, meta)
		queue = append(queue, deps...)
	}
	return metas, units, nil
}

func (r *Resolver) load(path string) (ModuleMeta, Unit, []string, error) {
	content, err := r.Loader.Read(path)
	if err != nil {
		r.Reporter.Report(diag.SynImportReadError, diag.SevError, source.Span{}, fmt.Sprintf("%s: %v", path, err), nil, nil)
		return ModuleMeta{}, Unit{}, nil, err
	}

	fid := r.Files.Add(path, content, 0)
	sf := r.Files.Get(fid)

	lx := lexer.New(sf, lexer.Options{Reporter: r.Reporter})
	fileAST := parser.ParseFile(lx, r.Builder, r.Symbols, r.Reporter, fid)
	astvalidate.Validate(r.Builder, fileAST, r.Reporter)

	f := r.Builder.Files.Get(fileAST)
	meta := ModuleMeta{Path: path, Span: f.Span, ContentHash: Digest(sf.Hash)}

	var deps []string
	for _, itemID := range f.Items {
		item := r.Builder.Items.Get(itemID)
		if item == nil || item.Kind != ast.ItemImport {
			continue
		}
		imp := r.Builder.Items.Import(itemID)
		if imp == nil {
			continue
		}
		resolved, err := r.Loader.Resolve(path, imp.Path)
		if err != nil {
			r.reportResolveError(imp.PathSpan, imp.Path, err)
			continue
		}
		meta.Imports = append(meta.Imports, ImportMeta{Path: resolved, Span: imp.PathSpan})
		deps = append(deps, resolved)
	}
	return meta, Unit{Path: path, Source: fid, AST: fileAST}, deps, nil
}

func (r *Resolver) reportResolveError(span source.Span, literal string, err error) {
	code := diag.SynImportFileNotFound
	switch {
	case errors.Is(err, ErrAmbiguousRemap):
		code = diag.SynImportAmbiguousRemap
	case errors.Is(err, ErrPathNotAllowed):
		code = diag.SynImportPathNotAllowed
	case errors.Is(err, ErrFileNotFound):
		code = diag.SynImportFileNotFound
	}
	r.Reporter.Report(code, diag.SevError, span, fmt.Sprintf("cannot resolve import %q: %v", literal, err), nil, nil)
}

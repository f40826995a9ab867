package source

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"fortio.org/safecast"
)

// Map is the source map: a write-only-grow table of ingested files that
// supports byte-offset -> (file, line, column) resolution. Safe for
// concurrent Add/Load from session worker goroutines: writers take a
// short exclusive lock only to append; Get/Resolve take a read lock.
type Map struct {
	mu      sync.RWMutex
	files   []File
	index   map[string]FileID // normalized path -> latest FileID
	baseDir string
}

// NewMap returns an empty source map.
func NewMap() *Map {
	return &Map{
		index: make(map[string]FileID),
	}
}

// NewMapWithBase returns an empty source map rooted at baseDir, used to
// resolve relative import paths and to render "relative" diagnostic paths.
func NewMapWithBase(baseDir string) *Map {
	m := NewMap()
	m.baseDir = baseDir
	return m
}

// SetBaseDir sets the base directory used for relative path resolution.
func (m *Map) SetBaseDir(dir string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.baseDir = dir
}

// BaseDir returns the configured base directory, defaulting to the process
// working directory if none was set.
func (m *Map) BaseDir() string {
	m.mu.RLock()
	dir := m.baseDir
	m.mu.RUnlock()
	if dir == "" {
		if wd, err := os.Getwd(); err == nil {
			return wd
		}
	}
	return dir
}

// Add stores content under path, computing its line index and content hash,
// and returns a fresh FileID. Re-adding the same path allocates a new ID
// (import resolution dedup happens earlier, in the project layer, by
// resolved path).
func (m *Map) Add(path string, content []byte, flags FileFlags) FileID {
	hash := sha256.Sum256(content)
	lineIdx := buildLineIndex(content)
	normalizedPath := normalizePath(path)

	m.mu.Lock()
	defer m.mu.Unlock()
	n, err := safecast.Conv[uint32](len(m.files))
	if err != nil {
		panic(fmt.Errorf("source: file count overflow: %w", err))
	}
	id := FileID(n)
	m.files = append(m.files, File{
		ID:      id,
		Path:    normalizedPath,
		Content: content,
		LineIdx: lineIdx,
		Hash:    hash,
		Flags:   flags,
	})
	m.index[normalizedPath] = id
	return id
}

// Load reads path from disk, normalizes its BOM/CRLF, and adds it.
func (m *Map) Load(path string) (FileID, error) {
	// #nosec G304 -- path comes from the resolved import graph, not raw user input
	content, err := os.ReadFile(path)
	if err != nil {
		return NoFileID, err
	}
	content, hadBOM := removeBOM(content)
	content, hadCRLF := normalizeCRLF(content)
	var flags FileFlags
	if hadBOM {
		flags |= FileHadBOM
	}
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}
	return m.Add(path, content, flags), nil
}

// AddVirtual adds an in-memory file (stdin, a test fixture, generated code).
func (m *Map) AddVirtual(name string, content []byte) FileID {
	return m.Add(name, content, FileVirtual)
}

// Get returns the file record for id. The returned pointer is stable: the
// backing slice is never reallocated out from under a live *File because
// Map only appends.
func (m *Map) Get(id FileID) *File {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return &m.files[id]
}

// GetByPath returns the most recently added file at path, if any.
func (m *Map) GetByPath(path string) (*File, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if id, ok := m.index[normalizePath(path)]; ok {
		return &m.files[id], true
	}
	return nil, false
}

// Resolve decodes a span's start and end offsets into line/column positions.
func (m *Map) Resolve(span Span) (start, end LineCol) {
	f := m.Get(span.File)
	return toLineCol(f.LineIdx, span.Start), toLineCol(f.LineIdx, span.End)
}

// Snippet returns the raw source text covered by span.
func (m *Map) Snippet(span Span) string {
	f := m.Get(span.File)
	if int(span.Start) > len(f.Content) || int(span.End) > len(f.Content) || span.Start > span.End {
		return ""
	}
	return string(f.Content[span.Start:span.End])
}

// GetLine returns the 1-based line lineNum of f, or "" if it does not exist.
func (f *File) GetLine(lineNum uint32) string {
	if lineNum == 0 {
		return ""
	}
	lenLineIdx, err := safecast.Conv[uint32](len(f.LineIdx))
	if err != nil {
		panic(fmt.Errorf("source: line index length overflow: %w", err))
	}
	lenContent, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("source: content length overflow: %w", err))
	}

	var start, end uint32
	switch {
	case lineNum == 1:
		start = 0
	case (lineNum - 2) < lenLineIdx:
		start = f.LineIdx[lineNum-2] + 1
	default:
		return ""
	}
	if (lineNum - 1) < lenLineIdx {
		end = f.LineIdx[lineNum-1]
	} else {
		end = lenContent
	}
	if start >= lenContent {
		return ""
	}
	if end > lenContent {
		end = lenContent
	}
	return string(f.Content[start:end])
}

// FormatPath renders f.Path per mode: "absolute", "relative" (to baseDir),
// "basename", or "auto" (relative unless the path is long, then basename).
func (f *File) FormatPath(mode, baseDir string) string {
	switch mode {
	case "absolute":
		if abs, err := AbsolutePath(f.Path); err == nil {
			return abs
		}
		return f.Path
	case "relative":
		if baseDir == "" {
			if wd, err := os.Getwd(); err == nil {
				baseDir = wd
			}
		}
		if rel, err := RelativePath(f.Path, baseDir); err == nil {
			return rel
		}
		return f.Path
	case "basename":
		return BaseName(f.Path)
	case "auto":
		if len(f.Path) < 40 || !filepath.IsAbs(f.Path) {
			return f.Path
		}
		return BaseName(f.Path)
	default:
		return f.Path
	}
}

package source

import (
	"path/filepath"
	"sort"
	"strings"
)

// normalizeCRLF rewrites every "\r\n" to "\n", leaving lone "\r" alone (the
// line index counts only "\n", so a lone "\r" is not a line break). Reports
// whether anything changed so the caller can set FileNormalizedCRLF.
func normalizeCRLF(content []byte) ([]byte, bool) {
	if !strings.ContainsRune(string(content), '\r') {
		return content, false
	}
	out := make([]byte, 0, len(content))
	changed := false
	for i := 0; i < len(content); i++ {
		if content[i] == '\r' && i+1 < len(content) && content[i+1] == '\n' {
			out = append(out, '\n')
			i++
			changed = true
			continue
		}
		out = append(out, content[i])
	}
	return out, changed
}

func removeBOM(content []byte) ([]byte, bool) {
	if len(content) >= 3 && content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		return content[3:], true
	}
	return content, false
}

// buildLineIndex records the byte offset of every '\n' in content, 0-based.
// Line 1 always starts at offset 0; line k>1 starts at LineIdx[k-2]+1.
func buildLineIndex(content []byte) []uint32 {
	out := make([]uint32, 0, 64)
	for i, b := range content {
		if b == '\n' {
			out = append(out, uint32(i))
		}
	}
	return out
}

// toLineCol decodes a byte offset into a 1-based line/column pair using a
// prebuilt line index, via binary search over the '\n' offsets.
func toLineCol(lineIdx []uint32, off uint32) LineCol {
	if len(lineIdx) == 0 {
		return LineCol{Line: 1, Col: off + 1}
	}
	i := sort.Search(len(lineIdx), func(k int) bool { return lineIdx[k] > off })
	if i == 0 {
		return LineCol{Line: 1, Col: off + 1}
	}
	last := lineIdx[i-1]
	if off == last {
		var start uint32
		if i-1 == 0 {
			start = 0
		} else {
			start = lineIdx[i-2] + 1
		}
		return LineCol{Line: uint32(i), Col: last - start + 1}
	}
	start := last + 1
	return LineCol{Line: uint32(i + 1), Col: off - start + 1}
}

func normalizePath(p string) string {
	return filepath.ToSlash(filepath.Clean(p))
}

// AbsolutePath normalizes path to an absolute, slash-separated form.
func AbsolutePath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path, err
	}
	return normalizePath(abs), nil
}

// RelativePath returns path relative to base; falls back to the absolute
// form if no relative path can be computed.
func RelativePath(path, base string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path, err
	}
	absBase, err := filepath.Abs(base)
	if err != nil {
		return normalizePath(absPath), nil
	}
	rel, err := filepath.Rel(absBase, absPath)
	if err != nil {
		return normalizePath(absPath), nil
	}
	return normalizePath(rel), nil
}

// BaseName returns the file name component of path, normalized.
func BaseName(path string) string {
	return normalizePath(filepath.Base(path))
}

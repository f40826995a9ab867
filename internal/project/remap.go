package project

import (
	"path/filepath"
	"strings"
)

// Remapping rewrites an import literal's prefix to a filesystem target,
// following the "[context:]prefix=target" convention used by the
// ecosystem's build tools (Foundry's remappings.txt, Hardhat's path
// remapping). Context, if set, restricts the remapping to imports written
// inside files under that directory.
type Remapping struct {
	Context string
	Prefix  string
	Target  string
}

// ParseRemapping parses one remappings.txt line. Blank lines and lines
// starting with '#' parse as (zero value, false).
func ParseRemapping(line string) (Remapping, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return Remapping{}, false
	}
	left, target, ok := strings.Cut(line, "=")
	if !ok || target == "" {
		return Remapping{}, false
	}
	var context, prefix string
	if c, p, ok := strings.Cut(left, ":"); ok {
		context, prefix = c, p
	} else {
		prefix = left
	}
	if prefix == "" {
		return Remapping{}, false
	}
	return Remapping{Context: context, Prefix: prefix, Target: target}, true
}

// RemapSet is an ordered collection of remappings. Apply's match order
// does not depend on slice order: the longest matching Prefix always wins.
type RemapSet []Remapping

// Apply resolves literal as written inside a file under importerDir.
// matched is false if no remapping's prefix matches. ambiguous is true if
// two or more remappings tie for the longest matching prefix but disagree
// on Target, per spec's AmbiguousRemap failure mode.
func (rs RemapSet) Apply(importerDir, literal string) (target string, matched bool, ambiguous bool) {
	bestLen := -1
	var best Remapping
	for _, r := range rs {
		if r.Context != "" && !pathHasPrefix(importerDir, r.Context) {
			continue
		}
		if !strings.HasPrefix(literal, r.Prefix) {
			continue
		}
		switch {
		case len(r.Prefix) > bestLen:
			bestLen = len(r.Prefix)
			best = r
			ambiguous = false
		case len(r.Prefix) == bestLen && r.Target != best.Target:
			ambiguous = true
		}
	}
	if bestLen < 0 {
		return "", false, false
	}
	if ambiguous {
		return "", true, true
	}
	return best.Target + strings.TrimPrefix(literal, best.Prefix), true, false
}

// pathHasPrefix reports whether path lies at or under the directory prefix,
// comparing whole path segments rather than raw string bytes.
func pathHasPrefix(path, prefix string) bool {
	path = filepath.ToSlash(filepath.Clean(path))
	prefix = filepath.ToSlash(filepath.Clean(prefix))
	if prefix == "." || prefix == "" {
		return true
	}
	if path == prefix {
		return true
	}
	return strings.HasPrefix(path, prefix+"/")
}

package project

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// ProjectConfig is the [resolver] section of a project's solar.toml: the
// include-path search list and inline remappings (the remainder of
// solar.toml, covering build/output options, is not read by this package).
type ProjectConfig struct {
	IncludePaths []string
	Remappings   []string
}

type projectManifest struct {
	Resolver struct {
		IncludePaths []string `toml:"include_paths"`
		Remappings   []string `toml:"remappings"`
	} `toml:"resolver"`
}

// LoadProjectConfig parses the [resolver] section from a project solar.toml.
// A missing [resolver] table is not an error: it yields an empty config.
func LoadProjectConfig(path string) (ProjectConfig, error) {
	var cfg projectManifest
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return ProjectConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return ProjectConfig{
		IncludePaths: cfg.Resolver.IncludePaths,
		Remappings:   cfg.Resolver.Remappings,
	}, nil
}

// LoadRemappingsFile parses a Foundry-style remappings.txt: one
// "[context:]prefix=target" entry per line, blank lines and '#' comments
// ignored. Lines that fail to parse are skipped rather than erroring,
// matching solc's own tolerant behavior toward malformed remapping lines.
func LoadRemappingsFile(path string) (RemapSet, error) {
	f, err := os.Open(path) //nolint:gosec // path is an explicit CLI/config argument, not attacker input
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	defer f.Close()

	var out RemapSet
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if r, ok := ParseRemapping(strings.TrimSpace(scanner.Text())); ok {
			out = append(out, r)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return out, nil
}

// ParseRemappingStrings parses remapping lines already loaded in memory
// (e.g. from ProjectConfig.Remappings or -m CLI flags), skipping any that
// fail to parse.
func ParseRemappingStrings(lines []string) RemapSet {
	out := make(RemapSet, 0, len(lines))
	for _, line := range lines {
		if r, ok := ParseRemapping(line); ok {
			out = append(out, r)
		}
	}
	return out
}

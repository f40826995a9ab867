package project

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindProjectManifestWalksUpward(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "solar.toml"), []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "src", "contracts")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	path, ok, err := FindProjectManifest(nested)
	if err != nil {
		t.Fatal(err)
	}
	if !ok || path != filepath.Join(root, "solar.toml") {
		t.Fatalf("path = %q ok = %v", path, ok)
	}

	foundRoot, ok, err := FindProjectRoot(nested)
	if err != nil {
		t.Fatal(err)
	}
	if !ok || foundRoot != root {
		t.Fatalf("root = %q ok = %v", foundRoot, ok)
	}
}

func TestFindProjectManifestNotFound(t *testing.T) {
	_, ok, err := FindProjectManifest(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("did not expect to find a manifest")
	}
}

// Package testutil provides fixture-tree helpers for root-detection tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// Entry describes one node of a fixture tree. Paths are slash-separated and
// relative to the tree root.
type Entry struct {
	Path string
	Dir  bool
}

// File returns a file entry.
func File(path string) Entry {
	return Entry{Path: path}
}

// Dir returns a directory entry.
func Dir(path string) Entry {
	return Entry{Path: path, Dir: true}
}

// WriteTree materializes a fixture tree under a fresh temp directory and
// returns its canonical root. The root is canonicalized up front so that
// lexical paths built by joining onto it compare equal to resolver output
// even when the temp dir itself sits behind a symlink (macOS /tmp).
func WriteTree(t *testing.T, entries ...Entry) string {
	t.Helper()

	root, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to canonicalize temp dir: %v", err)
	}
	WriteTreeAt(t, root, entries...)
	return root
}

// WriteTreeAt adds entries to an existing fixture tree.
func WriteTreeAt(t *testing.T, root string, entries ...Entry) {
	t.Helper()

	for _, e := range entries {
		full := filepath.Join(root, filepath.FromSlash(e.Path))
		if e.Dir {
			if err := os.MkdirAll(full, 0755); err != nil {
				t.Fatalf("Failed to create dir %s: %v", e.Path, err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatalf("Failed to create parent of %s: %v", e.Path, err)
		}
		if err := os.WriteFile(full, nil, 0644); err != nil {
			t.Fatalf("Failed to create file %s: %v", e.Path, err)
		}
	}
}

// Symlink creates newname pointing at oldname, skipping the test on
// platforms where symlink creation is not permitted.
func Symlink(t *testing.T, oldname, newname string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(newname), 0755); err != nil {
		t.Fatalf("Failed to create parent of %s: %v", newname, err)
	}
	if err := os.Symlink(oldname, newname); err != nil {
		t.Skipf("Symlinks not supported here: %v", err)
	}
}

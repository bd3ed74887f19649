// Package paths provides the ancestor iteration and canonicalization
// primitives that root detection is built on.
package paths

import (
	"path/filepath"
)

// Resolution is the typed outcome of canonicalizing a path. A failed
// resolution (broken symlink, cycle, permission denial, missing file) is a
// value, not a propagated error; the exclusion check consumes it directly.
type Resolution struct {
	Path string
	Err  error
}

// Ok reports whether canonicalization completed.
func (r Resolution) Ok() bool {
	return r.Err == nil
}

// Canonicalize resolves a path to absolute, symlink-free canonical form.
func Canonicalize(path string) Resolution {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Resolution{Err: err}
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return Resolution{Err: err}
	}
	return Resolution{Path: resolved}
}

// Parent returns the immediate parent directory. At the filesystem root it
// returns the root itself; callers use IsRoot to detect the end of a walk.
func Parent(path string) string {
	return filepath.Dir(path)
}

// IsRoot reports whether a path is its own parent (the filesystem root).
func IsRoot(path string) bool {
	return filepath.Dir(path) == path
}

// Segments returns the basename of every component of the path, ordered
// root-first. The root component itself is not included.
func Segments(path string) []string {
	var names []string
	cur := filepath.Clean(path)
	for !IsRoot(cur) {
		names = append(names, filepath.Base(cur))
		cur = filepath.Dir(cur)
	}
	// Reverse into root-first order
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return names
}

// Depth returns the number of components below the filesystem root.
func Depth(path string) int {
	n := 0
	cur := filepath.Clean(path)
	for !IsRoot(cur) {
		n++
		cur = filepath.Dir(cur)
	}
	return n
}

// AncestorIter walks a path's ancestor-or-self chain lazily, from the path
// toward the filesystem root. It is finite and not restartable; a fresh walk
// needs a fresh iterator.
type AncestorIter struct {
	current string
	done    bool
}

// Ancestors returns an iterator over path, parent(path), ... up to and
// including the filesystem root.
func Ancestors(path string) *AncestorIter {
	return &AncestorIter{current: filepath.Clean(path)}
}

// Next returns the next ancestor, or false when the walk is exhausted.
func (it *AncestorIter) Next() (string, bool) {
	if it.done {
		return "", false
	}
	cur := it.current
	if IsRoot(cur) {
		it.done = true
	} else {
		it.current = filepath.Dir(cur)
	}
	return cur, true
}

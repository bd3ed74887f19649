package detect

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// TraverseOptions controls directory traversal.
type TraverseOptions struct {
	// MaxDepth limits descent; 0 visits only the start directory's files,
	// negative means unlimited.
	MaxDepth int
	// Extensions filters discovered files by extension (without the dot);
	// empty means every file qualifies.
	Extensions []string
}

// UnlimitedDepth is the MaxDepth value for unbounded traversal.
const UnlimitedDepth = -1

// Traverse walks root depth-first, discovers matching source files while
// pruning excluded subtrees (they are never entered, not filtered after the
// fact), and resolves the whole discovery as one batch. Cancellation is
// checked between directory visits, never mid-resolution.
func (e *Engine) Traverse(ctx context.Context, root string, opts TraverseOptions) (map[string]Result, error) {
	files, err := e.collectFiles(ctx, root, opts)
	if err != nil {
		return nil, err
	}
	return e.ResolveAll(files, nil), nil
}

// DiscoverRoots traverses root and returns the sorted set of unique project
// roots of the discovered files. Excluded files contribute nothing.
func (e *Engine) DiscoverRoots(ctx context.Context, root string, opts TraverseOptions) ([]string, error) {
	results, err := e.Traverse(ctx, root, opts)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	for _, res := range results {
		if res.Excluded {
			continue
		}
		seen[res.Root] = struct{}{}
	}

	roots := make([]string, 0, len(seen))
	for r := range seen {
		roots = append(roots, r)
	}
	sort.Strings(roots)
	return roots, nil
}

func (e *Engine) collectFiles(ctx context.Context, root string, opts TraverseOptions) ([]string, error) {
	extensions := make(map[string]struct{}, len(opts.Extensions))
	for _, ext := range opts.Extensions {
		extensions[strings.TrimPrefix(ext, ".")] = struct{}{}
	}

	root = filepath.Clean(root)
	var files []string

	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == root {
				return err
			}
			// Unreadable entries are skipped, not fatal
			return nil
		}

		if d.IsDir() {
			if err := ctx.Err(); err != nil {
				return err
			}
			if e.cfg.MatchesExclusion(d.Name()) {
				return fs.SkipDir
			}
			if opts.MaxDepth >= 0 && relDepth(root, p) > opts.MaxDepth {
				return fs.SkipDir
			}
			return nil
		}

		if !isRegular(p, d) {
			return nil
		}
		if len(extensions) > 0 {
			ext := strings.TrimPrefix(filepath.Ext(d.Name()), ".")
			if _, ok := extensions[ext]; !ok {
				return nil
			}
		}
		files = append(files, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// relDepth is the number of path components between root and p; root itself
// is depth 0.
func relDepth(root, p string) int {
	rel, err := filepath.Rel(root, p)
	if err != nil || rel == "." {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator)) + 1
}

// isRegular reports whether the entry is a regular file, following one
// level of symlink the way the discovery should: a link to a file counts,
// a link to a directory is not descended into.
func isRegular(p string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(p)
	return err == nil && info.Mode().IsRegular()
}

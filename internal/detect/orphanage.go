package detect

import (
	"path/filepath"

	"rootfind/internal/config"
	"rootfind/internal/paths"
)

// OrphanageIndex groups marker-less files under the outermost ancestor
// directory that directly holds a valid source file. It is built once per
// batch from the full input set — SourceDirs must be complete before the
// first Orphanage lookup, so construction is the single-writer phase and the
// returned index is read-only.
type OrphanageIndex struct {
	cfg        *config.Config
	sourceDirs map[string]struct{}
}

// NewOrphanageIndex computes SourceDirs: the distinct parent directories of
// every non-excluded file in the batch, in canonical form so membership
// tests during the resolver's canonical-path walk line up.
func NewOrphanageIndex(cfg *config.Config, files []string, exclusions *ExclusionIndex) *OrphanageIndex {
	dirs := make(map[string]struct{})
	for _, f := range files {
		if exclusions.IsExcluded(f) {
			continue
		}
		res := paths.Canonicalize(f)
		if !res.Ok() {
			continue
		}
		dirs[filepath.Dir(res.Path)] = struct{}{}
	}
	return &OrphanageIndex{cfg: cfg, sourceDirs: dirs}
}

// Orphanage returns the outermost ancestor of file that is a SourceDir,
// falling back to the file's parent when no ancestor qualifies. The upward
// walk stops — not skips — at the first exclusion boundary, so a SourceDir
// above an excluded ancestor is never chosen.
func (o *OrphanageIndex) Orphanage(file string) string {
	parent := filepath.Dir(file)

	outermost := ""
	it := paths.Ancestors(parent)
	for {
		dir, ok := it.Next()
		if !ok {
			break
		}
		if o.cfg.MatchesExclusion(filepath.Base(dir)) {
			break
		}
		if _, ok := o.sourceDirs[dir]; ok {
			// Later hits are closer to the filesystem root; keep the last.
			outermost = dir
		}
	}

	if outermost == "" {
		return parent
	}
	return outermost
}

// SourceDirCount returns the number of distinct SourceDirs in the batch.
func (o *OrphanageIndex) SourceDirCount() int {
	return len(o.sourceDirs)
}

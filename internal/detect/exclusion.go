package detect

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"rootfind/internal/config"
	"rootfind/internal/paths"
)

// exclusionCacheSize bounds the memoized exclusion answers. Entries are
// cheap to recompute, so eviction only costs a redundant filesystem check.
const exclusionCacheSize = 16384

// ExclusionIndex answers whether a path passes through an exclusion
// boundary. Answers are memoized keyed by the canonical path, so multiple
// lexical spellings of the same real location share one cached verdict. The
// cache is safe for concurrent use; racing inserts of the same key are
// benign because the computation is idempotent.
type ExclusionIndex struct {
	cfg   *config.Config
	cache *lru.Cache[string, bool]
}

// NewExclusionIndex creates an exclusion index for the given config.
func NewExclusionIndex(cfg *config.Config) *ExclusionIndex {
	cache, _ := lru.New[string, bool](exclusionCacheSize) // size is a positive constant
	return &ExclusionIndex{cfg: cfg, cache: cache}
}

// IsExcluded reports whether any component of the path's canonical form
// matches a configured exclusion pattern. Paths that cannot be canonicalized
// (dangling symlinks, cycles, permission denial) are excluded — fail closed,
// because exclusion is always a safe, representable outcome.
func (x *ExclusionIndex) IsExcluded(path string) bool {
	res := paths.Canonicalize(path)
	if !res.Ok() {
		return true
	}

	if excluded, ok := x.cache.Get(res.Path); ok {
		return excluded
	}

	excluded := false
	for _, name := range paths.Segments(res.Path) {
		if x.cfg.MatchesExclusion(name) {
			excluded = true
			break
		}
	}

	x.cache.Add(res.Path, excluded)
	return excluded
}

// Clear drops all memoized answers. Call after the filesystem changes.
func (x *ExclusionIndex) Clear() {
	x.cache.Purge()
}

package detect

import (
	"os"
	"path/filepath"

	lru "github.com/hashicorp/golang-lru/v2"

	"rootfind/internal/config"
)

const markerCacheSize = 8192

// MarkerIndex answers whether a directory directly contains a configured
// project marker. The check is non-recursive and cached per directory.
type MarkerIndex struct {
	cfg   *config.Config
	cache *lru.Cache[string, bool]
}

// NewMarkerIndex creates a marker index for the given config.
func NewMarkerIndex(cfg *config.Config) *MarkerIndex {
	cache, _ := lru.New[string, bool](markerCacheSize) // size is a positive constant
	return &MarkerIndex{cfg: cfg, cache: cache}
}

// HasMarker reports whether dir directly contains any configured marker
// entry. I/O and permission errors count as "no marker" — fail open, the
// opposite of the exclusion policy, because a denied marker check must not
// silently widen exclusion.
func (m *MarkerIndex) HasMarker(dir string) bool {
	if found, ok := m.cache.Get(dir); ok {
		return found
	}

	found := m.scan(dir)
	m.cache.Add(dir, found)
	return found
}

func (m *MarkerIndex) scan(dir string) bool {
	if m.cfg.CaseInsensitive() {
		// One directory listing, names matched through the config's
		// normalized marker set.
		entries, err := os.ReadDir(dir)
		if err != nil {
			return false
		}
		for _, e := range entries {
			if m.cfg.MatchesMarker(e.Name()) {
				return true
			}
		}
		return false
	}

	for _, marker := range m.cfg.Markers() {
		if _, err := os.Lstat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}

// Clear drops all memoized answers. Call after the filesystem changes.
func (m *MarkerIndex) Clear() {
	m.cache.Purge()
}

package detect

import (
	"strings"

	"rootfind/internal/config"
	"rootfind/internal/paths"
)

// ClusterResolver computes the lowest common ancestor of a dependency
// cluster: a set of source files transitively connected by import edges.
// The cluster itself is always supplied by the caller as a pre-closed
// connected component; no import relation is ever constructed here.
type ClusterResolver struct {
	table *internTable
}

// NewClusterResolver creates a cluster resolver whose path interning follows
// the config's matching mode.
func NewClusterResolver(cfg *config.Config) *ClusterResolver {
	normalize := func(s string) string { return s }
	if cfg.CaseInsensitive() {
		normalize = strings.ToLower
	}
	return &ClusterResolver{table: newInternTable(normalize)}
}

// LCA returns the deepest directory that is an ancestor of every resolvable
// cluster member. Members that fail canonicalization are discarded; when
// nothing survives, ok is false and the caller falls through to the orphan
// case. Callers must not invoke LCA with an empty cluster.
func (c *ClusterResolver) LCA(members []string) (string, bool) {
	var ids []int32
	for _, m := range members {
		res := paths.Canonicalize(m)
		if !res.Ok() {
			continue
		}
		ids = append(ids, c.table.intern(res.Path))
	}
	if len(ids) == 0 {
		return "", false
	}

	// Count how many member chains each ancestor id appears on; the answer
	// is the deepest id seen on all of them.
	seen := make(map[int32]int)
	for _, id := range ids {
		for _, a := range c.table.chain(id) {
			seen[a]++
		}
	}

	best := int32(-1)
	var bestDepth int32 = -1
	for id, n := range seen {
		if n != len(ids) {
			continue
		}
		if d := c.table.depthOf(id); d > bestDepth {
			best, bestDepth = id, d
		}
	}
	if best < 0 {
		// Members live under different filesystem roots
		return "", false
	}
	return c.table.pathOf(best), true
}

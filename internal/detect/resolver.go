// Package detect implements project-root detection: exclusion-zone checks,
// marker search with innermost-wins precedence, dependency-cluster LCA, and
// the orphanage rule for marker-less files.
package detect

import (
	"path/filepath"

	"rootfind/internal/config"
	"rootfind/internal/paths"
)

// Result is the outcome of resolving one file. Exactly one of the two shapes
// holds: a concrete root directory, or the explicit excluded verdict. A file
// is never silently rootless.
type Result struct {
	Root     string
	Excluded bool
}

// Resolver dispatches the per-file case analysis. Once the batch-level
// indices are fixed it is a pure function of the file (plus cache
// population); it never writes to the filesystem.
type Resolver struct {
	cfg        *config.Config
	exclusions *ExclusionIndex
	markers    *MarkerIndex
	clusters   *ClusterResolver
	orphanage  *OrphanageIndex // nil for single-file calls without batch context
}

// NewResolver creates a resolver over shared indices. orphanage may be nil;
// marker-less files then fall back to their parent directory.
func NewResolver(cfg *config.Config, exclusions *ExclusionIndex, markers *MarkerIndex, clusters *ClusterResolver, orphanage *OrphanageIndex) *Resolver {
	return &Resolver{
		cfg:        cfg,
		exclusions: exclusions,
		markers:    markers,
		clusters:   clusters,
		orphanage:  orphanage,
	}
}

// Resolve determines the project root for one file. cluster is the file's
// dependency-connected component, or nil when no static analysis was
// supplied. The cases fire strictly in priority order; the first match wins.
//
// All walking happens on the file's canonical form, so a path reached
// through a symlink out of an excluded zone (an editable install under
// site-packages, say) is judged by where it really lives.
func (r *Resolver) Resolve(file string, cluster []string) Result {
	// Case 1: exclusion boundaries are never crossed. Unresolvable paths
	// are excluded outright.
	res := paths.Canonicalize(file)
	if !res.Ok() {
		return Result{Excluded: true}
	}
	file = res.Path
	if r.exclusions.IsExcluded(file) {
		return Result{Excluded: true}
	}

	// Case 2: innermost marker directory
	if root, ok := r.markerRoot(file); ok {
		return Result{Root: root}
	}

	// Case 3: LCA of a usable dependency cluster
	if len(cluster) > 0 {
		valid := make([]string, 0, len(cluster))
		for _, member := range cluster {
			if !r.exclusions.IsExcluded(member) {
				valid = append(valid, member)
			}
		}
		if len(valid) > 1 {
			if lca, ok := r.clusters.LCA(valid); ok {
				return Result{Root: lca}
			}
		}
	}

	// Case 4: orphanage, when batch context exists
	if r.orphanage != nil {
		return Result{Root: r.orphanage.Orphanage(file)}
	}

	// Case 5: parent fallback; a file that is the filesystem root is its
	// own root
	if paths.IsRoot(file) {
		return Result{Root: file}
	}
	return Result{Root: filepath.Dir(file)}
}

// markerRoot walks from the file's parent toward the filesystem root and
// returns the first directory containing a marker. The walk stops at an
// exclusion boundary: markers above it are unreachable, not skipped over.
func (r *Resolver) markerRoot(file string) (string, bool) {
	if paths.IsRoot(file) {
		return "", false
	}

	it := paths.Ancestors(filepath.Dir(file))
	for {
		dir, ok := it.Next()
		if !ok {
			return "", false
		}
		if r.cfg.MatchesExclusion(filepath.Base(dir)) {
			return "", false
		}
		if r.markers.HasMarker(dir) {
			return dir, true
		}
	}
}

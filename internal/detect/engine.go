package detect

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"rootfind/internal/config"
	"rootfind/internal/logging"
)

// Engine runs batch resolution: it computes SourceDirs once per batch,
// shares one exclusion and marker cache across every file, and dispatches
// the per-file resolver, optionally across workers.
type Engine struct {
	cfg        *config.Config
	logger     *logging.Logger
	workers    int
	exclusions *ExclusionIndex
	markers    *MarkerIndex
	clusters   *ClusterResolver
}

// NewEngine creates an engine with fresh caches. Callers that want
// independent cache lifetimes run independent engines.
func NewEngine(cfg *config.Config, logger *logging.Logger) *Engine {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Engine{
		cfg:        cfg,
		logger:     logger,
		workers:    1,
		exclusions: NewExclusionIndex(cfg),
		markers:    NewMarkerIndex(cfg),
		clusters:   NewClusterResolver(cfg),
	}
}

// SetWorkers sets the parallelism for batch resolution. Values below 1 mean
// sequential. Worker count never changes results: each worker reads the
// shared indices and writes only its own result slot.
func (e *Engine) SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	e.workers = n
}

// Resolve is the single-file convenience entry. It carries no batch
// context, so the orphanage rule degrades to the parent-directory fallback;
// use ResolveAll when orphan grouping matters.
func (e *Engine) Resolve(file string, cluster []string) Result {
	r := NewResolver(e.cfg, e.exclusions, e.markers, e.clusters, nil)
	return r.Resolve(file, cluster)
}

// ResolveAll resolves every file in the batch. clusters optionally maps a
// file to its dependency-connected component. The returned map has exactly
// one entry per distinct input file, and its contents are deterministic for
// a fixed filesystem and config regardless of worker count.
func (e *Engine) ResolveAll(files []string, clusters map[string][]string) map[string]Result {
	session := uuid.NewString()
	start := time.Now()
	e.logger.Debug("Batch resolution started", map[string]interface{}{
		"sessionId": session,
		"files":     len(files),
		"workers":   e.workers,
	})

	// Phase 1, single writer: SourceDirs must be complete before any
	// orphanage lookup.
	orphanage := NewOrphanageIndex(e.cfg, files, e.exclusions)
	resolver := NewResolver(e.cfg, e.exclusions, e.markers, e.clusters, orphanage)

	results := make([]Result, len(files))
	if e.workers == 1 || len(files) < 2 {
		for i, f := range files {
			results[i] = resolver.Resolve(f, clusters[f])
		}
	} else {
		e.resolveParallel(resolver, files, clusters, results)
	}

	out := make(map[string]Result, len(files))
	excluded := 0
	for i, f := range files {
		out[f] = results[i]
		if results[i].Excluded {
			excluded++
		}
	}

	e.logger.Debug("Batch resolution finished", map[string]interface{}{
		"sessionId":  session,
		"files":      len(files),
		"excluded":   excluded,
		"sourceDirs": orphanage.SourceDirCount(),
		"durationMs": time.Since(start).Milliseconds(),
	})
	return out
}

// resolveParallel fans the batch out over e.workers goroutines. The shared
// caches tolerate concurrent first-write-wins insertion, so the only
// coordination needed is the index channel.
func (e *Engine) resolveParallel(resolver *Resolver, files []string, clusters map[string][]string, results []Result) {
	indices := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < e.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indices {
				results[i] = resolver.Resolve(files[i], clusters[files[i]])
			}
		}()
	}

	for i := range files {
		indices <- i
	}
	close(indices)
	wg.Wait()
}

// Clear drops every memoized answer. Call when the filesystem changed
// between batches; a fresh batch on an unchanged filesystem does not need
// it.
func (e *Engine) Clear() {
	e.exclusions.Clear()
	e.markers.Clear()
}

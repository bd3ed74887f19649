package detect

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"rootfind/internal/config"
	"rootfind/internal/testutil"
)

func buildOrphanage(t *testing.T, cfg *config.Config, files []string) *OrphanageIndex {
	t.Helper()
	return NewOrphanageIndex(cfg, files, NewExclusionIndex(cfg))
}

func TestOrphanagePicksOutermostSourceDir(t *testing.T) {
	root := testutil.WriteTree(t,
		testutil.File("proj/main.py"),
		testutil.File("proj/app/model/user.py"),
	)

	files := []string{
		filepath.Join(root, "proj/main.py"),
		filepath.Join(root, "proj/app/model/user.py"),
	}
	idx := buildOrphanage(t, config.Default(), files)

	// Both proj/ and proj/app/model/ are SourceDirs; the outermost wins
	assert.Equal(t, filepath.Join(root, "proj"), idx.Orphanage(files[1]))
	assert.Equal(t, filepath.Join(root, "proj"), idx.Orphanage(files[0]))
}

func TestOrphanageFallsBackToParent(t *testing.T) {
	root := testutil.WriteTree(t, testutil.File("scripts/test.py"))
	file := filepath.Join(root, "scripts/test.py")

	// Index built from an unrelated batch knows no ancestor SourceDir
	idx := buildOrphanage(t, config.Default(), nil)
	assert.Equal(t, filepath.Join(root, "scripts"), idx.Orphanage(file))
}

func TestOrphanageIsolatedFileIsItsOwnGroup(t *testing.T) {
	root := testutil.WriteTree(t, testutil.File("scripts/test.py"))
	file := filepath.Join(root, "scripts/test.py")

	idx := buildOrphanage(t, config.Default(), []string{file})
	assert.Equal(t, filepath.Join(root, "scripts"), idx.Orphanage(file))
	assert.Equal(t, 1, idx.SourceDirCount())
}

func TestOrphanageExcludedFilesContributeNoSourceDirs(t *testing.T) {
	root := testutil.WriteTree(t,
		testutil.File("proj/main.py"),
		testutil.File(".venv/lib/pkg/mod.py"),
	)

	files := []string{
		filepath.Join(root, "proj/main.py"),
		filepath.Join(root, ".venv/lib/pkg/mod.py"),
	}
	idx := buildOrphanage(t, config.Default(), files)
	assert.Equal(t, 1, idx.SourceDirCount())
}

func TestOrphanageWalkStopsAtExclusionBoundary(t *testing.T) {
	// A SourceDir above an exclusion boundary in the walk is unreachable.
	// The boundary name only matters for ancestors of the queried file.
	root := testutil.WriteTree(t,
		testutil.File("area/main.py"),
		testutil.File("area/vendor/deep/tool.py"),
	)

	cfg := config.New(nil, nil, false) // nothing excluded while indexing
	files := []string{
		filepath.Join(root, "area/main.py"),
		filepath.Join(root, "area/vendor/deep/tool.py"),
	}
	idx := NewOrphanageIndex(config.Default(), files, NewExclusionIndex(cfg))

	// Walking up from area/vendor/deep stops at area/vendor, so area/ is
	// never considered; the parent fallback applies.
	got := idx.Orphanage(filepath.Join(root, "area/vendor/deep/tool.py"))
	assert.Equal(t, filepath.Join(root, "area/vendor/deep"), got)

	// The sibling outside the boundary still groups normally
	assert.Equal(t, filepath.Join(root, "area"), idx.Orphanage(files[0]))
}

package detect

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rootfind/internal/config"
	"rootfind/internal/testutil"
)

func TestIsExcludedInheritance(t *testing.T) {
	root := testutil.WriteTree(t,
		testutil.File("node_modules/lodash/dist/index.js"),
		testutil.File("src/app.js"),
	)

	idx := NewExclusionIndex(config.Default())

	// Everything at or below the boundary is excluded
	assert.True(t, idx.IsExcluded(filepath.Join(root, "node_modules")))
	assert.True(t, idx.IsExcluded(filepath.Join(root, "node_modules/lodash")))
	assert.True(t, idx.IsExcluded(filepath.Join(root, "node_modules/lodash/dist/index.js")))

	assert.False(t, idx.IsExcluded(filepath.Join(root, "src/app.js")))
	assert.False(t, idx.IsExcluded(root))
}

func TestIsExcludedMonotonicity(t *testing.T) {
	root := testutil.WriteTree(t,
		testutil.File("out/main.js"),
		testutil.File("src/app.js"),
	)

	base := config.Default()
	enlarged := base.WithExclusions("out")

	baseIdx := NewExclusionIndex(base)
	enlargedIdx := NewExclusionIndex(enlarged)

	// Enlarging the exclusion set never shrinks the excluded set
	for _, p := range []string{"out/main.js", "src/app.js"} {
		full := filepath.Join(root, p)
		if baseIdx.IsExcluded(full) {
			assert.True(t, enlargedIdx.IsExcluded(full))
		}
	}
	assert.True(t, enlargedIdx.IsExcluded(filepath.Join(root, "out/main.js")))
	assert.False(t, baseIdx.IsExcluded(filepath.Join(root, "out/main.js")))
}

func TestIsExcludedFailsClosed(t *testing.T) {
	root := testutil.WriteTree(t)
	idx := NewExclusionIndex(config.Default())

	// Nonexistent path cannot be canonicalized
	assert.True(t, idx.IsExcluded(filepath.Join(root, "no", "such", "file.py")))

	// Dangling symlink
	link := filepath.Join(root, "dangling")
	testutil.Symlink(t, filepath.Join(root, "gone"), link)
	assert.True(t, idx.IsExcluded(link))
}

func TestIsExcludedSharedVerdictAcrossSpellings(t *testing.T) {
	root := testutil.WriteTree(t, testutil.File("pkg/mod.py"))
	link := filepath.Join(root, "alias")
	testutil.Symlink(t, filepath.Join(root, "pkg"), link)

	idx := NewExclusionIndex(config.Default())

	// Both lexical spellings resolve to the same real location and agree
	assert.False(t, idx.IsExcluded(filepath.Join(root, "pkg/mod.py")))
	assert.False(t, idx.IsExcluded(filepath.Join(link, "mod.py")))
}

func TestIsExcludedCaseInsensitive(t *testing.T) {
	root := testutil.WriteTree(t, testutil.File("Node_Modules/pkg/index.js"))

	sensitive := NewExclusionIndex(config.Default())
	assert.False(t, sensitive.IsExcluded(filepath.Join(root, "Node_Modules/pkg/index.js")))

	insensitive := NewExclusionIndex(config.Default().WithCaseInsensitive(true))
	assert.True(t, insensitive.IsExcluded(filepath.Join(root, "Node_Modules/pkg/index.js")))
}

func TestExclusionCacheClear(t *testing.T) {
	root := testutil.WriteTree(t, testutil.File(".venv/lib/pkg/a.py"))
	idx := NewExclusionIndex(config.Default())

	require.True(t, idx.IsExcluded(filepath.Join(root, ".venv/lib/pkg/a.py")))
	idx.Clear()
	require.True(t, idx.IsExcluded(filepath.Join(root, ".venv/lib/pkg/a.py")))
}

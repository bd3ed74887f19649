package detect

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rootfind/internal/config"
	"rootfind/internal/testutil"
)

func TestResolveAllBatch(t *testing.T) {
	root := testutil.WriteTree(t,
		testutil.Dir(".git"),
		testutil.File("src/a.rs"),
		testutil.File("src/b.rs"),
		testutil.File("node_modules/pkg/c.js"),
	)

	files := []string{
		filepath.Join(root, "src/a.rs"),
		filepath.Join(root, "src/b.rs"),
		filepath.Join(root, "node_modules/pkg/c.js"),
	}

	engine := NewEngine(config.Default(), nil)
	results := engine.ResolveAll(files, nil)

	require.Len(t, results, 3)
	assert.Equal(t, Result{Root: root}, results[files[0]])
	assert.Equal(t, Result{Root: root}, results[files[1]])
	assert.Equal(t, Result{Excluded: true}, results[files[2]])
}

func TestResolveAllOrphanageGrouping(t *testing.T) {
	root := testutil.WriteTree(t,
		testutil.File("project/main.py"),
		testutil.File("project/app/utils/helper.py"),
		testutil.File("project/lib/core.py"),
	)

	files := []string{
		filepath.Join(root, "project/main.py"),
		filepath.Join(root, "project/app/utils/helper.py"),
		filepath.Join(root, "project/lib/core.py"),
	}

	engine := NewEngine(config.Default(), nil)
	results := engine.ResolveAll(files, nil)

	// All marker-less files share the outermost SourceDir
	for _, f := range files {
		assert.Equal(t, filepath.Join(root, "project"), results[f].Root)
	}
}

func TestResolveAllIdempotent(t *testing.T) {
	root := testutil.WriteTree(t,
		testutil.Dir("proj/.git"),
		testutil.File("proj/src/main.py"),
		testutil.File("scripts/tool.py"),
	)

	files := []string{
		filepath.Join(root, "proj/src/main.py"),
		filepath.Join(root, "scripts/tool.py"),
	}

	engine := NewEngine(config.Default(), nil)
	first := engine.ResolveAll(files, nil)
	second := engine.ResolveAll(files, nil)

	assert.Equal(t, first, second)
}

func TestResolveAllDeterministicAcrossWorkerCounts(t *testing.T) {
	entries := []testutil.Entry{
		testutil.Dir("mono/.git"),
		testutil.File("mono/package.json"),
		testutil.File("mono/packages/api/package.json"),
	}
	for _, p := range []string{
		"mono/packages/api/src/index.ts",
		"mono/packages/api/src/server.ts",
		"mono/packages/web/src/app.tsx",
		"orphans/one.py",
		"orphans/deep/two.py",
		"node_modules/dep/index.js",
	} {
		entries = append(entries, testutil.File(p))
	}
	root := testutil.WriteTree(t, entries...)

	var files []string
	for _, p := range []string{
		"mono/packages/api/src/index.ts",
		"mono/packages/api/src/server.ts",
		"mono/packages/web/src/app.tsx",
		"orphans/one.py",
		"orphans/deep/two.py",
		"node_modules/dep/index.js",
	} {
		files = append(files, filepath.Join(root, p))
	}

	sequential := NewEngine(config.Default(), nil)
	baseline := sequential.ResolveAll(files, nil)

	parallel := NewEngine(config.Default(), nil)
	parallel.SetWorkers(8)
	assert.Equal(t, baseline, parallel.ResolveAll(files, nil))
}

func TestResolveAllStability(t *testing.T) {
	root := testutil.WriteTree(t,
		testutil.Dir("proj/.git"),
		testutil.File("proj/src/main.py"),
		testutil.File("loose/tool.py"),
	)

	marked := filepath.Join(root, "proj/src/main.py")
	orphan := filepath.Join(root, "loose/tool.py")

	engine := NewEngine(config.Default(), nil)
	before := engine.ResolveAll([]string{marked, orphan}, nil)

	// Adding a marker-less file without new edges must not move
	// marker-resolved results
	extra := filepath.Join(root, "loose/extra.py")
	testutil.WriteTreeAt(t, root, testutil.File("loose/extra.py"))
	after := engine.ResolveAll([]string{marked, orphan, extra}, nil)

	assert.Equal(t, before[marked], after[marked])
}

func TestResolveAllWithClusters(t *testing.T) {
	root := testutil.WriteTree(t,
		testutil.File("scripts/a.py"),
		testutil.File("scripts/b.py"),
		testutil.File("elsewhere/c.py"),
	)

	a := filepath.Join(root, "scripts/a.py")
	b := filepath.Join(root, "scripts/b.py")
	c := filepath.Join(root, "elsewhere/c.py")

	clusters := map[string][]string{
		a: {a, b},
		b: {a, b},
	}

	engine := NewEngine(config.Default(), nil)
	results := engine.ResolveAll([]string{a, b, c}, clusters)

	assert.Equal(t, filepath.Join(root, "scripts"), results[a].Root)
	assert.Equal(t, filepath.Join(root, "scripts"), results[b].Root)
	// c has no cluster; orphanage applies
	assert.Equal(t, filepath.Join(root, "elsewhere"), results[c].Root)
}

func TestEngineResolveSingleFile(t *testing.T) {
	root := testutil.WriteTree(t,
		testutil.Dir("proj/.git"),
		testutil.File("proj/main.go"),
	)

	engine := NewEngine(config.Default(), nil)
	res := engine.Resolve(filepath.Join(root, "proj/main.go"), nil)
	assert.Equal(t, filepath.Join(root, "proj"), res.Root)
}

func TestEngineClear(t *testing.T) {
	root := testutil.WriteTree(t,
		testutil.Dir("proj/.git"),
		testutil.File("proj/main.go"),
	)

	engine := NewEngine(config.Default(), nil)
	file := filepath.Join(root, "proj/main.go")
	require.False(t, engine.Resolve(file, nil).Excluded)

	engine.Clear()
	assert.False(t, engine.Resolve(file, nil).Excluded)
}

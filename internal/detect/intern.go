package detect

import (
	"path/filepath"
	"sync"

	"rootfind/internal/paths"
)

// internTable assigns stable integer ids to canonical path nodes so that
// ancestor-chain operations compare ints instead of strings. Node identity
// uses the normalized basename (lowercased when matching is
// case-insensitive), applied once at interning time; the spelling of the
// first sighting is the one reported back.
type internTable struct {
	mu        sync.Mutex
	normalize func(string) string
	nodes     []internNode
	children  []map[string]int32 // per node: normalized child name -> id
	roots     map[string]int32   // filesystem root path -> id
}

type internNode struct {
	path   string // original spelling, reconstructable output
	parent int32  // -1 for filesystem roots
	depth  int32
}

func newInternTable(normalize func(string) string) *internTable {
	return &internTable{
		normalize: normalize,
		roots:     make(map[string]int32),
	}
}

// intern maps a cleaned absolute path to its node id, creating the node and
// all missing ancestors. The walk is an explicit loop over the ancestor
// chain, not recursion, so arbitrarily deep paths stay cheap on stack.
func (t *internTable) intern(path string) int32 {
	t.mu.Lock()
	defer t.mu.Unlock()

	// Collect the ancestor-or-self chain leaf-first, then build root-first.
	var chain []string
	cur := filepath.Clean(path)
	for !paths.IsRoot(cur) {
		chain = append(chain, cur)
		cur = filepath.Dir(cur)
	}

	id, ok := t.roots[cur]
	if !ok {
		id = t.newNode(cur, -1, 0)
		t.roots[cur] = id
	}

	for i := len(chain) - 1; i >= 0; i-- {
		key := t.normalize(filepath.Base(chain[i]))
		child, ok := t.children[id][key]
		if !ok {
			child = t.newNode(chain[i], id, t.nodes[id].depth+1)
			t.children[id][key] = child
		}
		id = child
	}
	return id
}

func (t *internTable) newNode(path string, parent, depth int32) int32 {
	id := int32(len(t.nodes))
	t.nodes = append(t.nodes, internNode{path: path, parent: parent, depth: depth})
	t.children = append(t.children, make(map[string]int32))
	return id
}

// chain returns the ancestor-or-self ids of a node, leaf-first.
func (t *internTable) chain(id int32) []int32 {
	t.mu.Lock()
	defer t.mu.Unlock()

	ids := make([]int32, 0, t.nodes[id].depth+1)
	for cur := id; cur >= 0; cur = t.nodes[cur].parent {
		ids = append(ids, cur)
	}
	return ids
}

func (t *internTable) pathOf(id int32) string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.nodes[id].path
}

func (t *internTable) depthOf(id int32) int32 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.nodes[id].depth
}

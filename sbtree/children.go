package sbtree

import (
	"sort"

	"github.com/google/btree"
)

// ChildMap associates a child coefficient v ≥ 2 with the arena index of the
// child node. One ChildMap is allocated per node that gets children, so the
// container chosen trades memory for lookup speed. Store.Validate uses Len
// and Range to check each container against the constructed nodes.
type ChildMap interface {
	// Get returns the index stored under v.
	Get(v uint64) (id int, ok bool)
	// Set stores id under v, replacing any previous value.
	Set(v uint64, id int)
	// Len returns the number of children.
	Len() int
	// Range calls fn for each child in increasing v until fn returns false.
	Range(fn func(v uint64, id int) bool)
}

// ChildMapFactory allocates an empty ChildMap.
type ChildMapFactory func() ChildMap

// hashChildren is the default container: a built-in map.
type hashChildren map[uint64]int

// HashChildren returns a ChildMap backed by a Go map.
// Get/Set: O(1) expected. Range sorts keys first: O(n log n).
func HashChildren() ChildMap { return make(hashChildren) }

func (m hashChildren) Get(v uint64) (int, bool) {
	id, ok := m[v]
	return id, ok
}

func (m hashChildren) Set(v uint64, id int) { m[v] = id }

func (m hashChildren) Len() int { return len(m) }

func (m hashChildren) Range(fn func(v uint64, id int) bool) {
	keys := make([]uint64, 0, len(m))
	for v := range m {
		keys = append(keys, v)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	for _, v := range keys {
		if !fn(v, m[v]) {
			return
		}
	}
}

// childEntry is one B-tree item.
type childEntry struct {
	v  uint64
	id int
}

// orderedDegree keeps B-tree nodes small; most nodes have a handful of children.
const orderedDegree = 4

// orderedChildren keeps children sorted by coefficient in a B-tree.
type orderedChildren struct {
	t *btree.BTreeG[childEntry]
}

// OrderedChildren returns a ChildMap backed by a generic B-tree.
// Get/Set: O(log n). Range: O(n), already ordered.
func OrderedChildren() ChildMap {
	return &orderedChildren{
		t: btree.NewG(orderedDegree, func(a, b childEntry) bool { return a.v < b.v }),
	}
}

func (m *orderedChildren) Get(v uint64) (int, bool) {
	e, ok := m.t.Get(childEntry{v: v})
	return e.id, ok
}

func (m *orderedChildren) Set(v uint64, id int) { m.t.ReplaceOrInsert(childEntry{v: v, id: id}) }

func (m *orderedChildren) Len() int { return m.t.Len() }

func (m *orderedChildren) Range(fn func(v uint64, id int) bool) {
	m.t.Ascend(func(e childEntry) bool { return fn(e.v, e.id) })
}

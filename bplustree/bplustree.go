// Package bplustree implements an in-memory, ordered key-to-value B+ tree.
//
// Keys and values are stored by value; keys must be totally ordered
// (cmp.Ordered). Leaves are linked into a doubly-linked chain so that,
// once an iterator is positioned on its first leaf, ordered iteration and
// range scans advance along that chain without touching a branch node.
// All node storage is owned by an internal arena and addressed by opaque
// NodeId indices rather than pointers, which lets the mutation engine hold
// disjoint references to sibling nodes during borrow/merge without
// aliasing hazards.
//
// The tree is single-threaded and has no durability story: there is no
// concurrent-mutation support, no on-disk layout, and no transactions.
// Multiple concurrent readers with no writer are safe only to the extent
// Go's read-only slice/field access already is; any writer requires
// external synchronisation.
package bplustree

import "cmp"

// Entry is a (key, value) pair returned by lookups and iterators.
type Entry[K cmp.Ordered, V any] struct {
	Key   K
	Value V
}

// Tree is an in-memory B+ tree keyed by K, storing values of type V.
// The zero value is not usable; construct with New.
type Tree[K cmp.Ordered, V any] struct {
	arena        *arena[K, V]
	branching    int
	size         int
	rootID       NodeId
	leftmostLeaf NodeId
	epoch        uint64
}

// New creates an empty tree with the given branching factor B (the
// maximum number of keys per node). B must be at least 4.
func New[K cmp.Ordered, V any](branchingFactor int) (*Tree[K, V], error) {
	if branchingFactor < 4 {
		return nil, ErrInvalidCapacity
	}
	a := newArena[K, V]()
	root := a.allocateLeaf()
	return &Tree[K, V]{
		arena:        a,
		branching:    branchingFactor,
		rootID:       root,
		leftmostLeaf: root,
	}, nil
}

// minOccupancy is ceil(B/2), the minimum number of entries (leaves) or
// separator keys (branches) a non-root node must hold (invariant 4).
func (t *Tree[K, V]) minOccupancy() int {
	return (t.branching + 1) / 2
}

// Size returns the number of entries currently stored.
func (t *Tree[K, V]) Size() int { return t.size }

// IsEmpty reports whether the tree holds no entries.
func (t *Tree[K, V]) IsEmpty() bool { return t.size == 0 }

// Get returns the value associated with key, if present.
func (t *Tree[K, V]) Get(key K) (V, bool) {
	leafID, _ := t.locate(key)
	leaf := t.arena.get(leafID).leaf
	if i, found := leaf.findKey(key); found {
		return leaf.values[i], true
	}
	var zero V
	return zero, false
}

// Contains reports whether key is present in the tree.
func (t *Tree[K, V]) Contains(key K) bool {
	_, ok := t.Get(key)
	return ok
}

// bumpEpoch advances the mutation epoch. Every structural or value
// mutation calls this exactly once, so live iterators can detect that the
// tree changed underneath them (spec.md §9).
func (t *Tree[K, V]) bumpEpoch() {
	t.epoch++
}

// Clear frees every node and returns the tree to the empty state. Any
// outstanding iterator handles are invalidated; using one afterwards is a
// contract violation by the caller (spec.md §4.4.3).
func (t *Tree[K, V]) Clear() {
	t.arena = newArena[K, V]()
	root := t.arena.allocateLeaf()
	t.rootID = root
	t.leftmostLeaf = root
	t.size = 0
	t.bumpEpoch()
}

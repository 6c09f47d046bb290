package bplustree

import (
	"cmp"
	"fmt"

	"github.com/xlab/treeprint"
)

// DebugDump renders the tree's node structure as a human-readable,
// indented tree (spec.md §6's "pretty-printed structural description").
// It is a diagnostic aid only; its exact text is not part of any
// contract.
func (t *Tree[K, V]) DebugDump() string {
	root := treeprint.New()
	root.SetValue(fmt.Sprintf("tree(B=%d, size=%d)", t.branching, t.size))
	t.dumpNode(root, t.rootID)
	return root.String()
}

func (t *Tree[K, V]) dumpNode(out treeprint.Tree, id NodeId) {
	n := t.arena.get(id)
	if n.isLeaf() {
		out.AddNode(fmt.Sprintf("leaf#%d keys=%v next=%d prev=%d", id, n.leaf.keys, n.leaf.next, n.leaf.prev))
		return
	}
	sub := out.AddBranch(fmt.Sprintf("branch#%d seps=%v", id, n.branch.keys))
	for _, child := range n.branch.children {
		t.dumpNode(sub, child)
	}
}

// Validate walks the tree and checks the structural invariants of
// spec.md §3 (strictly increasing keys, uniform leaf depth, occupancy
// bounds, the leftmost-of-right-subtree separator rule, the leaf sibling
// chain, the leftmost-leaf pointer, and the size/iteration count
// agreement). It returns the first violation found, or nil if the tree
// is internally consistent. Intended for tests and debugging, not for
// use on any hot path: unreachable in a correct implementation, per
// spec.md §7.
func (t *Tree[K, V]) Validate() error {
	v := &validator[K, V]{t: t}
	if _, err := v.check(t.rootID, 0); err != nil {
		return err
	}

	id := t.rootID
	for {
		n := t.arena.get(id)
		if n.isLeaf() {
			break
		}
		id = n.branch.children[0]
	}
	if id != t.leftmostLeaf {
		return fmt.Errorf("bplustree: leftmost leaf pointer is %d, want %d", t.leftmostLeaf, id)
	}

	count := 0
	var prev NodeId = nilNode
	var lastKey K
	haveLast := false
	cur := t.leftmostLeaf
	for cur != nilNode {
		leaf := t.arena.get(cur).leaf
		if leaf.prev != prev {
			return fmt.Errorf("bplustree: leaf %d has prev=%d, want %d", cur, leaf.prev, prev)
		}
		for _, k := range leaf.keys {
			if haveLast && !(lastKey < k) {
				return fmt.Errorf("bplustree: sibling chain out of order at leaf %d", cur)
			}
			lastKey = k
			haveLast = true
			count++
		}
		prev = cur
		cur = leaf.next
	}
	if count != t.size {
		return fmt.Errorf("bplustree: size is %d, sibling chain has %d entries", t.size, count)
	}
	return nil
}

type validator[K cmp.Ordered, V any] struct {
	t            *Tree[K, V]
	leafDepth    int
	leafDepthSet bool
}

// check recursively verifies node id at the given depth and returns the
// minimum key of its subtree (used by the caller to verify the
// leftmost-of-right-subtree separator rule).
func (v *validator[K, V]) check(id NodeId, depth int) (minKey K, err error) {
	n := v.t.arena.get(id)

	if n.isLeaf() {
		if !v.leafDepthSet {
			v.leafDepth = depth
			v.leafDepthSet = true
		} else if depth != v.leafDepth {
			return minKey, fmt.Errorf("bplustree: leaf %d at depth %d, want %d", id, depth, v.leafDepth)
		}
		keys := n.leaf.keys
		for i := 1; i < len(keys); i++ {
			if !(keys[i-1] < keys[i]) {
				return minKey, fmt.Errorf("bplustree: leaf %d keys not strictly increasing", id)
			}
		}
		if id != v.t.rootID && len(keys) < v.t.minOccupancy() {
			return minKey, fmt.Errorf("bplustree: leaf %d underflows with %d entries", id, len(keys))
		}
		if len(keys) > v.t.branching {
			return minKey, fmt.Errorf("bplustree: leaf %d overflows with %d entries", id, len(keys))
		}
		if len(keys) > 0 {
			minKey = keys[0]
		}
		return minKey, nil
	}

	b := n.branch
	for i := 1; i < len(b.keys); i++ {
		if !(b.keys[i-1] < b.keys[i]) {
			return minKey, fmt.Errorf("bplustree: branch %d separators not strictly increasing", id)
		}
	}
	if id != v.t.rootID && len(b.keys) < v.t.minOccupancy() {
		return minKey, fmt.Errorf("bplustree: branch %d underflows with %d separators", id, len(b.keys))
	}
	if len(b.keys) > v.t.branching {
		return minKey, fmt.Errorf("bplustree: branch %d overflows with %d separators", id, len(b.keys))
	}
	if len(b.children) != len(b.keys)+1 {
		return minKey, fmt.Errorf("bplustree: branch %d has %d children for %d separators", id, len(b.children), len(b.keys))
	}

	for i, child := range b.children {
		childMin, err := v.check(child, depth+1)
		if err != nil {
			return minKey, err
		}
		if i == 0 {
			minKey = childMin
		} else if want := b.keys[i-1]; childMin != want {
			return minKey, fmt.Errorf("bplustree: branch %d separator %d is %v, want %v (leftmost key of child %d)", id, i-1, want, childMin, i)
		}
	}
	return minKey, nil
}

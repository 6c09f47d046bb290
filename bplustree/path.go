package bplustree

// pathEntry is one (node, child-slot) pair recorded by locate: nodeID is a
// branch visited on the way down, childSlot is the index of the child that
// was descended into. The mutation engine walks this stack upward during
// split propagation and rebalancing instead of following parent pointers
// (spec.md §9: "the search path records parent ids explicitly so no
// persistent parent pointer is needed").
type pathEntry struct {
	nodeID    NodeId
	childSlot int
}

// locate descends from the root to the leaf that contains (or would
// contain) key, recording the path taken. Root-first, leaf-parent last;
// empty if the tree has no branches (root is itself a leaf).
func (t *Tree[K, V]) locate(key K) (leafID NodeId, path []pathEntry) {
	id := t.rootID
	for {
		n := t.arena.get(id)
		if n.isLeaf() {
			return id, path
		}
		slot := n.branch.childSlot(key)
		path = append(path, pathEntry{nodeID: id, childSlot: slot})
		id = n.branch.children[slot]
	}
}

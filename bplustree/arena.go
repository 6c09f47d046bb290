package bplustree

import "cmp"

// arena owns all node storage for a tree and hands out stable NodeIds.
// Modelled on the stock-of-values pattern used for arena-style storage in
// this corpus (a growable slice of values plus a free list of reusable
// indices): New()/Get()/Set()/Delete() over an opaque index type. Unlike
// that pattern's persisted variant, this arena never touches disk — it is
// pure in-memory bookkeeping, matching spec.md's non-goals.
type arena[K cmp.Ordered, V any] struct {
	nodes    []*node[K, V]
	freeList []NodeId
}

func newArena[K cmp.Ordered, V any]() *arena[K, V] {
	return &arena[K, V]{
		// index 0 is reserved for nilNode and never handed out.
		nodes: make([]*node[K, V], 1, 16),
	}
}

func (a *arena[K, V]) allocateLeaf() NodeId {
	return a.put(newLeafNode[K, V]())
}

func (a *arena[K, V]) allocateBranch() NodeId {
	return a.put(newBranchNode[K, V]())
}

func (a *arena[K, V]) put(n *node[K, V]) NodeId {
	if len(a.freeList) > 0 {
		id := a.freeList[len(a.freeList)-1]
		a.freeList = a.freeList[:len(a.freeList)-1]
		a.nodes[id] = n
		return id
	}
	a.nodes = append(a.nodes, n)
	return NodeId(len(a.nodes) - 1)
}

// free marks id reusable. Accessing a freed id afterwards is a programming
// error the engine must never commit; the arena does not guard against it
// beyond nilling the slot, since that is strictly cheaper than tracking
// generation counters for a contract the engine itself never violates.
func (a *arena[K, V]) free(id NodeId) {
	a.nodes[id] = nil
	a.freeList = append(a.freeList, id)
}

func (a *arena[K, V]) get(id NodeId) *node[K, V] {
	return a.nodes[id]
}

// getMut returns a mutable node handle. The engine never holds two mutable
// handles to the same id at once; when it must touch two nodes
// simultaneously (borrow/merge) it fetches them by their (necessarily
// disjoint) ids one at a time.
func (a *arena[K, V]) getMut(id NodeId) *node[K, V] {
	return a.nodes[id]
}

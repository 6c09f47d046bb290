package bplustree

import "cmp"

type boundKind uint8

const (
	boundNone boundKind = iota
	boundInclusive
	boundExclusive
)

// Bound describes one end of a range query: unbounded, or a key together
// with whether that key itself is included.
type Bound[K cmp.Ordered] struct {
	key  K
	kind boundKind
}

// Unbounded returns a Bound that imposes no constraint on that end of a
// range.
func Unbounded[K cmp.Ordered]() Bound[K] {
	return Bound[K]{kind: boundNone}
}

// Inclusive returns a Bound that includes key itself.
func Inclusive[K cmp.Ordered](key K) Bound[K] {
	return Bound[K]{key: key, kind: boundInclusive}
}

// Exclusive returns a Bound that excludes key itself.
func Exclusive[K cmp.Ordered](key K) Bound[K] {
	return Bound[K]{key: key, kind: boundExclusive}
}

// Iterator walks the leaf sibling chain in ascending or descending key
// order, optionally bounded above by an end predicate. It is positioned
// at a (leaf, index-within-leaf) pair, per spec.md §4.5.
//
// An Iterator is live only while the tree it was created from is not
// mutated. It snapshots the tree's mutation epoch at creation and
// rechecks it on every Next call; a mismatch surfaces as ErrInvalidated
// rather than undefined behaviour (spec.md §4.5, §9). This detection is
// best-effort: the underlying contract is simply "do not mutate while an
// iterator is live".
type Iterator[K cmp.Ordered, V any] struct {
	tree    *Tree[K, V]
	epoch   uint64
	leafID  NodeId
	idx     int
	reverse bool
	upper   Bound[K]
}

// Iterate returns a forward iterator over every entry in ascending key
// order.
func (t *Tree[K, V]) Iterate() *Iterator[K, V] {
	return &Iterator[K, V]{tree: t, epoch: t.epoch, leafID: t.leftmostLeaf, idx: 0, upper: Unbounded[K]()}
}

// IterateReverse returns an iterator over every entry in descending key
// order.
func (t *Tree[K, V]) IterateReverse() *Iterator[K, V] {
	leafID, idx := t.rightmostPosition()
	return &Iterator[K, V]{tree: t, epoch: t.epoch, leafID: leafID, idx: idx, reverse: true}
}

// RangeQuery returns a forward iterator over entries whose keys satisfy
// both bounds. Unbounded() on either end means that side is unconstrained.
func (t *Tree[K, V]) RangeQuery(lower, upper Bound[K]) *Iterator[K, V] {
	leafID, idx := t.seekLower(lower)
	return &Iterator[K, V]{tree: t, epoch: t.epoch, leafID: leafID, idx: idx, upper: upper}
}

// Range returns entries with keys in [start, end).
func (t *Tree[K, V]) Range(start, end K) *Iterator[K, V] {
	return t.RangeQuery(Inclusive(start), Exclusive(end))
}

// RangeClosed returns entries with keys in [start, end].
func (t *Tree[K, V]) RangeClosed(start, end K) *Iterator[K, V] {
	return t.RangeQuery(Inclusive(start), Inclusive(end))
}

// RangeOpen returns entries with keys in (start, end).
func (t *Tree[K, V]) RangeOpen(start, end K) *Iterator[K, V] {
	return t.RangeQuery(Exclusive(start), Exclusive(end))
}

// RangeFrom returns entries with keys in [start, +inf).
func (t *Tree[K, V]) RangeFrom(start K) *Iterator[K, V] {
	return t.RangeQuery(Inclusive(start), Unbounded[K]())
}

// RangeTo returns entries with keys in (-inf, end).
func (t *Tree[K, V]) RangeTo(end K) *Iterator[K, V] {
	return t.RangeQuery(Unbounded[K](), Exclusive(end))
}

// seekLower finds the (leaf, index) of the first entry satisfying lower.
func (t *Tree[K, V]) seekLower(lower Bound[K]) (NodeId, int) {
	if lower.kind == boundNone {
		return t.leftmostLeaf, 0
	}
	leafID, _ := t.locate(lower.key)
	leaf := t.arena.get(leafID).leaf
	idx, found := leaf.findKey(lower.key)
	if found && lower.kind == boundExclusive {
		idx++
	}
	return leafID, idx
}

// rightmostPosition descends via the last child at every branch level to
// find the rightmost leaf and its last valid index.
func (t *Tree[K, V]) rightmostPosition() (NodeId, int) {
	id := t.rootID
	for {
		n := t.arena.get(id)
		if n.isLeaf() {
			return id, len(n.leaf.keys) - 1
		}
		id = n.branch.children[len(n.branch.children)-1]
	}
}

// Next advances the iterator and returns the next entry. ok is false once
// the iteration is exhausted (a normal, non-error end). err is
// ErrInvalidated if the tree was mutated since the iterator was created or
// since the previous Next call.
func (it *Iterator[K, V]) Next() (entry Entry[K, V], ok bool, err error) {
	if it.tree.epoch != it.epoch {
		return entry, false, ErrInvalidated
	}

	for it.leafID != nilNode {
		leaf := it.tree.arena.get(it.leafID).leaf
		if it.reverse {
			if it.idx < 0 {
				next := leaf.prev
				it.leafID = next
				if next != nilNode {
					it.idx = len(it.tree.arena.get(next).leaf.keys) - 1
				}
				continue
			}
		} else if it.idx >= len(leaf.keys) {
			it.leafID = leaf.next
			it.idx = 0
			continue
		}
		break
	}

	if it.leafID == nilNode {
		return entry, false, nil
	}

	leaf := it.tree.arena.get(it.leafID).leaf
	key := leaf.keys[it.idx]

	if !it.reverse {
		switch it.upper.kind {
		case boundInclusive:
			if key > it.upper.key {
				it.leafID = nilNode
				return entry, false, nil
			}
		case boundExclusive:
			if key >= it.upper.key {
				it.leafID = nilNode
				return entry, false, nil
			}
		}
	}

	entry = Entry[K, V]{Key: key, Value: leaf.values[it.idx]}
	if it.reverse {
		it.idx--
	} else {
		it.idx++
	}
	return entry, true, nil
}

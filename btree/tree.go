package btree

import (
	"cmp"
)

// Tree is an order-m B-tree or B+tree over keys of type K.
//
// The zero value is not usable; create trees with New or NewOrdered.
type Tree[K any] struct {
	cfg    Config[K]
	nodes  *arena[K]
	root   nodeID
	height int // number of node levels; a leaf root has height 1
	length int
}

// New creates an empty tree with validated configuration.
func New[K any](cfg Config[K]) (*Tree[K], error) {
	cfg = cfg.normalized()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	t := &Tree[K]{cfg: cfg}
	t.Clear()
	return t, nil
}

// NewOrdered creates an empty tree for keys with a natural order.
// An order of 0 selects DefaultOrder.
func NewOrdered[K cmp.Ordered](order int, variant Variant) (*Tree[K], error) {
	return New(Config[K]{
		Order:   order,
		Compare: Ordered[K](),
		Variant: variant,
	})
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[K]) Config() Config[K] {
	return t.cfg
}

// Order returns the maximum number of keys of a node.
func (t *Tree[K]) Order() int {
	return t.cfg.Order
}

// Variant returns the tree flavour.
func (t *Tree[K]) Variant() Variant {
	return t.cfg.Variant
}

// Clear removes all keys from the tree.
func (t *Tree[K]) Clear() {
	t.nodes = newArena[K](t.cfg.Order)
	t.root = t.newLeaf()
	t.height = 1
	t.length = 0
}

// IsEmpty reports whether the tree has no keys.
func (t *Tree[K]) IsEmpty() bool {
	return t == nil || t.length == 0
}

// Len returns the number of keys in the tree, counting duplicates.
func (t *Tree[K]) Len() int {
	if t == nil {
		return 0
	}
	return t.length
}

// Height returns the number of node levels, where 0 means empty and 1 means
// all keys live in the root leaf.
func (t *Tree[K]) Height() int {
	if t.IsEmpty() {
		return 0
	}
	return t.height
}

func (t *Tree[K]) linked() bool {
	return t.cfg.Variant == Linked
}

func (t *Tree[K]) compare(a, b K) int {
	return t.cfg.Compare(a, b)
}

// --- Lookup ----------------------------------------------------------------

// Position denotes the location of a key inside the tree. A position is
// invalidated by any mutation of the tree.
type Position[K any] struct {
	node  nodeID
	index int
	key   K
	leaf  bool
}

// Key returns the key stored at the position.
func (p Position[K]) Key() K { return p.key }

// Index returns the slot of the key within its node.
func (p Position[K]) Index() int { return p.index }

// IsLeaf reports whether the key is stored in a leaf node.
func (p Position[K]) IsLeaf() bool { return p.leaf }

// Find locates the leftmost occurrence of key.
func (t *Tree[K]) Find(key K) (Position[K], bool) {
	id, i, ok := t.find(key)
	if !ok {
		return Position[K]{}, false
	}
	n := t.node(id)
	return Position[K]{node: id, index: i, key: n.keys[i], leaf: n.isLeaf()}, true
}

// Contains reports whether at least one occurrence of key is stored.
func (t *Tree[K]) Contains(key K) bool {
	_, _, ok := t.find(key)
	return ok
}

// Min returns the smallest key.
func (t *Tree[K]) Min() (K, bool) {
	var zero K
	if t.IsEmpty() {
		return zero, false
	}
	return t.node(t.leftmostLeaf(t.root)).keys[0], true
}

// Max returns the largest key.
func (t *Tree[K]) Max() (K, bool) {
	var zero K
	if t.IsEmpty() {
		return zero, false
	}
	keys := t.node(t.rightmostLeaf(t.root)).keys
	return keys[len(keys)-1], true
}

func (t *Tree[K]) find(key K) (nodeID, int, bool) {
	id, i := t.lowerBound(key)
	if id == nilNode {
		return nilNode, 0, false
	}
	if t.compare(t.node(id).keys[i], key) != 0 {
		return nilNode, 0, false
	}
	return id, i, true
}

// lowerBound returns the position of the first key not less than key, or
// nilNode if all keys are less than key.
//
// Both variants descend with bisect-left. In a classic tree every separator
// passed on the way down is a candidate, as it follows its left subtree in
// order. In a linked tree the answer is either in the leaf reached or it is
// the first key of the next leaf on the chain.
func (t *Tree[K]) lowerBound(key K) (nodeID, int) {
	candidate, candidateIx := nilNode, 0
	id := t.root
	for {
		n := t.node(id)
		i := bisectLeft(n.keys, key, t.cfg.Compare)
		if n.isLeaf() {
			if i < len(n.keys) {
				return id, i
			}
			if t.linked() {
				return n.next, 0
			}
			return candidate, candidateIx
		}
		if !t.linked() && i < len(n.keys) {
			candidate, candidateIx = id, i
		}
		id = n.children[i]
	}
}

// leafForInsert descends to the leaf where key has to be inserted and returns
// the insertion slot.
//
// Classic trees route with bisect-left, so duplicates accumulate to the left
// of equal separators. Linked trees route with bisect-right at internal nodes,
// as a separator is a copy of the first key of its right subtree.
func (t *Tree[K]) leafForInsert(key K) (nodeID, int) {
	id := t.root
	for {
		n := t.node(id)
		if n.isLeaf() {
			return id, bisectLeft(n.keys, key, t.cfg.Compare)
		}
		var i int
		if t.linked() {
			i = bisectRight(n.keys, key, t.cfg.Compare)
		} else {
			i = bisectLeft(n.keys, key, t.cfg.Compare)
		}
		id = n.children[i]
	}
}

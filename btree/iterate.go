package btree

import "iter"

// All returns the keys in ascending order.
//
// The sequence is lazy and restartable: every range over it walks the tree
// afresh. Linked trees walk the leaf chain, classic trees walk recursively.
func (t *Tree[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		t.ForEach(yield)
	}
}

// Backward returns the keys in descending order.
func (t *Tree[K]) Backward() iter.Seq[K] {
	return func(yield func(K) bool) {
		if t.IsEmpty() {
			return
		}
		if t.linked() {
			for id := t.rightmostLeaf(t.root); id != nilNode; id = t.node(id).prev {
				keys := t.node(id).keys
				for i := len(keys) - 1; i >= 0; i-- {
					if !yield(keys[i]) {
						return
					}
				}
			}
			return
		}
		t.reverseNode(t.root, yield)
	}
}

// ForEach walks keys in-order.
//
// Iteration stops early if fn returns false.
func (t *Tree[K]) ForEach(fn func(key K) bool) {
	if t.IsEmpty() || fn == nil {
		return
	}
	if t.linked() {
		for id := t.leftmostLeaf(t.root); id != nilNode; id = t.node(id).next {
			for _, key := range t.node(id).keys {
				if !fn(key) {
					return
				}
			}
		}
		return
	}
	t.forEachNode(t.root, fn)
}

func (t *Tree[K]) forEachNode(id nodeID, fn func(key K) bool) bool {
	n := t.node(id)
	if n.isLeaf() {
		for _, key := range n.keys {
			if !fn(key) {
				return false
			}
		}
		return true
	}
	for i, child := range n.children {
		if !t.forEachNode(child, fn) {
			return false
		}
		if i < len(n.keys) && !fn(n.keys[i]) {
			return false
		}
	}
	return true
}

func (t *Tree[K]) reverseNode(id nodeID, fn func(key K) bool) bool {
	n := t.node(id)
	if n.isLeaf() {
		for i := len(n.keys) - 1; i >= 0; i-- {
			if !fn(n.keys[i]) {
				return false
			}
		}
		return true
	}
	for i := len(n.children) - 1; i >= 0; i-- {
		if !t.reverseNode(n.children[i], fn) {
			return false
		}
		if i > 0 && !fn(n.keys[i-1]) {
			return false
		}
	}
	return true
}

// Keys returns all keys in ascending order.
func (t *Tree[K]) Keys() []K {
	keys := make([]K, 0, t.Len())
	t.ForEach(func(key K) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Range returns the keys k with from <= k < to in ascending order.
func (t *Tree[K]) Range(from, to K) iter.Seq[K] {
	return func(yield func(K) bool) {
		c := t.Cursor()
		for ok := c.Seek(from); ok; ok = c.Next() {
			key := c.Key()
			if t.compare(key, to) >= 0 || !yield(key) {
				return
			}
		}
	}
}

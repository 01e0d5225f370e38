package btree

import "fmt"

// Delete removes one occurrence of key and returns the key as it was stored.
//
// If key is not present, Delete returns ErrKeyNotFound and leaves the tree
// unchanged.
func (t *Tree[K]) Delete(key K) (K, error) {
	id, i, ok := t.find(key)
	if !ok {
		var zero K
		return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	n := t.node(id)
	removed := n.keys[i]
	if !n.isLeaf() {
		// Only classic trees find keys in internal nodes. The in-order
		// successor replaces the key and is removed from its leaf instead.
		succ := t.leftmostLeaf(n.children[i+1])
		n.keys[i] = t.node(succ).keys[0]
		id, i = succ, 0
	}
	leaf := t.node(id)
	leaf.keys, _ = removeAt(leaf.keys, i)
	t.length--
	t.rebalance(id)
	return removed, nil
}

// rebalance restores minimum occupancy, starting at node id and moving
// upward for as long as merges leave parents underfull.
func (t *Tree[K]) rebalance(id nodeID) {
	for {
		if id == t.root {
			t.collapseRoot()
			return
		}
		if !t.underflow(id) {
			return
		}
		parent := t.node(id).parent
		assert(parent != nilNode, "rebalance: non-root node without parent")
		ci := t.childIndex(parent, id)
		left, right := t.siblings(parent, ci)
		switch {
		case t.canLend(left):
			t.transferFromLeft(parent, ci)
			return
		case t.canLend(right):
			t.transferFromRight(parent, ci)
			return
		case left != nilNode:
			t.merge(parent, ci-1)
		default:
			assert(right != nilNode, "rebalance: underflowing node has no siblings")
			t.merge(parent, ci)
		}
		id = parent
	}
}

// collapseRoot replaces an internal root without keys by its only child.
func (t *Tree[K]) collapseRoot() {
	r := t.node(t.root)
	if r.isLeaf() || len(r.keys) > 0 {
		return
	}
	assert(len(r.children) == 1, "collapseRoot: empty root with more than one child")
	child := r.children[0]
	t.nodes.release(t.root)
	t.root = child
	t.node(child).parent = nilNode
	t.height--
	tracer().Debugf("btree: collapsed root, height is now %d", t.height)
}

// transferFromLeft moves one key from the left sibling into the child at
// slot ci of parent.
func (t *Tree[K]) transferFromLeft(parent nodeID, ci int) {
	p := t.node(parent)
	nid, lid := p.children[ci], p.children[ci-1]
	n, l := t.node(nid), t.node(lid)
	var k K
	l.keys, k = pop(l.keys)
	if n.isLeaf() && t.linked() {
		n.keys = insertAt(n.keys, 0, k)
		p.keys[ci-1] = n.keys[0]
		tracer().Debugf("btree: leaf %d borrowed from left leaf %d", nid, lid)
		return
	}
	n.keys = insertAt(n.keys, 0, p.keys[ci-1])
	p.keys[ci-1] = k
	if !n.isLeaf() {
		var c nodeID
		l.children, c = pop(l.children)
		n.children = insertAt(n.children, 0, c)
		t.node(c).parent = nid
	}
	tracer().Debugf("btree: node %d rotated a key from left sibling %d", nid, lid)
}

// transferFromRight moves one key from the right sibling into the child at
// slot ci of parent.
func (t *Tree[K]) transferFromRight(parent nodeID, ci int) {
	p := t.node(parent)
	nid, rid := p.children[ci], p.children[ci+1]
	n, r := t.node(nid), t.node(rid)
	var k K
	r.keys, k = removeAt(r.keys, 0)
	if n.isLeaf() && t.linked() {
		n.keys = append(n.keys, k)
		p.keys[ci] = r.keys[0]
		tracer().Debugf("btree: leaf %d borrowed from right leaf %d", nid, rid)
		return
	}
	n.keys = append(n.keys, p.keys[ci])
	p.keys[ci] = k
	if !n.isLeaf() {
		var c nodeID
		r.children, c = removeAt(r.children, 0)
		n.children = append(n.children, c)
		t.node(c).parent = nid
	}
	tracer().Debugf("btree: node %d rotated a key from right sibling %d", nid, rid)
}

// merge folds the child at slot i+1 of parent into the child at slot i and
// removes the separator between them from parent.
//
// Internal nodes and classic leaves absorb the separator. Linked leaves drop
// it, as it is a copy of a leaf key, and the leaf chain is spliced around the
// removed leaf.
func (t *Tree[K]) merge(parent nodeID, i int) {
	p := t.node(parent)
	lid, rid := p.children[i], p.children[i+1]
	l, r := t.node(lid), t.node(rid)
	linkedLeaves := l.isLeaf() && t.linked()
	if !linkedLeaves {
		l.keys = append(l.keys, p.keys[i])
	}
	l.keys = append(l.keys, r.keys...)
	if !l.isLeaf() {
		l.children = append(l.children, r.children...)
		t.adopt(lid, r.children...)
	}
	if linkedLeaves {
		l.next = r.next
		if r.next != nilNode {
			t.node(r.next).prev = lid
		}
	}
	p.keys, _ = removeAt(p.keys, i)
	p.children, _ = removeAt(p.children, i+1)
	t.nodes.release(rid)
	tracer().Debugf("btree: merged node %d into node %d", rid, lid)
}

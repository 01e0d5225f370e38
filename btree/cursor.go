package btree

// Cursor is a movable position over the keys of a tree, in key order.
//
// In linked trees the cursor steps along the leaf chain. In classic trees it
// climbs parent handles to find the next separator. Any mutation of the tree
// invalidates all of its cursors.
type Cursor[K any] struct {
	tree  *Tree[K]
	node  nodeID
	index int
}

// Cursor returns an unpositioned cursor for t.
func (t *Tree[K]) Cursor() *Cursor[K] {
	return &Cursor[K]{tree: t}
}

// CursorAt returns a cursor positioned at p, as returned by Find.
func (t *Tree[K]) CursorAt(p Position[K]) *Cursor[K] {
	return &Cursor[K]{tree: t, node: p.node, index: p.index}
}

// Valid reports whether the cursor is positioned on a key.
func (c *Cursor[K]) Valid() bool {
	return c != nil && c.node != nilNode
}

// Key returns the key under the cursor. It panics for an invalid cursor.
func (c *Cursor[K]) Key() K {
	assert(c.Valid(), "Key called on invalid cursor")
	return c.tree.node(c.node).keys[c.index]
}

// First positions the cursor at the smallest key.
func (c *Cursor[K]) First() bool {
	c.node = nilNode
	if c.tree.IsEmpty() {
		return false
	}
	c.node, c.index = c.tree.leftmostLeaf(c.tree.root), 0
	return true
}

// Last positions the cursor at the largest key.
func (c *Cursor[K]) Last() bool {
	c.node = nilNode
	if c.tree.IsEmpty() {
		return false
	}
	c.node = c.tree.rightmostLeaf(c.tree.root)
	c.index = len(c.tree.node(c.node).keys) - 1
	return true
}

// Seek positions the cursor at the first key not less than key. It returns
// false if there is no such key.
func (c *Cursor[K]) Seek(key K) bool {
	c.node, c.index = c.tree.lowerBound(key)
	return c.node != nilNode
}

// Next advances the cursor to the next key in order.
func (c *Cursor[K]) Next() bool {
	if !c.Valid() {
		return false
	}
	t := c.tree
	n := t.node(c.node)
	if !n.isLeaf() {
		c.node, c.index = t.leftmostLeaf(n.children[c.index+1]), 0
		return true
	}
	if c.index+1 < len(n.keys) {
		c.index++
		return true
	}
	if t.linked() {
		c.node, c.index = n.next, 0
		return c.node != nilNode
	}
	child := c.node
	for p := n.parent; p != nilNode; p = t.node(p).parent {
		if ci := t.childIndex(p, child); ci < len(t.node(p).keys) {
			c.node, c.index = p, ci
			return true
		}
		child = p
	}
	c.node = nilNode
	return false
}

// Prev moves the cursor to the previous key in order.
func (c *Cursor[K]) Prev() bool {
	if !c.Valid() {
		return false
	}
	t := c.tree
	n := t.node(c.node)
	if !n.isLeaf() {
		c.node = t.rightmostLeaf(n.children[c.index])
		c.index = len(t.node(c.node).keys) - 1
		return true
	}
	if c.index > 0 {
		c.index--
		return true
	}
	if t.linked() {
		c.node = n.prev
		if c.node == nilNode {
			return false
		}
		c.index = len(t.node(c.node).keys) - 1
		return true
	}
	child := c.node
	for p := n.parent; p != nilNode; p = t.node(p).parent {
		if ci := t.childIndex(p, child); ci > 0 {
			c.node, c.index = p, ci-1
			return true
		}
		child = p
	}
	c.node = nilNode
	return false
}

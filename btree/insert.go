package btree

// Insert adds keys to the tree, one after the other.
//
// The tree has multiset semantics: a key already present is stored again.
// Clients needing set semantics should use InsertUnique.
func (t *Tree[K]) Insert(keys ...K) {
	for _, key := range keys {
		t.insertOne(key)
	}
}

// InsertUnique adds key if no equal key is stored and reports whether it did.
func (t *Tree[K]) InsertUnique(key K) bool {
	if t.Contains(key) {
		return false
	}
	t.insertOne(key)
	return true
}

func (t *Tree[K]) insertOne(key K) {
	id, i := t.leafForInsert(key)
	leaf := t.node(id)
	leaf.keys = insertAt(leaf.keys, i, key)
	t.length++
	if t.isFull(id) {
		t.splitUpward(id)
	}
}

// splitUpward splits a full node and continues with its parent as long as the
// parent fills up by absorbing the promoted key. Splitting the root grows the
// tree by one level.
func (t *Tree[K]) splitUpward(id nodeID) {
	for t.isFull(id) {
		promoted, right := t.split(id)
		parent := t.node(id).parent
		if parent == nilNode {
			root := t.newInner()
			r := t.node(root)
			r.keys = append(r.keys, promoted)
			r.children = append(r.children, id, right)
			t.adopt(root, id, right)
			t.root = root
			t.height++
			tracer().Debugf("btree: new root, height is now %d", t.height)
			return
		}
		ci := t.childIndex(parent, id)
		p := t.node(parent)
		p.keys = insertAt(p.keys, ci, promoted)
		p.children = insertAt(p.children, ci+1, right)
		t.node(right).parent = parent
		id = parent
	}
}

// split divides a full node. The receiver keeps the lower half, the returned
// right sibling gets the upper half, and the separator for the parent is
// returned as promoted.
//
// With valueIx = floor(m/2) and childIx = ceil((m+1)/2):
// keys [0,valueIx) stay, key valueIx is promoted, keys (valueIx,m) move right,
// children [childIx,m+1) move right. Leaves of linked trees keep key valueIx
// in the right leaf and promote a copy of it.
func (t *Tree[K]) split(id nodeID) (promoted K, right nodeID) {
	n := t.node(id)
	assert(len(n.keys) == t.cfg.Order, ErrCapacityExceeded.Error())
	valueIx := t.cfg.Order / 2
	if n.isLeaf() && t.linked() {
		return t.splitLinkedLeaf(id, valueIx)
	}
	if n.isLeaf() {
		right = t.newLeaf()
	} else {
		right = t.newInner()
	}
	r := t.node(right)
	promoted = n.keys[valueIx]
	r.keys = append(r.keys, n.keys[valueIx+1:]...)
	n.keys = truncate(n.keys, valueIx)
	if !n.isLeaf() {
		childIx := (t.cfg.Order + 2) / 2
		r.children = append(r.children, n.children[childIx:]...)
		n.children = truncate(n.children, childIx)
		t.adopt(right, r.children...)
	}
	r.parent = n.parent
	tracer().Debugf("btree: split node %d, promoted separator, right sibling is %d", id, right)
	return promoted, right
}

func (t *Tree[K]) splitLinkedLeaf(id nodeID, valueIx int) (K, nodeID) {
	right := t.newLeaf()
	n, r := t.node(id), t.node(right)
	r.keys = append(r.keys, n.keys[valueIx:]...)
	n.keys = truncate(n.keys, valueIx)
	r.parent = n.parent
	r.next = n.next
	if n.next != nilNode {
		t.node(n.next).prev = right
	}
	r.prev = id
	n.next = right
	tracer().Debugf("btree: split leaf %d, copied separator up, right leaf is %d", id, right)
	return r.keys[0], right
}

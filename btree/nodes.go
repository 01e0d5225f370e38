package btree

// nodeID is a handle into the node arena. The zero value is the nil handle.
type nodeID int32

const nilNode nodeID = 0

type nodeKind uint8

const (
	leafKind nodeKind = iota
	innerKind
)

// node is the single record type for leaves and internal nodes.
//
// For internal nodes len(children) == len(keys)+1. For leaves children is
// empty, and prev/next link adjacent leaves (maintained for linked trees only).
// parent, prev and next never own the node they refer to.
type node[K any] struct {
	kind     nodeKind
	keys     []K
	children []nodeID
	parent   nodeID
	prev     nodeID
	next     nodeID
}

func (n *node[K]) isLeaf() bool { return n.kind == leafKind }

func (n *node[K]) reset(kind nodeKind) {
	clear(n.keys)
	n.keys = n.keys[:0]
	n.children = n.children[:0]
	n.kind = kind
	n.parent, n.prev, n.next = nilNode, nilNode, nilNode
}

// arena maps handles to nodes. Released nodes are kept on a free list and
// recycled by later allocations, together with their key buffers.
type arena[K any] struct {
	nodes    []*node[K] // nodes[0] is never used
	freeIDs  []nodeID
	live     int
	capacity int // key capacity for fresh nodes
}

func newArena[K any](order int) *arena[K] {
	return &arena[K]{
		nodes:    make([]*node[K], 1, 16),
		capacity: order + 1,
	}
}

func (a *arena[K]) alloc(kind nodeKind) nodeID {
	a.live++
	if l := len(a.freeIDs); l > 0 {
		id := a.freeIDs[l-1]
		a.freeIDs = a.freeIDs[:l-1]
		a.nodes[id].reset(kind)
		return id
	}
	n := &node[K]{
		kind: kind,
		keys: make([]K, 0, a.capacity),
	}
	a.nodes = append(a.nodes, n)
	return nodeID(len(a.nodes) - 1)
}

func (a *arena[K]) release(id nodeID) {
	assert(id != nilNode, "arena cannot release the nil handle")
	a.nodes[id].reset(leafKind)
	a.freeIDs = append(a.freeIDs, id)
	a.live--
}

func (a *arena[K]) at(id nodeID) *node[K] {
	assert(id != nilNode, "arena access through nil handle")
	return a.nodes[id]
}

// --- Tree-level node helpers -----------------------------------------------

func (t *Tree[K]) node(id nodeID) *node[K] {
	return t.nodes.at(id)
}

func (t *Tree[K]) newLeaf() nodeID {
	return t.nodes.alloc(leafKind)
}

func (t *Tree[K]) newInner() nodeID {
	id := t.nodes.alloc(innerKind)
	n := t.node(id)
	if n.children == nil {
		n.children = make([]nodeID, 0, t.cfg.Order+2)
	}
	return id
}

func (t *Tree[K]) isFull(id nodeID) bool {
	return len(t.node(id).keys) >= t.cfg.Order
}

func (t *Tree[K]) minKeys(id nodeID) int {
	if t.node(id).isLeaf() {
		return t.cfg.minLeafKeys()
	}
	return t.cfg.minInnerKeys()
}

func (t *Tree[K]) underflow(id nodeID) bool {
	return len(t.node(id).keys) < t.minKeys(id)
}

// canLend reports whether a node may give away one key without underflow.
func (t *Tree[K]) canLend(id nodeID) bool {
	return id != nilNode && len(t.node(id).keys) > t.minKeys(id)
}

// childIndex finds the slot of child in its parent's children.
func (t *Tree[K]) childIndex(parent, child nodeID) int {
	for i, c := range t.node(parent).children {
		if c == child {
			return i
		}
	}
	assert(false, "node not found among the children of its parent")
	return -1
}

// siblings returns the immediate left and right siblings of the child at
// slot ci of parent. Missing siblings are returned as nilNode.
func (t *Tree[K]) siblings(parent nodeID, ci int) (left, right nodeID) {
	children := t.node(parent).children
	if ci > 0 {
		left = children[ci-1]
	}
	if ci+1 < len(children) {
		right = children[ci+1]
	}
	return
}

func (t *Tree[K]) leftmostLeaf(id nodeID) nodeID {
	for n := t.node(id); !n.isLeaf(); n = t.node(id) {
		id = n.children[0]
	}
	return id
}

func (t *Tree[K]) rightmostLeaf(id nodeID) nodeID {
	for n := t.node(id); !n.isLeaf(); n = t.node(id) {
		id = n.children[len(n.children)-1]
	}
	return id
}

func (t *Tree[K]) adopt(parent nodeID, children ...nodeID) {
	for _, c := range children {
		t.node(c).parent = parent
	}
}

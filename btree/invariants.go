package btree

import "fmt"

// Check validates structural tree invariants.
//
// It is intended for tests and debugging and walks the whole tree. Any
// violation is reported as an error wrapping ErrInvalidTree.
func (t *Tree[K]) Check() error {
	if t == nil || t.nodes == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidTree)
	}
	if t.root == nilNode {
		return fmt.Errorf("%w: tree has no root", ErrInvalidTree)
	}
	if p := t.node(t.root).parent; p != nilNode {
		return fmt.Errorf("%w: root %d has parent %d", ErrInvalidTree, t.root, p)
	}
	var leaves []nodeID
	info, err := t.checkNode(t.root, &leaves)
	if err != nil {
		return err
	}
	if info.height != t.height {
		return fmt.Errorf("%w: height mismatch (%d != %d)", ErrInvalidTree, info.height, t.height)
	}
	if info.keys != t.length {
		return fmt.Errorf("%w: key count mismatch (%d != %d)", ErrInvalidTree, info.keys, t.length)
	}
	if info.nodes != t.nodes.live {
		return fmt.Errorf("%w: %d nodes reachable, %d allocated", ErrInvalidTree, info.nodes, t.nodes.live)
	}
	if t.linked() {
		return t.checkLeafChain(leaves)
	}
	return nil
}

type subtreeInfo[K any] struct {
	keys   int
	nodes  int
	height int
	lo, hi K
}

func (t *Tree[K]) checkNode(id nodeID, leaves *[]nodeID) (subtreeInfo[K], error) {
	var info subtreeInfo[K]
	n := t.node(id)
	isRoot := id == t.root
	if len(n.keys) >= t.cfg.Order {
		return info, fmt.Errorf("%w: node %d is overfull with %d keys", ErrInvalidTree, id, len(n.keys))
	}
	if !isRoot && len(n.keys) < t.minKeys(id) {
		return info, fmt.Errorf("%w: node %d underflows with %d keys, minimum is %d",
			ErrInvalidTree, id, len(n.keys), t.minKeys(id))
	}
	for i := 1; i < len(n.keys); i++ {
		if t.compare(n.keys[i-1], n.keys[i]) > 0 {
			return info, fmt.Errorf("%w: keys of node %d not sorted at %d", ErrInvalidTree, id, i)
		}
	}
	if n.isLeaf() {
		if len(n.children) != 0 {
			return info, fmt.Errorf("%w: leaf %d has children", ErrInvalidTree, id)
		}
		*leaves = append(*leaves, id)
		info.keys, info.nodes, info.height = len(n.keys), 1, 1
		if len(n.keys) > 0 {
			info.lo, info.hi = n.keys[0], n.keys[len(n.keys)-1]
		} else if !isRoot {
			return info, fmt.Errorf("%w: empty non-root leaf %d", ErrInvalidTree, id)
		}
		return info, nil
	}
	if len(n.keys) == 0 {
		return info, fmt.Errorf("%w: internal node %d has no keys", ErrInvalidTree, id)
	}
	if len(n.children) != len(n.keys)+1 {
		return info, fmt.Errorf("%w: internal node %d has %d keys and %d children",
			ErrInvalidTree, id, len(n.keys), len(n.children))
	}
	info.nodes = 1
	if !t.linked() {
		info.keys = len(n.keys)
	}
	for i, child := range n.children {
		if child == nilNode {
			return info, fmt.Errorf("%w: nil child at index %d of node %d", ErrInvalidTree, i, id)
		}
		if p := t.node(child).parent; p != id {
			return info, fmt.Errorf("%w: child %d of node %d points to parent %d", ErrInvalidTree, child, id, p)
		}
		c, err := t.checkNode(child, leaves)
		if err != nil {
			return info, err
		}
		if i > 0 && t.compare(c.lo, n.keys[i-1]) < 0 {
			return info, fmt.Errorf("%w: subtree %d holds keys below separator %d of node %d",
				ErrInvalidTree, child, i-1, id)
		}
		if i < len(n.keys) && t.compare(c.hi, n.keys[i]) > 0 {
			return info, fmt.Errorf("%w: subtree %d holds keys above separator %d of node %d",
				ErrInvalidTree, child, i, id)
		}
		if i == 0 {
			info.height, info.lo = c.height, c.lo
		} else if c.height != info.height {
			return info, fmt.Errorf("%w: non-uniform subtree heights below node %d", ErrInvalidTree, id)
		}
		info.hi = c.hi
		info.keys += c.keys
		info.nodes += c.nodes
	}
	if !t.linked() {
		if t.compare(n.keys[0], info.lo) < 0 {
			info.lo = n.keys[0]
		}
		if last := n.keys[len(n.keys)-1]; t.compare(last, info.hi) > 0 {
			info.hi = last
		}
	}
	info.height++
	return info, nil
}

// checkLeafChain verifies that the leaf links connect the leaves in key order,
// with nil handles at both ends.
func (t *Tree[K]) checkLeafChain(leaves []nodeID) error {
	for i, id := range leaves {
		n := t.node(id)
		var prev, next nodeID
		if i > 0 {
			prev = leaves[i-1]
		}
		if i+1 < len(leaves) {
			next = leaves[i+1]
		}
		if n.prev != prev || n.next != next {
			return fmt.Errorf("%w: leaf %d linked to (%d,%d), expected (%d,%d)",
				ErrInvalidTree, id, n.prev, n.next, prev, next)
		}
		if next != nilNode && len(n.keys) > 0 {
			if t.compare(n.keys[len(n.keys)-1], t.node(next).keys[0]) > 0 {
				return fmt.Errorf("%w: leaf chain out of order at leaf %d", ErrInvalidTree, id)
			}
		}
	}
	return nil
}

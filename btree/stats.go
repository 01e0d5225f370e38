package btree

// Stats summarizes the shape of a tree.
type Stats struct {
	Height int     // node levels, 0 for an empty tree
	Len    int     // number of keys, counting duplicates
	Nodes  int     // live nodes
	Leaves int     // leaf nodes
	Inner  int     // internal nodes
	Slots  int     // stored keys, internal routing copies included
	Fill   float64 // Slots relative to the capacity of all nodes
}

// Stats walks the tree and collects shape statistics.
func (t *Tree[K]) Stats() Stats {
	s := Stats{Height: t.Height(), Len: t.Len()}
	t.eachNode(t.root, 0, func(id nodeID, _ int) {
		n := t.node(id)
		s.Nodes++
		s.Slots += len(n.keys)
		if n.isLeaf() {
			s.Leaves++
		} else {
			s.Inner++
		}
	})
	if s.Nodes > 0 {
		s.Fill = float64(s.Slots) / float64(s.Nodes*(t.cfg.Order-1))
	}
	return s
}

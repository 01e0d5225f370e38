package btree

import (
	"fmt"
	"io"
	"strings"
)

// ToDot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Leaf links of linked trees are drawn as dashed
// edges.
func (t *Tree[K]) ToDot(w io.Writer) error {
	var nodelist, edgelist strings.Builder
	nodelist.WriteString("strict digraph {\n")
	nodelist.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	t.eachNode(t.root, 0, func(id nodeID, depth int) {
		n := t.node(id)
		fmt.Fprintf(&nodelist, "\t\"%d\" [label=\"%s\"%s];\n", id, dotLabel(n.keys), nodeDotStyles(n.isLeaf()))
		for _, c := range n.children {
			fmt.Fprintf(&edgelist, "\t\"%d\" -> \"%d\";\n", id, c)
		}
		if t.linked() && n.isLeaf() && n.next != nilNode {
			fmt.Fprintf(&edgelist, "\t\"%d\" -> \"%d\" [style=dashed,constraint=false];\n", id, n.next)
		}
	})
	edgelist.WriteString("}\n")
	if _, err := io.WriteString(w, nodelist.String()); err != nil {
		tracer().Errorf("tree DOT: %s", err.Error())
		return err
	}
	_, err := io.WriteString(w, edgelist.String())
	return err
}

// eachNode visits the nodes below id in pre-order.
func (t *Tree[K]) eachNode(id nodeID, depth int, visit func(id nodeID, depth int)) {
	visit(id, depth)
	for _, c := range t.node(id).children {
		t.eachNode(c, depth+1, visit)
	}
}

func dotLabel[K any](keys []K) string {
	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteString(" | ")
		}
		s := fmt.Sprintf("%v", k)
		s = strings.ReplaceAll(s, `"`, `\"`)
		b.WriteString(s)
	}
	return b.String()
}

func nodeDotStyles(isleaf bool) string {
	s := ",shape=box"
	if isleaf {
		s += ",style=filled,fillcolor=white"
	} else {
		s += ",style=\"rounded,filled\",color=black,fillcolor=\"#a3d7e4\""
	}
	return s
}

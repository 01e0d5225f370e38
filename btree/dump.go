package btree

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes an indented dump of the tree to w, one node per line,
// children indented below their parent.
//
//	[3]
//	  [1 2]
//	  [4]
func (t *Tree[K]) Fprint(w io.Writer) error {
	var b strings.Builder
	t.eachNode(t.root, 0, func(id nodeID, depth int) {
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(formatKeys(t.node(id).keys))
		b.WriteByte('\n')
	})
	_, err := io.WriteString(w, b.String())
	return err
}

// String returns the indented dump of the tree.
func (t *Tree[K]) String() string {
	var b strings.Builder
	_ = t.Fprint(&b)
	return b.String()
}

func formatKeys[K any](keys []K) string {
	return fmt.Sprint(keys)
}

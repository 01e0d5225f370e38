/*
Package btree provides an in-memory, order-m balanced multiway search tree.

Two variants share one implementation:

  - `Classic` is a textbook B-tree. Every key is stored exactly once and keys in
    internal nodes are part of the data.
  - `Linked` is a B+tree. All keys live in leaves, internal keys are routing
    copies, and leaves are chained in key order so range scans never touch
    internal nodes.

Keys are ordered by a client supplied `Comparator`. The tree never compares
keys by any other means. Duplicate keys are allowed (multiset semantics); every
call to `Delete` removes a single occurrence.

Node layout:

  - nodes are records in an arena and are referenced by small integer handles,
  - a node is tagged as leaf or internal, there are no node sub-types,
  - `children` is the only owning relation; `parent` and the leaf links
    `prev`/`next` are plain handles and never own anything.

Balancing:

  - a node holding `m` keys is split; the middle key moves up (internal nodes,
    classic leaves) or is copied up (linked leaves),
  - a non-root node falling below its minimum either borrows a key from a
    sibling (left sibling first) or is merged with one, and merges propagate
    toward the root,
  - an internal root without keys is collapsed into its only child.

The tree is not safe for concurrent use. Read-only traversals interleaved with
mutations are undefined.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package btree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bptree'
func tracer() tracing.Trace {
	return tracing.Select("bptree")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

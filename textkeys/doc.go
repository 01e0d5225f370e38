/*
Package textkeys turns text into keys for string trees.

Text is segmented with the Unicode line-breaking algorithm (UAX #14), and
every segment, stripped of surrounding spaces and punctuation, is a word. HTML
input is reduced to its text content first.

Large inputs may be fed to a tree asynchronously. A `Feed` reads words in
batches on a goroutine of its own and broadcasts each batch to all of its
subscribers:

	feed := textkeys.NewFeed(ctx)
	batches, _ := feed.Subscribe(4)
	feed.Start(r, 256)
	for batch := range batches {
	    tree.Insert(batch...)
	}

`Load` wraps this pattern for a single tree.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textkeys

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bptree'
func tracer() tracing.Trace {
	return tracing.Select("bptree")
}

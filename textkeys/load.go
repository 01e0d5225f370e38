package textkeys

import (
	"context"
	"io"

	"github.com/npillmayer/bptree/btree"
)

// Load reads the words of r into tree, using a Feed with batches of the given
// size. It returns the number of words inserted.
//
// If ctx is cancelled, Load returns early with the context's error and the
// tree holds the words inserted so far.
func Load(ctx context.Context, r io.Reader, tree *btree.Tree[string], batch int) (int, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	feed := NewFeed(ctx)
	batches, err := feed.Subscribe(2)
	if err != nil {
		if ctx.Err() != nil {
			return 0, ctx.Err()
		}
		return 0, err
	}
	if err := feed.Start(r, batch); err != nil {
		return 0, err
	}
	n := 0
	for words := range batches {
		if ctx.Err() != nil {
			break
		}
		tree.Insert(words...)
		n += len(words)
	}
	<-feed.Done()
	if err := ctx.Err(); err != nil {
		return n, err
	}
	return n, feed.Err()
}

// LoadHTML reads the words of the text content of an HTML fragment into tree.
func LoadHTML(r io.Reader, tree *btree.Tree[string]) (int, error) {
	words, err := WordsFromHTML(r)
	if err != nil {
		return 0, err
	}
	tree.Insert(words...)
	return len(words), nil
}

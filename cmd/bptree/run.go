package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/bptree/btree"
	"github.com/npillmayer/bptree/textkeys"
)

// run builds the tree for opts and prints it to out. Warnings go to errout.
func run(ctx context.Context, opts options, args []string, out, errout io.Writer) error {
	if opts.numeric {
		return runTree(ctx, opts, args, out, errout, btree.Ordered[int](), strconv.Atoi)
	}
	return runTree(ctx, opts, args, out, errout, btree.Ordered[string](), func(s string) (string, error) {
		return s, nil
	})
}

func runTree[K any](ctx context.Context, opts options, args []string, out, errout io.Writer,
	compare btree.Comparator[K], parse func(string) (K, error)) error {
	//
	tree, err := btree.New(btree.Config[K]{
		Order:   opts.order,
		Compare: compare,
		Variant: opts.variant,
	})
	if err != nil {
		return err
	}
	keys, err := parseKeys(args, parse)
	if err != nil {
		return err
	}
	tree.Insert(keys...)
	if opts.file != "" {
		if err := loadFile(ctx, opts.file, tree, parse); err != nil {
			return err
		}
	}
	warn := color.New(color.FgYellow)
	if !isTerminal(errout) {
		warn.DisableColor()
	}
	for _, s := range opts.deletes {
		k, err := parse(s)
		if err != nil {
			return err
		}
		if _, err := tree.Delete(k); err != nil {
			if !errors.Is(err, btree.ErrKeyNotFound) {
				return err
			}
			warn.Fprintf(errout, "warning: %v\n", err)
		}
	}
	tracer().Infof("tree holds %d keys in %d levels", tree.Len(), tree.Height())
	if opts.check {
		if err := tree.Check(); err != nil {
			return err
		}
	}
	return output(tree, opts, out)
}

func parseKeys[K any](args []string, parse func(string) (K, error)) ([]K, error) {
	keys := make([]K, 0, len(args))
	for _, arg := range args {
		k, err := parse(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid key %q: %w", arg, err)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// loadFile inserts the words of a file into tree. Text files are read through
// a textkeys.Feed, HTML files are reduced to their text content first.
func loadFile[K any](ctx context.Context, name string, tree *btree.Tree[K], parse func(string) (K, error)) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	switch strings.ToLower(filepath.Ext(name)) {
	case ".html", ".htm":
		words, err := textkeys.WordsFromHTML(f)
		if err != nil {
			return err
		}
		keys, err := parseKeys(words, parse)
		if err != nil {
			return err
		}
		tree.Insert(keys...)
		return nil
	}
	feed := textkeys.NewFeed(ctx)
	batches, err := feed.Subscribe(4)
	if err != nil {
		return err
	}
	if err := feed.Start(f, textkeys.DefaultBatchSize); err != nil {
		return err
	}
	var perr error
	for batch := range batches {
		if perr != nil {
			continue // drain
		}
		var keys []K
		if keys, perr = parseKeys(batch, parse); perr == nil {
			tree.Insert(keys...)
		}
	}
	<-feed.Done()
	if perr != nil {
		return perr
	}
	tracer().Debugf("loaded %d words from %s", feed.Count(), name)
	return feed.Err()
}

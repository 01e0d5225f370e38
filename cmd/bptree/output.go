package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	humanize "github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/npillmayer/bptree/btree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// printer writes tree output, with colors and the terminal's line width if
// the destination is a terminal.
type printer struct {
	w       io.Writer
	width   int // line length in fixed width ‘en’s
	context *uax11.Context
	inner   *color.Color
	leaf    *color.Color
	label   *color.Color
}

func newPrinter(w io.Writer) *printer {
	p := &printer{
		w:       w,
		width:   65,
		context: uax11.LatinContext,
		inner:   color.New(color.FgRed),
		leaf:    color.New(color.FgBlue),
		label:   color.New(color.Bold),
	}
	if isTerminal(w) {
		if cols, _, err := term.GetSize(int(w.(*os.File).Fd())); err == nil && cols > 10 {
			p.width = cols
		}
		p.context = uax11.ContextFromEnvironment()
	} else {
		p.inner.DisableColor()
		p.leaf.DisableColor()
		p.label.DisableColor()
	}
	return p
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func output[K any](tree *btree.Tree[K], opts options, w io.Writer) error {
	p := newPrinter(w)
	switch opts.format {
	case "dot":
		return tree.ToDot(w)
	case "stats":
		return p.stats(tree.Stats(), tree.Order(), tree.Variant())
	case "keys":
		var keys []string
		for k := range tree.All() {
			keys = append(keys, fmt.Sprint(k))
		}
		return p.columns(keys)
	}
	return p.dump(tree)
}

// dump prints the indented tree dump, coloring internal nodes and leaves
// differently.
func (p *printer) dump(tree interface {
	Fprint(io.Writer) error
	Height() int
}) error {
	var buf bytes.Buffer
	if err := tree.Fprint(&buf); err != nil {
		return err
	}
	leafDepth := max(tree.Height()-1, 0)
	scanner := bufio.NewScanner(&buf)
	for scanner.Scan() {
		line := scanner.Text()
		depth := (len(line) - len(strings.TrimLeft(line, " "))) / 2
		c := p.inner
		if depth == leafDepth {
			c = p.leaf
		}
		if _, err := c.Fprintln(p.w, line); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func (p *printer) stats(s btree.Stats, order int, variant btree.Variant) error {
	rows := []struct {
		label string
		value any
	}{
		{"variant", variant},
		{"order", order},
		{"keys", humanize.Comma(int64(s.Len))},
		{"height", s.Height},
		{"nodes", humanize.Comma(int64(s.Nodes))},
		{"leaves", humanize.Comma(int64(s.Leaves))},
		{"inner", humanize.Comma(int64(s.Inner))},
		{"fill", fmt.Sprintf("%.1f%%", s.Fill*100)},
	}
	for _, r := range rows {
		p.label.Fprintf(p.w, "%-8s", r.label)
		if _, err := fmt.Fprintf(p.w, " %v\n", r.value); err != nil {
			return err
		}
	}
	return nil
}

var setupGraphemes sync.Once

// columns prints strings in as many columns as fit into the line width. Widths
// are measured in display positions, not bytes.
func (p *printer) columns(items []string) error {
	if len(items) == 0 {
		return nil
	}
	setupGraphemes.Do(func() { grapheme.SetupGraphemeClasses() })
	widths := make([]int, len(items))
	colw := 0
	for i, s := range items {
		widths[i] = uax11.StringWidth(grapheme.StringFromString(s), p.context)
		colw = max(colw, widths[i])
	}
	colw += 2
	ncols := max(p.width/colw, 1)
	var b strings.Builder
	for i, s := range items {
		b.WriteString(s)
		if (i+1)%ncols == 0 || i == len(items)-1 {
			b.WriteByte('\n')
			continue
		}
		b.WriteString(strings.Repeat(" ", colw-widths[i]))
	}
	_, err := io.WriteString(p.w, b.String())
	return err
}

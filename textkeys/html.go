package textkeys

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// WordsFromHTML extracts the words of the textual content of an HTML fragment.
// It does no interpretation of layout and styling. Text of script and style
// elements is skipped, and block-level elements separate words.
func WordsFromHTML(input io.Reader) ([]string, error) {
	text, err := TextFromHTML(input)
	if err != nil {
		return nil, err
	}
	return Words(strings.NewReader(text))
}

// TextFromHTML returns the pure text of an HTML fragment, similar to the
// innerText of a DOM element.
func TextFromHTML(input io.Reader) (string, error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, n := range nodes {
		collectText(n, &b)
	}
	return b.String(), nil
}

func collectText(n *html.Node, b *strings.Builder) {
	switch n.Type {
	case html.ElementNode:
		if n.DataAtom == atom.Script || n.DataAtom == atom.Style {
			return
		}
		if isBlock(n.DataAtom) {
			defer b.WriteByte('\n')
		}
	case html.TextNode:
		b.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}

func isBlock(a atom.Atom) bool {
	switch a {
	case atom.P, atom.Div, atom.Br, atom.Li, atom.Ul, atom.Ol, atom.Tr, atom.Td, atom.Th,
		atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6, atom.Blockquote, atom.Pre:
		return true
	}
	return false
}

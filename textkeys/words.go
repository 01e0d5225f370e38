package textkeys

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"
)

// Words splits text into words.
//
// Segments are found at line-break opportunities (UAX #14). Spaces and
// punctuation at either end of a segment are removed and empty segments are
// dropped. Read errors other than io.EOF are returned together with the
// words found up to that point.
func Words(r io.Reader) ([]string, error) {
	var words []string
	err := eachWord(r, func(w string) bool {
		words = append(words, w)
		return true
	})
	return words, err
}

// eachWord calls fn for every word of r, until fn returns false.
func eachWord(r io.Reader, fn func(word string) bool) error {
	src := &errReader{r: r}
	linewrap := uax14.NewLineWrap()
	segmenter := segment.NewSegmenter(linewrap)
	segmenter.Init(bufio.NewReader(src))
	for segmenter.Next() {
		w := strings.TrimFunc(string(segmenter.Bytes()), trimmable)
		if w == "" {
			continue
		}
		if !fn(w) {
			break
		}
	}
	return src.err
}

func trimmable(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsControl(r)
}

// errReader remembers the first read error other than io.EOF. The segmenter
// treats any read error as end of input.
type errReader struct {
	r   io.Reader
	err error
}

func (er *errReader) Read(p []byte) (int, error) {
	n, err := er.r.Read(p)
	if err != nil && err != io.EOF && er.err == nil {
		er.err = err
		tracer().Errorf("reading text: %v", err)
	}
	return n, err
}

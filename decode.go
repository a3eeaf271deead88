// Package pre converts an indentation-structured shorthand markup into
// nested HTML.
//
// Each source line describes one element:
//
//	div.box#main
//	  span :label hello
//	  input! [type text]
//
// The first token carries the tag name followed by ".class", "#id" and
// ":name" shorthands and an optional trailing '!' for self-closing tags.
// Bracketed groups such as "[type text]" become attributes and any other
// token becomes inline content. Nesting is taken purely from relative
// indentation.
package pre

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
)

// Decoder reads a source document from an input stream.
type Decoder struct {
	r io.Reader
}

// NewDecoder returns a new decoder that reads from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// Decode reads the whole stream and parses it into a forest.
func (dec *Decoder) Decode() (Forest, error) {
	lines, err := ReadLines(dec.r)
	if err != nil {
		return nil, err
	}

	return Parse(lines)
}

// Convert parses src and returns the rendered markup of every root.
// An empty src returns ErrEmptyInput.
func Convert(src []byte) ([]byte, error) {
	f, err := NewDecoder(bytes.NewReader(src)).Decode()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := NewEncoder(&buf).Encode(f); err != nil {
		return nil, errors.Wrap(err, "render")
	}

	return buf.Bytes(), nil
}

// ConvertFile reads and converts the file at path.
func ConvertFile(path string) ([]byte, error) {
	lines, err := ReadFile(path)
	if err != nil {
		return nil, err
	}

	f, err := Parse(lines)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}

	return []byte(RenderForest(f)), nil
}

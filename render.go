package pre

import (
	"io"
	"strings"
	"sync"
)

// DefaultIndent is the indentation added for each level of nesting.
const DefaultIndent = "  "

// doctypeName is compared case-insensitively against element names.
const doctypeName = "doctype"

// Render returns the markup for e and its descendants. prefix is the
// indentation of e's own nesting level.
//
// Names are lower-cased on output. Attribute values and content are
// written verbatim and are never escaped; callers that render untrusted
// text must sanitize it first.
func Render(e *Element, prefix string) string {
	var b strings.Builder
	s := newState(&b, DefaultIndent)
	s.renderElement(e, prefix)
	putState(s)

	return b.String()
}

// RenderForest renders every root of f at the top level and concatenates
// the results.
func RenderForest(f Forest) string {
	var b strings.Builder
	s := newState(&b, DefaultIndent)
	for _, e := range f {
		s.renderElement(e, "")
	}
	putState(s)

	return b.String()
}

// An Encoder writes rendered markup to an output stream.
type Encoder struct {
	w      io.Writer
	indent string
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w, indent: DefaultIndent}
}

// SetIndent sets the indentation added for each nesting level.
func (enc *Encoder) SetIndent(indent string) {
	enc.indent = indent
}

// Encode writes the markup for every root in f to the stream.
func (enc *Encoder) Encode(f Forest) error {
	s := newState(enc.w, enc.indent)
	for _, e := range f {
		s.renderElement(e, "")
	}
	err := s.err
	putState(s)

	return err
}

// state holds the output of a single Render or Encode call and is threaded
// through the recursive walk.
type state struct {
	w      io.Writer
	indent string
	err    error
}

var statePool = sync.Pool{
	New: func() any {
		return new(state)
	},
}

// newState retrieves a new state from the pool.
func newState(w io.Writer, indent string) *state {
	s := statePool.Get().(*state)
	s.w = w
	s.indent = indent

	return s
}

// putState returns a state to the pool.
func putState(s *state) {
	s.w = nil
	s.err = nil
	statePool.Put(s)
}

// write writes str unless an earlier write failed.
func (s *state) write(str ...string) {
	for _, v := range str {
		if s.err != nil {
			return
		}
		_, s.err = io.WriteString(s.w, v)
	}
}

// renderElement writes e, then its children one level deeper, then its
// closing tag.
func (s *state) renderElement(e *Element, prefix string) {
	// A doctype ignores everything but its content, including the prefix.
	if strings.EqualFold(e.Name, doctypeName) {
		s.write("<!DOCTYPE ", strings.ToUpper(e.Content), ">")
		return
	}

	name := strings.ToLower(e.Name)
	s.write(prefix, "<", name)
	for _, p := range e.Properties {
		if p.Name == SelfClosingMarker {
			continue
		}
		s.write(" ", strings.ToLower(p.Name))
		if p.Value != "" {
			s.write(`="`, p.Value, `"`)
		}
	}

	// Self-closing elements drop their content and children.
	if e.isSelfClosing() {
		s.write("/>\n")
		return
	}
	s.write(">")

	hasChildren := len(e.Children) > 0
	switch {
	case hasChildren && e.Content != "":
		s.write("\n", prefix, s.indent, e.Content, "\n")
	case e.Content != "":
		s.write(e.Content)
	case hasChildren:
		s.write("\n")
	}

	for _, c := range e.Children {
		s.renderElement(c, prefix+s.indent)
	}

	if hasChildren {
		s.write(prefix)
	}
	s.write("</", name, ">\n")
}

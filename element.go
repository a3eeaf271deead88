package pre

import (
	"fmt"
	"strings"
)

// SelfClosingMarker is the synthetic property that marks an element as
// self-closing. The serializer consumes it and never writes it out.
const SelfClosingMarker = "_selfclosing"

// Property is a single attribute of an element.
type Property struct {
	Name  string
	Value string // Empty means the attribute carries no value.
}

// String returns the attribute as it would appear inside an opening tag.
func (p Property) String() string {
	if p.Value == "" {
		return p.Name
	}

	return fmt.Sprintf("%s=%q", p.Name, p.Value)
}

// Element is one node of a parsed document. It is built from exactly one
// source line and only ever gains children afterwards.
type Element struct {
	Name        string     // Tag name as written; case is normalized on output.
	Properties  []Property // Attributes in source order.
	Content     string     // Inline text that follows the head.
	Children    []*Element // Nested elements, owned by this element.
	SelfClosing bool       // Set when the head ends with '!'.
	Raw         string     // Trimmed source line, kept for diagnostics.
}

// Forest is an ordered list of top-level elements.
type Forest []*Element

// AppendChild attaches children to e in order.
func (e *Element) AppendChild(children ...*Element) {
	e.Children = append(e.Children, children...)
}

// Property returns the first property named name.
func (e *Element) Property(name string) (Property, bool) {
	for _, p := range e.Properties {
		if p.Name == name {
			return p, true
		}
	}

	return Property{}, false
}

// isSelfClosing reports whether the serializer must close e with "/>".
func (e *Element) isSelfClosing() bool {
	if e.SelfClosing {
		return true
	}
	_, ok := e.Property(SelfClosingMarker)

	return ok
}

// String returns a short human-readable description of the element.
func (e *Element) String() string {
	var b strings.Builder
	b.WriteString("Element(")
	b.WriteString(e.Name)
	for _, p := range e.Properties {
		b.WriteByte(' ')
		b.WriteString(p.String())
	}
	if e.Content != "" {
		fmt.Fprintf(&b, " content=%q", e.Content)
	}
	if len(e.Children) > 0 {
		fmt.Fprintf(&b, " children=%d", len(e.Children))
	}
	b.WriteByte(')')

	return b.String()
}

// Outline returns the raw source lines of e and its descendants, one per
// line, each level indented two spaces deeper than prefix.
func (e *Element) Outline(prefix string) string {
	var b strings.Builder
	e.outline(&b, prefix)

	return b.String()
}

func (e *Element) outline(b *strings.Builder, prefix string) {
	b.WriteString(prefix)
	b.WriteString(e.Raw)
	b.WriteByte('\n')
	for _, c := range e.Children {
		c.outline(b, prefix+"  ")
	}
}

// Outline returns the raw-line outline of every root in f.
func (f Forest) Outline() string {
	var b strings.Builder
	for _, e := range f {
		e.outline(&b, "")
	}

	return b.String()
}

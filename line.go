package pre

import (
	"regexp"
	"strings"
)

// shorthandPattern matches one class, id or name fragment inside a head,
// e.g. ".box", "#main" or ":label".
var shorthandPattern = regexp.MustCompile(`[.#:][^.#:\s]+`)

// shorthandMarkers are the characters that start a shorthand fragment.
const shorthandMarkers = ".#:"

// canonicalName maps a shorthand marker to the property it produces.
func canonicalName(marker byte) string {
	switch marker {
	case '.':
		return "class"
	case '#':
		return "id"
	case ':':
		return "name"
	default:
		return "_"
	}
}

// propertySet collects properties in insertion order. Shorthand properties
// are merged by name, bracketed attributes are always appended.
type propertySet struct {
	props []Property
	index map[string]int // Position of each merged property in props.
}

// merge appends value to the property called name, space-joined, creating
// the property on first use.
func (s *propertySet) merge(name, value string) {
	if i, ok := s.index[name]; ok {
		s.props[i].Value += " " + value
		return
	}
	if s.index == nil {
		s.index = make(map[string]int)
	}
	s.index[name] = len(s.props)
	s.props = append(s.props, Property{Name: name, Value: value})
}

// add appends a property without merging.
func (s *propertySet) add(p Property) {
	s.props = append(s.props, p)
}

// ParseLine decodes one source line into an element. It never fails;
// malformed input yields an element with an empty name.
//
// The first whitespace-separated token is the head: a tag name optionally
// followed by ".class", "#id" and ":name" fragments and a trailing '!'
// for self-closing tags. The remaining tokens are "[attr value...]"
// groups, further shorthand tokens such as ":label", and inline content.
func ParseLine(raw string) *Element {
	raw = strings.TrimSpace(raw)
	e := &Element{Raw: raw}

	tokens := strings.Fields(raw)
	if len(tokens) == 0 {
		return e
	}

	var props propertySet

	head := tokens[0]
	if strings.HasSuffix(head, "!") {
		e.SelfClosing = true
		props.add(Property{Name: SelfClosingMarker})
		head = strings.TrimSuffix(head, "!")
	}

	e.Name = head
	matches := shorthandPattern.FindAllString(head, -1)
	mergeShorthand(&props, matches)
	if len(matches) > 0 {
		if i := strings.IndexAny(head, shorthandMarkers); i >= 0 {
			e.Name = head[:i]
		}
	}

	e.Content = parseBody(tokens[1:], &props)
	e.Properties = props.props

	return e
}

// mergeShorthand folds matched fragments into props by canonical name.
func mergeShorthand(props *propertySet, matches []string) {
	for _, m := range matches {
		if len(m) < 2 {
			continue
		}
		props.merge(canonicalName(m[0]), m[1:])
	}
}

// shorthandToken returns the fragments of tok when tok is made up of
// shorthand fragments only, such as ":label" or ".a.b".
func shorthandToken(tok string) ([]string, bool) {
	if tok == "" || !strings.ContainsRune(shorthandMarkers, rune(tok[0])) {
		return nil, false
	}
	matches := shorthandPattern.FindAllString(tok, -1)
	if len(matches) == 0 || strings.Join(matches, "") != tok {
		return nil, false
	}

	return matches, true
}

// parseBody walks the tokens after the head. Bracketed attributes and
// standalone shorthand tokens go into props; everything else is joined,
// without separators, into the returned content.
func parseBody(tokens []string, props *propertySet) string {
	var (
		content   strings.Builder
		capturing bool
		attr      Property
		parts     []string
	)

	for _, tok := range tokens {
		switch {
		case !capturing && strings.HasPrefix(tok, "["):
			name := tok[1:]
			if strings.HasSuffix(name, "]") {
				// "[flag]" opens and closes in one token.
				props.add(Property{Name: strings.TrimSuffix(name, "]")})
				continue
			}
			capturing = true
			attr = Property{Name: name}
			parts = parts[:0]

		case capturing && strings.HasSuffix(tok, "]"):
			parts = append(parts, strings.TrimSuffix(tok, "]"))
			attr.Value = strings.Join(parts, " ")
			props.add(attr)
			capturing = false

		case capturing:
			parts = append(parts, tok)

		default:
			if matches, ok := shorthandToken(tok); ok {
				mergeShorthand(props, matches)
				continue
			}
			content.WriteString(tok)
		}
	}

	// An unterminated capture swallows the rest of the line and is dropped.
	return content.String()
}

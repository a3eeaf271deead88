package pre

import (
	"unicode"

	"github.com/pkg/errors"
)

// ErrEmptyInput is returned by Parse when there is no line to take the
// baseline indentation from.
var ErrEmptyInput = errors.New("pre: empty input has no baseline indentation")

// IndentLevel returns the number of leading whitespace characters in line.
// Tabs and spaces count as one character each.
func IndentLevel(line string) int {
	n := 0
	for _, r := range line {
		if !unicode.IsSpace(r) {
			break
		}
		n++
	}

	return n
}

// group is a run of sibling elements that share one indentation level.
type group struct {
	indent int
	out    *[]*Element // Where siblings of this group are appended.
}

// Parse builds a forest from lines using indentation alone. The first
// line sets the baseline: every line at the baseline becomes a root and a
// line indented deeper than the line directly above it opens that line's
// children.
//
// A line indented less than the baseline ends the parse; it and every
// line after it are ignored. Deeper lines that do not directly follow a
// possible parent are dropped, as are lines that fall between two open
// indentation levels.
func Parse(lines []string) (Forest, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyInput
	}

	var roots []*Element
	stack := []group{{indent: IndentLevel(lines[0]), out: &roots}}

	// parent is the element built from the previous line, if any. Only it
	// may adopt a deeper line.
	var parent *Element

	for _, line := range lines {
		indent := IndentLevel(line)

		// Close every group this line dedents out of.
		for indent < stack[len(stack)-1].indent {
			stack = stack[:len(stack)-1]
			parent = nil
			if len(stack) == 0 {
				return Forest(roots), nil
			}
		}

		top := stack[len(stack)-1]
		if indent > top.indent {
			if parent == nil {
				// Orphaned deeper line.
				continue
			}
			top = group{indent: indent, out: &parent.Children}
			stack = append(stack, top)
		}

		e := ParseLine(line)
		*top.out = append(*top.out, e)
		parent = e
	}

	return Forest(roots), nil
}

package pre

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLine(t *testing.T) {
	f := func(name, input, wantName, wantContent string, wantProps []Property) {
		t.Helper()
		t.Run(name, func(t *testing.T) {
			t.Helper()
			e := ParseLine(input)
			assert.Equal(t, wantName, e.Name, "name")
			assert.Equal(t, wantContent, e.Content, "content")
			assert.Equal(t, wantProps, e.Properties, "properties")
		})
	}

	// Degenerate input.
	f("empty", "", "", "", nil)
	f("whitespace_only", "  \t ", "", "", nil)

	// Heads.
	f("bare_tag", "div", "div", "", nil)
	f("class", "div.box", "div", "", []Property{{"class", "box"}})
	f("id", "div#main", "div", "", []Property{{"id", "main"}})
	f("name", "input:email", "input", "", []Property{{"name", "email"}})
	f("class_and_id", "div.box#main", "div", "", []Property{{"class", "box"}, {"id", "main"}})
	f("merged_classes", "div.a.b", "div", "", []Property{{"class", "a b"}})
	f("merged_around_id", "p.a#x.b", "p", "", []Property{{"class", "a b"}, {"id", "x"}})
	f("id_before_class", "p#x.a", "p", "", []Property{{"id", "x"}, {"class", "a"}})
	f("no_tag_name", ".note", "", "", []Property{{"class", "note"}})
	f("dangling_marker", "a.", "a.", "", nil)
	f("case_kept", "DIV.Box", "DIV", "", []Property{{"class", "Box"}})

	// Self-closing.
	f("self_closing", "br!", "br", "", []Property{{SelfClosingMarker, ""}})
	f("self_closing_with_class", "hr.thin!", "hr", "", []Property{{SelfClosingMarker, ""}, {"class", "thin"}})

	// Content.
	f("content", "p hello", "p", "hello", nil)
	f("content_joined_without_spaces", "p hello world", "p", "helloworld", nil)
	f("leading_whitespace_trimmed", "    p hi", "p", "hi", nil)
	f("content_with_inner_marker", "p a.b", "p", "a.b", nil)

	// Standalone shorthand tokens.
	f("name_token", "span :label hello", "span", "hello", []Property{{"name", "label"}})
	f("class_token_merges", "div.a .b", "div", "", []Property{{"class", "a b"}})
	f("lone_marker_is_content", "p : x", "p", ":x", nil)

	// Bracketed attributes.
	f("bracket", "input [type text]", "input", "", []Property{{"type", "text"}})
	f("bracket_multi_word", "img [alt a small cat]", "img", "", []Property{{"alt", "a small cat"}})
	f("bracket_flag", "input [disabled]", "input", "", []Property{{"disabled", ""}})
	f("bracket_empty_close", "a [href ]", "a", "", []Property{{"href", ""}})
	f("bracket_duplicates_kept", "a [x 1] [x 2]", "a", "", []Property{{"x", "1"}, {"x", "2"}})
	f("bracket_not_merged_with_shorthand", "div.a [class b]", "div", "", []Property{{"class", "a"}, {"class", "b"}})
	f("bracket_between_content", "a hi [href /] there", "a", "hithere", []Property{{"href", "/"}})
	f("bracket_unterminated", "a x [href / more", "a", "x", nil)
}

func TestParseLineSelfClosing(t *testing.T) {
	assert.True(t, ParseLine("br!").SelfClosing)
	assert.True(t, ParseLine("br!").isSelfClosing())
	assert.False(t, ParseLine("br").SelfClosing)
	assert.False(t, ParseLine("p wow!").SelfClosing, "only the head can carry '!'")
}

func TestParseLineRaw(t *testing.T) {
	e := ParseLine("\t  div.box  hello \r")
	assert.Equal(t, "div.box  hello", e.Raw)
}

func TestShorthandMergeHasSingleProperty(t *testing.T) {
	e := ParseLine("div.a.b#x.c:n#y")

	count := map[string]int{}
	for _, p := range e.Properties {
		count[p.Name]++
	}
	for _, name := range []string{"class", "id", "name"} {
		assert.Equal(t, 1, count[name], name)
	}

	class, _ := e.Property("class")
	id, _ := e.Property("id")
	assert.Equal(t, "a b c", class.Value)
	assert.Equal(t, "x y", id.Value)
}

package parser

import (
	"reflect"
	"strings"
	"testing"

	"github.com/dhamidi/htx/html"
)

func parseElement(t *testing.T, input string) html.Element {
	t.Helper()
	node, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse(%q): %v", input, err)
	}
	el, ok := node.(html.Element)
	if !ok {
		t.Fatalf("expected html.Element, got %T", node)
	}
	return el
}

func TestParseSimpleElement(t *testing.T) {
	el := parseElement(t, "<div>content</div>")

	if el.TagName != "div" {
		t.Errorf("expected tag %q, got %q", "div", el.TagName)
	}
	if len(el.Attributes) != 0 {
		t.Errorf("expected no attributes, got %v", el.Attributes)
	}
	if len(el.Children) != 1 {
		t.Fatalf("expected 1 child, got %d", len(el.Children))
	}
	text, ok := el.Children[0].(html.Text)
	if !ok {
		t.Fatalf("expected html.Text child, got %T", el.Children[0])
	}
	if text.Content != "content" {
		t.Errorf("expected %q, got %q", "content", text.Content)
	}
}

func TestParseEmptyElement(t *testing.T) {
	el := parseElement(t, "<div></div>")
	if len(el.Children) != 0 {
		t.Errorf("expected no children, got %v", el.Children)
	}
}

func TestParseAttributes(t *testing.T) {
	el := parseElement(t, `<a href="x">y</a>`)

	if el.TagName != "a" {
		t.Errorf("expected tag %q, got %q", "a", el.TagName)
	}
	want := map[string]string{"href": "x"}
	if !reflect.DeepEqual(el.Attributes, want) {
		t.Errorf("expected attributes %v, got %v", want, el.Attributes)
	}
	if len(el.Children) != 1 {
		t.Fatalf("expected 1 child, got %d", len(el.Children))
	}
	if text := el.Children[0].(html.Text); text.Content != "y" {
		t.Errorf("expected %q, got %q", "y", text.Content)
	}
}

func TestParseDuplicateAttributesFirstWins(t *testing.T) {
	el := parseElement(t, `<a href="1" href="2"></a>`)
	want := map[string]string{"href": "1"}
	if !reflect.DeepEqual(el.Attributes, want) {
		t.Errorf("expected attributes %v, got %v", want, el.Attributes)
	}
}

func TestParseBooleanAttribute(t *testing.T) {
	el := parseElement(t, "<a disabled></a>")
	v, ok := el.Attr("disabled")
	if !ok {
		t.Fatal("expected attribute to be present")
	}
	if v != "" {
		t.Errorf("expected empty value, got %q", v)
	}
}

func TestParseNestedElements(t *testing.T) {
	el := parseElement(t, "<div><span>a</span><span>b</span></div>")

	if len(el.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(el.Children))
	}
	for i, want := range []string{"a", "b"} {
		span, ok := el.Children[i].(html.Element)
		if !ok {
			t.Fatalf("child %d: expected html.Element, got %T", i, el.Children[i])
		}
		if span.TagName != "span" {
			t.Errorf("child %d: expected tag %q, got %q", i, "span", span.TagName)
		}
		if text := span.Children[0].(html.Text); text.Content != want {
			t.Errorf("child %d: expected %q, got %q", i, want, text.Content)
		}
	}
}

func TestParseTextRunsStaySeparate(t *testing.T) {
	el := parseElement(t, "<d>x<e></e>y</d>")

	if len(el.Children) != 3 {
		t.Fatalf("expected 3 children, got %d", len(el.Children))
	}
	if text := el.Children[0].(html.Text); text.Content != "x" {
		t.Errorf("expected %q, got %q", "x", text.Content)
	}
	if e := el.Children[1].(html.Element); e.TagName != "e" {
		t.Errorf("expected tag %q, got %q", "e", e.TagName)
	}
	if text := el.Children[2].(html.Text); text.Content != "y" {
		t.Errorf("expected %q, got %q", "y", text.Content)
	}
}

func TestParseTextFidelity(t *testing.T) {
	// Leading and trailing ASCII spaces are trimmed; interior whitespace,
	// tabs and newlines included, is preserved verbatim.
	el := parseElement(t, "<div> a\tb\n c </div>")

	if len(el.Children) != 1 {
		t.Fatalf("expected 1 child, got %d", len(el.Children))
	}
	text := el.Children[0].(html.Text)
	if text.Content != "a\tb\n c" {
		t.Errorf("expected %q, got %q", "a\tb\n c", text.Content)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		kind  ErrorKind
	}{
		{"", KindPrematureEndOfFile},
		{"<div", KindPrematureEndOfFile},
		{"<div>content", KindPrematureEndOfFile},
		{"<div><span></span>", KindPrematureEndOfFile},
		{"<div>x</span>", KindUnexpectedToken},
		{"plain text", KindUnexpectedToken},
		{"<d>a>b</d>", KindUnexpectedToken},
		{"<di!v>x</di!v>", KindInvalidIdentifier},
		{"<d>x</d!>", KindInvalidIdentifier},
		{"<a href=x></a>", KindInvalidAttributeValue},
		{"<", KindPrematureEndOfFile},
		{"<a>x<", KindGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Parse(tt.input)
			perr := asParseError(t, err)
			if perr.Kind != tt.kind {
				t.Errorf("expected %v, got %v: %v", tt.kind, perr.Kind, perr)
			}
		})
	}
}

func TestParseMismatchedClosingTagMessage(t *testing.T) {
	_, err := Parse("<div>x</span>")
	perr := asParseError(t, err)
	if perr.Kind != KindUnexpectedToken {
		t.Fatalf("expected UnexpectedToken, got %v", perr.Kind)
	}
	if !strings.Contains(perr.Message, "</div>") || !strings.Contains(perr.Message, "</span>") {
		t.Errorf("expected message to name both tags, got %q", perr.Message)
	}
}

func TestParseErrorOffsets(t *testing.T) {
	tests := []struct {
		input  string
		offset int
	}{
		{"<div", 4},
		{"<d>a>b</d>", 4},
		{"plain", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Parse(tt.input)
			perr := asParseError(t, err)
			if perr.Pos.Offset != tt.offset {
				t.Errorf("expected offset %d, got %d", tt.offset, perr.Pos.Offset)
			}
		})
	}
}

func TestParseIdempotence(t *testing.T) {
	input := `<div id="x"> a <span>b</span></div>`

	first, err := Parse(input)
	if err != nil {
		t.Fatalf("first parse: %v", err)
	}
	second, err := Parse(input)
	if err != nil {
		t.Fatalf("second parse: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected structurally equal trees, got %v and %v", first, second)
	}
}

func maxDepth(node html.Node) int {
	el, ok := node.(html.Element)
	if !ok {
		return 1
	}
	deepest := 0
	for _, child := range el.Children {
		if d := maxDepth(child); d > deepest {
			deepest = d
		}
	}
	return 1 + deepest
}

func TestParseNestingDepth(t *testing.T) {
	tests := []struct {
		input string
		depth int
	}{
		{"<a></a>", 1},
		{"<a><b></b></a>", 2},
		{"<a><b><c>x</c></b></a>", 4}, // three elements plus the text leaf
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			node, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if d := maxDepth(node); d != tt.depth {
				t.Errorf("expected depth %d, got %d", tt.depth, d)
			}
		})
	}
}

func TestParseIgnoresTrailingInput(t *testing.T) {
	el := parseElement(t, "<a>x</a>junk")
	if el.TagName != "a" {
		t.Errorf("expected tag %q, got %q", "a", el.TagName)
	}
}

func TestParseRespectsMaxDepth(t *testing.T) {
	_, err := New([]byte("<a><b></b></a>"), WithMaxDepth(1)).Parse()
	perr := asParseError(t, err)
	if perr.Kind != KindGeneric {
		t.Errorf("expected Generic, got %v", perr.Kind)
	}

	if _, err := New([]byte("<a><b></b></a>"), WithMaxDepth(2)).Parse(); err != nil {
		t.Errorf("expected depth 2 to parse, got %v", err)
	}
}

func TestParseDeeplyNestedInput(t *testing.T) {
	const depth = DefaultMaxDepth + 1

	var b strings.Builder
	for i := 0; i < depth; i++ {
		b.WriteString("<a>")
	}
	for i := 0; i < depth; i++ {
		b.WriteString("</a>")
	}
	input := []byte(b.String())

	_, err := New(input).Parse()
	perr := asParseError(t, err)
	if perr.Kind != KindGeneric {
		t.Errorf("expected Generic with the default bound, got %v", perr.Kind)
	}

	if _, err := New(input, WithMaxDepth(0)).Parse(); err != nil {
		t.Errorf("expected unbounded parse to succeed, got %v", err)
	}
}

func TestAllowTextRoot(t *testing.T) {
	node, err := New([]byte(" plain text "), AllowTextRoot()).Parse()
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	text, ok := node.(html.Text)
	if !ok {
		t.Fatalf("expected html.Text, got %T", node)
	}
	// The bare-text-root extension preserves the run verbatim.
	if text.Content != " plain text " {
		t.Errorf("expected %q, got %q", " plain text ", text.Content)
	}
}

func TestAllowTextRootStillParsesElements(t *testing.T) {
	node, err := New([]byte("<a>x</a>"), AllowTextRoot()).Parse()
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, ok := node.(html.Element); !ok {
		t.Fatalf("expected html.Element, got %T", node)
	}
}

func TestWithFile(t *testing.T) {
	_, err := New([]byte("<div"), WithFile("doc.html")).Parse()
	perr := asParseError(t, err)
	if perr.Pos.File != "doc.html" {
		t.Errorf("expected file %q, got %q", "doc.html", perr.Pos.File)
	}
}

func TestParserReuse(t *testing.T) {
	p := New([]byte("<a>x</a>"))
	first, err := p.Parse()
	if err != nil {
		t.Fatalf("first parse: %v", err)
	}
	second, err := p.Parse()
	if err != nil {
		t.Fatalf("second parse: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected equal trees from sequential parses")
	}
}

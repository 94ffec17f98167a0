// Package html defines the document tree produced by parsing a small,
// well-formed markup subset. The model is ASCII-oriented: tag names and
// attribute keys are plain alphanumeric byte strings, and multi-byte
// content passes through untouched but receives no special handling.
package html

// Node is the interface implemented by all tree nodes.
type Node interface {
	node()
}

// Element represents a markup tag with its attributes and ordered children.
type Element struct {
	TagName    string
	Attributes map[string]string
	Children   []Node
}

func (Element) node() {}

// Attr returns the value of the named attribute and whether it is present.
// Value-less attributes are present with an empty value.
func (e Element) Attr(name string) (string, bool) {
	v, ok := e.Attributes[name]
	return v, ok
}

// Text represents a contiguous run of non-tag content. Leading and trailing
// ASCII spaces are trimmed during parsing; interior whitespace, including
// tabs and newlines, is preserved verbatim.
type Text struct {
	Content string
}

func (Text) node() {}

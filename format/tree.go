package format

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dhamidi/htx/html"
)

// TreeEncoder renders a document tree as an indented text outline, one node
// per line. Attributes appear on the element line in key order.
type TreeEncoder struct {
	w io.Writer
}

func NewTreeEncoder(w io.Writer) *TreeEncoder {
	return &TreeEncoder{w: w}
}

func (e *TreeEncoder) Encode(node html.Node) error {
	_, err := io.WriteString(e.w, Tree(node))
	return err
}

// Tree returns the indented text rendering of node.
func Tree(node html.Node) string {
	var b strings.Builder
	writeNode(&b, node, 0)
	return b.String()
}

func writeNode(b *strings.Builder, node html.Node, indent int) {
	for i := 0; i < indent; i++ {
		b.WriteString("  ")
	}

	switch n := node.(type) {
	case html.Element:
		b.WriteString(n.TagName)
		keys := make([]string, 0, len(n.Attributes))
		for key := range n.Attributes {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fmt.Fprintf(b, " %s=%q", key, n.Attributes[key])
		}
		b.WriteString("\n")
		for _, child := range n.Children {
			writeNode(b, child, indent+1)
		}
	case html.Text:
		fmt.Fprintf(b, "%q\n", n.Content)
	}
}

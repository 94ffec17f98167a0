package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/htx/html"
)

// JSONEncoder renders a document tree as indented JSON.
type JSONEncoder struct {
	w io.Writer
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(node html.Node) error {
	text, err := e.MarshalText(node)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText(node html.Node) ([]byte, error) {
	return json.MarshalIndent(nodeToJSON(node), "", "  ")
}

type jsonNode struct {
	Kind       string            `json:"kind"`
	Tag        string            `json:"tag,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
	Text       string            `json:"text,omitempty"`
	Children   []*jsonNode       `json:"children,omitempty"`
}

func nodeToJSON(node html.Node) *jsonNode {
	switch n := node.(type) {
	case html.Element:
		jn := &jsonNode{Kind: "element", Tag: n.TagName}
		if len(n.Attributes) > 0 {
			jn.Attributes = n.Attributes
		}
		for _, child := range n.Children {
			if cn := nodeToJSON(child); cn != nil {
				jn.Children = append(jn.Children, cn)
			}
		}
		return jn
	case html.Text:
		return &jsonNode{Kind: "text", Text: n.Content}
	default:
		return nil
	}
}

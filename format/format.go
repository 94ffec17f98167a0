// Package format renders parsed document trees for human and machine
// consumption.
package format

import "github.com/dhamidi/htx/html"

// Encoder writes a document tree to an output stream.
type Encoder interface {
	Encode(node html.Node) error
}

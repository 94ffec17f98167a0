// Package parser builds html.Node trees from a restricted markup subset:
// nested alphanumeric tags, double-quoted attributes, and text runs. It is a
// strict, fail-fast parser for well-formed, trusted input; the first error
// aborts the parse and no partial tree is returned.
package parser

import (
	"strings"

	"github.com/dhamidi/htx/html"
)

// DefaultMaxDepth is the nesting bound applied when no WithMaxDepth option
// is given. Recursion depth tracks markup nesting depth, so the bound keeps
// hostile input from exhausting the call stack.
const DefaultMaxDepth = 1000

type Option func(*Parser)

// WithFile sets the file name recorded in positions and errors.
func WithFile(path string) Option {
	return func(p *Parser) {
		p.file = path
	}
}

// WithMaxDepth sets the maximum element nesting depth. Zero disables the
// bound.
func WithMaxDepth(n int) Option {
	return func(p *Parser) {
		p.maxDepth = n
	}
}

// AllowTextRoot accepts a bare text document as a valid root, yielding a
// single html.Text node with the run preserved verbatim. By default a
// document must start with '<'.
func AllowTextRoot() Option {
	return func(p *Parser) {
		p.allowTextRoot = true
	}
}

// Parser drives the scanner and the tag-interior splitter to produce a node
// tree. Each call to Parse owns a fresh scanner, so a Parser may be reused
// sequentially; it is not safe for concurrent use.
type Parser struct {
	file          string
	maxDepth      int
	allowTextRoot bool
	input         []byte
	sc            *Scanner
}

// New creates a parser over input.
func New(input []byte, opts ...Option) *Parser {
	p := &Parser{
		input:    input,
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse is a convenience wrapper parsing input with default options.
func Parse(input string) (html.Node, error) {
	return New([]byte(input)).Parse()
}

// Parse parses the whole document and returns its root node. Input after the
// root element's closing tag is ignored.
func (p *Parser) Parse() (html.Node, error) {
	p.sc = NewScanner(p.input, p.file)
	sc := p.sc

	if sc.AtEnd() {
		return nil, errPrematureEOF(sc.Position())
	}

	ch, err := sc.Current()
	if err != nil {
		return nil, err
	}
	if ch != lessThan {
		if p.allowTextRoot {
			content, err := sc.ReadTextRun()
			if err != nil {
				return nil, err
			}
			return html.Text{Content: content}, nil
		}
		return nil, errUnexpectedToken(sc.Position(), "<", string(ch))
	}

	sc.advance()
	pos := sc.Position()
	interior, err := sc.ReadTagInterior()
	if err != nil {
		return nil, err
	}
	name, attrs, err := parseTagInterior(interior, pos)
	if err != nil {
		return nil, err
	}

	children, err := p.parseContent(name, 1)
	if err != nil {
		return nil, err
	}

	return html.Element{TagName: name, Attributes: attrs, Children: children}, nil
}

// parseContent accumulates child nodes until the closing tag matching
// expected is consumed. Closing-tag matching is exact byte-for-byte string
// comparison.
func (p *Parser) parseContent(expected string, depth int) ([]html.Node, error) {
	sc := p.sc
	var children []html.Node

	for !sc.AtEnd() {
		ch, err := sc.Current()
		if err != nil {
			return nil, err
		}

		switch {
		case ch == lessThan:
			next, err := sc.PeekNext()
			if err != nil {
				return nil, err
			}

			if next == slash {
				closePos := sc.Position()
				sc.advanceN(2)
				name, err := sc.ReadTagInterior()
				if err != nil {
					return nil, err
				}
				if !isIdentifier(name) {
					return nil, errInvalidIdentifier(closePos, name)
				}
				if name != expected {
					return nil, errUnexpectedToken(closePos, "</"+expected+">", "</"+name+">")
				}
				return children, nil
			}

			sc.advance()
			pos := sc.Position()
			interior, err := sc.ReadTagInterior()
			if err != nil {
				return nil, err
			}
			name, attrs, err := parseTagInterior(interior, pos)
			if err != nil {
				return nil, err
			}
			if p.maxDepth > 0 && depth+1 > p.maxDepth {
				return nil, errGeneric(pos, "markup nested too deeply")
			}
			grandchildren, err := p.parseContent(name, depth+1)
			if err != nil {
				return nil, err
			}
			children = append(children, html.Element{
				TagName:    name,
				Attributes: attrs,
				Children:   grandchildren,
			})

		case ch == space:
			sc.SkipSpaces()

		default:
			run, err := sc.ReadTextRun()
			if err != nil {
				return nil, err
			}
			children = append(children, html.Text{Content: strings.Trim(run, " ")})
		}
	}

	return nil, errPrematureEOF(sc.Position())
}

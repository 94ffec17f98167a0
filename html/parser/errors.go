package parser

import "fmt"

// Position is a location in the input buffer. Offset counts bytes; Line and
// Column are 1-based and advance per byte, so they are only meaningful for
// ASCII input.
type Position struct {
	File   string
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	if p.File != "" {
		return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// ErrorKind classifies parse failures so callers can branch on them.
type ErrorKind int

const (
	// KindGeneric covers failures outside the other categories, such as
	// lookahead past the end of the buffer or an exceeded nesting bound.
	KindGeneric ErrorKind = iota

	// KindUnexpectedToken reports input that does not match what the
	// grammar position demands: a mismatched closing tag, a root that does
	// not start with '<', or a bare '>' inside text.
	KindUnexpectedToken

	// KindPrematureEndOfFile reports input that ended before a required
	// '>' or closing tag was found.
	KindPrematureEndOfFile

	// KindInvalidIdentifier reports a tag name or attribute key containing
	// non-alphanumeric characters.
	KindInvalidIdentifier

	// KindInvalidAttributeValue reports an attribute value that is not
	// wrapped in double quotes.
	KindInvalidAttributeValue
)

var errorKindNames = map[ErrorKind]string{
	KindGeneric:               "Generic",
	KindUnexpectedToken:       "UnexpectedToken",
	KindPrematureEndOfFile:    "PrematureEndOfFile",
	KindInvalidIdentifier:     "InvalidIdentifier",
	KindInvalidAttributeValue: "InvalidAttributeValue",
}

func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Error is the positional error returned by every fallible parser operation.
// The first failure aborts the whole parse; no partial tree is exposed.
type Error struct {
	Kind    ErrorKind
	Pos     Position
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %d: %s", e.Kind, e.Pos.Offset, e.Message)
}

func errUnexpectedToken(pos Position, expected, found string) *Error {
	return &Error{
		Kind:    KindUnexpectedToken,
		Pos:     pos,
		Message: fmt.Sprintf("expected %q, found %q", expected, found),
	}
}

func errPrematureEOF(pos Position) *Error {
	return &Error{
		Kind:    KindPrematureEndOfFile,
		Pos:     pos,
		Message: "premature end of file",
	}
}

func errInvalidIdentifier(pos Position, text string) *Error {
	return &Error{
		Kind:    KindInvalidIdentifier,
		Pos:     pos,
		Message: fmt.Sprintf("invalid identifier %q", text),
	}
}

func errInvalidAttributeValue(pos Position, raw string) *Error {
	return &Error{
		Kind:    KindInvalidAttributeValue,
		Pos:     pos,
		Message: fmt.Sprintf("attribute value %q is not wrapped in double quotes", raw),
	}
}

func errGeneric(pos Position, message string) *Error {
	return &Error{
		Kind:    KindGeneric,
		Pos:     pos,
		Message: message,
	}
}

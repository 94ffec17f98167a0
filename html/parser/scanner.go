package parser

const (
	lessThan    = '<'
	greaterThan = '>'
	space       = ' '
	slash       = '/'
)

// Scanner is a cursor over an immutable byte buffer. It exposes the
// primitive lexical operations the tree builder is driven by and reports
// positional errors for every out-of-grammar byte it meets.
type Scanner struct {
	input  []byte
	file   string
	pos    int
	line   int
	column int
}

// NewScanner returns a scanner positioned at the start of input. The file
// name may be empty; it is only used in positions.
func NewScanner(input []byte, file string) *Scanner {
	return &Scanner{
		input:  input,
		file:   file,
		pos:    0,
		line:   1,
		column: 1,
	}
}

// Position returns the current cursor position.
func (s *Scanner) Position() Position {
	return Position{
		File:   s.file,
		Offset: s.pos,
		Line:   s.line,
		Column: s.column,
	}
}

// AtEnd reports whether the cursor has consumed the whole buffer.
func (s *Scanner) AtEnd() bool {
	return s.pos >= len(s.input)
}

// Current returns the byte at the cursor without consuming it.
func (s *Scanner) Current() (byte, error) {
	if s.AtEnd() {
		return 0, errGeneric(s.Position(), "cursor past end of input")
	}
	return s.input[s.pos], nil
}

// PeekNext returns the byte one past the cursor without consuming anything.
func (s *Scanner) PeekNext() (byte, error) {
	if s.pos+1 >= len(s.input) {
		return 0, errGeneric(s.Position(), "lookahead past end of input")
	}
	return s.input[s.pos+1], nil
}

func (s *Scanner) advance() byte {
	if s.AtEnd() {
		return 0
	}
	ch := s.input[s.pos]
	s.pos++
	if ch == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return ch
}

func (s *Scanner) advanceN(n int) {
	for i := 0; i < n; i++ {
		s.advance()
	}
}

// SkipSpaces advances over consecutive ASCII space bytes. Tabs and newlines
// are ordinary content, not whitespace, and are left in place.
func (s *Scanner) SkipSpaces() {
	for !s.AtEnd() && s.input[s.pos] == space {
		s.advance()
	}
}

// ReadTextRun consumes bytes up to the next '<', which is left unconsumed.
// A bare '>' before any '<' is an error: text content may not contain an
// unescaped '>'.
func (s *Scanner) ReadTextRun() (string, error) {
	start := s.pos
	for !s.AtEnd() {
		ch := s.input[s.pos]
		if ch == lessThan {
			break
		}
		if ch == greaterThan {
			return "", errUnexpectedToken(s.Position(), "text content", ">")
		}
		s.advance()
	}
	return string(s.input[start:s.pos]), nil
}

// ReadTagInterior consumes raw bytes up to and including the next '>' and
// returns the interior text before it. A '>' inside a quoted attribute value
// terminates the interior all the same; quoting is not recognized at this
// level.
func (s *Scanner) ReadTagInterior() (string, error) {
	start := s.pos
	for !s.AtEnd() {
		if s.input[s.pos] == greaterThan {
			interior := string(s.input[start:s.pos])
			s.advance()
			return interior, nil
		}
		s.advance()
	}
	return "", errPrematureEOF(s.Position())
}

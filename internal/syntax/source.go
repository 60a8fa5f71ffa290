package syntax

import (
	"io"
	"unicode/utf8"
)

// source is a character cursor over an immutable source buffer.
// The cursor is an explicit byte offset, so any position can be
// revisited by offset alone.
type source struct {
	// Input
	buf      []byte // source buffer (entire file read into memory)
	filename string // source file name

	// Cursor
	ch    rune // current character, -1 for EOF
	prev  rune // previous character, -1 before the first one
	offs  int  // byte offset of ch in buf
	width int  // byte width of ch (0 at EOF)

	// Running span of the token being scanned: [start, offs)
	start int

	// Error handling
	errh func(span Span, msg string)
}

// newSource creates a new source from an io.Reader.
// The entire content is read into memory.
// The errh function is called for read errors; if nil, errors are silently ignored.
func newSource(filename string, src io.Reader, errh func(span Span, msg string)) *source {
	s := &source{
		filename: filename,
		ch:       -1,
		prev:     -1,
		errh:     errh,
	}

	var err error
	s.buf, err = io.ReadAll(src)
	if err != nil {
		s.error("error reading source file: " + err.Error())
		s.buf = nil
	}

	s.decode()
	return s
}

// decode loads the character at s.offs into s.ch.
func (s *source) decode() {
	if s.offs >= len(s.buf) {
		s.ch = -1
		s.width = 0
		return
	}
	r, width := utf8.DecodeRune(s.buf[s.offs:])
	s.ch = r
	s.width = width
}

// nextch advances the cursor by one character. At EOF it is a no-op
// apart from remembering the previous character.
func (s *source) nextch() {
	s.prev = s.ch
	s.offs += s.width
	s.decode()
}

// peek returns the character after the current one without consuming it,
// or -1 at EOF.
func (s *source) peek() rune {
	next := s.offs + s.width
	if next >= len(s.buf) {
		return -1
	}
	r, _ := utf8.DecodeRune(s.buf[next:])
	return r
}

// span returns the running span and resets its start to the current offset.
func (s *source) span() Span {
	sp := Span{Start: s.start, End: s.offs}
	s.start = s.offs
	return sp
}

// resetSpan drops whatever has been consumed since the last token.
func (s *source) resetSpan() {
	s.start = s.offs
}

// text returns the bytes of the running span.
func (s *source) text() string {
	return string(s.buf[s.start:s.offs])
}

// error reports an error covering the running span.
func (s *source) error(msg string) {
	if s.errh != nil {
		s.errh(Span{Start: s.start, End: s.offs}, msg)
	}
}

// Character classification helpers

// isLetter reports whether r is an ASCII letter.
func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}

// isDigit reports whether r is a decimal digit (0-9).
func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isIdentChar reports whether r may continue an identifier.
func isIdentChar(r rune) bool {
	return isLetter(r) || isDigit(r) || r == '_'
}

// isNumberChar reports whether r may continue a number literal.
// The scan is greedy: a run like 1.2.3 is scanned as one literal.
func isNumberChar(r rune) bool {
	return isDigit(r) || r == '_' || r == '.'
}

// isWhitespace reports whether r is skipped between tokens.
func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}

package syntax

import "fmt"

// Span is a half-open byte range [Start, End) into the original source.
// Spans are only used for diagnostics.
type Span struct {
	Start int // offset of the first byte
	End   int // offset of the first byte after the range
}

// MakeSpan returns the span [start, end).
func MakeSpan(start, end int) Span {
	return Span{Start: start, End: end}
}

// String returns the span in the format "start:end".
func (s Span) String() string {
	return fmt.Sprintf("%d:%d", s.Start, s.End)
}

// IsValid reports whether 0 <= Start <= End.
func (s Span) IsValid() bool {
	return 0 <= s.Start && s.Start <= s.End
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Join returns the smallest span covering both s and o.
func (s Span) Join(o Span) Span {
	if o.Start < s.Start {
		s.Start = o.Start
	}
	if o.End > s.End {
		s.End = o.End
	}
	return s
}

// Pos represents a line/column position in a source file.
// The zero value is an invalid position.
type Pos struct {
	filename string // source file name
	line     uint32 // 1-based line number
	col      uint32 // 1-based column number (byte offset in line)
}

// NewPos creates a new Pos with the given filename, line, and column.
// Line and column numbers are 1-based.
func NewPos(filename string, line, col uint32) Pos {
	return Pos{filename: filename, line: line, col: col}
}

// Position converts a byte offset in src to a line/column position.
// Offsets outside of src are clamped to its bounds.
func Position(filename string, src []byte, offset int) Pos {
	if offset > len(src) {
		offset = len(src)
	}
	if offset < 0 {
		offset = 0
	}
	line, col := uint32(1), uint32(1)
	for _, b := range src[:offset] {
		if b == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return NewPos(filename, line, col)
}

// String returns a string representation of the position in the format
// "filename:line:col" or "line:col" if filename is empty.
func (p Pos) String() string {
	if p.filename != "" {
		return fmt.Sprintf("%s:%d:%d", p.filename, p.line, p.col)
	}
	return fmt.Sprintf("%d:%d", p.line, p.col)
}

// IsValid reports whether the position is valid.
// A position is valid if line > 0.
func (p Pos) IsValid() bool {
	return p.line > 0
}

// Line returns the 1-based line number.
func (p Pos) Line() uint32 {
	return p.line
}

// Col returns the 1-based column number (byte offset in line).
func (p Pos) Col() uint32 {
	return p.col
}

// Filename returns the source file name.
func (p Pos) Filename() string {
	return p.filename
}

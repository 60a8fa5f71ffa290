package syntax

import (
	"errors"
	"strings"
	"testing"
)

func TestSourceBasic(t *testing.T) {
	src := newSource("test", strings.NewReader("abc"), nil)

	// First character should be 'a'
	if src.ch != 'a' || src.offs != 0 {
		t.Errorf("initial ch=%q offs=%d, want 'a' at 0", src.ch, src.offs)
	}
	if src.prev != -1 {
		t.Errorf("initial prev = %q, want -1", src.prev)
	}

	src.nextch()
	if src.ch != 'b' || src.offs != 1 || src.prev != 'a' {
		t.Errorf("got ch=%q offs=%d prev=%q, want 'b' at 1 after 'a'", src.ch, src.offs, src.prev)
	}

	src.nextch()
	if src.ch != 'c' || src.offs != 2 {
		t.Errorf("got ch=%q offs=%d, want 'c' at 2", src.ch, src.offs)
	}

	// EOF
	src.nextch()
	if src.ch != -1 || src.offs != 3 {
		t.Errorf("got ch=%d offs=%d, want -1 at 3", src.ch, src.offs)
	}

	// Advancing past EOF stays put
	src.nextch()
	if src.ch != -1 || src.offs != 3 {
		t.Errorf("after EOF: ch=%d offs=%d, want -1 at 3", src.ch, src.offs)
	}
}

func TestSourceUTF8(t *testing.T) {
	// λ is two bytes in UTF-8; offsets are byte offsets
	src := newSource("test", strings.NewReader("aλb"), nil)

	src.nextch()
	if src.ch != 'λ' || src.offs != 1 {
		t.Errorf("got ch=%q offs=%d, want 'λ' at 1", src.ch, src.offs)
	}

	src.nextch()
	if src.ch != 'b' || src.offs != 3 {
		t.Errorf("got ch=%q offs=%d, want 'b' at 3", src.ch, src.offs)
	}
}

func TestSourceEmpty(t *testing.T) {
	src := newSource("test", strings.NewReader(""), nil)

	if src.ch != -1 {
		t.Errorf("ch = %d, want -1 (EOF)", src.ch)
	}
	if src.peek() != -1 {
		t.Errorf("peek() = %d, want -1", src.peek())
	}
}

func TestSourcePeek(t *testing.T) {
	src := newSource("test", strings.NewReader("->"), nil)
	if src.ch != '-' || src.peek() != '>' {
		t.Errorf("ch=%q peek=%q, want '-' and '>'", src.ch, src.peek())
	}
	src.nextch()
	if src.peek() != -1 {
		t.Errorf("peek() at last char = %q, want -1", src.peek())
	}
}

func TestSourceSpan(t *testing.T) {
	src := newSource("test", strings.NewReader("abc def"), nil)

	src.nextch()
	src.nextch()
	src.nextch()
	if got := src.text(); got != "abc" {
		t.Errorf("text() = %q, want %q", got, "abc")
	}
	if got := src.span(); got != MakeSpan(0, 3) {
		t.Errorf("span() = %v, want 0:3", got)
	}

	// span() resets the start to the current end
	if got := src.span(); got != MakeSpan(3, 3) {
		t.Errorf("second span() = %v, want 3:3", got)
	}

	src.nextch()
	src.resetSpan()
	src.nextch()
	if got := src.span(); got != MakeSpan(4, 5) {
		t.Errorf("span() after reset = %v, want 4:5", got)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestSourceReadError(t *testing.T) {
	var msg string
	src := newSource("test", failingReader{}, func(_ Span, m string) { msg = m })
	if !strings.Contains(msg, "disk on fire") {
		t.Errorf("error message = %q, want read error", msg)
	}
	if src.ch != -1 {
		t.Errorf("ch = %d, want -1 (EOF)", src.ch)
	}
}

func TestSourceErrorNilHandler(t *testing.T) {
	// Should not panic with nil error handler
	src := newSource("test", strings.NewReader("a"), nil)
	src.error("test error")
}

// Test character classification helpers

func TestIsLetter(t *testing.T) {
	for _, r := range []rune{'a', 'z', 'A', 'Z', 'm'} {
		if !isLetter(r) {
			t.Errorf("isLetter(%q) = false, want true", r)
		}
	}
	for _, r := range []rune{'0', '_', ' ', 'λ', '-'} {
		if isLetter(r) {
			t.Errorf("isLetter(%q) = true, want false", r)
		}
	}
}

func TestIsIdentChar(t *testing.T) {
	for _, r := range []rune{'a', 'Z', '0', '9', '_'} {
		if !isIdentChar(r) {
			t.Errorf("isIdentChar(%q) = false, want true", r)
		}
	}
	for _, r := range []rune{'.', '-', ' ', '\''} {
		if isIdentChar(r) {
			t.Errorf("isIdentChar(%q) = true, want false", r)
		}
	}
}

func TestIsNumberChar(t *testing.T) {
	for _, r := range []rune{'0', '5', '_', '.'} {
		if !isNumberChar(r) {
			t.Errorf("isNumberChar(%q) = false, want true", r)
		}
	}
	for _, r := range []rune{'a', 'e', ',', ' '} {
		if isNumberChar(r) {
			t.Errorf("isNumberChar(%q) = true, want false", r)
		}
	}
}

func TestIsWhitespace(t *testing.T) {
	for _, r := range []rune{' ', '\t', '\r', '\n'} {
		if !isWhitespace(r) {
			t.Errorf("isWhitespace(%q) = false, want true", r)
		}
	}
	if isWhitespace('a') {
		t.Errorf("isWhitespace('a') = true, want false")
	}
}

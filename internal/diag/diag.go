// Package diag renders syntax and runtime errors against the source text
// they refer to.
package diag

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/you-not-fish/snow/internal/eval"
	"github.com/you-not-fish/snow/internal/syntax"
)

// Labels used in rendered headers.
const (
	ParseLabel   = "PARSE ERROR"
	RuntimeLabel = "RUNTIME ERROR"
)

// Format returns the one-line report "ERROR start:end: msg".
func Format(span syntax.Span, msg string) string {
	return fmt.Sprintf("ERROR %s: %s", span, msg)
}

// Render returns a multi-line report of msg at span within src:
//
//	PARSE ERROR in main.snow at 2:8: unclosed (
//
//	   1 | add x y = x + y;
//	   2 | main = (add 1 2;
//	     |        ^
//
// The line before and the line after the error are shown when present.
// The caret run covers the part of span on its first line.
func Render(filename string, src []byte, label string, span syntax.Span, msg string) string {
	pos := syntax.Position(filename, src, span.Start)
	lines := strings.Split(string(src), "\n")
	line := int(pos.Line())
	if line > len(lines) {
		line = len(lines)
	}
	text := lines[line-1]

	var b strings.Builder
	if filename != "" {
		fmt.Fprintf(&b, "%s in %s at %d:%d: %s\n\n", label, filename, pos.Line(), pos.Col(), msg)
	} else {
		fmt.Fprintf(&b, "%s at %d:%d: %s\n\n", label, pos.Line(), pos.Col(), msg)
	}
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, text)

	col := int(pos.Col()) - 1
	if col > len(text) {
		col = len(text)
	}
	fmt.Fprintf(&b, "     | %s%s\n", pad(text[:col]), carets(text[col:], span.Len()))

	if line < len(lines) && lines[line] != "" {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}

// pad returns blanks that occupy the same columns as prefix.
func pad(prefix string) string {
	var b strings.Builder
	for _, r := range prefix {
		if r == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// carets returns one '^' per character of the first n bytes of rest,
// and at least one.
func carets(rest string, n int) string {
	if n > len(rest) {
		n = len(rest)
	}
	if n < 0 {
		n = 0
	}
	count := utf8.RuneCountInString(rest[:n])
	if count == 0 {
		count = 1
	}
	return strings.Repeat("^", count)
}

// Report writes a rendered report of err to w. Every error of a
// syntax.ErrorList is reported; errors that carry no span are written
// as "error: msg".
func Report(w io.Writer, filename string, src []byte, err error) {
	var (
		list syntax.ErrorList
		se   *syntax.SyntaxError
		re   *eval.RuntimeError
	)
	switch {
	case errors.As(err, &list):
		for i, e := range list {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprint(w, Render(filename, src, ParseLabel, e.Span, e.Msg))
		}
	case errors.As(err, &se):
		fmt.Fprint(w, Render(filename, src, ParseLabel, se.Span, se.Msg))
	case errors.As(err, &re):
		msg := fmt.Sprintf("%s: %s", re.Kind, re.Msg)
		if re.Kind == eval.MissingEntryPoint {
			// Not tied to any source location.
			fmt.Fprintf(w, "%s in %s: %s\n", RuntimeLabel, filename, msg)
			return
		}
		fmt.Fprint(w, Render(filename, src, RuntimeLabel, re.Span, msg))
	default:
		fmt.Fprintf(w, "error: %v\n", err)
	}
}

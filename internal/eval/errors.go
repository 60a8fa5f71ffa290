package eval

import (
	"errors"
	"fmt"

	"github.com/you-not-fish/snow/internal/syntax"
)

// Kind classifies runtime errors.
type Kind uint8

const (
	UndefinedName     Kind = iota // name bound in neither environment
	ArityMismatch                 // too few arguments for a function
	TypeMismatch                  // operator or builtin applied to the wrong kinds
	IndexOutOfRange               // nth index outside the array
	EmptyCollection               // pop on an empty array
	MissingEntryPoint             // no function with the entry-point name
	DivisionByZero                // integer division by zero
	RecursionLimit                // evaluation nested deeper than Config.MaxDepth
	Malformed                     // declaration in expression position
)

var kindNames = [...]string{
	UndefinedName:     "UndefinedName",
	ArityMismatch:     "ArityMismatch",
	TypeMismatch:      "TypeMismatch",
	IndexOutOfRange:   "IndexOutOfRange",
	EmptyCollection:   "EmptyCollection",
	MissingEntryPoint: "MissingEntryPoint",
	DivisionByZero:    "DivisionByZero",
	RecursionLimit:    "RecursionLimit",
	Malformed:         "Malformed",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// RuntimeError is an error raised while evaluating a program.
type RuntimeError struct {
	Kind Kind
	Span syntax.Span
	Msg  string
}

func (e *RuntimeError) Error() string {
	return e.Span.String() + ": " + e.Msg
}

// Is reports whether err is a RuntimeError of the given kind.
func Is(err error, kind Kind) bool {
	var re *RuntimeError
	return errors.As(err, &re) && re.Kind == kind
}

func errorf(kind Kind, span syntax.Span, format string, args ...interface{}) error {
	return &RuntimeError{Kind: kind, Span: span, Msg: fmt.Sprintf(format, args...)}
}

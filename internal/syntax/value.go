package syntax

import (
	"strconv"
	"strings"
)

// Value is a fully reduced atom: an identifier reference, a literal, or an
// array of values. The set of implementations is closed.
type Value interface {
	String() string
	aValue()
}

type (
	// Id is a name. As an evaluated value it refers to a function.
	Id string

	Int    int64
	Float  float64
	Bool   bool
	Char   rune
	String string

	// Array is an ordered list of values. Arrays are never shared: every
	// operation that stores or modifies one works on a copy.
	Array []Value
)

func (Id) aValue()     {}
func (Int) aValue()    {}
func (Float) aValue()  {}
func (Bool) aValue()   {}
func (Char) aValue()   {}
func (String) aValue() {}
func (Array) aValue()  {}

func (v Id) String() string  { return string(v) }
func (v Int) String() string { return strconv.FormatInt(int64(v), 10) }

func (v Float) String() string {
	s := strconv.FormatFloat(float64(v), 'f', -1, 64)
	if !strings.ContainsAny(s, ".IN") {
		s += ".0"
	}
	return s
}

func (v Bool) String() string   { return strconv.FormatBool(bool(v)) }
func (v Char) String() string   { return string(v) }
func (v String) String() string { return string(v) }

func (v Array) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, e := range v {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.String())
	}
	b.WriteByte(']')
	return b.String()
}

// Clone returns a deep copy of the array.
func (v Array) Clone() Array {
	if v == nil {
		return nil
	}
	c := make(Array, len(v))
	for i, e := range v {
		if a, ok := e.(Array); ok {
			e = a.Clone()
		}
		c[i] = e
	}
	return c
}

// KindOf returns the name of v's kind as used in diagnostics.
func KindOf(v Value) string {
	switch v.(type) {
	case Id:
		return "Id"
	case Int:
		return "Int"
	case Float:
		return "Float"
	case Bool:
		return "Bool"
	case Char:
		return "Char"
	case String:
		return "String"
	case Array:
		return "Array"
	case nil:
		return "<nil>"
	}
	return "unknown"
}

// Quote renders v the way it would be written in source: strings and
// characters keep their quotes.
func Quote(v Value) string {
	switch v := v.(type) {
	case String:
		return `"` + string(v) + `"`
	case Char:
		return "'" + string(v) + "'"
	case Array:
		var b strings.Builder
		b.WriteByte('[')
		for i, e := range v {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(Quote(e))
		}
		b.WriteByte(']')
		return b.String()
	case nil:
		return "<nil>"
	}
	return v.String()
}

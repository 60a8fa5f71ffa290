// Package codegen translates a parsed Snow program into JavaScript.
//
// Every function becomes a curried arrow function bound with const.
// Functions without parameters become thunks so that top-level
// declarations may refer to each other in any order, as they can in
// Snow. If the program has a main function without parameters, its
// value is printed.
package codegen

import (
	"fmt"
	"io"
	"strings"

	"github.com/you-not-fish/snow/internal/syntax"
)

// Error is a declaration that cannot be translated.
type Error struct {
	Span syntax.Span
	Msg  string
}

func (e *Error) Error() string {
	return e.Span.String() + ": " + e.Msg
}

// generator holds state for one translation.
type generator struct {
	e *emitter

	thunks map[string]bool // functions without parameters
	locals map[string]int  // parameters in scope, by nesting count

	err error // first translation error
}

// GenerateJS writes a JavaScript translation of decls to w. When the same
// function is declared twice, only the last declaration is emitted.
func GenerateJS(w io.Writer, decls []syntax.Expr) error {
	g := &generator{
		e:      &emitter{w: w},
		thunks: make(map[string]bool),
		locals: make(map[string]int),
	}

	last := make(map[string]int)
	for i, d := range decls {
		switch d := d.(type) {
		case *syntax.Func:
			if isRuntime(d.Name) {
				return &Error{d.Span(), fmt.Sprintf("cannot redefine builtin %s", d.Name)}
			}
			last[d.Name] = i
			if _, ok := d.Body.(*syntax.Closure); !ok {
				g.thunks[d.Name] = true
			} else {
				delete(g.thunks, d.Name)
			}
		case *syntax.BadExpr:
			return &Error{d.Span(), "cannot generate code for a declaration that failed to parse"}
		}
	}

	g.e.emitComment("Code generated by snowc. DO NOT EDIT.")
	g.e.emit(`"use strict";`)

	if prelude := usedRuntime(decls); len(prelude) > 0 {
		g.e.emitLine()
		for _, f := range prelude {
			g.e.emitConst(f.js, f.impl)
		}
	}

	for i, d := range decls {
		switch d := d.(type) {
		case *syntax.Func:
			if last[d.Name] == i {
				g.lowerFunc(d)
			}
		case *syntax.Enum:
			g.lowerEnum(d)
		case *syntax.TypeDec:
			if i+1 < len(decls) {
				// Printed with the function it describes.
				if f, ok := decls[i+1].(*syntax.Func); ok && f.Name == d.Name {
					continue
				}
			}
			g.e.emitLine()
			g.e.emitComment("%s :: %s", d.Name, strings.Join(d.Types, " -> "))
		}
	}

	if _, ok := last["main"]; ok && g.thunks["main"] {
		g.e.emitLine()
		g.e.emit("console.log(main());")
	}
	if g.err != nil {
		return g.err
	}
	return g.e.err
}

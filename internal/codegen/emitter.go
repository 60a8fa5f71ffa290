package codegen

import (
	"fmt"
	"io"
)

// emitter wraps an io.Writer with helpers for emitting JavaScript text.
type emitter struct {
	w   io.Writer
	err error // first write error
}

// emit writes a formatted line to the output.
func (e *emitter) emit(format string, args ...interface{}) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format+"\n", args...)
}

// emitLine writes a blank line.
func (e *emitter) emitLine() {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintln(e.w)
}

// emitComment writes a comment line.
func (e *emitter) emitComment(format string, args ...interface{}) {
	e.emit("// "+format, args...)
}

// emitConst writes a top-level constant declaration.
func (e *emitter) emitConst(name, value string) {
	e.emit("const %s = %s;", name, value)
}

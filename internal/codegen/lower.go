package codegen

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/you-not-fish/snow/internal/syntax"
)

// lowerFunc emits the declaration of a single function.
func (g *generator) lowerFunc(f *syntax.Func) {
	g.e.emitLine()
	if len(f.Types) > 0 {
		typ := jsFuncType(f.Types)
		if g.thunks[f.Name] {
			typ = "function(): " + typ
		}
		g.e.emitComment("%s :: %s", f.Name, strings.Join(f.Types, " -> "))
		g.e.emit("/** @type {%s} */", typ)
	}

	body := g.expr(f.Body)
	if g.thunks[f.Name] {
		body = "() => " + body
	}
	g.e.emitConst(jsName(f.Name), body)
}

// lowerEnum emits one constructor per variant and a frozen object
// grouping them under the enum's name.
func (g *generator) lowerEnum(d *syntax.Enum) {
	g.e.emitLine()
	g.e.emitComment("enum %s", d.Name)

	names := make([]string, len(d.Variants))
	for i, v := range d.Variants {
		names[i] = jsName(v.Name)

		params := make([]string, len(v.Fields))
		for j := range v.Fields {
			params[j] = "a" + strconv.Itoa(j)
		}
		value := fmt.Sprintf("Object.freeze({ tag: %s, values: [%s] })",
			jsQuote(v.Name), strings.Join(params, ", "))
		for j := len(params) - 1; j >= 0; j-- {
			value = "(" + params[j] + ") => " + value
		}
		g.e.emitConst(names[i], value)
	}
	g.e.emitConst(jsName(d.Name), "Object.freeze({ "+strings.Join(names, ", ")+" })")
}

// expr returns the JavaScript expression for e.
func (g *generator) expr(e syntax.Expr) string {
	switch e := e.(type) {
	case *syntax.Atom:
		return g.atom(e.Value)

	case *syntax.Unary:
		return "(" + e.Op.String() + g.expr(e.X) + ")"

	case *syntax.Binary:
		return g.binary(e)

	case *syntax.IfElse:
		return fmt.Sprintf("(%s ? %s : %s)", g.expr(e.Cond), g.expr(e.Then), g.expr(e.Else))

	case *syntax.Closure:
		name := e.Name()
		g.locals[name]++
		body := g.expr(e.Body)
		g.locals[name]--
		return "(" + jsName(name) + ") => " + body

	case *syntax.App:
		return g.apply(e.Fun, e.Args)

	case *syntax.ArrayLit:
		elems := make([]string, len(e.Elems))
		for i, x := range e.Elems {
			elems[i] = g.expr(x)
		}
		return "[" + strings.Join(elems, ", ") + "]"
	}

	if g.err == nil {
		g.err = &Error{e.Span(), fmt.Sprintf("cannot generate code for %T in expression position", e)}
	}
	return "undefined"
}

func (g *generator) binary(e *syntax.Binary) string {
	switch e.Op {
	case syntax.Pipe:
		if app, ok := e.Y.(*syntax.App); ok {
			args := append(append([]syntax.Expr(nil), app.Args...), e.X)
			return g.apply(app.Fun, args)
		}
		return g.apply(e.Y, []syntax.Expr{e.X})
	case syntax.Cons:
		return "[" + g.expr(e.X) + ", ..." + g.expr(e.Y) + "]"
	case syntax.Div:
		return g.runtimeName("/") + "(" + g.expr(e.X) + ")(" + g.expr(e.Y) + ")"
	}

	op := e.Op.String()
	switch e.Op {
	case syntax.Eql:
		op = "==="
	case syntax.Neq:
		op = "!=="
	}
	return "(" + g.expr(e.X) + " " + op + " " + g.expr(e.Y) + ")"
}

// apply returns a curried call of fun with args. A name in call
// position refers to a builtin before any other binding.
func (g *generator) apply(fun syntax.Expr, args []syntax.Expr) string {
	var b strings.Builder
	switch f := fun.(type) {
	case *syntax.Atom:
		if id, ok := f.Value.(syntax.Id); ok && isRuntime(string(id)) {
			b.WriteString(g.runtimeName(string(id)))
		} else {
			b.WriteString(g.expr(f))
		}
	case *syntax.Closure:
		b.WriteString("(" + g.expr(f) + ")")
	default:
		b.WriteString(g.expr(f))
	}
	for _, a := range args {
		b.WriteString("(" + g.expr(a) + ")")
	}
	return b.String()
}

func (g *generator) atom(v syntax.Value) string {
	switch v := v.(type) {
	case syntax.Id:
		return g.ref(string(v))
	case syntax.Int:
		return strconv.FormatInt(int64(v), 10)
	case syntax.Float:
		return formatFloat(float64(v))
	case syntax.Bool:
		return strconv.FormatBool(bool(v))
	case syntax.Char:
		return jsQuote(string(v))
	case syntax.String:
		return jsQuote(string(v))
	case syntax.Array:
		elems := make([]string, len(v))
		for i, x := range v {
			elems[i] = g.atom(x)
		}
		return "[" + strings.Join(elems, ", ") + "]"
	}
	return "undefined"
}

// ref returns the JavaScript expression for a name in value position:
// a parameter, a builtin, or a global function. Functions without
// parameters are thunks and are called.
func (g *generator) ref(name string) string {
	switch {
	case g.locals[name] > 0:
		return jsName(name)
	case isRuntime(name):
		return g.runtimeName(name)
	case g.thunks[name]:
		return jsName(name) + "()"
	}
	return jsName(name)
}

func (g *generator) runtimeName(name string) string {
	return runtime[runtimeIndex[name]].js
}

// formatFloat formats a float64 as a JavaScript number literal.
func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case math.IsNaN(f):
		return "NaN"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// jsQuote returns s as a double-quoted JavaScript string literal.
func jsQuote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 || r == 0x7f || r == '\u2028' || r == '\u2029' {
				fmt.Fprintf(&b, `\u%04X`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

// reserved holds JavaScript reserved words and the globals the prelude
// relies on.
var reserved = map[string]bool{
	"await": true, "break": true, "case": true, "catch": true, "class": true,
	"const": true, "continue": true, "debugger": true, "default": true,
	"delete": true, "do": true, "else": true, "enum": true, "export": true,
	"extends": true, "false": true, "finally": true, "for": true,
	"function": true, "if": true, "implements": true, "import": true,
	"in": true, "instanceof": true, "interface": true, "let": true,
	"new": true, "null": true, "package": true, "private": true,
	"protected": true, "public": true, "return": true, "static": true,
	"super": true, "switch": true, "this": true, "throw": true, "true": true,
	"try": true, "typeof": true, "var": true, "void": true, "while": true,
	"with": true, "yield": true, "arguments": true, "eval": true,
	"undefined": true, "NaN": true, "Infinity": true,
	"console": true, "Object": true, "Math": true, "Number": true,
	"String": true, "RangeError": true,
}

// jsName returns a JavaScript identifier for the Snow name.
func jsName(name string) string {
	if reserved[name] {
		return name + "_"
	}
	return name
}

package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes an indented tree representation of the AST to w.
func Fprint(w io.Writer, node Node) {
	p := &printer{w: w}
	p.print(node)
}

// FprintAll writes every declaration in decls to w.
func FprintAll(w io.Writer, decls []Expr) {
	p := &printer{w: w}
	for _, d := range decls {
		p.print(d)
	}
}

type printer struct {
	w      io.Writer
	indent int
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

// child prints a labelled sub-node one level deeper.
func (p *printer) child(label string, n Node) {
	p.printf("%s:\n", label)
	p.indent++
	p.print(n)
	p.indent--
}

func (p *printer) print(node Node) {
	if node == nil {
		return
	}

	switch n := node.(type) {
	case *Func:
		p.printf("Func %s %s\n", n.span, n.Name)
		p.indent++
		if len(n.Types) > 0 {
			p.printf("Types: %s\n", strings.Join(n.Types, " -> "))
		}
		if params := n.Params(); len(params) > 0 {
			p.printf("Params: %s\n", strings.Join(params, " "))
		}
		p.child("Body", n.Body)
		p.indent--

	case *Enum:
		p.printf("Enum %s %s\n", n.span, n.Name)
		p.indent++
		for _, v := range n.Variants {
			if len(v.Fields) == 0 {
				p.printf("Variant %s %s\n", v.Span, v.Name)
			} else {
				p.printf("Variant %s %s %s\n", v.Span, v.Name, strings.Join(v.Fields, " "))
			}
		}
		p.indent--

	case *TypeDec:
		p.printf("TypeDec %s %s :: %s\n", n.span, n.Name, strings.Join(n.Types, " -> "))

	case *Atom:
		p.printf("Atom %s %s %s\n", n.span, KindOf(n.Value), Quote(n.Value))

	case *Unary:
		p.printf("Unary %s %s\n", n.span, n.Op)
		p.indent++
		p.print(n.X)
		p.indent--

	case *Binary:
		p.printf("Binary %s %s\n", n.span, n.Op)
		p.indent++
		p.child("X", n.X)
		p.child("Y", n.Y)
		p.indent--

	case *IfElse:
		p.printf("IfElse %s\n", n.span)
		p.indent++
		p.child("Cond", n.Cond)
		p.child("Then", n.Then)
		p.child("Else", n.Else)
		p.indent--

	case *Closure:
		p.printf("Closure %s %s\n", n.span, n.Name())
		p.indent++
		p.print(n.Body)
		p.indent--

	case *App:
		p.printf("App %s\n", n.span)
		p.indent++
		p.child("Fun", n.Fun)
		if len(n.Args) > 0 {
			p.printf("Args:\n")
			p.indent++
			for _, a := range n.Args {
				p.print(a)
			}
			p.indent--
		}
		p.indent--

	case *ArrayLit:
		p.printf("ArrayLit %s\n", n.span)
		p.indent++
		for _, e := range n.Elems {
			p.print(e)
		}
		p.indent--

	case *BadExpr:
		p.printf("BadExpr %s\n", n.span)

	default:
		p.printf("<%T>\n", node)
	}
}

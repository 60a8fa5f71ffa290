package syntax

import "strings"

// ExprString returns the compact s-expression form of e:
//
//	1 + 2 * 3          (+ 1 (* 2 3))
//	add 1 2            <add: (1, 2)>
//	\x -> x            (\x -> x)
//	add x y = x + y;   <add: (\x -> (\y -> (+ x y)))>
func ExprString(e Expr) string {
	var b strings.Builder
	writeExpr(&b, e)
	return b.String()
}

func writeExpr(b *strings.Builder, e Expr) {
	switch n := e.(type) {
	case nil:
		b.WriteString("<nil>")

	case *Atom:
		b.WriteString(atomString(n.Value))

	case *Unary:
		b.WriteString("(" + n.Op.String() + " ")
		writeExpr(b, n.X)
		b.WriteByte(')')

	case *Binary:
		b.WriteString("(" + n.Op.String() + " ")
		writeExpr(b, n.X)
		b.WriteByte(' ')
		writeExpr(b, n.Y)
		b.WriteByte(')')

	case *IfElse:
		b.WriteString("(if (")
		writeExpr(b, n.Cond)
		b.WriteString(") then ")
		writeExpr(b, n.Then)
		b.WriteString(" else ")
		writeExpr(b, n.Else)
		b.WriteByte(')')

	case *Closure:
		b.WriteString(`(\` + n.Name() + " -> ")
		writeExpr(b, n.Body)
		b.WriteByte(')')

	case *App:
		b.WriteByte('<')
		writeExpr(b, n.Fun)
		b.WriteString(": (")
		writeList(b, n.Args)
		b.WriteString(")>")

	case *ArrayLit:
		b.WriteByte('[')
		writeList(b, n.Elems)
		b.WriteByte(']')

	case *Func:
		b.WriteString("<" + n.Name + ": ")
		writeExpr(b, n.Body)
		b.WriteByte('>')

	case *Enum:
		b.WriteString("<" + n.Name + ": ")
		for i, v := range n.Variants {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString("(" + v.Name + ", [" + strings.Join(v.Fields, ", ") + "])")
		}
		b.WriteByte('>')

	case *TypeDec:
		b.WriteString("<" + n.Name + " :: " + strings.Join(n.Types, " -> ") + ">")

	case *BadExpr:
		b.WriteString("<error>")
	}
}

func writeList(b *strings.Builder, list []Expr) {
	for i, e := range list {
		if i > 0 {
			b.WriteString(", ")
		}
		writeExpr(b, e)
	}
}

// atomString renders operator names in section form: (+).
func atomString(v Value) string {
	if id, ok := v.(Id); ok {
		if _, isOp := LookupOperator(string(id)); isOp {
			return "(" + string(id) + ")"
		}
	}
	return Quote(v)
}

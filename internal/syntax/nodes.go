package syntax

// ----------------------------------------------------------------------------
// Interfaces
//
// Every node is an expression. Top-level declarations (Func, Enum, TypeDec)
// are expressions too, so a parsed file is simply a []Expr; the evaluator
// rejects declarations found in body position.

// Node is the interface implemented by all AST nodes.
type Node interface {
	Span() Span // byte range of the node in the source
	aNode()     // marker method to restrict implementations to this package
}

// Expr is the interface for all expression nodes.
type Expr interface {
	Node
	aExpr()
}

// ----------------------------------------------------------------------------
// Base node types

// node is the base struct embedded in all AST nodes.
type node struct {
	span Span
}

func (n *node) Span() Span { return n.span }
func (n *node) aNode()     {}

// expr is embedded in all expression nodes.
type expr struct{ node }

func (*expr) aExpr() {}

// ----------------------------------------------------------------------------
// Expressions

// Atom is a literal or an identifier.
type Atom struct {
	expr
	Value Value
}

// Unary represents a prefix operation: -X or !X.
type Unary struct {
	expr
	Op Token // Sub or Not
	X  Expr
}

// Binary represents X Op Y.
type Binary struct {
	expr
	Op Token
	X  Expr
	Y  Expr
}

// IfElse represents if Cond then Then else Else.
type IfElse struct {
	expr
	Cond Expr
	Then Expr
	Else Expr
}

// Closure is a single-parameter function: \Param -> Body.
// Functions of several parameters are chains of closures.
type Closure struct {
	expr
	Param *Atom // always holds an Id
	Body  Expr
}

// Name returns the parameter name.
func (c *Closure) Name() string {
	if id, ok := c.Param.Value.(Id); ok {
		return string(id)
	}
	return ""
}

// App represents the application of Fun to all juxtaposed Args: f a b c.
type App struct {
	expr
	Fun  Expr
	Args []Expr
}

// ArrayLit represents an array literal [Elems...].
type ArrayLit struct {
	expr
	Elems []Expr
}

// ----------------------------------------------------------------------------
// Declarations

// Func is a top-level binding: name p1 p2 = body;
// Parameters are desugared into nested closures in Body.
type Func struct {
	expr
	Name  string
	Types []string // from a preceding "name :: ..." declaration, if any
	Body  Expr
}

// Params returns the parameter names of the closure chain at the top of
// the function body.
func (f *Func) Params() []string {
	return ClosureParams(f.Body)
}

// Variant is one alternative of an enum declaration.
type Variant struct {
	Name   string
	Fields []string
	Span   Span
}

// Enum represents enum Name = V1 T... | V2 T... ;
type Enum struct {
	expr
	Name     string
	Variants []Variant
}

// TypeDec represents name :: T1 -> T2 -> ... -> Tn;
type TypeDec struct {
	expr
	Name  string
	Types []string
}

// BadExpr is a placeholder for a declaration or expression that failed
// to parse.
type BadExpr struct {
	expr
}

// ----------------------------------------------------------------------------
// Helpers

// ClosureParams returns the parameter names of the closure chain e.
// It returns nil if e is not a closure.
func ClosureParams(e Expr) []string {
	var params []string
	for {
		c, ok := e.(*Closure)
		if !ok {
			return params
		}
		params = append(params, c.Name())
		e = c.Body
	}
}

// NewAtom returns an atom holding v with span s.
func NewAtom(v Value, s Span) *Atom {
	a := &Atom{Value: v}
	a.span = s
	return a
}

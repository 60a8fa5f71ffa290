// Package eval implements a tree-walking interpreter for Snow programs.
//
// Evaluation is call by value. Names are resolved in the local
// environment of the current call frame first and in the global
// environment of top-level functions second. Builtins are dispatched
// before either at application sites.
package eval

import (
	"io"
	"log"
	"os"

	"github.com/you-not-fish/snow/internal/syntax"
)

// DefaultMaxDepth is the nesting limit used when Config.MaxDepth is zero.
const DefaultMaxDepth = 10000

// Config configures an Interpreter. The zero value is ready to use.
type Config struct {
	Stdout   io.Writer   // output of the print builtins; os.Stdout if nil
	MaxDepth int         // maximum evaluation depth; DefaultMaxDepth if <= 0
	Trace    *log.Logger // if set, every function call is logged
}

// Interpreter evaluates expressions against a set of global functions.
// An Interpreter is not safe for concurrent use.
type Interpreter struct {
	globals *Env

	stdout   io.Writer
	maxDepth int
	trace    *log.Logger

	depth int // current evaluation depth
}

// New returns an interpreter whose global environment holds every
// function declared in decls. A later declaration of a name replaces an
// earlier one. Other declarations are ignored.
func New(decls []syntax.Expr, conf *Config) *Interpreter {
	if conf == nil {
		conf = new(Config)
	}
	in := &Interpreter{
		globals:  NewEnv(),
		stdout:   conf.Stdout,
		maxDepth: conf.MaxDepth,
		trace:    conf.Trace,
	}
	if in.stdout == nil {
		in.stdout = os.Stdout
	}
	if in.maxDepth <= 0 {
		in.maxDepth = DefaultMaxDepth
	}
	for _, d := range decls {
		if f, ok := d.(*syntax.Func); ok {
			in.Define(f)
		}
	}
	return in
}

// Run evaluates the body of the function named entry in decls.
func Run(decls []syntax.Expr, entry string, conf *Config) (syntax.Value, error) {
	return New(decls, conf).Run(entry)
}

// Define adds f to the global environment, replacing any function of the
// same name. It must not be called during an evaluation.
func (in *Interpreter) Define(f *syntax.Func) {
	in.globals.Bind(f.Name, f.Body)
}

// Globals returns the global environment.
func (in *Interpreter) Globals() *Env {
	return in.globals
}

// Run evaluates the body of the function named entry.
func (in *Interpreter) Run(entry string) (syntax.Value, error) {
	body, ok := in.globals.Lookup(entry)
	if !ok {
		return nil, errorf(MissingEntryPoint, syntax.Span{}, "missing entry point: no function named %s", entry)
	}
	return in.Eval(body, nil)
}

// Eval evaluates e with the given local environment, which may be nil.
func (in *Interpreter) Eval(e syntax.Expr, local *Env) (syntax.Value, error) {
	if local == nil {
		local = NewEnv()
	}
	in.depth = 0
	return in.eval(e, local)
}

// eval reduces e to a value.
func (in *Interpreter) eval(e syntax.Expr, local *Env) (syntax.Value, error) {
	if e == nil {
		return nil, errorf(Malformed, syntax.Span{}, "missing expression")
	}

	in.depth++
	defer func() { in.depth-- }()
	if in.depth > in.maxDepth {
		return nil, errorf(RecursionLimit, e.Span(), "evaluation nested deeper than %d levels", in.maxDepth)
	}

	switch e := e.(type) {
	case *syntax.Atom:
		if id, ok := e.Value.(syntax.Id); ok {
			return in.resolve(string(id), e.Span(), local)
		}
		return copyValue(e.Value), nil

	case *syntax.Unary:
		x, err := in.eval(e.X, local)
		if err != nil {
			return nil, err
		}
		return unary(e.Op, x, e.Span())

	case *syntax.Binary:
		if e.Op == syntax.Pipe {
			return in.pipe(e, local)
		}
		x, err := in.eval(e.X, local)
		if err != nil {
			return nil, err
		}
		y, err := in.eval(e.Y, local)
		if err != nil {
			return nil, err
		}
		return binary(e.Op, x, y, e.Span())

	case *syntax.IfElse:
		c, err := in.eval(e.Cond, local)
		if err != nil {
			return nil, err
		}
		cond, ok := c.(syntax.Bool)
		if !ok {
			return nil, errorf(TypeMismatch, e.Cond.Span(), "if condition must be Bool, found %s", syntax.KindOf(c))
		}
		if cond {
			return in.eval(e.Then, local)
		}
		return in.eval(e.Else, local)

	case *syntax.Closure:
		// An unapplied closure is forced positionally: its body is
		// evaluated without binding the parameter.
		return in.eval(e.Body, local)

	case *syntax.App:
		return in.apply(e.Fun, e.Args, local, e.Span())

	case *syntax.ArrayLit:
		arr := make(syntax.Array, 0, len(e.Elems))
		for _, x := range e.Elems {
			v, err := in.eval(x, local)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil

	case *syntax.Func:
		return nil, errorf(Malformed, e.Span(), "function declaration %s in expression position", e.Name)
	case *syntax.Enum:
		return nil, errorf(Malformed, e.Span(), "enum declaration %s in expression position", e.Name)
	case *syntax.TypeDec:
		return nil, errorf(Malformed, e.Span(), "type declaration %s in expression position", e.Name)
	case *syntax.BadExpr:
		return nil, errorf(Malformed, e.Span(), "cannot evaluate a declaration that failed to parse")
	}
	return nil, errorf(Malformed, e.Span(), "unexpected %T", e)
}

// resolve returns the value of name: a local binding, a global function
// (as a reference to it, or its value if it takes no parameters), or a
// reference to a builtin.
func (in *Interpreter) resolve(name string, span syntax.Span, local *Env) (syntax.Value, error) {
	if x, ok := local.Lookup(name); ok {
		if a, ok := x.(*syntax.Atom); ok {
			return a.Value, nil
		}
		return in.eval(x, local)
	}
	if body, ok := in.globals.Lookup(name); ok {
		if _, ok := body.(*syntax.Closure); ok {
			return syntax.Id(name), nil
		}
		return in.eval(body, NewEnv())
	}
	if IsBuiltin(name) {
		return syntax.Id(name), nil
	}
	return nil, errorf(UndefinedName, span, "undefined name %s", name)
}

// apply evaluates the application of fun to args.
func (in *Interpreter) apply(fun syntax.Expr, args []syntax.Expr, local *Env, span syntax.Span) (syntax.Value, error) {
	switch fun := fun.(type) {
	case *syntax.Atom:
		id, ok := fun.Value.(syntax.Id)
		if !ok {
			return nil, errorf(TypeMismatch, fun.Span(), "cannot call %s value %s",
				syntax.KindOf(fun.Value), syntax.Quote(fun.Value))
		}
		return in.call(string(id), args, local, span)

	case *syntax.Closure:
		// An inline closure sees the bindings of the enclosing frame.
		return in.unfold("closure", fun, args, local, local.Child(), span)
	}

	// Any other callee must evaluate to a function reference.
	v, err := in.eval(fun, local)
	if err != nil {
		return nil, err
	}
	id, ok := v.(syntax.Id)
	if !ok {
		return nil, errorf(TypeMismatch, fun.Span(), "cannot call %s value %s", syntax.KindOf(v), syntax.Quote(v))
	}
	return in.callFunc(string(id), args, local, span)
}

// call applies the function called name. Builtins come first, then
// local bindings holding function references, then global functions.
func (in *Interpreter) call(name string, args []syntax.Expr, local *Env, span syntax.Span) (syntax.Value, error) {
	if !IsBuiltin(name) {
		if _, ok := local.Lookup(name); ok {
			v, err := in.resolve(name, span, local)
			if err != nil {
				return nil, err
			}
			id, ok := v.(syntax.Id)
			if !ok {
				return nil, errorf(TypeMismatch, span, "cannot call %s: it is bound to %s value %s",
					name, syntax.KindOf(v), syntax.Quote(v))
			}
			name = string(id)
		}
	}
	return in.callFunc(name, args, local, span)
}

// callFunc applies the builtin or global function called name. Arguments
// are evaluated in the caller's environment local.
func (in *Interpreter) callFunc(name string, args []syntax.Expr, local *Env, span syntax.Span) (syntax.Value, error) {
	if in.trace != nil {
		in.trace.Printf("call %s/%d @ %s (depth %d)", name, len(args), span, in.depth)
	}

	if b, ok := builtins[name]; ok {
		if len(args) != b.arity {
			return nil, errorf(ArityMismatch, span, "%s expects %d arguments, found %d", name, b.arity, len(args))
		}
		vals := make([]syntax.Value, len(args))
		for i, a := range args {
			v, err := in.eval(a, local)
			if err != nil {
				return nil, err
			}
			vals[i] = v
		}
		return b.fn(in, vals, span)
	}

	body, ok := in.globals.Lookup(name)
	if !ok {
		return nil, errorf(UndefinedName, span, "undefined name %s", name)
	}
	if c, ok := body.(*syntax.Closure); ok {
		// A global function starts from an empty frame.
		return in.unfold(name, c, args, local, NewEnv(), span)
	}

	// A global without parameters may evaluate to a function reference.
	v, err := in.eval(body, NewEnv())
	if err != nil {
		return nil, err
	}
	id, ok := v.(syntax.Id)
	if !ok {
		return nil, errorf(TypeMismatch, span, "cannot call %s: it is %s value %s",
			name, syntax.KindOf(v), syntax.Quote(v))
	}
	return in.callFunc(string(id), args, local, span)
}

// unfold binds the parameters of the closure chain c to args, evaluated
// in caller, inside frame, then evaluates the innermost body in frame.
// Fewer arguments than parameters is an error; surplus arguments are
// applied to the result, which must be a function reference.
func (in *Interpreter) unfold(name string, c *syntax.Closure, args []syntax.Expr, caller, frame *Env, span syntax.Span) (syntax.Value, error) {
	if n := len(syntax.ClosureParams(c)); len(args) < n {
		return nil, errorf(ArityMismatch, span, "%s expects %d arguments, found %d", name, n, len(args))
	}

	var body syntax.Expr = c
	i := 0
	for ; i < len(args); i++ {
		cl, ok := body.(*syntax.Closure)
		if !ok {
			break
		}
		v, err := in.eval(args[i], caller)
		if err != nil {
			return nil, err
		}
		frame.Bind(cl.Name(), syntax.NewAtom(copyValue(v), args[i].Span()))
		body = cl.Body
	}

	v, err := in.eval(body, frame)
	if err != nil || i == len(args) {
		return v, err
	}

	id, ok := v.(syntax.Id)
	if !ok {
		return nil, errorf(ArityMismatch, span, "%s expects %d arguments, found %d", name, i, len(args))
	}
	return in.callFunc(string(id), args[i:], caller, span)
}

// pipe evaluates x |> f a..., which is f a... x.
func (in *Interpreter) pipe(e *syntax.Binary, local *Env) (syntax.Value, error) {
	if app, ok := e.Y.(*syntax.App); ok {
		args := make([]syntax.Expr, 0, len(app.Args)+1)
		args = append(args, app.Args...)
		args = append(args, e.X)
		return in.apply(app.Fun, args, local, e.Span())
	}
	return in.apply(e.Y, []syntax.Expr{e.X}, local, e.Span())
}

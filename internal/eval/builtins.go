package eval

import (
	"fmt"

	"github.com/you-not-fish/snow/internal/syntax"
)

// builtin is a function implemented by the interpreter. Builtins are
// dispatched before any user-defined name and take their arguments
// fully evaluated.
type builtin struct {
	arity int
	fn    func(in *Interpreter, args []syntax.Value, span syntax.Span) (syntax.Value, error)
}

// builtins is the table of predeclared functions. It is filled by init
// because the operator entries call back into the interpreter.
var builtins map[string]builtin

func init() {
	builtins = map[string]builtin{
		"print_int":  {1, printKind("print_int", "Int")},
		"print_bool": {1, printKind("print_bool", "Bool")},
		"print_str":  {1, printKind("print_str", "String")},
		"nth":        {2, nth},
		"push":       {2, push},
		"pop":        {1, pop},
		"!":          {1, operatorNot},
		"|>":         {2, pipeValue},
	}
	for _, op := range []syntax.Token{
		syntax.Add, syntax.Sub, syntax.Mul, syntax.Div,
		syntax.Eql, syntax.Neq, syntax.Lss, syntax.Leq, syntax.Gtr, syntax.Geq,
		syntax.Cons,
	} {
		builtins[op.String()] = builtin{2, operator(op)}
	}
}

// IsBuiltin reports whether name is a predeclared function.
func IsBuiltin(name string) bool {
	_, ok := builtins[name]
	return ok
}

// printKind returns a print builtin accepting values of the given kind.
func printKind(name, kind string) func(*Interpreter, []syntax.Value, syntax.Span) (syntax.Value, error) {
	return func(in *Interpreter, args []syntax.Value, span syntax.Span) (syntax.Value, error) {
		v := args[0]
		if syntax.KindOf(v) != kind {
			return nil, errorf(TypeMismatch, span, "%s expects %s, found %s", name, kind, syntax.KindOf(v))
		}
		if _, err := fmt.Fprintln(in.stdout, v.String()); err != nil {
			return nil, err
		}
		return v, nil
	}
}

// nth arr i returns the i-th element of arr.
func nth(_ *Interpreter, args []syntax.Value, span syntax.Span) (syntax.Value, error) {
	arr, ok := args[0].(syntax.Array)
	if !ok {
		return nil, errorf(TypeMismatch, span, "nth expects an Array, found %s", syntax.KindOf(args[0]))
	}
	idx, ok := args[1].(syntax.Int)
	if !ok {
		return nil, errorf(TypeMismatch, span, "nth expects an Int index, found %s", syntax.KindOf(args[1]))
	}
	if idx < 0 || int64(idx) >= int64(len(arr)) {
		return nil, errorf(IndexOutOfRange, span, "index %d out of range for array of length %d", idx, len(arr))
	}
	return copyValue(arr[idx]), nil
}

// push arr v returns a copy of arr with v appended.
func push(_ *Interpreter, args []syntax.Value, span syntax.Span) (syntax.Value, error) {
	arr, ok := args[0].(syntax.Array)
	if !ok {
		return nil, errorf(TypeMismatch, span, "push expects an Array, found %s", syntax.KindOf(args[0]))
	}
	return append(arr.Clone(), copyValue(args[1])), nil
}

// pop arr returns the last element of arr.
func pop(_ *Interpreter, args []syntax.Value, span syntax.Span) (syntax.Value, error) {
	arr, ok := args[0].(syntax.Array)
	if !ok {
		return nil, errorf(TypeMismatch, span, "pop expects an Array, found %s", syntax.KindOf(args[0]))
	}
	if len(arr) == 0 {
		return nil, errorf(EmptyCollection, span, "pop on an empty array")
	}
	return copyValue(arr[len(arr)-1]), nil
}

func operator(op syntax.Token) func(*Interpreter, []syntax.Value, syntax.Span) (syntax.Value, error) {
	return func(_ *Interpreter, args []syntax.Value, span syntax.Span) (syntax.Value, error) {
		return binary(op, args[0], args[1], span)
	}
}

func operatorNot(_ *Interpreter, args []syntax.Value, span syntax.Span) (syntax.Value, error) {
	return unary(syntax.Not, args[0], span)
}

// pipeValue implements (|>) x f, which calls f with x.
func pipeValue(in *Interpreter, args []syntax.Value, span syntax.Span) (syntax.Value, error) {
	id, ok := args[1].(syntax.Id)
	if !ok {
		return nil, errorf(TypeMismatch, span, "cannot pipe into %s value %s", syntax.KindOf(args[1]), syntax.Quote(args[1]))
	}
	arg := syntax.NewAtom(args[0], span)
	return in.callFunc(string(id), []syntax.Expr{arg}, NewEnv(), span)
}

// copyValue returns v, deep-copying arrays so no two bindings share one.
func copyValue(v syntax.Value) syntax.Value {
	if arr, ok := v.(syntax.Array); ok {
		return arr.Clone()
	}
	return v
}

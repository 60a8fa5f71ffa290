package codegen

import (
	"github.com/you-not-fish/snow/internal/syntax"
)

// A runtimeFunc is a predeclared Snow function and its JavaScript
// implementation. All of them are curried.
type runtimeFunc struct {
	name string // Snow name
	js   string // JavaScript identifier
	impl string // JavaScript definition
}

// runtime lists the prelude in emission order.
var runtime = []runtimeFunc{
	{"print_int", "$print_int", "(x) => (console.log(String(x)), x)"},
	{"print_bool", "$print_bool", "(x) => (console.log(String(x)), x)"},
	{"print_str", "$print_str", "(x) => (console.log(x), x)"},
	{"nth", "$nth", `(xs) => (i) => {
  if (i < 0 || i >= xs.length) throw new RangeError("index " + i + " out of range for array of length " + xs.length);
  return xs[i];
}`},
	{"push", "$push", "(xs) => (x) => [...xs, x]"},
	{"pop", "$pop", `(xs) => {
  if (xs.length === 0) throw new RangeError("pop on an empty array");
  return xs[xs.length - 1];
}`},
	{"+", "$add", "(x) => (y) => x + y"},
	{"-", "$sub", "(x) => (y) => x - y"},
	{"*", "$mul", "(x) => (y) => x * y"},
	{"/", "$div", "(x) => (y) => Number.isInteger(x) && Number.isInteger(y) ? Math.trunc(x / y) : x / y"},
	{"==", "$eq", "(x) => (y) => x === y"},
	{"!=", "$ne", "(x) => (y) => x !== y"},
	{"<", "$lt", "(x) => (y) => x < y"},
	{"<=", "$le", "(x) => (y) => x <= y"},
	{">", "$gt", "(x) => (y) => x > y"},
	{">=", "$ge", "(x) => (y) => x >= y"},
	{":", "$cons", "(x) => (xs) => [x, ...xs]"},
	{"!", "$not", "(x) => !x"},
	{"|>", "$pipe", "(x) => (f) => f(x)"},
}

// runtimeIndex maps Snow names to entries of runtime.
var runtimeIndex = func() map[string]int {
	m := make(map[string]int, len(runtime))
	for i, f := range runtime {
		m[f.name] = i
	}
	return m
}()

func isRuntime(name string) bool {
	_, ok := runtimeIndex[name]
	return ok
}

// usedRuntime returns the prelude functions referenced by decls, in
// emission order. Integer division always goes through $div.
func usedRuntime(decls []syntax.Expr) []runtimeFunc {
	used := make([]bool, len(runtime))
	mark := func(name string) {
		if i, ok := runtimeIndex[name]; ok {
			used[i] = true
		}
	}
	for _, d := range decls {
		syntax.Inspect(d, func(n syntax.Node) bool {
			switch n := n.(type) {
			case *syntax.Atom:
				if id, ok := n.Value.(syntax.Id); ok {
					mark(string(id))
				}
			case *syntax.Binary:
				if n.Op == syntax.Div {
					mark("/")
				}
			}
			return true
		})
	}

	var funcs []runtimeFunc
	for i, f := range runtime {
		if used[i] {
			funcs = append(funcs, f)
		}
	}
	return funcs
}

package eval

import (
	"sort"

	"github.com/you-not-fish/snow/internal/syntax"
)

// Env maps names to expressions. The global environment holds function
// bodies; a local environment holds the evaluated arguments of one call
// frame, as atoms.
//
// A child environment sees its parent's bindings but never modifies
// them, so a frame cannot disturb its caller.
type Env struct {
	parent *Env
	elems  map[string]syntax.Expr
}

// NewEnv returns an empty environment.
func NewEnv() *Env {
	return &Env{elems: make(map[string]syntax.Expr)}
}

// Child returns a new environment whose lookups fall back to e.
func (e *Env) Child() *Env {
	c := NewEnv()
	c.parent = e
	return c
}

// Bind binds name to x in e, replacing any binding of the same name.
func (e *Env) Bind(name string, x syntax.Expr) {
	e.elems[name] = x
}

// Lookup returns the expression bound to name in e or its parents.
func (e *Env) Lookup(name string) (syntax.Expr, bool) {
	for s := e; s != nil; s = s.parent {
		if x, ok := s.elems[name]; ok {
			return x, true
		}
	}
	return nil, false
}

// Len returns the number of distinct names visible in e.
func (e *Env) Len() int {
	return len(e.Names())
}

// Names returns the visible names in sorted order.
func (e *Env) Names() []string {
	seen := make(map[string]bool)
	var names []string
	for s := e; s != nil; s = s.parent {
		for name := range s.elems {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names
}

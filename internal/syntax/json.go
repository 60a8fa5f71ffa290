package syntax

import (
	"encoding/json"
	"io"
)

// FprintJSON writes a JSON representation of the AST to w.
func FprintJSON(w io.Writer, node Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toJSON(node))
}

// FprintJSONAll writes the declaration list as a JSON array.
func FprintJSONAll(w io.Writer, decls []Expr) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(mapSlice(decls, func(e Expr) interface{} { return toJSON(e) }))
}

func toJSON(node Node) interface{} {
	if node == nil {
		return nil
	}

	switch n := node.(type) {
	case *Func:
		m := map[string]interface{}{
			"type": "Func",
			"span": n.span.String(),
			"name": n.Name,
			"body": toJSON(n.Body),
		}
		if len(n.Types) > 0 {
			m["types"] = n.Types
		}
		return m

	case *Enum:
		return map[string]interface{}{
			"type": "Enum",
			"span": n.span.String(),
			"name": n.Name,
			"variants": mapSlice(n.Variants, func(v Variant) interface{} {
				fields := v.Fields
				if fields == nil {
					fields = []string{}
				}
				return map[string]interface{}{
					"name":   v.Name,
					"span":   v.Span.String(),
					"fields": fields,
				}
			}),
		}

	case *TypeDec:
		return map[string]interface{}{
			"type":  "TypeDec",
			"span":  n.span.String(),
			"name":  n.Name,
			"types": n.Types,
		}

	case *Atom:
		return map[string]interface{}{
			"type":  "Atom",
			"span":  n.span.String(),
			"kind":  KindOf(n.Value),
			"value": valueJSON(n.Value),
		}

	case *Unary:
		return map[string]interface{}{
			"type": "Unary",
			"span": n.span.String(),
			"op":   n.Op.String(),
			"x":    toJSON(n.X),
		}

	case *Binary:
		return map[string]interface{}{
			"type": "Binary",
			"span": n.span.String(),
			"op":   n.Op.String(),
			"x":    toJSON(n.X),
			"y":    toJSON(n.Y),
		}

	case *IfElse:
		return map[string]interface{}{
			"type": "IfElse",
			"span": n.span.String(),
			"cond": toJSON(n.Cond),
			"then": toJSON(n.Then),
			"else": toJSON(n.Else),
		}

	case *Closure:
		return map[string]interface{}{
			"type":  "Closure",
			"span":  n.span.String(),
			"param": n.Name(),
			"body":  toJSON(n.Body),
		}

	case *App:
		return map[string]interface{}{
			"type": "App",
			"span": n.span.String(),
			"fun":  toJSON(n.Fun),
			"args": mapSliceExpr(n.Args),
		}

	case *ArrayLit:
		return map[string]interface{}{
			"type":  "ArrayLit",
			"span":  n.span.String(),
			"elems": mapSliceExpr(n.Elems),
		}

	case *BadExpr:
		return map[string]interface{}{
			"type": "BadExpr",
			"span": n.span.String(),
		}

	default:
		return map[string]interface{}{
			"type": "Unknown",
		}
	}
}

// valueJSON maps an atom value onto the closest JSON type.
func valueJSON(v Value) interface{} {
	switch v := v.(type) {
	case Int:
		return int64(v)
	case Float:
		return float64(v)
	case Bool:
		return bool(v)
	case Array:
		return mapSlice(v, valueJSON)
	case nil:
		return nil
	}
	return v.String()
}

// Helper functions to map slices

func mapSlice[T any](s []T, f func(T) interface{}) []interface{} {
	result := make([]interface{}, len(s))
	for i, v := range s {
		result[i] = f(v)
	}
	return result
}

func mapSliceExpr(s []Expr) []interface{} {
	return mapSlice(s, func(e Expr) interface{} { return toJSON(e) })
}

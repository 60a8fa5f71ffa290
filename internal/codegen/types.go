package codegen

import (
	"strings"
)

// jsType maps a Snow type name to a JSDoc type expression.
func jsType(t string) string {
	if strings.HasPrefix(t, "[") && strings.HasSuffix(t, "]") {
		return "Array<" + jsType(t[1:len(t)-1]) + ">"
	}
	switch t {
	case "Int", "Float":
		return "number"
	case "Bool":
		return "boolean"
	case "String", "Char":
		return "string"
	}
	return t
}

// jsFuncType returns the JSDoc type of a curried function whose parameter
// and result types are types, in order. A single type is returned as is.
func jsFuncType(types []string) string {
	switch len(types) {
	case 0:
		return "*"
	case 1:
		return jsType(types[0])
	}
	return "function(" + jsType(types[0]) + "): " + jsFuncType(types[1:])
}

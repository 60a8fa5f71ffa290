package eval

import (
	"github.com/you-not-fish/snow/internal/syntax"
)

// unary applies a prefix operator to an evaluated operand.
func unary(op syntax.Token, x syntax.Value, span syntax.Span) (syntax.Value, error) {
	switch op {
	case syntax.Sub:
		switch x := x.(type) {
		case syntax.Int:
			return -x, nil
		case syntax.Float:
			return -x, nil
		}
	case syntax.Not:
		if b, ok := x.(syntax.Bool); ok {
			return !b, nil
		}
	}
	return nil, errorf(TypeMismatch, span, "operator %s not defined for %s", op, syntax.KindOf(x))
}

// binary applies an arithmetic, comparison or cons operator to two
// evaluated operands of matching kinds.
func binary(op syntax.Token, x, y syntax.Value, span syntax.Span) (syntax.Value, error) {
	switch x := x.(type) {
	case syntax.Int:
		if y, ok := y.(syntax.Int); ok {
			return intOp(op, x, y, span)
		}
	case syntax.Float:
		if y, ok := y.(syntax.Float); ok {
			if v, ok := floatOp(op, x, y); ok {
				return v, nil
			}
		}
	case syntax.String:
		if y, ok := y.(syntax.String); ok {
			switch op {
			case syntax.Add:
				return x + y, nil
			case syntax.Eql:
				return syntax.Bool(x == y), nil
			case syntax.Neq:
				return syntax.Bool(x != y), nil
			}
		}
	case syntax.Bool:
		if y, ok := y.(syntax.Bool); ok {
			if v, ok := equality(op, x == y); ok {
				return v, nil
			}
		}
	case syntax.Char:
		if y, ok := y.(syntax.Char); ok {
			if v, ok := equality(op, x == y); ok {
				return v, nil
			}
		}
	}

	if op == syntax.Cons {
		if arr, ok := y.(syntax.Array); ok {
			return append(syntax.Array{x}, arr.Clone()...), nil
		}
	}

	return nil, errorf(TypeMismatch, span, "operator %s not defined for %s and %s",
		op, syntax.KindOf(x), syntax.KindOf(y))
}

func intOp(op syntax.Token, x, y syntax.Int, span syntax.Span) (syntax.Value, error) {
	switch op {
	case syntax.Add:
		return x + y, nil
	case syntax.Sub:
		return x - y, nil
	case syntax.Mul:
		return x * y, nil
	case syntax.Div:
		if y == 0 {
			return nil, errorf(DivisionByZero, span, "integer division by zero")
		}
		return x / y, nil
	case syntax.Lss:
		return syntax.Bool(x < y), nil
	case syntax.Leq:
		return syntax.Bool(x <= y), nil
	case syntax.Gtr:
		return syntax.Bool(x > y), nil
	case syntax.Geq:
		return syntax.Bool(x >= y), nil
	case syntax.Eql:
		return syntax.Bool(x == y), nil
	case syntax.Neq:
		return syntax.Bool(x != y), nil
	}
	return nil, errorf(TypeMismatch, span, "operator %s not defined for Int and Int", op)
}

func floatOp(op syntax.Token, x, y syntax.Float) (syntax.Value, bool) {
	switch op {
	case syntax.Add:
		return x + y, true
	case syntax.Sub:
		return x - y, true
	case syntax.Mul:
		return x * y, true
	case syntax.Div:
		return x / y, true
	case syntax.Lss:
		return syntax.Bool(x < y), true
	case syntax.Leq:
		return syntax.Bool(x <= y), true
	case syntax.Gtr:
		return syntax.Bool(x > y), true
	case syntax.Geq:
		return syntax.Bool(x >= y), true
	case syntax.Eql:
		return syntax.Bool(x == y), true
	case syntax.Neq:
		return syntax.Bool(x != y), true
	}
	return nil, false
}

func equality(op syntax.Token, eq bool) (syntax.Value, bool) {
	switch op {
	case syntax.Eql:
		return syntax.Bool(eq), true
	case syntax.Neq:
		return syntax.Bool(!eq), true
	}
	return nil, false
}

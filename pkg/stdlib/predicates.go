package stdlib

import (
	"math/big"

	"github.com/arborlang/arbor/pkg/lisperr"
	"github.com/arborlang/arbor/pkg/value"
)

func fixed1(name string, fn func(value.Value) (value.Value, error)) value.BuiltinFunc {
	return func(args []value.Value, env value.Environment) (value.Value, error) {
		if len(args) != 1 {
			return nil, lisperr.Arityf("%s: expected 1 argument, got %d", name, len(args))
		}
		return fn(args[0])
	}
}

func fixed2(name string, fn func(a, b value.Value) (value.Value, error)) value.BuiltinFunc {
	return func(args []value.Value, env value.Environment) (value.Value, error) {
		if len(args) != 2 {
			return nil, lisperr.Arityf("%s: expected 2 arguments, got %d", name, len(args))
		}
		return fn(args[0], args[1])
	}
}

func booleanP(x value.Value) (value.Value, error) {
	_, ok := x.(value.Boolean)
	return value.Boolean(ok), nil
}

func notProc(x value.Value) (value.Value, error) {
	return value.Boolean(!value.Truthy(x)), nil
}

func equalP(x, y value.Value) (value.Value, error) {
	return value.Boolean(deepEqual(x, y)), nil
}

func deepEqual(x, y value.Value) bool {
	px, xok := x.(*value.Pair)
	py, yok := y.(*value.Pair)
	if xok && yok {
		return deepEqual(px.Car, py.Car) && deepEqual(px.Cdr, py.Cdr)
	}
	if isNumber(x) && isNumber(y) {
		return numEq(x, y)
	}
	return x == y
}

func numEq(x, y value.Value) bool {
	xi, xok := x.(value.Integer)
	yi, yok := y.(value.Integer)
	if xok && yok {
		return xi.V.Cmp(yi.V) == 0
	}
	return asFloat(x) == asFloat(y)
}

func eqP(x, y value.Value) (value.Value, error) {
	if isNumber(x) && isNumber(y) {
		return value.Boolean(numEq(x, y)), nil
	}
	if xs, xok := x.(value.Symbol); xok {
		if ys, yok := y.(value.Symbol); yok {
			return value.Boolean(xs == ys), nil
		}
	}
	return value.Boolean(x == y), nil
}

func pairP(x value.Value) (value.Value, error) {
	_, ok := x.(*value.Pair)
	return value.Boolean(ok), nil
}

func promiseP(x value.Value) (value.Value, error) {
	_, ok := x.(*value.Promise)
	return value.Boolean(ok), nil
}

func nullP(x value.Value) (value.Value, error) {
	return value.Boolean(value.IsNil(x)), nil
}

func listP(x value.Value) (value.Value, error) {
	return value.Boolean(value.ListP(x)), nil
}

func stringP(x value.Value) (value.Value, error) {
	s, ok := x.(value.String)
	return value.Boolean(ok && value.StringP(string(s))), nil
}

func symbolP(x value.Value) (value.Value, error) {
	_, ok := x.(value.Symbol)
	return value.Boolean(ok), nil
}

func numberP(x value.Value) (value.Value, error) {
	return value.Boolean(isNumber(x)), nil
}

func integerP(x value.Value) (value.Value, error) {
	switch n := x.(type) {
	case value.Integer:
		return value.Boolean(true), nil
	case value.Real:
		return value.Boolean(float64(n) == float64(int64(n))), nil
	}
	return value.Boolean(false), nil
}

func atomP(x value.Value) (value.Value, error) {
	switch x.(type) {
	case value.Boolean, value.Integer, value.Real, value.Symbol, value.String:
		return value.Boolean(true), nil
	}
	return value.Boolean(value.IsNil(x)), nil
}

func evenP(x value.Value) (value.Value, error) {
	i, ok := x.(value.Integer)
	if !ok {
		return nil, lisperr.Typef("even?: not an integer: %s", x.String())
	}
	return value.Boolean(new(big.Int).Mod(i.V, big.NewInt(2)).Sign() == 0), nil
}

func oddP(x value.Value) (value.Value, error) {
	i, ok := x.(value.Integer)
	if !ok {
		return nil, lisperr.Typef("odd?: not an integer: %s", x.String())
	}
	return value.Boolean(new(big.Int).Mod(i.V, big.NewInt(2)).Sign() != 0), nil
}

func zeroP(x value.Value) (value.Value, error) {
	if !isNumber(x) {
		return nil, lisperr.Typef("zero?: not a number: %s", x.String())
	}
	if i, ok := x.(value.Integer); ok {
		return value.Boolean(i.V.Sign() == 0), nil
	}
	return value.Boolean(asFloat(x) == 0), nil
}

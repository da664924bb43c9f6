package evaluator

import (
	"github.com/arborlang/arbor/pkg/lisperr"
	"github.com/arborlang/arbor/pkg/value"
)

// doDefine implements both (define name expr) and the procedure-sugar
// form (define (name . formals) body...), which desugars to (define
// name (lambda formals body...)). Either form defines in the current
// frame and returns the defined symbol.
func doDefine(operands value.Value, env value.Environment) (value.Value, error) {
	items, err := operandSlice("define", operands)
	if err != nil {
		return nil, err
	}
	if err := requireArity("define", len(items), 2, -1); err != nil {
		return nil, err
	}

	switch target := items[0].(type) {
	case value.Symbol:
		if err := requireArity("define", len(items), 2, 2); err != nil {
			return nil, err
		}
		v, err := Eval(items[1], env)
		if err != nil {
			return nil, err
		}
		env.Define(target, v)
		return target, nil
	case *value.Pair:
		name, ok := target.Car.(value.Symbol)
		if !ok {
			return nil, lisperr.Shapef("non-symbol: %s", target.Car.String())
		}
		proc, err := doLambda(value.NewPair(target.Cdr, value.SliceToList(items[1:])), env)
		if err != nil {
			return nil, err
		}
		env.Define(name, proc)
		return name, nil
	default:
		return nil, lisperr.Shapef("non-symbol: %s", target.String())
	}
}

// doLet implements (let ((name expr) ...) body...): every binding
// expression is evaluated in the enclosing environment, then bound
// simultaneously in a new child frame (no binding sees an earlier one).
func doLet(operands value.Value, env value.Environment) (value.Value, error) {
	items, err := operandSlice("let", operands)
	if err != nil {
		return nil, err
	}
	if err := requireArity("let", len(items), 2, -1); err != nil {
		return nil, err
	}

	letEnv, err := makeLetFrame(items[0], env)
	if err != nil {
		return nil, err
	}
	return evalSequence(items[1:], letEnv)
}

func makeLetFrame(bindings value.Value, env value.Environment) (value.Environment, error) {
	if !value.ListP(bindings) {
		return nil, lisperr.Shapef("bad bindings list in let form")
	}
	items := value.ListToSlice(bindings)
	formals := make([]value.Symbol, len(items))
	vals := make([]value.Value, len(items))
	for i, b := range items {
		if !value.ListP(b) || value.ListLength(b) != 2 {
			return nil, lisperr.Shapef("bad binding in let form: %s", b.String())
		}
		pair := value.ListToSlice(b)
		sym, ok := pair[0].(value.Symbol)
		if !ok {
			return nil, lisperr.Shapef("bad binding in let form: %s is not a symbol", pair[0].String())
		}
		v, err := Eval(pair[1], env)
		if err != nil {
			return nil, err
		}
		formals[i] = sym
		vals[i] = v
	}
	if _, err := checkFormals(value.SliceToList(symbolsToValues(formals))); err != nil {
		return nil, err
	}
	return env.MakeChild(formals, vals)
}

func symbolsToValues(syms []value.Symbol) []value.Value {
	out := make([]value.Value, len(syms))
	for i, s := range syms {
		out[i] = s
	}
	return out
}

package evaluator

import (
	"github.com/arborlang/arbor/pkg/lisperr"
	"github.com/arborlang/arbor/pkg/value"
)

// doDefineMacro implements (define-macro (name . formals) body...). A
// macro is applied to its call's unevaluated operands; the expression
// its body produces is re-evaluated in the calling environment (see
// applyMacro in eval.go).
func doDefineMacro(operands value.Value, env value.Environment) (value.Value, error) {
	items, err := operandSlice("define-macro", operands)
	if err != nil {
		return nil, err
	}
	if err := requireArity("define-macro", len(items), 2, -1); err != nil {
		return nil, err
	}
	target, ok := items[0].(*value.Pair)
	if !ok {
		return nil, lisperr.Shapef("ill-formed define-macro: %s", items[0].String())
	}
	name, ok := target.Car.(value.Symbol)
	if !ok {
		return nil, lisperr.Shapef("ill-formed define-macro: %s is not a symbol", target.Car.String())
	}
	formals, err := checkFormals(target.Cdr)
	if err != nil {
		return nil, err
	}
	macro := &value.Macro{Formals: formals, Body: items[1:], Env: env}
	env.Define(name, macro)
	return name, nil
}

// doQuasiquote implements (quasiquote template). Nested quasiquotes and
// unquotes are tracked by depth so that only an unquote at the current
// nesting level splices in an evaluated value; everything else is
// copied as literal structure.
func doQuasiquote(operands value.Value, env value.Environment) (value.Value, error) {
	items, err := operandSlice("quasiquote", operands)
	if err != nil {
		return nil, err
	}
	if err := requireArity("quasiquote", len(items), 1, 1); err != nil {
		return nil, err
	}
	return quasiquoteItem(items[0], env, 1)
}

func quasiquoteItem(val value.Value, env value.Environment, level int) (value.Value, error) {
	pair, ok := val.(*value.Pair)
	if !ok {
		return val, nil
	}

	if sym, ok := pair.Car.(value.Symbol); ok {
		switch sym {
		case "unquote":
			level--
			if level == 0 {
				rest, err := operandSlice("unquote", pair.Cdr)
				if err != nil {
					return nil, err
				}
				if err := requireArity("unquote", len(rest), 1, 1); err != nil {
					return nil, err
				}
				return Eval(rest[0], env)
			}
		case "quasiquote":
			level++
		}
	}

	first, err := quasiquoteItem(pair.Car, env, level)
	if err != nil {
		return nil, err
	}
	second, err := quasiquoteItem(pair.Cdr, env, level)
	if err != nil {
		return nil, err
	}
	return value.NewPair(first, second), nil
}

// doUnquoteOutsideQuasiquote reports the error for an unquote
// encountered outside any enclosing quasiquote; doQuasiquote handles
// unquote directly when it does occur inside one.
func doUnquoteOutsideQuasiquote(operands value.Value, env value.Environment) (value.Value, error) {
	return nil, lisperr.Shapef("unquote outside of quasiquote")
}

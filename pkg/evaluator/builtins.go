package evaluator

import (
	"github.com/arborlang/arbor/pkg/lisperr"
	"github.com/arborlang/arbor/pkg/value"
)

// RegisterCore installs the handful of builtins that need direct access
// to Eval/Apply/CompleteApply themselves (eval, apply, map, filter,
// reduce, procedure?) into frame. Every other builtin (arithmetic,
// pairs, predicates, I/O) is a pure function of its arguments and lives
// in pkg/stdlib instead.
func RegisterCore(frame *Frame) {
	frame.Define("eval", &value.BuiltinProc{Name: "eval", UseEnv: true, Fn: builtinEval})
	frame.Define("apply", &value.BuiltinProc{Name: "apply", UseEnv: true, Fn: builtinApply})
	frame.Define("procedure?", &value.BuiltinProc{Name: "procedure?", Fn: builtinProcedureP})
	frame.Define("map", &value.BuiltinProc{Name: "map", UseEnv: true, Fn: builtinMap})
	frame.Define("filter", &value.BuiltinProc{Name: "filter", UseEnv: true, Fn: builtinFilter})
	frame.Define("reduce", &value.BuiltinProc{Name: "reduce", UseEnv: true, Fn: builtinReduce})
	frame.Define("undefined", value.Undefined)
}

func builtinEval(args []value.Value, env value.Environment) (value.Value, error) {
	if len(args) != 1 {
		return nil, lisperr.Arityf("eval: expected 1 argument, got %d", len(args))
	}
	return Eval(args[0], env)
}

func builtinApply(args []value.Value, env value.Environment) (value.Value, error) {
	if len(args) != 2 {
		return nil, lisperr.Arityf("apply: expected 2 arguments, got %d", len(args))
	}
	if !value.ListP(args[1]) {
		return nil, lisperr.Typef("apply: arguments are not a list: %s", args[1].String())
	}
	return CompleteApply(args[0], value.ListToSlice(args[1]), env)
}

func builtinProcedureP(args []value.Value, env value.Environment) (value.Value, error) {
	if len(args) != 1 {
		return nil, lisperr.Arityf("procedure?: expected 1 argument, got %d", len(args))
	}
	return value.Boolean(value.ProcedureP(args[0])), nil
}

func requireProcedure(name string, v value.Value) error {
	if !value.ProcedureP(v) {
		return lisperr.Typef("%s: not a procedure: %s", name, v.String())
	}
	return nil
}

func requireList(name string, v value.Value) error {
	if !value.ListP(v) {
		return lisperr.Typef("%s: not a list: %s", name, v.String())
	}
	return nil
}

func builtinMap(args []value.Value, env value.Environment) (value.Value, error) {
	if len(args) != 2 {
		return nil, lisperr.Arityf("map: expected 2 arguments, got %d", len(args))
	}
	fn, list := args[0], args[1]
	if err := requireProcedure("map", fn); err != nil {
		return nil, err
	}
	if err := requireList("map", list); err != nil {
		return nil, err
	}
	items := value.ListToSlice(list)
	out := make([]value.Value, len(items))
	for i, item := range items {
		v, err := CompleteApply(fn, []value.Value{item}, env)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return value.SliceToList(out), nil
}

func builtinFilter(args []value.Value, env value.Environment) (value.Value, error) {
	if len(args) != 2 {
		return nil, lisperr.Arityf("filter: expected 2 arguments, got %d", len(args))
	}
	fn, list := args[0], args[1]
	if err := requireProcedure("filter", fn); err != nil {
		return nil, err
	}
	if err := requireList("filter", list); err != nil {
		return nil, err
	}
	var out []value.Value
	for _, item := range value.ListToSlice(list) {
		keep, err := CompleteApply(fn, []value.Value{item}, env)
		if err != nil {
			return nil, err
		}
		if value.Truthy(keep) {
			out = append(out, item)
		}
	}
	return value.SliceToList(out), nil
}

func builtinReduce(args []value.Value, env value.Environment) (value.Value, error) {
	if len(args) != 2 {
		return nil, lisperr.Arityf("reduce: expected 2 arguments, got %d", len(args))
	}
	fn, list := args[0], args[1]
	if err := requireProcedure("reduce", fn); err != nil {
		return nil, err
	}
	if err := requireList("reduce", list); err != nil {
		return nil, err
	}
	items := value.ListToSlice(list)
	if len(items) == 0 {
		return nil, lisperr.Shapef("reduce: list must not be empty")
	}
	acc := items[0]
	for _, item := range items[1:] {
		v, err := CompleteApply(fn, []value.Value{acc, item}, env)
		if err != nil {
			return nil, err
		}
		acc = v
	}
	return acc, nil
}

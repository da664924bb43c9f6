package evaluator

import "github.com/arborlang/arbor/pkg/value"

// doLambda implements (lambda formals body...): builds a closure over
// the current environment.
func doLambda(operands value.Value, env value.Environment) (value.Value, error) {
	items, err := operandSlice("lambda", operands)
	if err != nil {
		return nil, err
	}
	if err := requireArity("lambda", len(items), 2, -1); err != nil {
		return nil, err
	}
	formals, err := checkFormals(items[0])
	if err != nil {
		return nil, err
	}
	return &value.LexicalProc{Formals: formals, Body: items[1:], Env: env}, nil
}

// doMu implements (mu formals body...): builds a dynamically-scoped
// procedure that does not capture its defining environment; free
// variables in its body resolve against the caller's frame at apply
// time.
func doMu(operands value.Value, env value.Environment) (value.Value, error) {
	items, err := operandSlice("mu", operands)
	if err != nil {
		return nil, err
	}
	if err := requireArity("mu", len(items), 2, -1); err != nil {
		return nil, err
	}
	formals, err := checkFormals(items[0])
	if err != nil {
		return nil, err
	}
	return &value.DynamicProc{Formals: formals, Body: items[1:]}, nil
}

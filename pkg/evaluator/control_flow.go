package evaluator

import (
	"github.com/arborlang/arbor/pkg/lisperr"
	"github.com/arborlang/arbor/pkg/value"
)

// doIf implements (if test conseq [alt]). test is evaluated eagerly;
// whichever branch is taken is evaluated in tail position. A missing
// alt on a false test yields the undefined value.
func doIf(operands value.Value, env value.Environment) (value.Value, error) {
	items, err := operandSlice("if", operands)
	if err != nil {
		return nil, err
	}
	if err := requireArity("if", len(items), 2, 3); err != nil {
		return nil, err
	}
	test, err := Eval(items[0], env)
	if err != nil {
		return nil, err
	}
	if value.Truthy(test) {
		return evalTail(items[1], env)
	}
	if len(items) == 3 {
		return evalTail(items[2], env)
	}
	return value.Undefined, nil
}

// doAnd implements short-circuiting (and e1 e2 ... en). Every operand
// but the last is evaluated eagerly and stops the chain the moment one
// is false; the last operand is evaluated in tail position.
func doAnd(operands value.Value, env value.Environment) (value.Value, error) {
	items := value.ListToSlice(operands)
	return evalShortCircuit(items, env, false)
}

// doOr implements short-circuiting (or e1 e2 ... en): stops the moment
// an operand is true.
func doOr(operands value.Value, env value.Environment) (value.Value, error) {
	items := value.ListToSlice(operands)
	return evalShortCircuit(items, env, true)
}

func evalShortCircuit(items []value.Value, env value.Environment, stopOnTrue bool) (value.Value, error) {
	if len(items) == 0 {
		return value.Boolean(!stopOnTrue), nil
	}
	for i, item := range items {
		last := i == len(items)-1
		var v value.Value
		var err error
		if last {
			return evalTail(item, env)
		}
		v, err = Eval(item, env)
		if err != nil {
			return nil, err
		}
		if value.Truthy(v) == stopOnTrue {
			return v, nil
		}
	}
	panic("unreachable")
}

// doCond implements (cond (test expr...) ... (else expr...)). else is
// only recognized as the final clause's test. A clause with no body
// evaluates to its own test's value.
func doCond(operands value.Value, env value.Environment) (value.Value, error) {
	clauses := value.ListToSlice(operands)
	for i, clauseExpr := range clauses {
		clause, ok := clauseExpr.(*value.Pair)
		if !ok || !value.ListP(clause) {
			return nil, clauseShapeError()
		}
		parts := value.ListToSlice(clause)

		var test value.Value
		var err error
		if sym, ok := parts[0].(value.Symbol); ok && sym == "else" {
			if i != len(clauses)-1 {
				return nil, clauseShapeError()
			}
			test = value.Boolean(true)
		} else {
			test, err = Eval(parts[0], env)
			if err != nil {
				return nil, err
			}
		}

		if value.Truthy(test) {
			if len(parts) == 1 {
				return test, nil
			}
			return evalSequence(parts[1:], env)
		}
	}
	return value.Undefined, nil
}

func clauseShapeError() error {
	return lisperr.Shapef("ill-formed cond clause")
}

// doBegin implements (begin e1 e2 ... en): an implicit sequence, final
// expression in tail position.
func doBegin(operands value.Value, env value.Environment) (value.Value, error) {
	items, err := operandSlice("begin", operands)
	if err != nil {
		return nil, err
	}
	if err := requireArity("begin", len(items), 1, -1); err != nil {
		return nil, err
	}
	return evalSequence(items, env)
}

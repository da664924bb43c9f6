package evaluator

import (
	"github.com/arborlang/arbor/pkg/lisperr"
	"github.com/arborlang/arbor/pkg/value"
)

// operandSlice returns the elements of a special form's operand list,
// rejecting an improper list the same way a malformed call would be
// rejected at the combination level.
func operandSlice(name string, operands value.Value) ([]value.Value, error) {
	if !value.ListP(operands) {
		return nil, lisperr.Shapef("ill-formed special form: (%s ...)", name)
	}
	return value.ListToSlice(operands), nil
}

// requireArity checks that got operands satisfy [min, max], max == -1
// meaning unbounded.
func requireArity(name string, got, min, max int) error {
	if got < min || (max >= 0 && got > max) {
		return lisperr.Shapef("ill-formed special form: (%s ...)", name)
	}
	return nil
}

// checkFormals validates and extracts a formals list: a proper list of
// distinct symbols. Grounded on original_source/lisp_interpreter.py's
// check_formals.
func checkFormals(formalsExpr value.Value) ([]value.Symbol, error) {
	if !value.ListP(formalsExpr) {
		return nil, lisperr.Shapef("ill-formed formals: %s", formalsExpr.String())
	}
	items := value.ListToSlice(formalsExpr)
	seen := make(map[value.Symbol]bool, len(items))
	out := make([]value.Symbol, len(items))
	for i, item := range items {
		sym, ok := item.(value.Symbol)
		if !ok {
			return nil, lisperr.Shapef("ill-formed formals: %s is not a symbol", item.String())
		}
		if seen[sym] {
			return nil, lisperr.Shapef("ill-formed formals: duplicate parameter %s", sym)
		}
		seen[sym] = true
		out[i] = sym
	}
	return out, nil
}

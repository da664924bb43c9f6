package evaluator

import (
	"github.com/arborlang/arbor/pkg/lisperr"
	"github.com/arborlang/arbor/pkg/value"
)

// specialForm handles the unevaluated operands of a combination whose
// head is a recognized keyword. operands is the cdr of the combination
// (a proper list, or Nil). Handlers call Eval for non-tail sub-positions
// and evalTail for the sub-position that is in tail position of the
// enclosing combination, returning that result (possibly a Thunk)
// directly rather than driving it themselves.
type specialForm func(operands value.Value, env value.Environment) (value.Value, error)

// specialForms is the fixed dispatch table of reserved keywords: a
// symbol found here is never looked up as a variable and never
// evaluated as an operator, even if shadowed by a local binding of the
// same name. It is filled in by init because several handlers call
// Eval, which reads this table.
var specialForms map[value.Symbol]specialForm

func init() {
	specialForms = map[value.Symbol]specialForm{
		"quote":        doQuote,
		"if":           doIf,
		"and":          doAnd,
		"or":           doOr,
		"cond":         doCond,
		"begin":        doBegin,
		"let":          doLet,
		"lambda":       doLambda,
		"mu":           doMu,
		"define":       doDefine,
		"define-macro": doDefineMacro,
		"quasiquote":   doQuasiquote,
		"unquote":      doUnquoteOutsideQuasiquote,
		"delay":        doDelay,
		"cons-stream":  doConsStream,
	}
}

func maxRecursionError() *lisperr.Error {
	return lisperr.Hostf("maximum recursion depth exceeded")
}

// evalOnce performs exactly one dispatch step: it does not itself drive
// a returned Thunk, leaving that to whichever Eval call is currently
// looping.
func evalOnce(expr value.Value, env value.Environment) (value.Value, error) {
	if sym, ok := expr.(value.Symbol); ok {
		return env.Lookup(sym)
	}
	if value.SelfEvaluating(expr) {
		return expr, nil
	}

	pair, ok := expr.(*value.Pair)
	if !ok {
		return nil, lisperr.Shapef("cannot evaluate: %s", expr.String())
	}
	if !value.ListP(pair) {
		return nil, lisperr.Shapef("combination is not a proper list: %s", expr.String())
	}

	if sym, ok := pair.Car.(value.Symbol); ok {
		if form, ok := specialForms[sym]; ok {
			return form(pair.Cdr, env)
		}
	}

	proc, err := Eval(pair.Car, env)
	if err != nil {
		return nil, err
	}

	if macro, ok := proc.(*value.Macro); ok {
		expanded, err := applyMacro(macro, value.ListToSlice(pair.Cdr))
		if err != nil {
			return nil, err
		}
		return evalTail(expanded, env)
	}

	args, err := evalArgs(pair.Cdr, env)
	if err != nil {
		return nil, err
	}
	return Apply(proc, args, env)
}

// evalArgs evaluates each operand of a combination left to right, in
// non-tail position.
func evalArgs(operands value.Value, env value.Environment) ([]value.Value, error) {
	items := value.ListToSlice(operands)
	out := make([]value.Value, len(items))
	for i, item := range items {
		v, err := Eval(item, env)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Apply invokes procedure on already-evaluated args. For a host builtin
// this calls straight through; for a lexical or dynamic procedure it
// binds formals to args in a fresh frame and evaluates the body as a
// sequence whose final expression is in tail position, so the result
// may be a Thunk that the caller's trampoline is responsible for
// driving.
func Apply(procedure value.Value, args []value.Value, callerEnv value.Environment) (value.Value, error) {
	switch p := procedure.(type) {
	case *value.BuiltinProc:
		return callBuiltin(p, args, callerEnv)
	case *value.LexicalProc:
		child, err := p.Env.MakeChild(p.Formals, args)
		if err != nil {
			return nil, err
		}
		return evalSequence(p.Body, child)
	case *value.DynamicProc:
		child, err := callerEnv.MakeChild(p.Formals, args)
		if err != nil {
			return nil, err
		}
		return evalSequence(p.Body, child)
	case *value.Macro:
		return nil, lisperr.Typef("macro %s cannot be applied to evaluated arguments", p.String())
	default:
		return nil, lisperr.Typef("the object %s is not applicable", procedure.String())
	}
}

// callBuiltin invokes a host function, converting any panic it raises
// into a host-kind interpreter error rather than letting it unwind past
// the evaluator.
func callBuiltin(p *value.BuiltinProc, args []value.Value, env value.Environment) (result value.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = lisperr.Hostf("%s: %v", p.Name, r)
		}
	}()
	v, callErr := p.Fn(args, env)
	if callErr != nil {
		return nil, lisperr.FromHost(callErr)
	}
	return v, nil
}

// applyMacro binds a macro's formals to its unevaluated operands and
// evaluates its body to produce a replacement expression, which the
// caller re-evaluates in the calling environment. The body is driven to
// completion here (not left as a Thunk) because the expansion itself,
// not a value derived from it, is what must be returned.
func applyMacro(macro *value.Macro, operands []value.Value) (value.Value, error) {
	child, err := macro.Env.MakeChild(macro.Formals, operands)
	if err != nil {
		return nil, err
	}
	expansion, err := evalSequence(macro.Body, child)
	if err != nil {
		return nil, err
	}
	if th, ok := expansion.(*Thunk); ok {
		return Eval(th.Expr, th.Env)
	}
	return expansion, nil
}

package evaluator

import "github.com/arborlang/arbor/pkg/value"

// Thunk is a deferred (expr, env) pair used internally by the tail-call
// trampoline. It is never observed by user code: the only place that
// produces one (evalTail) and the places that consume one (Eval's
// driving loop, and CompleteApply and applyMacro, which hand it to
// Eval) all live in this package.
type Thunk struct {
	Expr value.Value
	Env  value.Environment
}

func (t *Thunk) String() string { return "#[thunk]" }

// maxNonTailDepth bounds genuine (non-tail) recursion. Tail calls never
// grow this counter, since evalTail defers rather than recursing, so a
// tail-recursive loop of any length runs in bounded Go stack while a
// non-tail recursion of comparable depth hits this bound, so a deep
// recursion that would exhaust the host stack is instead caught and
// reported as an ordinary interpreter error.
const maxNonTailDepth = 12000

// depth tracks live (non-tail) Eval frames. Evaluation is strictly
// single-threaded and cooperative, so a package-level counter needs no
// synchronization.
var depth int

// Eval evaluates expr in env and drives the tail-call trampoline: any
// Thunk produced along the way is unwrapped here, in a loop, rather than
// by recursion, so a chain of tail calls of arbitrary length runs in
// bounded stack space.
func Eval(expr value.Value, env value.Environment) (value.Value, error) {
	depth++
	defer func() { depth-- }()
	if depth > maxNonTailDepth {
		return nil, maxRecursionError()
	}

	curExpr, curEnv := expr, env
	for {
		result, err := evalOnce(curExpr, curEnv)
		if err != nil {
			return nil, err
		}
		th, ok := result.(*Thunk)
		if !ok {
			return result, nil
		}
		curExpr, curEnv = th.Expr, th.Env
	}
}

// evalTail evaluates expr in env for a tail position. A non-atomic,
// non-self-evaluating expression yields a Thunk instead of recursing;
// the caller is expected to propagate that Thunk upward so the nearest
// enclosing Eval's trampoline loop drives it. Atoms are resolved
// immediately since looking one up never grows the stack.
func evalTail(expr value.Value, env value.Environment) (value.Value, error) {
	if _, isSym := expr.(value.Symbol); !isSym && !value.SelfEvaluating(expr) {
		return &Thunk{Expr: expr, Env: env}, nil
	}
	return Eval(expr, env)
}

// evalSequence evaluates a non-empty sequence of expressions: every
// expression but the last is evaluated for effect (non-tail); the final
// expression is evaluated in tail position and its value (possibly a
// still-unwound Thunk) is returned directly.
func evalSequence(exprs []value.Value, env value.Environment) (value.Value, error) {
	if len(exprs) == 0 {
		return value.Undefined, nil
	}
	for _, e := range exprs[:len(exprs)-1] {
		if _, err := Eval(e, env); err != nil {
			return nil, err
		}
	}
	return evalTail(exprs[len(exprs)-1], env)
}

// CompleteApply applies procedure to args in env and ensures the result
// is not a Thunk. It is the variant used by higher-order builtins (map,
// filter, reduce, apply, eval) that need a final value to hand back to
// host code rather than a deferred thunk.
func CompleteApply(proc value.Value, args []value.Value, env value.Environment) (value.Value, error) {
	val, err := Apply(proc, args, env)
	if err != nil {
		return nil, err
	}
	if th, ok := val.(*Thunk); ok {
		return Eval(th.Expr, th.Env)
	}
	return val, nil
}

package evaluator

import (
	"github.com/arborlang/arbor/pkg/lisperr"
	"github.com/arborlang/arbor/pkg/value"
)

// doDelay implements (delay expr): wraps expr and the current
// environment in an unforced Promise without evaluating it.
func doDelay(operands value.Value, env value.Environment) (value.Value, error) {
	items, err := operandSlice("delay", operands)
	if err != nil {
		return nil, err
	}
	if err := requireArity("delay", len(items), 1, 1); err != nil {
		return nil, err
	}
	return value.NewPromise(items[0], env), nil
}

// doConsStream implements (cons-stream a b): builds a pair whose car is
// a, evaluated eagerly, and whose cdr is (delay b), left unevaluated.
func doConsStream(operands value.Value, env value.Environment) (value.Value, error) {
	items, err := operandSlice("cons-stream", operands)
	if err != nil {
		return nil, err
	}
	if err := requireArity("cons-stream", len(items), 2, 2); err != nil {
		return nil, err
	}
	carVal, err := Eval(items[0], env)
	if err != nil {
		return nil, err
	}
	promise := value.NewPromise(items[1], env)
	return value.NewPair(carVal, promise), nil
}

// Force evaluates and memoizes a promise's expression, returning the
// cached value on subsequent calls. A forced value must be the empty
// list or a pair, since delay/cons-stream exist to build lazy lists;
// forcing anything else is a Promise-kind error.
func Force(p *value.Promise) (value.Value, error) {
	if p.Forced {
		return p.Val, nil
	}
	v, err := Eval(p.Expr, p.Env)
	if err != nil {
		return nil, err
	}
	if !value.IsNil(v) {
		if _, ok := v.(*value.Pair); !ok {
			return nil, lisperr.Promisef("result of forcing a promise should be a pair or nil, but was %s", v.String())
		}
	}
	p.Forced = true
	p.Val = v
	p.Expr = nil
	p.Env = nil
	return v, nil
}

// CdrStream forces the promise held in a stream pair's cdr, the
// counterpart to ordinary cdr for pairs built by cons-stream.
func CdrStream(pair *value.Pair) (value.Value, error) {
	promise, ok := pair.Cdr.(*value.Promise)
	if !ok {
		return nil, lisperr.Typef("cdr-stream: not a stream pair: %s", pair.String())
	}
	return Force(promise)
}

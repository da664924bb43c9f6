package stdlib

import (
	"github.com/arborlang/arbor/pkg/evaluator"
	"github.com/arborlang/arbor/pkg/lisperr"
	"github.com/arborlang/arbor/pkg/value"
)

func forceProc(x value.Value) (value.Value, error) {
	p, ok := x.(*value.Promise)
	if !ok {
		return nil, lisperr.Typef("force: not a promise: %s", x.String())
	}
	return evaluator.Force(p)
}

func cdrStreamProc(x value.Value) (value.Value, error) {
	p, ok := x.(*value.Pair)
	if !ok {
		return nil, lisperr.Typef("cdr-stream: not a pair: %s", x.String())
	}
	return evaluator.CdrStream(p)
}

func validCdrP(x value.Value) (value.Value, error) {
	return value.Boolean(validCdr(x)), nil
}

package stdlib

import (
	"github.com/arborlang/arbor/pkg/lisperr"
	"github.com/arborlang/arbor/pkg/value"
)

func validCdr(x value.Value) bool {
	if _, ok := x.(*value.Pair); ok {
		return true
	}
	if _, ok := x.(*value.Promise); ok {
		return true
	}
	return value.IsNil(x)
}

func consProc(args []value.Value, env value.Environment) (value.Value, error) {
	if len(args) != 2 {
		return nil, lisperr.Arityf("cons: expected 2 arguments, got %d", len(args))
	}
	return value.NewPair(args[0], args[1]), nil
}

func carProc(x value.Value) (value.Value, error) {
	p, ok := x.(*value.Pair)
	if !ok {
		return nil, lisperr.Typef("car: not a pair: %s", x.String())
	}
	return p.Car, nil
}

func cdrProc(x value.Value) (value.Value, error) {
	p, ok := x.(*value.Pair)
	if !ok {
		return nil, lisperr.Typef("cdr: not a pair: %s", x.String())
	}
	return p.Cdr, nil
}

func setCarProc(args []value.Value, env value.Environment) (value.Value, error) {
	if len(args) != 2 {
		return nil, lisperr.Arityf("set-car!: expected 2 arguments, got %d", len(args))
	}
	p, ok := args[0].(*value.Pair)
	if !ok {
		return nil, lisperr.Typef("set-car!: not a pair: %s", args[0].String())
	}
	p.Car = args[1]
	return value.Undefined, nil
}

func setCdrProc(args []value.Value, env value.Environment) (value.Value, error) {
	if len(args) != 2 {
		return nil, lisperr.Arityf("set-cdr!: expected 2 arguments, got %d", len(args))
	}
	p, ok := args[0].(*value.Pair)
	if !ok {
		return nil, lisperr.Typef("set-cdr!: not a pair: %s", args[0].String())
	}
	if !validCdr(args[1]) {
		return nil, lisperr.Typef("set-cdr!: invalid cdr value: %s", args[1].String())
	}
	p.Cdr = args[1]
	return value.Undefined, nil
}

func listProc(args []value.Value, env value.Environment) (value.Value, error) {
	return value.SliceToList(args), nil
}

func lengthProc(x value.Value) (value.Value, error) {
	if !value.ListP(x) {
		return nil, lisperr.Typef("length: not a list: %s", x.String())
	}
	return value.NewInteger(int64(value.ListLength(x))), nil
}

func appendProc(args []value.Value, env value.Environment) (value.Value, error) {
	if len(args) == 0 {
		return value.NilValue, nil
	}
	result := args[len(args)-1]
	for i := len(args) - 2; i >= 0; i-- {
		v := args[i]
		if value.IsNil(v) {
			continue
		}
		if !value.ListP(v) {
			return nil, lisperr.Typef("append: argument %d is not a list: %s", i, v.String())
		}
		items := value.ListToSlice(v)
		for j := len(items) - 1; j >= 0; j-- {
			result = value.NewPair(items[j], result)
		}
	}
	return result, nil
}

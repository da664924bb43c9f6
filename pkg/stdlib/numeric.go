// Package stdlib implements the procedures kept out of the evaluator
// core: predicates, pairs and lists, arithmetic, comparisons, streams,
// and minimal I/O. Every procedure here receives already-evaluated
// arguments and is registered through pkg/builtin's registration
// interface.
package stdlib

import (
	"math/big"

	"github.com/arborlang/arbor/pkg/lisperr"
	"github.com/arborlang/arbor/pkg/value"
)

func isNumber(v value.Value) bool {
	switch v.(type) {
	case value.Integer, value.Real:
		return true
	default:
		return false
	}
}

func asFloat(v value.Value) float64 {
	switch n := v.(type) {
	case value.Integer:
		f := new(big.Float).SetInt(n.V)
		out, _ := f.Float64()
		return out
	case value.Real:
		return float64(n)
	}
	return 0
}

func arityAtLeast(name string, min, got int) error {
	return lisperr.Arityf("%s: expected at least %d arguments, got %d", name, min, got)
}

func checkNums(name string, vals ...value.Value) error {
	for i, v := range vals {
		if !isNumber(v) {
			return lisperr.Typef("argument %d of %s has wrong type: %s", i, name, v.String())
		}
	}
	return nil
}

func allIntegers(vals []value.Value) bool {
	for _, v := range vals {
		if _, ok := v.(value.Integer); !ok {
			return false
		}
	}
	return true
}

// demoteIfIntegral converts a float result back to an Integer when it is
// exactly whole, mirroring original_source/lisp_builtins.py's _arith,
// which always normalizes "if int(s) == s: s = int(s)".
func demoteIfIntegral(f float64) value.Value {
	if f == float64(int64(f)) {
		return value.NewInteger(int64(f))
	}
	return value.Real(f)
}

func numAdd(name string, vals []value.Value) (value.Value, error) {
	if err := checkNums(name, vals...); err != nil {
		return nil, err
	}
	if allIntegers(vals) {
		sum := big.NewInt(0)
		for _, v := range vals {
			sum.Add(sum, v.(value.Integer).V)
		}
		return value.NewIntegerFromBig(sum), nil
	}
	sum := 0.0
	for _, v := range vals {
		sum += asFloat(v)
	}
	return demoteIfIntegral(sum), nil
}

func numMul(name string, vals []value.Value) (value.Value, error) {
	if err := checkNums(name, vals...); err != nil {
		return nil, err
	}
	if allIntegers(vals) {
		prod := big.NewInt(1)
		for _, v := range vals {
			prod.Mul(prod, v.(value.Integer).V)
		}
		return value.NewIntegerFromBig(prod), nil
	}
	prod := 1.0
	for _, v := range vals {
		prod *= asFloat(v)
	}
	return demoteIfIntegral(prod), nil
}

func numSub(name string, first value.Value, rest []value.Value) (value.Value, error) {
	if err := checkNums(name, append([]value.Value{first}, rest...)...); err != nil {
		return nil, err
	}
	if len(rest) == 0 {
		if i, ok := first.(value.Integer); ok {
			return value.NewIntegerFromBig(new(big.Int).Neg(i.V)), nil
		}
		return demoteIfIntegral(-asFloat(first)), nil
	}
	all := append([]value.Value{first}, rest...)
	if allIntegers(all) {
		acc := new(big.Int).Set(first.(value.Integer).V)
		for _, v := range rest {
			acc.Sub(acc, v.(value.Integer).V)
		}
		return value.NewIntegerFromBig(acc), nil
	}
	acc := asFloat(first)
	for _, v := range rest {
		acc -= asFloat(v)
	}
	return demoteIfIntegral(acc), nil
}

func numDiv(name string, first value.Value, rest []value.Value) (value.Value, error) {
	all := append([]value.Value{first}, rest...)
	if err := checkNums(name, all...); err != nil {
		return nil, err
	}
	if len(rest) == 0 {
		return divideTwo(value.NewInteger(1), first)
	}
	acc := first
	for _, v := range rest {
		r, err := divideTwo(acc, v)
		if err != nil {
			return nil, err
		}
		acc = r
	}
	return acc, nil
}

func divideTwo(a, b value.Value) (value.Value, error) {
	if bi, ok := b.(value.Integer); ok && bi.V.Sign() == 0 {
		return nil, lisperr.Arithmeticf("division by zero")
	}
	if ai, aok := a.(value.Integer); aok {
		if bi, bok := b.(value.Integer); bok {
			q, r := new(big.Int), new(big.Int)
			q.QuoRem(ai.V, bi.V, r)
			if r.Sign() == 0 {
				return value.NewIntegerFromBig(q), nil
			}
		}
	}
	bf := asFloat(b)
	if bf == 0 {
		return nil, lisperr.Arithmeticf("division by zero")
	}
	return demoteIfIntegral(asFloat(a) / bf), nil
}

func requireIntegers(name string, a, b value.Value) (*big.Int, *big.Int, error) {
	ai, ok := a.(value.Integer)
	if !ok {
		return nil, nil, lisperr.Typef("argument 0 of %s is not an integer: %s", name, a.String())
	}
	bi, ok := b.(value.Integer)
	if !ok {
		return nil, nil, lisperr.Typef("argument 1 of %s is not an integer: %s", name, b.String())
	}
	if bi.V.Sign() == 0 {
		return nil, nil, lisperr.Arithmeticf("division by zero")
	}
	return ai.V, bi.V, nil
}

// quotient truncates toward zero.
func quotient(a, b value.Value) (value.Value, error) {
	x, y, err := requireIntegers("quotient", a, b)
	if err != nil {
		return nil, err
	}
	return value.NewIntegerFromBig(new(big.Int).Quo(x, y)), nil
}

// remainderOf matches the sign of the dividend, like Go's Rem.
func remainderOf(a, b value.Value) (value.Value, error) {
	x, y, err := requireIntegers("remainder", a, b)
	if err != nil {
		return nil, err
	}
	return value.NewIntegerFromBig(new(big.Int).Rem(x, y)), nil
}

// floorModulo matches the sign of the divisor, as in Scheme's modulo.
func floorModulo(a, b value.Value) (value.Value, error) {
	x, y, err := requireIntegers("modulo", a, b)
	if err != nil {
		return nil, err
	}
	m := new(big.Int).Mod(x, y)
	if y.Sign() < 0 && m.Sign() != 0 {
		m.Add(m, y)
	}
	return value.NewIntegerFromBig(m), nil
}

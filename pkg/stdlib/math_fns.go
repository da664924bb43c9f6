package stdlib

import (
	"math"
	"math/big"

	"github.com/arborlang/arbor/pkg/lisperr"
	"github.com/arborlang/arbor/pkg/value"
)

func exptProc(a, b value.Value) (value.Value, error) {
	if err := checkNums("expt", a, b); err != nil {
		return nil, err
	}
	if ai, ok := a.(value.Integer); ok {
		if bi, ok := b.(value.Integer); ok && bi.V.Sign() >= 0 && bi.V.IsInt64() {
			return value.NewIntegerFromBig(new(big.Int).Exp(ai.V, bi.V, nil)), nil
		}
	}
	return demoteIfIntegral(math.Pow(asFloat(a), asFloat(b))), nil
}

func absProc(x value.Value) (value.Value, error) {
	if err := checkNums("abs", x); err != nil {
		return nil, err
	}
	if i, ok := x.(value.Integer); ok {
		return value.NewIntegerFromBig(new(big.Int).Abs(i.V)), nil
	}
	return value.Real(math.Abs(asFloat(x))), nil
}

// mathUnary wraps a float64->float64 math function as a builtin that
// rejects non-numeric arguments, a thin wrapper around the host math
// library.
func mathUnary(name string, fn func(float64) float64) value.BuiltinFunc {
	return func(args []value.Value, env value.Environment) (value.Value, error) {
		if len(args) != 1 {
			return nil, lisperr.Arityf("%s: expected 1 argument, got %d", name, len(args))
		}
		if err := checkNums(name, args[0]); err != nil {
			return nil, err
		}
		return value.Real(fn(asFloat(args[0]))), nil
	}
}

func atan2Proc(args []value.Value, env value.Environment) (value.Value, error) {
	if len(args) != 2 {
		return nil, lisperr.Arityf("atan2: expected 2 arguments, got %d", len(args))
	}
	if err := checkNums("atan2", args[0], args[1]); err != nil {
		return nil, err
	}
	return value.Real(math.Atan2(asFloat(args[0]), asFloat(args[1]))), nil
}

func copysignProc(args []value.Value, env value.Environment) (value.Value, error) {
	if len(args) != 2 {
		return nil, lisperr.Arityf("copysign: expected 2 arguments, got %d", len(args))
	}
	if err := checkNums("copysign", args[0], args[1]); err != nil {
		return nil, err
	}
	return value.Real(math.Copysign(asFloat(args[0]), asFloat(args[1]))), nil
}

// mathUnaryFns mirrors the math-module sweep in
// original_source/lisp_builtins.py: every named function there is
// registered here the same way, built from Go's math package.
var mathUnaryFns = map[string]func(float64) float64{
	"acos":   math.Acos,
	"acosh":  math.Acosh,
	"asin":   math.Asin,
	"asinh":  math.Asinh,
	"atan":   math.Atan,
	"atanh":  math.Atanh,
	"ceil":   math.Ceil,
	"cos":    math.Cos,
	"cosh":   math.Cosh,
	"degrees": func(r float64) float64 { return r * 180 / math.Pi },
	"floor":  math.Floor,
	"log":    math.Log,
	"log10":  math.Log10,
	"log1p":  math.Log1p,
	"log2":   math.Log2,
	"radians": func(d float64) float64 { return d * math.Pi / 180 },
	"sin":    math.Sin,
	"sinh":   math.Sinh,
	"sqrt":   math.Sqrt,
	"tan":    math.Tan,
	"tanh":   math.Tanh,
	"trunc":  math.Trunc,
}

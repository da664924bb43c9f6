package stdlib

import (
	"github.com/arborlang/arbor/pkg/builtin"
	"github.com/arborlang/arbor/pkg/evaluator"
	"github.com/arborlang/arbor/pkg/value"
)

// NewGlobalFrame builds a fresh global frame with the core eval/apply
// builtins (from pkg/evaluator) and the whole of this package's
// registry installed, ready to evaluate a program against.
func NewGlobalFrame() (*evaluator.Frame, *builtin.Registry, error) {
	frame := evaluator.NewGlobalFrame()
	evaluator.RegisterCore(frame)

	reg := builtin.NewRegistry()
	if err := Register(reg); err != nil {
		return nil, nil, err
	}
	reg.InstallInto(frame)
	return frame, reg, nil
}

func wrap1(name string, fn func(value.Value) (value.Value, error)) value.BuiltinFunc {
	return fixed1(name, fn)
}

func wrap2(name string, fn func(a, b value.Value) (value.Value, error)) value.BuiltinFunc {
	return fixed2(name, fn)
}

func variadic(name string, min int, fn func([]value.Value, value.Environment) (value.Value, error)) value.BuiltinFunc {
	return func(args []value.Value, env value.Environment) (value.Value, error) {
		return fn(args, env)
	}
}

// Register populates reg with every procedure this package implements.
// A caller then installs reg into a global frame (see NewGlobalFrame for
// the common case of doing both at once).
func Register(reg *builtin.Registry) error {
	entries := []builtin.Registration{
		{Name: "boolean?", Category: builtin.CategoryPredicate, Fn: wrap1("boolean?", booleanP)},
		{Name: "not", Category: builtin.CategoryPredicate, Fn: wrap1("not", notProc)},
		{Name: "equal?", Category: builtin.CategoryPredicate, Fn: wrap2("equal?", equalP)},
		{Name: "eq?", Category: builtin.CategoryPredicate, Fn: wrap2("eq?", eqP)},
		{Name: "pair?", Category: builtin.CategoryPredicate, Fn: wrap1("pair?", pairP)},
		{Name: "lisp-valid-cdr?", Category: builtin.CategoryPredicate, Fn: wrap1("lisp-valid-cdr?", validCdrP)},
		{Name: "promise?", Category: builtin.CategoryPredicate, Fn: wrap1("promise?", promiseP)},
		{Name: "force", Category: builtin.CategoryStream, Fn: wrap1("force", forceProc)},
		{Name: "cdr-stream", Category: builtin.CategoryStream, Fn: wrap1("cdr-stream", cdrStreamProc)},
		{Name: "null?", Category: builtin.CategoryPredicate, Fn: wrap1("null?", nullP)},
		{Name: "list?", Category: builtin.CategoryPredicate, Fn: wrap1("list?", listP)},
		{Name: "length", Category: builtin.CategoryPair, Fn: wrap1("length", lengthProc)},
		{Name: "cons", Category: builtin.CategoryPair, Fn: consProc},
		{Name: "car", Category: builtin.CategoryPair, Fn: wrap1("car", carProc)},
		{Name: "cdr", Category: builtin.CategoryPair, Fn: wrap1("cdr", cdrProc)},
		{Name: "set-car!", Category: builtin.CategoryPair, Fn: setCarProc},
		{Name: "set-cdr!", Category: builtin.CategoryPair, Fn: setCdrProc},
		{Name: "list", Category: builtin.CategoryPair, Fn: listProc},
		{Name: "append", Category: builtin.CategoryPair, Fn: appendProc},
		{Name: "string?", Category: builtin.CategoryPredicate, Fn: wrap1("string?", stringP)},
		{Name: "symbol?", Category: builtin.CategoryPredicate, Fn: wrap1("symbol?", symbolP)},
		{Name: "number?", Category: builtin.CategoryPredicate, Fn: wrap1("number?", numberP)},
		{Name: "integer?", Category: builtin.CategoryPredicate, Fn: wrap1("integer?", integerP)},
		{Name: "atom?", Category: builtin.CategoryPredicate, Fn: wrap1("atom?", atomP)},
		{Name: "even?", Category: builtin.CategoryPredicate, Fn: wrap1("even?", evenP)},
		{Name: "odd?", Category: builtin.CategoryPredicate, Fn: wrap1("odd?", oddP)},
		{Name: "zero?", Category: builtin.CategoryPredicate, Fn: wrap1("zero?", zeroP)},

		{Name: "+", Category: builtin.CategoryArithmetic, Fn: variadic("+", 0, func(args []value.Value, env value.Environment) (value.Value, error) {
			return numAdd("+", args)
		})},
		{Name: "*", Category: builtin.CategoryArithmetic, Fn: variadic("*", 0, func(args []value.Value, env value.Environment) (value.Value, error) {
			return numMul("*", args)
		})},
		{Name: "-", Category: builtin.CategoryArithmetic, Fn: variadic("-", 1, func(args []value.Value, env value.Environment) (value.Value, error) {
			if len(args) == 0 {
				return nil, arityAtLeast("-", 1, 0)
			}
			return numSub("-", args[0], args[1:])
		})},
		{Name: "/", Category: builtin.CategoryArithmetic, Fn: variadic("/", 1, func(args []value.Value, env value.Environment) (value.Value, error) {
			if len(args) == 0 {
				return nil, arityAtLeast("/", 1, 0)
			}
			return numDiv("/", args[0], args[1:])
		})},
		{Name: "expt", Category: builtin.CategoryArithmetic, Fn: wrap2("expt", exptProc)},
		{Name: "abs", Category: builtin.CategoryArithmetic, Fn: wrap1("abs", absProc)},
		{Name: "quotient", Category: builtin.CategoryArithmetic, Fn: wrap2("quotient", quotient)},
		{Name: "modulo", Category: builtin.CategoryArithmetic, Fn: wrap2("modulo", floorModulo)},
		{Name: "remainder", Category: builtin.CategoryArithmetic, Fn: wrap2("remainder", remainderOf)},

		{Name: "=", Category: builtin.CategoryComparison, Fn: wrap2("=", numericEq)},
		{Name: "<", Category: builtin.CategoryComparison, Fn: wrap2("<", lessThan)},
		{Name: ">", Category: builtin.CategoryComparison, Fn: wrap2(">", greaterThan)},
		{Name: "<=", Category: builtin.CategoryComparison, Fn: wrap2("<=", lessEqual)},
		{Name: ">=", Category: builtin.CategoryComparison, Fn: wrap2(">=", greaterEqual)},

		{Name: "display", Category: builtin.CategoryIO, Fn: wrap1("display", displayProc)},
		{Name: "print", Category: builtin.CategoryIO, Fn: wrap1("print", printProc)},
		{Name: "newline", Category: builtin.CategoryIO, Fn: newlineProc},
		{Name: "error", Category: builtin.CategoryIO, Fn: errorProc},
		{Name: "exit", Category: builtin.CategorySystem, Fn: exitProc},
		{Name: "print-then-return", Category: builtin.CategoryIO, Fn: printThenReturn},

		{Name: "atan2", Category: builtin.CategoryArithmetic, Fn: atan2Proc},
		{Name: "copysign", Category: builtin.CategoryArithmetic, Fn: copysignProc},
		{Name: "load", Category: builtin.CategorySystem, UseEnv: true, Fn: loadProc},
	}

	for name, fn := range mathUnaryFns {
		entries = append(entries, builtin.Registration{
			Name:     name,
			Category: builtin.CategoryArithmetic,
			Fn:       mathUnary(name, fn),
		})
	}

	for _, e := range entries {
		if err := reg.Register(e); err != nil {
			return err
		}
	}
	return nil
}

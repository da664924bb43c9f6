package stdlib

import (
	"fmt"
	"os"
	"strings"

	"github.com/arborlang/arbor/pkg/evaluator"
	"github.com/arborlang/arbor/pkg/lisperr"
	"github.com/arborlang/arbor/pkg/reader"
	"github.com/arborlang/arbor/pkg/value"
)

// readSource reads filename, trying filename+".scm" as a fallback when
// the plain name cannot be found, grounded on original_source's
// lisp_open.
func readSource(filename string) ([]byte, error) {
	if data, err := os.ReadFile(filename); err == nil {
		return data, nil
	} else if strings.HasSuffix(filename, ".scm") {
		return nil, lisperr.Hostf("%s", err.Error())
	}
	data, err := os.ReadFile(filename + ".scm")
	if err != nil {
		return nil, lisperr.Hostf("%s", err.Error())
	}
	return data, nil
}

// loadProc implements (load filename) / (load filename quiet): reads
// and evaluates every top-level form in the named file against the
// calling environment.
func loadProc(args []value.Value, env value.Environment) (value.Value, error) {
	if len(args) < 1 || len(args) > 2 {
		return nil, lisperr.Arityf("load: expected 1 or 2 arguments, got %d", len(args))
	}
	name := args[0]
	quiet := true
	if len(args) == 2 {
		quiet = value.Truthy(args[1])
	}

	var filename string
	if s, ok := name.(value.String); ok {
		filename = ReplString(s)
	} else if sym, ok := name.(value.Symbol); ok {
		filename = string(sym)
	} else {
		return nil, lisperr.Typef("load: not a string or symbol: %s", name.String())
	}

	data, err := readSource(filename)
	if err != nil {
		return nil, err
	}

	exprs, err := reader.ReadAll(string(data))
	if err != nil {
		return nil, lisperr.Hostf("%s", err.Error())
	}

	for _, expr := range exprs {
		result, err := evaluator.Eval(expr, env)
		if err != nil {
			return nil, err
		}
		if !quiet {
			fmt.Println(ReplString(result))
		}
	}
	return value.Symbol(filename), nil
}

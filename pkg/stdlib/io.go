package stdlib

import (
	"fmt"

	"github.com/arborlang/arbor/pkg/lisperr"
	"github.com/arborlang/arbor/pkg/value"
)

// ReplString renders v the way display unquotes a result: a string
// value prints without its surrounding surface quotes.
func ReplString(v value.Value) string {
	if s, ok := v.(value.String); ok && value.StringP(string(s)) {
		text := string(s)[1:]
		if len(text) > 0 && text[len(text)-1] == '"' {
			text = text[:len(text)-1]
		}
		return text
	}
	return v.String()
}

// displayProc shows a string with its surface quotes stripped; print
// shows the value exactly as it would be read back, quotes and all.
func displayProc(x value.Value) (value.Value, error) {
	fmt.Print(ReplString(x))
	return value.Undefined, nil
}

func printProc(x value.Value) (value.Value, error) {
	fmt.Println(x.String())
	return value.Undefined, nil
}

func newlineProc(args []value.Value, env value.Environment) (value.Value, error) {
	if len(args) != 0 {
		return nil, lisperr.Arityf("newline: expected 0 arguments, got %d", len(args))
	}
	fmt.Println()
	return value.Undefined, nil
}

func errorProc(args []value.Value, env value.Environment) (value.Value, error) {
	if len(args) == 0 {
		return nil, lisperr.Hostf("")
	}
	if len(args) != 1 {
		return nil, lisperr.Arityf("error: expected 0 or 1 arguments, got %d", len(args))
	}
	return nil, lisperr.Hostf("%s", ReplString(args[0]))
}

// errExit is returned by the exit builtin and recognized by the REPL
// layer as a request to end the session cleanly. It is a *lisperr.Error
// (not a bare error) so that callBuiltin's coercion through
// lisperr.FromHost passes the same pointer through unchanged, keeping
// ErrExit's identity check valid.
var errExit = lisperr.Hostf("exit")

// ErrExit reports whether err is the sentinel produced by calling the
// exit builtin.
func ErrExit(err error) bool {
	return err == errExit
}

func exitProc(args []value.Value, env value.Environment) (value.Value, error) {
	if len(args) != 0 {
		return nil, lisperr.Arityf("exit: expected 0 arguments, got %d", len(args))
	}
	return nil, errExit
}

func printThenReturn(args []value.Value, env value.Environment) (value.Value, error) {
	if len(args) != 2 {
		return nil, lisperr.Arityf("print-then-return: expected 2 arguments, got %d", len(args))
	}
	fmt.Println(ReplString(args[0]))
	return args[1], nil
}

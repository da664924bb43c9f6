// Command arbor-lisp is the interpreter's command-line entry point: a
// thin wrapper that builds a global frame, optionally loads a source
// file, and either exits or drops into an interactive session.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/arborlang/arbor/pkg/evaluator"
	"github.com/arborlang/arbor/pkg/reader"
	"github.com/arborlang/arbor/pkg/repl"
	"github.com/arborlang/arbor/pkg/stdlib"
)

func main() {
	var loadThenInteractive bool
	flag.BoolVar(&loadThenInteractive, "load", false, "after executing the file argument, drop into an interactive session")
	flag.BoolVar(&loadThenInteractive, "i", false, "shorthand for -load")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\n  %s [flags] [file]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                   # start an interactive session\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s script.scm        # run a file and exit\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -load script.scm  # run a file, then start an interactive session\n", os.Args[0])
	}
	flag.Parse()

	frame, _, err := stdlib.NewGlobalFrame()
	if err != nil {
		fmt.Fprintf(os.Stderr, "arbor-lisp: %v\n", err)
		os.Exit(1)
	}

	args := flag.Args()
	if len(args) == 0 {
		if err := repl.Run(frame, true); err != nil {
			fmt.Fprintf(os.Stderr, "arbor-lisp: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Running a file is non-interactive startup work: an interrupt here
	// is fatal rather than something the session shrugs off, so the
	// default Go signal behavior (terminate the process) is left in
	// place instead of being intercepted the way the interactive loop
	// intercepts it.
	signal.Reset(os.Interrupt)

	if err := runFile(args[0], frame); err != nil {
		fmt.Fprintf(os.Stderr, "arbor-lisp: %v\n", err)
		os.Exit(1)
	}

	if loadThenInteractive {
		if err := repl.Run(frame, true); err != nil {
			fmt.Fprintf(os.Stderr, "arbor-lisp: %v\n", err)
			os.Exit(1)
		}
	}
}

func runFile(filename string, frame *evaluator.Frame) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	exprs, err := reader.ReadAll(string(data))
	if err != nil {
		return err
	}
	for _, expr := range exprs {
		if _, err := evaluator.Eval(expr, frame); err != nil {
			if stdlib.ErrExit(err) {
				return nil
			}
			return err
		}
	}
	return nil
}

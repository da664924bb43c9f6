package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/arborlang/arbor/pkg/evaluator"
	"github.com/arborlang/arbor/pkg/reader"
	"github.com/arborlang/arbor/pkg/stdlib"
	"github.com/arborlang/arbor/pkg/value"
)

// evalText parses source into zero or more top-level forms and
// evaluates each in frame in turn, printing the value of every one
// except an undefined result, stopping at the first error. It
// reports whether the session should end, either because evaluation hit
// the exit sentinel or (handled by the caller) a bare "quit"/"exit"
// line was typed.
func evalText(source string, frame *evaluator.Frame, errorFormatter *ErrorFormatter, enableColors bool) (shouldExit bool) {
	exprs, err := reader.ReadAll(source)
	if err != nil {
		printErr(err, errorFormatter, enableColors)
		return false
	}
	for _, expr := range exprs {
		result, err := evaluator.Eval(expr, frame)
		if err != nil {
			if stdlib.ErrExit(err) {
				return true
			}
			printErr(err, errorFormatter, enableColors)
			return false
		}
		printResult(result, enableColors)
	}
	return false
}

func printErr(err error, errorFormatter *ErrorFormatter, enableColors bool) {
	if enableColors {
		fmt.Println(errorFormatter.FormatErrorWithSuggestion(err))
	} else {
		fmt.Printf("Error: %s\n", err.Error())
	}
}

func printResult(result value.Value, enableColors bool) {
	if value.IsUndefined(result) {
		return
	}
	text := stdlib.ReplString(result)
	if enableColors {
		resultColor := color.New(color.FgGreen)
		fmt.Printf("=> %s\n", resultColor.Sprint(text))
	} else {
		fmt.Printf("=> %s\n", text)
	}
}

// REPL starts a Read-Eval-Print Loop reading from scanner, with colored
// output.
func REPL(frame *evaluator.Frame, scanner *bufio.Scanner) {
	REPLWithOptions(frame, scanner, true)
}

// REPLWithOptions starts a REPL reading from scanner, with colors
// toggled by enableColors. This is the plain bufio.Scanner-driven loop,
// used directly when stdin is not a terminal readline can attach to
// (piped input, tests).
func REPLWithOptions(frame *evaluator.Frame, scanner *bufio.Scanner, enableColors bool) {
	if scanner == nil {
		scanner = bufio.NewScanner(os.Stdin)
	}
	if !enableColors {
		color.NoColor = true
		printWelcomeMessage(false)
	} else {
		printWelcomeMessage(true)
	}

	errorFormatter := NewErrorFormatter()

	for {
		input := readCompleteExpression(scanner, enableColors)
		if input == "" {
			break
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == "quit" || input == "exit" {
			break
		}
		if evalText(input, frame, errorFormatter, enableColors) {
			break
		}
	}

	printGoodbyeMessage(enableColors)
}

// Run starts a readline-backed REPL: line editing, history, and an
// interrupt that cancels the current line rather than the session. This
// is the interactive entry point a terminal session should use.
func Run(frame *evaluator.Frame, enableColors bool) error {
	config := &readline.Config{
		Prompt:          "lisp> ",
		HistoryFile:     "/tmp/arbor_history",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	}
	rl, err := readline.NewEx(config)
	if err != nil {
		fmt.Printf("Warning: readline unavailable (%v). Falling back to plain input.\n", err)
		REPLWithOptions(frame, nil, enableColors)
		return nil
	}
	defer rl.Close()

	if !enableColors {
		color.NoColor = true
	}
	printWelcomeMessage(enableColors)

	errorFormatter := NewErrorFormatter()

	for {
		input, err := readCompleteExpressionWithReadline(rl, enableColors)
		if err != nil {
			if err == io.EOF {
				break
			}
			if err == readline.ErrInterrupt {
				// An interrupt during interactive input just cancels the
				// current (possibly multi-line) entry; the session
				// continues.
				continue
			}
			fmt.Printf("Input error: %v\n", err)
			continue
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == "quit" || input == "exit" {
			break
		}
		if evalText(input, frame, errorFormatter, enableColors) {
			break
		}
	}

	printGoodbyeMessage(enableColors)
	return nil
}

func printWelcomeMessage(enableColors bool) {
	if !enableColors {
		fmt.Println("Welcome to Arbor.")
		fmt.Println("Type expressions to evaluate them, or 'quit' to exit.")
		fmt.Println("Multi-line expressions are supported - input is read until parentheses balance.")
		fmt.Println()
		return
	}
	titleColor := color.New(color.FgCyan, color.Bold)
	instructionColor := color.New(color.FgYellow)
	titleColor.Println("Welcome to Arbor.")
	instructionColor.Println("Type expressions to evaluate them, or 'quit' to exit.")
	instructionColor.Println("Multi-line expressions are supported - input is read until parentheses balance.")
	fmt.Println()
}

func printGoodbyeMessage(enableColors bool) {
	if !enableColors {
		fmt.Println("Goodbye!")
		return
	}
	color.New(color.FgMagenta, color.Bold).Println("Goodbye!")
}

// readCompleteExpression reads lines from scanner until the
// parentheses across every line read so far balance and at least one
// non-comment, non-whitespace form is present, or until the scanner is
// exhausted.
func readCompleteExpression(scanner *bufio.Scanner, enableColors bool) string {
	var lines []string
	parenCount := 0
	inString := false
	escaped := false
	isFirstLine := true

	primaryPromptColor := color.New(color.FgBlue, color.Bold)
	continuationPromptColor := color.New(color.FgHiBlack)

	for {
		if isFirstLine {
			if enableColors {
				primaryPromptColor.Print("lisp> ")
			} else {
				fmt.Print("lisp> ")
			}
			isFirstLine = false
		} else {
			if enableColors {
				continuationPromptColor.Print("...   ")
			} else {
				fmt.Print("...   ")
			}
		}

		if !scanner.Scan() {
			return strings.Join(lines, "\n")
		}

		line := scanner.Text()
		lines = append(lines, line)

		trimmed := strings.TrimSpace(line)
		if len(lines) == 1 && (trimmed == "quit" || trimmed == "exit") {
			return trimmed
		}

		parenCount += countParens(line, &inString, &escaped)

		if parenCount == 0 && containsExpression(strings.Join(lines, "\n")) {
			break
		}
		if parenCount < 0 {
			break
		}
	}

	return strings.Join(lines, "\n")
}

// readCompleteExpressionWithReadline is the readline-backed counterpart
// of readCompleteExpression, used by Run.
func readCompleteExpressionWithReadline(rl *readline.Instance, enableColors bool) (string, error) {
	var lines []string
	parenCount := 0
	inString := false
	escaped := false
	isFirstLine := true

	primaryPromptColor := color.New(color.FgBlue, color.Bold)
	continuationPromptColor := color.New(color.FgHiBlack)

	for {
		var prompt string
		if isFirstLine {
			if enableColors {
				prompt = primaryPromptColor.Sprint("lisp> ")
			} else {
				prompt = "lisp> "
			}
			isFirstLine = false
		} else {
			if enableColors {
				prompt = continuationPromptColor.Sprint("...   ")
			} else {
				prompt = "...   "
			}
		}

		rl.SetPrompt(prompt)
		line, err := rl.Readline()
		if err != nil {
			return strings.Join(lines, "\n"), err
		}

		lines = append(lines, line)

		trimmed := strings.TrimSpace(line)
		if len(lines) == 1 && (trimmed == "quit" || trimmed == "exit") {
			return trimmed, nil
		}

		parenCount += countParens(line, &inString, &escaped)

		if parenCount == 0 && containsExpression(strings.Join(lines, "\n")) {
			break
		}
		if parenCount < 0 {
			break
		}
	}

	return strings.Join(lines, "\n"), nil
}

// countParens returns the net change in open-paren depth contributed by
// line, tracking string/escape state across calls via inString/escaped
// so a "(" inside a string literal or after a comment marker is not
// counted.
func countParens(line string, inString, escaped *bool) int {
	delta := 0
	for _, ch := range line {
		if *escaped {
			*escaped = false
			continue
		}
		switch ch {
		case '\\':
			if *inString {
				*escaped = true
			}
		case '"':
			*inString = !*inString
		case '(':
			if !*inString {
				delta++
			}
		case ')':
			if !*inString {
				delta--
			}
		case ';':
			if !*inString {
				return delta
			}
		}
	}
	return delta
}

// containsExpression reports whether input has any non-whitespace
// content once line comments are stripped.
func containsExpression(input string) bool {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return false
	}
	for _, line := range strings.Split(trimmed, "\n") {
		inString := false
		escaped := false
		stripped := line
		for i, ch := range line {
			if escaped {
				escaped = false
				continue
			}
			if ch == '\\' {
				if inString {
					escaped = true
				}
				continue
			}
			if ch == '"' {
				inString = !inString
				continue
			}
			if ch == ';' && !inString {
				stripped = line[:i]
				break
			}
		}
		if strings.TrimSpace(stripped) != "" {
			return true
		}
	}
	return false
}

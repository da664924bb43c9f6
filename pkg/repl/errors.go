package repl

import (
	"github.com/fatih/color"

	"github.com/arborlang/arbor/pkg/lisperr"
)

// ErrorFormatter handles colored error output for the REPL. Unlike a
// formatter that sniffs an error's message text, this one switches on
// lisperr.Kind directly, so a message change anywhere in the evaluator
// can never silently reclassify an error.
type ErrorFormatter struct {
	lookupColor     *color.Color
	shapeColor      *color.Color
	typeColor       *color.Color
	arityColor      *color.Color
	arithmeticColor *color.Color
	promiseColor    *color.Color
	hostColor       *color.Color
	prefixColor     *color.Color
}

// NewErrorFormatter creates a new error formatter with predefined colors.
func NewErrorFormatter() *ErrorFormatter {
	return &ErrorFormatter{
		lookupColor:     color.New(color.FgYellow, color.Bold),
		shapeColor:      color.New(color.FgRed, color.Bold),
		typeColor:       color.New(color.FgCyan, color.Bold),
		arityColor:      color.New(color.FgMagenta, color.Bold),
		arithmeticColor: color.New(color.FgBlue, color.Bold),
		promiseColor:    color.New(color.FgGreen, color.Bold),
		hostColor:       color.New(color.FgWhite, color.Bold),
		prefixColor:     color.New(color.FgRed, color.Bold),
	}
}

// kindOf extracts the lisperr.Kind of err, defaulting to Host for any
// error that did not come from the interpreter itself (a reader error,
// for instance, which predates evaluation).
func kindOf(err error) lisperr.Kind {
	if ie, ok := err.(*lisperr.Error); ok {
		return ie.Kind
	}
	return lisperr.Host
}

func (ef *ErrorFormatter) colorFor(kind lisperr.Kind) *color.Color {
	switch kind {
	case lisperr.Lookup:
		return ef.lookupColor
	case lisperr.Shape:
		return ef.shapeColor
	case lisperr.Type:
		return ef.typeColor
	case lisperr.Arity:
		return ef.arityColor
	case lisperr.Arithmetic:
		return ef.arithmeticColor
	case lisperr.Promise:
		return ef.promiseColor
	default:
		return ef.hostColor
	}
}

func label(kind lisperr.Kind) string {
	switch kind {
	case lisperr.Lookup:
		return "Unbound Variable"
	case lisperr.Shape:
		return "Ill-formed Expression"
	case lisperr.Type:
		return "Type Error"
	case lisperr.Arity:
		return "Arity Error"
	case lisperr.Arithmetic:
		return "Arithmetic Error"
	case lisperr.Promise:
		return "Promise Error"
	default:
		return "Error"
	}
}

// FormatError formats an error with colors and a label chosen from its
// structural kind.
func (ef *ErrorFormatter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	kind := kindOf(err)
	prefix := ef.prefixColor.Sprintf("%s:", label(kind))
	message := ef.colorFor(kind).Sprintf(" %s", err.Error())
	return prefix + message
}

// suggestion returns a short hint for the given error kind, or "" when
// none applies.
func suggestion(kind lisperr.Kind) string {
	switch kind {
	case lisperr.Lookup:
		return "check whether the symbol is defined, or a typo in its name"
	case lisperr.Arity:
		return "check the number of arguments against the procedure's formals"
	case lisperr.Shape:
		return "check for balanced parentheses and well-formed special-form syntax"
	case lisperr.Arithmetic:
		return "check for a zero divisor"
	case lisperr.Type:
		return "check the argument against what the procedure expects"
	default:
		return ""
	}
}

// FormatErrorWithSuggestion formats an error with a structural-kind hint
// appended.
func (ef *ErrorFormatter) FormatErrorWithSuggestion(err error) string {
	if err == nil {
		return ""
	}
	base := ef.FormatError(err)
	hint := suggestion(kindOf(err))
	if hint == "" {
		return base
	}
	hintColor := color.New(color.FgHiBlack, color.Italic)
	return base + hintColor.Sprintf("\n  Suggestion: %s", hint)
}

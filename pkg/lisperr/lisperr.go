// Package lisperr defines the single typed error value that unwinds out of
// the evaluator, so that callers can distinguish interpreter errors from
// host errors by type rather than by sniffing a message string.
package lisperr

import "fmt"

// Kind categorizes why an evaluation failed.
type Kind int

const (
	// Lookup: a referenced identifier is unbound.
	Lookup Kind = iota
	// Shape: a malformed special form (bad arity, non-list operands,
	// duplicate or non-symbol formals, a misplaced else clause, unquote
	// outside quasiquote).
	Shape
	// Type: an operation's argument failed its predicate.
	Type
	// Arity: a call's argument count did not match its formals.
	Arity
	// Arithmetic: division by zero or another host numeric failure.
	Arithmetic
	// Promise: forcing a promise produced a non-list value.
	Promise
	// Host: I/O, resource exhaustion, or any non-interpreter failure
	// coerced into an interpreter error at the builtin boundary.
	Host
)

func (k Kind) String() string {
	switch k {
	case Lookup:
		return "lookup"
	case Shape:
		return "shape"
	case Type:
		return "type"
	case Arity:
		return "arity"
	case Arithmetic:
		return "arithmetic"
	case Promise:
		return "promise"
	case Host:
		return "host"
	default:
		return "error"
	}
}

// Error is the interpreter's single error type. Every failure raised
// anywhere inside Eval/Apply is one of these.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// New constructs an Error of the given kind with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Lookupf, Shapef, Typef, Arityf, Arithmeticf, Promisef, Hostf are
// kind-specific constructors used throughout pkg/evaluator and
// pkg/stdlib so call sites read as what failed, not how to build it.
func Lookupf(format string, args ...any) *Error    { return New(Lookup, format, args...) }
func Shapef(format string, args ...any) *Error     { return New(Shape, format, args...) }
func Typef(format string, args ...any) *Error      { return New(Type, format, args...) }
func Arityf(format string, args ...any) *Error     { return New(Arity, format, args...) }
func Arithmeticf(format string, args ...any) *Error { return New(Arithmetic, format, args...) }
func Promisef(format string, args ...any) *Error   { return New(Promise, format, args...) }
func Hostf(format string, args ...any) *Error      { return New(Host, format, args...) }

// FromHost coerces an arbitrary Go error raised by a builtin's host
// function into an interpreter error, preserving its original message
// instead of re-raising a bare error. A pointer that is already an
// *Error passes through unchanged, so sentinel errors keep their
// identity across this boundary.
func FromHost(err error) *Error {
	if err == nil {
		return nil
	}
	if ie, ok := err.(*Error); ok {
		return ie
	}
	return Hostf("%s", err.Error())
}

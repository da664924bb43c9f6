// Package evaluator implements the eval/apply core: environments,
// procedure application, the special-form dispatcher, the tail-call
// trampoline, and the promise/stream layer.
package evaluator

import (
	"github.com/arborlang/arbor/pkg/lisperr"
	"github.com/arborlang/arbor/pkg/value"
)

// Frame is a singly linked environment frame binding symbols to values,
// terminated by the global frame (parent == nil). It is the concrete
// type backing value.Environment.
type Frame struct {
	bindings map[value.Symbol]value.Value
	parent   *Frame
}

// NewGlobalFrame returns an empty root frame, ready for builtin
// registration.
func NewGlobalFrame() *Frame {
	return &Frame{bindings: make(map[value.Symbol]value.Value)}
}

// Define binds or rebinds symbol in this frame only.
func (f *Frame) Define(sym value.Symbol, v value.Value) {
	f.bindings[sym] = v
}

// Lookup returns the value bound to sym in the nearest enclosing frame.
func (f *Frame) Lookup(sym value.Symbol) (value.Value, error) {
	for frame := f; frame != nil; frame = frame.parent {
		if v, ok := frame.bindings[sym]; ok {
			return v, nil
		}
	}
	return nil, lisperr.Lookupf("unknown identifier: %s", sym)
}

// MakeChild returns a new frame whose parent is f, binding each formal
// to the corresponding argument by position.
func (f *Frame) MakeChild(formals []value.Symbol, args []value.Value) (value.Environment, error) {
	if len(formals) != len(args) {
		return nil, lisperr.Arityf("too many or too few values: expected %d, got %d", len(formals), len(args))
	}
	bindings := make(map[value.Symbol]value.Value, len(formals))
	for i, sym := range formals {
		bindings[sym] = args[i]
	}
	return &Frame{bindings: bindings, parent: f}, nil
}

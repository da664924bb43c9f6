// Package builtin is the registration interface through which external
// collaborators (arithmetic, list operations, I/O, and any other host
// procedure library) are wired into the evaluator's global frame.
package builtin

import (
	"fmt"
	"sort"
	"sync"

	"github.com/arborlang/arbor/pkg/evaluator"
	"github.com/arborlang/arbor/pkg/value"
)

// Registration describes one host procedure to install: its primary
// name, any additional names it should also answer to, the function
// itself, whether it needs the calling environment passed in, and
// bookkeeping (Category, read by Categories/ListByCategory, and Help
// text).
type Registration struct {
	Name     string
	Aliases  []string
	Fn       value.BuiltinFunc
	UseEnv   bool
	Category string
	Help     string
}

// Registry collects Registrations before they are installed into a
// global frame, and lets a REPL or help command enumerate what is
// available by name or category.
type Registry struct {
	mutex      sync.RWMutex
	entries    map[string]*Registration
	categories map[string][]string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries:    make(map[string]*Registration),
		categories: make(map[string][]string),
	}
}

// Register records reg under its primary name and every alias. A name
// collision (including between an alias and an existing primary name)
// is rejected rather than silently overwritten.
func (r *Registry) Register(reg Registration) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if reg.Name == "" {
		return fmt.Errorf("builtin registration: name cannot be empty")
	}
	names := append([]string{reg.Name}, reg.Aliases...)
	for _, name := range names {
		if _, exists := r.entries[name]; exists {
			return fmt.Errorf("builtin registration: %s already registered", name)
		}
	}
	for _, name := range names {
		r.entries[name] = &reg
	}
	if reg.Category != "" {
		r.categories[reg.Category] = append(r.categories[reg.Category], reg.Name)
		sort.Strings(r.categories[reg.Category])
	}
	return nil
}

// Get retrieves a registration by name or alias.
func (r *Registry) Get(name string) (*Registration, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	reg, ok := r.entries[name]
	return reg, ok
}

// List returns every registered name (including aliases), sorted.
func (r *Registry) List() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Categories returns every category with at least one registration.
func (r *Registry) Categories() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	out := make([]string, 0, len(r.categories))
	for c := range r.categories {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// ListByCategory returns the primary names registered under category.
func (r *Registry) ListByCategory(category string) []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	funcs, ok := r.categories[category]
	if !ok {
		return nil
	}
	out := make([]string, len(funcs))
	copy(out, funcs)
	return out
}

// InstallInto defines every registered name and alias in frame as a
// value.BuiltinProc, making the registry's contents callable from Lisp
// source evaluated against that frame.
func (r *Registry) InstallInto(frame *evaluator.Frame) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	for name, reg := range r.entries {
		frame.Define(value.Symbol(name), &value.BuiltinProc{
			Name:   reg.Name,
			Fn:     reg.Fn,
			UseEnv: reg.UseEnv,
		})
	}
}

// Builtin function categories, grouping the arithmetic, list,
// predicate, and I/O procedures for List/Categories/ListByCategory.
const (
	CategoryPredicate  = "predicate"
	CategoryPair       = "pair"
	CategoryArithmetic = "arithmetic"
	CategoryComparison = "comparison"
	CategoryStream     = "stream"
	CategoryIO         = "io"
	CategorySystem     = "system"
)

package repl

import (
	"errors"
	"strings"
	"testing"

	"github.com/arborlang/arbor/pkg/lisperr"
)

func TestKindOfExtractsInterpreterKind(t *testing.T) {
	err := lisperr.Lookupf("unbound: x")
	if got := kindOf(err); got != lisperr.Lookup {
		t.Errorf("kindOf(lookup error) = %v, want Lookup", got)
	}
}

func TestKindOfDefaultsToHostForPlainError(t *testing.T) {
	err := errors.New("a reader error, not from the evaluator")
	if got := kindOf(err); got != lisperr.Host {
		t.Errorf("kindOf(plain error) = %v, want Host", got)
	}
}

func TestLabelPerKind(t *testing.T) {
	tests := []struct {
		kind lisperr.Kind
		want string
	}{
		{lisperr.Lookup, "Unbound Variable"},
		{lisperr.Shape, "Ill-formed Expression"},
		{lisperr.Type, "Type Error"},
		{lisperr.Arity, "Arity Error"},
		{lisperr.Arithmetic, "Arithmetic Error"},
		{lisperr.Promise, "Promise Error"},
		{lisperr.Host, "Error"},
	}
	for _, tt := range tests {
		if got := label(tt.kind); got != tt.want {
			t.Errorf("label(%v) = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

// TestFormatErrorClassifiesStructurally confirms two errors with
// unrelated message text, but the same Kind, are labeled identically,
// and that the same message text under a different Kind is labeled
// differently -- categorization keys off Kind, not wording.
func TestFormatErrorClassifiesStructurally(t *testing.T) {
	ef := NewErrorFormatter()

	sameWordingDifferentKind1 := lisperr.Typef("not found")
	sameWordingDifferentKind2 := lisperr.Lookupf("not found")

	out1 := ef.FormatError(sameWordingDifferentKind1)
	out2 := ef.FormatError(sameWordingDifferentKind2)
	if strings.Contains(out1, "Unbound Variable") {
		t.Error("a Type-kind error was labeled as Unbound Variable")
	}
	if !strings.Contains(out2, "Unbound Variable") {
		t.Error("a Lookup-kind error was not labeled as Unbound Variable")
	}

	unrelatedWordingSameKind1 := lisperr.Lookupf("x is unbound")
	unrelatedWordingSameKind2 := lisperr.Lookupf("totally different wording")
	out3 := ef.FormatError(unrelatedWordingSameKind1)
	out4 := ef.FormatError(unrelatedWordingSameKind2)
	if !strings.Contains(out3, "Unbound Variable") || !strings.Contains(out4, "Unbound Variable") {
		t.Error("two Lookup-kind errors with different wording were not labeled identically")
	}
}

func TestFormatErrorNilIsEmpty(t *testing.T) {
	ef := NewErrorFormatter()
	if got := ef.FormatError(nil); got != "" {
		t.Errorf("FormatError(nil) = %q, want empty", got)
	}
	if got := ef.FormatErrorWithSuggestion(nil); got != "" {
		t.Errorf("FormatErrorWithSuggestion(nil) = %q, want empty", got)
	}
}

func TestSuggestionPresentForKnownKinds(t *testing.T) {
	for _, kind := range []lisperr.Kind{lisperr.Lookup, lisperr.Arity, lisperr.Shape, lisperr.Arithmetic, lisperr.Type} {
		if suggestion(kind) == "" {
			t.Errorf("suggestion(%v) is empty, want a hint", kind)
		}
	}
	if suggestion(lisperr.Host) != "" {
		t.Errorf("suggestion(Host) = %q, want empty", suggestion(lisperr.Host))
	}
}

func TestFormatErrorWithSuggestionAppendsHint(t *testing.T) {
	ef := NewErrorFormatter()
	out := ef.FormatErrorWithSuggestion(lisperr.Arityf("wrong number of arguments"))
	if !strings.Contains(out, "Suggestion:") {
		t.Errorf("FormatErrorWithSuggestion output missing a suggestion: %q", out)
	}
}

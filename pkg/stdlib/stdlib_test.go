package stdlib

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/arborlang/arbor/pkg/evaluator"
	"github.com/arborlang/arbor/pkg/lisperr"
	"github.com/arborlang/arbor/pkg/value"
)

// captureOutput redirects os.Stdout for the duration of f and returns
// everything written to it.
func captureOutput(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

func mustInt(t *testing.T, v value.Value) int64 {
	t.Helper()
	i, ok := v.(value.Integer)
	if !ok {
		t.Fatalf("expected Integer, got %T (%v)", v, v)
	}
	return i.V.Int64()
}

func mustBool(t *testing.T, v value.Value) bool {
	t.Helper()
	b, ok := v.(value.Boolean)
	if !ok {
		t.Fatalf("expected Boolean, got %T (%v)", v, v)
	}
	return bool(b)
}

func mustReal(t *testing.T, v value.Value) float64 {
	t.Helper()
	r, ok := v.(value.Real)
	if !ok {
		t.Fatalf("expected Real, got %T (%v)", v, v)
	}
	return float64(r)
}

func TestPredicates(t *testing.T) {
	v, _ := booleanP(value.Boolean(true))
	if !mustBool(t, v) {
		t.Error("boolean?(#t) = false, want true")
	}
	v, _ = booleanP(value.NewInteger(1))
	if mustBool(t, v) {
		t.Error("boolean?(1) = true, want false")
	}

	v, _ = notProc(value.Boolean(false))
	if !mustBool(t, v) {
		t.Error("not(#f) = false, want true")
	}

	v, _ = pairP(value.NewPair(value.NewInteger(1), value.NilValue))
	if !mustBool(t, v) {
		t.Error("pair?(pair) = false, want true")
	}
	v, _ = pairP(value.NilValue)
	if mustBool(t, v) {
		t.Error("pair?(()) = true, want false")
	}

	v, _ = nullP(value.NilValue)
	if !mustBool(t, v) {
		t.Error("null?(()) = false, want true")
	}

	v, _ = numberP(value.NewInteger(1))
	if !mustBool(t, v) {
		t.Error("number?(1) = false, want true")
	}
	v, _ = numberP(value.Symbol("x"))
	if mustBool(t, v) {
		t.Error("number?(x) = true, want false")
	}

	v, _ = integerP(value.Real(4.0))
	if !mustBool(t, v) {
		t.Error("integer?(4.0) = false, want true")
	}
	v, _ = integerP(value.Real(4.5))
	if mustBool(t, v) {
		t.Error("integer?(4.5) = true, want false")
	}

	v, _ = evenP(value.NewInteger(4))
	if !mustBool(t, v) {
		t.Error("even?(4) = false, want true")
	}
	v, _ = oddP(value.NewInteger(4))
	if mustBool(t, v) {
		t.Error("odd?(4) = true, want false")
	}
	v, _ = zeroP(value.NewInteger(0))
	if !mustBool(t, v) {
		t.Error("zero?(0) = false, want true")
	}
}

func TestEqualPDeepStructural(t *testing.T) {
	a := value.NewPair(value.NewInteger(1), value.NewPair(value.NewInteger(2), value.NilValue))
	b := value.NewPair(value.NewInteger(1), value.NewPair(value.NewInteger(2), value.NilValue))
	v, _ := equalP(a, b)
	if !mustBool(t, v) {
		t.Error("equal? on structurally-equal but distinct pairs = false, want true")
	}
	v, _ = eqP(a, b)
	if mustBool(t, v) {
		t.Error("eq? on distinct pair objects = true, want false")
	}
}

func TestAtomP(t *testing.T) {
	for _, v := range []value.Value{value.NewInteger(1), value.Boolean(true), value.Symbol("x"), value.NilValue} {
		got, _ := atomP(v)
		if !mustBool(t, got) {
			t.Errorf("atom?(%v) = false, want true", v)
		}
	}
	got, _ := atomP(value.NewPair(value.NewInteger(1), value.NilValue))
	if mustBool(t, got) {
		t.Error("atom?(pair) = true, want false")
	}
}

func TestConsCarCdr(t *testing.T) {
	p, err := consProc([]value.Value{value.NewInteger(1), value.NewInteger(2)}, nil)
	if err != nil {
		t.Fatalf("cons error: %v", err)
	}
	car, err := carProc(p)
	if err != nil {
		t.Fatalf("car error: %v", err)
	}
	if mustInt(t, car) != 1 {
		t.Errorf("car = %v, want 1", car)
	}
	cdr, err := cdrProc(p)
	if err != nil {
		t.Fatalf("cdr error: %v", err)
	}
	if mustInt(t, cdr) != 2 {
		t.Errorf("cdr = %v, want 2", cdr)
	}
}

func TestCarOfNonPairIsTypeError(t *testing.T) {
	_, err := carProc(value.NewInteger(1))
	if err == nil {
		t.Fatal("expected an error")
	}
	ie, ok := err.(*lisperr.Error)
	if !ok || ie.Kind != lisperr.Type {
		t.Errorf("err = %v, want a lisperr.Type error", err)
	}
}

func TestSetCarSetCdr(t *testing.T) {
	p := value.NewPair(value.NewInteger(1), value.NewInteger(2))
	if _, err := setCarProc([]value.Value{p, value.NewInteger(9)}, nil); err != nil {
		t.Fatalf("set-car! error: %v", err)
	}
	if p.Car.String() != "9" {
		t.Errorf("Car = %v, want 9", p.Car)
	}
	if _, err := setCdrProc([]value.Value{p, value.NilValue}, nil); err != nil {
		t.Fatalf("set-cdr! error: %v", err)
	}
	if !value.IsNil(p.Cdr) {
		t.Errorf("Cdr = %v, want Nil", p.Cdr)
	}
}

func TestListAndLength(t *testing.T) {
	list, _ := listProc([]value.Value{value.NewInteger(1), value.NewInteger(2), value.NewInteger(3)}, nil)
	if list.String() != "(1 2 3)" {
		t.Errorf("list = %q, want (1 2 3)", list.String())
	}
	length, err := lengthProc(list)
	if err != nil {
		t.Fatalf("length error: %v", err)
	}
	if mustInt(t, length) != 3 {
		t.Errorf("length = %v, want 3", length)
	}
}

func TestAppend(t *testing.T) {
	a := value.SliceToList([]value.Value{value.NewInteger(1), value.NewInteger(2)})
	b := value.SliceToList([]value.Value{value.NewInteger(3), value.NewInteger(4)})
	result, err := appendProc([]value.Value{a, b}, nil)
	if err != nil {
		t.Fatalf("append error: %v", err)
	}
	if result.String() != "(1 2 3 4)" {
		t.Errorf("append = %q, want (1 2 3 4)", result.String())
	}
}

// TestAppendEmptyIsRoundTrip confirms appending the empty list onto a
// proper list reproduces an equal list.
func TestAppendEmptyIsRoundTrip(t *testing.T) {
	xs := value.SliceToList([]value.Value{value.NewInteger(1), value.NewInteger(2), value.NewInteger(3)})
	result, err := appendProc([]value.Value{xs, value.NilValue}, nil)
	if err != nil {
		t.Fatalf("append error: %v", err)
	}
	eq, err := equalP(xs, result)
	if err != nil {
		t.Fatalf("equal? error: %v", err)
	}
	if !mustBool(t, eq) {
		t.Errorf("equal?(xs, append(xs, '())) = %v, want #t", eq)
	}
}

func TestArithmeticAdditionIntegerAndFloat(t *testing.T) {
	v, err := numAdd("+", []value.Value{value.NewInteger(1), value.NewInteger(2), value.NewInteger(3)})
	if err != nil {
		t.Fatalf("+ error: %v", err)
	}
	if mustInt(t, v) != 6 {
		t.Errorf("+ = %v, want 6", v)
	}

	v, err = numAdd("+", []value.Value{value.NewInteger(1), value.Real(2.5)})
	if err != nil {
		t.Fatalf("+ error: %v", err)
	}
	if mustReal(t, v) != 3.5 {
		t.Errorf("+ = %v, want 3.5", v)
	}
}

func TestArithmeticDemotesIntegralFloat(t *testing.T) {
	// A float result that happens to be whole demotes back to Integer.
	v, err := numAdd("+", []value.Value{value.Real(1.0), value.Real(2.0)})
	if err != nil {
		t.Fatalf("+ error: %v", err)
	}
	if _, ok := v.(value.Integer); !ok {
		t.Errorf("+ (1.0 2.0) = %T, want demoted to Integer", v)
	}
}

func TestSubtractionUnaryNegation(t *testing.T) {
	v, err := numSub("-", value.NewInteger(5), nil)
	if err != nil {
		t.Fatalf("- error: %v", err)
	}
	if mustInt(t, v) != -5 {
		t.Errorf("-5 got %v, want -5", v)
	}
}

func TestDivisionByZeroIsArithmeticError(t *testing.T) {
	_, err := numDiv("/", value.NewInteger(1), []value.Value{value.NewInteger(0)})
	if err == nil {
		t.Fatal("expected an error dividing by zero")
	}
	ie, ok := err.(*lisperr.Error)
	if !ok || ie.Kind != lisperr.Arithmetic {
		t.Errorf("err = %v, want a lisperr.Arithmetic error", err)
	}
}

func TestDivisionExactReturnsInteger(t *testing.T) {
	v, err := numDiv("/", value.NewInteger(10), []value.Value{value.NewInteger(2)})
	if err != nil {
		t.Fatalf("/ error: %v", err)
	}
	if _, ok := v.(value.Integer); !ok {
		t.Errorf("10/2 = %T, want Integer", v)
	}
	if mustInt(t, v) != 5 {
		t.Errorf("10/2 = %v, want 5", v)
	}
}

// TestQuotientRemainderModuloSigns pins the sign conventions named in
// the numeric model: quotient truncates toward zero, remainder takes
// the dividend's sign, modulo takes the divisor's sign (floor
// division).
func TestQuotientRemainderModuloSigns(t *testing.T) {
	tests := []struct {
		a, b                      int64
		wantQuotient, wantRem, wantMod int64
	}{
		{7, 2, 3, 1, 1},
		{-7, 2, -3, -1, 1},
		{7, -2, -3, 1, -1},
		{-7, -2, 3, -1, -1},
	}
	for _, tt := range tests {
		q, err := quotient(value.NewInteger(tt.a), value.NewInteger(tt.b))
		if err != nil {
			t.Fatalf("quotient(%d,%d) error: %v", tt.a, tt.b, err)
		}
		if mustInt(t, q) != tt.wantQuotient {
			t.Errorf("quotient(%d,%d) = %v, want %d", tt.a, tt.b, q, tt.wantQuotient)
		}
		r, err := remainderOf(value.NewInteger(tt.a), value.NewInteger(tt.b))
		if err != nil {
			t.Fatalf("remainder(%d,%d) error: %v", tt.a, tt.b, err)
		}
		if mustInt(t, r) != tt.wantRem {
			t.Errorf("remainder(%d,%d) = %v, want %d", tt.a, tt.b, r, tt.wantRem)
		}
		m, err := floorModulo(value.NewInteger(tt.a), value.NewInteger(tt.b))
		if err != nil {
			t.Fatalf("modulo(%d,%d) error: %v", tt.a, tt.b, err)
		}
		if mustInt(t, m) != tt.wantMod {
			t.Errorf("modulo(%d,%d) = %v, want %d", tt.a, tt.b, m, tt.wantMod)
		}
	}
}

func TestQuotientByZeroIsArithmeticError(t *testing.T) {
	_, err := quotient(value.NewInteger(1), value.NewInteger(0))
	if err == nil {
		t.Fatal("expected an error")
	}
	ie, ok := err.(*lisperr.Error)
	if !ok || ie.Kind != lisperr.Arithmetic {
		t.Errorf("err = %v, want a lisperr.Arithmetic error", err)
	}
}

func TestComparisons(t *testing.T) {
	v, _ := lessThan(value.NewInteger(1), value.NewInteger(2))
	if !mustBool(t, v) {
		t.Error("1 < 2 = false, want true")
	}
	v, _ = greaterThan(value.NewInteger(2), value.NewInteger(1))
	if !mustBool(t, v) {
		t.Error("2 > 1 = false, want true")
	}
	v, _ = numericEq(value.NewInteger(2), value.Real(2.0))
	if !mustBool(t, v) {
		t.Error("2 = 2.0 = false, want true")
	}
	v, _ = lessEqual(value.NewInteger(2), value.NewInteger(2))
	if !mustBool(t, v) {
		t.Error("2 <= 2 = false, want true")
	}
	v, _ = greaterEqual(value.NewInteger(2), value.NewInteger(3))
	if mustBool(t, v) {
		t.Error("2 >= 3 = true, want false")
	}
}

func TestExptAndAbs(t *testing.T) {
	v, err := exptProc(value.NewInteger(2), value.NewInteger(10))
	if err != nil {
		t.Fatalf("expt error: %v", err)
	}
	if mustInt(t, v) != 1024 {
		t.Errorf("2^10 = %v, want 1024", v)
	}
	v, err = absProc(value.NewInteger(-5))
	if err != nil {
		t.Fatalf("abs error: %v", err)
	}
	if mustInt(t, v) != 5 {
		t.Errorf("abs(-5) = %v, want 5", v)
	}
}

func TestCopysign(t *testing.T) {
	v, err := copysignProc([]value.Value{value.NewInteger(3), value.Real(-1.0)}, nil)
	if err != nil {
		t.Fatalf("copysign error: %v", err)
	}
	if mustReal(t, v) != -3 {
		t.Errorf("copysign(3, -1) = %v, want -3", v)
	}
}

func TestMathUnaryFnsRejectNonNumeric(t *testing.T) {
	fn := mathUnary("sqrt", func(f float64) float64 { return f })
	_, err := fn([]value.Value{value.Symbol("x")}, nil)
	if err == nil {
		t.Fatal("expected an error for a non-numeric argument")
	}
	ie, ok := err.(*lisperr.Error)
	if !ok || ie.Kind != lisperr.Type {
		t.Errorf("err = %v, want a lisperr.Type error", err)
	}
}

func TestForceRejectsNonPairResult(t *testing.T) {
	frame := evaluator.NewGlobalFrame()
	evaluator.RegisterCore(frame)
	promise := value.NewPromise(value.NewInteger(1), frame)
	_, err := forceProc(promise)
	// Force requires a Nil-or-Pair result; an Integer must be rejected.
	if err == nil {
		t.Fatal("expected Force to reject a non-pair result")
	}
	ie, ok := err.(*lisperr.Error)
	if !ok || ie.Kind != lisperr.Promise {
		t.Errorf("err = %v, want a lisperr.Promise error", err)
	}
}

func TestForceAndCdrStreamSuccessPath(t *testing.T) {
	frame := evaluator.NewGlobalFrame()
	evaluator.RegisterCore(frame)
	tailPromise := value.NewPromise(value.NilValue, frame)
	streamPair := value.NewPair(value.NewInteger(1), tailPromise)

	v, err := forceProc(tailPromise)
	if err != nil {
		t.Fatalf("force error: %v", err)
	}
	if !value.IsNil(v) {
		t.Errorf("force = %v, want Nil", v)
	}

	v2, err := cdrStreamProc(streamPair)
	if err != nil {
		t.Fatalf("cdr-stream error: %v", err)
	}
	if !value.IsNil(v2) {
		t.Errorf("cdr-stream = %v, want Nil", v2)
	}
}

func TestForceNonPromiseIsTypeError(t *testing.T) {
	_, err := forceProc(value.NewInteger(1))
	if err == nil {
		t.Fatal("expected an error")
	}
	ie, ok := err.(*lisperr.Error)
	if !ok || ie.Kind != lisperr.Type {
		t.Errorf("err = %v, want a lisperr.Type error", err)
	}
}

// TestDisplayUnquotesButPrintKeepsQuotes confirms display shows a
// string's bare text while print shows the value as it would be read.
func TestDisplayUnquotesButPrintKeepsQuotes(t *testing.T) {
	s := value.String("\"hello\"")

	displayed := captureOutput(func() { displayProc(s) })
	if displayed != "hello" {
		t.Errorf("display output = %q, want %q", displayed, "hello")
	}

	printed := captureOutput(func() { printProc(s) })
	if printed != "\"hello\"\n" {
		t.Errorf("print output = %q, want %q", printed, "\"hello\"\n")
	}
}

func TestReplStringStripsSurfaceQuotes(t *testing.T) {
	s := value.String("\"hello\"")
	if got, want := ReplString(s), "hello"; got != want {
		t.Errorf("ReplString(%q) = %q, want %q", s, got, want)
	}
	if got, want := ReplString(value.NewInteger(5)), "5"; got != want {
		t.Errorf("ReplString(5) = %q, want %q", got, want)
	}
}

func TestExitProducesRecognizedSentinel(t *testing.T) {
	_, err := exitProc(nil, nil)
	if err == nil {
		t.Fatal("expected exit to return an error")
	}
	if !ErrExit(err) {
		t.Error("ErrExit did not recognize exit's sentinel error")
	}
	if ErrExit(lisperr.Hostf("exit")) {
		t.Error("ErrExit matched an unrelated error with the same message")
	}
}

func TestExitRejectsArguments(t *testing.T) {
	_, err := exitProc([]value.Value{value.NewInteger(1)}, nil)
	if err == nil {
		t.Fatal("expected an error")
	}
	ie, ok := err.(*lisperr.Error)
	if !ok || ie.Kind != lisperr.Arity {
		t.Errorf("err = %v, want a lisperr.Arity error", err)
	}
}

func TestLoadEvaluatesFileAgainstCallingEnvironment(t *testing.T) {
	frame := evaluator.NewGlobalFrame()
	evaluator.RegisterCore(frame)
	frame.Define("+", &value.BuiltinProc{Name: "+", Fn: func(args []value.Value, env value.Environment) (value.Value, error) {
		return numAdd("+", args)
	}})

	dir := t.TempDir()
	path := filepath.Join(dir, "prog.scm")
	if err := os.WriteFile(path, []byte("(define x (+ 1 2))"), 0o644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	_, err := loadProc([]value.Value{value.String("\"" + path + "\"")}, frame)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}

	v, err := frame.Lookup("x")
	if err != nil {
		t.Fatalf("lookup(x) error: %v", err)
	}
	if mustInt(t, v) != 3 {
		t.Errorf("x = %v, want 3", v)
	}
}

func TestLoadMissingFileIsHostError(t *testing.T) {
	frame := evaluator.NewGlobalFrame()
	_, err := loadProc([]value.Value{value.String("\"/nonexistent/path/does-not-exist.scm\"")}, frame)
	if err == nil {
		t.Fatal("expected an error loading a missing file")
	}
	ie, ok := err.(*lisperr.Error)
	if !ok || ie.Kind != lisperr.Host {
		t.Errorf("err = %v, want a lisperr.Host error", err)
	}
}

func TestNewGlobalFrameRegistersEverything(t *testing.T) {
	frame, reg, err := NewGlobalFrame()
	if err != nil {
		t.Fatalf("NewGlobalFrame error: %v", err)
	}
	for _, name := range []string{"+", "-", "*", "/", "car", "cdr", "cons", "quotient", "modulo", "remainder", "eval", "apply", "map"} {
		if _, err := frame.Lookup(value.Symbol(name)); err != nil {
			t.Errorf("Lookup(%s) error: %v", name, err)
		}
	}
	if _, ok := reg.Get("+"); !ok {
		t.Error("registry missing +")
	}
}

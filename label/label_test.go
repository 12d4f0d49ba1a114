package label

import (
	"errors"
	"fmt"
	"testing"
)

var abc = []string{"a", "b", "c"}

func mustCompile(t *testing.T, guards []string, vars []string) Label {
	t.Helper()
	l, err := Compile(guards, vars)
	if err != nil {
		t.Fatalf("could not compile %v: %v", guards, err)
	}
	return l
}

func TestCompile(t *testing.T) {
	tests := []struct {
		guards []string
		vars   []string
		want   string
	}{
		{[]string{"1X0"}, abc, "a & ~c"},
		{[]string{"XXX"}, abc, "true"},
		{[]string{""}, nil, "true"},
		{[]string{""}, abc, "true"},
		{[]string{"X1X", "1X0"}, abc, "(a & ~c) | b"},
		{[]string{"0"}, []string{"x"}, "~x"},
		{[]string{"11", "XX"}, []string{"x", "y"}, "true"},
		{[]string{"01", "10"}, []string{"x", "y"}, "(~x & y) | (x & ~y)"},
	}
	for _, test := range tests {
		l := mustCompile(t, test.guards, test.vars)
		if got := l.String(); got != test.want {
			t.Errorf("invalid label for %v: expected %q, got %q", test.guards, test.want, got)
		}
	}
}

func TestCompileLiterals(t *testing.T) {
	l := mustCompile(t, []string{"1X0"}, abc)
	want := New([]Literal{{Var: "a"}, {Var: "c", Negated: true}})
	if !l.Equal(want) {
		t.Errorf("expected %s, got %s", want, l)
	}
	if !l.Equivalent(want) {
		t.Errorf("%s and %s should be equivalent", l, want)
	}
	if vars := l.Vars(); len(vars) != 2 || vars[0] != "a" || vars[1] != "c" {
		t.Errorf("invalid variables %v", vars)
	}
}

func TestCompileDeterministic(t *testing.T) {
	l1 := mustCompile(t, []string{"10", "01"}, []string{"x", "y"})
	l2 := mustCompile(t, []string{"01", "10", "01"}, []string{"x", "y"})
	if !l1.Equal(l2) {
		t.Errorf("labels should be equal: %s vs %s", l1, l2)
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		guards []string
		vars   []string
		err    error
	}{
		{nil, abc, ErrEmptyGuardSet},
		{[]string{"1"}, []string{"a", "b"}, ErrInvalidGuard},
		{[]string{"1Z"}, []string{"a", "b"}, ErrInvalidGuard},
		{[]string{"11", "x0"}, []string{"a", "b"}, ErrInvalidGuard},
	}
	for _, test := range tests {
		if _, err := Compile(test.guards, test.vars); !errors.Is(err, test.err) {
			t.Errorf("compiling %v: expected %v, got %v", test.guards, test.err, err)
		}
	}
}

func TestEval(t *testing.T) {
	l := mustCompile(t, []string{"1X0", "X1X"}, abc)
	tests := []struct {
		model map[string]bool
		want  bool
	}{
		{map[string]bool{"a": true}, true},
		{map[string]bool{"a": true, "c": true}, false},
		{map[string]bool{"b": true, "c": true}, true},
		{nil, false},
	}
	for _, test := range tests {
		if got := l.Eval(test.model); got != test.want {
			t.Errorf("eval of %s under %v: expected %t, got %t", l, test.model, test.want, got)
		}
	}
	if !True.Eval(nil) || False.Eval(map[string]bool{"a": true}) {
		t.Errorf("invalid evaluation of constants")
	}
}

func TestWitness(t *testing.T) {
	l := mustCompile(t, []string{"1X0"}, abc)
	model := l.Witness()
	if model == nil {
		t.Fatalf("%s declared unsatisfiable", l)
	}
	if !model["a"] || model["c"] {
		t.Errorf("invalid model %v for %s", model, l)
	}
	if !l.Eval(model) {
		t.Errorf("model %v does not satisfy %s", model, l)
	}
	if False.Satisfiable() {
		t.Errorf("false declared satisfiable")
	}
	if !True.Satisfiable() {
		t.Errorf("true declared unsatisfiable")
	}
}

func TestCount(t *testing.T) {
	tests := []struct {
		l    Label
		vars []string
		want int64
	}{
		{mustCompile(t, []string{"1X0"}, abc), abc, 2},
		{mustCompile(t, []string{"1X0", "X1X"}, abc), abc, 5},
		{True, []string{"a", "b"}, 4},
		{False, []string{"a"}, 0},
		{True, nil, 1},
	}
	for _, test := range tests {
		got, err := test.l.Count(test.vars)
		if err != nil {
			t.Errorf("could not count models of %s: %v", test.l, err)
		} else if got.Int64() != test.want {
			t.Errorf("invalid count for %s over %v: expected %d, got %v", test.l, test.vars, test.want, got)
		}
	}
	if _, err := mustCompile(t, []string{"1X0"}, abc).Count([]string{"a"}); err == nil {
		t.Errorf("expected an error when counting over missing variables")
	}
}

func TestEquivalent(t *testing.T) {
	xy := []string{"x", "y"}
	l1 := mustCompile(t, []string{"1X", "10"}, xy)
	l2 := mustCompile(t, []string{"1X"}, xy)
	if l1.Equal(l2) {
		t.Errorf("%s and %s should not be structurally equal", l1, l2)
	}
	if !l1.Equivalent(l2) {
		t.Errorf("%s and %s should be equivalent", l1, l2)
	}
	if l2.Equivalent(mustCompile(t, []string{"X1"}, xy)) {
		t.Errorf("x and y should not be equivalent")
	}
}

func TestIntersects(t *testing.T) {
	l := mustCompile(t, []string{"1X0"}, abc)
	if !l.Intersects(mustCompile(t, []string{"X1X"}, abc)) {
		t.Errorf("a & ~c and b should intersect")
	}
	if l.Intersects(mustCompile(t, []string{"0XX"}, abc)) {
		t.Errorf("a & ~c and ~a should not intersect")
	}
	if l.Intersects(False) {
		t.Errorf("no label should intersect false")
	}
}

func TestExhaustive(t *testing.T) {
	x, notX := mustCompile(t, []string{"1"}, []string{"x"}), mustCompile(t, []string{"0"}, []string{"x"})
	if ok, err := Exhaustive(x, notX); err != nil || !ok {
		t.Errorf("x and ~x should be exhaustive (%v)", err)
	}
	y := mustCompile(t, []string{"1"}, []string{"y"})
	if ok, err := Exhaustive(x, y); err != nil || ok {
		t.Errorf("x and y should not be exhaustive (%v)", err)
	}
	if ok, err := Exhaustive(True); err != nil || !ok {
		t.Errorf("true should be exhaustive (%v)", err)
	}
}

func ExampleCompile() {
	l, err := Compile([]string{"X1X", "1X0"}, []string{"a", "b", "c"})
	if err != nil {
		fmt.Printf("could not compile guards: %v", err)
		return
	}
	fmt.Println(l)
	// Output: (a & ~c) | b
}

package mona

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/crillab/logaut/automaton"
)

const untilOutput = `DFA for formula with free variables: a b
Initial state: 0
Accepting states: 2
Rejecting states: 0 1

Automaton has 3 states and 5 BDD-nodes
Transitions:
State 0: XX -> state 1
State 1: 00 -> state 1
State 1: 10 -> state 1
State 1: X1 -> state 2
State 2: XX -> state 2
`

func TestDecode(t *testing.T) {
	tab, err := Decode(untilOutput)
	if err != nil {
		t.Fatalf("could not decode output: %v", err)
	}
	if tab.NbStates != 3 || tab.Initial != 0 {
		t.Errorf("invalid header: %d states, initial %d", tab.NbStates, tab.Initial)
	}
	if !reflect.DeepEqual(tab.Vars, []string{"a", "b"}) {
		t.Errorf("invalid variables %v", tab.Vars)
	}
	if acc := tab.Accepting.Sorted(); !reflect.DeepEqual(acc, []int{2}) {
		t.Errorf("invalid accepting states %v", acc)
	}
	if rej := tab.Rejecting.Sorted(); !reflect.DeepEqual(rej, []int{0, 1}) {
		t.Errorf("invalid rejecting states %v", rej)
	}
	if guards := tab.Transitions[1][1].Sorted(); !reflect.DeepEqual(guards, []string{"00", "10"}) {
		t.Errorf("invalid guards from 1 to 1: %v", guards)
	}
	if len(tab.Transitions) != 3 || len(tab.Transitions[1]) != 2 {
		t.Errorf("invalid transitions %v", tab.Transitions)
	}
	a, err := automaton.Build(tab)
	if err != nil {
		t.Fatalf("could not build automaton: %v", err)
	}
	tr, ok := a.Transition(1, 1)
	if !ok || tr.Label.String() != "(~a & ~b) | (a & ~b)" {
		t.Errorf("invalid self-loop on 1: %v", tr)
	}
	if ok, err := a.Complete(1); err != nil || !ok {
		t.Errorf("state 1 should be complete (%v)", err)
	}
}

func TestDecodeNoVariable(t *testing.T) {
	const text = `DFA for formula with free variables:
Initial state: 0
Accepting states: 1
Rejecting states:

Automaton has 2 states and 1 BDD-node
Transitions:
State 0:  -> state 1
State 1:  -> state 1
`
	tab, err := Decode(text)
	if err != nil {
		t.Fatalf("could not decode output: %v", err)
	}
	if len(tab.Vars) != 0 || tab.NbStates != 2 || len(tab.Rejecting) != 0 {
		t.Errorf("invalid table %+v", tab)
	}
	a, err := automaton.Build(tab)
	if err != nil {
		t.Fatalf("could not build automaton: %v", err)
	}
	if tr, ok := a.Transition(0, 1); !ok || !tr.Label.IsTrue() {
		t.Errorf("expected a true transition from 0 to 1, got %v", tr)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		field string
	}{
		{"missing initial state", strings.Replace(untilOutput, "Initial state: 0\n", "", 1), FieldInitial},
		{"missing variables", strings.Replace(untilOutput, "DFA for formula with free variables: a b\n", "", 1), FieldVars},
		{"missing state count", strings.Replace(untilOutput, "Automaton has 3 states and 5 BDD-nodes\n", "", 1), FieldNbStates},
		{"bad initial state", strings.Replace(untilOutput, "Initial state: 0", "Initial state: zero", 1), FieldInitial},
		{"bad accepting state", strings.Replace(untilOutput, "Accepting states: 2", "Accepting states: 2 x", 1), FieldAccepting},
		{"guard too short", strings.Replace(untilOutput, "State 1: 00 -> state 1", "State 1: 0 -> state 1", 1), FieldTransition},
		{"guard too long", untilOutput + "State 2: 111 -> state 2\n", FieldTransition},
		{"empty", "", FieldVars},
	}
	for _, test := range tests {
		_, err := Decode(test.text)
		if !errors.Is(err, ErrMalformedOutput) {
			t.Errorf("%s: expected ErrMalformedOutput, got %v", test.name, err)
			continue
		}
		var derr *DecodeError
		if !errors.As(err, &derr) || derr.Field != test.field {
			t.Errorf("%s: expected an error on field %q, got %v", test.name, test.field, err)
		}
	}
}

func TestDecodeInconsistent(t *testing.T) {
	tests := []struct {
		text string
		err  error
	}{
		{strings.Replace(untilOutput, "Automaton has 3 states", "Automaton has 4 states", 1), automaton.ErrInconsistentStateCount},
		{untilOutput + "State 2: XX -> state 3\n", automaton.ErrStateOutOfRange},
	}
	for _, test := range tests {
		if _, err := Decode(test.text); !errors.Is(err, test.err) {
			t.Errorf("expected %v, got %v", test.err, err)
		}
	}
}

func TestDecodeSingleTransition(t *testing.T) {
	const text = `DFA for formula with free variables: x
Initial state: 0
Accepting states: 1
Rejecting states: 2

Automaton has 3 state(s) and 2 BDD-node(s)
Transitions:
State 0: 1 -> state 1
`
	tab, err := Decode(text)
	if err != nil {
		t.Fatalf("could not decode output: %v", err)
	}
	if tab.NbStates != 3 || tab.Initial != 0 || !tab.Accepting.Has(1) || !tab.Rejecting.Has(2) {
		t.Errorf("invalid table %+v", tab)
	}
	a, err := automaton.Build(tab)
	if err != nil {
		t.Fatalf("could not build automaton: %v", err)
	}
	if a.NbStates() != 3 || a.NbTransitions() != 1 {
		t.Errorf("expected 3 states and 1 transition, got %d and %d", a.NbStates(), a.NbTransitions())
	}
	if tr, ok := a.Transition(0, 1); !ok || tr.String() != "0 --x--> 1" {
		t.Errorf("invalid transition %v", tr)
	}
}

func TestIsolateLydia(t *testing.T) {
	raw := "[2021-05-04 10:00:00.000] [info] parsing formula\n" +
		"Computed automaton:\n" +
		untilOutput +
		"[2021-05-04 10:00:00.010] [info] done\n"
	got, err := IsolateLydia(raw)
	if err != nil {
		t.Fatalf("could not isolate description: %v", err)
	}
	if want := strings.TrimSuffix(untilOutput, "\n"); got != want {
		t.Errorf("invalid description: expected %q, got %q", want, got)
	}
	for _, bad := range []string{untilOutput, "Computed automaton:\n" + untilOutput} {
		if _, err := IsolateLydia(bad); !errors.Is(err, ErrMalformedOutput) {
			t.Errorf("expected ErrMalformedOutput, got %v", err)
		}
	}
}

func TestIsolateMONA(t *testing.T) {
	upper := strings.Replace(untilOutput, "free variables: a b", "free variables: A B", 1)
	raw := upper + "A counter-example of least length (0) is:\nA X\nB X\n\nA = {}\nB = {}\n"
	got, err := IsolateMONA(raw, []string{"a", "b"})
	if err != nil {
		t.Fatalf("could not isolate description: %v", err)
	}
	tab, err := Decode(got)
	if err != nil {
		t.Fatalf("could not decode isolated description: %v", err)
	}
	if !reflect.DeepEqual(tab.Vars, []string{"a", "b"}) {
		t.Errorf("variables not restored: %v", tab.Vars)
	}
	if !strings.Contains(got, "Accepting states: 2") {
		t.Errorf("header altered by the renaming:\n%s", got)
	}
	if strings.Contains(got, "counter-example") {
		t.Errorf("trailing output not removed:\n%s", got)
	}
	valid := untilOutput + "\nFormula is valid\n"
	if got, err := IsolateMONA(valid, nil); err != nil || got != untilOutput {
		t.Errorf("invalid description %q (%v)", got, err)
	}
	if _, err := IsolateMONA(untilOutput, nil); !errors.Is(err, ErrMalformedOutput) {
		t.Errorf("expected ErrMalformedOutput, got %v", err)
	}
}

func ExampleDecode() {
	tab, err := Decode(untilOutput)
	if err != nil {
		fmt.Printf("could not decode: %v", err)
		return
	}
	a, err := automaton.Build(tab)
	if err != nil {
		fmt.Printf("could not build automaton: %v", err)
		return
	}
	for s := 0; s < a.NbStates(); s++ {
		for _, tr := range a.Transitions(s) {
			fmt.Println(tr)
		}
	}
	// Output:
	// 0 --true--> 1
	// 1 --(~a & ~b) | (a & ~b)--> 1
	// 1 --b--> 2
	// 2 --true--> 2
}

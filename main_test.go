package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/crillab/logaut/automaton"
	"github.com/crillab/logaut/label"
	"github.com/crillab/logaut/mona"
)

const eventuallyDFA = `DFA for formula with free variables: x
Initial state: 0
Accepting states: 2
Rejecting states: 0 1

Automaton has 3 states and 3 BDD-nodes
Transitions:
State 0: X -> state 1
State 1: 0 -> state 1
State 1: 1 -> state 2
State 2: X -> state 2
`

func build(t *testing.T) *automaton.Automaton {
	t.Helper()
	tab, err := mona.Decode(eventuallyDFA)
	if err != nil {
		t.Fatalf("could not decode automaton: %v", err)
	}
	a, err := automaton.Build(tab)
	if err != nil {
		t.Fatalf("could not build automaton: %v", err)
	}
	return a
}

func TestOutputTable(t *testing.T) {
	var buf bytes.Buffer
	if err := output(&buf, build(t), false, false); err != nil {
		t.Fatalf("could not print automaton: %v", err)
	}
	got := buf.String()
	for _, want := range []string{"states: 3, initial: 0, accepting: [2], variables: [x]", "~x", "x=1"} {
		if !strings.Contains(got, want) {
			t.Errorf("output does not contain %q:\n%s", want, got)
		}
	}
}

func TestOutputDOT(t *testing.T) {
	var buf bytes.Buffer
	if err := output(&buf, build(t), true, false); err != nil {
		t.Fatalf("could not print automaton: %v", err)
	}
	got := buf.String()
	if !strings.HasPrefix(got, "digraph DFA {") || !strings.Contains(got, `1 -> 2 [label="x"];`) {
		t.Errorf("invalid DOT output:\n%s", got)
	}
}

func TestWitness(t *testing.T) {
	l, err := label.Compile([]string{"10"}, []string{"a", "b"})
	if err != nil {
		t.Fatalf("could not compile label: %v", err)
	}
	tests := []struct {
		l    label.Label
		want string
	}{
		{l, "a=1 b=0"},
		{label.True, "any"},
		{label.False, "-"},
	}
	for _, test := range tests {
		if got := witness(test.l); got != test.want {
			t.Errorf("invalid witness for %s: expected %q, got %q", test.l, test.want, got)
		}
	}
}

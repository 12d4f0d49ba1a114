// Package automaton builds symbolic deterministic finite automata.
//
// A symbolic automaton is a DFA whose transitions are labelled with Boolean
// formulas over a set of free variables (see package label) rather than with
// letters. Automata are built from a Table, the description decoded from the
// output of an external tool, and are read-only once built.
package automaton

import (
	"fmt"
	"sort"

	"github.com/crillab/logaut/label"
)

// A Transition goes from a state to another when its label is satisfied.
type Transition struct {
	From  int
	Label label.Label
	To    int
}

func (t Transition) String() string {
	return fmt.Sprintf("%d --%s--> %d", t.From, t.Label, t.To)
}

// An Automaton is a symbolic DFA whose states are 0 to NbStates()-1.
type Automaton struct {
	vars      []string
	initial   int
	accepting []bool
	trans     [][]Transition // trans[s] is sorted by destination
}

// Build validates t and returns the automaton it describes.
// The label of each transition is the compilation of its guards over t.Vars.
func Build(t *Table) (*Automaton, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("could not build automaton: %w", err)
	}
	a := &Automaton{
		vars:      make([]string, len(t.Vars)),
		initial:   t.Initial,
		accepting: make([]bool, t.NbStates),
		trans:     make([][]Transition, t.NbStates),
	}
	copy(a.vars, t.Vars)
	for st := range t.Accepting {
		a.accepting[st] = true
	}
	for src := 0; src < t.NbStates; src++ {
		out := t.Transitions[src]
		dsts := make([]int, 0, len(out))
		for dst := range out {
			dsts = append(dsts, dst)
		}
		sort.Ints(dsts)
		for _, dst := range dsts {
			lbl, err := label.Compile(out[dst].Sorted(), a.vars)
			if err != nil {
				return nil, fmt.Errorf("could not build transition from %d to %d: %w", src, dst, err)
			}
			a.trans[src] = append(a.trans[src], Transition{From: src, Label: lbl, To: dst})
		}
	}
	return a, nil
}

// NbStates returns the number of states of a.
func (a *Automaton) NbStates() int { return len(a.accepting) }

// Initial returns the initial state of a.
func (a *Automaton) Initial() int { return a.initial }

// Vars returns the free variables labels of a range over.
func (a *Automaton) Vars() []string {
	res := make([]string, len(a.vars))
	copy(res, a.vars)
	return res
}

// IsAccepting indicates whether s is an accepting state.
// It is false for states outside of a.
func (a *Automaton) IsAccepting(s int) bool {
	return s >= 0 && s < len(a.accepting) && a.accepting[s]
}

// Accepting returns the accepting states, in increasing order.
func (a *Automaton) Accepting() []int {
	var res []int
	for s, ok := range a.accepting {
		if ok {
			res = append(res, s)
		}
	}
	return res
}

// Transitions returns the outgoing transitions of s, sorted by destination.
func (a *Automaton) Transitions(s int) []Transition {
	if s < 0 || s >= len(a.trans) {
		return nil
	}
	res := make([]Transition, len(a.trans[s]))
	copy(res, a.trans[s])
	return res
}

// Transition returns the transition from src to dst, if any.
func (a *Automaton) Transition(src, dst int) (Transition, bool) {
	if src < 0 || src >= len(a.trans) {
		return Transition{}, false
	}
	out := a.trans[src]
	i := sort.Search(len(out), func(i int) bool { return out[i].To >= dst })
	if i < len(out) && out[i].To == dst {
		return out[i], true
	}
	return Transition{}, false
}

// NbTransitions returns the total number of transitions of a.
func (a *Automaton) NbTransitions() int {
	n := 0
	for _, out := range a.trans {
		n += len(out)
	}
	return n
}

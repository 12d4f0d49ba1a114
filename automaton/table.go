package automaton

import (
	"fmt"
	"sort"

	"github.com/crillab/logaut/label"
)

// A StateSet is a set of state indices.
type StateSet map[int]struct{}

// NewStateSet returns a set containing the given states.
func NewStateSet(states ...int) StateSet {
	s := make(StateSet, len(states))
	for _, st := range states {
		s[st] = struct{}{}
	}
	return s
}

func (s StateSet) Has(st int) bool { _, ok := s[st]; return ok }
func (s StateSet) Add(st int)      { s[st] = struct{}{} }

// Sorted returns the states of s in increasing order.
func (s StateSet) Sorted() []int {
	res := make([]int, 0, len(s))
	for st := range s {
		res = append(res, st)
	}
	sort.Ints(res)
	return res
}

// A GuardSet is the set of raw guards of the transitions between two states.
// The guards are in disjunction.
type GuardSet map[string]struct{}

// Sorted returns the guards of s in lexicographic order.
func (s GuardSet) Sorted() []string {
	res := make([]string, 0, len(s))
	for g := range s {
		res = append(res, g)
	}
	sort.Strings(res)
	return res
}

// A Table is the tool-independent description of a DFA, as decoded from the
// output of an external tool. States are numbered from 0 to NbStates-1.
type Table struct {
	NbStates    int
	Vars        []string // Free variables, in guard position order
	Initial     int
	Accepting   StateSet
	Rejecting   StateSet
	Transitions map[int]map[int]GuardSet // source -> destination -> guards
}

// AddTransition records guard as one of the guards from src to dst.
func (t *Table) AddTransition(src, dst int, guard string) {
	if t.Transitions == nil {
		t.Transitions = make(map[int]map[int]GuardSet)
	}
	out, ok := t.Transitions[src]
	if !ok {
		out = make(map[int]GuardSet)
		t.Transitions[src] = out
	}
	guards, ok := out[dst]
	if !ok {
		guards = make(GuardSet)
		out[dst] = guards
	}
	guards[guard] = struct{}{}
}

// Validate checks the invariants of t.
//
// Every referenced state must be in [0, NbStates), accepting and rejecting
// states must be disjoint, and the states must be partitioned between the
// initial state and the accepting and rejecting sets: the initial state may
// belong to one of those sets, in which case it is only counted once. When it
// belongs to none of them, NbStates must thus equal 1 + |Accepting| + |Rejecting|.
func (t *Table) Validate() error {
	if t.NbStates <= 0 {
		return countf("automaton has %d states", t.NbStates)
	}
	if t.Initial < 0 || t.Initial >= t.NbStates {
		return outOfRangef("initial state %d not in [0, %d)", t.Initial, t.NbStates)
	}
	for _, st := range t.Accepting.Sorted() {
		if st < 0 || st >= t.NbStates {
			return outOfRangef("accepting state %d not in [0, %d)", st, t.NbStates)
		}
		if t.Rejecting.Has(st) {
			return countf("state %d is both accepting and rejecting", st)
		}
	}
	for _, st := range t.Rejecting.Sorted() {
		if st < 0 || st >= t.NbStates {
			return outOfRangef("rejecting state %d not in [0, %d)", st, t.NbStates)
		}
	}
	initial := 0
	if !t.Accepting.Has(t.Initial) && !t.Rejecting.Has(t.Initial) {
		initial = 1
	}
	if computed := initial + len(t.Accepting) + len(t.Rejecting); computed != t.NbStates {
		return countf("declared %d states, computed %d (%d initial + %d accepting + %d rejecting)",
			t.NbStates, computed, initial, len(t.Accepting), len(t.Rejecting))
	}
	for src, out := range t.Transitions {
		if src < 0 || src >= t.NbStates {
			return outOfRangef("transition source %d not in [0, %d)", src, t.NbStates)
		}
		for dst, guards := range out {
			if dst < 0 || dst >= t.NbStates {
				return outOfRangef("transition destination %d not in [0, %d)", dst, t.NbStates)
			}
			if len(guards) == 0 {
				return &TableError{Kind: ErrInvalidTransition, Msg: fmt.Sprintf("no guard from %d to %d", src, dst)}
			}
			for g := range guards {
				if _, err := label.ParseGuard(g, len(t.Vars)); err != nil {
					return &TableError{Kind: ErrInvalidTransition, Msg: fmt.Sprintf("from %d to %d: %v", src, dst, err)}
				}
			}
		}
	}
	return nil
}

// NewTable returns the validated table with the given fields.
func NewTable(nbStates int, vars []string, initial int, accepting, rejecting StateSet, transitions map[int]map[int]GuardSet) (*Table, error) {
	t := &Table{
		NbStates:    nbStates,
		Vars:        vars,
		Initial:     initial,
		Accepting:   accepting,
		Rejecting:   rejecting,
		Transitions: transitions,
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

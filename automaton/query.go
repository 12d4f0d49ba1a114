package automaton

import (
	"fmt"
	"io"
	"strings"

	"github.com/crillab/logaut/label"
)

// Overlaps returns the pairs of outgoing transitions of s whose labels can be
// satisfied at the same time. It is empty when s behaves deterministically.
func (a *Automaton) Overlaps(s int) [][2]Transition {
	out := a.Transitions(s)
	var res [][2]Transition
	for i := range out {
		for j := i + 1; j < len(out); j++ {
			if out[i].Label.Intersects(out[j].Label) {
				res = append(res, [2]Transition{out[i], out[j]})
			}
		}
	}
	return res
}

// Complete indicates whether every valuation of the free variables enables
// some outgoing transition of s.
func (a *Automaton) Complete(s int) (bool, error) {
	out := a.Transitions(s)
	if len(out) == 0 {
		return false, nil
	}
	labels := make([]label.Label, len(out))
	for i, t := range out {
		labels[i] = t.Label
	}
	ok, err := label.Exhaustive(labels...)
	if err != nil {
		return false, fmt.Errorf("could not check completeness of state %d: %v", s, err)
	}
	return ok, nil
}

// WriteDOT writes a Graphviz description of a to w.
// Accepting states are double circles and the initial state is pointed at by
// an invisible start node.
func (a *Automaton) WriteDOT(w io.Writer) error {
	var sb strings.Builder
	sb.WriteString("digraph DFA {\n")
	sb.WriteString("  rankdir=LR;\n")
	sb.WriteString("  start [shape=point];\n")
	for s := 0; s < a.NbStates(); s++ {
		shape := "circle"
		if a.accepting[s] {
			shape = "doublecircle"
		}
		fmt.Fprintf(&sb, "  %d [shape=%s];\n", s, shape)
	}
	fmt.Fprintf(&sb, "  start -> %d;\n", a.initial)
	for _, out := range a.trans {
		for _, t := range out {
			fmt.Fprintf(&sb, "  %d -> %d [label=%q];\n", t.From, t.To, t.Label.String())
		}
	}
	sb.WriteString("}\n")
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("could not write automaton: %v", err)
	}
	return nil
}

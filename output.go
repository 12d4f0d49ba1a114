package main

import (
	"fmt"
	"io"
	"log"
	"sort"
	"strconv"
	"strings"

	"github.com/crillab/logaut/automaton"
	"github.com/crillab/logaut/label"
	"github.com/olekukonko/tablewriter"
)

func output(w io.Writer, a *automaton.Automaton, dot, verbose bool) error {
	if verbose {
		check(a)
	}
	if dot {
		return a.WriteDOT(w)
	}
	fmt.Fprintf(w, "states: %d, initial: %d, accepting: %v, variables: %v\n",
		a.NbStates(), a.Initial(), a.Accepting(), a.Vars())
	table := tablewriter.NewWriter(w)
	table.Header([]string{"From", "Label", "To", "Example"})
	for s := 0; s < a.NbStates(); s++ {
		for _, t := range a.Transitions(s) {
			table.Append([]string{strconv.Itoa(t.From), t.Label.String(), strconv.Itoa(t.To), witness(t.Label)})
		}
	}
	return table.Render()
}

// witness returns a valuation satisfying l, as "a=1 b=0".
func witness(l label.Label) string {
	model := l.Witness()
	if model == nil {
		return "-"
	}
	if len(model) == 0 {
		return "any"
	}
	vars := make([]string, 0, len(model))
	for v := range model {
		vars = append(vars, v)
	}
	sort.Strings(vars)
	strs := make([]string, len(vars))
	for i, v := range vars {
		val := "0"
		if model[v] {
			val = "1"
		}
		strs[i] = v + "=" + val
	}
	return strings.Join(strs, " ")
}

// check logs the states where the automaton is not deterministic or not complete.
func check(a *automaton.Automaton) {
	for s := 0; s < a.NbStates(); s++ {
		for _, pair := range a.Overlaps(s) {
			log.Printf("state %d: %v and %v overlap", s, pair[0], pair[1])
		}
		ok, err := a.Complete(s)
		if err != nil {
			log.Printf("state %d: %v", s, err)
		} else if !ok {
			log.Printf("state %d is not complete", s)
		}
	}
}

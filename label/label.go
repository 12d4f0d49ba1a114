// Package label defines the Boolean formulas labelling symbolic transitions.
//
// A Label is a disjunction of cubes, each cube being a conjunction of literals
// over the free variables of an automaton. Labels are built from the ternary
// guards output by MONA-based tools (see Compile) and are immutable.
//
// Besides evaluation, labels can be queried for satisfiability, equivalence and
// intersection; those queries are delegated to a SAT solver or to binary
// decision diagrams.
package label

import (
	"sort"
	"strings"
)

// A Literal is a possibly negated variable.
type Literal struct {
	Var     string
	Negated bool
}

func (l Literal) String() string {
	if l.Negated {
		return "~" + l.Var
	}
	return l.Var
}

// A Label is a Boolean formula in disjunctive normal form.
// The zero value is the constant false.
type Label struct {
	cubes [][]Literal
}

// True is the label of unconditional transitions.
var True = Label{cubes: [][]Literal{{}}}

// False is the label no valuation satisfies.
var False = Label{}

// Cubes returns a copy of the cubes of l.
func (l Label) Cubes() [][]Literal {
	res := make([][]Literal, len(l.cubes))
	for i, cube := range l.cubes {
		res[i] = make([]Literal, len(cube))
		copy(res[i], cube)
	}
	return res
}

// IsTrue indicates whether l is the constant true.
func (l Label) IsTrue() bool {
	return len(l.cubes) == 1 && len(l.cubes[0]) == 0
}

// IsFalse indicates whether l is the constant false.
func (l Label) IsFalse() bool {
	return len(l.cubes) == 0
}

// Vars returns the sorted names of the variables appearing in l.
func (l Label) Vars() []string {
	set := make(map[string]struct{})
	for _, cube := range l.cubes {
		for _, lit := range cube {
			set[lit.Var] = struct{}{}
		}
	}
	vars := make([]string, 0, len(set))
	for v := range set {
		vars = append(vars, v)
	}
	sort.Strings(vars)
	return vars
}

// Equal indicates whether l and o are structurally identical.
// Two labels compiled from the same guards over the same variables are equal.
func (l Label) Equal(o Label) bool {
	if len(l.cubes) != len(o.cubes) {
		return false
	}
	for i, cube := range l.cubes {
		if len(cube) != len(o.cubes[i]) {
			return false
		}
		for j, lit := range cube {
			if lit != o.cubes[i][j] {
				return false
			}
		}
	}
	return true
}

// Eval evaluates l under the given model. Variables absent from the model are false.
func (l Label) Eval(model map[string]bool) bool {
	for _, cube := range l.cubes {
		sat := true
		for _, lit := range cube {
			if model[lit.Var] == lit.Negated {
				sat = false
				break
			}
		}
		if sat {
			return true
		}
	}
	return false
}

func (l Label) String() string {
	switch {
	case l.IsFalse():
		return "false"
	case l.IsTrue():
		return "true"
	}
	strs := make([]string, len(l.cubes))
	for i, cube := range l.cubes {
		lits := make([]string, len(cube))
		for j, lit := range cube {
			lits[j] = lit.String()
		}
		strs[i] = strings.Join(lits, " & ")
		if len(l.cubes) > 1 && len(cube) > 1 {
			strs[i] = "(" + strs[i] + ")"
		}
	}
	return strings.Join(strs, " | ")
}

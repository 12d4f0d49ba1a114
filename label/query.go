package label

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/crillab/gophersat/bf"
	"github.com/dalzilio/rudd"
	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
)

// New returns the disjunction of the given cubes. A cube with no literal is
// true and makes the whole label true.
func New(cubes ...[]Literal) Label {
	res := Label{cubes: make([][]Literal, 0, len(cubes))}
	for _, cube := range cubes {
		if len(cube) == 0 {
			return True
		}
		c := make([]Literal, len(cube))
		copy(c, cube)
		res.cubes = append(res.cubes, c)
	}
	return res
}

// Formula returns l as a gophersat boolean formula.
func (l Label) Formula() bf.Formula {
	switch {
	case l.IsFalse():
		return bf.False
	case l.IsTrue():
		return bf.True
	}
	disj := make([]bf.Formula, len(l.cubes))
	for i, cube := range l.cubes {
		conj := make([]bf.Formula, len(cube))
		for j, lit := range cube {
			conj[j] = bf.Var(lit.Var)
			if lit.Negated {
				conj[j] = bf.Not(conj[j])
			}
		}
		if len(conj) == 1 {
			disj[i] = conj[0]
		} else {
			disj[i] = bf.And(conj...)
		}
	}
	if len(disj) == 1 {
		return disj[0]
	}
	return bf.Or(disj...)
}

// Witness returns a valuation of the variables of l satisfying l, or nil if l is
// not satisfiable. Variables of l left unbound by the solver are set to false.
func (l Label) Witness() map[string]bool {
	switch {
	case l.IsFalse():
		return nil
	case l.IsTrue():
		return map[string]bool{}
	}
	model := bf.Solve(l.Formula())
	if model == nil {
		return nil
	}
	for _, v := range l.Vars() {
		if _, ok := model[v]; !ok {
			model[v] = false
		}
	}
	return model
}

// Satisfiable indicates whether some valuation satisfies l.
func (l Label) Satisfiable() bool {
	return l.Witness() != nil
}

// indexVars associates each variable of the given labels, and each extra
// variable, with a dense index, in alphabetical order.
func indexVars(extra []string, labels ...Label) map[string]int {
	set := make(map[string]struct{})
	for _, v := range extra {
		set[v] = struct{}{}
	}
	for _, l := range labels {
		for _, v := range l.Vars() {
			set[v] = struct{}{}
		}
	}
	names := make([]string, 0, len(set))
	for v := range set {
		names = append(names, v)
	}
	sort.Strings(names)
	idx := make(map[string]int, len(names))
	for i, v := range names {
		idx[v] = i
	}
	return idx
}

// Exhaustive indicates whether the disjunction of the given labels is valid,
// i.e every valuation of their variables satisfies at least one of them.
func Exhaustive(labels ...Label) (bool, error) {
	idx := indexVars(nil, labels...)
	b, err := rudd.New(len(idx) + 1)
	if err != nil {
		return false, fmt.Errorf("could not create BDD: %v", err)
	}
	acc := b.False()
	for _, l := range labels {
		acc = b.Or(acc, bddOf(b, l, idx))
	}
	return b.Equal(acc, b.True()), nil
}

type bddBuilder interface {
	True() rudd.Node
	False() rudd.Node
	Ithvar(i int) rudd.Node
	NIthvar(i int) rudd.Node
	And(n ...rudd.Node) rudd.Node
	Or(n ...rudd.Node) rudd.Node
}

func bddOf(b bddBuilder, l Label, idx map[string]int) rudd.Node {
	acc := b.False()
	for _, cube := range l.cubes {
		conj := b.True()
		for _, lit := range cube {
			if lit.Negated {
				conj = b.And(conj, b.NIthvar(idx[lit.Var]))
			} else {
				conj = b.And(conj, b.Ithvar(idx[lit.Var]))
			}
		}
		acc = b.Or(acc, conj)
	}
	return acc
}

// Equivalent indicates whether l and o are satisfied by the same valuations,
// even if they are not structurally equal.
func (l Label) Equivalent(o Label) bool {
	idx := indexVars(nil, l, o)
	b, err := rudd.New(len(idx) + 1)
	if err != nil {
		panic(fmt.Errorf("could not create BDD: %v", err))
	}
	return b.Equal(bddOf(b, l, idx), bddOf(b, o, idx))
}

// Count returns the number of valuations of vars satisfying l.
// vars must contain every variable of l.
func (l Label) Count(vars []string) (*big.Int, error) {
	idx := indexVars(vars, l)
	if len(idx) != len(vars) {
		return nil, fmt.Errorf("label %s has variables outside of %v", l, vars)
	}
	if len(vars) == 0 {
		if l.IsFalse() {
			return big.NewInt(0), nil
		}
		return big.NewInt(1), nil
	}
	b, err := rudd.New(len(vars))
	if err != nil {
		return nil, fmt.Errorf("could not create BDD: %v", err)
	}
	return b.Satcount(bddOf(b, l, idx)), nil
}

// Intersects indicates whether some valuation satisfies both l and o.
func (l Label) Intersects(o Label) bool {
	c := logic.NewC()
	lits := make(map[string]z.Lit)
	lit := func(v string) z.Lit {
		m, ok := lits[v]
		if !ok {
			m = c.Lit()
			lits[v] = m
		}
		return m
	}
	encode := func(l Label) z.Lit {
		disj := c.F
		for _, cube := range l.cubes {
			conj := c.T
			for _, x := range cube {
				m := lit(x.Var)
				if x.Negated {
					m = m.Not()
				}
				conj = c.And(conj, m)
			}
			disj = c.Or(disj, conj)
		}
		return disj
	}
	m1, m2 := encode(l), encode(o)
	g := gini.New()
	c.ToCnf(g)
	g.Assume(m1, m2)
	return g.Solve() == 1
}

// Package rewrite eliminates derived temporal operators from formulas.
//
// Backends do not all understand the same operators. Before serializing a
// formula for a tool, the operators the tool lacks are replaced by logically
// equivalent trees that only use primitive operators. The rewriting is purely
// structural and does not depend on any concrete syntax.
package rewrite

import (
	"errors"
	"fmt"

	"github.com/crillab/logaut/logic"
)

// ErrNoRule is returned when a kind must be eliminated but no rule exists for it.
var ErrNoRule = errors.New("no elimination rule")

// WeakUntil expands a chain of weak until into until and always:
// for operands o1..ok, the innermost term is (o_{k-1} U o_k) | G(o_k), and each
// earlier operand o_j is folded from right to left as (o_j U r) | G(r).
// The fold order matters, as until is not associative under this encoding.
func WeakUntil(operands ...*logic.Formula) *logic.Formula {
	k := len(operands)
	if k < 2 {
		panic(fmt.Errorf("weak until expects at least 2 operands, got %d", k))
	}
	res := weakUntil(operands[k-2], operands[k-1])
	for j := k - 3; j >= 0; j-- {
		res = weakUntil(operands[j], res)
	}
	return res
}

func weakUntil(left, right *logic.Formula) *logic.Formula {
	return logic.Or(logic.Until(left, right), logic.Always(right))
}

// StrongRelease returns the dual of the given strong release chain:
// x1 M .. M xn is ~(~x1 W .. W ~xn). The inner weak until is left as is.
func StrongRelease(operands ...*logic.Formula) *logic.Formula {
	negs := make([]*logic.Formula, len(operands))
	for i, op := range operands {
		negs[i] = logic.Not(op)
	}
	return logic.Not(logic.WeakUntil(negs...))
}

// WeakNext returns ~X[!]~x, which is equivalent to the weak next of x over
// finite traces.
func WeakNext(x *logic.Formula) *logic.Formula {
	return logic.Not(logic.Next(logic.Not(x)))
}

// WeakBefore returns ~Y~x, the weak yesterday of x.
func WeakBefore(x *logic.Formula) *logic.Formula {
	return logic.Not(logic.Before(logic.Not(x)))
}

// Triggers returns the dual of the given triggers chain:
// x1 T .. T xn is ~(~x1 S .. S ~xn).
func Triggers(operands ...*logic.Formula) *logic.Formula {
	negs := make([]*logic.Formula, len(operands))
	for i, op := range operands {
		negs[i] = logic.Not(op)
	}
	return logic.Not(logic.Since(negs...))
}

// A Rewriter removes a fixed set of node kinds from formulas.
// The zero value leaves formulas unchanged.
type Rewriter struct {
	eliminate map[logic.Kind]bool
}

// New returns a rewriter eliminating the given kinds.
func New(kinds ...logic.Kind) Rewriter {
	r := Rewriter{eliminate: make(map[logic.Kind]bool, len(kinds))}
	for _, k := range kinds {
		r.eliminate[k] = true
	}
	return r
}

// Eliminates indicates whether k is removed by r.
func (r Rewriter) Eliminates(k logic.Kind) bool {
	return r.eliminate[k]
}

// Rewrite returns a formula equivalent to f where no eliminated kind appears.
// Operands are rewritten first. f itself is returned when nothing changes.
func (r Rewriter) Rewrite(f *logic.Formula) (*logic.Formula, error) {
	if f.NbOperands() == 0 {
		if r.eliminate[f.Kind()] {
			return nil, fmt.Errorf("could not rewrite %v: %w", f.Kind(), ErrNoRule)
		}
		return f, nil
	}
	ops := f.Operands()
	changed := false
	for i, op := range ops {
		op2, err := r.Rewrite(op)
		if err != nil {
			return nil, err
		}
		if op2 != op {
			ops[i] = op2
			changed = true
		}
	}
	if !r.eliminate[f.Kind()] {
		if !changed {
			return f, nil
		}
		return f.With(ops...), nil
	}
	switch f.Kind() {
	case logic.KindWeakUntil:
		return WeakUntil(ops...), nil
	case logic.KindStrongRelease:
		dual := StrongRelease(ops...)
		if !r.eliminate[logic.KindWeakUntil] {
			return dual, nil
		}
		// The operands of the inner weak until were already rewritten.
		inner := dual.Operand(0)
		return logic.Not(WeakUntil(inner.Operands()...)), nil
	case logic.KindWeakNext:
		return WeakNext(ops[0]), nil
	case logic.KindWeakBefore:
		return WeakBefore(ops[0]), nil
	case logic.KindTriggers:
		return Triggers(ops...), nil
	default:
		return nil, fmt.Errorf("could not rewrite %v: %w", f.Kind(), ErrNoRule)
	}
}

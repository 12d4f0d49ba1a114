package grammar

import (
	"github.com/crillab/logaut/logic"
	"github.com/crillab/logaut/rewrite"
)

func prefixed(op string) Rule {
	return func(f *logic.Formula, sub func(*logic.Formula) (string, error)) (string, error) {
		s, err := sub(f.Operand(0))
		if err != nil {
			return "", err
		}
		return op + "(" + s + ")", nil
	}
}

func infix(sep string) Rule {
	return func(f *logic.Formula, sub func(*logic.Formula) (string, error)) (string, error) {
		return logic.Infix(sep, f.Operands(), sub)
	}
}

func constant(s string) Rule {
	return func(*logic.Formula, func(*logic.Formula) (string, error)) (string, error) {
		return s, nil
	}
}

// Lydia is the grammar of the Lydia tool, for LTLf and LDLf formulas.
// Lydia has no weak until and no strong release: they are rewritten.
var Lydia = New("lydia",
	rewrite.New(logic.KindWeakUntil, logic.KindStrongRelease),
	map[logic.Kind]Rule{
		logic.KindWeakNext: prefixed("W"),
		logic.KindRegTest: func(f *logic.Formula, sub func(*logic.Formula) (string, error)) (string, error) {
			s, err := sub(f.Operand(0))
			if err != nil {
				return "", err
			}
			return "(" + s + ")?", nil
		},
	},
	`[a-z][a-z0-9_]*`,
)

// LTLf2DFA is the grammar of the LTLf2DFA tool, for LTLf and PLTLf formulas.
// Like Lydia, it lacks weak until and strong release; it also lacks the weak
// yesterday and triggers past operators.
// Implication and equivalence chains keep the default, right-nested rendering.
var LTLf2DFA = New("ltlf2dfa",
	rewrite.New(logic.KindWeakUntil, logic.KindStrongRelease, logic.KindWeakBefore, logic.KindTriggers),
	map[logic.Kind]Rule{
		logic.KindAtom: func(f *logic.Formula, _ func(*logic.Formula) (string, error)) (string, error) {
			return f.Name(), nil
		},
		logic.KindTrue:       constant("true"),
		logic.KindFalse:      constant("false"),
		logic.KindNot:        prefixed("~"),
		logic.KindAnd:        infix(" & "),
		logic.KindOr:         infix(" | "),
		logic.KindNext:       prefixed("X"),
		logic.KindWeakNext:   prefixed("WX"),
		logic.KindUntil:      infix(" U "),
		logic.KindRelease:    infix(" R "),
		logic.KindEventually: prefixed("F"),
		logic.KindAlways:     prefixed("G"),
	},
	`[a-z][a-z0-9]*`,
)

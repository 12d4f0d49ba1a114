package logic

import (
	"fmt"
	"strings"
)

// A Logic identifies the formalism a formula is written in.
type Logic uint8

// Supported logics. All temporal logics are interpreted over finite traces.
const (
	LTL Logic = iota + 1
	PLTL
	LDL
	PLDL
	FOL
	MSO
)

var logicNames = [...]string{
	LTL:  "ltl",
	PLTL: "pltl",
	LDL:  "ldl",
	PLDL: "pldl",
	FOL:  "fol",
	MSO:  "mso",
}

func (l Logic) String() string {
	if l == 0 || int(l) >= len(logicNames) {
		return fmt.Sprintf("logic(%d)", uint8(l))
	}
	return logicNames[l]
}

// ParseLogic returns the logic whose name is s, ignoring case.
func ParseLogic(s string) (Logic, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for l, name := range logicNames {
		if l != 0 && name == s {
			return Logic(l), nil
		}
	}
	return 0, fmt.Errorf("unknown logic %q", s)
}

// Allows indicates whether nodes of kind k can appear in formulas of logic l.
func Allows(l Logic, k Kind) bool {
	switch k {
	case KindAtom, KindTrue, KindFalse, KindNot, KindAnd, KindOr, KindImplies, KindEquivalence:
		return l >= LTL && l <= MSO
	case KindNext, KindWeakNext, KindUntil, KindWeakUntil, KindRelease, KindStrongRelease, KindEventually, KindAlways:
		return l == LTL
	case KindBefore, KindWeakBefore, KindSince, KindTriggers, KindOnce, KindHistorically:
		return l == PLTL
	case KindDiamond, KindBox, KindTT, KindFF, KindRegProp, KindRegTest, KindRegSeq, KindRegUnion, KindRegStar:
		return l == LDL || l == PLDL
	default:
		return false
	}
}

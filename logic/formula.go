package logic

import "fmt"

// A Kind is the type of a formula node.
type Kind uint8

// Node kinds. The set is closed: every function that dispatches on the kind of a
// node must handle all of them, and report ErrUnsupportedKind otherwise.
const (
	KindAtom Kind = iota
	KindTrue
	KindFalse
	KindNot
	KindAnd
	KindOr
	KindImplies
	KindEquivalence

	// Future temporal operators (LTLf).
	KindNext
	KindWeakNext
	KindUntil
	KindWeakUntil
	KindRelease
	KindStrongRelease
	KindEventually
	KindAlways

	// Past temporal operators (PLTLf).
	KindBefore
	KindWeakBefore
	KindSince
	KindTriggers
	KindOnce
	KindHistorically

	// Dynamic operators and regular expressions (LDLf).
	KindDiamond
	KindBox
	KindTT
	KindFF
	KindRegProp
	KindRegTest
	KindRegSeq
	KindRegUnion
	KindRegStar

	nbKinds
)

var kindNames = [nbKinds]string{
	KindAtom:          "Atom",
	KindTrue:          "True",
	KindFalse:         "False",
	KindNot:           "Not",
	KindAnd:           "And",
	KindOr:            "Or",
	KindImplies:       "Implies",
	KindEquivalence:   "Equivalence",
	KindNext:          "Next",
	KindWeakNext:      "WeakNext",
	KindUntil:         "Until",
	KindWeakUntil:     "WeakUntil",
	KindRelease:       "Release",
	KindStrongRelease: "StrongRelease",
	KindEventually:    "Eventually",
	KindAlways:        "Always",
	KindBefore:        "Before",
	KindWeakBefore:    "WeakBefore",
	KindSince:         "Since",
	KindTriggers:      "Triggers",
	KindOnce:          "Once",
	KindHistorically:  "Historically",
	KindDiamond:       "Diamond",
	KindBox:           "Box",
	KindTT:            "TT",
	KindFF:            "FF",
	KindRegProp:       "Prop",
	KindRegTest:       "Test",
	KindRegSeq:        "Seq",
	KindRegUnion:      "Union",
	KindRegStar:       "Star",
}

func (k Kind) String() string {
	if k >= nbKinds {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// Arity returns the number of operands of a node of kind k: 0 for leaves, 1 for
// unary operators, 2 for the dynamic modalities and -1 for n-ary operators,
// which take at least two operands.
func (k Kind) Arity() int {
	switch k {
	case KindAtom, KindTrue, KindFalse, KindTT, KindFF:
		return 0
	case KindNot, KindNext, KindWeakNext, KindEventually, KindAlways, KindBefore, KindWeakBefore,
		KindOnce, KindHistorically, KindRegProp, KindRegTest, KindRegStar:
		return 1
	case KindDiamond, KindBox:
		return 2
	default:
		return -1
	}
}

// A Formula is a node of a formula tree. Formulas are immutable and can be
// shared between trees and goroutines.
type Formula struct {
	kind     Kind
	logic    Logic
	name     string     // Only for atoms
	operands []*Formula // Regular expression first for Diamond and Box
}

// Kind returns the kind of the root node of f.
func (f *Formula) Kind() Kind { return f.kind }

// Logic returns the logic f belongs to.
func (f *Formula) Logic() Logic { return f.logic }

// Name returns the name of an atomic proposition, or "" for other kinds.
func (f *Formula) Name() string { return f.name }

// NbOperands returns the number of direct subformulas of f.
func (f *Formula) NbOperands() int { return len(f.operands) }

// Operand returns the i-th direct subformula of f.
func (f *Formula) Operand(i int) *Formula { return f.operands[i] }

// Operands returns a copy of the direct subformulas of f.
func (f *Formula) Operands() []*Formula {
	res := make([]*Formula, len(f.operands))
	copy(res, f.operands)
	return res
}

// Equal indicates whether f and g are structurally identical.
func (f *Formula) Equal(g *Formula) bool {
	if f == g {
		return true
	}
	if f == nil || g == nil {
		return false
	}
	if f.kind != g.kind || f.logic != g.logic || f.name != g.name || len(f.operands) != len(g.operands) {
		return false
	}
	for i := range f.operands {
		if !f.operands[i].Equal(g.operands[i]) {
			return false
		}
	}
	return true
}

// With returns a node of the same kind as f, with the given operands.
// It is used by the rewriting code to rebuild a node after its operands were
// processed.
func (f *Formula) With(operands ...*Formula) *Formula {
	if len(f.operands) == 0 {
		return f
	}
	return newNode(f.kind, operands...)
}

func newNode(k Kind, operands ...*Formula) *Formula {
	switch arity := k.Arity(); {
	case arity >= 0 && len(operands) != arity:
		panic(fmt.Errorf("%v expects %d operand(s), got %d", k, arity, len(operands)))
	case arity < 0 && len(operands) < 2:
		panic(fmt.Errorf("%v expects at least 2 operands, got %d", k, len(operands)))
	}
	l := operands[0].logic
	for _, op := range operands[1:] {
		if op.logic != l {
			panic(fmt.Errorf("%v mixes %v and %v operands", k, l, op.logic))
		}
	}
	if !Allows(l, k) {
		panic(fmt.Errorf("%v is not an operator of %v", k, l))
	}
	ops := make([]*Formula, len(operands))
	copy(ops, operands)
	return &Formula{kind: k, logic: l, operands: ops}
}

func newLeaf(k Kind, l Logic, name string) *Formula {
	if !Allows(l, k) {
		panic(fmt.Errorf("%v is not a formula of %v", k, l))
	}
	return &Formula{kind: k, logic: l, name: name}
}

// Atom returns the atomic proposition called name.
func Atom(l Logic, name string) *Formula {
	if name == "" {
		panic("empty atom name")
	}
	return newLeaf(KindAtom, l, name)
}

// True returns the propositional constant true.
func True(l Logic) *Formula { return newLeaf(KindTrue, l, "") }

// False returns the propositional constant false.
func False(l Logic) *Formula { return newLeaf(KindFalse, l, "") }

// TT returns the LDLf logical constant true.
func TT(l Logic) *Formula { return newLeaf(KindTT, l, "") }

// FF returns the LDLf logical constant false.
func FF(l Logic) *Formula { return newLeaf(KindFF, l, "") }

// Not negates f.
func Not(f *Formula) *Formula { return newNode(KindNot, f) }

// And generates a conjunction of subformulas.
func And(subs ...*Formula) *Formula { return newNode(KindAnd, subs...) }

// Or generates a disjunction of subformulas.
func Or(subs ...*Formula) *Formula { return newNode(KindOr, subs...) }

// Implies generates a right-associative chain of implications.
func Implies(subs ...*Formula) *Formula { return newNode(KindImplies, subs...) }

// Equivalence generates a chain of equivalences.
func Equivalence(subs ...*Formula) *Formula { return newNode(KindEquivalence, subs...) }

// Next is the strong next operator X[!].
func Next(f *Formula) *Formula { return newNode(KindNext, f) }

// WeakNext is the weak next operator: true at the last instant of a trace.
func WeakNext(f *Formula) *Formula { return newNode(KindWeakNext, f) }

// Until generates a right-associative chain of until.
func Until(subs ...*Formula) *Formula { return newNode(KindUntil, subs...) }

// WeakUntil generates a right-associative chain of weak until.
func WeakUntil(subs ...*Formula) *Formula { return newNode(KindWeakUntil, subs...) }

// Release generates a right-associative chain of release.
func Release(subs ...*Formula) *Formula { return newNode(KindRelease, subs...) }

// StrongRelease generates a right-associative chain of strong release.
func StrongRelease(subs ...*Formula) *Formula { return newNode(KindStrongRelease, subs...) }

// Eventually is the F operator.
func Eventually(f *Formula) *Formula { return newNode(KindEventually, f) }

// Always is the G operator.
func Always(f *Formula) *Formula { return newNode(KindAlways, f) }

// Before is the strong yesterday operator Y.
func Before(f *Formula) *Formula { return newNode(KindBefore, f) }

// WeakBefore is the weak yesterday operator: true at the first instant.
func WeakBefore(f *Formula) *Formula { return newNode(KindWeakBefore, f) }

// Since generates a chain of since.
func Since(subs ...*Formula) *Formula { return newNode(KindSince, subs...) }

// Triggers generates a chain of triggers, the dual of since.
func Triggers(subs ...*Formula) *Formula { return newNode(KindTriggers, subs...) }

// Once is the O operator.
func Once(f *Formula) *Formula { return newNode(KindOnce, f) }

// Historically is the H operator.
func Historically(f *Formula) *Formula { return newNode(KindHistorically, f) }

// Diamond is the LDLf modality <r>f.
func Diamond(r, f *Formula) *Formula { return newNode(KindDiamond, r, f) }

// Box is the LDLf modality [r]f.
func Box(r, f *Formula) *Formula { return newNode(KindBox, r, f) }

// Prop lifts a propositional formula into a regular expression step.
func Prop(f *Formula) *Formula { return newNode(KindRegProp, f) }

// Test is the regular expression test f?.
func Test(f *Formula) *Formula { return newNode(KindRegTest, f) }

// Seq concatenates regular expressions.
func Seq(subs ...*Formula) *Formula { return newNode(KindRegSeq, subs...) }

// Union is the choice between regular expressions.
func Union(subs ...*Formula) *Formula { return newNode(KindRegUnion, subs...) }

// Star is the Kleene closure of a regular expression.
func Star(r *Formula) *Formula { return newNode(KindRegStar, r) }

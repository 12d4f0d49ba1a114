package logic

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnsupportedKind is returned when a node kind has no handler.
// It signals a gap between the formula type and the code walking it.
var ErrUnsupportedKind = errors.New("unsupported node kind")

// UnsupportedKindError reports the kind that could not be handled, and by whom.
type UnsupportedKindError struct {
	Kind Kind
	Op   string // Name of the operation that failed, e.g. "atoms" or "lydia"
}

func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("%s: %v %v", e.Op, ErrUnsupportedKind, e.Kind)
}

func (e *UnsupportedKindError) Unwrap() error { return ErrUnsupportedKind }

// Atoms returns the sorted names of the atomic propositions appearing in f.
// It fails if f contains a node kind it does not know about, rather than
// silently dropping atoms.
func Atoms(f *Formula) ([]string, error) {
	set := make(map[string]struct{})
	if err := collectAtoms(f, set); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func collectAtoms(f *Formula, set map[string]struct{}) error {
	switch f.kind {
	case KindAtom:
		set[f.name] = struct{}{}
		return nil
	case KindTrue, KindFalse, KindTT, KindFF:
		return nil
	case KindNot, KindNext, KindWeakNext, KindEventually, KindAlways, KindBefore, KindWeakBefore,
		KindOnce, KindHistorically, KindRegProp, KindRegTest, KindRegStar:
		return collectAtoms(f.operands[0], set)
	case KindAnd, KindOr, KindImplies, KindEquivalence, KindUntil, KindWeakUntil, KindRelease,
		KindStrongRelease, KindSince, KindTriggers, KindRegSeq, KindRegUnion, KindDiamond, KindBox:
		for _, sub := range f.operands {
			if err := collectAtoms(sub, set); err != nil {
				return err
			}
		}
		return nil
	default:
		return &UnsupportedKindError{Kind: f.kind, Op: "atoms"}
	}
}

package logic

import "strings"

// Render renders the root node of f using the default syntax, calling sub to
// render its operands. Backends with their own grammar call it for the node
// kinds they do not override, passing their own sub so that overrides apply at
// every depth of the tree.
func Render(f *Formula, sub func(*Formula) (string, error)) (string, error) {
	switch f.kind {
	case KindAtom:
		return f.name, nil
	case KindTrue:
		return "true", nil
	case KindFalse:
		return "false", nil
	case KindTT:
		return "tt", nil
	case KindFF:
		return "ff", nil
	case KindNot:
		return prefix("~", f, sub)
	case KindAnd:
		return Infix(" & ", f.operands, sub)
	case KindOr:
		return Infix(" | ", f.operands, sub)
	case KindImplies:
		return rightNested(" -> ", f, sub)
	case KindEquivalence:
		return rightNested(" <-> ", f, sub)
	case KindNext:
		return prefix("X[!]", f, sub)
	case KindWeakNext:
		return prefix("X", f, sub)
	case KindUntil:
		return Infix(" U ", f.operands, sub)
	case KindWeakUntil:
		return Infix(" W ", f.operands, sub)
	case KindRelease:
		return Infix(" R ", f.operands, sub)
	case KindStrongRelease:
		return Infix(" M ", f.operands, sub)
	case KindEventually:
		return prefix("F", f, sub)
	case KindAlways:
		return prefix("G", f, sub)
	case KindBefore:
		return prefix("Y", f, sub)
	case KindWeakBefore:
		return prefix("WY", f, sub)
	case KindSince:
		return Infix(" S ", f.operands, sub)
	case KindTriggers:
		return Infix(" T ", f.operands, sub)
	case KindOnce:
		return prefix("O", f, sub)
	case KindHistorically:
		return prefix("H", f, sub)
	case KindDiamond, KindBox:
		r, err := sub(f.operands[0])
		if err != nil {
			return "", err
		}
		tail, err := sub(f.operands[1])
		if err != nil {
			return "", err
		}
		if f.kind == KindDiamond {
			return "<" + r + ">(" + tail + ")", nil
		}
		return "[" + r + "](" + tail + ")", nil
	case KindRegProp:
		s, err := sub(f.operands[0])
		if err != nil {
			return "", err
		}
		if k := f.operands[0].kind; k == KindAtom || k == KindTrue || k == KindFalse {
			return s, nil
		}
		return "(" + s + ")", nil
	case KindRegTest:
		return prefix("?", f, sub)
	case KindRegSeq:
		return Infix(" ; ", f.operands, sub)
	case KindRegUnion:
		return Infix(" + ", f.operands, sub)
	case KindRegStar:
		s, err := sub(f.operands[0])
		if err != nil {
			return "", err
		}
		return "(" + s + ")*", nil
	default:
		return "", &UnsupportedKindError{Kind: f.kind, Op: "default syntax"}
	}
}

// Infix joins the parenthesized operands with sep, left to right.
// It must only be used for associative operators.
func Infix(sep string, operands []*Formula, sub func(*Formula) (string, error)) (string, error) {
	strs := make([]string, len(operands))
	for i, op := range operands {
		s, err := sub(op)
		if err != nil {
			return "", err
		}
		strs[i] = "(" + s + ")"
	}
	return strings.Join(strs, sep), nil
}

func prefix(op string, f *Formula, sub func(*Formula) (string, error)) (string, error) {
	s, err := sub(f.operands[0])
	if err != nil {
		return "", err
	}
	return op + "(" + s + ")", nil
}

// rightNested renders a chain of a non-associative operator as
// (a) op ((b) op (c)).
func rightNested(sep string, f *Formula, sub func(*Formula) (string, error)) (string, error) {
	ops := f.operands
	last, err := sub(ops[len(ops)-1])
	if err != nil {
		return "", err
	}
	res := "(" + last + ")"
	for i := len(ops) - 2; i >= 0; i-- {
		s, err := sub(ops[i])
		if err != nil {
			return "", err
		}
		if i == len(ops)-2 {
			res = "(" + s + ")" + sep + res
		} else {
			res = "(" + s + ")" + sep + "(" + res + ")"
		}
	}
	return res, nil
}

// String returns f in the default syntax.
// Unsupported node kinds are rendered as their kind name between angle brackets.
func (f *Formula) String() string {
	var render func(*Formula) (string, error)
	render = func(g *Formula) (string, error) {
		s, err := Render(g, render)
		if err != nil {
			return "<" + g.kind.String() + ">", nil
		}
		return s, nil
	}
	s, _ := render(f)
	return s
}

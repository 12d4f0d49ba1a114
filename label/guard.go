package label

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrInvalidGuard  = errors.New("invalid guard")
	ErrEmptyGuardSet = errors.New("empty guard set")
)

// A Guard is a ternary string constraining the values of the free variables of
// an automaton: its i-th character is '1' when the i-th variable must be true,
// '0' when it must be false and 'X' when its value does not matter.
// The empty guard does not constrain anything.
type Guard string

// ParseGuard checks s is a valid guard over nbVars variables.
func ParseGuard(s string, nbVars int) (Guard, error) {
	if s == "" {
		return "", nil
	}
	if len(s) != nbVars {
		return "", fmt.Errorf("%w %q: expected %d positions, got %d", ErrInvalidGuard, s, nbVars, len(s))
	}
	for i := 0; i < len(s); i++ {
		if c := s[i]; c != '0' && c != '1' && c != 'X' {
			return "", fmt.Errorf("%w %q: unexpected character %q at position %d", ErrInvalidGuard, s, c, i)
		}
	}
	return Guard(s), nil
}

// Cube returns the conjunction of literals expressed by g, in variable order.
// Don't-care positions contribute nothing, so a guard made only of 'X', or the
// empty guard, yields the empty (true) cube.
func (g Guard) Cube(vars []string) []Literal {
	var lits []Literal
	for i := 0; i < len(g); i++ {
		switch g[i] {
		case '1':
			lits = append(lits, Literal{Var: vars[i]})
		case '0':
			lits = append(lits, Literal{Var: vars[i], Negated: true})
		}
	}
	return lits
}

// Compile returns the label equivalent to the disjunction of the given guards
// over vars. Guards are sorted and deduplicated first, so that the same set of
// guards always yields the same label, whatever the order they were given in.
func Compile(guards []string, vars []string) (Label, error) {
	if len(guards) == 0 {
		return Label{}, ErrEmptyGuardSet
	}
	sorted := make([]string, 0, len(guards))
	seen := make(map[string]bool, len(guards))
	for _, s := range guards {
		if seen[s] {
			continue
		}
		seen[s] = true
		if _, err := ParseGuard(s, len(vars)); err != nil {
			return Label{}, err
		}
		sorted = append(sorted, s)
	}
	sort.Strings(sorted)
	cubes := make([][]Literal, 0, len(sorted))
	for _, s := range sorted {
		cube := Guard(s).Cube(vars)
		if len(cube) == 0 {
			return True, nil
		}
		cubes = append(cubes, cube)
	}
	return Label{cubes: cubes}, nil
}

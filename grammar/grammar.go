// Package grammar serializes formulas into the input syntax of external tools.
//
// Every tool has its own Grammar. A grammar first removes the operators the tool
// does not support (see package rewrite), then renders the resulting tree node by
// node: node kinds with a tool-specific rule use it, all other kinds fall back to
// the default syntax shared by all tools (see logic.Render).
package grammar

import (
	"fmt"
	"regexp"

	"github.com/crillab/logaut/logic"
	"github.com/crillab/logaut/rewrite"
)

// A Serializer turns a formula into a string in some tool's concrete syntax.
type Serializer interface {
	Serialize(f *logic.Formula) (string, error)
}

// A Rule renders the root node of f. sub renders its operands with the same
// grammar.
type Rule func(f *logic.Formula, sub func(*logic.Formula) (string, error)) (string, error)

// A Grammar is the concrete syntax of one tool.
// Grammars are immutable once created and can be shared between goroutines.
type Grammar struct {
	name     string
	rewriter rewrite.Rewriter
	rules    map[logic.Kind]Rule
	atoms    *regexp.Regexp
}

// New returns a grammar that eliminates the given rewriter's kinds and renders
// the kinds present in rules with them, falling back to the default syntax.
// atomPattern is the regular expression atom names must fully match.
func New(name string, rw rewrite.Rewriter, rules map[logic.Kind]Rule, atomPattern string) *Grammar {
	rs := make(map[logic.Kind]Rule, len(rules))
	for k, r := range rules {
		rs[k] = r
	}
	return &Grammar{
		name:     name,
		rewriter: rw,
		rules:    rs,
		atoms:    regexp.MustCompile("^(?:" + atomPattern + ")$"),
	}
}

// Name returns the name of the tool.
func (g *Grammar) Name() string { return g.name }

// AtomPattern returns the regular expression atom names must match.
func (g *Grammar) AtomPattern() string { return g.atoms.String() }

// Serialize rewrites f and renders it in the tool's syntax.
func (g *Grammar) Serialize(f *logic.Formula) (string, error) {
	f2, err := g.rewriter.Rewrite(f)
	if err != nil {
		return "", fmt.Errorf("could not serialize formula for %s: %w", g.name, err)
	}
	return g.Render(f2)
}

// Render renders f without rewriting it first.
func (g *Grammar) Render(f *logic.Formula) (string, error) {
	s, err := g.render(f)
	if err != nil {
		return "", fmt.Errorf("could not serialize formula for %s: %w", g.name, err)
	}
	return s, nil
}

func (g *Grammar) render(f *logic.Formula) (string, error) {
	if rule, ok := g.rules[f.Kind()]; ok {
		return rule(f, g.render)
	}
	return logic.Render(f, g.render)
}

// CheckAtoms fails if some atom of f is not a valid identifier for the tool.
func (g *Grammar) CheckAtoms(f *logic.Formula) error {
	atoms, err := logic.Atoms(f)
	if err != nil {
		return err
	}
	for _, atom := range atoms {
		if !g.atoms.MatchString(atom) {
			return fmt.Errorf("atom %q is not a valid identifier: %s only supports identifiers that match the regex %s",
				atom, g.name, g.atoms)
		}
	}
	return nil
}

// Default is the grammar with no rewriting and no override.
var Default = New("default", rewrite.Rewriter{}, nil, `.+`)

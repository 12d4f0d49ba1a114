// Package backend translates formulas to symbolic automata by calling external
// tools.
//
// A Backend serializes a formula in the syntax of its tool, has an Invoker run
// the tool, then decodes the MONA description the tool printed. Backends are
// stateless: they can be shared between goroutines as long as their Invoker
// can.
package backend

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/crillab/logaut/automaton"
	"github.com/crillab/logaut/grammar"
	"github.com/crillab/logaut/logic"
	"github.com/crillab/logaut/mona"
)

var (
	ErrLogicMismatch  = errors.New("formula logic mismatch")
	ErrNotSupported   = errors.New("logic not supported")
	ErrUnknownBackend = errors.New("unknown backend")
)

// LogicMismatchError is returned when a formula is given to a translation
// method meant for another logic.
type LogicMismatchError struct {
	Method   string
	Expected logic.Logic
	Actual   logic.Logic
}

func (e *LogicMismatchError) Error() string {
	return fmt.Sprintf("wrong formula for method %s: expected formalism '%s', found '%s'", e.Method, e.Expected, e.Actual)
}

func (e *LogicMismatchError) Unwrap() error { return ErrLogicMismatch }

// A Backend translates formulas to automata.
type Backend interface {
	Name() string
	Supports(l logic.Logic) bool
	ToDFA(ctx context.Context, f *logic.Formula) (*automaton.Automaton, error)
}

// Translate returns the automaton of f, which must be a formula of logic want.
func Translate(ctx context.Context, b Backend, want logic.Logic, f *logic.Formula) (*automaton.Automaton, error) {
	method := want.String() + "2dfa"
	if f.Logic() != want {
		return nil, &LogicMismatchError{Method: method, Expected: want, Actual: f.Logic()}
	}
	if !b.Supports(want) {
		return nil, fmt.Errorf("%w: backend %s has no method %s", ErrNotSupported, b.Name(), method)
	}
	return b.ToDFA(ctx, f)
}

// Lydia is the backend calling the Lydia tool, for LTLf and LDLf.
type Lydia struct {
	Invoker Invoker
}

func (Lydia) Name() string { return grammar.Lydia.Name() }

func (Lydia) Supports(l logic.Logic) bool { return l == logic.LTL || l == logic.LDL }

func (b Lydia) ToDFA(ctx context.Context, f *logic.Formula) (*automaton.Automaton, error) {
	if !b.Supports(f.Logic()) {
		return nil, fmt.Errorf("%w: backend %s cannot translate %s formulas", ErrNotSupported, b.Name(), f.Logic())
	}
	return toDFA(ctx, grammar.Lydia, b.Invoker, f, func(raw string, _ []string) (string, error) {
		return mona.IsolateLydia(raw)
	})
}

// LTLf2DFA is the backend calling the LTLf2DFA tool, for LTLf and PLTLf.
type LTLf2DFA struct {
	Invoker Invoker
}

func (LTLf2DFA) Name() string { return grammar.LTLf2DFA.Name() }

func (LTLf2DFA) Supports(l logic.Logic) bool { return l == logic.LTL || l == logic.PLTL }

func (b LTLf2DFA) ToDFA(ctx context.Context, f *logic.Formula) (*automaton.Automaton, error) {
	if !b.Supports(f.Logic()) {
		return nil, fmt.Errorf("%w: backend %s cannot translate %s formulas", ErrNotSupported, b.Name(), f.Logic())
	}
	return toDFA(ctx, grammar.LTLf2DFA, b.Invoker, f, mona.IsolateMONA)
}

type isolateFunc func(raw string, atoms []string) (string, error)

func toDFA(ctx context.Context, g *grammar.Grammar, inv Invoker, f *logic.Formula, isolate isolateFunc) (*automaton.Automaton, error) {
	if err := g.CheckAtoms(f); err != nil {
		return nil, err
	}
	atoms, err := logic.Atoms(f)
	if err != nil {
		return nil, err
	}
	text, err := g.Serialize(f)
	if err != nil {
		return nil, err
	}
	raw, err := inv.Invoke(ctx, Request{Logic: f.Logic(), Formula: text, MONAOutput: true})
	if err != nil {
		return nil, fmt.Errorf("could not translate %q: %w", text, err)
	}
	desc, err := isolate(raw, atoms)
	if err != nil {
		return nil, fmt.Errorf("could not read %s output: %w", g.Name(), err)
	}
	table, err := mona.Decode(desc)
	if err != nil {
		return nil, fmt.Errorf("could not read %s output: %w", g.Name(), err)
	}
	return automaton.Build(table)
}

// Default is the name of the backend used when none is specified.
const Default = "lydia"

var commands = map[string]Command{
	"lydia":    {Path: "lydia", Args: LydiaArgs},
	"ltlf2dfa": {Path: "ltlf2dfa", Args: LTLf2DFAArgs},
}

// Names returns the names of the known backends, sorted.
func Names() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultCommand returns the command invoking the tool of the named backend
// from the system PATH.
func DefaultCommand(name string) (Command, error) {
	cmd, ok := commands[name]
	if !ok {
		return Command{}, fmt.Errorf("%w %q", ErrUnknownBackend, name)
	}
	return cmd, nil
}

// New returns the named backend, calling its tool through inv.
// When inv is nil, the tool is looked up in the system PATH.
func New(name string, inv Invoker) (Backend, error) {
	if inv == nil {
		cmd, err := DefaultCommand(name)
		if err != nil {
			return nil, err
		}
		inv = cmd
	}
	switch name {
	case "lydia":
		return Lydia{Invoker: inv}, nil
	case "ltlf2dfa":
		return LTLf2DFA{Invoker: inv}, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownBackend, name)
	}
}

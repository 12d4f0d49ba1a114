// Package mona decodes the textual DFA description printed by MONA, and by the
// tools built on top of it, into an automaton.Table.
//
// A description looks like:
//
//	DFA for formula with free variables: A B
//	Initial state: 0
//	Accepting states: 1
//	Rejecting states: 0 2
//
//	Automaton has 3 states and 4 BDD-nodes
//	Transitions:
//	State 0: XX -> state 1
//	State 1: 1X -> state 1
//
// The i-th character of a guard constrains the i-th free variable.
package mona

import (
	"bufio"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/crillab/logaut/automaton"
)

// ErrMalformedOutput is wrapped by every decoding error.
var ErrMalformedOutput = errors.New("malformed tool output")

// DecodeError describes the part of a description that could not be decoded.
type DecodeError struct {
	Field string
	Msg   string
}

func (e *DecodeError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("%v: field %q", ErrMalformedOutput, e.Field)
	}
	return fmt.Sprintf("%v: field %q: %s", ErrMalformedOutput, e.Field, e.Msg)
}

func (e *DecodeError) Unwrap() error { return ErrMalformedOutput }

// Header fields.
const (
	FieldVars       = "free variables"
	FieldInitial    = "initial state"
	FieldAccepting  = "accepting states"
	FieldRejecting  = "rejecting states"
	FieldNbStates   = "number of states"
	FieldTransition = "transition"
)

var (
	varsRe       = regexp.MustCompile(`DFA for formula with free variables:(.*)`)
	initialRe    = regexp.MustCompile(`Initial state: (.*)`)
	acceptingRe  = regexp.MustCompile(`Accepting states:(.*)`)
	rejectingRe  = regexp.MustCompile(`Rejecting states:(.*)`)
	nbStatesRe   = regexp.MustCompile(`Automaton has ([0-9]+) state(?:\(?s\)?)? and .* BDD-node(?:\(?s\)?)?`)
	transitionRe = regexp.MustCompile(`State ([0-9]+): ([01X]*) -> state ([0-9]+)`)
)

type header struct {
	vars      []string
	initial   string
	accepting string
	rejecting string
	nbStates  string
	found     map[string]bool
}

// Decode decodes a MONA DFA description.
// The first occurrence of each header line is used, lines that are neither
// header lines nor transitions are ignored, and guards between the same pair
// of states accumulate. The decoded table is validated before being returned.
func Decode(text string) (*automaton.Table, error) {
	h := header{found: make(map[string]bool)}
	type trans struct {
		src, dst string
		guard    string
	}
	var transitions []trans
	sc := bufio.NewScanner(strings.NewReader(text))
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if m := transitionRe.FindStringSubmatch(line); m != nil {
			transitions = append(transitions, trans{src: m[1], guard: m[2], dst: m[3]})
			continue
		}
		h.match(line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("could not read description: %w", err)
	}
	for _, field := range []string{FieldVars, FieldInitial, FieldAccepting, FieldRejecting, FieldNbStates} {
		if !h.found[field] {
			return nil, &DecodeError{Field: field, Msg: "not found"}
		}
	}
	t := &automaton.Table{Vars: h.vars}
	var err error
	if t.NbStates, err = parseState(FieldNbStates, h.nbStates); err != nil {
		return nil, err
	}
	if t.Initial, err = parseState(FieldInitial, h.initial); err != nil {
		return nil, err
	}
	if t.Accepting, err = parseStates(FieldAccepting, h.accepting); err != nil {
		return nil, err
	}
	if t.Rejecting, err = parseStates(FieldRejecting, h.rejecting); err != nil {
		return nil, err
	}
	for _, tr := range transitions {
		if tr.guard != "" && len(tr.guard) != len(t.Vars) {
			return nil, &DecodeError{
				Field: FieldTransition,
				Msg:   fmt.Sprintf("guard %q from state %s has %d positions, expected %d", tr.guard, tr.src, len(tr.guard), len(t.Vars)),
			}
		}
		src, err := parseState(FieldTransition, tr.src)
		if err != nil {
			return nil, err
		}
		dst, err := parseState(FieldTransition, tr.dst)
		if err != nil {
			return nil, err
		}
		t.AddTransition(src, dst, tr.guard)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("could not decode automaton: %w", err)
	}
	return t, nil
}

func (h *header) match(line string) {
	set := func(field string, re *regexp.Regexp, dst *string) bool {
		if h.found[field] {
			return false
		}
		m := re.FindStringSubmatch(line)
		if m == nil {
			return false
		}
		*dst = strings.TrimSpace(m[1])
		h.found[field] = true
		return true
	}
	var vars string
	if set(FieldVars, varsRe, &vars) {
		h.vars = strings.Fields(vars)
		return
	}
	_ = set(FieldInitial, initialRe, &h.initial) ||
		set(FieldAccepting, acceptingRe, &h.accepting) ||
		set(FieldRejecting, rejectingRe, &h.rejecting) ||
		set(FieldNbStates, nbStatesRe, &h.nbStates)
}

func parseState(field, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, &DecodeError{Field: field, Msg: fmt.Sprintf("invalid state %q", s)}
	}
	return n, nil
}

func parseStates(field, s string) (automaton.StateSet, error) {
	fields := strings.Fields(s)
	res := make(automaton.StateSet, len(fields))
	for _, f := range fields {
		n, err := parseState(field, f)
		if err != nil {
			return nil, err
		}
		res.Add(n)
	}
	return res, nil
}

package automaton

import (
	"errors"
	"fmt"
)

var (
	ErrInconsistentStateCount = errors.New("inconsistent state count")
	ErrStateOutOfRange        = errors.New("state out of range")
	ErrInvalidTransition      = errors.New("invalid transition")
)

// TableError wraps the violation of a decoded table invariant.
type TableError struct {
	Kind error
	Msg  string
}

func (e *TableError) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Msg)
}

func (e *TableError) Unwrap() error { return e.Kind }

func outOfRangef(format string, args ...any) error {
	return &TableError{Kind: ErrStateOutOfRange, Msg: fmt.Sprintf(format, args...)}
}

func countf(format string, args ...any) error {
	return &TableError{Kind: ErrInconsistentStateCount, Msg: fmt.Sprintf(format, args...)}
}

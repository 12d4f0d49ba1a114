package backend

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/crillab/logaut/logic"
)

// A Request asks a tool for the DFA of a serialized formula.
type Request struct {
	Logic      logic.Logic
	Formula    string // Formula, in the tool's syntax
	MONAOutput bool   // Whether the DFA must be printed in MONA's format
}

// An Invoker runs an external tool and returns what it printed.
// Implementations must honor the cancellation of ctx.
type Invoker interface {
	Invoke(ctx context.Context, req Request) (string, error)
}

// InvokerFunc is an Invoker implemented by a function.
type InvokerFunc func(ctx context.Context, req Request) (string, error)

func (f InvokerFunc) Invoke(ctx context.Context, req Request) (string, error) { return f(ctx, req) }

// A Command invokes the executable found at Path with the arguments computed
// by Args, and returns its standard output.
type Command struct {
	Path string
	Args func(req Request) []string
}

// Invoke runs the command. Its standard error is part of the returned error
// when the command fails.
func (c Command) Invoke(ctx context.Context, req Request) (string, error) {
	var args []string
	if c.Args != nil {
		args = c.Args(req)
	}
	cmd := exec.CommandContext(ctx, c.Path, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("an error occurred while running %s: %v: %s", c.Path, err, msg)
		}
		return "", fmt.Errorf("an error occurred while running %s: %v", c.Path, err)
	}
	return stdout.String(), nil
}

// Available fails if the executable cannot be found.
func (c Command) Available() error {
	if _, err := exec.LookPath(c.Path); err != nil {
		return fmt.Errorf("%s binary is not installed or not in the system PATH: %v", c.Path, err)
	}
	return nil
}

// LydiaArgs returns the command-line arguments of the lydia executable.
func LydiaArgs(req Request) []string {
	args := []string{"--logic=" + req.Logic.String() + "f", "--inline=" + req.Formula}
	if req.MONAOutput {
		args = append(args, "-p")
	}
	return args
}

// LTLf2DFAArgs returns the arguments of an ltlf2dfa wrapper executable: the
// logic ("ltlf" or "pltlf") followed by the formula. The wrapper is expected to
// print the MONA output of the translation.
func LTLf2DFAArgs(req Request) []string {
	return []string{req.Logic.String() + "f", req.Formula}
}

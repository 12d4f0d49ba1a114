package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/crillab/logaut/backend"
	"github.com/crillab/logaut/logic"
	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

var (
	backendName string
	logicName   string
	binPath     string
	asDOT       bool
	verbose     bool
	timeout     time.Duration
)

// binEnv lists the environment variables overriding the path of each tool.
var binEnv = map[string]string{
	"lydia":    "LYDIA_BIN",
	"ltlf2dfa": "LTLF2DFA_BIN",
}

func translate(cmd *commander.Command, args []string) error {
	if len(args) == 0 {
		cmd.Usage()
		return fmt.Errorf("missing formula")
	}
	l, err := logic.ParseLogic(logicName)
	if err != nil {
		return err
	}
	f, err := logic.Parse(l, strings.Join(args, " "))
	if err != nil {
		return fmt.Errorf("could not parse formula: %v", err)
	}
	if verbose {
		log.Printf("parsed %s formula %s", l, f)
	}
	tool, err := backend.DefaultCommand(backendName)
	if err != nil {
		return err
	}
	if p := os.Getenv(binEnv[backendName]); p != "" {
		tool.Path = p
	}
	if binPath != "" {
		tool.Path = binPath
	}
	if err := tool.Available(); err != nil {
		return err
	}
	b, err := backend.New(backendName, tool)
	if err != nil {
		return err
	}
	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	if verbose {
		log.Printf("calling %s", tool.Path)
	}
	start := time.Now()
	a, err := backend.Translate(ctx, b, l, f)
	if err != nil {
		return fmt.Errorf("could not translate formula: %v", err)
	}
	if verbose {
		log.Printf("automaton with %d states and %d transitions computed in %v", a.NbStates(), a.NbTransitions(), time.Since(start))
	}
	return output(os.Stdout, a, asDOT, verbose)
}

func translateCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       translate,
		UsageLine: "translate [options] <formula>",
		Short:     "translates a formula to a symbolic automaton",
		Long: `
translates a formula to a symbolic automaton, using an external tool

	$ logaut translate -backend lydia -logic ltl "F(a) & G(b)"

The path of the tool can be set with -bin, or with the LYDIA_BIN and
LTLF2DFA_BIN environment variables.
`,
		Flag: *flag.NewFlagSet("translate", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&backendName, "backend", backend.Default, "backend: "+strings.Join(backend.Names(), ", "))
	cmd.Flag.StringVar(&logicName, "logic", "ltl", "logic of the formula: ltl, pltl, ldl")
	cmd.Flag.StringVar(&binPath, "bin", "", "path of the tool executable")
	cmd.Flag.BoolVar(&asDOT, "dot", false, "print the automaton in the graphviz format")
	cmd.Flag.BoolVar(&verbose, "verbose", false, "sets verbose mode on")
	cmd.Flag.DurationVar(&timeout, "timeout", 0, "maximum duration of the tool call (0 for none)")
	return cmd
}

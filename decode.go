package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/crillab/logaut/automaton"
	"github.com/crillab/logaut/mona"
	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

var source string

func decode(cmd *commander.Command, args []string) error {
	if len(args) != 1 {
		cmd.Usage()
		return fmt.Errorf("expected exactly one file")
	}
	var (
		data []byte
		err  error
	)
	if args[0] == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("could not read %s: %v", args[0], err)
	}
	text := string(data)
	switch source {
	case "mona":
	case "lydia":
		if text, err = mona.IsolateLydia(text); err != nil {
			return err
		}
	case "ltlf2dfa":
		if text, err = mona.IsolateMONA(text, nil); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown source %q", source)
	}
	t, err := mona.Decode(text)
	if err != nil {
		return fmt.Errorf("could not decode %s: %v", args[0], err)
	}
	if verbose {
		log.Printf("decoded %d states over variables %v", t.NbStates, t.Vars)
	}
	a, err := automaton.Build(t)
	if err != nil {
		return err
	}
	return output(os.Stdout, a, asDOT, verbose)
}

func decodeCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       decode,
		UsageLine: "decode [options] <file>",
		Short:     "decodes a MONA DFA description",
		Long: `
decodes a MONA DFA description, as output by mona -w or by lydia -p

	$ logaut decode -from lydia lydia.out

Use - to read from the standard input.
`,
		Flag: *flag.NewFlagSet("decode", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&source, "from", "mona", "producer of the file: mona, lydia, ltlf2dfa")
	cmd.Flag.BoolVar(&asDOT, "dot", false, "print the automaton in the graphviz format")
	cmd.Flag.BoolVar(&verbose, "verbose", false, "sets verbose mode on")
	return cmd
}

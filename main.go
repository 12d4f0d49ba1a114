package main

import (
	"fmt"
	"os"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

func app() *commander.Command {
	return &commander.Command{
		UsageLine: os.Args[0],
		Short:     "translates temporal logic formulas to symbolic automata",
		Subcommands: []*commander.Command{
			translateCmd(),
			decodeCmd(),
		},
		Flag: *flag.NewFlagSet("logaut", flag.ExitOnError),
	}
}

func main() {
	if err := app().Dispatch(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "**err**: %v\n", err)
		os.Exit(1)
	}
}

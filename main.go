package main

import (
	"fmt"
	"os"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cmd := &commander.Command{
		UsageLine: os.Args[0],
		Short:     "graph search and adversarial search over grid pursuit games",
		Subcommands: []*commander.Command{
			searchCmd(),
			playCmd(),
			experimentCmd(),
		},
		Flag: *flag.NewFlagSet("pursuit", flag.ExitOnError),
	}

	if err := cmd.Dispatch(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "**err**: %v\n", err)
		os.Exit(1)
	}
}

var verbose bool

// wrap configures logging before running f.
func wrap(f func(cmd *commander.Command, args []string) error) func(cmd *commander.Command, args []string) error {
	return func(cmd *commander.Command, args []string) error {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		if verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
		return f(cmd, args)
	}
}

func newCommand(name string, run func(cmd *commander.Command, args []string) error) *commander.Command {
	cmd := &commander.Command{
		Run:  wrap(run),
		Flag: *flag.NewFlagSet(name, flag.ExitOnError),
	}
	cmd.Flag.BoolVar(&verbose, "v", false, "Log every search decision")
	return cmd
}

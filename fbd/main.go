// Command fbd is the financial dashboard CLI: portfolio tracking, FinBot and market feeds.
//
// Unknown subcommands are looked up in PATH as fbd-<subcommand> executables.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path"

	"github.com/etnz/finpulse/cmd"
	"github.com/google/subcommands"
)

func main() {
	// Answers shell completion requests (COMP_LINE is set) and exits.
	cmd.Completion().Complete("fbd")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()

	if name := flag.Arg(0); name != "" && !cmd.IsCommand(name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	status := commander.Execute(ctx)
	stop()
	os.Exit(int(status))
}

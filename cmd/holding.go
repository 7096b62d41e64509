package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finpulse/renderer"
	"github.com/google/subcommands"
)

// holdingsCmd lists the positions.
type holdingsCmd struct {
	currency string
}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "list the positions with their profit and loss" }
func (*holdingsCmd) Usage() string {
	return `fbd holdings [-c <currency>]

  Displays every position, in the order they were added.
`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", "", "Display currency. Defaults to the configured one.")
}

func (c *holdingsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	printMarkdown(renderer.HoldingsMarkdown(a.portfolio.Positions(), or(c.currency, a.currency())))
	return subcommands.ExitSuccess
}

// or returns the first non empty string.
func or(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

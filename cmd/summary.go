package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finpulse/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	currency string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the portfolio totals" }
func (*summaryCmd) Usage() string {
	return `fbd summary [-c <currency>]

  Displays the total value, the total investment and the profit or loss of the portfolio.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", "", "Display currency. Defaults to the configured one.")
}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	printMarkdown(renderer.SummaryMarkdown(a.portfolio.Summary(), or(c.currency, a.currency())))
	return subcommands.ExitSuccess
}

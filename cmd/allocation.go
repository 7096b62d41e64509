package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finpulse"
	"github.com/etnz/finpulse/renderer"
	"github.com/google/subcommands"
)

type allocationCmd struct {
	sorted bool
}

func (*allocationCmd) Name() string     { return "allocation" }
func (*allocationCmd) Synopsis() string { return "display the value split per sector" }
func (*allocationCmd) Usage() string {
	return `fbd allocation [-sort]

  Displays the share of each sector in the portfolio value. Sectors are listed
  in the order they first appear, or by decreasing value with -sort.
`
}

func (c *allocationCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.sorted, "sort", false, "sort sectors by decreasing value")
}

func (c *allocationCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	allocation := a.portfolio.SectorAllocation()
	if c.sorted {
		finpulse.SortAllocation(allocation)
	}
	printMarkdown(renderer.AllocationMarkdown(allocation, a.currency()))
	return subcommands.ExitSuccess
}

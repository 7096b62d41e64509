package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finpulse"
	"github.com/etnz/finpulse/renderer"
	"github.com/google/subcommands"
)

type addCmd struct {
	symbol   string
	price    string
	quantity string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a position to the portfolio" }
func (*addCmd) Usage() string {
	return `fbd add -s <symbol> -p <buy price> -q <quantity>
fbd add <symbol> <buy price> <quantity>

  Adds a position. The symbol is uppercased, the buy price must be positive
  and the quantity a positive whole number. The current price and the sector
  are simulated.

Usage Examples:
$ fbd add TCS 3000 10
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "stock symbol, e.g. TCS")
	f.StringVar(&c.price, "p", "", "buy price per share")
	f.StringVar(&c.quantity, "q", "", "number of shares")
}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	symbol, price, quantity := c.symbol, c.price, c.quantity
	switch f.NArg() {
	case 0:
	case 3:
		symbol, price, quantity = f.Arg(0), f.Arg(1), f.Arg(2)
	default:
		fmt.Fprintln(os.Stderr, "Error: expected <symbol> <buy price> <quantity>")
		return subcommands.ExitUsageError
	}

	in, err := finpulse.ParseInput(symbol, price, quantity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	a, err := openApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()
	if err := a.writable(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	pos, err := a.portfolio.AddPosition(ctx, in.Symbol, in.BuyPrice, in.Quantity)
	if err != nil {
		var verr *finpulse.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		fmt.Fprintf(os.Stderr, "Error adding position: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.PositionMarkdown(pos, a.currency()))
	return subcommands.ExitSuccess
}

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

type priceCmd struct{}

func (*priceCmd) Name() string     { return "price" }
func (*priceCmd) Synopsis() string { return "set the current price of a position" }
func (*priceCmd) Usage() string {
	return `fbd price <id> <price>

  Replaces the current price of the position 'id', as listed by 'fbd holdings'.
`
}

func (c *priceCmd) SetFlags(f *flag.FlagSet) {}

func (c *priceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: expected <id> <price>")
		return subcommands.ExitUsageError
	}
	price, err := finpulse.ParseMoney(f.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid price %q: %v\n", f.Arg(1), err)
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

	pos, err := a.portfolio.UpdatePrice(ctx, f.Arg(0), price)
	if err != nil {
		var verr *finpulse.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		fmt.Fprintf(os.Stderr, "Error updating price: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.PositionMarkdown(pos, a.currency()))
	return subcommands.ExitSuccess
}

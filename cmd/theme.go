package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finpulse/settings"
	"github.com/google/subcommands"
)

type themeCmd struct {
	toggle bool
}

func (*themeCmd) Name() string     { return "theme" }
func (*themeCmd) Synopsis() string { return "show or toggle the light/dark theme" }
func (*themeCmd) Usage() string {
	return `fbd theme [-toggle]

  Prints the saved display theme and its colors. -toggle switches between
  light and dark and saves the choice.
`
}

func (c *themeCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.toggle, "toggle", false, "switch to the other theme")
}

func (c *themeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	theme := settings.NewTheme(a.store, a.log)
	mode, err := theme.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.toggle {
		if mode, err = theme.Toggle(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	p := theme.Palette()
	fmt.Fprintf(stdout, "theme: %s\n", mode)
	fmt.Fprintf(stdout, "background %s, text %s, primary %s\n", p.Background, p.Text, p.Primary)
	return subcommands.ExitSuccess
}

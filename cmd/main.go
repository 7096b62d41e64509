// Package cmd implements the CLI application of the financial dashboard.
package cmd

import (
	"flag"

	"github.com/google/subcommands"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to a TOML configuration file. Defaults and FINPULSE_* variables apply without it.")
var rawOutput = flag.Bool("raw", false, "Print raw markdown instead of rendering it for the terminal")

// Commands lists every subcommand by group.
func Commands() map[string][]subcommands.Command {
	return map[string][]subcommands.Command{
		"portfolio": {
			&addCmd{},
			&holdingsCmd{},
			&summaryCmd{},
			&allocationCmd{},
			&priceCmd{},
			&resetCmd{},
		},
		"finbot": {
			&askCmd{},
			&chatCmd{},
		},
		"feeds": {
			&feedCmd{},
		},
		"settings": {
			&themeCmd{},
		},
		"documentation": {
			&topicCmd{},
		},
	}
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")

	for group, cmds := range Commands() {
		for _, cmd := range cmds {
			c.Register(cmd, group)
		}
	}
}

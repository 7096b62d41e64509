package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finpulse/feed"
	"github.com/etnz/finpulse/renderer"
	"github.com/google/subcommands"
)

type feedCmd struct {
	severity string
	query    string
}

func (*feedCmd) Name() string     { return "feed" }
func (*feedCmd) Synopsis() string { return "show the market, news, sentiment, threats and learning feeds" }
func (*feedCmd) Usage() string {
	return `fbd feed [-min <severity>] market|news|sentiment|threats|learning [<module id>]
fbd feed -q <jsonpath>

  Displays one of the dashboard feeds. 'threats' accepts -min to hide the
  less severe ones, 'learning' accepts a module id to list its lessons.
  -q prints the JSON result of a JSONPath query over every feed instead.

Usage Examples:
$ fbd feed -min high threats
$ fbd feed -q '$.market.nifty.value'
`
}

func (c *feedCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.severity, "min", "low", "minimum threat severity: low, medium, high or critical")
	f.StringVar(&c.query, "q", "", "JSONPath query, e.g. $.threats[*].company")
}

func (c *feedCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.query != "" {
		res, err := feed.Query(c.query)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: expected a feed name: market, news, sentiment, threats or learning")
		return subcommands.ExitUsageError
	}

	data, err := feed.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading feeds: %v\n", err)
		return subcommands.ExitFailure
	}

	switch name := f.Arg(0); name {
	case "market":
		printMarkdown(renderer.MarketMarkdown(data.Market))
	case "news":
		printMarkdown(renderer.NewsMarkdown(data.News))
	case "sentiment":
		printMarkdown(renderer.SentimentMarkdown(data.Sentiment))
	case "threats":
		min, err := feed.ParseSeverity(c.severity)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		printMarkdown(renderer.ThreatsMarkdown(data.ThreatsAtLeast(min)))
	case "learning":
		if f.NArg() < 2 {
			printMarkdown(renderer.LearningMarkdown(data.Learning))
			break
		}
		m, ok := data.Module(f.Arg(1))
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: no learning module %q\n", f.Arg(1))
			return subcommands.ExitUsageError
		}
		printMarkdown(renderer.ModuleMarkdown(m))
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown feed %q\n", name)
		return subcommands.ExitUsageError
	}
	return subcommands.ExitSuccess
}

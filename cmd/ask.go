package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/finpulse/finbot"
	"github.com/etnz/finpulse/renderer"
	"github.com/google/subcommands"
)

type askCmd struct{}

func (*askCmd) Name() string     { return "ask" }
func (*askCmd) Synopsis() string { return "ask FinBot a financial question" }
func (*askCmd) Usage() string {
	return `fbd ask <question>

  Answers a question from the FinBot knowledge base. Without a question, it
  lists a few to start with.

Usage Examples:
$ fbd ask what is p/e ratio
`
}

func (*askCmd) SetFlags(_ *flag.FlagSet) {}

func (c *askCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	bot := finbot.Default()
	if f.NArg() == 0 {
		printMarkdown(renderer.SuggestionsMarkdown(bot.Suggestions()))
		return subcommands.ExitSuccess
	}
	question := strings.Join(f.Args(), " ")
	printMarkdown(renderer.ReplyMarkdown(bot.Resolve(question)))
	return subcommands.ExitSuccess
}

// chatCmd is the interactive FinBot session.
type chatCmd struct{}

func (*chatCmd) Name() string     { return "chat" }
func (*chatCmd) Synopsis() string { return "start an interactive session with FinBot" }
func (*chatCmd) Usage() string {
	return `fbd chat [<question>]

  Starts an interactive session with FinBot. An optional first question is
  answered right away. Type 'bye' to exit.
`
}

func (*chatCmd) SetFlags(_ *flag.FlagSet) {}

func (c *chatCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var prompts []string
	if f.NArg() > 0 {
		prompts = append(prompts, strings.Join(f.Args(), " "))
	}

	chat := finbot.NewChat(stdout, stdin, finbot.Default())
	if !*rawOutput {
		chat.Render = func(r finbot.Reply) string { return renderMarkdown(renderer.ReplyMarkdown(r)) }
	}
	if err := chat.Run(ctx, prompts...); err != nil {
		fmt.Fprintln(os.Stderr, "Chat failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

package cmd

import (
	"flag"

	"github.com/etnz/finpulse/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// boolFlag is implemented by the flag.Value of boolean flags.
type boolFlag interface {
	IsBoolFlag() bool
}

// Completion describes the command line for shell completion: the global
// flags, every subcommand with its flags, and the arguments that can be guessed.
func Completion() *complete.Command {
	topics, _ := docs.GetAllTopics()
	args := map[string]complete.Predictor{
		"feed":  predict.Set{"market", "news", "sentiment", "threats", "learning"},
		"topic": predict.Set(append(topics, "readme", "*")),
	}

	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flagPredictors(flag.CommandLine),
	}
	root.Flags["config"] = predict.Files("*.toml")

	for _, cmds := range Commands() {
		for _, c := range cmds {
			fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
			c.SetFlags(fs)
			sub := &complete.Command{Flags: flagPredictors(fs), Args: args[c.Name()]}
			if c.Name() == "feed" {
				sub.Flags["min"] = predict.Set{"low", "medium", "high", "critical"}
			}
			root.Sub[c.Name()] = sub
		}
	}
	return root
}

// flagPredictors predicts nothing after boolean flags and something after the others.
func flagPredictors(fs *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		if b, ok := f.Value.(boolFlag); ok && b.IsBoolFlag() {
			flags[f.Name] = predict.Nothing
			return
		}
		flags[f.Name] = predict.Something
	})
	return flags
}

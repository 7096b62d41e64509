package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/finpulse"
	"github.com/etnz/finpulse/config"
	"github.com/etnz/finpulse/logger"
	"github.com/etnz/finpulse/store"
	"github.com/rs/zerolog"
)

// stdout is where commands print their results, stdin where interactive ones read.
var (
	stdout io.Writer = os.Stdout
	stdin  io.Reader = os.Stdin
)

// app holds what a command needs to run, opened from the configuration.
type app struct {
	cfg       *config.Config
	log       zerolog.Logger
	store     store.Backend
	portfolio *finpulse.Portfolio
	loadErr   error // set when the saved portfolio could not be read
}

// openApp loads the configuration and opens the store. The portfolio is loaded
// from it: when the store cannot be read the portfolio starts empty, and
// writable reports the failure.
func openApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(*configFile)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	log := logger.New(logger.Config{Level: cfg.Logging.Level, Pretty: cfg.Logging.Pretty})

	st, err := store.Open(cfg.Storage.Backend, cfg.Storage.Path, log)
	if err != nil {
		return nil, fmt.Errorf("opening %s store: %w", cfg.Storage.Backend, err)
	}

	p := finpulse.New(st,
		finpulse.WithTimeout(cfg.Portfolio.Timeout.Duration()),
		finpulse.WithLogger(log),
	)
	a := &app{cfg: cfg, log: log, store: st, portfolio: p}
	if _, err := p.Load(ctx); err != nil {
		log.Warn().Err(err).Msg("showing an empty portfolio")
		a.loadErr = err
	}
	return a, nil
}

// writable returns an error if the saved portfolio could not be read, as
// saving the in-memory one would overwrite it.
func (a *app) writable() error {
	if a.loadErr != nil {
		return fmt.Errorf("portfolio is read-only: %w", a.loadErr)
	}
	return nil
}

// currency is the ISO code amounts are displayed in.
func (a *app) currency() string { return a.cfg.Portfolio.Currency }

func (a *app) Close() error { return a.store.Close() }

// printMarkdown renders markdown for the terminal, or prints it as is with -raw.
func printMarkdown(md string) {
	if *rawOutput {
		fmt.Fprintln(stdout, md)
		return
	}
	fmt.Fprint(stdout, renderMarkdown(md))
}

// renderMarkdown styles markdown for the terminal. It returns md unchanged if
// it cannot be rendered.
func renderMarkdown(md string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

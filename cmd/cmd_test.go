package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/finpulse"
	"github.com/google/subcommands"
)

// setup points the commands to a fresh file store and captures their output.
func setup(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("FINPULSE_STORAGE_BACKEND", "file")
	t.Setenv("FINPULSE_STORAGE_PATH", dir)
	t.Setenv("FINPULSE_CURRENCY", "USD")
	t.Setenv("FINPULSE_LOG_LEVEL", "disabled")

	raw := *rawOutput
	*rawOutput = true
	t.Cleanup(func() { *rawOutput = raw })
	return dir
}

// run executes fbd with args and returns its exit status and output.
func run(t *testing.T, args ...string) (subcommands.ExitStatus, string) {
	t.Helper()
	var out bytes.Buffer
	prev := stdout
	stdout = &out
	defer func() { stdout = prev }()

	fs := flag.NewFlagSet("fbd", flag.ContinueOnError)
	commander := subcommands.NewCommander(fs, "fbd")
	Register(commander)
	if err := fs.Parse(args); err != nil {
		t.Fatal(err)
	}
	return commander.Execute(context.Background()), out.String()
}

// saved returns the positions in the file store.
func saved(t *testing.T, dir string) []finpulse.Position {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, finpulse.DefaultKey+".json"))
	if err != nil {
		t.Fatal(err)
	}
	var positions []finpulse.Position
	if err := json.Unmarshal(data, &positions); err != nil {
		t.Fatal(err)
	}
	return positions
}

func TestPortfolioCommands(t *testing.T) {
	dir := setup(t)

	status, out := run(t, "add", "tcs", "3000", "10")
	if status != subcommands.ExitSuccess {
		t.Fatalf("add: status %v, output:\n%s", status, out)
	}
	if !strings.Contains(out, "## TCS (") {
		t.Errorf("add output:\n%s", out)
	}

	status, _ = run(t, "add", "-s", "INFY", "-p", "1500", "-q", "4")
	if status != subcommands.ExitSuccess {
		t.Fatalf("add with flags: status %v", status)
	}

	positions := saved(t, dir)
	if len(positions) != 2 || positions[0].Symbol != "TCS" || positions[1].Symbol != "INFY" {
		t.Fatalf("saved positions = %+v", positions)
	}

	_, out = run(t, "holdings")
	if !strings.Contains(out, "TCS") || !strings.Contains(out, "INFY") || !strings.Contains(out, "2 position(s).") {
		t.Errorf("holdings output:\n%s", out)
	}

	status, out = run(t, "price", positions[0].ID, "3300")
	if status != subcommands.ExitSuccess {
		t.Fatalf("price: status %v", status)
	}
	if !strings.Contains(out, "+$3,000.00 (+10.00%)") {
		t.Errorf("price output:\n%s", out)
	}

	status, out = run(t, "price", positions[1].ID, "1500")
	if status != subcommands.ExitSuccess {
		t.Fatalf("price: status %v", status)
	}
	_, out = run(t, "summary")
	for _, want := range []string{"$39,000.00", "$36,000.00", "+$3,000.00", "+8.33%"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary output misses %q:\n%s", want, out)
		}
	}

	_, out = run(t, "allocation", "-sort")
	if !strings.Contains(out, "# Sector Allocation") || !strings.Contains(out, string(positions[0].Sector)) {
		t.Errorf("allocation output:\n%s", out)
	}

	if status, _ := run(t, "reset"); status != subcommands.ExitUsageError {
		t.Errorf("reset without -f: status %v, want %v", status, subcommands.ExitUsageError)
	}
	status, out = run(t, "reset", "-f")
	if status != subcommands.ExitSuccess || !strings.Contains(out, "Removed 2 position(s).") {
		t.Errorf("reset: status %v, output:\n%s", status, out)
	}
	if got := saved(t, dir); len(got) != 0 {
		t.Errorf("saved positions after reset = %+v", got)
	}
}

func TestAdd_Invalid(t *testing.T) {
	setup(t)

	testCases := []struct {
		name string
		args []string
	}{
		{"missing symbol", []string{"add", "-p", "10", "-q", "1"}},
		{"negative price", []string{"add", "TCS", "-5", "1"}},
		{"zero quantity", []string{"add", "TCS", "10", "0"}},
		{"fractional quantity", []string{"add", "TCS", "10", "1.5"}},
		{"not a number", []string{"add", "TCS", "ten", "1"}},
		{"wrong arity", []string{"add", "TCS", "10"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if status, _ := run(t, tc.args...); status != subcommands.ExitUsageError {
				t.Errorf("status = %v, want %v", status, subcommands.ExitUsageError)
			}
		})
	}

	_, out := run(t, "holdings")
	if !strings.Contains(out, "No positions yet") {
		t.Errorf("invalid adds were saved:\n%s", out)
	}
}

func TestPrice_UnknownID(t *testing.T) {
	setup(t)
	if status, _ := run(t, "price", "nope", "10"); status != subcommands.ExitUsageError {
		t.Errorf("status = %v, want %v", status, subcommands.ExitUsageError)
	}
	if status, _ := run(t, "price", "nope", "abc"); status != subcommands.ExitUsageError {
		t.Errorf("status = %v, want %v", status, subcommands.ExitUsageError)
	}
}

func TestUnreadablePortfolio(t *testing.T) {
	dir := setup(t)
	// A folder in place of the portfolio file cannot be read.
	path := filepath.Join(dir, finpulse.DefaultKey+".json")
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatal(err)
	}

	if status, _ := run(t, "summary"); status != subcommands.ExitSuccess {
		t.Errorf("summary: status = %v, want %v", status, subcommands.ExitSuccess)
	}
	if status, _ := run(t, "add", "TCS", "3000", "10"); status != subcommands.ExitFailure {
		t.Errorf("add: status = %v, want %v", status, subcommands.ExitFailure)
	}
	if info, err := os.Stat(path); err != nil || !info.IsDir() {
		t.Errorf("add replaced the unreadable portfolio: %v", err)
	}
}

func TestBadConfiguration(t *testing.T) {
	setup(t)
	t.Setenv("FINPULSE_STORAGE_BACKEND", "redis")
	if status, _ := run(t, "summary"); status != subcommands.ExitFailure {
		t.Errorf("status = %v, want %v", status, subcommands.ExitFailure)
	}
}

func TestAsk(t *testing.T) {
	setup(t)

	status, out := run(t, "ask", "What", "is", "P/E", "ratio?")
	if status != subcommands.ExitSuccess || !strings.Contains(out, "P/E ratio (Price-to-Earnings)") {
		t.Errorf("ask: status %v, output:\n%s", status, out)
	}

	_, out = run(t, "ask", "asdkjasd")
	if !strings.Contains(out, "What specific financial topic interests you most?") {
		t.Errorf("ask fallback output:\n%s", out)
	}

	_, out = run(t, "ask")
	if !strings.Contains(out, "Budgeting for investments") {
		t.Errorf("ask without question output:\n%s", out)
	}
}

func TestChat(t *testing.T) {
	setup(t)
	prev := stdin
	stdin = strings.NewReader("budget\nbye\n")
	defer func() { stdin = prev }()

	status, out := run(t, "chat", "market", "psychology")
	if status != subcommands.ExitSuccess {
		t.Fatalf("chat: status %v", status)
	}
	if !strings.Contains(out, "Market psychology involves") || !strings.Contains(out, "Effective budgeting") {
		t.Errorf("chat output:\n%s", out)
	}
}

func TestFeed(t *testing.T) {
	setup(t)

	testCases := []struct {
		args   []string
		status subcommands.ExitStatus
		want   string
	}{
		{[]string{"feed", "market"}, subcommands.ExitSuccess, "NIFTY 50"},
		{[]string{"feed", "news"}, subcommands.ExitSuccess, "Foreign Investors Continue Selling Spree"},
		{[]string{"feed", "sentiment"}, subcommands.ExitSuccess, "regulatory concerns"},
		{[]string{"feed", "-min", "critical", "threats"}, subcommands.ExitSuccess, "[CRITICAL]"},
		{[]string{"feed", "learning"}, subcommands.ExitSuccess, "Reading Stock Charts"},
		{[]string{"feed", "learning", "4"}, subcommands.ExitSuccess, "Iron Condor and Butterflies"},
		{[]string{"feed", "-q", "$.market.sensex.value"}, subcommands.ExitSuccess, "66589.93"},
		{[]string{"feed", "-min", "severe", "threats"}, subcommands.ExitUsageError, ""},
		{[]string{"feed", "learning", "9"}, subcommands.ExitUsageError, ""},
		{[]string{"feed", "weather"}, subcommands.ExitUsageError, ""},
		{[]string{"feed"}, subcommands.ExitUsageError, ""},
	}
	for _, tc := range testCases {
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			status, out := run(t, tc.args...)
			if status != tc.status {
				t.Errorf("status = %v, want %v", status, tc.status)
			}
			if !strings.Contains(out, tc.want) {
				t.Errorf("output misses %q:\n%s", tc.want, out)
			}
		})
	}

	_, out := run(t, "feed", "-min", "critical", "threats")
	if strings.Contains(out, "[HIGH]") {
		t.Errorf("threats below the minimum severity are listed:\n%s", out)
	}
}

func TestTheme(t *testing.T) {
	setup(t)

	_, out := run(t, "theme")
	if !strings.Contains(out, "theme: light") {
		t.Errorf("theme output:\n%s", out)
	}
	_, out = run(t, "theme", "-toggle")
	if !strings.Contains(out, "theme: dark") || !strings.Contains(out, "#0f172a") {
		t.Errorf("theme -toggle output:\n%s", out)
	}
	_, out = run(t, "theme")
	if !strings.Contains(out, "theme: dark") {
		t.Errorf("toggled theme was not saved:\n%s", out)
	}
}

func TestTopic(t *testing.T) {
	setup(t)

	_, out := run(t, "topic", "-list")
	for _, want := range []string{"portfolio", "finbot", "feeds", "configuration", "storage"} {
		if !strings.Contains(out, want) {
			t.Errorf("topic -list misses %q:\n%s", want, out)
		}
	}
	_, out = run(t, "topic", "finbot")
	if !strings.Contains(out, "# FinBot") {
		t.Errorf("topic finbot output:\n%s", out)
	}
	if status, _ := run(t, "topic", "nope"); status != subcommands.ExitFailure {
		t.Errorf("unknown topic: status %v, want %v", status, subcommands.ExitFailure)
	}
}

func TestRenderMarkdown(t *testing.T) {
	got := renderMarkdown("# Title\n\nsome **bold** text\n")
	if !strings.Contains(got, "Title") || !strings.Contains(got, "bold") {
		t.Errorf("renderMarkdown() = %q", got)
	}
}

package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/finpulse"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the portfolio totals.
func SummaryMarkdown(s finpulse.Summary, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Portfolio Summary")
	doc.Table(md.TableSet{
		Header: []string{md.Bold("Total Value"), md.Bold(s.TotalValue.Format(currency))},
		Rows: [][]string{
			{"Investment", s.TotalInvestment.Format(currency)},
			{"Profit/Loss", s.ProfitLoss.SignedFormat(currency)},
			{"Return", s.ProfitLossPercent.SignedString()},
		},
	})

	return doc.String()
}

// HoldingsMarkdown renders the positions, in insertion order.
func HoldingsMarkdown(positions []finpulse.Position, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Holdings")
	if len(positions) == 0 {
		doc.PlainText("No positions yet, add one with the `add` command.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"ID", "Symbol", "Sector", "Quantity", "Buy Price", "Current Price", "Value", "P/L", "P/L %"},
		Rows:   [][]string{},
	}
	for _, p := range positions {
		pl := p.PL()
		table.Rows = append(table.Rows, []string{
			p.ID,
			p.Symbol,
			string(p.Sector),
			p.Quantity.String(),
			p.BuyPrice.Format(currency),
			p.CurrentPrice.Format(currency),
			p.Value().Format(currency),
			pl.Amount.SignedFormat(currency),
			pl.Percent.SignedString(),
		})
	}
	doc.Table(table)
	doc.PlainText(fmt.Sprintf("%d position(s).", len(positions)))

	return doc.String()
}

// AllocationMarkdown renders the value split per sector.
func AllocationMarkdown(allocation []finpulse.Allocation, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Sector Allocation")
	if len(allocation) == 0 {
		doc.PlainText("Nothing to allocate, the portfolio is empty.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"Sector", "Value", "Share"},
		Rows:   [][]string{},
	}
	for _, a := range allocation {
		table.Rows = append(table.Rows, []string{
			string(a.Sector),
			a.Value.Format(currency),
			a.Percent.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}

// PositionMarkdown renders a single position, as confirmed after adding it.
func PositionMarkdown(p finpulse.Position, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	pl := p.PL()
	doc.H2(fmt.Sprintf("%s (%s)", p.Symbol, p.Sector))
	doc.BulletList(
		fmt.Sprintf("ID: %s", md.Code(p.ID)),
		fmt.Sprintf("Quantity: %s", p.Quantity),
		fmt.Sprintf("Buy price: %s", p.BuyPrice.Format(currency)),
		fmt.Sprintf("Current price: %s", p.CurrentPrice.Format(currency)),
		fmt.Sprintf("P/L: %s (%s)", pl.Amount.SignedFormat(currency), pl.Percent.SignedString()),
	)

	return doc.String()
}

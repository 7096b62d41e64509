package finpulse

import (
	"encoding/json"
	"strings"
)

// Position is one held stock lot.
//
// Positions are values: an update produces a new Position with the same ID.
type Position struct {
	ID           string
	Symbol       string
	BuyPrice     Money // cost basis per unit
	Quantity     Quantity
	CurrentPrice Money // latest valuation per unit
	Sector       Sector
}

// PL is a profit or loss, in absolute value and relative to the cost basis.
type PL struct {
	Amount  Money
	Percent Percent
}

// newPL computes the profit or loss of 'value' against 'investment'.
func newPL(value, investment Money) PL {
	amount := value.Sub(investment)
	return PL{Amount: amount, Percent: amount.percentOf(investment)}
}

// Investment returns the cost basis of the whole position.
func (p Position) Investment() Money { return p.BuyPrice.Mul(p.Quantity) }

// Value returns the current market value of the whole position.
func (p Position) Value() Money { return p.CurrentPrice.Mul(p.Quantity) }

// PL returns the position's profit or loss.
func (p Position) PL() PL { return newPL(p.Value(), p.Investment()) }

// withPrice returns a copy of p valued at 'price'.
func (p Position) withPrice(price Money) Position {
	p.CurrentPrice = price
	return p
}

// MarshalJSON writes the position with a stable field order, amounts as numbers.
func (p Position) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", p.ID)
	w.Append("symbol", p.Symbol)
	w.Append("buyPrice", p.BuyPrice)
	w.Append("quantity", p.Quantity)
	w.Append("currentPrice", p.CurrentPrice)
	w.Append("sector", p.Sector)
	return w.MarshalJSON()
}

func (p *Position) UnmarshalJSON(data []byte) error {
	// jposition is the object read from the store using json parser.
	type jposition struct {
		ID           string   `json:"id"`
		Symbol       string   `json:"symbol"`
		BuyPrice     Money    `json:"buyPrice"`
		Quantity     Quantity `json:"quantity"`
		CurrentPrice Money    `json:"currentPrice"`
		Sector       Sector   `json:"sector"`
	}
	var jp jposition
	if err := json.Unmarshal(data, &jp); err != nil {
		return err
	}
	*p = Position(jp)
	return nil
}

// normalizeSymbol trims and uppercases a ticker.
func normalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

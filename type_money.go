package finpulse

import (
	"bytes"
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value.
//
// Money carries no currency: the portfolio is kept in a single reporting
// currency chosen by the host, and applied only when formatting.
type Money struct {
	value decimal.Decimal // as major unit value
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

// ParseMoney parses a decimal string like "3000" or "152.35".
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{value: d}, nil
}

// String returns the plain decimal representation.
func (m Money) String() string { return m.value.String() }

// Format returns the value formatted in the given ISO currency, e.g. "₹3,300.00".
// Unknown currencies are rendered with two decimals and the code as suffix.
func (m Money) Format(currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return fmt.Sprintf("%s %s", m.value.StringFixed(2), currency)
	}
	dec := m.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(dec.IntPart())
}

// SignedFormat is like Format with an explicit sign, 0 is represented as "-".
func (m Money) SignedFormat(currency string) string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.Format(currency)
	}
	return m.Format(currency)
}

func (m Money) Equal(n Money) bool            { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                  { return m.value.IsZero() }
func (m Money) IsPositive() bool              { return m.value.IsPositive() }
func (m Money) IsNegative() bool              { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool         { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool      { return m.value.GreaterThan(n.value) }
func (m Money) Add(n Money) Money             { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money             { return Money{value: m.value.Sub(n.value)} }
func (m Money) Mul(n Quantity) Money          { return Money{value: m.value.Mul(n.value)} }
func (m Money) scale(f decimal.Decimal) Money { return Money{value: m.value.Mul(f)} }
func (m Money) percentOf(total Money) Percent { return percent(m.value, total.value) }

// MarshalJSON writes the value as a bare JSON number, with all its digits.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.value.String()), nil
}

// UnmarshalJSON only accepts JSON numbers, quoted amounts are a format error.
func (m *Money) UnmarshalJSON(data []byte) error {
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte(`"`)) {
		return fmt.Errorf("amount %s must be a number", data)
	}
	return m.value.UnmarshalJSON(data)
}

// percent returns 100*part/total, or 0 when total is zero.
func percent(part, total decimal.Decimal) Percent {
	if total.IsZero() {
		return 0
	}
	return Percent(part.Mul(decimal.NewFromInt(100)).Div(total).InexactFloat64())
}

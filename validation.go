package finpulse

import (
	"errors"
	"fmt"
	"strings"
)

// Input is the user's request to open a position, as entered in a form.
type Input struct {
	Symbol   string
	BuyPrice Money
	Quantity Quantity
}

// ParseInput converts raw form fields into an Input.
//
// It only checks that the fields are present and numeric, Validate checks
// the values. All failures are reported at once.
func ParseInput(symbol, buyPrice, quantity string) (Input, error) {
	var errs error
	in := Input{Symbol: normalizeSymbol(symbol)}

	if strings.TrimSpace(buyPrice) == "" {
		errs = errors.Join(errs, &ValidationError{Field: "buyPrice", Value: buyPrice, Reason: "is required"})
	} else if m, err := ParseMoney(strings.TrimSpace(buyPrice)); err != nil {
		errs = errors.Join(errs, &ValidationError{Field: "buyPrice", Value: buyPrice, Reason: "is not a number"})
	} else {
		in.BuyPrice = m
	}

	if strings.TrimSpace(quantity) == "" {
		errs = errors.Join(errs, &ValidationError{Field: "quantity", Value: quantity, Reason: "is required"})
	} else if q, err := ParseQuantity(strings.TrimSpace(quantity)); err != nil {
		errs = errors.Join(errs, &ValidationError{Field: "quantity", Value: quantity, Reason: "is not a number"})
	} else {
		in.Quantity = q
	}

	if errs != nil {
		return in, errs
	}
	return in, in.Validate()
}

// Validate checks the values of an Input and returns an error with all
// validation failures, or nil.
func (in Input) Validate() error {
	var errs error
	if in.Symbol == "" {
		errs = errors.Join(errs, &ValidationError{Field: "symbol", Value: in.Symbol, Reason: "is required"})
	}
	if !in.BuyPrice.IsPositive() {
		errs = errors.Join(errs, &ValidationError{Field: "buyPrice", Value: in.BuyPrice.String(), Reason: "must be positive"})
	}
	if !in.Quantity.IsPositive() {
		errs = errors.Join(errs, &ValidationError{Field: "quantity", Value: in.Quantity.String(), Reason: "must be positive"})
	} else if !in.Quantity.IsInteger() {
		errs = errors.Join(errs, &ValidationError{Field: "quantity", Value: in.Quantity.String(), Reason: "must be a whole number"})
	}
	return errs
}

// validatePosition checks the invariants of a stored position.
func validatePosition(p Position) error {
	in := Input{Symbol: p.Symbol, BuyPrice: p.BuyPrice, Quantity: p.Quantity}
	if err := in.Validate(); err != nil {
		return err
	}
	if p.ID == "" {
		return &ValidationError{Field: "id", Value: p.ID, Reason: "is required"}
	}
	if p.Symbol != normalizeSymbol(p.Symbol) {
		return &ValidationError{Field: "symbol", Value: p.Symbol, Reason: "must be uppercase"}
	}
	if p.CurrentPrice.IsNegative() {
		return &ValidationError{Field: "currentPrice", Value: p.CurrentPrice.String(), Reason: "must not be negative"}
	}
	if !p.Sector.Valid() {
		return &ValidationError{Field: "sector", Value: string(p.Sector), Reason: fmt.Sprintf("must be one of %v", sectors)}
	}
	return nil
}

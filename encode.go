package finpulse

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// The persisted form of a portfolio is a single JSON array of positions:
//
//	[{"id":"…","symbol":"TCS","buyPrice":3000,"quantity":10,"currentPrice":3300,"sector":"IT"}]
//
// It is always written as a whole, so the store holds either the previous or
// the next list, never a mix.

// encodePositions returns the persisted form of 'positions'.
func encodePositions(positions []Position) (string, error) {
	if positions == nil {
		positions = []Position{}
	}
	data, err := json.Marshal(positions)
	if err != nil {
		return "", fmt.Errorf("cannot encode positions: %w", err)
	}
	return string(data), nil
}

// decodePositions parses and validates a persisted portfolio.
func decodePositions(payload string) ([]Position, error) {
	var positions []Position
	dec := json.NewDecoder(bytes.NewReader([]byte(payload)))
	if err := dec.Decode(&positions); err != nil {
		return nil, fmt.Errorf("format error: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("format error: trailing data after the positions array")
	}
	if positions == nil {
		// "null" is not a list of positions.
		return nil, fmt.Errorf("format error: expected an array of positions")
	}

	ids := make(map[string]struct{}, len(positions))
	for i, p := range positions {
		if err := validatePosition(p); err != nil {
			return nil, fmt.Errorf("format error in position #%d: %w", i, err)
		}
		if _, exists := ids[p.ID]; exists {
			return nil, fmt.Errorf("format error in position #%d: id %q is already defined", i, p.ID)
		}
		ids[p.ID] = struct{}{}
	}
	return positions, nil
}

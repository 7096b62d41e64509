package finpulse

import (
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"
)

// Pricer values a newly created position from its buy price.
//
// There is no live market feed, so the default one simulates a price. A host
// with real quotes, or a test, supplies its own.
type Pricer func(buyPrice Money) Money

// Classifier assigns the sector of a newly created position.
type Classifier func() Sector

// maxDrift is the largest simulated move from the buy price, as a ratio.
const maxDrift = 0.2

// RandomPricer returns a Pricer that draws the current price uniformly within
// ±20% of the buy price.
func RandomPricer(r *rand.Rand) Pricer {
	return func(buyPrice Money) Money {
		u := (r.Float64()*2 - 1) * maxDrift
		return buyPrice.scale(decimal.NewFromFloat(1 + u))
	}
}

// RandomClassifier returns a Classifier that picks uniformly from the taxonomy.
func RandomClassifier(r *rand.Rand) Classifier {
	return func() Sector {
		return sectors[r.IntN(len(sectors))]
	}
}

// FixedPricer always values positions at 'price'.
func FixedPricer(price Money) Pricer {
	return func(Money) Money { return price }
}

// FixedClassifier always assigns 'sector'.
func FixedClassifier(sector Sector) Classifier {
	return func() Sector { return sector }
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x5eed))
}

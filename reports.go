package finpulse

import "slices"

// Summary holds the portfolio-wide valuation figures.
type Summary struct {
	TotalValue        Money // Σ current price × quantity
	TotalInvestment   Money // Σ buy price × quantity
	ProfitLoss        Money // TotalValue - TotalInvestment
	ProfitLossPercent Percent
}

// Allocation is the share of the portfolio value held in one sector.
type Allocation struct {
	Sector  Sector
	Value   Money
	Percent Percent // of the total value, 0 when the portfolio is worthless
}

// Summary computes the valuation of the current positions.
func (p *Portfolio) Summary() Summary {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return Summarize(p.positions)
}

// SectorAllocation computes the allocation of the current positions.
func (p *Portfolio) SectorAllocation() []Allocation {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return Allocate(p.positions)
}

// Summarize computes the Summary of any list of positions.
func Summarize(positions []Position) Summary {
	var value, investment Money
	for _, pos := range positions {
		value = value.Add(pos.Value())
		investment = investment.Add(pos.Investment())
	}
	pl := newPL(value, investment)
	return Summary{
		TotalValue:        value,
		TotalInvestment:   investment,
		ProfitLoss:        pl.Amount,
		ProfitLossPercent: pl.Percent,
	}
}

// Allocate groups positions by sector.
//
// Sectors are listed in the order they first appear in 'positions', use
// SortAllocation to rank them by size.
func Allocate(positions []Position) []Allocation {
	var total Money
	var result []Allocation
	index := make(map[Sector]int)
	for _, pos := range positions {
		v := pos.Value()
		total = total.Add(v)
		i, ok := index[pos.Sector]
		if !ok {
			i = len(result)
			index[pos.Sector] = i
			result = append(result, Allocation{Sector: pos.Sector})
		}
		result[i].Value = result[i].Value.Add(v)
	}
	for i := range result {
		result[i].Percent = result[i].Value.percentOf(total)
	}
	return result
}

// SortAllocation sorts 'a' by decreasing value, ties keep their order.
func SortAllocation(a []Allocation) {
	slices.SortStableFunc(a, func(x, y Allocation) int {
		return y.Value.value.Cmp(x.Value.value)
	})
}

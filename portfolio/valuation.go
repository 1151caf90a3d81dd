package portfolio

import "sort"

// PositionValue is one open position marked to a current price.
type PositionValue struct {
	Position
	CurrentPrice  float64
	Value         float64
	UnrealizedPnL float64
	PnLPercent    float64
}

// Valuation is the whole portfolio marked to current prices.
type Valuation struct {
	Positions     []PositionValue
	PositionValue float64
	UnrealizedPnL float64
	CashBalance   float64
	TotalValue    float64 // cash + position value
}

// Positions marks every open position using prices, falling back to
// the entry price for symbols without a quote. The result is sorted by
// symbol for stable output.
func (l *Ledger) Positions(prices map[string]float64) Valuation {
	l.mu.Lock()
	defer l.mu.Unlock()

	symbols := make([]string, 0, len(l.positions))
	for sym := range l.positions {
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)

	v := Valuation{CashBalance: l.balance}
	for _, sym := range symbols {
		pos := l.positions[sym]

		price, ok := prices[sym]
		if !ok {
			price = pos.EntryPrice
		}

		pnl := pos.UnrealizedPnL(price)
		value := pos.Quantity * price

		v.Positions = append(v.Positions, PositionValue{
			Position:      pos,
			CurrentPrice:  price,
			Value:         value,
			UnrealizedPnL: pnl,
			PnLPercent:    pnl / pos.Cost() * 100,
		})
		v.PositionValue += value
		v.UnrealizedPnL += pnl
	}

	v.TotalValue = v.CashBalance + v.PositionValue
	return v
}

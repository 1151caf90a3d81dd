package portfolio

import "time"

// Side is the direction of a position.
type Side string

const (
	Long  Side = "long"
	Short Side = "short"
)

func (s Side) valid() bool {
	return s == Long || s == Short
}

// Position is an open holding. Positions are never mutated in place;
// closing removes the position and produces a Trade.
type Position struct {
	Symbol     string    `json:"symbol" yaml:"symbol"`
	Quantity   float64   `json:"quantity" yaml:"quantity"`
	EntryPrice float64   `json:"entry_price" yaml:"entry_price"`
	EntryTime  time.Time `json:"entry_time" yaml:"entry_time"`
	Side       Side      `json:"side" yaml:"side"`
	StopLoss   *float64  `json:"stop_loss,omitempty" yaml:"stop_loss,omitempty"`
	TakeProfit *float64  `json:"take_profit,omitempty" yaml:"take_profit,omitempty"`
}

// Cost is the cash that was debited when the position opened.
func (p Position) Cost() float64 {
	return p.Quantity * p.EntryPrice
}

// UnrealizedPnL marks the position against price. Short profit is the
// mirror of long profit.
func (p Position) UnrealizedPnL(price float64) float64 {
	if p.Side == Short {
		return (p.EntryPrice - price) * p.Quantity
	}
	return (price - p.EntryPrice) * p.Quantity
}

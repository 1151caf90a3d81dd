package portfolio

import "time"

// Trade is a realized round trip. A trade is created once when its
// position closes and is never mutated or deleted afterwards. IDs are
// strictly increasing and never reused.
type Trade struct {
	ID         int64     `json:"id" yaml:"id"`
	Symbol     string    `json:"symbol" yaml:"symbol"`
	Side       Side      `json:"side" yaml:"side"`
	Quantity   float64   `json:"quantity" yaml:"quantity"`
	EntryPrice float64   `json:"entry_price" yaml:"entry_price"`
	ExitPrice  float64   `json:"exit_price" yaml:"exit_price"`
	EntryTime  time.Time `json:"entry_time" yaml:"entry_time"`
	ExitTime   time.Time `json:"exit_time" yaml:"exit_time"`
	PnL        float64   `json:"pnl" yaml:"pnl"`
	PnLPercent float64   `json:"pnl_percent" yaml:"pnl_percent"`
	Reason     string    `json:"reason" yaml:"reason"`
}

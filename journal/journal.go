// Package journal persists closed trades outside the in-memory
// ledger. Journaling is an orthogonal collaborator: the engine keeps
// working if no journal is configured.
package journal

import "time"

// TradeRecord is one closed trade as written to the journal. RecordID
// is a ULID, so rows sort lexicographically by write time; TradeID is
// the ledger's own monotonic trade id.
type TradeRecord struct {
	RecordID   string
	TradeID    int64
	Symbol     string
	Side       string
	Quantity   float64
	EntryPrice float64
	ExitPrice  float64
	EntryTime  time.Time
	ExitTime   time.Time
	PnL        float64
	PnLPercent float64
	Reason     string
}

type Journal interface {
	RecordTrade(TradeRecord) error
	Close() error
}

// Nop discards every record. Used when no journal is configured.
type Nop struct{}

func (Nop) RecordTrade(TradeRecord) error { return nil }
func (Nop) Close() error                  { return nil }

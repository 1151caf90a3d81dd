package portfolio

import "fmt"

// Snapshot is the full ledger state for external persistence.
// Restoring a snapshot reproduces balance, open positions and trade
// history verbatim.
type Snapshot struct {
	Balance        float64    `json:"balance" yaml:"balance"`
	InitialBalance float64    `json:"initial_balance" yaml:"initial_balance"`
	Positions      []Position `json:"positions" yaml:"positions"`
	Trades         []Trade    `json:"trades" yaml:"trades"`
	NextTradeID    int64      `json:"next_trade_id" yaml:"next_trade_id"`
}

// Snapshot captures the ledger state.
func (l *Ledger) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	s := Snapshot{
		Balance:        l.balance,
		InitialBalance: l.initial,
		Trades:         append([]Trade(nil), l.trades...),
		NextTradeID:    l.nextID,
	}

	// Stable order via Trades-style copy is not needed here; callers
	// index positions by symbol anyway.
	for _, pos := range l.positions {
		s.Positions = append(s.Positions, pos)
	}
	return s
}

// RestoreLedger rebuilds a ledger from a snapshot.
func RestoreLedger(s Snapshot) (*Ledger, error) {
	l := NewLedger(s.InitialBalance)
	l.balance = s.Balance
	l.trades = append([]Trade(nil), s.Trades...)

	for _, pos := range s.Positions {
		sym := pos.Symbol
		if _, dup := l.positions[sym]; dup {
			return nil, fmt.Errorf("restore: duplicate position %s: %w", sym, ErrInvalidParameter)
		}
		l.positions[sym] = pos
	}

	l.nextID = s.NextTradeID
	for _, t := range s.Trades {
		// Never reuse an ID, even from a snapshot written before
		// NextTradeID existed.
		if t.ID >= l.nextID {
			l.nextID = t.ID + 1
		}
	}
	if l.nextID < 1 {
		l.nextID = 1
	}
	return l, nil
}

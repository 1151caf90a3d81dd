package portfolio

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Ledger owns the cash balance, the open positions and the closed
// trade history for one logical portfolio. A single mutex serializes
// open and close against each other; reads take the same lock and
// return copies, so callers always observe a consistent snapshot.
//
// A failing operation leaves the ledger unchanged.
type Ledger struct {
	mu        sync.Mutex
	balance   float64
	initial   float64
	positions map[string]Position
	trades    []Trade
	nextID    int64
	now       func() time.Time
}

func NewLedger(initialBalance float64) *Ledger {
	return &Ledger{
		balance:   initialBalance,
		initial:   initialBalance,
		positions: make(map[string]Position),
		nextID:    1,
		now:       time.Now,
	}
}

// OpenRequest describes a position to open.
type OpenRequest struct {
	Symbol     string
	Quantity   float64
	Price      float64
	Side       Side // defaults to Long
	StopLoss   *float64
	TakeProfit *float64
}

// Open debits the cash balance by quantity*price and inserts the
// position. It fails with ErrDuplicatePosition if the symbol already
// has one and ErrInsufficientBalance if the cost exceeds the balance.
func (l *Ledger) Open(req OpenRequest) (Position, error) {
	symbol := strings.ToUpper(req.Symbol)

	if req.Quantity <= 0 {
		return Position{}, fmt.Errorf("open %s: quantity %v must be positive: %w", symbol, req.Quantity, ErrInvalidParameter)
	}
	if req.Price <= 0 {
		return Position{}, fmt.Errorf("open %s: price %v must be positive: %w", symbol, req.Price, ErrInvalidParameter)
	}
	side := req.Side
	if side == "" {
		side = Long
	}
	if !side.valid() {
		return Position{}, fmt.Errorf("open %s: unknown side %q: %w", symbol, req.Side, ErrInvalidParameter)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, open := l.positions[symbol]; open {
		return Position{}, fmt.Errorf("open %s: %w", symbol, ErrDuplicatePosition)
	}

	cost := req.Quantity * req.Price
	if cost > l.balance {
		return Position{}, fmt.Errorf("open %s: need %.2f, have %.2f: %w", symbol, cost, l.balance, ErrInsufficientBalance)
	}

	pos := Position{
		Symbol:     symbol,
		Quantity:   req.Quantity,
		EntryPrice: req.Price,
		EntryTime:  l.now().UTC(),
		Side:       side,
		StopLoss:   req.StopLoss,
		TakeProfit: req.TakeProfit,
	}
	l.positions[symbol] = pos
	l.balance -= cost

	return pos, nil
}

// Close realizes the position at exitPrice: it credits the balance
// with quantity*exitPrice, removes the position and appends the
// resulting Trade to the history.
func (l *Ledger) Close(symbol string, exitPrice float64, reason string) (Trade, error) {
	symbol = strings.ToUpper(symbol)

	if exitPrice <= 0 {
		return Trade{}, fmt.Errorf("close %s: price %v must be positive: %w", symbol, exitPrice, ErrInvalidParameter)
	}
	if reason == "" {
		reason = "manual"
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	pos, open := l.positions[symbol]
	if !open {
		return Trade{}, fmt.Errorf("close %s: %w", symbol, ErrNoPosition)
	}

	pnl := pos.UnrealizedPnL(exitPrice)
	trade := Trade{
		ID:         l.nextID,
		Symbol:     symbol,
		Side:       pos.Side,
		Quantity:   pos.Quantity,
		EntryPrice: pos.EntryPrice,
		ExitPrice:  exitPrice,
		EntryTime:  pos.EntryTime,
		ExitTime:   l.now().UTC(),
		PnL:        pnl,
		PnLPercent: pnl / pos.Cost() * 100,
		Reason:     reason,
	}

	l.nextID++
	l.trades = append(l.trades, trade)
	l.balance += pos.Quantity * exitPrice
	delete(l.positions, symbol)

	return trade, nil
}

// Balance returns the current cash balance.
func (l *Ledger) Balance() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balance
}

// InitialBalance returns the balance the ledger started with.
func (l *Ledger) InitialBalance() float64 {
	return l.initial
}

// OpenPositions returns a copy of the open positions keyed by symbol.
func (l *Ledger) OpenPositions() map[string]Position {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make(map[string]Position, len(l.positions))
	for sym, pos := range l.positions {
		out[sym] = pos
	}
	return out
}

// Trades returns closed trades, most recently closed first, optionally
// filtered by symbol. limit <= 0 returns everything.
func (l *Ledger) Trades(symbol string, limit int) []Trade {
	symbol = strings.ToUpper(symbol)

	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Trade, 0, len(l.trades))
	for i := len(l.trades) - 1; i >= 0; i-- {
		t := l.trades[i]
		if symbol != "" && t.Symbol != symbol {
			continue
		}
		out = append(out, t)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// History returns all closed trades in close order, oldest first. This
// is the canonical order for equity-curve computations.
func (l *Ledger) History() []Trade {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Trade(nil), l.trades...)
}

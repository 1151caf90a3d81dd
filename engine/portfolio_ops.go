package engine

import (
	"fmt"
	"os"

	"github.com/rustyeddy/papertrade/journal"
	"github.com/rustyeddy/papertrade/pkg/id"
	"github.com/rustyeddy/papertrade/portfolio"
	"github.com/rustyeddy/papertrade/risk"
)

// Open opens a position and debits the cash balance.
func (e *Engine) Open(req portfolio.OpenRequest) Result {
	pos, err := e.ledger.Open(req)
	if err != nil {
		return fail("position open failed: %v", err)
	}

	p := map[string]any{
		"symbol":      pos.Symbol,
		"side":        string(pos.Side),
		"quantity":    pos.Quantity,
		"entry_price": pos.EntryPrice,
		"cost":        round2(pos.Cost()),
	}
	if pos.StopLoss != nil {
		p["stop_loss"] = *pos.StopLoss
	}
	if pos.TakeProfit != nil {
		p["take_profit"] = *pos.TakeProfit
	}

	return ok(map[string]any{
		"position":          p,
		"remaining_balance": round2(e.ledger.Balance()),
		"opened_at":         isoTime(pos.EntryTime),
	})
}

// ClosePosition realizes the position at price and credits the
// balance. The resulting trade is journaled; a journal failure is
// reported but does not undo the close, since the ledger is the source
// of truth.
func (e *Engine) ClosePosition(symbol string, price float64, reason string) Result {
	trade, err := e.ledger.Close(symbol, price, reason)
	if err != nil {
		return fail("position close failed: %v", err)
	}

	if err := e.journal.RecordTrade(journalRecord(trade)); err != nil {
		fmt.Fprintf(os.Stderr, "journal: record trade %d: %v\n", trade.ID, err)
	}

	return ok(map[string]any{
		"trade":       tradePayload(trade),
		"new_balance": round2(e.ledger.Balance()),
		"closed_at":   isoTime(trade.ExitTime),
	})
}

// Positions marks open positions against prices, falling back to the
// entry price for symbols without a quote. Pass nil to mark everything
// at entry.
func (e *Engine) Positions(prices map[string]float64) Result {
	v := e.ledger.Positions(prices)

	out := make([]map[string]any, len(v.Positions))
	for i, p := range v.Positions {
		row := map[string]any{
			"symbol":         p.Symbol,
			"side":           string(p.Side),
			"quantity":       p.Quantity,
			"entry_price":    p.EntryPrice,
			"current_price":  round2(p.CurrentPrice),
			"position_value": round2(p.Value),
			"unrealized_pnl": round2(p.UnrealizedPnL),
			"pnl_percent":    round2(p.PnLPercent),
			"entry_time":     isoTime(p.EntryTime),
		}
		if p.StopLoss != nil {
			row["stop_loss"] = *p.StopLoss
		}
		if p.TakeProfit != nil {
			row["take_profit"] = *p.TakeProfit
		}
		out[i] = row
	}

	return ok(map[string]any{
		"positions":             out,
		"position_count":        len(out),
		"total_position_value":  round2(v.PositionValue),
		"total_unrealized_pnl":  round2(v.UnrealizedPnL),
		"cash_balance":          round2(v.CashBalance),
		"total_portfolio_value": round2(v.TotalValue),
	})
}

// PositionsLive marks open positions against fresh quotes from the
// price source. A quote failure for one symbol falls back to that
// position's entry price without failing the others.
func (e *Engine) PositionsLive() Result {
	return e.Positions(e.livePrices())
}

// History returns closed trades, most recently closed first.
func (e *Engine) History(symbol string, limit int) Result {
	trades := e.ledger.Trades(symbol, limit)

	out := make([]map[string]any, len(trades))
	for i, t := range trades {
		out[i] = tradePayload(t)
	}
	return ok(map[string]any{
		"trades":      out,
		"trade_count": len(out),
	})
}

// Metrics reports performance statistics over the closed trades.
func (e *Engine) Metrics() Result {
	trades := e.ledger.History()
	if len(trades) == 0 {
		return ok(map[string]any{
			"message":      "no trades to analyze",
			"total_trades": 0,
		})
	}

	m := risk.Compute(trades, e.ledger.InitialBalance(), e.ledger.Balance())
	return ok(map[string]any{
		"total_trades":         m.TotalTrades,
		"winning_trades":       m.WinningTrades,
		"losing_trades":        m.LosingTrades,
		"win_rate":             round2(m.WinRate),
		"total_pnl":            round2(m.TotalPnL),
		"average_win":          round2(m.AverageWin),
		"average_loss":         round2(m.AverageLoss),
		"profit_factor":        number(m.ProfitFactor),
		"risk_reward_ratio":    number(m.RiskReward),
		"max_drawdown_percent": round2(m.MaxDrawdown),
		"current_balance":      round2(e.ledger.Balance()),
		"roi_percent":          round2(m.ROI),
	})
}

// Allocation breaks the portfolio value into cash plus per-symbol
// buckets and scores its diversification.
func (e *Engine) Allocation() Result {
	v := e.ledger.Positions(e.livePrices())
	allocs := risk.Allocations(v)

	out := make([]map[string]any, len(allocs))
	for i, a := range allocs {
		out[i] = map[string]any{
			"asset":   a.Asset,
			"value":   round2(a.Value),
			"percent": round2(a.Percent),
		}
	}

	return ok(map[string]any{
		"allocations":           out,
		"total_value":           round2(v.TotalValue),
		"diversification_score": round2(risk.DiversificationScore(allocs)),
	})
}

// CheckRisk verifies the portfolio against the configured risk limits.
func (e *Engine) CheckRisk() Result {
	v := e.ledger.Positions(e.livePrices())
	r := risk.Check(e.limits, v, e.ledger.History(), e.ledger.InitialBalance())

	violations := make([]map[string]any, len(r.Violations))
	for i, viol := range r.Violations {
		violations[i] = map[string]any{
			"code":    viol.Code,
			"message": viol.Msg,
		}
	}
	warnings := r.Warnings
	if warnings == nil {
		warnings = []string{}
	}

	return ok(map[string]any{
		"risk_compliant": r.Compliant,
		"violations":     violations,
		"warnings":       warnings,
		"checked_at":     isoTime(nowUTC()),
	})
}

// livePrices queries the source for every open position. Symbols whose
// quote fails are simply left out; the caller falls back to entry
// prices for them.
func (e *Engine) livePrices() map[string]float64 {
	prices := make(map[string]float64)
	for sym := range e.ledger.OpenPositions() {
		if q, err := e.source.CurrentPrice(sym); err == nil {
			prices[sym] = q.Price
		}
	}
	return prices
}

func tradePayload(t portfolio.Trade) map[string]any {
	return map[string]any{
		"id":          t.ID,
		"symbol":      t.Symbol,
		"side":        string(t.Side),
		"quantity":    t.Quantity,
		"entry_price": t.EntryPrice,
		"exit_price":  t.ExitPrice,
		"pnl":         round2(t.PnL),
		"pnl_percent": round2(t.PnLPercent),
		"entry_time":  isoTime(t.EntryTime),
		"exit_time":   isoTime(t.ExitTime),
		"reason":      t.Reason,
	}
}

func journalRecord(t portfolio.Trade) journal.TradeRecord {
	return journal.TradeRecord{
		RecordID:   id.New(),
		TradeID:    t.ID,
		Symbol:     t.Symbol,
		Side:       string(t.Side),
		Quantity:   t.Quantity,
		EntryPrice: t.EntryPrice,
		ExitPrice:  t.ExitPrice,
		EntryTime:  t.EntryTime,
		ExitTime:   t.ExitTime,
		PnL:        t.PnL,
		PnLPercent: t.PnLPercent,
		Reason:     t.Reason,
	}
}

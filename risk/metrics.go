// Package risk derives portfolio-level statistics from the ledger's
// trade history and current valuations. Everything here is a pure
// read; nothing mutates portfolio state.
package risk

import (
	"math"

	"github.com/rustyeddy/papertrade/portfolio"
)

// Metrics are the performance statistics over closed trades. A
// ProfitFactor or RiskReward of +Inf means there were no losses to
// divide by.
type Metrics struct {
	TotalTrades   int
	WinningTrades int
	LosingTrades  int
	WinRate       float64 // percent
	TotalPnL      float64
	AverageWin    float64
	AverageLoss   float64 // negative or zero
	ProfitFactor  float64
	RiskReward    float64
	MaxDrawdown   float64 // percent of peak equity
	ROI           float64 // percent of initial balance
}

// Compute derives Metrics from trades in close order, starting the
// equity curve at initialBalance. currentBalance is the ledger's cash
// balance, used for ROI.
func Compute(trades []portfolio.Trade, initialBalance, currentBalance float64) Metrics {
	m := Metrics{TotalTrades: len(trades)}
	if initialBalance > 0 {
		m.ROI = (currentBalance - initialBalance) / initialBalance * 100
	}
	if len(trades) == 0 {
		return m
	}

	var grossProfit, grossLoss float64
	for _, t := range trades {
		m.TotalPnL += t.PnL
		switch {
		case t.PnL > 0:
			m.WinningTrades++
			grossProfit += t.PnL
		case t.PnL < 0:
			m.LosingTrades++
			grossLoss += -t.PnL
		}
	}

	m.WinRate = float64(m.WinningTrades) / float64(m.TotalTrades) * 100
	if m.WinningTrades > 0 {
		m.AverageWin = grossProfit / float64(m.WinningTrades)
	}
	if m.LosingTrades > 0 {
		m.AverageLoss = -grossLoss / float64(m.LosingTrades)
	}

	switch {
	case grossLoss > 0:
		m.ProfitFactor = grossProfit / grossLoss
	case grossProfit > 0:
		m.ProfitFactor = math.Inf(1)
	}

	switch {
	case m.AverageLoss != 0:
		m.RiskReward = math.Abs(m.AverageWin / m.AverageLoss)
	case m.AverageWin > 0:
		m.RiskReward = math.Inf(1)
	}

	m.MaxDrawdown = MaxDrawdown(trades, initialBalance)
	return m
}

// MaxDrawdown builds the equity curve from initialBalance by applying
// each trade's realized pnl in close order and returns the largest
// peak-to-trough decline as a percent of the peak. It is never
// negative and is 0 for a monotonically non-decreasing curve.
func MaxDrawdown(trades []portfolio.Trade, initialBalance float64) float64 {
	equity := initialBalance
	peak := initialBalance
	var maxDD float64

	for _, t := range trades {
		equity += t.PnL
		if equity > peak {
			peak = equity
		}
		if peak > 0 {
			if dd := (peak - equity) / peak * 100; dd > maxDD {
				maxDD = dd
			}
		}
	}
	return maxDD
}

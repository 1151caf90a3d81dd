package risk

import (
	"strings"
	"testing"

	"github.com/rustyeddy/papertrade/portfolio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func valuationWith(cash float64, positions ...portfolio.PositionValue) portfolio.Valuation {
	v := portfolio.Valuation{CashBalance: cash}
	for _, p := range positions {
		v.Positions = append(v.Positions, p)
		v.PositionValue += p.Value
		v.UnrealizedPnL += p.UnrealizedPnL
	}
	v.TotalValue = v.CashBalance + v.PositionValue
	return v
}

func TestCheckOversizedPosition(t *testing.T) {
	sl := 40000.0
	v := valuationWith(2000, portfolio.PositionValue{
		Position: portfolio.Position{Symbol: "BTC/USDT", StopLoss: &sl},
		Value:    8000,
	})

	r := Check(Limits{MaxPositionPct: 0.2, MaxDrawdownPct: 0.1}, v, nil, 10000)

	assert.False(t, r.Compliant)
	require.Len(t, r.Violations, 1)
	assert.Equal(t, "POSITION_TOO_LARGE", r.Violations[0].Code)
	assert.Contains(t, r.Violations[0].Msg, "BTC/USDT")
}

func TestCheckDrawdownViolation(t *testing.T) {
	// 20% drawdown: 10000 -> 8000.
	trades := tradesWithPnL(-2000)

	r := Check(Limits{MaxPositionPct: 0.5, MaxDrawdownPct: 0.1}, portfolio.Valuation{CashBalance: 8000, TotalValue: 8000}, trades, 10000)

	assert.False(t, r.Compliant)
	require.Len(t, r.Violations, 1)
	assert.Equal(t, "DRAWDOWN_EXCEEDED", r.Violations[0].Code)
}

func TestCheckWarningsAreNotViolations(t *testing.T) {
	// One position at 75% of value and no stop loss: two warnings,
	// still compliant given generous limits.
	v := valuationWith(2500, portfolio.PositionValue{
		Position: portfolio.Position{Symbol: "ETH/USDT"},
		Value:    7500,
	})

	r := Check(Limits{MaxPositionPct: 0.8, MaxDrawdownPct: 0.5}, v, nil, 10000)

	assert.True(t, r.Compliant)
	assert.Empty(t, r.Violations)
	require.Len(t, r.Warnings, 2)
	assert.Contains(t, r.Warnings[0], "concentrated")
	assert.True(t, strings.Contains(r.Warnings[1], "ETH/USDT"))
}

func TestCheckCompliantPortfolio(t *testing.T) {
	sl := 2800.0
	v := valuationWith(8500, portfolio.PositionValue{
		Position: portfolio.Position{Symbol: "ETH/USDT", StopLoss: &sl},
		Value:    1500,
	})

	r := Check(Limits{MaxPositionPct: 0.2, MaxDrawdownPct: 0.1}, v, tradesWithPnL(50, -20), 10000)

	assert.True(t, r.Compliant)
	assert.Empty(t, r.Violations)
	assert.Empty(t, r.Warnings)
}

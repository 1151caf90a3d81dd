package risk

import (
	"fmt"

	"github.com/rustyeddy/papertrade/portfolio"
)

// Limits are the portfolio risk thresholds, expressed as fractions:
// MaxPositionPct 0.2 caps any single position at 20% of portfolio
// value, MaxDrawdownPct 0.1 caps historical drawdown at 10%.
type Limits struct {
	MaxPositionPct float64
	MaxDrawdownPct float64
}

type Violation struct {
	Code string
	Msg  string
}

// Report is the outcome of a risk-limit check. Any violation makes the
// portfolio non-compliant; warnings are advisory only.
type Report struct {
	Compliant  bool
	Violations []Violation
	Warnings   []string
}

func (r *Report) add(code, msg string) {
	r.Violations = append(r.Violations, Violation{Code: code, Msg: msg})
	r.Compliant = false
}

// A single position holding at least this share of total value draws a
// concentration warning.
const concentrationWarnPct = 70.0

// Check flags limit violations and advisory warnings for the marked
// portfolio and its trade history.
func Check(lim Limits, v portfolio.Valuation, trades []portfolio.Trade, initialBalance float64) Report {
	r := Report{Compliant: true}

	for _, a := range Allocations(v) {
		if a.Asset == CashAsset {
			continue
		}
		if a.Percent > lim.MaxPositionPct*100 {
			r.add("POSITION_TOO_LARGE",
				fmt.Sprintf("%s exceeds max position size: %.2f%% > %.2f%%",
					a.Asset, a.Percent, lim.MaxPositionPct*100))
		}
	}

	if dd := MaxDrawdown(trades, initialBalance); dd > lim.MaxDrawdownPct*100 {
		r.add("DRAWDOWN_EXCEEDED",
			fmt.Sprintf("max drawdown exceeded: %.2f%% > %.2f%%",
				dd, lim.MaxDrawdownPct*100))
	}

	if len(v.Positions) == 1 && v.TotalValue > 0 &&
		v.Positions[0].Value >= v.TotalValue*concentrationWarnPct/100 {
		r.Warnings = append(r.Warnings, "portfolio is concentrated in a single position")
	}

	for _, p := range v.Positions {
		if p.StopLoss == nil {
			r.Warnings = append(r.Warnings, fmt.Sprintf("%s has no stop loss set", p.Symbol))
		}
	}

	return r
}

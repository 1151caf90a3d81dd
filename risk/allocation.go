package risk

import "github.com/rustyeddy/papertrade/portfolio"

// CashAsset is the bucket name for uninvested cash.
const CashAsset = "CASH"

// Allocation is one bucket of portfolio value.
type Allocation struct {
	Asset   string
	Value   float64
	Percent float64
}

// Allocations breaks the marked portfolio into a cash bucket plus one
// bucket per open position. Percentages are of total portfolio value;
// an empty portfolio is 100% cash.
func Allocations(v portfolio.Valuation) []Allocation {
	total := v.TotalValue

	cashPct := 100.0
	if total > 0 {
		cashPct = v.CashBalance / total * 100
	}
	out := []Allocation{{Asset: CashAsset, Value: v.CashBalance, Percent: cashPct}}

	for _, p := range v.Positions {
		pct := 0.0
		if total > 0 {
			pct = p.Value / total * 100
		}
		out = append(out, Allocation{Asset: p.Symbol, Value: p.Value, Percent: pct})
	}
	return out
}

// DiversificationScore inverts the Herfindahl-Hirschman index of the
// allocation weights into a 0-100 score: 0 is fully concentrated, 100
// is the (unreachable) limit of perfect diversification. A single
// bucket scores 0 by convention.
func DiversificationScore(allocs []Allocation) float64 {
	if len(allocs) <= 1 {
		return 0
	}

	var hhi float64
	for _, a := range allocs {
		w := a.Percent / 100
		hhi += w * w
	}
	return (1 - hhi) * 100
}

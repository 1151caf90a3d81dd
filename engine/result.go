package engine

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// Result is the uniform envelope handed back to the skill-invocation
// layer that consumes the engine.
type Result struct {
	Success bool           `json:"success"`
	Data    map[string]any `json:"data,omitempty"`
	Error   string         `json:"error,omitempty"`
}

func ok(data map[string]any) Result {
	return Result{Success: true, Data: data}
}

func fail(format string, args ...any) Result {
	return Result{Error: fmt.Sprintf(format, args...)}
}

// round2 rounds monetary and percentage values to 2 decimal places
// using exact decimal arithmetic.
func round2(x float64) float64 {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return x
	}
	f, _ := decimal.NewFromFloat(x).Round(2).Float64()
	return f
}

// number formats a rounded value for the envelope. JSON has no
// representation for infinity, so it becomes the string "inf".
func number(x float64) any {
	if math.IsInf(x, 1) {
		return "inf"
	}
	return round2(x)
}

// isoTime renders a timestamp as ISO-8601 UTC.
func isoTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func nowUTC() time.Time {
	return time.Now().UTC()
}

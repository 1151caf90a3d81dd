package engine

import (
	"fmt"

	"github.com/rustyeddy/papertrade/alerts"
)

// SetAlert registers a price alert. Condition is "above" or "below".
func (e *Engine) SetAlert(symbol, condition string, value float64) Result {
	a, err := e.monitor.Set(symbol, alerts.Condition(condition), value)
	if err != nil {
		return fail("alert creation failed: %v", err)
	}

	return ok(map[string]any{
		"alert_id": a.ID,
		"message":  fmt.Sprintf("Alert set: %s %s %v", a.Symbol, a.Condition, a.Value),
		"alert":    alertPayload(a),
	})
}

// CheckAlerts evaluates every active alert against current prices and
// reports the ones triggered by this pass.
func (e *Engine) CheckAlerts() Result {
	res := e.monitor.Check()

	triggered := make([]map[string]any, len(res.Triggered))
	for i, a := range res.Triggered {
		triggered[i] = alertPayload(a)
	}

	return ok(map[string]any{
		"triggered":       triggered,
		"triggered_count": len(triggered),
		"active_alerts":   res.Active,
		"checked_at":      isoTime(res.CheckedAt),
	})
}

func alertPayload(a alerts.Alert) map[string]any {
	p := map[string]any{
		"id":         a.ID,
		"symbol":     a.Symbol,
		"condition":  string(a.Condition),
		"value":      a.Value,
		"status":     string(a.Status),
		"created_at": isoTime(a.CreatedAt),
	}
	if a.TriggeredAt != nil {
		p["triggered_at"] = isoTime(*a.TriggeredAt)
	}
	if a.TriggeredPrice != nil {
		p["triggered_price"] = round2(*a.TriggeredPrice)
	}
	return p
}

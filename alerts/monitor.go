// Package alerts evaluates user-defined price conditions against a
// price source.
package alerts

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rustyeddy/papertrade/market"
)

// ErrInvalidAlert covers malformed alert parameters: unknown
// condition, non-positive target value.
var ErrInvalidAlert = errors.New("invalid alert")

// Condition is the price comparison an alert waits for.
type Condition string

const (
	Above Condition = "above"
	Below Condition = "below"
)

// Status of an alert. The transition Active -> Triggered happens
// exactly once and is irreversible.
type Status string

const (
	Active    Status = "active"
	Triggered Status = "triggered"
)

// Alert is a one-shot price watch.
type Alert struct {
	ID             int64
	Symbol         string
	Condition      Condition
	Value          float64
	Status         Status
	CreatedAt      time.Time
	TriggeredAt    *time.Time
	TriggeredPrice *float64
}

// Monitor holds alerts and checks them against a PriceSource. It polls
// the source independently of any portfolio state.
type Monitor struct {
	mu     sync.Mutex
	source market.PriceSource
	alerts []Alert
	nextID int64
	now    func() time.Time
}

func NewMonitor(source market.PriceSource) *Monitor {
	return &Monitor{source: source, nextID: 1, now: time.Now}
}

// Set registers a new active alert and returns it.
func (m *Monitor) Set(symbol string, cond Condition, value float64) (Alert, error) {
	if cond != Above && cond != Below {
		return Alert{}, fmt.Errorf("set alert: unknown condition %q: %w", cond, ErrInvalidAlert)
	}
	if value <= 0 {
		return Alert{}, fmt.Errorf("set alert: target %v must be positive: %w", value, ErrInvalidAlert)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	a := Alert{
		ID:        m.nextID,
		Symbol:    strings.ToUpper(symbol),
		Condition: cond,
		Value:     value,
		Status:    Active,
		CreatedAt: m.now().UTC(),
	}
	m.nextID++
	m.alerts = append(m.alerts, a)
	return a, nil
}

// CheckResult reports one Check pass.
type CheckResult struct {
	Triggered []Alert
	Active    int // alerts still active after this pass
	CheckedAt time.Time
}

// Check re-reads the price source for every active alert and triggers
// those whose condition holds. Triggered alerts are excluded from all
// future checks. A source failure for one symbol leaves that alert
// active and does not affect the others.
func (m *Monitor) Check() CheckResult {
	m.mu.Lock()
	defer m.mu.Unlock()

	res := CheckResult{CheckedAt: m.now().UTC()}

	for i := range m.alerts {
		a := &m.alerts[i]
		if a.Status != Active {
			continue
		}

		q, err := m.source.CurrentPrice(a.Symbol)
		if err != nil {
			res.Active++
			continue
		}

		hit := (a.Condition == Above && q.Price > a.Value) ||
			(a.Condition == Below && q.Price < a.Value)
		if !hit {
			res.Active++
			continue
		}

		at := res.CheckedAt
		price := q.Price
		a.Status = Triggered
		a.TriggeredAt = &at
		a.TriggeredPrice = &price
		res.Triggered = append(res.Triggered, *a)
	}

	return res
}

// Alerts returns a copy of all alerts, active and triggered, in
// creation order.
func (m *Monitor) Alerts() []Alert {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Alert(nil), m.alerts...)
}

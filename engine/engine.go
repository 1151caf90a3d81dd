// Package engine wires the simulated market, position ledger, risk
// aggregator and alert monitor together behind a uniform result
// envelope. One Engine owns one logical portfolio.
package engine

import (
	"fmt"
	"math/rand"

	"github.com/rustyeddy/papertrade/alerts"
	"github.com/rustyeddy/papertrade/config"
	"github.com/rustyeddy/papertrade/journal"
	"github.com/rustyeddy/papertrade/market"
	"github.com/rustyeddy/papertrade/portfolio"
	"github.com/rustyeddy/papertrade/risk"
)

type Engine struct {
	source  market.PriceSource
	ledger  *portfolio.Ledger
	monitor *alerts.Monitor
	journal journal.Journal
	limits  risk.Limits
}

// New builds an engine from cfg. With cfg.Market.Seed set, the
// simulated source is fully reproducible.
func New(cfg *config.Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("engine config: %w", err)
	}

	var rng *rand.Rand
	if cfg.Market.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Market.Seed))
	}
	source := market.NewSimSource(cfg.Market.Symbols, rng)

	j, err := openJournal(cfg.Journal)
	if err != nil {
		return nil, err
	}

	return &Engine{
		source:  source,
		ledger:  portfolio.NewLedger(cfg.Account.Balance),
		monitor: alerts.NewMonitor(source),
		journal: j,
		limits: risk.Limits{
			MaxPositionPct: cfg.Risk.MaxPositionPct,
			MaxDrawdownPct: cfg.Risk.MaxDrawdownPct,
		},
	}, nil
}

// NewWithSource builds an engine around an externally supplied price
// source, e.g. a real feed or a test stub. A nil journal disables
// journaling.
func NewWithSource(source market.PriceSource, initialBalance float64, limits risk.Limits, j journal.Journal) *Engine {
	if j == nil {
		j = journal.Nop{}
	}
	return &Engine{
		source:  source,
		ledger:  portfolio.NewLedger(initialBalance),
		monitor: alerts.NewMonitor(source),
		journal: j,
		limits:  limits,
	}
}

func openJournal(jc config.JournalConfig) (journal.Journal, error) {
	switch jc.Type {
	case "", "none":
		return journal.Nop{}, nil
	case "csv":
		return journal.NewCSV(jc.TradesFile)
	case "sqlite":
		return journal.NewSQLite(jc.DBPath)
	default:
		return nil, fmt.Errorf("unknown journal type %q", jc.Type)
	}
}

// Ledger exposes the underlying position ledger, e.g. for external
// persistence of its snapshot.
func (e *Engine) Ledger() *portfolio.Ledger { return e.ledger }

// Close releases the journal.
func (e *Engine) Close() error { return e.journal.Close() }

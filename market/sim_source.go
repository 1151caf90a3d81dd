package market

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"
)

// SimSource simulates a market from a table of base prices. Quotes are
// the base price with up to ±2% of noise; candles are a random walk
// ending at the current time. Pass a seeded rand.Rand for reproducible
// output; with a nil generator every run is different.
//
// The mutex guards the generator: rand.Rand is not safe for concurrent
// use, and price queries may be issued concurrently.
type SimSource struct {
	mu    sync.Mutex
	bases map[string]float64
	rng   *rand.Rand
	now   func() time.Time
}

func NewSimSource(bases map[string]float64, rng *rand.Rand) *SimSource {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	b := make(map[string]float64, len(bases))
	for sym, base := range bases {
		b[strings.ToUpper(sym)] = base
	}
	return &SimSource{bases: b, rng: rng, now: time.Now}
}

// uniform draws from U(lo, hi). Callers must hold s.mu.
func (s *SimSource) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

func (s *SimSource) CurrentPrice(symbol string) (Quote, error) {
	symbol = strings.ToUpper(symbol)

	s.mu.Lock()
	defer s.mu.Unlock()

	base, ok := s.bases[symbol]
	if !ok {
		return Quote{}, fmt.Errorf("current price %s: %w", symbol, ErrSymbolNotFound)
	}

	return Quote{
		Symbol:    symbol,
		Price:     base * (1 + s.uniform(-0.02, 0.02)),
		Change24h: s.uniform(-5, 5),
		Time:      s.now().UTC(),
	}, nil
}

// Candles generates count candles ending at the current time. The walk
// starts from the base price: each candle opens at the previous close,
// closes at up to ±2% away, and stretches its high/low up to 1% beyond
// the open/close range.
func (s *SimSource) Candles(symbol string, timeframe string, count int) ([]Candle, error) {
	symbol = strings.ToUpper(symbol)
	if count <= 0 {
		count = 24
	}
	interval := TimeframeDuration(timeframe)

	s.mu.Lock()
	defer s.mu.Unlock()

	base, ok := s.bases[symbol]
	if !ok {
		return nil, fmt.Errorf("candles %s: %w", symbol, ErrSymbolNotFound)
	}

	now := s.now().UTC()
	price := base
	candles := make([]Candle, 0, count)

	for i := count - 1; i >= 0; i-- {
		open := price
		close := open * (1 + s.uniform(-0.02, 0.02))
		high := max(open, close) * (1 + s.uniform(0, 0.01))
		low := min(open, close) * (1 - s.uniform(0, 0.01))

		candles = append(candles, Candle{
			Time:   now.Add(-time.Duration(i) * interval),
			Open:   open,
			High:   high,
			Low:    low,
			Close:  close,
			Volume: base * s.uniform(100, 1000),
		})
		price = close
	}

	return candles, nil
}

// Symbols returns the known symbols in sorted order.
func (s *SimSource) Symbols() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, 0, len(s.bases))
	for sym := range s.bases {
		out = append(out, sym)
	}
	sort.Strings(out)
	return out
}

// Ticker is one row of the market overview.
type Ticker struct {
	Symbol    string
	Price     float64
	Change24h float64
	Volume24h float64
	MarketCap float64
}

// Overview returns a simulated ticker per symbol, largest market cap
// first, plus the total market cap.
func (s *SimSource) Overview() ([]Ticker, float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tickers := make([]Ticker, 0, len(s.bases))
	var total float64

	// Iterate in sorted order so ticker generation is reproducible for
	// a seeded generator.
	syms := make([]string, 0, len(s.bases))
	for sym := range s.bases {
		syms = append(syms, sym)
	}
	sort.Strings(syms)

	for _, sym := range syms {
		base := s.bases[sym]
		t := Ticker{
			Symbol:    sym,
			Price:     base * (1 + s.uniform(-0.02, 0.02)),
			Change24h: s.uniform(-5, 5),
			Volume24h: base * s.uniform(1e6, 1e8),
			MarketCap: base * s.uniform(1e9, 1e12),
		}
		tickers = append(tickers, t)
		total += t.MarketCap
	}

	sort.Slice(tickers, func(i, j int) bool {
		return tickers[i].MarketCap > tickers[j].MarketCap
	})
	return tickers, total
}

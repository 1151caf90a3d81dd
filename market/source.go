package market

import (
	"errors"
	"time"
)

var (
	// ErrSymbolNotFound means the symbol is not known to the source.
	ErrSymbolNotFound = errors.New("symbol not found")

	// ErrSourceUnavailable means the source itself failed. A networked
	// source maps its transport and timeout errors onto this.
	ErrSourceUnavailable = errors.New("price source unavailable")
)

// Quote is the current market state of a single symbol.
type Quote struct {
	Symbol    string
	Price     float64
	Change24h float64 // percent
	Time      time.Time
}

// PriceSource supplies current prices and historical candles. Calls
// are independent per symbol; a failure for one symbol must not affect
// requests for others.
type PriceSource interface {
	// CurrentPrice returns the latest quote for symbol.
	CurrentPrice(symbol string) (Quote, error)

	// Candles returns count candles for symbol at the given timeframe,
	// oldest first, the most recent candle last.
	Candles(symbol string, timeframe string, count int) ([]Candle, error)
}

package market

import "time"

// Candle represents OHLCV (Open, High, Low, Close, Volume) candlestick
// data for one time interval. Candles are value types and are never
// mutated after creation.
type Candle struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Closes extracts the closing prices from candles, oldest first.
func Closes(candles []Candle) []float64 {
	out := make([]float64, len(candles))
	for i, c := range candles {
		out[i] = c.Close
	}
	return out
}

// Package indicators provides technical analysis indicators computed
// from closing prices, oldest first.
package indicators

import (
	"fmt"
	"math"
)

// History is how many candles callers should fetch so every indicator
// in this package has a fully populated window.
const History = 50

// SMA returns the simple moving average of the last period closes.
func SMA(closes []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, fmt.Errorf("period must be positive, got %d", period)
	}
	if len(closes) < period {
		return 0, fmt.Errorf("not enough closes: need %d, got %d", period, len(closes))
	}

	sum := 0.0
	for _, c := range closes[len(closes)-period:] {
		sum += c
	}
	return sum / float64(period), nil
}

// EMA returns the exponential moving average, seeded with the SMA of
// the first period closes. With fewer than period closes it
// degenerates to the last close; there is no partial-period estimate.
func EMA(closes []float64, period int) float64 {
	if len(closes) == 0 {
		return 0
	}
	if period <= 0 || len(closes) < period {
		return closes[len(closes)-1]
	}
	series := emaSeries(closes, period)
	return series[len(series)-1]
}

// emaSeries computes the EMA recurrence over values, one output per
// index from period-1 onward. Requires len(values) >= period.
func emaSeries(values []float64, period int) []float64 {
	k := 2.0 / float64(period+1)

	sum := 0.0
	for _, v := range values[:period] {
		sum += v
	}
	ema := sum / float64(period)

	out := make([]float64, 0, len(values)-period+1)
	out = append(out, ema)
	for _, v := range values[period:] {
		ema = v*k + ema*(1-k)
		out = append(out, ema)
	}
	return out
}

// RSI returns the relative strength index over the last period deltas.
// Fewer than period+1 closes yields the neutral value 50; zero average
// loss yields 100.
func RSI(closes []float64, period int) float64 {
	if period <= 0 {
		period = 14
	}
	if len(closes) < period+1 {
		return 50
	}

	var gains, losses float64
	for i := len(closes) - period; i < len(closes); i++ {
		delta := closes[i] - closes[i-1]
		if delta > 0 {
			gains += delta
		} else {
			losses += -delta
		}
	}

	avgGain := gains / float64(period)
	avgLoss := losses / float64(period)
	if avgLoss == 0 {
		return 100
	}

	rs := avgGain / avgLoss
	return 100 - 100/(1+rs)
}

// MACDResult holds the three MACD outputs.
type MACDResult struct {
	Line      float64
	Signal    float64
	Histogram float64
}

// MACD computes the moving average convergence divergence: line =
// EMA(12) - EMA(26), signal = 9-period EMA of the line, histogram =
// line - signal. With too little history for the signal window the
// signal collapses to the line and the histogram to zero.
func MACD(closes []float64) MACDResult {
	line := EMA(closes, 12) - EMA(closes, 26)
	if len(closes) < 26 {
		return MACDResult{Line: line, Signal: line}
	}

	// The MACD series exists where both EMAs do, from index 25 on.
	e12 := emaSeries(closes, 12)
	e26 := emaSeries(closes, 26)
	offset := len(e12) - len(e26)

	macd := make([]float64, len(e26))
	for i := range e26 {
		macd[i] = e12[i+offset] - e26[i]
	}

	signal := macd[len(macd)-1]
	if len(macd) >= 9 {
		s := emaSeries(macd, 9)
		signal = s[len(s)-1]
	}

	return MACDResult{Line: line, Signal: signal, Histogram: line - signal}
}

// Bands holds Bollinger band levels.
type Bands struct {
	Middle float64
	Upper  float64
	Lower  float64
}

// Bollinger computes bands at width population standard deviations
// around the period SMA.
func Bollinger(closes []float64, period int, width float64) (Bands, error) {
	middle, err := SMA(closes, period)
	if err != nil {
		return Bands{}, err
	}

	var variance float64
	for _, c := range closes[len(closes)-period:] {
		d := c - middle
		variance += d * d
	}
	variance /= float64(period)

	band := width * math.Sqrt(variance)
	return Bands{Middle: middle, Upper: middle + band, Lower: middle - band}, nil
}

package engine

import (
	"strings"
	"time"

	"github.com/rustyeddy/papertrade/indicators"
	"github.com/rustyeddy/papertrade/market"
)

// Price returns the current quote for symbol.
func (e *Engine) Price(symbol string) Result {
	q, err := e.source.CurrentPrice(symbol)
	if err != nil {
		return fail("price fetch failed: %v", err)
	}
	return ok(map[string]any{
		"symbol":     q.Symbol,
		"price":      round2(q.Price),
		"change_24h": round2(q.Change24h),
		"timestamp":  isoTime(q.Time),
	})
}

// Candles returns count OHLCV candles for symbol, oldest first.
func (e *Engine) Candles(symbol, timeframe string, count int) Result {
	cs, err := e.source.Candles(symbol, timeframe, count)
	if err != nil {
		return fail("candle fetch failed: %v", err)
	}

	out := make([]map[string]any, len(cs))
	for i, c := range cs {
		out[i] = map[string]any{
			"timestamp": isoTime(c.Time),
			"open":      round2(c.Open),
			"high":      round2(c.High),
			"low":       round2(c.Low),
			"close":     round2(c.Close),
			"volume":    round2(c.Volume),
		}
	}

	return ok(map[string]any{
		"symbol":    strings.ToUpper(symbol),
		"timeframe": timeframe,
		"candles":   out,
		"count":     len(out),
	})
}

// Indicators evaluates the named indicators for symbol. All requests
// share one candle fetch of indicators.History bars, so every window
// is fully populated and the source is hit exactly once.
func (e *Engine) Indicators(symbol, timeframe string, names []string) Result {
	cs, err := e.source.Candles(symbol, timeframe, indicators.History)
	if err != nil {
		return fail("indicator calculation failed: %v", err)
	}
	closes := market.Closes(cs)

	vals := map[string]any{}
	for _, name := range names {
		switch strings.ToLower(name) {
		case "sma", "sma_20":
			if v, err := indicators.SMA(closes, 20); err == nil {
				vals["sma_20"] = round2(v)
			}
		case "ema", "ema_12":
			vals["ema_12"] = round2(indicators.EMA(closes, 12))
		case "rsi", "rsi_14":
			vals["rsi_14"] = round2(indicators.RSI(closes, 14))
		case "macd":
			m := indicators.MACD(closes)
			vals["macd"] = map[string]any{
				"macd_line": round2(m.Line),
				"signal":    round2(m.Signal),
				"histogram": round2(m.Histogram),
			}
		case "bollinger":
			if b, err := indicators.Bollinger(closes, 20, 2); err == nil {
				vals["bollinger"] = map[string]any{
					"middle": round2(b.Middle),
					"upper":  round2(b.Upper),
					"lower":  round2(b.Lower),
				}
			}
		}
	}

	return ok(map[string]any{
		"symbol":        strings.ToUpper(symbol),
		"timeframe":     timeframe,
		"indicators":    vals,
		"calculated_at": isoTime(time.Now()),
	})
}

// Overview summarizes the whole simulated market. It is only available
// when the price source supports it.
func (e *Engine) Overview() Result {
	type overviewer interface {
		Overview() ([]market.Ticker, float64)
	}

	src, okSrc := e.source.(overviewer)
	if !okSrc {
		return fail("market overview not supported by this price source")
	}

	tickers, total := src.Overview()
	out := make([]map[string]any, len(tickers))
	for i, tk := range tickers {
		out[i] = map[string]any{
			"symbol":     tk.Symbol,
			"price":      round2(tk.Price),
			"change_24h": round2(tk.Change24h),
			"volume_24h": round2(tk.Volume24h),
			"market_cap": round2(tk.MarketCap),
		}
	}

	return ok(map[string]any{
		"tickers":          out,
		"total_market_cap": round2(total),
		"updated_at":       isoTime(time.Now()),
	})
}

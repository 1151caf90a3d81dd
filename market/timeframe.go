package market

import "time"

// timeframes maps the supported candle timeframe names to their
// interval length.
var timeframes = map[string]time.Duration{
	"1m":  time.Minute,
	"5m":  5 * time.Minute,
	"15m": 15 * time.Minute,
	"1h":  time.Hour,
	"4h":  4 * time.Hour,
	"1d":  24 * time.Hour,
}

// TimeframeDuration returns the interval for a timeframe name. Unknown
// names fall back to one hour.
func TimeframeDuration(name string) time.Duration {
	if d, ok := timeframes[name]; ok {
		return d
	}
	return time.Hour
}

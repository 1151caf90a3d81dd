package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

var priceCmd = &cobra.Command{
	Use:   "price SYMBOL",
	Short: "Show the current price for a symbol",
	Long: `Fetch the current simulated quote for a symbol.

Example:
  papertrade price BTC/USDT`,
	Args: cobra.ExactArgs(1),
	RunE: runPrice,
}

var candlesCmd = &cobra.Command{
	Use:   "candles SYMBOL",
	Short: "Show OHLCV candles for a symbol",
	Long: `Fetch historical OHLCV candles for a symbol, oldest first.

Examples:
  papertrade candles BTC/USDT
  papertrade candles ETH/USDT --timeframe 4h --count 48`,
	Args: cobra.ExactArgs(1),
	RunE: runCandles,
}

var indicatorsCmd = &cobra.Command{
	Use:   "indicators SYMBOL",
	Short: "Calculate technical indicators for a symbol",
	Long: `Calculate technical indicators over recent candles.

Supported indicators: sma, ema, rsi, macd, bollinger.

Examples:
  papertrade indicators BTC/USDT
  papertrade indicators ETH/USDT --names rsi,macd --timeframe 4h`,
	Args: cobra.ExactArgs(1),
	RunE: runIndicators,
}

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Show a market-wide overview",
	Long: `Summarize every symbol in the simulated market with price,
24h change, volume and market cap.

Example:
  papertrade overview`,
	RunE: runOverview,
}

var (
	candleTimeframe    string
	candleCount        int
	indicatorTimeframe string
	indicatorNames     string
)

func init() {
	rootCmd.AddCommand(priceCmd)
	rootCmd.AddCommand(candlesCmd)
	rootCmd.AddCommand(indicatorsCmd)
	rootCmd.AddCommand(overviewCmd)

	candlesCmd.Flags().StringVarP(&candleTimeframe, "timeframe", "t", "1h", "candle timeframe (1m, 5m, 15m, 1h, 4h, 1d)")
	candlesCmd.Flags().IntVarP(&candleCount, "count", "n", 24, "number of candles")
	indicatorsCmd.Flags().StringVarP(&indicatorTimeframe, "timeframe", "t", "1h", "candle timeframe (1m, 5m, 15m, 1h, 4h, 1d)")
	indicatorsCmd.Flags().StringVar(&indicatorNames, "names", "sma,ema,rsi,macd,bollinger", "comma-separated indicator names")
}

func runPrice(cmd *cobra.Command, args []string) error {
	e, err := newEngine()
	if err != nil {
		return err
	}
	defer e.Close()

	return printResult(e.Price(args[0]))
}

func runCandles(cmd *cobra.Command, args []string) error {
	e, err := newEngine()
	if err != nil {
		return err
	}
	defer e.Close()

	return printResult(e.Candles(args[0], candleTimeframe, candleCount))
}

func runIndicators(cmd *cobra.Command, args []string) error {
	e, err := newEngine()
	if err != nil {
		return err
	}
	defer e.Close()

	names := strings.Split(indicatorNames, ",")
	for i := range names {
		names[i] = strings.TrimSpace(names[i])
	}
	return printResult(e.Indicators(args[0], indicatorTimeframe, names))
}

func runOverview(cmd *cobra.Command, args []string) error {
	e, err := newEngine()
	if err != nil {
		return err
	}
	defer e.Close()

	return printResult(e.Overview())
}

package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/rustyeddy/papertrade/config"
	"github.com/rustyeddy/papertrade/engine"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "papertrade",
	Short: "A simulated trading portfolio and market analytics engine",
	Long: `Papertrade is a paper-trading simulator and market analytics engine written in Go.

It provides tools for:
  - Simulated prices and OHLCV candles for a configurable symbol universe
  - Technical indicators (SMA, EMA, RSI, MACD, Bollinger Bands)
  - A cash-backed position ledger with long and short positions
  - Performance metrics, allocation analysis and risk limit checks
  - One-shot price alerts
  - Trade journaling to CSV or SQLite

Complete documentation is available at https://github.com/rustyeddy/papertrade`,
}

var cfgFile string

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is built-in settings)")
}

// loadConfig returns the configuration from --config, or the defaults
// when no file was given.
func loadConfig() (*config.Config, error) {
	if cfgFile == "" {
		return config.Default(), nil
	}
	cfg, err := config.LoadFromFile(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// newEngine builds an engine from the active configuration.
func newEngine() (*engine.Engine, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return engine.New(cfg)
}

// printResult renders an engine result as indented JSON on stdout.
// Failed operations become a non-zero exit through the returned error.
func printResult(res engine.Result) error {
	out, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	if !res.Success {
		return fmt.Errorf("%s", res.Error)
	}
	return nil
}

package cmd

import (
	"fmt"

	"github.com/rustyeddy/papertrade/portfolio"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a scripted paper-trading session",
	Long: `Run a scripted session against a fresh portfolio to show the
full workflow.

The session:
  1. Quotes a couple of symbols
  2. Opens a long and a short position
  3. Marks the open positions to market
  4. Closes both positions at simulated prices
  5. Reports performance metrics, allocation and risk compliance
  6. Sets a price alert and checks it

Every step prints the JSON result envelope.

Example:
  papertrade demo`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	e, err := newEngine()
	if err != nil {
		return err
	}
	defer e.Close()

	step := func(title string) { fmt.Printf("\n=== %s ===\n", title) }

	step("Quotes")
	if err := printResult(e.Price("BTC/USDT")); err != nil {
		return err
	}
	if err := printResult(e.Price("ETH/USDT")); err != nil {
		return err
	}

	step("Open positions")
	btc := e.Price("BTC/USDT")
	eth := e.Price("ETH/USDT")
	if !btc.Success || !eth.Success {
		return fmt.Errorf("quote failed")
	}
	btcPrice := btc.Data["price"].(float64)
	ethPrice := eth.Data["price"].(float64)

	if err := printResult(e.Open(portfolio.OpenRequest{
		Symbol:   "BTC/USDT",
		Side:     portfolio.Long,
		Quantity: 0.02,
		Price:    btcPrice,
	})); err != nil {
		return err
	}
	if err := printResult(e.Open(portfolio.OpenRequest{
		Symbol:   "ETH/USDT",
		Side:     portfolio.Short,
		Quantity: 0.5,
		Price:    ethPrice,
	})); err != nil {
		return err
	}

	step("Positions marked to market")
	if err := printResult(e.PositionsLive()); err != nil {
		return err
	}

	step("Indicators")
	if err := printResult(e.Indicators("BTC/USDT", "1h", []string{"sma", "rsi", "macd"})); err != nil {
		return err
	}

	step("Close positions")
	if err := printResult(e.ClosePosition("BTC/USDT", btcPrice*1.015, "take_profit")); err != nil {
		return err
	}
	if err := printResult(e.ClosePosition("ETH/USDT", ethPrice*1.01, "stop_loss")); err != nil {
		return err
	}

	step("Trade history")
	if err := printResult(e.History("", 10)); err != nil {
		return err
	}

	step("Performance metrics")
	if err := printResult(e.Metrics()); err != nil {
		return err
	}

	step("Allocation")
	if err := printResult(e.Allocation()); err != nil {
		return err
	}

	step("Risk check")
	if err := printResult(e.CheckRisk()); err != nil {
		return err
	}

	step("Alerts")
	if err := printResult(e.SetAlert("BTC/USDT", "above", btcPrice*0.9)); err != nil {
		return err
	}
	if err := printResult(e.CheckAlerts()); err != nil {
		return err
	}

	fmt.Println("\n✓ Session complete.")
	return nil
}

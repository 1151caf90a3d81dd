package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := map[string]func(*Config){
		"zero balance":         func(c *Config) { c.Account.Balance = 0 },
		"no symbols":           func(c *Config) { c.Market.Symbols = nil },
		"negative base price":  func(c *Config) { c.Market.Symbols["BTC/USDT"] = -1 },
		"position pct too big": func(c *Config) { c.Risk.MaxPositionPct = 1.5 },
		"zero drawdown pct":    func(c *Config) { c.Risk.MaxDrawdownPct = 0 },
		"unknown journal type": func(c *Config) { c.Journal.Type = "postgres" },
		"csv without file":     func(c *Config) { c.Journal.Type = "csv" },
		"sqlite without path":  func(c *Config) { c.Journal.Type = "sqlite" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadFromYAMLFile(t *testing.T) {
	raw := `
account:
  currency: USDT
  balance: 25000
market:
  symbols:
    BTC/USDT: 67500
    ETH/USDT: 3850
  seed: 42
risk:
  max_position_pct: 0.25
  max_drawdown_pct: 0.15
journal:
  type: csv
  trades_file: ./trades.csv
`
	path := filepath.Join(t.TempDir(), "papertrade.yaml")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 25000.0, cfg.Account.Balance)
	assert.Equal(t, int64(42), cfg.Market.Seed)
	assert.Equal(t, 67500.0, cfg.Market.Symbols["BTC/USDT"])
	assert.Equal(t, 0.25, cfg.Risk.MaxPositionPct)
	assert.Equal(t, "csv", cfg.Journal.Type)
}

func TestLoadFromJSONFile(t *testing.T) {
	cfg := Default()
	cfg.Market.Seed = 7

	path := filepath.Join(t.TempDir(), "papertrade.json")
	require.NoError(t, cfg.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("account:\n  balance: -5\n"), 0644))

	_, err := LoadFromFile(path)
	assert.Error(t, err)
}

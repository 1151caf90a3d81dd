package portfolio

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openPosition(t *testing.T, l *Ledger, symbol string, qty, price float64, side Side) Position {
	t.Helper()
	pos, err := l.Open(OpenRequest{Symbol: symbol, Quantity: qty, Price: price, Side: side})
	require.NoError(t, err)
	return pos
}

func TestOpenDebitsBalance(t *testing.T) {
	l := NewLedger(10000)

	pos := openPosition(t, l, "btc/usdt", 0.1, 50000, Long)

	assert.Equal(t, "BTC/USDT", pos.Symbol)
	assert.InDelta(t, 5000.0, l.Balance(), 1e-9)
	assert.Len(t, l.OpenPositions(), 1)
}

func TestOpenDefaultsToLong(t *testing.T) {
	l := NewLedger(10000)

	pos, err := l.Open(OpenRequest{Symbol: "ETH/USDT", Quantity: 1, Price: 3000})
	require.NoError(t, err)
	assert.Equal(t, Long, pos.Side)
}

func TestOpenRejectsDuplicate(t *testing.T) {
	l := NewLedger(10000)
	openPosition(t, l, "BTC/USDT", 0.05, 50000, Long)
	balance := l.Balance()

	_, err := l.Open(OpenRequest{Symbol: "BTC/USDT", Quantity: 0.01, Price: 50000})
	assert.True(t, errors.Is(err, ErrDuplicatePosition))

	// Rejection must not touch state.
	assert.Equal(t, balance, l.Balance())
	assert.Len(t, l.OpenPositions(), 1)
}

func TestOpenRejectsInsufficientBalance(t *testing.T) {
	l := NewLedger(1000)

	_, err := l.Open(OpenRequest{Symbol: "BTC/USDT", Quantity: 1, Price: 50000})
	assert.True(t, errors.Is(err, ErrInsufficientBalance))
	assert.Equal(t, 1000.0, l.Balance())
	assert.Empty(t, l.OpenPositions())
}

func TestOpenRejectsInvalidParameters(t *testing.T) {
	l := NewLedger(10000)

	cases := []OpenRequest{
		{Symbol: "BTC/USDT", Quantity: 0, Price: 100},
		{Symbol: "BTC/USDT", Quantity: -1, Price: 100},
		{Symbol: "BTC/USDT", Quantity: 1, Price: 0},
		{Symbol: "BTC/USDT", Quantity: 1, Price: -5},
		{Symbol: "BTC/USDT", Quantity: 1, Price: 100, Side: "sideways"},
	}
	for _, req := range cases {
		_, err := l.Open(req)
		assert.True(t, errors.Is(err, ErrInvalidParameter), "req %+v", req)
	}
	assert.Equal(t, 10000.0, l.Balance())
}

func TestCloseRealizesLongPnL(t *testing.T) {
	t.Run("profit", func(t *testing.T) {
		l := NewLedger(10000)
		openPosition(t, l, "ETH/USDT", 2, 3000, Long)

		trade, err := l.Close("ETH/USDT", 3500, "manual")
		require.NoError(t, err)

		assert.InDelta(t, 1000.0, trade.PnL, 1e-9)             // (3500-3000)*2
		assert.InDelta(t, 100.0/6, trade.PnLPercent, 1e-9)     // 1000/6000*100
		assert.InDelta(t, 10000-6000+7000, l.Balance(), 1e-9)  // credit qty*exit
		assert.Empty(t, l.OpenPositions())
	})

	t.Run("loss", func(t *testing.T) {
		l := NewLedger(10000)
		openPosition(t, l, "ETH/USDT", 2, 3000, Long)

		trade, err := l.Close("ETH/USDT", 2500, "stop_loss")
		require.NoError(t, err)

		assert.InDelta(t, -1000.0, trade.PnL, 1e-9)
		assert.Equal(t, "stop_loss", trade.Reason)
		assert.InDelta(t, 9000.0, l.Balance(), 1e-9)
	})
}

func TestCloseRealizesShortPnL(t *testing.T) {
	t.Run("profit when price falls", func(t *testing.T) {
		l := NewLedger(10000)
		openPosition(t, l, "SOL/USDT", 10, 175, Short)

		trade, err := l.Close("SOL/USDT", 150, "")
		require.NoError(t, err)
		assert.InDelta(t, 250.0, trade.PnL, 1e-9) // (175-150)*10
		assert.Equal(t, "manual", trade.Reason)
	})

	t.Run("loss when price rises", func(t *testing.T) {
		l := NewLedger(10000)
		openPosition(t, l, "SOL/USDT", 10, 175, Short)

		trade, err := l.Close("SOL/USDT", 200, "")
		require.NoError(t, err)
		assert.InDelta(t, -250.0, trade.PnL, 1e-9)
	})
}

func TestCloseWithoutPosition(t *testing.T) {
	l := NewLedger(10000)

	_, err := l.Close("BTC/USDT", 50000, "")
	assert.True(t, errors.Is(err, ErrNoPosition))
	assert.Equal(t, 10000.0, l.Balance())
}

func TestCloseRejectsInvalidPrice(t *testing.T) {
	l := NewLedger(10000)
	openPosition(t, l, "BTC/USDT", 0.1, 50000, Long)

	_, err := l.Close("BTC/USDT", -1, "")
	assert.True(t, errors.Is(err, ErrInvalidParameter))
	assert.Len(t, l.OpenPositions(), 1)
}

func TestTradeIDsAreMonotonic(t *testing.T) {
	l := NewLedger(100000)

	for i := 0; i < 5; i++ {
		openPosition(t, l, "BTC/USDT", 0.01, 50000, Long)
		trade, err := l.Close("BTC/USDT", 51000, "")
		require.NoError(t, err)
		assert.Equal(t, int64(i+1), trade.ID)
	}
}

func TestBalanceConservation(t *testing.T) {
	l := NewLedger(10000)

	// final = initial - sum(open costs) + sum(close proceeds)
	openPosition(t, l, "BTC/USDT", 0.1, 50000, Long) // -5000
	openPosition(t, l, "ETH/USDT", 1, 3000, Short)   // -3000

	_, err := l.Close("BTC/USDT", 52000, "") // +5200
	require.NoError(t, err)
	_, err = l.Close("ETH/USDT", 2900, "") // +2900
	require.NoError(t, err)

	assert.InDelta(t, 10000-5000-3000+5200+2900, l.Balance(), 1e-9)
}

func TestTradesOrderingAndFilter(t *testing.T) {
	l := NewLedger(100000)

	openPosition(t, l, "BTC/USDT", 0.1, 50000, Long)
	_, err := l.Close("BTC/USDT", 51000, "")
	require.NoError(t, err)

	openPosition(t, l, "ETH/USDT", 1, 3000, Long)
	_, err = l.Close("ETH/USDT", 3100, "")
	require.NoError(t, err)

	openPosition(t, l, "BTC/USDT", 0.1, 51000, Long)
	_, err = l.Close("BTC/USDT", 50000, "")
	require.NoError(t, err)

	all := l.Trades("", 0)
	require.Len(t, all, 3)
	// Most recently closed first.
	assert.Equal(t, int64(3), all[0].ID)
	assert.Equal(t, int64(1), all[2].ID)

	btc := l.Trades("btc/usdt", 0)
	require.Len(t, btc, 2)
	assert.Equal(t, int64(3), btc[0].ID)

	limited := l.Trades("", 2)
	require.Len(t, limited, 2)
	assert.Equal(t, int64(3), limited[0].ID)

	// History is oldest first.
	hist := l.History()
	require.Len(t, hist, 3)
	assert.Equal(t, int64(1), hist[0].ID)
}

func TestPositionsValuation(t *testing.T) {
	l := NewLedger(20000)
	openPosition(t, l, "BTC/USDT", 0.1, 50000, Long) // cost 5000
	openPosition(t, l, "ETH/USDT", 2, 3000, Short)   // cost 6000

	v := l.Positions(map[string]float64{"BTC/USDT": 55000})

	require.Len(t, v.Positions, 2)
	assert.Equal(t, "BTC/USDT", v.Positions[0].Symbol)

	btc := v.Positions[0]
	assert.InDelta(t, 5500.0, btc.Value, 1e-9)
	assert.InDelta(t, 500.0, btc.UnrealizedPnL, 1e-9)
	assert.InDelta(t, 10.0, btc.PnLPercent, 1e-9)

	// ETH had no quote, so it marks at its entry price.
	eth := v.Positions[1]
	assert.InDelta(t, 3000.0, eth.CurrentPrice, 1e-9)
	assert.InDelta(t, 0.0, eth.UnrealizedPnL, 1e-9)

	assert.InDelta(t, 9000.0, v.CashBalance, 1e-9)
	assert.InDelta(t, 5500+6000, v.PositionValue, 1e-9)
	assert.InDelta(t, 9000+11500, v.TotalValue, 1e-9)
}

func TestSnapshotRestore(t *testing.T) {
	l := NewLedger(10000)
	openPosition(t, l, "BTC/USDT", 0.05, 50000, Long)
	openPosition(t, l, "ETH/USDT", 1, 3000, Short)
	_, err := l.Close("ETH/USDT", 2800, "take_profit")
	require.NoError(t, err)

	snap := l.Snapshot()
	restored, err := RestoreLedger(snap)
	require.NoError(t, err)

	assert.Equal(t, l.Balance(), restored.Balance())
	assert.Equal(t, l.InitialBalance(), restored.InitialBalance())
	assert.Equal(t, l.OpenPositions(), restored.OpenPositions())
	assert.Equal(t, l.History(), restored.History())

	// IDs continue where the original left off.
	openPosition(t, restored, "SOL/USDT", 1, 100, Long)
	trade, err := restored.Close("SOL/USDT", 110, "")
	require.NoError(t, err)
	assert.Equal(t, int64(2), trade.ID)
}

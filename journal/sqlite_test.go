package journal

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteJournalRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")

	j, err := NewSQLite(path)
	require.NoError(t, err)
	defer j.Close()

	rec := sampleRecord()
	require.NoError(t, j.RecordTrade(rec))

	later := rec
	later.RecordID = "01HX5ZZKBKACTAV9WEVGEMMVS0"
	later.TradeID = 2
	later.ExitTime = rec.ExitTime.Add(24 * time.Hour)
	require.NoError(t, j.RecordTrade(later))

	got, err := j.ListTradesClosedBetween(rec.ExitTime.Add(-time.Hour), rec.ExitTime.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, rec.RecordID, got[0].RecordID)
	assert.Equal(t, rec.TradeID, got[0].TradeID)
	assert.Equal(t, rec.Symbol, got[0].Symbol)
	assert.InDelta(t, rec.PnL, got[0].PnL, 1e-9)
	assert.True(t, got[0].ExitTime.Equal(rec.ExitTime))
}

func TestSQLiteJournalGetTrade(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")

	j, err := NewSQLite(path)
	require.NoError(t, err)
	defer j.Close()

	rec := sampleRecord()
	require.NoError(t, j.RecordTrade(rec))

	got, err := j.GetTrade(rec.RecordID)
	require.NoError(t, err)
	assert.Equal(t, rec.Symbol, got.Symbol)
	assert.Equal(t, rec.TradeID, got.TradeID)

	_, err = j.GetTrade("missing")
	assert.ErrorContains(t, err, "not found")
}

func TestSQLiteJournalOrdering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")

	j, err := NewSQLite(path)
	require.NoError(t, err)
	defer j.Close()

	base := sampleRecord()
	for i := 0; i < 3; i++ {
		rec := base
		rec.RecordID = base.RecordID[:len(base.RecordID)-1] + string(rune('A'+i))
		rec.TradeID = int64(3 - i)
		rec.ExitTime = base.ExitTime.Add(time.Duration(-i) * time.Hour)
		require.NoError(t, j.RecordTrade(rec))
	}

	got, err := j.ListTradesClosedBetween(base.ExitTime.Add(-24*time.Hour), base.ExitTime.Add(24*time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 3)

	// Oldest exit first regardless of insert order.
	assert.True(t, got[0].ExitTime.Before(got[1].ExitTime))
	assert.True(t, got[1].ExitTime.Before(got[2].ExitTime))
}

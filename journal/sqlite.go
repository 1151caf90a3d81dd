package journal

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteJournal struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteJournal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open journal db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create journal schema: %w", err)
	}
	return &SQLiteJournal{db: db}, nil
}

func (j *SQLiteJournal) RecordTrade(t TradeRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO trades
		(record_id, trade_id, symbol, side, quantity, entry_price, exit_price, entry_time, exit_time, pnl, pnl_percent, reason)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.RecordID, t.TradeID, t.Symbol, t.Side, t.Quantity,
		t.EntryPrice, t.ExitPrice, t.EntryTime, t.ExitTime,
		t.PnL, t.PnLPercent, t.Reason,
	)
	return err
}

// GetTrade returns a single record by its record id.
func (j *SQLiteJournal) GetTrade(recordID string) (TradeRecord, error) {
	row := j.db.QueryRow(`
		SELECT record_id, trade_id, symbol, side, quantity, entry_price, exit_price, entry_time, exit_time, pnl, pnl_percent, reason
		FROM trades
		WHERE record_id = ?`, recordID)

	var rec TradeRecord
	err := row.Scan(
		&rec.RecordID,
		&rec.TradeID,
		&rec.Symbol,
		&rec.Side,
		&rec.Quantity,
		&rec.EntryPrice,
		&rec.ExitPrice,
		&rec.EntryTime,
		&rec.ExitTime,
		&rec.PnL,
		&rec.PnLPercent,
		&rec.Reason,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return TradeRecord{}, fmt.Errorf("trade record %q not found", recordID)
		}
		return TradeRecord{}, err
	}
	return rec, nil
}

// ListTradesClosedBetween returns records whose exit_time is within
// [start, end), oldest first.
func (j *SQLiteJournal) ListTradesClosedBetween(start, end time.Time) ([]TradeRecord, error) {
	rows, err := j.db.Query(`
		SELECT record_id, trade_id, symbol, side, quantity, entry_price, exit_price, entry_time, exit_time, pnl, pnl_percent, reason
		FROM trades
		WHERE exit_time >= ? AND exit_time < ?
		ORDER BY exit_time ASC`, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TradeRecord
	for rows.Next() {
		var rec TradeRecord
		if err := rows.Scan(
			&rec.RecordID,
			&rec.TradeID,
			&rec.Symbol,
			&rec.Side,
			&rec.Quantity,
			&rec.EntryPrice,
			&rec.ExitPrice,
			&rec.EntryTime,
			&rec.ExitTime,
			&rec.PnL,
			&rec.PnLPercent,
			&rec.Reason,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}

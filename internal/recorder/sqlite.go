package recorder

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists run history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS search_history (
			id               INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp        INTEGER NOT NULL,
			weekday          TEXT NOT NULL,
			tickers          TEXT,
			starting_balance REAL,
			fee_per_trade    REAL,
			unique_days      INTEGER,
			best_buy_time    TEXT,
			best_sell_time   TEXT,
			best_total       REAL,
			worst_buy_time   TEXT,
			worst_sell_time  TEXT,
			worst_total      REAL,
			best_avg_daily   REAL,
			best_pct_daily   REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_search_ts ON search_history(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_search_weekday ON search_history(weekday)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordSearch(snap *SearchSnapshot) error {
	res := snap.Result

	var worstBuy, worstSell string
	var worstTotal sql.NullFloat64
	if res.Record.HasWorst() {
		worstBuy = res.Record.Worst.BuyTime.String()
		worstSell = res.Record.Worst.SellTime.String()
		worstTotal = sql.NullFloat64{Float64: res.Record.Worst.Total, Valid: true}
	}

	var avgDaily, pctDaily sql.NullFloat64
	if snap.BestProjection != nil {
		avgDaily = sql.NullFloat64{Float64: snap.BestProjection.AvgDailyProfit, Valid: true}
		pctDaily = sql.NullFloat64{Float64: snap.BestProjection.PctDaily, Valid: true}
	}

	_, err := r.db.Exec(`INSERT INTO search_history (
			timestamp, weekday, tickers, starting_balance, fee_per_trade, unique_days,
			best_buy_time, best_sell_time, best_total,
			worst_buy_time, worst_sell_time, worst_total,
			best_avg_daily, best_pct_daily
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().Unix(),
		res.Weekday.String(),
		strings.Join(res.Tickers, ","),
		snap.StartingBalance,
		snap.FeePerTrade,
		res.UniqueDays,
		res.Record.Best.BuyTime.String(),
		res.Record.Best.SellTime.String(),
		res.Record.Best.Total,
		worstBuy,
		worstSell,
		worstTotal,
		avgDaily,
		pctDaily,
	)
	if err != nil {
		return fmt.Errorf("insert search history: %w", err)
	}
	return nil
}

func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}

package store

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"SeasonScope/internal/model"
)

// SQLiteStore persists scan results to a SQLite database.
type SQLiteStore struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteStore opens (or creates) the SQLite database and runs
// migrations.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so the API server can read while the scanner writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite scan store opened: %s", dbPath)
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS scan_results (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			asset_class    TEXT NOT NULL,
			forward_months INTEGER NOT NULL,
			lookback_years INTEGER NOT NULL,
			ticker         TEXT NOT NULL,
			win_rate       REAL,
			avg_return     REAL,
			max_profit     REAL,
			max_loss       REAL,
			years_of_data  INTEGER,
			updated_at     INTEGER NOT NULL
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_scan_cell_ticker
			ON scan_results(asset_class, forward_months, lookback_years, ticker)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt[:40], err)
		}
	}
	return nil
}

func (s *SQLiteStore) ReplaceCell(cell Cell, entries []model.ScanMetrics) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`DELETE FROM scan_results WHERE asset_class=? AND forward_months=? AND lookback_years=?`,
		cell.AssetClass, cell.ForwardMonths, cell.LookbackYears,
	); err != nil {
		return fmt.Errorf("clear cell: %w", err)
	}

	now := time.Now().Unix()
	for _, e := range entries {
		if _, err := tx.Exec(
			`INSERT INTO scan_results
				(asset_class, forward_months, lookback_years, ticker,
				 win_rate, avg_return, max_profit, max_loss, years_of_data, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			cell.AssetClass, cell.ForwardMonths, cell.LookbackYears, e.Ticker,
			e.WinRate, e.AvgReturn, e.MaxProfit, e.MaxLoss, e.YearsOfData, now,
		); err != nil {
			return fmt.Errorf("insert %s: %w", e.Ticker, err)
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) QueryCell(cell Cell) ([]model.ScanMetrics, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(
		`SELECT ticker, win_rate, avg_return, max_profit, max_loss, years_of_data
		 FROM scan_results
		 WHERE asset_class=? AND forward_months=? AND lookback_years=?
		 ORDER BY win_rate DESC, avg_return DESC`,
		cell.AssetClass, cell.ForwardMonths, cell.LookbackYears,
	)
	if err != nil {
		return nil, fmt.Errorf("query cell: %w", err)
	}
	defer rows.Close()

	var entries []model.ScanMetrics
	for rows.Next() {
		var e model.ScanMetrics
		if err := rows.Scan(&e.Ticker, &e.WinRate, &e.AvgReturn, &e.MaxProfit, &e.MaxLoss, &e.YearsOfData); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

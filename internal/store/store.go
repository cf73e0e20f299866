package store

import "SeasonScope/internal/model"

// Cell identifies one grid cell of the precomputed scan dataset. Its
// string key form is "{assetClass}/{forward}m_{lookback}y".
type Cell struct {
	AssetClass    string
	ForwardMonths int
	LookbackYears int
}

// Store persists scan results for later querying.
type Store interface {
	// ReplaceCell atomically swaps the cell's entries for the given
	// batch; a scan run fully supersedes the previous one.
	ReplaceCell(cell Cell, entries []model.ScanMetrics) error
	// QueryCell returns the cell's entries, win rate descending.
	QueryCell(cell Cell) ([]model.ScanMetrics, error)
	Close() error
}

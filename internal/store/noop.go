package store

import "SeasonScope/internal/model"

// NoopStore discards everything; used when no database is configured.
type NoopStore struct{}

func NewNoopStore() *NoopStore { return &NoopStore{} }

func (*NoopStore) ReplaceCell(Cell, []model.ScanMetrics) error { return nil }
func (*NoopStore) QueryCell(Cell) ([]model.ScanMetrics, error) { return nil, nil }
func (*NoopStore) Close() error                                { return nil }

package model

// ScanMetrics is one ticker's forward-window seasonality record in the
// precomputed scan dataset.
type ScanMetrics struct {
	Ticker      string  `json:"ticker"`
	WinRate     float64 `json:"winRate"`
	AvgReturn   float64 `json:"avgReturn"`
	MaxProfit   float64 `json:"maxProfit"`
	MaxLoss     float64 `json:"maxLoss"`
	YearsOfData int     `json:"yearsOfData"`
}

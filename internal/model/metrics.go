package model

// FullPeriodSummary holds the headline metrics over the entire fetched
// span. All values are rounded to 2 decimals for display.
type FullPeriodSummary struct {
	AnnualizedReturn float64 `json:"annualizedReturn"` // avg seasonal path's final value, %
	PositiveYears    float64 `json:"positiveYears"`    // % of calendar years in span with positive return
	TotalPoints      float64 `json:"totalPoints"`      // last close - first close, raw units
	Volatility       float64 `json:"volatility"`       // daily log-return stdev, %
}

// RangeSummary holds the metrics recomputed for a contiguous
// trading-day sub-interval of the average seasonal path.
type RangeSummary struct {
	Start     int     `json:"start"`
	End       int     `json:"end"`
	Return    float64 `json:"return"`    // compounded between endpoints, %
	WinRate   float64 `json:"winRate"`   // % of sufficiently long years with a positive range return
	Magnitude float64 `json:"magnitude"` // simple endpoint difference, percentage points
	Flux      float64 `json:"flux"`      // stdev of path values over the interval
}

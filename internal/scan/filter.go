package scan

import (
	"sort"

	"SeasonScope/internal/model"
)

// Filter is a set of minimum thresholds applied to stored scan
// entries. The zero value passes every entry with a non-negative
// average return; set MinAvgReturn below zero to include losers.
type Filter struct {
	MinWinRate   float64
	MinAvgReturn float64
	MinYears     int
}

// Apply returns the entries meeting every threshold, sorted by win
// rate and then average return, both descending. The input slice is
// not modified.
func Apply(entries []model.ScanMetrics, f Filter) []model.ScanMetrics {
	out := make([]model.ScanMetrics, 0, len(entries))
	for _, e := range entries {
		if e.WinRate < f.MinWinRate {
			continue
		}
		if e.AvgReturn < f.MinAvgReturn {
			continue
		}
		if e.YearsOfData < f.MinYears {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].WinRate != out[j].WinRate {
			return out[i].WinRate > out[j].WinRate
		}
		return out[i].AvgReturn > out[j].AvgReturn
	})
	return out
}

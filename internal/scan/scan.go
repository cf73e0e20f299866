package scan

import (
	"fmt"
	"math"
	"sort"
	"time"

	"SeasonScope/internal/model"
)

// tradingDaysPerMonth approximates one calendar month of trading days
// for the forward window.
const tradingDaysPerMonth = 21

// Grid is the set of lookback/forward permutations a scan run covers.
type Grid struct {
	LookbackYears []int
	ForwardMonths []int
}

// DefaultGrid matches the published scan dataset: 1-3 month windows
// over 5/10/20 year lookbacks.
var DefaultGrid = Grid{
	LookbackYears: []int{20, 10, 5},
	ForwardMonths: []int{1, 2, 3},
}

// CellKey renders the dataset key for one grid cell, e.g. "2m_10y".
func CellKey(forwardMonths, lookbackYears int) string {
	return fmt.Sprintf("%dm_%dy", forwardMonths, lookbackYears)
}

// ParseCellKey is the inverse of CellKey.
func ParseCellKey(key string) (forwardMonths, lookbackYears int, err error) {
	if _, err = fmt.Sscanf(key, "%dm_%dy", &forwardMonths, &lookbackYears); err != nil {
		return 0, 0, fmt.Errorf("parse cell key %q: %w", key, err)
	}
	if forwardMonths <= 0 || lookbackYears <= 0 {
		return 0, 0, fmt.Errorf("parse cell key %q: values must be positive", key)
	}
	return forwardMonths, lookbackYears, nil
}

// ForwardMetrics measures how a ticker behaved over the same forward
// window in each past year: for every year of data before today's
// year, anchor at today's month/day in that year, walk forwardMonths
// worth of trading days ahead, and take the log return. Returns nil
// when no year has a complete window.
func ForwardMetrics(series []model.DailyPrice, forwardMonths int, today time.Time) *model.ScanMetrics {
	if len(series) == 0 {
		return nil
	}
	forwardDays := forwardMonths * tradingDaysPerMonth

	var returns []float64
	for year := series[0].Date.Year(); year < today.Year(); year++ {
		anchor := time.Date(year, today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		idx := sort.Search(len(series), func(i int) bool {
			return !series[i].Date.Before(anchor)
		})
		end := idx + forwardDays
		if end >= len(series) {
			continue
		}
		start := series[idx].Close
		if start <= 0 {
			continue
		}
		returns = append(returns, math.Log(series[end].Close/start))
	}
	if len(returns) == 0 {
		return nil
	}

	m := &model.ScanMetrics{
		YearsOfData: len(returns),
		MaxProfit:   math.Inf(-1),
		MaxLoss:     math.Inf(1),
	}
	wins := 0
	for _, lr := range returns {
		pct := (math.Exp(lr) - 1) * 100
		m.AvgReturn += pct
		if pct > 0 {
			wins++
		}
		if pct > m.MaxProfit {
			m.MaxProfit = pct
		}
		if pct < m.MaxLoss {
			m.MaxLoss = pct
		}
	}
	m.AvgReturn /= float64(len(returns))
	m.WinRate = 100 * float64(wins) / float64(len(returns))
	return m
}

// SliceLookback trims a chronological series to the trailing lookback
// window ending today.
func SliceLookback(series []model.DailyPrice, years int, today time.Time) []model.DailyPrice {
	cutoff := today.Add(-time.Duration(float64(years) * 365.25 * 24 * float64(time.Hour)))
	idx := sort.Search(len(series), func(i int) bool {
		return !series[i].Date.Before(cutoff)
	})
	return series[idx:]
}

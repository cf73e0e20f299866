package seasonality

import (
	"math"

	"SeasonScope/internal/model"
)

// RangeMetrics recomputes the summary restricted to the closed
// trading-day interval [start, end] of an existing result.
//
// The win-rate only considers years whose observed data reaches the
// end slot; shorter years are excluded from both the numerator and the
// denominator. Return compounds the average path's endpoint values,
// magnitude is their plain difference, and flux is the population
// stdev of the path values across the interval.
func RangeMetrics(res *Result, years map[int][]model.DailyPrice, start, end int) (model.RangeSummary, error) {
	if start > end || start < 0 || end >= model.TradingDays {
		return model.RangeSummary{}, ErrInvalidRange
	}

	wins, eligible := 0, 0
	for _, y := range res.Years {
		series := years[y]
		if len(series) <= end {
			continue
		}
		eligible++
		if math.Log(series[end].Close/series[start].Close) > 0 {
			wins++
		}
	}
	winRate := 0.0
	if eligible > 0 {
		winRate = 100 * float64(wins) / float64(eligible)
	}

	a, b := res.Points[start].Average, res.Points[end].Average
	ret := ((100+b)/(100+a) - 1) * 100

	// Flux: dispersion of the path itself over the interval, not of
	// returns.
	n := end - start + 1
	mean := 0.0
	for i := start; i <= end; i++ {
		mean += res.Points[i].Average
	}
	mean /= float64(n)
	variance := 0.0
	for i := start; i <= end; i++ {
		d := res.Points[i].Average - mean
		variance += d * d
	}
	variance /= float64(n)

	return model.RangeSummary{
		Start:     start,
		End:       end,
		Return:    round2(ret),
		WinRate:   round2(winRate),
		Magnitude: round2(b - a),
		Flux:      round2(math.Sqrt(variance)),
	}, nil
}

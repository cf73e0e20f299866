package seasonality

import (
	"math"
	"time"

	"SeasonScope/internal/model"
)

// MonthlyReturns averages, per calendar month, the simple return from
// the first to the last observed day of that month in each year within
// [startYear, endYear]. Year-months with fewer than 2 observed days are
// skipped; months with no qualifying year-month pairs report 0.
func MonthlyReturns(years map[int][]model.DailyPrice, startYear, endYear int) []model.MonthlyReturn {
	sums := make([]float64, 13) // 1-indexed by month
	counts := make([]int, 13)

	for y, series := range years {
		if y < startYear || y > endYear {
			continue
		}
		// series is date-ascending, so the first and last entry of each
		// month group are the month's first and last observed days.
		var first, last model.DailyPrice
		var cur time.Month
		var n int
		flush := func() {
			if n >= 2 && first.Close > 0 {
				sums[cur] += 100 * (last.Close/first.Close - 1)
				counts[cur]++
			}
		}
		for _, dp := range series {
			m := dp.Date.Month()
			if n == 0 || m != cur {
				flush()
				cur, first, n = m, dp, 0
			}
			last = dp
			n++
		}
		flush()
	}

	out := make([]model.MonthlyReturn, 12)
	for m := time.January; m <= time.December; m++ {
		avg := 0.0
		if counts[m] > 0 {
			avg = sums[m] / float64(counts[m])
		}
		out[m-1] = model.MonthlyReturn{Month: m, Average: avg}
	}
	return out
}

// WeekdayReturns buckets each consecutive-day log return (in %) of the
// full chronological series by the weekday of the later date,
// Monday through Friday. Weekend-dated entries are skipped as bucket
// keys; empty buckets report 0.
func WeekdayReturns(closes map[string]float64) []model.WeekdayReturn {
	series := SortedSeries(closes)

	sums := make(map[time.Weekday]float64, 5)
	counts := make(map[time.Weekday]int, 5)
	for i := 1; i < len(series); i++ {
		wd := series[i].Date.Weekday()
		if wd < time.Monday || wd > time.Friday {
			continue
		}
		sums[wd] += 100 * math.Log(series[i].Close/series[i-1].Close)
		counts[wd]++
	}

	out := make([]model.WeekdayReturn, 0, 5)
	for wd := time.Monday; wd <= time.Friday; wd++ {
		avg := 0.0
		if counts[wd] > 0 {
			avg = sums[wd] / float64(counts[wd])
		}
		out = append(out, model.WeekdayReturn{Weekday: wd, Average: avg})
	}
	return out
}

package seasonality

import (
	"math"
	"sort"

	"SeasonScope/internal/model"
)

// Params controls which years enter the seasonal paths.
type Params struct {
	StartYear int
	EndYear   int
	// ExcludeCurrentYear drops the most recent year in scope from the
	// cross-year average and reports it separately as the in-progress
	// overlay path.
	ExcludeCurrentYear bool
}

// Result is the trading-day-indexed output of the path calculation.
type Result struct {
	Params Params               `json:"params"`
	Points []model.SeasonalPoint `json:"points"` // exactly model.TradingDays entries
	// Years lists the year keys that participated in the average,
	// ascending.
	Years []int `json:"years"`
	// CurrentYear is the overlay year when ExcludeCurrentYear is set,
	// 0 otherwise.
	CurrentYear int `json:"currentYear,omitempty"`
}

// BuildPaths computes the average seasonal path, the detrended path,
// and each year's simple cumulative return path on the shared
// trading-day axis.
//
// Per-year paths are plain rebasing: 100*(price[i]/price[0]-1). The
// average path instead averages each slot's daily log returns across
// years and compounds the running sum back with (exp(sum)-1)*100, so
// that averaging happens in log space where returns add. Slot 0 is 0
// for every path. A slot with no contributing years gets a flat (zero)
// log return rather than failing.
func BuildPaths(years map[int][]model.DailyPrice, p Params) (*Result, error) {
	inScope := scopeYears(years, p)
	if len(inScope) == 0 {
		return nil, ErrEmptyInput
	}

	currentYear := 0
	avgYears := inScope
	if p.ExcludeCurrentYear && len(inScope) > 0 {
		currentYear = inScope[len(inScope)-1]
		avgYears = inScope[:len(inScope)-1]
	}

	points := make([]model.SeasonalPoint, model.TradingDays)
	for i := range points {
		points[i].Slot = i
	}

	// Per-year simple return paths. Every year in scope gets one, for
	// as many slots as it has data; the overlay year goes into Current
	// instead of the Years map.
	for _, y := range inScope {
		series := years[y]
		n := len(series)
		if n > model.TradingDays {
			n = model.TradingDays
		}
		base := series[0].Close
		for i := 0; i < n; i++ {
			v := 100 * (series[i].Close/base - 1)
			if y == currentYear {
				val := v
				points[i].Current = &val
				continue
			}
			if points[i].Years == nil {
				points[i].Years = make(map[int]float64)
			}
			points[i].Years[y] = v
		}
	}

	// Average path: mean daily log return per slot across the averaging
	// years, accumulated and converted back to percent.
	cum := 0.0
	for i := 1; i < model.TradingDays; i++ {
		sum, count := 0.0, 0
		for _, y := range avgYears {
			series := years[y]
			if len(series) <= i {
				continue
			}
			sum += math.Log(series[i].Close / series[i-1].Close)
			count++
		}
		if count > 0 {
			cum += sum / float64(count)
		}
		points[i].Average = (math.Exp(cum) - 1) * 100
	}

	// Detrend: subtract the straight line from (0,0) to the average
	// path's endpoint, leaving only the non-linear seasonal shape.
	last := model.TradingDays - 1
	final := points[last].Average
	for i := 1; i < model.TradingDays; i++ {
		points[i].Detrended = points[i].Average - final*float64(i)/float64(last)
	}

	return &Result{
		Params:      p,
		Points:      points,
		Years:       avgYears,
		CurrentYear: currentYear,
	}, nil
}

// scopeYears returns the non-empty years within [StartYear, EndYear],
// ascending.
func scopeYears(years map[int][]model.DailyPrice, p Params) []int {
	var keys []int
	for y, series := range years {
		if len(series) == 0 {
			continue
		}
		if y < p.StartYear || y > p.EndYear {
			continue
		}
		keys = append(keys, y)
	}
	sort.Ints(keys)
	return keys
}

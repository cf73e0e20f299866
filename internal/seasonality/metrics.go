package seasonality

import (
	"math"

	"SeasonScope/internal/model"
)

// FullPeriodMetrics derives the headline summary over the entire
// fetched span.
//
// The positive-year rate divides by every calendar year in the
// inclusive [StartYear, EndYear] span: years with too little data count
// toward the denominator but can never be wins. This differs on purpose
// from the range win-rate, which drops short years entirely.
// Volatility and total points always use the whole fetched series,
// span or not.
func FullPeriodMetrics(res *Result, years map[int][]model.DailyPrice, closes map[string]float64) model.FullPeriodSummary {
	p := res.Params

	wins := 0
	for y := p.StartYear; y <= p.EndYear; y++ {
		series := years[y]
		if len(series) < 2 {
			continue
		}
		if series[len(series)-1].Close > series[0].Close {
			wins++
		}
	}
	span := p.EndYear - p.StartYear + 1
	positive := 0.0
	if span > 0 {
		positive = 100 * float64(wins) / float64(span)
	}

	totalPoints := 0.0
	if series := SortedSeries(closes); len(series) > 0 {
		totalPoints = series[len(series)-1].Close - series[0].Close
	}

	return model.FullPeriodSummary{
		AnnualizedReturn: round2(res.Points[model.TradingDays-1].Average),
		PositiveYears:    round2(positive),
		TotalPoints:      round2(totalPoints),
		Volatility:       round2(Volatility(closes)),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

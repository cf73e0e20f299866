package seasonality

import "SeasonScope/internal/model"

// Output bundles everything a single computation produces.
type Output struct {
	Points  []model.SeasonalPoint   `json:"points"`
	Years   []int                   `json:"years"`
	Current int                     `json:"currentYear,omitempty"`
	Monthly []model.MonthlyReturn   `json:"monthly"`
	Weekday []model.WeekdayReturn   `json:"weekday"`
	Summary model.FullPeriodSummary `json:"summary"`
}

// Compute runs the whole pipeline over a raw close map: normalization,
// seasonal paths, periodic aggregations, and the full-period summary.
// It is pure: identical input always yields identical output, and no
// state survives the call.
func Compute(closes map[string]float64, p Params) (*Output, error) {
	years := GroupByYear(closes)
	res, err := BuildPaths(years, p)
	if err != nil {
		return nil, err
	}
	return &Output{
		Points:  res.Points,
		Years:   res.Years,
		Current: res.CurrentYear,
		Monthly: MonthlyReturns(years, p.StartYear, p.EndYear),
		Weekday: WeekdayReturns(closes),
		Summary: FullPeriodMetrics(res, years, closes),
	}, nil
}

package seasonality

import (
	"sort"
	"time"

	"SeasonScope/internal/model"
)

const isoDate = "2006-01-02"

// GroupByYear splits an ISO-date-keyed close map into per-year series,
// ascending by date within each year. Entries with unparsable dates or
// non-positive prices are skipped rather than propagated as zeros.
// An empty input yields an empty map; callers decide whether that is
// an error.
func GroupByYear(closes map[string]float64) map[int][]model.DailyPrice {
	years := make(map[int][]model.DailyPrice)
	for ds, close := range closes {
		if close <= 0 {
			continue
		}
		d, err := time.Parse(isoDate, ds)
		if err != nil {
			continue
		}
		y := d.Year()
		years[y] = append(years[y], model.DailyPrice{Date: d, Close: close})
	}
	for y := range years {
		s := years[y]
		sort.Slice(s, func(i, j int) bool { return s[i].Date.Before(s[j].Date) })
	}
	return years
}

// SortedSeries flattens the close map into one chronological series,
// with the same skip rules as GroupByYear.
func SortedSeries(closes map[string]float64) []model.DailyPrice {
	series := make([]model.DailyPrice, 0, len(closes))
	for ds, close := range closes {
		if close <= 0 {
			continue
		}
		d, err := time.Parse(isoDate, ds)
		if err != nil {
			continue
		}
		series = append(series, model.DailyPrice{Date: d, Close: close})
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Date.Before(series[j].Date) })
	return series
}

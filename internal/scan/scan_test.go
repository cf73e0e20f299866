package scan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SeasonScope/internal/model"
)

// block appends one DailyPrice per calendar day over [from, to],
// priced by the given function of the date.
func block(series []model.DailyPrice, from, to time.Time, price func(time.Time) float64) []model.DailyPrice {
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		series = append(series, model.DailyPrice{Date: d, Close: price(d)})
	}
	return series
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestForwardMetrics_TwoYearFixture(t *testing.T) {
	// 2018: flat through the whole window (return 0, not a win).
	// 2019: +10% over the 21-day window starting at the anchor.
	var series []model.DailyPrice
	series = block(series, day(2018, time.June, 1), day(2018, time.July, 31),
		func(time.Time) float64 { return 100 })
	jump := day(2019, time.July, 6) // anchor 06-15 + 21 entries
	series = block(series, day(2019, time.June, 1), day(2019, time.July, 31),
		func(d time.Time) float64 {
			if d.Before(jump) {
				return 100
			}
			return 110
		})

	today := day(2020, time.June, 15)
	m := ForwardMetrics(series, 1, today)
	require.NotNil(t, m)

	assert.Equal(t, 2, m.YearsOfData)
	assert.Equal(t, 50.0, m.WinRate)
	assert.InDelta(t, 5.0, m.AvgReturn, 1e-9)
	assert.InDelta(t, 10.0, m.MaxProfit, 1e-9)
	assert.InDelta(t, 0.0, m.MaxLoss, 1e-9)
}

func TestForwardMetrics_NoCompleteWindow(t *testing.T) {
	// Ten days of data cannot host a 21-day forward window.
	series := block(nil, day(2019, time.June, 10), day(2019, time.June, 19),
		func(time.Time) float64 { return 100 })
	assert.Nil(t, ForwardMetrics(series, 1, day(2020, time.June, 15)))
	assert.Nil(t, ForwardMetrics(nil, 1, day(2020, time.June, 15)))
}

func TestForwardMetrics_CurrentYearExcluded(t *testing.T) {
	// Data only in today's own year: the anchor loop stops before it.
	series := block(nil, day(2020, time.January, 1), day(2020, time.December, 31),
		func(time.Time) float64 { return 100 })
	assert.Nil(t, ForwardMetrics(series, 1, day(2020, time.June, 15)))
}

func TestSliceLookback(t *testing.T) {
	var series []model.DailyPrice
	for y := 2000; y <= 2020; y++ {
		series = append(series, model.DailyPrice{Date: day(y, time.December, 1), Close: 100})
	}
	// Cutoff falls in mid-June 2015, so the December 2015 entry is the
	// first one kept.
	got := SliceLookback(series, 5, day(2020, time.June, 15))
	require.Len(t, got, 6) // Dec 2015 .. Dec 2020
	assert.Equal(t, 2015, got[0].Date.Year())

	// A lookback longer than the data keeps everything.
	assert.Len(t, SliceLookback(series, 50, day(2020, time.June, 15)), len(series))
}

func TestCellKey_RoundTrip(t *testing.T) {
	for _, lb := range DefaultGrid.LookbackYears {
		for _, fw := range DefaultGrid.ForwardMonths {
			key := CellKey(fw, lb)
			gotFw, gotLb, err := ParseCellKey(key)
			require.NoError(t, err, key)
			assert.Equal(t, fw, gotFw)
			assert.Equal(t, lb, gotLb)
		}
	}
	for _, bad := range []string{"", "m_y", "3x_5y", "0m_5y", "-1m_5y"} {
		_, _, err := ParseCellKey(bad)
		assert.Error(t, err, bad)
	}
}

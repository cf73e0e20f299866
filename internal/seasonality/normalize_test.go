package seasonality

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByYear_SkipsBadEntries(t *testing.T) {
	closes := map[string]float64{
		"2020-01-03": 101,
		"2020-01-02": 100,
		"2020-01-06": 0,    // non-positive, skipped
		"2020-01-07": -5,   // non-positive, skipped
		"not-a-date": 99,   // unparsable, skipped
		"2021-03-01": 50,
	}
	years := GroupByYear(closes)
	require.Len(t, years, 2)
	require.Len(t, years[2020], 2)
	require.Len(t, years[2021], 1)

	// Ascending by date despite map iteration order.
	assert.Equal(t, 100.0, years[2020][0].Close)
	assert.Equal(t, 101.0, years[2020][1].Close)
}

func TestGroupByYear_EmptyInput(t *testing.T) {
	years := GroupByYear(map[string]float64{})
	assert.Empty(t, years)
}

func TestSortedSeries_Chronological(t *testing.T) {
	closes := map[string]float64{
		"2021-01-04": 100,
		"2020-01-02": 90,
		"2020-12-31": 95,
	}
	series := SortedSeries(closes)
	require.Len(t, series, 3)
	assert.Equal(t, 90.0, series[0].Close)
	assert.Equal(t, 95.0, series[1].Close)
	assert.Equal(t, 100.0, series[2].Close)
}

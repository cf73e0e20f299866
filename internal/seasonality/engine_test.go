package seasonality

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SeasonScope/internal/model"
)

func TestCompute_EndToEnd(t *testing.T) {
	closes := map[string]float64{
		"2020-01-02": 100,
		"2020-01-03": 102,
		"2021-01-04": 100,
		"2021-01-05": 101,
	}
	out, err := Compute(closes, Params{StartYear: 2020, EndYear: 2021})
	require.NoError(t, err)

	require.Len(t, out.Points, model.TradingDays)
	assert.Equal(t, []int{2020, 2021}, out.Years)

	p0, p1 := out.Points[0], out.Points[1]
	assert.Zero(t, p0.Years[2020])
	assert.Zero(t, p0.Years[2021])
	assert.InDelta(t, 2.0, p1.Years[2020], 1e-9)
	assert.InDelta(t, 1.0, p1.Years[2021], 1e-9)

	wantAvg := (math.Exp((math.Log(1.02)+math.Log(1.01))/2) - 1) * 100
	assert.InDelta(t, wantAvg, p1.Average, 1e-9)
	assert.InDelta(t, 1.499, p1.Average, 0.001)

	assert.Equal(t, 100.0, out.Summary.PositiveYears)
	assert.Equal(t, 1.0, out.Summary.TotalPoints)
	assert.InDelta(t, 1.68, out.Summary.Volatility, 0.005)
	assert.Equal(t, round2(out.Points[model.TradingDays-1].Average), out.Summary.AnnualizedReturn)

	require.Len(t, out.Monthly, 12)
	assert.Equal(t, time.January, out.Monthly[0].Month)
	assert.InDelta(t, 1.5, out.Monthly[0].Average, 1e-9)
	require.Len(t, out.Weekday, 5)
}

func TestCompute_Idempotence(t *testing.T) {
	closes := map[string]float64{
		"2019-03-04": 80,
		"2019-03-05": 84,
		"2019-03-06": 82,
		"2020-03-02": 90,
		"2020-03-03": 95,
	}
	p := Params{StartYear: 2019, EndYear: 2020}
	a, err := Compute(closes, p)
	require.NoError(t, err)
	b, err := Compute(closes, p)
	require.NoError(t, err)

	assert.Equal(t, a, b, "identical input must yield identical output")
}

func TestCompute_EmptyInput(t *testing.T) {
	_, err := Compute(map[string]float64{}, Params{StartYear: 2020, EndYear: 2021})
	assert.ErrorIs(t, err, ErrEmptyInput)
}

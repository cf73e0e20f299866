package seasonality

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVolatility_Floor(t *testing.T) {
	assert.Zero(t, Volatility(nil))
	assert.Zero(t, Volatility(map[string]float64{"2020-01-02": 100}))
	// Two days give a single return, still below the floor.
	assert.Zero(t, Volatility(map[string]float64{
		"2020-01-02": 100,
		"2020-01-03": 120,
	}))
}

func TestVolatility_HandComputed(t *testing.T) {
	closes := map[string]float64{
		"2020-01-02": 100,
		"2020-01-03": 102,
		"2020-01-06": 100,
		"2020-01-07": 101,
	}
	r1 := math.Log(102.0 / 100)
	r2 := math.Log(100.0 / 102)
	r3 := math.Log(101.0 / 100)
	mean := (r1 + r2 + r3) / 3
	variance := ((r1-mean)*(r1-mean) + (r2-mean)*(r2-mean) + (r3-mean)*(r3-mean)) / 3
	want := math.Sqrt(variance) * 100

	assert.InDelta(t, want, Volatility(closes), 1e-12)
}

func TestVolatility_IgnoresNonPositivePrices(t *testing.T) {
	closes := map[string]float64{
		"2020-01-02": 100,
		"2020-01-03": 0, // dropped, gap bridged
		"2020-01-06": 100,
		"2020-01-07": 100,
		"2020-01-08": 100,
	}
	// All surviving returns are 0, so the stdev is 0 but no NaN leaks.
	got := Volatility(closes)
	assert.False(t, math.IsNaN(got))
	assert.Zero(t, got)
}

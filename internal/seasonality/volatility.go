package seasonality

import "math"

// Volatility computes the population standard deviation of daily log
// returns over the whole chronological series, as a percentage. It is
// deliberately not annualized. Fewer than 2 usable returns yields 0.
func Volatility(closes map[string]float64) float64 {
	series := SortedSeries(closes)
	if len(series) < 3 {
		return 0
	}

	returns := make([]float64, 0, len(series)-1)
	for i := 1; i < len(series); i++ {
		returns = append(returns, math.Log(series[i].Close/series[i-1].Close))
	}
	if len(returns) < 2 {
		return 0
	}

	mean := 0.0
	for _, r := range returns {
		mean += r
	}
	mean /= float64(len(returns))

	variance := 0.0
	for _, r := range returns {
		d := r - mean
		variance += d * d
	}
	variance /= float64(len(returns))

	return math.Sqrt(variance) * 100
}

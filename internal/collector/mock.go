package collector

import (
	"math"
	"time"
)

// MockFetcher returns controllable fixed data for development and
// testing.
type MockFetcher struct {
	Closes map[string]float64 // returned verbatim when non-nil
	Err    error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyCloses(_ string, startYear int) (map[string]float64, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Closes != nil {
		return m.Closes, nil
	}
	return generateMockCloses(startYear, time.Now().UTC()), nil
}

// generateMockCloses builds a deterministic weekday series with a mild
// upward drift and a seasonal wobble, so every dataset derived from it
// is reproducible.
func generateMockCloses(startYear int, until time.Time) map[string]float64 {
	closes := make(map[string]float64)
	base := 100.0
	i := 0
	for d := time.Date(startYear, time.January, 1, 0, 0, 0, 0, time.UTC); d.Before(until); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		drift := 1 + 0.0002*float64(i)
		wobble := 1 + 0.02*math.Sin(2*math.Pi*float64(d.YearDay())/365)
		closes[d.Format("2006-01-02")] = base * drift * wobble
		i++
	}
	return closes
}

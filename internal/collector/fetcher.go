package collector

// Fetcher fetches a ticker's daily close history from a market-data
// source, keyed by ISO date (YYYY-MM-DD), from January 1st of
// startYear through the most recent session.
type Fetcher interface {
	FetchDailyCloses(symbol string, startYear int) (map[string]float64, error)
	Name() string
}

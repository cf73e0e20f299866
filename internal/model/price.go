package model

import "time"

// DailyPrice is a single closing price on a calendar date.
type DailyPrice struct {
	Date  time.Time
	Close float64
}

// PriceHistory holds the raw fetched series for one ticker.
type PriceHistory struct {
	Symbol    string
	Closes    map[string]float64 // ISO date (YYYY-MM-DD) -> close
	FetchedAt time.Time
}

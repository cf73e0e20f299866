package model

import "time"

// TradingDays is the length of the normalized trading-day axis.
// All years are aligned onto slots [0, TradingDays); years with fewer
// observed days simply stop contributing early.
const TradingDays = 251

// SeasonalPoint is one slot on the trading-day axis.
type SeasonalPoint struct {
	Slot      int     `json:"slot"`
	Average   float64 `json:"average"`
	Detrended float64 `json:"detrended"`
	// Current holds the in-progress path of the most recent year when it
	// is excluded from the average; nil otherwise or past its data.
	Current *float64 `json:"current,omitempty"`
	// Years maps year -> that year's simple cumulative return at this
	// slot. Years without data at this slot are absent.
	Years map[int]float64 `json:"years,omitempty"`
}

// MonthlyReturn is the cross-year average first-to-last-day return for
// one calendar month.
type MonthlyReturn struct {
	Month   time.Month `json:"month"`
	Average float64    `json:"average"`
}

// WeekdayReturn is the average daily log return (in %) bucketed by
// weekday, Monday through Friday.
type WeekdayReturn struct {
	Weekday time.Weekday `json:"weekday"`
	Average float64      `json:"average"`
}

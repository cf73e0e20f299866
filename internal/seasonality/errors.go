package seasonality

import "errors"

var (
	// ErrEmptyInput is returned when the normalized price data contains
	// no usable years; callers should show "no data" instead of a
	// zero-valued result.
	ErrEmptyInput = errors.New("seasonality: no usable price data")

	// ErrInvalidRange is returned for a range selection with start > end
	// or endpoints outside the trading-day axis. Selection normalizes
	// pick order, so hitting this indicates a caller bug.
	ErrInvalidRange = errors.New("seasonality: invalid trading-day range")
)

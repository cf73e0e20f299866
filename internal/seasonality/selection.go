package seasonality

// SelectionState is the phase of an interactive range selection.
type SelectionState int

const (
	SelectionEmpty SelectionState = iota
	SelectionOneEndpoint
	SelectionTwoEndpoints
)

// Selection tracks a user's range picks over the trading-day axis and
// normalizes them so start <= end regardless of click order. It is
// owned by the caller; the engine only ever reads the resolved range.
type Selection struct {
	state SelectionState
	start int
	end   int
}

// Pick records one slot pick and advances the state machine:
// Empty -> OneEndpoint on the first pick; OneEndpoint -> TwoEndpoints
// on the second, swapping endpoints if the second pick is not greater
// than the first; any pick while two endpoints are set starts a fresh
// selection at the picked slot.
func (s *Selection) Pick(slot int) {
	switch s.state {
	case SelectionEmpty:
		s.start = slot
		s.state = SelectionOneEndpoint
	case SelectionOneEndpoint:
		if slot > s.start {
			s.end = slot
		} else {
			s.end = s.start
			s.start = slot
		}
		s.state = SelectionTwoEndpoints
	case SelectionTwoEndpoints:
		*s = Selection{start: slot, state: SelectionOneEndpoint}
	}
}

// Reset discards the selection from any state.
func (s *Selection) Reset() {
	*s = Selection{}
}

// State reports the current phase.
func (s *Selection) State() SelectionState {
	return s.state
}

// Range returns the normalized [start, end] pair; ok is false unless
// both endpoints are set.
func (s *Selection) Range() (start, end int, ok bool) {
	if s.state != SelectionTwoEndpoints {
		return 0, 0, false
	}
	return s.start, s.end, true
}

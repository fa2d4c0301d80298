package timing

import (
	"fmt"
	"math"
)

// Always returns a schedule usable at any time with the given transit duration.
// This is the time-dependent form of a static edge weight.
func Always(transit int64) (Schedule, error) {
	if transit < 0 {
		return Schedule{}, fmt.Errorf("%w: d=%d", ErrNegativeDuration, transit)
	}

	return Schedule{kind: KindAlways, transit: transit}, nil
}

// Window returns a single-window schedule open during [start, start+transit).
func Window(start, transit int64) (Schedule, error) {
	if transit < 0 {
		return Schedule{}, fmt.Errorf("%w: d=%d", ErrNegativeDuration, transit)
	}

	return Schedule{kind: KindWindow, start: start, transit: transit}, nil
}

// Periodic returns a schedule opening at start and every period units after.
// A period of zero degenerates to Window(start, transit).
func Periodic(start, period, transit int64) (Schedule, error) {
	if period < 0 {
		return Schedule{}, fmt.Errorf("%w: P=%d", ErrNegativePeriod, period)
	}
	if period == 0 {
		return Window(start, transit)
	}
	if transit < 0 {
		return Schedule{}, fmt.Errorf("%w: d=%d", ErrNegativeDuration, transit)
	}

	return Schedule{kind: KindPeriodic, start: start, period: period, transit: transit}, nil
}

// Blocked returns a schedule for an edge that an obstacle enters at start and
// leaves at start+transit.
func Blocked(start, transit int64) (Schedule, error) {
	if transit < 0 {
		return Schedule{}, fmt.Errorf("%w: d=%d", ErrNegativeDuration, transit)
	}

	return Schedule{kind: KindBlocked, start: start, transit: transit}, nil
}

// FromTriple builds a schedule from the (windowStart, period, transitDuration)
// triple used by timetable inputs. period == 0 means a single window.
func FromTriple(start, period, transit int64) (Schedule, error) {
	return Periodic(start, period, transit)
}

// MustAlways is like Always but panics on invalid input.
// Intended for fixtures and examples.
func MustAlways(transit int64) Schedule {
	s, err := Always(transit)
	if err != nil {
		panic(err)
	}

	return s
}

// Wait reports how long a traveller arriving at the tail at time arrival must
// wait before departing, and whether departure is possible at all.
//
// Complexity: O(1).
func (s Schedule) Wait(arrival int64) (int64, bool) {
	switch s.kind {
	case KindWindow:
		if arrival <= s.start {
			return s.start - arrival, true
		}
		// Inside the window departure is immediate; once it closed, never again.
		if arrival < s.start+s.transit {
			return 0, true
		}

		return 0, false

	case KindPeriodic:
		if arrival <= s.start {
			return s.start - arrival, true
		}
		w := (s.start - arrival) % s.period
		if w < 0 {
			w += s.period
		}

		return w, true

	case KindBlocked:
		end := s.start + s.transit
		if arrival >= s.start && arrival < end {
			return end - arrival, true
		}

		return 0, true

	default:
		return 0, true
	}
}

// Traverse returns the time at the head for a traveller reaching the tail at
// arrival: arrival + wait + transit. ok is false when the edge can no longer
// be used, or when the result would not fit in an int64.
func (s Schedule) Traverse(arrival int64) (timeAtHead int64, ok bool) {
	wait, ok := s.Wait(arrival)
	if !ok {
		return 0, false
	}
	if wait > math.MaxInt64-s.transit {
		return 0, false
	}
	delta := wait + s.transit
	if arrival > math.MaxInt64-delta {
		return 0, false
	}

	return arrival + delta, true
}

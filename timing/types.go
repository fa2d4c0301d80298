package timing

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Schedule constructors.
var (
	// ErrNegativeDuration indicates a transit duration below zero.
	ErrNegativeDuration = errors.New("timing: transit duration must be non-negative")

	// ErrNegativePeriod indicates a repetition period below zero.
	ErrNegativePeriod = errors.New("timing: period must be non-negative")
)

// Kind enumerates the availability rules a Schedule can follow.
type Kind uint8

const (
	// KindAlways edges can be entered at any time.
	KindAlways Kind = iota

	// KindWindow edges open once, during [Start, Start+Transit).
	KindWindow

	// KindPeriodic edges open every Period units starting at Start.
	KindPeriodic

	// KindBlocked edges are closed while an obstacle occupies them,
	// during [Start, Start+Transit).
	KindBlocked
)

// String returns a lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindAlways:
		return "always"
	case KindWindow:
		return "window"
	case KindPeriodic:
		return "periodic"
	case KindBlocked:
		return "blocked"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Schedule is the availability descriptor of one edge.
//
// The zero value is an always-available edge with zero transit time.
// Fields are unexported so a Schedule cannot change once built; use the
// constructors in schedule.go.
type Schedule struct {
	kind    Kind
	start   int64 // first opening (Window, Periodic) or obstacle entry (Blocked)
	period  int64 // >0 only for KindPeriodic
	transit int64 // ≥0, travel time once departed
}

// Kind reports the availability rule.
func (s Schedule) Kind() Kind { return s.kind }

// Start reports the window start; zero for KindAlways.
func (s Schedule) Start() int64 { return s.start }

// Period reports the repetition period; zero unless KindPeriodic.
func (s Schedule) Period() int64 { return s.period }

// Transit reports the travel duration.
func (s Schedule) Transit() int64 { return s.transit }

// String renders the schedule for logs and test failures.
func (s Schedule) String() string {
	switch s.kind {
	case KindAlways:
		return fmt.Sprintf("always(d=%d)", s.transit)
	case KindPeriodic:
		return fmt.Sprintf("periodic(t0=%d,P=%d,d=%d)", s.start, s.period, s.transit)
	default:
		return fmt.Sprintf("%s(t0=%d,d=%d)", s.kind, s.start, s.transit)
	}
}

// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/timetable/timing"
)

// ScheduleFn produces the schedule of the next edge. A nil rng must be
// tolerated and should yield a deterministic fallback.
type ScheduleFn func(rng *rand.Rand) timing.Schedule

// ConstantSchedule returns s for every edge.
func ConstantSchedule(s timing.Schedule) ScheduleFn {
	return func(_ *rand.Rand) timing.Schedule { return s }
}

// AlwaysFn returns always-available edges of transit w. Panics if w < 0.
func AlwaysFn(w int64) ScheduleFn {
	return ConstantSchedule(timing.MustAlways(w))
}

// UniformAlwaysFn draws always-available transits from [min,max].
// Panics unless 0 ≤ min ≤ max.
func UniformAlwaysFn(min, max int64) ScheduleFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformAlwaysFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}
	return func(rng *rand.Rand) timing.Schedule {
		if rng == nil || max == min {
			return timing.MustAlways(min)
		}

		return timing.MustAlways(min + rng.Int63n(max-min+1))
	}
}

// RandomTimetableFn draws timetable edges: start in [0,maxStart], period in
// [0,maxPeriod] (0 yields a single window) and transit in [0,maxTransit].
// Panics on negative bounds.
func RandomTimetableFn(maxStart, maxPeriod, maxTransit int64) ScheduleFn {
	if maxStart < 0 || maxPeriod < 0 || maxTransit < 0 {
		panic(fmt.Sprintf("RandomTimetableFn: bounds must be ≥ 0, got %d,%d,%d", maxStart, maxPeriod, maxTransit))
	}
	return func(rng *rand.Rand) timing.Schedule {
		if rng == nil {
			return timing.MustAlways(defaultTransit)
		}
		t0 := rng.Int63n(maxStart + 1)
		p := rng.Int63n(maxPeriod + 1)
		d := rng.Int63n(maxTransit + 1)
		s, err := timing.Periodic(t0, p, d)
		if err != nil {
			// unreachable: all three values are non-negative
			panic(err)
		}

		return s
	}
}

// RandomBlockedFn draws obstacle-blocked edges: obstacle entry in
// [0,maxStart], transit in [0,maxTransit]. Panics on negative bounds.
func RandomBlockedFn(maxStart, maxTransit int64) ScheduleFn {
	if maxStart < 0 || maxTransit < 0 {
		panic(fmt.Sprintf("RandomBlockedFn: bounds must be ≥ 0, got %d,%d", maxStart, maxTransit))
	}
	return func(rng *rand.Rand) timing.Schedule {
		if rng == nil {
			return timing.MustAlways(defaultTransit)
		}
		s, err := timing.Blocked(rng.Int63n(maxStart+1), rng.Int63n(maxTransit+1))
		if err != nil {
			panic(err)
		}

		return s
	}
}

// SPDX-License-Identifier: MIT

package builder

import (
	"math/rand"

	"github.com/katalvlaran/timetable/timing"
)

// BuilderOption mutates builderConfig before constructors run.
type BuilderOption func(*builderConfig)

// builderConfig is resolved once per BuildGraph call and then read-only.
type builderConfig struct {
	rng        *rand.Rand
	scheduleFn ScheduleFn
}

const defaultTransit = int64(1)

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:        nil,
		scheduleFn: ConstantSchedule(timing.MustAlways(defaultTransit)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand uses r as the random source.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed uses a fresh source seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithScheduleFn draws every edge schedule from fn.
func WithScheduleFn(fn ScheduleFn) BuilderOption {
	if fn == nil {
		panic("builder: WithScheduleFn(nil)")
	}
	return func(c *builderConfig) {
		c.scheduleFn = fn
	}
}

// WithAlways gives every edge an always-available schedule of transit w.
func WithAlways(w int64) BuilderOption {
	return WithScheduleFn(AlwaysFn(w))
}

// WithUniformAlways draws always-available transits uniformly from [min,max].
func WithUniformAlways(min, max int64) BuilderOption {
	return WithScheduleFn(UniformAlwaysFn(min, max))
}

// WithRandomTimetable draws window and periodic schedules; see RandomTimetableFn.
func WithRandomTimetable(maxStart, maxPeriod, maxTransit int64) BuilderOption {
	return WithScheduleFn(RandomTimetableFn(maxStart, maxPeriod, maxTransit))
}

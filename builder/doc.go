// SPDX-License-Identifier: MIT
// Package builder assembles deterministic timetable networks for tests,
// benchmarks and examples.
//
// The package offers:
//
//   - Topology constructors (Constructor): Path, Cycle, Grid, Complete,
//     RandomSparse. Each wires the nodes of an existing core.Graph.
//   - Schedule distributions (ScheduleFn): ConstantSchedule, AlwaysFn,
//     UniformAlwaysFn, RandomTimetableFn, RandomBlockedFn.
//   - Functional options (BuilderOption): WithSeed, WithRand, WithScheduleFn,
//     and shorthands for the distributions above.
//
// Guarantees:
//
//   - Determinism: the same node count, options, seed and constructor order
//     produce identical graphs, edge order included.
//   - Option constructors panic on impossible parameters (programmer error);
//     constructors return wrapped sentinel errors.
//
// Example:
//
//	g, err := builder.BuildGraph(100, nil,
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithRandomTimetable(50, 10, 20)},
//	    builder.RandomSparse(0.05),
//	)
package builder

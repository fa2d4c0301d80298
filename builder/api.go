// SPDX-License-Identifier: MIT
// Package: timetable/builder
//
// api.go - public entry point.

package builder

import (
	"fmt"

	"github.com/katalvlaran/timetable/core"
)

// Constructor wires edges between the existing nodes of g. Constructors must
// validate early, never panic, and add edges in a deterministic order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a graph of n nodes with gopts, resolves bopts, and
// applies cons in order. Errors are wrapped as "BuildGraph: %w".
func BuildGraph(n int, gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g, err := core.NewGraph(n, gopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addEdge draws a schedule and inserts u→v, wrapping failures with method.
func addEdge(g *core.Graph, cfg builderConfig, method string, u, v int) error {
	s := cfg.scheduleFn(cfg.rng)
	if err := g.AddEdge(u, v, s); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d, %s): %w", method, u, v, s, err)
	}

	return nil
}

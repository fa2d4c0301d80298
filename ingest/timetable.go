package ingest

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/timetable/core"
	"github.com/katalvlaran/timetable/timing"
)

// edgeFunc reads the fields of one edge after "u v" and returns its schedule.
type edgeFunc func(t *tokens) (timing.Schedule, error)

// ReadTimetable parses "N M Q S" cases whose edges are "u v t0 P d".
func ReadTimetable(r io.Reader) ([]Problem, error) {
	return readIndexed(r, KindTimetable, func(t *tokens) (timing.Schedule, error) {
		var f [3]int64
		for i := range f {
			v, err := t.must()
			if err != nil {
				return timing.Schedule{}, err
			}
			f[i] = v
		}

		return timing.FromTriple(f[0], f[1], f[2])
	})
}

// ReadStatic parses "N M Q S" cases whose edges are "u v w".
func ReadStatic(r io.Reader) ([]Problem, error) {
	return readIndexed(r, KindStatic, func(t *tokens) (timing.Schedule, error) {
		w, err := t.must()
		if err != nil {
			return timing.Schedule{}, err
		}

		return timing.Always(w)
	})
}

// readIndexed drives the shared "N M Q S" layout; only the edge payload differs.
func readIndexed(r io.Reader, kind Kind, edge edgeFunc) ([]Problem, error) {
	t := newTokens(r)
	var out []Problem

	for caseNo := 1; ; caseNo++ {
		h, err := t.header(4)
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("ingest: %s case %d: %w", kind, caseNo, err)
		}
		if h[0] == 0 && h[1] == 0 && h[2] == 0 && h[3] == 0 {
			return out, nil
		}

		p, err := readIndexedCase(t, kind, h, edge)
		if err != nil {
			return nil, fmt.Errorf("ingest: %s case %d: %w", kind, caseNo, err)
		}
		out = append(out, p)
	}
}

func readIndexedCase(t *tokens, kind Kind, h []int64, edge edgeFunc) (Problem, error) {
	for i := 0; i < 3; i++ {
		if h[i] < 0 {
			return Problem{}, fmt.Errorf("header field %d: %d: %w", i+1, h[i], ErrNegativeCount)
		}
	}
	n, m, q, s := int(h[0]), int(h[1]), int(h[2]), int(h[3])
	if err := checkNode("source", s, 0, n); err != nil {
		return Problem{}, err
	}

	g, err := core.NewGraph(n, core.WithLoops())
	if err != nil {
		return Problem{}, err
	}
	for i := 0; i < m; i++ {
		u, err := t.mustInt()
		if err != nil {
			return Problem{}, err
		}
		v, err := t.mustInt()
		if err != nil {
			return Problem{}, err
		}
		sched, err := edge(t)
		if err != nil {
			return Problem{}, fmt.Errorf("edge %d: %w", i+1, err)
		}
		if err = g.AddEdge(u, v, sched); err != nil {
			return Problem{}, fmt.Errorf("edge %d: %w", i+1, err)
		}
	}

	queries, err := readQueries(t, q, n)
	if err != nil {
		return Problem{}, err
	}

	return Problem{Kind: kind, Graph: g, Source: s, Queries: queries}, nil
}

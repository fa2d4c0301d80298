package ingest

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/timetable/core"
	"github.com/katalvlaran/timetable/timing"
)

type street struct {
	u, v int
	d    int64
}

// ReadObstacle parses moving-obstacle cases until EOF.
func ReadObstacle(r io.Reader) ([]Problem, error) {
	t := newTokens(r)
	var out []Problem

	for caseNo := 1; ; caseNo++ {
		h, err := t.header(6)
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err == nil {
			var p Problem
			p, err = readObstacleCase(t, h)
			if err == nil {
				out = append(out, p)
				continue
			}
		}

		return nil, fmt.Errorf("ingest: %s case %d: %w", KindObstacle, caseNo, err)
	}
}

func readObstacleCase(t *tokens, h []int64) (Problem, error) {
	n, m := int(h[0]), int(h[1])
	a, b, k, gl := int(h[2]), int(h[3]), h[4], int(h[5])
	if n < 0 || m < 0 || gl < 0 {
		return Problem{}, fmt.Errorf("header %v: %w", h, ErrNegativeCount)
	}
	if err := checkNode("start", a, 1, n+1); err != nil {
		return Problem{}, err
	}
	if err := checkNode("goal", b, 1, n+1); err != nil {
		return Problem{}, err
	}

	route := make([]int, gl)
	for i := range route {
		v, err := t.mustInt()
		if err != nil {
			return Problem{}, err
		}
		if err = checkNode("route", v, 1, n+1); err != nil {
			return Problem{}, err
		}
		route[i] = v
	}

	streets := make([]street, m)
	for i := range streets {
		var f [3]int64
		for j := range f {
			v, err := t.must()
			if err != nil {
				return Problem{}, err
			}
			f[j] = v
		}
		streets[i] = street{u: int(f[0]), v: int(f[1]), d: f[2]}
	}

	g, err := buildStreets(n, route, streets)
	if err != nil {
		return Problem{}, err
	}

	return Problem{Kind: KindObstacle, Graph: g, Source: a, StartTime: k, Queries: []int{b}}, nil
}

// buildStreets lays out the two-way street network on nodes 0..n (0 unused)
// and blocks each street of the route while the obstacle is on it.
func buildStreets(n int, route []int, streets []street) (*core.Graph, error) {
	entry := make(map[int]int64) // street index → time the obstacle enters it
	var clock int64
	for i := 0; i+1 < len(route); i++ {
		idx := findStreet(streets, route[i], route[i+1])
		if idx < 0 {
			return nil, fmt.Errorf("leg %d→%d: %w", route[i], route[i+1], ErrBadRoute)
		}
		entry[idx] = clock
		clock += streets[idx].d
	}

	g, err := core.NewGraph(n+1, core.WithUndirected())
	if err != nil {
		return nil, err
	}
	for i, st := range streets {
		var (
			s   timing.Schedule
			err error
		)
		if at, ok := entry[i]; ok {
			s, err = timing.Blocked(at, st.d)
		} else {
			s, err = timing.Always(st.d)
		}
		if err != nil {
			return nil, fmt.Errorf("street %d: %w", i+1, err)
		}
		if err = g.AddEdge(st.u, st.v, s); err != nil {
			return nil, fmt.Errorf("street %d: %w", i+1, err)
		}
	}

	return g, nil
}

func findStreet(streets []street, x, y int) int {
	for i, st := range streets {
		if (st.u == x && st.v == y) || (st.u == y && st.v == x) {
			return i
		}
	}

	return -1
}

package ingest

import (
	"fmt"
	"io"

	"github.com/katalvlaran/timetable/core"
)

// Kind names an input format.
type Kind string

const (
	KindTimetable Kind = "timetable"
	KindStatic    Kind = "static"
	KindObstacle  Kind = "obstacle"
)

// Kinds lists every supported input format.
func Kinds() []Kind { return []Kind{KindTimetable, KindStatic, KindObstacle} }

// ParseKind validates a format name.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if string(k) == s {
			return k, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Problem is one parsed case, ready for dijkstra.Dijkstra.
type Problem struct {
	Kind      Kind
	Graph     *core.Graph
	Source    int
	StartTime int64
	Queries   []int
}

// Read parses every case of the given kind from r.
func Read(r io.Reader, kind Kind) ([]Problem, error) {
	switch kind {
	case KindTimetable:
		return ReadTimetable(r)
	case KindStatic:
		return ReadStatic(r)
	case KindObstacle:
		return ReadObstacle(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, string(kind))
	}
}

// checkNode reports an out-of-range node index the way core does.
func checkNode(what string, v, lo, hi int) error {
	if v < lo || v >= hi {
		return fmt.Errorf("%s %d not in [%d,%d): %w", what, v, lo, hi, core.ErrNodeOutOfRange)
	}

	return nil
}

// readQueries reads q node indices in [0,n).
func readQueries(t *tokens, q, n int) ([]int, error) {
	out := make([]int, q)
	for i := range out {
		v, err := t.mustInt()
		if err != nil {
			return nil, err
		}
		if err = checkNode("query", v, 0, n); err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

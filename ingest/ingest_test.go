package ingest_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/timetable/core"
	"github.com/katalvlaran/timetable/ingest"
	"github.com/katalvlaran/timetable/timing"
)

const timetableSample = `4 4 4 0
0 1 15 10 5
1 2 15 10 5
0 2 5 5 30
3 0 0 1 1
0
1
2
3
2 1 1 0
0 1 100 0 5
1
0 0 0 0
`

const staticSample = `4 3 4 0
0 1 2
1 2 2
3 0 2
0
1
2
3
2 1 1 0
0 1 100
1
0 0 0 0
`

const obstacleSample = `6 5
1 6 20 4
5 3 2 4
1 2 2
2 3 8
2 4 3
3 6 10
3 5 15
`

func TestParseKind(t *testing.T) {
	for _, k := range ingest.Kinds() {
		got, err := ingest.ParseKind(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := ingest.ParseKind("maze")
	require.ErrorIs(t, err, ingest.ErrUnknownKind)

	_, err = ingest.Read(strings.NewReader(""), ingest.Kind("maze"))
	require.ErrorIs(t, err, ingest.ErrUnknownKind)
}

func TestReadTimetable(t *testing.T) {
	ps, err := ingest.ReadTimetable(strings.NewReader(timetableSample))
	require.NoError(t, err)
	require.Len(t, ps, 2)

	p := ps[0]
	assert.Equal(t, ingest.KindTimetable, p.Kind)
	assert.Equal(t, 0, p.Source)
	assert.Equal(t, int64(0), p.StartTime)
	assert.Equal(t, []int{0, 1, 2, 3}, p.Queries)
	assert.Equal(t, 4, p.Graph.NodeCount())
	assert.Equal(t, 4, p.Graph.EdgeCount())

	edges, err := p.Graph.Neighbors(0)
	require.NoError(t, err)
	require.Len(t, edges, 2)
	assert.Equal(t, timing.KindPeriodic, edges[0].Schedule().Kind())

	// P = 0 yields a single window.
	edges, err = ps[1].Graph.Neighbors(0)
	require.NoError(t, err)
	require.Len(t, edges, 1)
	assert.Equal(t, timing.KindWindow, edges[0].Schedule().Kind())
	assert.Equal(t, []int{1}, ps[1].Queries)
}

func TestReadTimetable_EOFWithoutTerminator(t *testing.T) {
	in := "2 1 1 0\n0 1 0 0 3\n1\n"
	ps, err := ingest.Read(strings.NewReader(in), ingest.KindTimetable)
	require.NoError(t, err)
	require.Len(t, ps, 1)
}

func TestReadTimetable_Empty(t *testing.T) {
	ps, err := ingest.ReadTimetable(strings.NewReader("  \n"))
	require.NoError(t, err)
	assert.Empty(t, ps)
}

func TestReadStatic(t *testing.T) {
	ps, err := ingest.ReadStatic(strings.NewReader(staticSample))
	require.NoError(t, err)
	require.Len(t, ps, 2)

	edges, err := ps[0].Graph.Neighbors(1)
	require.NoError(t, err)
	require.Len(t, edges, 1)
	assert.Equal(t, timing.KindAlways, edges[0].Schedule().Kind())
	assert.Equal(t, int64(2), edges[0].Schedule().Transit())
}

func TestReadObstacle(t *testing.T) {
	ps, err := ingest.ReadObstacle(strings.NewReader(obstacleSample))
	require.NoError(t, err)
	require.Len(t, ps, 1)

	p := ps[0]
	assert.Equal(t, ingest.KindObstacle, p.Kind)
	assert.Equal(t, 1, p.Source)
	assert.Equal(t, int64(20), p.StartTime)
	assert.Equal(t, []int{6}, p.Queries)
	assert.Equal(t, 7, p.Graph.NodeCount())
	assert.Equal(t, 10, p.Graph.EdgeCount())

	// Route 5→3→2→4: street 3-5 entered at 0, 2-3 at 15, 2-4 at 23.
	want := map[[2]int]timing.Schedule{}
	for _, e := range p.Graph.Edges() {
		want[[2]int{e.From(), e.To()}] = e.Schedule()
	}
	assert.Equal(t, "blocked(t0=0,d=15)", want[[2]int{3, 5}].String())
	assert.Equal(t, "blocked(t0=15,d=8)", want[[2]int{2, 3}].String())
	assert.Equal(t, "blocked(t0=15,d=8)", want[[2]int{3, 2}].String())
	assert.Equal(t, "blocked(t0=23,d=3)", want[[2]int{4, 2}].String())
	assert.Equal(t, "always(d=2)", want[[2]int{1, 2}].String())
}

func TestReadErrors(t *testing.T) {
	cases := []struct {
		name string
		kind ingest.Kind
		in   string
		want error
	}{
		{"truncated edges", ingest.KindTimetable, "3 2 1 0\n0 1 0 0 1\n", ingest.ErrTruncated},
		{"truncated header", ingest.KindStatic, "3 2", ingest.ErrTruncated},
		{"bad token", ingest.KindStatic, "2 1 1 0\n0 x 3\n1\n", ingest.ErrBadInteger},
		{"negative count", ingest.KindStatic, "2 -1 1 0\n", ingest.ErrNegativeCount},
		{"source out of range", ingest.KindStatic, "2 0 0 5\n", core.ErrNodeOutOfRange},
		{"edge out of range", ingest.KindStatic, "2 1 0 0\n0 9 1\n", core.ErrNodeOutOfRange},
		{"query out of range", ingest.KindTimetable, "2 0 1 0\n7\n", core.ErrNodeOutOfRange},
		{"negative transit", ingest.KindStatic, "2 1 0 0\n0 1 -4\n", timing.ErrNegativeDuration},
		{"negative period", ingest.KindTimetable, "2 1 0 0\n0 1 0 -1 1\n", timing.ErrNegativePeriod},
		{"route without street", ingest.KindObstacle, "3 1\n1 3 0 2\n1 3\n1 2 4\n", ingest.ErrBadRoute},
		{"goal out of range", ingest.KindObstacle, "3 0\n1 4 0 0\n", core.ErrNodeOutOfRange},
		{"obstacle truncated", ingest.KindObstacle, "3 1\n1 2 0 0\n1 2\n", ingest.ErrTruncated},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ingest.Read(strings.NewReader(tc.in), tc.kind)
			require.ErrorIs(t, err, tc.want)
			assert.Contains(t, err.Error(), "case 1")
		})
	}
}

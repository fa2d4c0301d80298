package dijkstra_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/timetable/core"
	"github.com/katalvlaran/timetable/dijkstra"
	"github.com/katalvlaran/timetable/timing"
)

// DijkstraSuite exercises the search driver on small hand-built networks.
type DijkstraSuite struct {
	suite.Suite
}

func TestDijkstraSuite(t *testing.T) {
	suite.Run(t, new(DijkstraSuite))
}

// newGraph is a helper that fails the test on construction errors.
func (s *DijkstraSuite) newGraph(n int, opts ...core.GraphOption) *core.Graph {
	g, err := core.NewGraph(n, opts...)
	s.Require().NoError(err)
	return g
}

func (s *DijkstraSuite) TestValidation() {
	g := s.newGraph(2)

	_, err := dijkstra.Dijkstra(g)
	s.Require().ErrorIs(err, dijkstra.ErrNoSource)

	_, err = dijkstra.Dijkstra(nil, dijkstra.Source(0))
	s.Require().ErrorIs(err, dijkstra.ErrNilGraph)

	_, err = dijkstra.Dijkstra(g, dijkstra.Source(2))
	s.Require().ErrorIs(err, dijkstra.ErrSourceOutOfRange)

	_, err = dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithStartTime(-1))
	s.Require().ErrorIs(err, dijkstra.ErrNegativeStartTime)

	_, err = dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithStartTime(10), dijkstra.WithMaxTime(5))
	s.Require().ErrorIs(err, dijkstra.ErrBadMaxTime)
}

// Scenario: single always-available edge 0→1 with transit 5.
func (s *DijkstraSuite) TestAlwaysEdge() {
	g := s.newGraph(2)
	s.Require().NoError(g.AddStaticEdge(0, 1, 5))

	res, err := dijkstra.Dijkstra(g, dijkstra.Source(0))
	s.Require().NoError(err)

	c, ok := res.Cost(1)
	s.Require().True(ok)
	s.Equal(int64(5), c)
	s.Equal([]int{0, 1}, res.Path(1))
}

// Scenario: window [10,13) reached at time 2 waits 8 and arrives at 13.
func (s *DijkstraSuite) TestWindowWaits() {
	g := s.newGraph(3)
	s.Require().NoError(g.AddStaticEdge(2, 0, 2)) // reach node 0 at time 2
	s.Require().NoError(g.AddTimedEdge(0, 1, 10, 0, 3))

	res, err := dijkstra.Dijkstra(g, dijkstra.Source(2))
	s.Require().NoError(err)
	c, ok := res.Cost(1)
	s.Require().True(ok)
	s.Equal(int64(13), c)

	// Same edge, clock seeded directly at node 0.
	g2 := s.newGraph(2)
	s.Require().NoError(g2.AddTimedEdge(0, 1, 10, 0, 3))
	res, err = dijkstra.Dijkstra(g2, dijkstra.Source(0), dijkstra.WithStartTime(2))
	s.Require().NoError(err)
	d, ok := res.Distance(1)
	s.Require().True(ok)
	s.Equal(int64(13), d)
	c, _ = res.Cost(1)
	s.Equal(int64(11), c, "cost is elapsed time")
}

// Scenario: window [10,13) reached at time 14 is gone; no alternative exists.
func (s *DijkstraSuite) TestWindowPassedIsImpossible() {
	g := s.newGraph(3)
	s.Require().NoError(g.AddStaticEdge(2, 0, 14))
	s.Require().NoError(g.AddTimedEdge(0, 1, 10, 0, 3))

	res, err := dijkstra.Dijkstra(g, dijkstra.Source(2))
	s.Require().NoError(err)

	_, ok := res.Cost(1)
	s.False(ok)
	s.Equal(dijkstra.Impossible, res.Answer(1).String())
	s.Empty(res.Path(1))
	s.Equal(1, res.Stats().UnreachableEdges)
}

// Scenario: periodic edge t0=5, P=4, d=1.
func (s *DijkstraSuite) TestPeriodicEdge() {
	g := s.newGraph(2)
	s.Require().NoError(g.AddTimedEdge(0, 1, 5, 4, 1))

	res, err := dijkstra.Dijkstra(g, dijkstra.Source(0))
	s.Require().NoError(err)
	d, _ := res.Distance(1)
	s.Equal(int64(6), d)

	res, err = dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithStartTime(7))
	s.Require().NoError(err)
	d, _ = res.Distance(1)
	s.Equal(int64(10), d)
}

// Scenario: a disconnected node keeps the sentinel and no predecessor.
func (s *DijkstraSuite) TestDisconnectedNode() {
	g := s.newGraph(3)
	s.Require().NoError(g.AddStaticEdge(0, 1, 1))

	res, err := dijkstra.Dijkstra(g, dijkstra.Source(0))
	s.Require().NoError(err)

	d, ok := res.Distance(2)
	s.False(ok)
	s.Equal(dijkstra.Unreached, d)
	_, ok = res.Predecessor(2)
	s.False(ok)
	s.False(res.Finalized(2))
	s.Equal("Impossible", res.Answer(2).String())
}

// The timetable sample: periodic edges and one that is never usable.
func (s *DijkstraSuite) TestTimetableSample() {
	g := s.newGraph(4)
	s.Require().NoError(g.AddTimedEdge(0, 1, 15, 10, 5))
	s.Require().NoError(g.AddTimedEdge(1, 2, 15, 10, 5))
	s.Require().NoError(g.AddTimedEdge(0, 2, 5, 5, 30))
	s.Require().NoError(g.AddTimedEdge(3, 0, 0, 1, 1))

	res, err := dijkstra.Dijkstra(g, dijkstra.Source(0))
	s.Require().NoError(err)

	answers, err := res.Answers([]int{0, 1, 2, 3})
	s.Require().NoError(err)
	got := make([]string, len(answers))
	for i, a := range answers {
		got[i] = a.String()
	}
	s.Equal([]string{"0", "20", "30", "Impossible"}, got)
	s.Equal([]int{0, 1, 2}, res.Path(2))

	_, err = res.Answers([]int{4})
	s.Require().ErrorIs(err, dijkstra.ErrOutOfRange)
}

// The moving-obstacle sample: start at 20, an obstacle blocks 2-3 during [15,23).
func (s *DijkstraSuite) TestBlockedObstacle() {
	g := s.newGraph(7, core.WithUndirected())
	add := func(u, v int, sched timing.Schedule) {
		s.Require().NoError(g.AddEdge(u, v, sched))
	}
	blocked := func(t0, d int64) timing.Schedule {
		b, err := timing.Blocked(t0, d)
		s.Require().NoError(err)
		return b
	}
	add(1, 2, timing.MustAlways(2))
	add(2, 3, blocked(15, 8))
	add(2, 4, blocked(23, 3))
	add(3, 6, timing.MustAlways(10))
	add(3, 5, blocked(0, 15))

	res, err := dijkstra.Dijkstra(g, dijkstra.Source(1), dijkstra.WithStartTime(20))
	s.Require().NoError(err)
	c, ok := res.Cost(6)
	s.Require().True(ok)
	s.Equal(int64(21), c)
	s.Equal([]int{1, 2, 3, 6}, res.Path(6))
}

func (s *DijkstraSuite) TestPathOfSource() {
	g := s.newGraph(1)
	res, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithStartTime(4))
	s.Require().NoError(err)
	s.Equal([]int{0}, res.Path(0))
	c, ok := res.Cost(0)
	s.True(ok)
	s.Zero(c)
	s.Nil(res.Path(3))
	s.Equal(0, res.Source())
	s.Equal(int64(4), res.StartTime())
	s.Equal(1, res.NodeCount())
}

func (s *DijkstraSuite) TestStaleEntriesDiscarded() {
	// 0→2 is pushed at 10, then improved to 2 through 1; the 10 entry is stale.
	g := s.newGraph(3)
	s.Require().NoError(g.AddStaticEdge(0, 2, 10))
	s.Require().NoError(g.AddStaticEdge(0, 1, 1))
	s.Require().NoError(g.AddStaticEdge(1, 2, 1))

	res, err := dijkstra.Dijkstra(g, dijkstra.Source(0))
	s.Require().NoError(err)
	st := res.Stats()
	s.Equal(3, st.Finalized)
	s.Equal(1, st.StaleDiscards)
	s.Equal(4, st.Pops)
	s.Equal(3, st.Relaxations)
	p, ok := res.Predecessor(2)
	s.True(ok)
	s.Equal(1, p)
}

func (s *DijkstraSuite) TestMaxTimeCap() {
	g := s.newGraph(4)
	s.Require().NoError(g.AddStaticEdge(0, 1, 1))
	s.Require().NoError(g.AddStaticEdge(1, 2, 1))
	s.Require().NoError(g.AddStaticEdge(2, 3, 1))

	res, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithMaxTime(1))
	s.Require().NoError(err)
	_, ok := res.Cost(1)
	s.True(ok)
	_, ok = res.Cost(2)
	s.False(ok, "label 2 exceeds the cap")
	_, ok = res.Predecessor(2)
	s.False(ok)
	s.Empty(res.Path(3))
}

type recorderStub struct {
	calls int
	last  dijkstra.Stats
}

func (r *recorderStub) ObserveSearch(st dijkstra.Stats, _ time.Duration) {
	r.calls++
	r.last = st
}

func (s *DijkstraSuite) TestRecorderReceivesStats() {
	g := s.newGraph(2)
	s.Require().NoError(g.AddStaticEdge(0, 1, 3))

	rec := &recorderStub{}
	_, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithRecorder(rec))
	s.Require().NoError(err)
	s.Equal(1, rec.calls)
	s.Equal(2, rec.last.Finalized)
}

func TestSelfLoopIgnored(t *testing.T) {
	g, err := core.NewGraph(2, core.WithLoops())
	require.NoError(t, err)
	require.NoError(t, g.AddStaticEdge(0, 0, 0))
	require.NoError(t, g.AddStaticEdge(0, 1, 2))

	res, err := dijkstra.Dijkstra(g, dijkstra.Source(0))
	require.NoError(t, err)
	c, ok := res.Cost(1)
	require.True(t, ok)
	require.Equal(t, int64(2), c)
	require.Equal(t, []int{0, 1}, res.Path(1))
}

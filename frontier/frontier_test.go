package frontier_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/timetable/frontier"
)

func TestFrontier_EmptyPop(t *testing.T) {
	var f frontier.Frontier
	require.True(t, f.IsEmpty())

	_, err := f.PopMin()
	require.ErrorIs(t, err, frontier.ErrEmpty)

	_, err = f.Peek()
	require.ErrorIs(t, err, frontier.ErrEmpty)
}

func TestFrontier_PopsInTimeOrder(t *testing.T) {
	f := frontier.New(4)
	f.Push(30, 2)
	f.Push(0, 0)
	f.Push(20, 1)
	f.Push(35, 2) // stale duplicate of node 2 is kept

	require.Equal(t, 4, f.Len())

	var got []frontier.Entry
	for !f.IsEmpty() {
		e, err := f.PopMin()
		require.NoError(t, err)
		got = append(got, e)
	}

	require.Equal(t, []frontier.Entry{
		{Time: 0, Node: 0},
		{Time: 20, Node: 1},
		{Time: 30, Node: 2},
		{Time: 35, Node: 2},
	}, got)
}

func TestFrontier_TiesBreakByNode(t *testing.T) {
	f := frontier.New(0)
	f.Push(5, 9)
	f.Push(5, 3)
	f.Push(5, 7)

	e, err := f.Peek()
	require.NoError(t, err)
	require.Equal(t, 3, e.Node)

	for _, want := range []int{3, 7, 9} {
		e, err := f.PopMin()
		require.NoError(t, err)
		require.Equal(t, want, e.Node)
	}
}

func TestFrontier_RandomAgainstSort(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	f := frontier.New(128)
	want := make([]int64, 0, 500)
	for i := 0; i < 500; i++ {
		tm := rng.Int63n(1000)
		f.Push(tm, i)
		want = append(want, tm)
	}
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })

	for i := range want {
		e, err := f.PopMin()
		require.NoError(t, err)
		require.Equal(t, want[i], e.Time, "pop #%d", i)
	}
	require.True(t, f.IsEmpty())
}

func TestFrontier_Reset(t *testing.T) {
	f := frontier.New(2)
	f.Push(1, 1)
	f.Push(2, 2)
	f.Reset()
	require.True(t, f.IsEmpty())
	require.Zero(t, f.Len())

	f.Push(7, 0)
	e, err := f.PopMin()
	require.NoError(t, err)
	require.Equal(t, int64(7), e.Time)
}

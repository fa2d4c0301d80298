// Package frontier provides the min-priority structure that orders
// partially explored nodes by tentative arrival time.
//
// The Frontier performs no deduplication: the same node may be pushed many
// times with different times. The search driver discards stale entries when
// it pops them ("lazy decrease-key"), so no decrease-key operation exists here.
//
// Complexity:
//
//   - Push:    O(log n) amortized
//   - PopMin:  O(log n)
//   - IsEmpty: O(1)
//
// Ties in Time are broken by the smaller node index, which keeps every search
// over the same graph reproducible.
package frontier

import (
	"container/heap"
	"errors"
)

// ErrEmpty is returned by PopMin and Peek on an empty Frontier.
var ErrEmpty = errors.New("frontier: pop from empty frontier")

// Entry is a candidate label: a node index and an arrival time at it.
// Entries are copied in and out; the Frontier never aliases caller state.
type Entry struct {
	Time int64
	Node int
}

// Frontier is a binary min-heap of Entry values keyed by Time.
// The zero value is ready to use.
type Frontier struct {
	h entryHeap
}

// New returns an empty Frontier with room for capacity entries.
func New(capacity int) *Frontier {
	if capacity < 0 {
		capacity = 0
	}

	return &Frontier{h: make(entryHeap, 0, capacity)}
}

// Push inserts a candidate label.
func (f *Frontier) Push(time int64, node int) {
	heap.Push(&f.h, Entry{Time: time, Node: node})
}

// PopMin removes and returns the entry with the smallest Time.
func (f *Frontier) PopMin() (Entry, error) {
	if len(f.h) == 0 {
		return Entry{}, ErrEmpty
	}

	return heap.Pop(&f.h).(Entry), nil
}

// Peek returns the entry PopMin would return, without removing it.
func (f *Frontier) Peek() (Entry, error) {
	if len(f.h) == 0 {
		return Entry{}, ErrEmpty
	}

	return f.h[0], nil
}

// IsEmpty reports whether no entries remain.
func (f *Frontier) IsEmpty() bool { return len(f.h) == 0 }

// Len returns the number of entries, stale duplicates included.
func (f *Frontier) Len() int { return len(f.h) }

// Reset drops all entries but keeps the allocated storage.
func (f *Frontier) Reset() { f.h = f.h[:0] }

// entryHeap implements heap.Interface; smaller Time, then smaller Node, first.
type entryHeap []Entry

func (h entryHeap) Len() int { return len(h) }

func (h entryHeap) Less(i, j int) bool {
	if h[i].Time != h[j].Time {
		return h[i].Time < h[j].Time
	}

	return h[i].Node < h[j].Node
}

func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap) Push(x any) { *h = append(*h, x.(Entry)) }

func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]

	return e
}

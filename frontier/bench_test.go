package frontier_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/timetable/frontier"
)

func BenchmarkFrontier_PushPop(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	times := make([]int64, 1024)
	for i := range times {
		times[i] = rng.Int63n(1 << 20)
	}
	f := frontier.New(len(times))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j, tm := range times {
			f.Push(tm, j)
		}
		for !f.IsEmpty() {
			_, _ = f.PopMin()
		}
	}
}

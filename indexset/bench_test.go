package indexset_test

import (
	"testing"

	"github.com/hasbyte1/go-clique/indexset"
)

// descending returns n integers in descending order, the worst case for Add.
func descending(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = n - i
	}
	return out
}

func BenchmarkAdd(b *testing.B) {
	values := descending(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := indexset.New()
		for _, n := range values {
			s.Add(n)
		}
	}
}

func BenchmarkUpdate(b *testing.B) {
	values := descending(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		indexset.New(values...)
	}
}

func BenchmarkContains(b *testing.B) {
	s := indexset.New(descending(10_000)...)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Contains(i % 10_000)
	}
}

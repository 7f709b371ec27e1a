package purefn_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/on-the-ground/functools_go/purefn"
)

func naiveSum(items []int) int {
	sum := 0
	for _, v := range items {
		sum += v
	}
	return sum
}

func makeInts(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	return items
}

func BenchmarkNaiveSum(b *testing.B) {
	items := makeInts(1024)
	for i := 0; i < b.N; i++ {
		_ = naiveSum(items)
	}
}

func BenchmarkReduceSum(b *testing.B) {
	sizes := []int{16, 1024, 65536}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("Size_%d", size), func(b *testing.B) {
			items := makeInts(size)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = purefn.Reduce(add, slices.Values(items))
			}
		})
	}
}

func BenchmarkReduceSliceFrom(b *testing.B) {
	items := makeInts(1024)
	for i := 0; i < b.N; i++ {
		_ = purefn.ReduceSliceFrom(add, items, 0)
	}
}

package timsort

import (
	"math/rand"
	"slices"
	"testing"
)

func BenchmarkSort_Int_100(b *testing.B) {
	benchmarkSortInt(b, 100)
}

func BenchmarkSort_Int_1000(b *testing.B) {
	benchmarkSortInt(b, 1000)
}

func BenchmarkSort_Int_10000(b *testing.B) {
	benchmarkSortInt(b, 10000)
}

func BenchmarkSort_Int_100000(b *testing.B) {
	benchmarkSortInt(b, 100000)
}

func BenchmarkSlicesSort_Int_10000(b *testing.B) {
	src := randomInts(rand.New(rand.NewSource(42)), 10000, 1000000)
	data := make([]int, len(src))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, src)
		slices.Sort(data)
	}
}

func benchmarkSortInt(b *testing.B, n int) {
	src := randomInts(rand.New(rand.NewSource(42)), n, 1000000)
	data := make([]int, n)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, src)
		Sort(data)
	}
}

// Package datagen builds the synthetic posting lists used by the benchmarks
// and the bench command.
package datagen

import (
	"math/rand/v2"
	"slices"
)

// Shape is one point of an experiment sweep: Count lists of Size values each.
type Shape struct {
	Count int
	Size  int
}

// GenerateSorted returns size values drawn uniformly from [1, size*20/count],
// sorted ascending. Duplicates are kept. count < 1 is treated as 1.
func GenerateSorted(r *rand.Rand, count, size int) []uint64 {
	if size < 1 {
		return []uint64{}
	}
	count = max(count, 1)
	high := uint64(size * 20 / count)
	if high < 1 {
		high = 1
	}
	data := make([]uint64, size)
	for i := range data {
		data[i] = 1 + r.Uint64N(high)
	}
	slices.Sort(data)
	return data
}

// Generate returns count lists produced by GenerateSorted. The same seed
// always yields the same lists.
func Generate(seed uint64, count, size int) [][]uint64 {
	count = max(count, 0)
	r := rand.New(rand.NewPCG(seed, uint64(count)<<32|uint64(size)))
	result := make([][]uint64, count)
	for i := range result {
		result[i] = GenerateSorted(r, count, size)
	}
	return result
}

// Clone deep copies lists, for kernels that overwrite their input.
func Clone(lists [][]uint64) [][]uint64 {
	result := make([][]uint64, len(lists))
	for i, list := range lists {
		result[i] = slices.Clone(list)
	}
	return result
}

// Sweep returns the default experiment grid: 2 to 7 lists, each of
// 8, 64, ... 262144 values.
func Sweep() []Shape {
	var shapes []Shape
	for count := 2; count <= 7; count++ {
		for size := 8; size <= 262144; size *= 8 {
			shapes = append(shapes, Shape{Count: count, Size: size})
		}
	}
	return shapes
}

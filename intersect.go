package intersect

import "slices"

type pairFunc func(a, b, out []uint64) int

// IntersectMany folds seqs into their common intersection with kernel k.
//
// seqs is reordered in place (sorted, then the second entry swapped with the
// last) so that the first folds are the ones most likely to empty the
// result. The lists themselves are never written. The fold stops as soon as
// the running result is empty.
func IntersectMany(seqs [][]uint64, k Kernel) []uint64 {
	return intersectMany(seqs, k.Intersect)
}

func intersectMany(seqs [][]uint64, intersect pairFunc) []uint64 {
	if len(seqs) == 0 {
		return []uint64{}
	}
	for _, seq := range seqs {
		if len(seq) == 0 {
			return []uint64{}
		}
	}
	if len(seqs) == 1 {
		return slices.Clone(seqs[0])
	}

	slices.SortFunc(seqs, func(a, b []uint64) int {
		return slices.Compare(a, b)
	})
	last := len(seqs) - 1
	seqs[1], seqs[last] = seqs[last], seqs[1]

	result := slices.Clone(seqs[0])
	for _, seq := range seqs[1:] {
		n := intersect(result, seq, result)
		result = result[:n]
		if n == 0 {
			break
		}
	}
	return result
}

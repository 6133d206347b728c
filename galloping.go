package intersect

// GallopingAdvanceUntil has the same contract as BinaryAdvanceUntil, but
// brackets the target by doubling a span from the element after pos before
// binary searching inside the bracket. A skip over a gap of g elements costs
// O(log g) instead of O(log n).
//
// Based on code by O. Kaser.
func GallopingAdvanceUntil(array []uint64, pos int, target uint64) int {
	length := len(array)
	lower := pos + 1
	// sequential case
	if lower >= length || array[lower] >= target {
		return lower
	}

	span := 1
	for lower+span < length && array[lower+span] < target {
		span *= 2
	}
	upper := length - 1
	if lower+span < length {
		upper = lower + span
	}
	if array[upper] < target {
		return length
	}

	// array[lower+span/2] < target was seen while doubling
	lower += span / 2
	for lower+1 != upper {
		mid := (lower + upper) / 2
		if array[mid] < target {
			lower = mid
		} else {
			upper = mid
		}
	}
	return upper
}

// gallopingIntersection walks the smaller list and gallops through the
// larger one. Operands are swapped when the larger list comes first.
func gallopingIntersection(small, large, out []uint64) int {
	if len(large) < len(small) {
		small, large = large, small
	}
	if len(small) == 0 {
		return 0
	}
	var count, k1, k2 int
	for {
		if large[k1] < small[k2] {
			k1 = GallopingAdvanceUntil(large, k1, small[k2])
			if k1 == len(large) {
				return count
			}
		}
		// After a match, large[k1] >= small[k2] already holds, so the
		// check above is skipped and the match test runs again directly.
		for small[k2] >= large[k1] {
			out[count] = small[k2]
			count++
			k2++
			if k2 == len(small) {
				return count
			}
			k1 = GallopingAdvanceUntil(large, k1, small[k2])
			if k1 == len(large) {
				return count
			}
		}
		k2++
		if k2 == len(small) {
			return count
		}
	}
}

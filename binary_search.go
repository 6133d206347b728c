package intersect

// BinaryAdvanceUntil returns the smallest index greater than pos whose value
// is >= target, or len(array) when there is none. In a run of equal values
// the first one is returned. The element right after
// pos is checked before falling back to a binary search over
// [pos+1, len(array)-1]. Pass pos = -1 to search the whole array.
func BinaryAdvanceUntil(array []uint64, pos int, target uint64) int {
	length := len(array)
	lower := pos + 1
	if lower >= length || array[lower] >= target {
		return lower
	}
	upper := length - 1
	if array[upper] < target {
		return length
	}
	// array[upper] >= target
	for lower < upper {
		mid := (lower + upper) / 2
		if array[mid] < target {
			lower = mid + 1
		} else {
			upper = mid
		}
	}
	return upper
}

func binarySearchIntersection(a, b, out []uint64) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	var answer, k1, k2 int
	for {
		if a[k1] < b[k2] {
			k1 = BinaryAdvanceUntil(a, k1, b[k2])
			if k1 == len(a) {
				return answer
			}
		}
		if b[k2] < a[k1] {
			k2 = BinaryAdvanceUntil(b, k2, a[k1])
			if k2 == len(b) {
				return answer
			}
		} else {
			out[answer] = a[k1]
			answer++
			k1++
			if k1 == len(a) {
				return answer
			}
			k2++
			if k2 == len(b) {
				return answer
			}
		}
	}
}

package intersect

import "github.com/xtgo/set"

func mergeIntersection(a, b, out []uint64) int {
	var i, j, count int
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case b[j] < a[i]:
			j++
		default:
			out[count] = a[i]
			count++
			i++
			j++
		}
	}
	return count
}

// splitSets presents a and b to xtgo/set as the two halves [0:len(a)] and
// [len(a):Len] of one sort.Interface. set.Inter only swaps inside the first
// half, so b is never written.
type splitSets struct {
	a, b []uint64
}

func (s splitSets) Len() int {
	return len(s.a) + len(s.b)
}

func (s splitSets) at(i int) *uint64 {
	if i < len(s.a) {
		return &s.a[i]
	}
	return &s.b[i-len(s.a)]
}

func (s splitSets) Less(i, j int) bool {
	return *s.at(i) < *s.at(j)
}

func (s splitSets) Swap(i, j int) {
	x, y := s.at(i), s.at(j)
	*x, *y = *y, *x
}

// mergeIntersectionInPlace moves the intersection to the front of a and
// returns its length. a[n:] is left in an undefined order.
func mergeIntersectionInPlace(a, b []uint64) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	return set.Inter(splitSets{a: a, b: b}, len(a))
}

package intersect

import (
	"errors"
	"fmt"
)

// Kernel selects the pairwise intersection algorithm used by IntersectPair and IntersectMany.
type Kernel int

const (
	Branchless Kernel = iota
	BranchlessUnrolled
	BinarySearch
	Galloping
	Merge
	MergeInPlace
)

var ErrUnknownKernel = errors.New("unknown kernel")

var kernelNames = [...]string{
	Branchless:         "branchless",
	BranchlessUnrolled: "branchless-unrolled",
	BinarySearch:       "binary-search",
	Galloping:          "galloping",
	Merge:              "merge",
	MergeInPlace:       "merge-in-place",
}

// Kernels returns every kernel, in declaration order.
func Kernels() []Kernel {
	return []Kernel{Branchless, BranchlessUnrolled, BinarySearch, Galloping, Merge, MergeInPlace}
}

// KernelNames returns the names accepted by ParseKernel.
func KernelNames() []string {
	return kernelNames[:]
}

func ParseKernel(name string) (Kernel, error) {
	for i, kernelName := range kernelNames {
		if kernelName == name {
			return Kernel(i), nil
		}
	}
	return 0, fmt.Errorf("%w: '%s'", ErrUnknownKernel, name)
}

func (k Kernel) String() string {
	if k < 0 || int(k) >= len(kernelNames) {
		return fmt.Sprintf("Kernel(%d)", int(k))
	}
	return kernelNames[k]
}

// Intersect writes the intersection of the ascending lists a and b into out
// and returns the number of values written.
//
// out must have room for min(len(a), len(b)) values and may alias a. The
// capacity is not checked. MergeInPlace ignores out and overwrites the
// prefix of a instead.
func (k Kernel) Intersect(a, b, out []uint64) int {
	switch k {
	case Branchless:
		return scalarBranchless(a, b, out)
	case BranchlessUnrolled:
		return scalarBranchlessUnrolled(a, b, out)
	case BinarySearch:
		return binarySearchIntersection(a, b, out)
	case Galloping:
		return gallopingIntersection(a, b, out)
	case Merge:
		return mergeIntersection(a, b, out)
	case MergeInPlace:
		return mergeIntersectionInPlace(a, b)
	}
	panic(fmt.Sprintf("intersect: %s", k))
}

// IntersectPair returns the intersection of a and b and its length.
// The result is newly allocated except for MergeInPlace, which returns the
// overwritten prefix of a.
func IntersectPair(k Kernel, a, b []uint64) ([]uint64, int) {
	if k == MergeInPlace {
		n := k.Intersect(a, b, nil)
		return a[:n], n
	}
	out := make([]uint64, min(len(a), len(b)))
	n := k.Intersect(a, b, out)
	return out[:n], n
}

package intersect

// Branchless merge by N. Kurz. Every step writes a[i] to out unconditionally
// and only moves the output cursor on a match, so the loop body carries no
// data dependent branch.

const unrolled = 4

func b2i(b bool) int {
	var i int
	if b {
		i = 1
	}
	return i
}

func branchlessStep(a, b, out []uint64, i, j, count int) (int, int, int) {
	va, vb := a[i], b[j]
	out[count] = va
	count += b2i(vb == va)
	i += b2i(vb >= va)
	j += b2i(vb <= va)
	return i, j, count
}

func scalarBranchless(a, b, out []uint64) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	var i, j, count int
	for i < len(a) && j < len(b) {
		i, j, count = branchlessStep(a, b, out, i, j, count)
	}
	return count
}

func scalarBranchlessUnrolled(a, b, out []uint64) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	var i, j, count int
	if len(a) >= unrolled && len(b) >= unrolled {
		stopA, stopB := len(a)-unrolled, len(b)-unrolled
		for i < stopA && j < stopB {
			// must match unrolled
			i, j, count = branchlessStep(a, b, out, i, j, count)
			i, j, count = branchlessStep(a, b, out, i, j, count)
			i, j, count = branchlessStep(a, b, out, i, j, count)
			i, j, count = branchlessStep(a, b, out, i, j, count)
		}
	}
	for i < len(a) && j < len(b) {
		i, j, count = branchlessStep(a, b, out, i, j, count)
	}
	return count
}

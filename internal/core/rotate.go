package core

// smallRotateThreshold is the length at or below which Rotate switches from the
// helix algorithm to a plain triple-reversal, per spec.md §4.B.
const smallRotateThreshold = 64

// Rotate cyclically rotates v so that v[mid:] precedes v[:mid]: after it
// returns, the element formerly at position mid is at position 0. It is a
// pure reordering with no comparisons, so it is trivially stable.
//
// For short ranges it reverses the two halves separately then the whole
// range (the textbook three-reversal trick, used here as the reference
// algorithm spec.md §8 calls for). For longer ranges it uses the "helix"
// algorithm: repeatedly swap a prefix of the shorter side against the
// other side's boundary, shrinking the shorter side by whatever remainder
// is left over, until one side is empty.
func Rotate(v View, mid int) {
	if mid == 0 || mid == v.Len() {
		return
	}
	if v.Len() <= smallRotateThreshold {
		rotateTripleReverse(v, mid)
		return
	}
	rotateHelix(v, mid)
}

func rotateTripleReverse(v View, mid int) {
	reverseRange(v, 0, mid)
	reverseRange(v, mid, v.Len())
	reverseRange(v, 0, v.Len())
}

func reverseRange(v View, lo, hi int) {
	for lo < hi {
		hi--
		v.Swap(lo, hi)
		lo++
	}
}

// rotateHelix implements the algorithm spec.md §4.B calls "helix rotation":
// swap a prefix of the shorter side against the other side's boundary, then
// shrink the working range and recurse on the remainder. Each iteration
// places one block in its final position and never revisits it, so the
// total number of element swaps equals len(v) minus gcd(mid, len(v)-mid)
// (the last iteration swaps two equal halves, placing two elements per
// swap) — never more than the triple-reversal bound of 3*len, and
// typically much less.
func rotateHelix(v View, mid int) {
	first, m, last := 0, mid, v.Len()
	for first < m && m < last {
		leftLen := m - first
		rightLen := last - m
		if leftLen <= rightLen {
			swapRanges(v, first, m, leftLen)
			first = m
			m += leftLen
		} else {
			swapRanges(v, m-rightLen, m, rightLen)
			last = m
			m -= rightLen
		}
	}
}

// swapRanges swaps v[a:a+n] with v[b:b+n]; the two ranges must not overlap.
func swapRanges(v View, a, b, n int) {
	for i := 0; i < n; i++ {
		v.Swap(a+i, b+i)
	}
}

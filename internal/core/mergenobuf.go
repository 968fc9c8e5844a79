package core

// MergeWithoutBuf merges the two adjacent sorted runs [xs, ys) and
// [ys, ysLast) of data in place, with no scratch space, by rotating.
// isXsFromRight flips the stability tie-break the same way it does for
// MergeWithBuf: ties normally go to xs, but flip to ys when xs is itself a
// block that originated on the right side of the outer pair (spec.md §4.E).
//
// Algorithm:
//  1. Binary-search ys's head into xs, to find how much of xs's prefix
//     already belongs before it.
//  2. If that prefix is all of xs, xs <= everything in ys already —
//     nothing left to do.
//  3. Otherwise binary-search, within the rest of ys, how far the xs
//     element that just beat ys's head reaches.
//  4. Rotate that stretch of ys across the boundary in one move, and
//     repeat on what's left.
//
// Its time bound — O((m+log n)*min(m,n,j,k) + n) for run lengths m, n and
// distinct-key counts j, k — depends on xs never being wildly longer than
// ys; MergeAdjacentBlocks (§4.H) is responsible for maintaining that.
func MergeWithoutBuf(data Interface, xs, ys, ysLast int, isXsFromRight bool) MergeResult {
	for {
		prefixLen := Search(NewView(data).Slice(xs, ys), ys, isXsFromRight)
		xs += prefixLen
		if xs == ys {
			return MergeResult{XsConsumed: true, Rest: ys}
		}

		tailLen := Search(NewView(data).Slice(ys+1, ysLast), xs, !isXsFromRight)
		ysUpper := ys + 1 + tailLen

		Rotate(NewView(data).Slice(xs, ysUpper), ys-xs)
		xs += ysUpper - ys
		ys = ysUpper
		if ys == ysLast {
			return MergeResult{XsConsumed: false, Rest: xs}
		}
	}
}

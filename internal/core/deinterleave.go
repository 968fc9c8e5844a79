package core

// DeinterleaveImitationWithBuf restores imit (length n, interleaved by a
// prior InterleaveBlocks call) to ascending order, using buf as scratch.
// midKeyPos is the position InterleaveBlocks returned: the key there is
// the boundary value — every key strictly less than it originated on the
// left side of the pair, every other key (including the mid-key itself)
// originated on the right (spec.md §4.G).
//
// Because InterleaveBlocks places each side's blocks in their original
// order, left-origin keys appear, read left to right through the interleaved
// array, already in ascending relative order among themselves — and
// likewise for right-origin keys. Restoring global order is therefore a
// stable partition: gather the left-origin keys to the front (their
// relative order survives automatically) and the right-origin keys after
// them. This implementation is a linear-pass bin sort: left-origin keys
// are compacted into imit itself as they're found; right-origin keys are
// swapped out to buf and copied back once the pass is done. buf must hold
// at least as many cells as there are right-origin keys.
func DeinterleaveImitationWithBuf(data Interface, imit, buf View, midKeyPos int) {
	n := imit.Len()
	if n == 0 {
		return
	}
	midKeyAbs := imit.At(midKeyPos)
	isLeft := func(k int) bool { return data.Less(imit.At(k), midKeyAbs) }

	w := 0
	bufLen := 0
	for k := 0; k < n; k++ {
		if isLeft(k) {
			if k != w {
				data.Swap(imit.At(k), imit.At(w))
			}
			w++
		} else {
			data.Swap(imit.At(k), buf.At(bufLen))
			if imit.At(k) == midKeyAbs {
				// The mid-key itself just moved into buf.
				midKeyAbs = buf.At(bufLen)
			}
			bufLen++
		}
	}
	for j := 0; j < bufLen; j++ {
		data.Swap(imit.At(w+j), buf.At(j))
	}
}

// DeinterleaveImitationNoBuf restores imit to ascending order without any
// scratch space, for use on the level where the merge buffer has already
// been folded into data. It recursively partitions each half stably (by
// the same left/right-of-mid-key coloring as the buffered variant), then
// fixes up the boundary between the two halves by locating each half's
// internal left/right split point and rotating just the misordered
// right-run/left-run span between them across. This is the doubling
// process spec.md §4.G describes iteratively ("rotate every other
// (right, left) pair of adjacent runs... halving the number of such
// pairs"), expressed here as recursion instead of an explicit level loop:
// O(log n) levels, O(n) work per level, O(n log n) total.
func DeinterleaveImitationNoBuf(data Interface, imit View, midKeyPos int) {
	n := imit.Len()
	if n == 0 {
		return
	}
	midKey := midKeyPos
	isLeft := func(k int) bool { return data.Less(imit.At(k), imit.At(midKey)) }
	deinterleaveRange(imit, isLeft, &midKey, 0, n)
}

// deinterleaveRange keeps *midKey pointing at the mid-key's current
// position as its rotations move it.
func deinterleaveRange(v View, isLeft func(int) bool, midKey *int, lo, hi int) {
	if hi-lo <= 1 {
		return
	}
	mid := lo + (hi-lo)/2
	deinterleaveRange(v, isLeft, midKey, lo, mid)
	deinterleaveRange(v, isLeft, midKey, mid, hi)

	p := firstNonLeft(isLeft, lo, mid)
	q := firstNonLeft(isLeft, mid, hi)
	if p < mid && mid < q {
		Rotate(v.Slice(p, q), mid-p)
		if k := *midKey; k >= p && k < mid {
			*midKey = k + (q - mid)
		} else if k >= mid && k < q {
			*midKey = k - (mid - p)
		}
	}
}

// firstNonLeft binary-searches [lo, hi), assumed to read as some number of
// isLeft()==true positions followed by isLeft()==false positions, for the
// first false.
func firstNonLeft(isLeft func(int) bool, lo, hi int) int {
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if isLeft(mid) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

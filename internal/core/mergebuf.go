package core

// MergeResult reports how a two-run merge ended: whether the xs run was
// the one fully consumed, and the position (relative to the Interface the
// View was built from) where the unmerged tail of the surviving run
// begins.
type MergeResult struct {
	XsConsumed bool
	Rest       int
}

// MergeWithBuf merges the two adjacent sorted runs xs=[xs,xs+xsLen) and
// ys=[xs+xsLen,xs+xsLen+ysLen) of data, using the positions immediately
// before xs (starting at buf) as scratch, by swapping. buf, xs and ys must
// all refer to the same Interface, and ysLen must not exceed xs-buf
// (spec.md §4.D).
//
// The merged run ends up occupying the buffer's old position through
// wherever the last real element landed, but that final position is not
// necessarily where the caller's next block begins: the gap between the
// caller's buffer region and xs (xs-buf, not just ysLen) is exactly
// conserved as scattered buffer filler at the tail of whatever got
// written, immediately before the returned Rest position — @post
// Rest-bufFinal == xs-buf, where bufFinal is wherever the merged prefix
// stopped. Callers that always pass a fixed-width buf (as
// MergeAdjacentBlocksWithBuf does, one full merge-buffer's width at a
// time) get a debt of that same constant width back every time, which is
// what keeps it usable as scratch for the next call without ever running
// out or needing an explicit close-up step per merge.
//
// isXsFromRight flips the tie-break on equal elements: normally xs wins
// ties (stable merge of a left run against a right run), but when the
// caller's "xs" is itself the block that originated on the right side of
// the outer pair being merged, ys must win instead to preserve the
// original relative order (spec.md §4.D).
func MergeWithBuf(data Interface, buf, xs, xsLen, ysLen int, isXsFromRight bool) MergeResult {
	xsStart := xs
	ysStart := xs + xsLen
	ysLast := ysStart + ysLen
	bufPos := buf

	xi, yi := xsStart, ysStart
	for xi < xsStart+xsLen && yi < ysLast {
		var takeXs bool
		if isXsFromRight {
			takeXs = data.Less(xi, yi)
		} else {
			takeXs = !data.Less(yi, xi)
		}
		if takeXs {
			data.Swap(bufPos, xi)
			xi++
		} else {
			data.Swap(bufPos, yi)
			yi++
		}
		bufPos++
	}

	if xi == xsStart+xsLen {
		// xs fully consumed: the untouched ys tail sits at [yi, ysLast),
		// but it is not adjacent to the merged prefix — there is a
		// buf-width-wide band of scattered buffer filler immediately
		// before it (see the doc comment above). The caller is
		// responsible for treating that band as its next buffer, not for
		// closing it.
		return MergeResult{XsConsumed: true, Rest: yi}
	}
	// ys fully consumed: the remaining xs elements sit at [xi, xsStart+xsLen)
	// and are still unmerged, so swap them back to end flush at ysLast,
	// leaving the same xs-buf wide band of buffer filler between the merged
	// prefix and them as in the branch above.
	xsEnd := xsStart + xsLen
	dst := ysLast
	for xsEnd > xi {
		xsEnd--
		dst--
		data.Swap(xsEnd, dst)
	}
	return MergeResult{XsConsumed: false, Rest: dst}
}

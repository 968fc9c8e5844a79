package core

// blockOrigin reports which side of a run-pair a block belongs to, after
// InterleaveBlocks has reordered the pair's blocks: false for left, true
// for right. Block 0 is always left and the last block is always right —
// InterleaveBlocks never touches either — every block between them is
// classified by comparing its imitation key against the mid-key (the
// value at midKeyAbs): strictly less means left-origin (spec.md §4.H).
func blockOrigin(data Interface, imit View, midKeyAbs, numBlocks, b int) bool {
	if b == 0 {
		return false
	}
	if b == numBlocks-1 {
		return true
	}
	return !data.Less(imit.At(b-1), midKeyAbs)
}

// MergeAdjacentBlocksWithBuf walks the numBlocks blocks of an interleaved
// run-pair starting at blocksStart (first block length firstLen, last
// block length lastLen, every block between them blockLen) and drives
// MergeWithBuf across same/opposite-origin transitions, per spec.md
// §4.H's state machine: a run of same-origin blocks simply extends the
// pending "xs"; hitting a different-origin block triggers a merge of xs
// against it, after which xs's origin flips iff it was the side fully
// consumed.
//
// bufLen cells immediately before blocksStart must be valid scratch on
// entry (the caller's merge buffer) — every merge call in this function
// reuses exactly that same fixed width, positioned immediately before
// whatever xs currently is, never a width tailored to the block just
// being merged. Per MergeWithBuf's postcondition this means every call
// leaves a fresh bufLen-wide band of scratch immediately before the new
// xs, so the invariant "bufLen cells before xs are scratch" reestablishes
// itself automatically call after call — no bookkeeping of the buffer's
// position is needed beyond xs itself.
//
// The one place this invariant doesn't reestablish itself for free is the
// tail: whatever xs is still pending after the last block (the unmerged
// rest of the last merge plus any same-origin blocks after it) has
// nothing left to merge against, and the scratch band still sits
// immediately before it rather than at the end of the pair where the next
// pair's processing (or this level's buffer relocation) expects to find
// it. The closing rotate at the end of this function moves the band past
// that pending xs.
//
// imit/midKeyAbs classify origin exactly as in blockOrigin.
func MergeAdjacentBlocksWithBuf(data Interface, blocksStart, blockLen, firstLen, lastLen, numBlocks, bufLen int, imit View, midKeyAbs int) {
	if numBlocks == 0 {
		return
	}
	blockLenAt := func(b int) int {
		switch {
		case b == 0:
			return firstLen
		case b == numBlocks-1:
			return lastLen
		default:
			return blockLen
		}
	}

	xsStart := blocksStart
	xsLen := firstLen
	xsOriginRight := false
	pos := blocksStart + firstLen

	for b := 1; b < numBlocks; b++ {
		curLen := blockLenAt(b)
		curOriginRight := blockOrigin(data, imit, midKeyAbs, numBlocks, b)
		nextPos := pos + curLen

		if curOriginRight == xsOriginRight {
			xsLen += curLen
			pos = nextPos
			continue
		}

		buf := xsStart - bufLen
		res := MergeWithBuf(data, buf, xsStart, xsLen, curLen, xsOriginRight)
		// The unmerged rest of whichever side survived is the new xs.
		xsStart = res.Rest
		xsLen = nextPos - res.Rest
		if res.XsConsumed {
			xsOriginRight = curOriginRight
		}
		pos = nextPos
	}

	if xsLen > 0 {
		Rotate(NewView(data).Slice(xsStart-bufLen, xsStart+xsLen), bufLen)
	}
}

// MergeAdjacentBlocksNoBuf is the has_buf=false counterpart, driving
// MergeWithoutBuf instead. Since MergeWithoutBuf's cost is sensitive to
// the left operand being much longer than the right, an accumulated xs
// spanning several same-origin blocks is narrowed, for the merge call
// only, down to just its most recently absorbed block: thanks to
// InterleaveBlocks' non-decreasing-head postcondition, every earlier
// absorbed block already sorts below anything that will land in
// [narrowed xs, ys) after this merge, so leaving it untouched in place is
// safe. The last block never went through InterleaveBlocks, so xs is
// merged against it whole, without narrowing, and xs is never rotated to
// shorten it. MergeWithoutBuf never relocates content outside the
// span it's given, so (unlike the has_buf variant) no gap ever opens up
// between merges.
func MergeAdjacentBlocksNoBuf(data Interface, blocksStart, blockLen, firstLen, lastLen, numBlocks int, imit View, midKeyAbs int) {
	if numBlocks == 0 {
		return
	}
	blockLenAt := func(b int) int {
		switch {
		case b == 0:
			return firstLen
		case b == numBlocks-1:
			return lastLen
		default:
			return blockLen
		}
	}

	xsStart := blocksStart
	xsLen := firstLen
	recentLen := firstLen
	xsOriginRight := false
	pos := blocksStart + firstLen

	for b := 1; b < numBlocks; b++ {
		curLen := blockLenAt(b)
		curOriginRight := blockOrigin(data, imit, midKeyAbs, numBlocks, b)

		if curOriginRight == xsOriginRight {
			xsLen += curLen
			recentLen = curLen
			pos += curLen
			continue
		}

		mergeXsStart, mergeXsLen := xsStart, xsLen
		if xsLen > recentLen && b != numBlocks-1 {
			mergeXsStart = xsStart + (xsLen - recentLen)
			mergeXsLen = recentLen
		}

		ysStart := mergeXsStart + mergeXsLen
		ysLast := ysStart + curLen
		res := MergeWithoutBuf(data, mergeXsStart, ysStart, ysLast, xsOriginRight)

		xsStart = res.Rest
		xsLen = ysLast - res.Rest
		if res.XsConsumed {
			xsOriginRight = curOriginRight
		}
		recentLen = xsLen
		pos += curLen
	}
}

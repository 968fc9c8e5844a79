package core

// InterleaveBlocks reorders leftCount+rightCount equal-length blocks — the
// first leftCount starting at blocksStart belonging to the left run, the
// rest to the right run, each run's blocks already in non-decreasing head
// order — so that, across all of them, head elements become non-decreasing
// (spec.md §4.F). On equal heads a left block goes first, and each side's
// blocks keep their original relative order. The first
// leftCount+rightCount keys of imit (any keys after them are left
// untouched) run parallel to the blocks, one per block in the same order;
// every block swap is mirrored by swapping the corresponding imitation
// keys, so imit ends up holding the permutation that was applied.
//
// It returns the final position (within imit/among the blocks) of the
// "mid-key": the key that started at index leftCount, the boundary between
// left-origin and right-origin keys. Callers use its value later to tell,
// for any other key, which side of the original pair it came from.
//
// Algorithm: a selection merge at block granularity. The blocks occupy
// three zones throughout: already-interleaved (finalized), left-origin
// blocks not yet placed (in some scrambled order — "left remaining"), and
// right-origin blocks not yet placed (still in their original order,
// because this algorithm never disturbs a run it hasn't started consuming
// from). The right zone's smallest head is always at its own front; the
// left zone's smallest head is tracked explicitly and rescanned by a linear
// scan whenever a left block is taken (taking a right block never
// invalidates the tracked position — see the inline comment below), giving
// O(leftCount) work per left pick and O(1) per right pick, O(k²) total for
// k = leftCount+rightCount, i.e. O(k·blockLen) = O(seq_len) when k =
// O(√seq_len) as BlockingCalculator guarantees.
func InterleaveBlocks(data Interface, imit View, blocksStart, blockLen, leftCount, rightCount int) int {
	numBlocks := leftCount + rightCount
	if numBlocks == 0 {
		return 0
	}

	head := func(b int) int { return blocksStart + b*blockLen }
	midKeyPos := leftCount

	swapBlocks := func(a, b int) {
		if a == b {
			return
		}
		swapRanges(NewView(data), head(a), head(b), blockLen)
		imit.Swap(a, b)
		switch midKeyPos {
		case a:
			midKeyPos = b
		case b:
			midKeyPos = a
		}
	}

	i := 0
	leftRemain := leftCount
	rightFront := leftCount
	leastLeft := 0 // valid only while leftRemain > 0; zone2 starts untouched & ascending

	rescanLeast := func() {
		leastLeft = i
		for p := i + 1; p < i+leftRemain; p++ {
			// Equal heads: the smaller imitation key is the earlier block.
			if data.Less(head(p), head(leastLeft)) ||
				(!data.Less(head(leastLeft), head(p)) && imit.Less(p, leastLeft)) {
				leastLeft = p
			}
		}
	}

	for i < numBlocks {
		takeLeft := leftRemain > 0 && (rightFront == numBlocks || !data.Less(head(rightFront), head(leastLeft)))

		if takeLeft {
			swapBlocks(leastLeft, i)
			leftRemain--
			i++
			if leftRemain > 0 {
				rescanLeast()
			}
		} else {
			// Taking a right block swaps the right zone's front into slot
			// i. The block that was at i (zone2's front) lands at
			// position rightFront, which — once i advances — is exactly
			// the new zone2 window's last slot; every other left-zone
			// block keeps its absolute position. So the previously
			// tracked least-left position stays correct unless it *was*
			// i, in which case it moved to rightFront.
			if leastLeft == i {
				leastLeft = rightFront
			}
			swapBlocks(rightFront, i)
			rightFront++
			i++
		}
	}
	return midKeyPos
}

package core

// Sort sorts data in place: stable, O(n log n) comparisons worst case,
// O(1) auxiliary memory, and no heap allocation — the top-level
// composition of every other component in this package (spec.md §4.P).
//
// Steps: short inputs go straight to the sorting network. Otherwise,
// CollectKeys pulls a sqrt(n)-ish prefix of distinct values to serve as
// imitation and merge buffer; if too few distinct values turn up, that
// prefix is abandoned as a small sorted run instead and merged back in
// at the very end. SortLeaves sorts the remaining data into small runs,
// then a bottom-up loop repeatedly doubles the run length, merging
// pairs with whatever buffer remains until MergeSortControl reports the
// buffer has been exhausted, at which point it's sorted by FallbackSort
// and folded permanently into the imitation-key region, and every
// further level runs the no-buffer merge family.
//
// This implementation always processes levels in the same (forward)
// direction rather than alternating per spec.md §4.N's "forward" flag; see
// DESIGN.md for how relocateBuffer takes over the job the alternation
// otherwise does — keeping the merge buffer from drifting off the
// [L, L+B) region it must occupy at the start of every level.
func Sort(data Interface) {
	n := data.Len()
	if n <= 8 {
		Sort0To8(NewView(data))
		return
	}

	keysFound := 0
	if n > 16 {
		numDesired := 2*OverApproxSqrt(n) - 2
		keysFound = CollectKeys(data, numDesired)
	}
	numKeysForCtrl := keysFound
	if keysFound < 8 {
		numKeysForCtrl = 0
	}
	dataStart := keysFound
	dataLen := n - dataStart

	ctrl := NewMergeSortControl(dataLen, numKeysForCtrl)

	SortLeaves(sub{NewView(data).From(dataStart)}, dataLen, ctrl.Log2NumSeqs)

	for ctrl.Log2NumSeqs > 0 {
		hasBuf := ctrl.B != 0
		p := BlockingCalculator(ctrl, hasBuf, ctrl.SeqLen)
		mergeLevel(data, ctrl, p, hasBuf, dataStart, dataLen)

		if hasBuf {
			relocateBuffer(data, ctrl.L, ctrl.B, dataStart+dataLen)
		}

		if oldB := ctrl.Next(); oldB != 0 {
			oldL := ctrl.L - oldB
			FallbackSort(NewView(data).Slice(oldL, oldL+oldB))
			MergeWithoutBuf(data, 0, oldL, oldL+oldB, false)
		}
	}

	if dataStart > 0 {
		// The keys prefix is, element for element, made of the *first*
		// occurrence of each of its values: any later-occurring equal
		// value was left behind in the data region, so on ties the keys
		// prefix must win to preserve original relative order.
		MergeWithoutBuf(data, 0, dataStart, n, false)
	}
}

// mergeLevel merges every adjacent pair of the current level's runs
// (there are 2^ctrl.Log2NumSeqs of them, covering [dataStart,
// dataStart+dataLen), their exact lengths given by the same
// SequenceDivider formula SortLeaves used to create the leaves in the
// first place, so boundaries line up exactly across levels) using
// blocking parameters p.
//
// Each pair's merge is handed only ctrl.B, the buffer's width, never its
// position: MergeBlockingWithBuf derives where the buffer currently sits
// from blocksStart itself (see its doc comment), and leaves that same
// invariant true for whatever pos becomes next. The first pair's
// blocksStart is dataStart, immediately after the real buffer at
// [ctrl.L, ctrl.L+ctrl.B) — exactly the position the derivation assumes.
func mergeLevel(data Interface, ctrl *MergeSortControl, p BlockingResult, hasBuf bool, dataStart, dataLen int) {
	imit := NewView(data).Slice(0, ctrl.L)
	blockLen := p.BlockLen

	div := NewSequenceDivider(dataLen, ctrl.Log2NumSeqs, true)
	numRuns := div.NumParts()
	pos := dataStart
	for i := 0; i+1 < numRuns; i += 2 {
		leftLen := div.Next()
		rightLen := div.Next()

		leftCount := CeilDiv(leftLen, blockLen)
		rightCount := CeilDiv(rightLen, blockLen)
		leftFirst := leftLen - blockLen*(leftCount-1)
		rightLast := rightLen - blockLen*(rightCount-1)

		if hasBuf {
			MergeBlockingWithBuf(data, pos, blockLen, leftFirst, rightLast, leftCount, rightCount, ctrl.B, imit)
		} else {
			MergeBlockingNoBuf(data, pos, blockLen, leftFirst, rightLast, leftCount, rightCount, imit)
		}
		pos += leftLen + rightLen
	}
}

// relocateBuffer restores the merge buffer to [l, l+b) after a level's
// worth of MergeBlockingWithBuf calls has walked it, pair by pair, all the
// way to the end of the data region at rangeEnd: a single rotate moving
// the trailing b-wide band (wherever this level's last pair left it, per
// mergeLevel's doc comment always ending flush at rangeEnd) back to the
// front, sliding everything else the buffer displaced along the way up by
// exactly b. This is what lets every level start mergeLevel from the same
// fixed [l, l+b) buffer regardless of where the previous level's
// processing left it, without alternating merge direction level to level.
func relocateBuffer(data Interface, l, b, rangeEnd int) {
	v := NewView(data).Slice(l, rangeEnd)
	Rotate(v, v.Len()-b)
}

package core

// MergeBlockingWithBuf merges two adjacent sorted runs that have each been
// divided into blocks — leftCount blocks belonging to the left run
// followed by rightCount belonging to the right, numBlocks = leftCount +
// rightCount total, all starting at blocksStart, each blockLen long
// except the first (firstLen) and last (lastLen), which may be shorter —
// using bufLen cells immediately before blocksStart as merge scratch and
// imit as the parallel imitation-key view (spec.md §4.I). It composes the
// three block-level primitives: the first and last blocks sit out of
// interleaving (they may be short, and their origin is already fixed —
// first is always left, last is always right), so only the first
// numBlocks-2 keys of imit, one per block that does get interleaved, are
// permuted; imit may be longer (mergeLevel passes the whole imitation
// buffer), and the keys after them stay in place.
//
// MergeAdjacentBlocksWithBuf's closing rotate guarantees that, on return,
// bufLen cells immediately before blocksStart+totalLen (this pair's own
// end) are once again valid scratch — exactly what the next pair, or a
// level-ending buffer relocation, requires to find at its own
// blocksStart. That new scratch position is also where
// DeinterleaveImitationWithBuf's own scratch needs live now, not at
// wherever the buffer started out for this pair.
func MergeBlockingWithBuf(data Interface, blocksStart, blockLen, firstLen, lastLen, leftCount, rightCount, bufLen int, imit View) {
	numBlocks := leftCount + rightCount
	midBlocksStart := blocksStart + firstLen
	totalLen := firstLen + lastLen + blockLen*(numBlocks-2)

	midKeyPos := InterleaveBlocks(data, imit, midBlocksStart, blockLen, leftCount-1, rightCount-1)
	midKeyAbs := imit.At(midKeyPos)

	MergeAdjacentBlocksWithBuf(data, blocksStart, blockLen, firstLen, lastLen, numBlocks, bufLen, imit, midKeyAbs)

	bufStart := blocksStart + totalLen - bufLen
	buf := NewView(data).Slice(bufStart, bufStart+bufLen)
	DeinterleaveImitationWithBuf(data, imit, buf, midKeyPos)
}

// MergeBlockingNoBuf is the has_buf=false counterpart, used once the
// merge buffer has been folded back into sorted data and no scratch
// remains (spec.md §4.I, §4.P step 5c).
func MergeBlockingNoBuf(data Interface, blocksStart, blockLen, firstLen, lastLen, leftCount, rightCount int, imit View) {
	numBlocks := leftCount + rightCount
	midBlocksStart := blocksStart + firstLen

	midKeyPos := InterleaveBlocks(data, imit, midBlocksStart, blockLen, leftCount-1, rightCount-1)
	midKeyAbs := imit.At(midKeyPos)

	MergeAdjacentBlocksNoBuf(data, blocksStart, blockLen, firstLen, lastLen, numBlocks, imit, midKeyAbs)

	DeinterleaveImitationNoBuf(data, imit, midKeyPos)
}

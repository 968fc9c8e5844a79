package core

// MergeSortControl drives the bottom-up sequence of merge levels: how
// many remain, how long this level's runs are, which direction to walk,
// and when the merge buffer must be folded back into sorted data because
// it can no longer keep up with the growing run length (spec.md §4.N).
type MergeSortControl struct {
	DataLen       int
	L             int // imitation-buffer length
	B             int // merge-buffer length; 0 once closed
	bufferableLen int
	Log2NumSeqs   int
	SeqLen        int
	Forward       bool
}

// NewMergeSortControl builds the control state for a sort with numKeys
// collected keys (0, or >= 8) and dataLen elements left to merge. The
// initial split of numKeys into L (imitation) and B (merge buffer)
// follows spec.md §4.N's construction rule exactly: L = ((numKeys+2)/4)*2
// - 2 (even, >= 2), B = numKeys - L; both B >= L+2 and bufferableLen =
// ((L+2)/2)*B >= 8 follow from numKeys >= 8. numKeys == 0 means too few
// distinct values were found to build any buffer at all — every level
// then runs the no-buf merge family from the start.
func NewMergeSortControl(dataLen, numKeys int) *MergeSortControl {
	var l, b int
	if numKeys > 0 {
		l = ((numKeys+2)/4)*2 - 2
		b = numKeys - l
	}
	c := &MergeSortControl{
		DataLen:     dataLen,
		L:           l,
		B:           b,
		Log2NumSeqs: initialLog2NumSeqs(dataLen),
		Forward:     true,
	}
	c.bufferableLen = ((c.L + 2) / 2) * c.B
	c.SeqLen = CeilDiv(dataLen, 1<<uint(c.Log2NumSeqs))
	return c
}

// initialLog2NumSeqs picks the smallest number of halvings that brings
// dataLen down to leaves of length at most 8, the range SortLeaves'
// Sort0To8 handles (spec.md §4.K).
func initialLog2NumSeqs(dataLen int) int {
	p := 0
	for CeilDiv(dataLen, 1<<uint(p)) > 8 {
		p++
	}
	return p
}

// Next advances to the next merge level: doubles the nominal run length,
// flips direction, and reports whether the merge buffer must close at
// this level — either because this was the last level (Log2NumSeqs
// reaching 0) or because the new run length has outgrown what B can
// buffer. When it closes, oldB is the buffer length the caller must
// FallbackSort and merge back into data; oldB == 0 means no closing
// happened (and, since a real buffer length is never 0, doubles as the
// "still open" sentinel). This happens at most once per sort — B stays
// 0 for every level after.
func (c *MergeSortControl) Next() (oldB int) {
	c.Log2NumSeqs--
	c.SeqLen = CeilDiv(c.DataLen, 1<<uint(c.Log2NumSeqs))
	c.Forward = !c.Forward
	if c.B != 0 && (c.Log2NumSeqs == 0 || c.SeqLen > c.bufferableLen) {
		oldB = c.B
		c.L += c.B
		c.B = 0
	}
	return oldB
}

// BlockingResult describes how one run of the current level's nominal
// length is divided into blocks: NumBlocks blocks, BlockLen apiece
// except the first and last, which absorb whatever remainder doesn't
// divide evenly (spec.md §4.O). Both edges use the same length because
// BlockingCalculator sizes for one nominal run length shared by both
// sides of a level's merges. mergeLevel takes only BlockLen from it and
// recomputes each run's first and last block lengths from that run's
// actual length; FirstLen and LastLen describe the nominal run only.
type BlockingResult struct {
	NumBlocks int
	BlockLen  int
	FirstLen  int
	LastLen   int
}

// BlockingCalculator computes the block layout for a run of length
// seqLen at the current level (spec.md §4.O). With a buffer still open,
// num_blocks = 2*ceil(seq_len/B) per pair, i.e. ceil(seq_len/B) per run,
// which spec.md proves never exceeds L+2 per pair. Without one,
// num_blocks per run is bounded to O(sqrt(seq_len)) via OverApproxSqrt
// and capped at (L+2)/2, spec.md's "simpler" bufferless block-count
// choice recorded in SPEC_FULL.md.
func BlockingCalculator(ctrl *MergeSortControl, hasBuf bool, seqLen int) BlockingResult {
	var numBlocks int
	if hasBuf {
		numBlocks = CeilDiv(seqLen, ctrl.B)
	} else {
		numBlocks = seqLen / OverApproxSqrt(2*seqLen)
		if max := (ctrl.L + 2) / 2; numBlocks > max {
			numBlocks = max
		}
	}
	if numBlocks < 1 {
		numBlocks = 1
	}
	blockLen := CeilDiv(seqLen, numBlocks)
	edgeLen := seqLen - blockLen*(numBlocks-1)
	return BlockingResult{
		NumBlocks: numBlocks,
		BlockLen:  blockLen,
		FirstLen:  edgeLen,
		LastLen:   edgeLen,
	}
}

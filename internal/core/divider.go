package core

// SequenceDivider yields, one call to Next at a time, the lengths of
// 2^logNumParts near-equal parts of a length-`length` span: the i-th part
// occupies [floor(i*length/numParts), floor((i+1)*length/numParts)), so
// parts differ by at most one and sum to length after numParts calls
// (spec.md §4.M).
//
// Computing each part directly from the floor formula, rather than just
// front-loading the length%numParts remainder onto the first few parts,
// matters beyond cosmetics: the boundaries floor(i*length/numParts) for a
// coarser numParts must all reappear as boundaries for a finer, doubled
// numParts, since mergeLevel's bottom-up loop merges exactly two adjacent
// finer runs into one coarser run every level. floor(i*L/n) ==
// floor((2i)*L/(2n)) for any integer i, L, n, so this always holds; the
// front-loaded remainder scheme does not nest this way in general (e.g.
// length 22 splits into {5,6,5,6} at numParts=4 but {11,11} at numParts=2
// — 11 is not a partial sum of {5,6,5,6}).
type SequenceDivider struct {
	length   int
	numParts int
	forward  bool
	idx      int
}

// NewSequenceDivider constructs a divider over a length-`length` span cut
// into 2^logNumParts parts. forward selects which end of the span the
// division is anchored from: with forward false, the parts come out as the
// mirror image of the forward ones, read right-to-left. SortLeaves and
// mergeLevel both always pass true.
func NewSequenceDivider(length, logNumParts int, forward bool) SequenceDivider {
	return SequenceDivider{
		length:   length,
		numParts: 1 << uint(logNumParts),
		forward:  forward,
	}
}

// NumParts reports how many Next calls this divider will answer.
func (d *SequenceDivider) NumParts() int { return d.numParts }

// Next returns the next part's length.
func (d *SequenceDivider) Next() int {
	i := d.idx
	d.idx++
	if d.forward {
		lo := i * d.length / d.numParts
		hi := (i + 1) * d.length / d.numParts
		return hi - lo
	}
	hi := d.length - i*d.length/d.numParts
	lo := d.length - (i+1)*d.length/d.numParts
	return hi - lo
}

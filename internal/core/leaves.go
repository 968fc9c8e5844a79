package core

// SortLeaves sorts the bottom-up merge tree's leaves: dataLen elements
// starting at the front of data, divided by a SequenceDivider into
// 2^logNumSeqs leaves of length 4–8 (the last level before any merging
// begins), each sorted in place by Sort0To8 (spec.md §4.K).
func SortLeaves(data Interface, dataLen, logNumSeqs int) {
	d := NewSequenceDivider(dataLen, logNumSeqs, true)
	pos := 0
	for i := 0; i < d.NumParts(); i++ {
		leafLen := d.Next()
		Sort0To8(NewView(data).Slice(pos, pos+leafLen))
		pos += leafLen
	}
}

// Sort0To8 sorts v in place and stably for any length from 0 through 8,
// the base case of the merge tree (spec.md §4.K). Lengths 0–3 are a
// handful of hard-coded compare-exchanges; lengths 4–8 run an odd-even
// transposition network. Never swapping on an equal pair keeps both
// stable.
func Sort0To8(v View) {
	switch v.Len() {
	case 0, 1:
		return
	case 2:
		compareSwap(v, 0, 1)
	case 3:
		compareSwap(v, 0, 1)
		compareSwap(v, 1, 2)
		compareSwap(v, 0, 1)
	default:
		oddEvenSort(v)
	}
}

func compareSwap(v View, i, j int) {
	if v.Less(j, i) {
		v.Swap(i, j)
	}
}

// oddEvenSort runs v.Len() alternating-phase passes of adjacent
// compare-exchange over [0, v.Len()): even passes compare (0,1),(2,3)...,
// odd passes compare (1,2),(3,4).... v.Len() passes always suffice to
// fully sort, and a network with no data-dependent branching beyond
// phase parity is exactly the small sorting network spec.md §4.K calls
// for at lengths 4–8.
func oddEvenSort(v View) {
	n := v.Len()
	for pass := 0; pass < n; pass++ {
		for i := pass % 2; i+1 < n; i += 2 {
			compareSwap(v, i, i+1)
		}
	}
}

package core

// FallbackSort sorts v in place with no scratch space and no stability
// guarantee, used to put the merge buffer back into order once it can no
// longer be carried forward as scratch (spec.md §4.L). The buffer only
// ever holds distinct-valued keys at this point, so instability is
// harmless — nothing downstream depends on the relative order of equal
// elements here because there are none.
//
// It's heap sort, adapted from the sift-up/sift-down pair of a heap
// formerly kept at collections/heap.go (no longer in this repository) to
// run directly over a View instead of a separate backing array — no
// allocation, matching §5's O(1) auxiliary memory requirement. sink is
// that heap's "sink" with 0-indexed children (2*k+1, 2*k+2) instead of its
// 1-indexed (2*k, 2*k+1).
func FallbackSort(v View) {
	n := v.Len()
	for k := n/2 - 1; k >= 0; k-- {
		sink(v, k, n)
	}
	for end := n - 1; end > 0; end-- {
		v.Swap(0, end)
		sink(v, 0, end)
	}
}

// sink moves the element at k down into its correct place in the max-heap
// occupying v[0, heapLen).
func sink(v View, k, heapLen int) {
	for {
		j := 2*k + 1
		if j >= heapLen {
			return
		}
		if j+1 < heapLen && v.Less(j, j+1) {
			j++
		}
		if !v.Less(k, j) {
			return
		}
		v.Swap(k, j)
		k = j
	}
}

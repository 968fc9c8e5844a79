package core

// Search returns the first position p in [0, v.Len()] such that for every
// x in [0, p), with data = v.Base():
//
//	strict == true:  data.Less(v.At(x), keyPos)      holds
//	strict == false: !data.Less(keyPos, v.At(x))     holds
//
// keyPos is an absolute index into v.Base(), not a position relative to v
// (typically outside the searched sub-range, e.g. the head of the other
// run being merged). strict selects lower-bound
// vs. upper-bound search, which is how the merge routines keep ties on the
// correct side for stability (spec.md §4.C).
//
// The search is "monobound": rather than adjusting both lo and hi each
// step, it halves a single length counter and probes one pivot per
// iteration, so the number of comparisons depends only on v.Len() and not
// on where the key happens to land — friendlier to branch prediction than
// the textbook lo/hi binary search.
func Search(v View, keyPos int, strict bool) int {
	take := func(pivot int) bool {
		if strict {
			return v.Base().Less(v.At(pivot), keyPos)
		}
		return !v.Base().Less(keyPos, v.At(pivot))
	}
	first := 0
	length := v.Len()
	for length > 1 {
		half := length / 2
		if take(first + half) {
			first += half
		}
		length -= half
	}
	if length == 1 && take(first) {
		first++
	}
	return first
}

// LowerBound is Search with strict = true: the first position whose element
// is not less than key, i.e. the leftmost insertion point that keeps key's
// run of equal elements to key's right.
func LowerBound(v View, keyPos int) int { return Search(v, keyPos, true) }

// UpperBound is Search with strict = false: the first position whose
// element is greater than key, i.e. the rightmost insertion point that
// keeps key's run of equal elements to key's left.
func UpperBound(v View, keyPos int) int { return Search(v, keyPos, false) }

package core

// CollectKeys scans data front to back, pulling the first occurrence of up
// to numDesired distinct values to the very front, in ascending order,
// and stops as soon as it has that many (spec.md §4.J). It returns the
// number of keys actually collected, which can be less than numDesired
// if the scanned prefix doesn't contain enough distinct values.
//
// The collected prefix [0, keys) is kept sorted throughout the scan. For
// each new candidate at position cur, LowerBound locates where its value
// belongs in the sorted key prefix. An exact match there means cur is a
// duplicate value, not a new key, and is left where it is. Otherwise the
// span from that insertion point through cur is rotated by one so cur
// lands at the insertion point and everything after it — the rest of the
// key prefix plus whatever non-key elements were skipped along the way —
// shifts up by one, keeping the key prefix sorted and growing it by one.
func CollectKeys(data Interface, numDesired int) int {
	n := data.Len()
	if n == 0 || numDesired == 0 {
		return 0
	}
	keys := 1
	for cur := 1; cur < n && keys < numDesired; cur++ {
		v := NewView(data)
		prefix := v.To(keys)
		insertAt := LowerBound(prefix, cur)
		if insertAt < keys && !data.Less(cur, prefix.At(insertAt)) {
			continue
		}
		Rotate(v.Slice(insertAt, cur+1), cur-insertAt)
		keys++
	}
	return keys
}

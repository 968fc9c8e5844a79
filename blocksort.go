// Package blocksort sorts a slice of any type in place, stably, in O(n log
// n) comparisons worst case, using O(1) auxiliary memory and no heap
// allocation — a block merge sort ("Grailsort"/"WikiSort" family) that
// carves its own scratch space out of the slice it is sorting instead of
// allocating one.
//
// The generic entry points here bind a concrete element type T to
// internal/core's untyped Interface, then hand off to the core. Sort takes
// a boolean less func in the shape of sort.Slice; SortOrdered defaults it to
// natural ordering for constraints.Ordered types; SortBy composes a
// projection into the comparator before it ever reaches the core; and
// SortWithComparator adapts a three-way comparer.Comparator[T].
package blocksort

import (
	"blocksort/comparer"
	"blocksort/internal/core"

	"golang.org/x/exp/constraints"
)

// sliceInterface adapts a []T and a less func into core.Interface.
type sliceInterface[T any] struct {
	data []T
	less func(a, b T) bool
}

func (s sliceInterface[T]) Len() int           { return len(s.data) }
func (s sliceInterface[T]) Less(i, j int) bool { return s.less(s.data[i], s.data[j]) }
func (s sliceInterface[T]) Swap(i, j int)      { s.data[i], s.data[j] = s.data[j], s.data[i] }

// Sort sorts data in place according to less, which must implement a strict
// weak ordering (spec.md §3): irreflexive, and transitive both directly and
// over its induced incomparability relation. Sort is stable: elements for
// which neither less(a, b) nor less(b, a) holds keep their original
// relative order.
func Sort[T any](data []T, less func(a, b T) bool) {
	core.Sort(sliceInterface[T]{data: data, less: less})
}

// SortOrdered sorts data of a natively ordered type into ascending order.
func SortOrdered[T constraints.Ordered](data []T) {
	Sort(data, func(a, b T) bool { return a < b })
}

// SortBy sorts data by comparing a projection of each element, exactly as
// if less had been composed with proj beforehand — spec.md §6's optional
// projection parameter, made a first-class entry point per SPEC_FULL.md.
func SortBy[T, K any](data []T, proj func(T) K, less func(a, b K) bool) {
	Sort(data, func(a, b T) bool { return less(proj(a), proj(b)) })
}

// SortWithComparator sorts data using a three-way comparer.Comparator,
// for callers porting a comparator that already returns an int rather than
// a boolean less-than.
func SortWithComparator[T any](data []T, cmp comparer.Comparator[T]) {
	Sort(data, func(a, b T) bool { return cmp.Compare(a, b) < 0 })
}

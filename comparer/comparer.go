// Package comparer provides a three-way comparison interface for
// blocksort, for callers porting a comparator that already returns an
// int rather than a boolean less-than — the shape bytes.Compare and
// most hand-written comparators already have. It is a generic
// reworking of the teacher's single, byte-slice-only BasicComparer.
package comparer

import "bytes"

// Comparator reports the three-way order of a and b: negative if a
// sorts before b, zero if they're equal, positive if a sorts after b.
type Comparator[T any] interface {
	Compare(a, b T) int
}

// Func adapts a plain three-way comparison function into a Comparator.
type Func[T any] func(a, b T) int

func (f Func[T]) Compare(a, b T) int { return f(a, b) }

// DefaultComparer compares []byte lexicographically, the teacher's
// original and only comparer.
var DefaultComparer Comparator[[]byte] = ByteComparer{}

// ByteComparer is the generic package's equivalent of the teacher's
// BasicComparer implementation.
type ByteComparer struct{}

func (ByteComparer) Compare(a, b []byte) int { return bytes.Compare(a, b) }

package core

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// taggedInts is an Interface over (value, tag) pairs, used throughout this
// package's tests to check both sortedness and stability without needing
// the public blocksort façade.
type taggedInts struct {
	value []int
	tag   []int
}

func newTaggedInts(values []int) *taggedInts {
	t := &taggedInts{value: append([]int(nil), values...), tag: make([]int, len(values))}
	for i := range t.tag {
		t.tag[i] = i
	}
	return t
}

func (t *taggedInts) Len() int           { return len(t.value) }
func (t *taggedInts) Less(i, j int) bool { return t.value[i] < t.value[j] }
func (t *taggedInts) Swap(i, j int) {
	t.value[i], t.value[j] = t.value[j], t.value[i]
	t.tag[i], t.tag[j] = t.tag[j], t.tag[i]
}

func (t *taggedInts) sorted() bool { return sort.IntsAreSorted(t.value) }

func (t *taggedInts) stable() bool {
	for i := 1; i < len(t.value); i++ {
		if t.value[i] == t.value[i-1] && t.tag[i] < t.tag[i-1] {
			return false
		}
	}
	return true
}

func TestSortRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 200; trial++ {
		n := rng.Intn(300)
		values := make([]int, n)
		for i := range values {
			values[i] = rng.Intn(20)
		}
		ti := newTaggedInts(values)
		Sort(ti)
		require.True(t, ti.sorted(), "trial %d: %v", trial, values)
		require.True(t, ti.stable(), "trial %d: %v", trial, values)
	}
}

func TestSortSmallLengths(t *testing.T) {
	for n := 0; n <= 8; n++ {
		values := make([]int, n)
		for i := range values {
			values[i] = n - i
		}
		ti := newTaggedInts(values)
		Sort(ti)
		assert.True(t, ti.sorted())
	}
}

func TestSort0To8Stable(t *testing.T) {
	for n := 0; n <= 8; n++ {
		values := make([]int, n)
		for i := range values {
			values[i] = 1 // all equal, so any swap breaks stability
		}
		ti := newTaggedInts(values)
		Sort0To8(NewView(ti))
		for i, tag := range ti.tag {
			assert.Equal(t, i, tag)
		}
	}
}

func TestCollectKeysDistinctCount(t *testing.T) {
	values := []int{1, 2, 1, 3, 2, 4, 1, 5, 6, 7}
	ti := newTaggedInts(values)
	got := CollectKeys(ti, 4)
	assert.Equal(t, 4, got)
	prefix := ti.value[:got]
	assert.True(t, sort.IntsAreSorted(prefix))
	seen := map[int]bool{}
	for _, v := range prefix {
		assert.False(t, seen[v], "duplicate %d in key prefix", v)
		seen[v] = true
	}
}

func TestCollectKeysFewerThanDesired(t *testing.T) {
	values := []int{1, 1, 1, 1, 1}
	ti := newTaggedInts(values)
	got := CollectKeys(ti, 4)
	assert.Equal(t, 1, got)
}

func TestSequenceDividerSumsToLength(t *testing.T) {
	for length := 0; length < 40; length++ {
		for logParts := 0; logParts < 4; logParts++ {
			d := NewSequenceDivider(length, logParts, true)
			sum := 0
			min, max := length, 0
			for i := 0; i < d.NumParts(); i++ {
				n := d.Next()
				sum += n
				if n < min {
					min = n
				}
				if n > max {
					max = n
				}
			}
			assert.Equal(t, length, sum)
			assert.LessOrEqual(t, max-min, 1)
		}
	}
}

func TestOverApproxSqrtBounds(t *testing.T) {
	for x := 8; x < 5000; x++ {
		r := OverApproxSqrt(x)
		assert.GreaterOrEqual(t, r*r, x)
		assert.Less(t, (r-1)*(r-1), x+2*r)
	}
}

func TestCeilDiv(t *testing.T) {
	cases := []struct{ a, b, want int }{
		{0, 5, 0},
		{1, 5, 1},
		{5, 5, 1},
		{6, 5, 2},
		{10, 5, 2},
		{11, 5, 3},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, CeilDiv(c.a, c.b))
	}
}

func TestRotate(t *testing.T) {
	for n := 0; n < 20; n++ {
		for mid := 0; mid <= n; mid++ {
			values := make([]int, n)
			for i := range values {
				values[i] = i
			}
			ti := newTaggedInts(values)
			Rotate(NewView(ti), mid)

			want := append(append([]int(nil), values[mid:]...), values[:mid]...)
			assert.Equal(t, want, ti.value, "n=%d mid=%d", n, mid)
		}
	}
}

func TestSearchBounds(t *testing.T) {
	values := []int{1, 3, 3, 3, 5, 7, 9}
	ti := newTaggedInts(append(values, 3))
	keyPos := len(values) // the appended extra 3
	v := NewView(ti).To(len(values))

	lower := LowerBound(v, keyPos)
	upper := UpperBound(v, keyPos)
	assert.Equal(t, 1, lower)
	assert.Equal(t, 4, upper)
}

func TestMergeWithBufStable(t *testing.T) {
	// xs = [1,3,5], ys = [3,4,6], buf immediately before xs. xs runs out
	// first (5 < 6), leaving ys's 6 at Rest=8 and the merged prefix at
	// [0, Rest-3) = [0, 5); the tied 3s must keep xs's (tag 4) first.
	values := []int{-1, -1, -1, 1, 3, 5, 3, 4, 6}
	ti := newTaggedInts(values)
	res := MergeWithBuf(ti, 0, 3, 3, 3, false)
	assert.True(t, res.XsConsumed)
	assert.Equal(t, 8, res.Rest)
	assert.Equal(t, []int{1, 3, 3, 4, 5}, ti.value[0:res.Rest-3])
	assert.Equal(t, []int{4, 6}, ti.tag[1:3])
}

func TestMergeWithoutBufSorted(t *testing.T) {
	values := []int{1, 3, 5, 7, 2, 4, 6, 8}
	ti := newTaggedInts(values)
	MergeWithoutBuf(ti, 0, 4, 8, false)
	assert.True(t, sort.IntsAreSorted(ti.value))
}

func TestFallbackSortDistinctValues(t *testing.T) {
	values := []int{9, 1, 8, 2, 7, 3, 6, 4, 5}
	ti := newTaggedInts(values)
	FallbackSort(NewView(ti))
	assert.True(t, sort.IntsAreSorted(ti.value))
}

func TestInterleaveBlocksNonDecreasingHeads(t *testing.T) {
	// two runs of 3 blocks of length 2 each: left heads 1,5,9; right heads 2,6,10
	values := []int{1, 1, 5, 5, 9, 9, 2, 2, 6, 6, 10, 10}
	ti := newTaggedInts(values)
	imit := newTaggedInts([]int{0, 1, 2, 3, 4, 5})
	InterleaveBlocks(ti, NewView(imit), 0, 2, 3, 3)
	for b := 0; b < 5; b++ {
		assert.LessOrEqual(t, ti.value[b*2], ti.value[(b+1)*2])
	}
}

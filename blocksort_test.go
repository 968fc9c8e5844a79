package blocksort

import (
	"sort"
	"testing"
	"testing/quick"

	"blocksort/comparer"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tagged carries a value plus its original index, so stability can be
// checked directly: elements with equal value must keep ascending tag order
// after sorting.
type tagged struct {
	value int
	tag   int
}

func taggedInput(values []int) []tagged {
	out := make([]tagged, len(values))
	for i, v := range values {
		out[i] = tagged{value: v, tag: i}
	}
	return out
}

func isSorted(data []tagged) bool {
	for i := 1; i < len(data); i++ {
		if data[i].value < data[i-1].value {
			return false
		}
	}
	return true
}

func isStable(data []tagged) bool {
	for i := 1; i < len(data); i++ {
		if data[i].value == data[i-1].value && data[i].tag < data[i-1].tag {
			return false
		}
	}
	return true
}

func isPermutationOf(got, want []tagged) bool {
	if len(got) != len(want) {
		return false
	}
	seen := make(map[int]int, len(want))
	for _, e := range want {
		seen[e.tag]++
	}
	for _, e := range got {
		seen[e.tag]--
	}
	for _, n := range seen {
		if n != 0 {
			return false
		}
	}
	return true
}

func lessTagged(a, b tagged) bool { return a.value < b.value }

// TestSortProperties exercises spec.md §8's universal properties —
// permutation, sortedness, stability, idempotence, and sort∘reverse≡sort —
// with testing/quick over random inputs, the same tool influxdata-influxdb
// uses for its own round-trip properties.
func TestSortProperties(t *testing.T) {
	f := func(values []int) bool {
		original := taggedInput(values)

		got := append([]tagged(nil), original...)
		Sort(got, lessTagged)

		if !isPermutationOf(got, original) {
			return false
		}
		if !isSorted(got) {
			return false
		}
		if !isStable(got) {
			return false
		}

		idempotent := append([]tagged(nil), got...)
		Sort(idempotent, lessTagged)
		if !cmp.Equal(idempotent, got, cmp.AllowUnexported(tagged{})) {
			return false
		}

		reversed := make([]tagged, len(original))
		for i, e := range original {
			reversed[len(original)-1-i] = e
		}
		Sort(reversed, lessTagged)
		if !isSorted(reversed) {
			return false
		}
		for i := range reversed {
			if reversed[i].value != got[i].value {
				return false
			}
		}

		return true
	}
	require.NoError(t, quick.Check(f, &quick.Config{MaxCount: 500}))
}

// TestSortScenarios covers spec.md §8's named scenarios directly, so a
// failure names the exact case rather than a random seed.
func TestSortScenarios(t *testing.T) {
	scenarios := []struct {
		name string
		in   []int
	}{
		{"empty", nil},
		{"single", []int{1}},
		{"already sorted", []int{1, 2, 3, 4, 5, 6, 7, 8, 9}},
		{"reverse sorted", []int{9, 8, 7, 6, 5, 4, 3, 2, 1}},
		{"all equal", []int{5, 5, 5, 5, 5, 5, 5, 5, 5, 5}},
		{"few distinct values, many duplicates", []int{3, 1, 3, 1, 3, 1, 3, 1, 3, 1, 3, 1, 3, 1, 3, 1, 3, 1, 3, 1}},
		{"two runs", []int{1, 3, 5, 7, 9, 2, 4, 6, 8, 10}},
		{"long enough for a merge buffer to close", makeSawtooth(2000)},
	}

	for _, sc := range scenarios {
		t.Run(sc.name, func(t *testing.T) {
			got := taggedInput(sc.in)
			Sort(got, lessTagged)

			expectedValues := append([]int{}, sc.in...)
			sort.Ints(expectedValues)
			gotValues := make([]int, len(got))
			for i, e := range got {
				gotValues[i] = e.value
			}
			assert.Equal(t, expectedValues, gotValues)
			assert.True(t, isStable(got))
		})
	}
}

func makeSawtooth(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i % 37
	}
	return out
}

func TestSortOrdered(t *testing.T) {
	data := []string{"banana", "apple", "cherry", "apple"}
	SortOrdered(data)
	assert.Equal(t, []string{"apple", "apple", "banana", "cherry"}, data)
}

type person struct {
	name string
	age  int
}

func TestSortBy(t *testing.T) {
	people := []person{
		{"carol", 30},
		{"alice", 30},
		{"bob", 25},
	}
	SortBy(people, func(p person) int { return p.age }, func(a, b int) bool { return a < b })
	require.Len(t, people, 3)
	assert.Equal(t, "bob", people[0].name)
	// stable: carol was before alice among the age-30 pair.
	assert.Equal(t, "carol", people[1].name)
	assert.Equal(t, "alice", people[2].name)
}

func TestSortWithComparator(t *testing.T) {
	data := [][]byte{[]byte("banana"), []byte("apple"), []byte("cherry")}
	SortWithComparator(data, comparer.DefaultComparer)
	assert.Equal(t, [][]byte{[]byte("apple"), []byte("banana"), []byte("cherry")}, data)
}

func TestSortWithComparatorFunc(t *testing.T) {
	data := []int{5, 3, 4, 1, 2}
	SortWithComparator(data, comparer.Func[int](func(a, b int) int { return a - b }))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, data)
}

// Package core implements the block merge sort described by spec.md: an
// in-place, stable, O(n log n) comparison sort that uses a private region of
// the input itself (an "imitation buffer" plus a "merge buffer") as its only
// scratch space. It is deliberately modeled on sort.Interface from the Go
// standard library — Len/Less/Swap over integer positions — so that the
// generic entry points in the blocksort package need only adapt a slice and
// a comparator into one of these, once, at the boundary.
package core

// Interface is the minimal capability the core needs from a sequence: a
// length and the ability to compare and swap two positions. It carries no
// type parameter itself; blocksort.Sort binds T by constructing a concrete
// Interface value that closes over a []T and a comparator.
type Interface interface {
	Len() int
	Less(i, j int) bool
	Swap(i, j int)
}

// View is a first-index/length window into an Interface, used throughout
// the core instead of passing (first, last) position pairs around. All of
// the regions spec.md §3 describes — the imitation buffer, the merge
// buffer, a run, a block — are Views.
type View struct {
	data  Interface
	first int
	len   int
}

func NewView(data Interface) View {
	return View{data: data, first: 0, len: data.Len()}
}

func (v View) Len() int { return v.len }

func (v View) Less(i, j int) bool { return v.data.Less(v.first+i, v.first+j) }

func (v View) Swap(i, j int) { v.data.Swap(v.first+i, v.first+j) }

// Slice returns the sub-view [lo, hi).
func (v View) Slice(lo, hi int) View {
	return View{data: v.data, first: v.first + lo, len: hi - lo}
}

// From returns the sub-view [lo, v.Len()).
func (v View) From(lo int) View { return v.Slice(lo, v.len) }

// To returns the sub-view [0, hi).
func (v View) To(hi int) View { return v.Slice(0, hi) }

// At reports the absolute index data index that v's local index i refers
// to, for callers that need to pass a position down to a raw Interface.
func (v View) At(i int) int { return v.first + i }

// Base returns the underlying Interface, for callers that must call
// Interface methods directly rather than through View's relative indices.
func (v View) Base() Interface { return v.data }

// sub adapts a View itself into an Interface, so that a whole sub-window
// (e.g. the data region after the collected-keys prefix) can be handed to
// functions that take an Interface, such as SortLeaves.
type sub struct{ v View }

func (s sub) Len() int             { return s.v.Len() }
func (s sub) Less(i, j int) bool   { return s.v.Less(i, j) }
func (s sub) Swap(i, j int)        { s.v.Swap(i, j) }

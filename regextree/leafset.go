package regextree

import "github.com/ghallak/lexical-analyzer/internal/iteratable"

// LeafSet is a set of leaf indices: the position-set currency of the
// firstpos/lastpos/followpos annotations. Leaf indices are small dense
// integers (0..L-1), so a map[int]struct{} is the simplest correct
// representation; no hashing scheme is needed beyond Go's native int keys.
type LeafSet map[int]struct{}

// NewLeafSet returns a LeafSet containing exactly the given indices.
func NewLeafSet(indices ...int) LeafSet {
	s := make(LeafSet, len(indices))
	for _, i := range indices {
		s[i] = struct{}{}
	}
	return s
}

// Add inserts leaf index i into s.
func (s LeafSet) Add(i int) {
	s[i] = struct{}{}
}

// Contains reports whether i is in s.
func (s LeafSet) Contains(i int) bool {
	_, ok := s[i]
	return ok
}

// Union returns a new LeafSet containing every index in s or other.
func (s LeafSet) Union(other LeafSet) LeafSet {
	u := make(LeafSet, len(s)+len(other))
	for i := range s {
		u[i] = struct{}{}
	}
	for i := range other {
		u[i] = struct{}{}
	}
	return u
}

// AddAll inserts every index of other into s, in place.
func (s LeafSet) AddAll(other LeafSet) {
	for i := range other {
		s[i] = struct{}{}
	}
}

// Sorted returns s's indices in ascending order, for deterministic iteration.
func (s LeafSet) Sorted() []int {
	out := make([]int, 0, len(s))
	for i := range s {
		out = append(out, i)
	}
	// insertion sort is fine: leaf sets are small (bounded by regex length)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

// Key renders s as a canonical, comparable string suitable for map keys
// (e.g. deduping DFA states built from position sets during direct
// construction).
func (s LeafSet) Key() string {
	return iteratable.Key(s.Sorted())
}

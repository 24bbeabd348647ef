package match

// Index identifies one member of side K. Indices are dense, zero-based, and
// assigned in Names insertion order; they are never reused or renumbered.
//
// Index[Big] and Index[Little] are distinct types with no conversion between
// them, so a Big's identity can never be used where a Little's is expected.
type Index[K Kind] struct {
	i uint32
}

// NewIndex builds an Index for side K from a raw zero-based position.
func NewIndex[K Kind](i uint32) Index[K] {
	return Index[K]{i: i}
}

// Position returns the raw zero-based position.
func (x Index[K]) Position() int {
	return int(x.i)
}

// Rank is the 1-based position a member of side K gave a member of the
// opposite side in its preference row. Rank 1 is the most preferred.
//
// Ranks are only produced by PreferenceTable lookups; a missing rank means
// the other member is unacceptable to the ranking one.
type Rank[K Kind] struct {
	r uint32
}

// Value returns the 1-based rank value.
func (r Rank[K]) Value() int {
	return int(r.r)
}

// Better reports whether r is strictly more preferred than other.
func (r Rank[K]) Better(other Rank[K]) bool {
	return r.r < other.r
}

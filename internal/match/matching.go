package match

import "sort"

// Matching pairs one Big with the Littles currently assigned to it. Littles
// is kept ordered by the Big's own preference, most preferred first; Littles
// the Big never ranked sort after all ranked ones, keeping their relative
// insertion order.
type Matching struct {
	Big     Index[Big]
	Littles []Index[Little]
}

// MatchingSet is the outcome of a matching run: the matchings, kept
// ascending by Big index, plus the members of each side left without a
// counterpart.
//
// Invariants: every registered Big either owns exactly one Matching or is in
// the unmatched-Bigs set; every registered Little is in at most one
// Matching's Littles and otherwise in the unmatched-Littles set.
type MatchingSet struct {
	matchings        []Matching
	unmatchedBigs    []Index[Big]
	unmatchedLittles []Index[Little]
}

// Matchings returns the matchings, ascending by Big index.
func (m *MatchingSet) Matchings() []Matching {
	return m.matchings
}

// UnmatchedBigs returns the Bigs that own no matching, ascending by index.
func (m *MatchingSet) UnmatchedBigs() []Index[Big] {
	return m.unmatchedBigs
}

// UnmatchedLittles returns the Littles that ended up unassigned, in the
// order the run gave up on them.
func (m *MatchingSet) UnmatchedLittles() []Index[Little] {
	return m.unmatchedLittles
}

// find locates the matching owned by big. When big owns none, the returned
// position is where its matching would be inserted.
func (m *MatchingSet) find(big Index[Big]) (int, bool) {
	pos := sort.Search(len(m.matchings), func(i int) bool {
		return m.matchings[i].Big.Position() >= big.Position()
	})

	return pos, pos < len(m.matchings) && m.matchings[pos].Big == big
}

// assign records little as matched to big. A new matching is spliced in at
// the position keeping the collection ascending by Big index; an existing
// one has its Littles re-sorted by big's preference after the insert.
func (m *MatchingSet) assign(big Index[Big], little Index[Little], bigs Side[Big, Little]) {
	pos, ok := m.find(big)
	if !ok {
		m.matchings = append(m.matchings, Matching{})
		copy(m.matchings[pos+1:], m.matchings[pos:])
		m.matchings[pos] = Matching{Big: big, Littles: []Index[Little]{little}}

		return
	}

	mt := &m.matchings[pos]
	mt.Littles = append(mt.Littles, little)
	sortByPreference(big, mt.Littles, bigs)
}

// remove drops the matching at pos from the collection.
func (m *MatchingSet) remove(pos int) {
	m.matchings = append(m.matchings[:pos], m.matchings[pos+1:]...)
}

// largest returns the position of the matching with the most Littles. Ties
// keep the earliest position in the (Big-ascending) collection. The caller
// guarantees the collection is non-empty.
func (m *MatchingSet) largest() int {
	best := 0
	for i := 1; i < len(m.matchings); i++ {
		if len(m.matchings[i].Littles) > len(m.matchings[best].Littles) {
			best = i
		}
	}

	return best
}

// evenlyLoaded reports whether all matchings hold the same number of Littles.
func (m *MatchingSet) evenlyLoaded() bool {
	for i := 1; i < len(m.matchings); i++ {
		if len(m.matchings[i].Littles) != len(m.matchings[0].Littles) {
			return false
		}
	}

	return true
}

// collectUnmatchedBigs records every Big index in [0, total) that owns no
// matching, ascending.
func (m *MatchingSet) collectUnmatchedBigs(total int) {
	m.unmatchedBigs = nil

	for i := 0; i < total; i++ {
		big := NewIndex[Big](uint32(i))
		if _, ok := m.find(big); !ok {
			m.unmatchedBigs = append(m.unmatchedBigs, big)
		}
	}
}

// sortByPreference orders littles by the rank big gives each one, best
// first. Unranked littles go last, keeping their relative order.
func sortByPreference(big Index[Big], littles []Index[Little], bigs Side[Big, Little]) {
	sort.SliceStable(littles, func(i, j int) bool {
		ri, iok := bigs.Rank(big, littles[i])
		rj, jok := bigs.Rank(big, littles[j])

		switch {
		case iok && jok:
			return ri.Better(rj)
		case iok:
			return true
		default:
			return false
		}
	})
}

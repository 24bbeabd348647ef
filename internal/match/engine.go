package match

// MaximalMatching runs the greedy single-pass assignment. Littles are
// processed in ascending index order; each walks its own row best-first and
// is assigned to the first Big whose row lists it anywhere. No capacity
// balancing is attempted, so a popular Big may collect arbitrarily many
// Littles.
//
// The run is deterministic: identical tables produce identical results.
func (t *PreferenceTable) MaximalMatching() *MatchingSet {
	set := &MatchingSet{}
	t.greedyAssign(set)
	set.collectUnmatchedBigs(t.BigSide().Len())

	return set
}

// EvenMatching runs MaximalMatching and then redistributes load: it
// repeatedly evicts the least preferred Little of the currently largest
// matching and re-runs that Little's assignment walk further down its row.
//
// A Little only ever moves to Bigs it prefers less than ones already tried,
// and each eviction strictly advances its skip offset, so the loop
// terminates. The redistribution stops once every registered Big owns a
// matching, no matchings remain, or several matchings all carry equal load.
func (t *PreferenceTable) EvenMatching() *MatchingSet {
	set := &MatchingSet{}
	t.greedyAssign(set)
	t.redistribute(set)
	set.collectUnmatchedBigs(t.BigSide().Len())

	return set
}

func (t *PreferenceTable) greedyAssign(set *MatchingSet) {
	for i := 0; i < t.LittleSide().Len(); i++ {
		l := NewIndex[Little](uint32(i))
		if !t.assignFrom(set, l, 0) {
			set.unmatchedLittles = append(set.unmatchedLittles, l)
		}
	}
}

// assignFrom walks l's preference row starting at offset and assigns l to
// the first acceptable Big, reporting whether one was found.
//
// Acceptability is one-directional: the Big must list l somewhere in its own
// row. Where the Big ranks l does not matter, and a Big that l lists but
// that never lists l back is skipped.
func (t *PreferenceTable) assignFrom(set *MatchingSet, l Index[Little], offset int) bool {
	bigs := t.BigSide()

	row := t.LittleSide().Row(l)
	if offset >= len(row) {
		return false
	}

	for _, b := range row[offset:] {
		if _, ok := bigs.Rank(b, l); ok {
			set.assign(b, l, bigs)
			return true
		}
	}

	return false
}

// redistribute is the eviction loop of EvenMatching. skipped tracks, per
// Little, how many leading row entries its next walk must skip; it counts
// the evictions the Little has suffered.
func (t *PreferenceTable) redistribute(set *MatchingSet) {
	bigs := t.BigSide()
	skipped := make(map[Index[Little]]int)

	for {
		if len(set.matchings) == 0 {
			return
		}

		if len(set.matchings) == bigs.Len() {
			return
		}

		// A lone matching stays eligible for eviction; equal load only
		// terminates once the Littles are spread over several Bigs.
		if len(set.matchings) > 1 && set.evenlyLoaded() {
			return
		}

		pos := set.largest()
		mt := &set.matchings[pos]

		l := mt.Littles[len(mt.Littles)-1]
		mt.Littles = mt.Littles[:len(mt.Littles)-1]
		if len(mt.Littles) == 0 {
			set.remove(pos)
		}

		skipped[l]++
		if !t.assignFrom(set, l, skipped[l]) {
			// Row exhausted: l stays unmatched and is never retried.
			set.unmatchedLittles = append(set.unmatchedLittles, l)
		}
	}
}

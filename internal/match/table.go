package match

// PreferenceTable stores, for every member of each side, the ordered list of
// opposite-side indices that member ranked, best first. The zero value is
// ready to use.
//
// Rows are appended in registry index order by the caller; the table does
// not re-validate that alignment. Entries pointing outside the opposite
// side's registered range are tolerated: they can never be reciprocated, so
// they behave as permanently unacceptable at matching time.
type PreferenceTable struct {
	big    [][]Index[Little]
	little [][]Index[Big]
}

// Side is a view of one side's preference rows paired with the opposite
// side. Sides are only constructible through BigSide and LittleSide, which
// pin the Big/Little pairing, so a Rank query can never mix sides.
type Side[K, O Kind] struct {
	rows *[][]Index[O]
}

// BigSide returns the view of the Bigs' preference rows.
func (t *PreferenceTable) BigSide() Side[Big, Little] {
	return Side[Big, Little]{rows: &t.big}
}

// LittleSide returns the view of the Littles' preference rows.
func (t *PreferenceTable) LittleSide() Side[Little, Big] {
	return Side[Little, Big]{rows: &t.little}
}

// Insert appends a preference row for the next member of side K and returns
// that member's row index. Repeated entries are dropped, keeping the first
// occurrence, so the stored row is a set in insertion order.
func (s Side[K, O]) Insert(prefs []Index[O]) Index[K] {
	row := make([]Index[O], 0, len(prefs))
	seen := make(map[Index[O]]struct{}, len(prefs))

	for _, p := range prefs {
		if _, dup := seen[p]; dup {
			continue
		}

		seen[p] = struct{}{}
		row = append(row, p)
	}

	idx := NewIndex[K](uint32(len(*s.rows)))
	*s.rows = append(*s.rows, row)

	return idx
}

// Len returns the number of rows on side K.
func (s Side[K, O]) Len() int {
	return len(*s.rows)
}

// Row returns self's preference row, best first. Members without a row
// (out-of-range indices) get an empty row.
func (s Side[K, O]) Row(self Index[K]) []Index[O] {
	if self.Position() >= len(*s.rows) {
		return nil
	}

	return (*s.rows)[self.Position()]
}

// Rank returns the 1-based position of other in self's row. The second
// return is false when self never ranked other; that includes the case of
// self having no row at all. Both mean other is unacceptable to self.
//
// This is a linear scan of the row and the hottest primitive in the engine.
func (s Side[K, O]) Rank(self Index[K], other Index[O]) (Rank[K], bool) {
	for i, p := range s.Row(self) {
		if p == other {
			return Rank[K]{r: uint32(i + 1)}, true
		}
	}

	return Rank[K]{}, false
}

// Best returns the candidate self ranks highest among candidates, with the
// rank self gives it. Candidates self never ranked are skipped; equal ranks
// keep the earliest candidate. The third return is false when self ranks no
// candidate at all.
func (s Side[K, O]) Best(self Index[K], candidates []Index[O]) (Index[O], Rank[K], bool) {
	var (
		best  Index[O]
		rank  Rank[K]
		found bool
	)

	for _, c := range candidates {
		r, ok := s.Rank(self, c)
		if !ok {
			continue
		}

		if !found || r.Better(rank) {
			best, rank, found = c, r, true
		}
	}

	return best, rank, found
}

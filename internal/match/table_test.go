package match

import (
	"testing"
)

func littleIndices(positions ...uint32) []Index[Little] {
	out := make([]Index[Little], len(positions))
	for i, p := range positions {
		out[i] = NewIndex[Little](p)
	}

	return out
}

func bigIndices(positions ...uint32) []Index[Big] {
	out := make([]Index[Big], len(positions))
	for i, p := range positions {
		out[i] = NewIndex[Big](p)
	}

	return out
}

func TestSideInsertAssignsRowIndices(t *testing.T) {
	var table PreferenceTable
	bigs := table.BigSide()

	for want := 0; want < 3; want++ {
		idx := bigs.Insert(littleIndices(0, 1))
		if idx.Position() != want {
			t.Errorf("Insert row %d got index %d", want, idx.Position())
		}
	}

	if bigs.Len() != 3 {
		t.Errorf("Len() = %d, want 3", bigs.Len())
	}
}

func TestSideInsertDropsRepeats(t *testing.T) {
	var table PreferenceTable
	bigs := table.BigSide()

	idx := bigs.Insert(littleIndices(2, 0, 2, 1, 0))

	row := bigs.Row(idx)
	want := littleIndices(2, 0, 1)
	if len(row) != len(want) {
		t.Fatalf("row length = %d, want %d", len(row), len(want))
	}

	for i := range want {
		if row[i] != want[i] {
			t.Errorf("row[%d] = %v, want %v", i, row[i], want[i])
		}
	}
}

func TestSideRank(t *testing.T) {
	var table PreferenceTable
	littles := table.LittleSide()
	self := littles.Insert(bigIndices(3, 1, 0))

	tests := []struct {
		name  string
		other Index[Big]
		rank  int
		ok    bool
	}{
		{"first entry is rank 1", NewIndex[Big](3), 1, true},
		{"middle entry", NewIndex[Big](1), 2, true},
		{"last entry", NewIndex[Big](0), 3, true},
		{"unlisted entry", NewIndex[Big](2), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, ok := littles.Rank(self, tt.other)
			if ok != tt.ok {
				t.Fatalf("Rank ok = %v, want %v", ok, tt.ok)
			}
			if ok && r.Value() != tt.rank {
				t.Errorf("Rank = %d, want %d", r.Value(), tt.rank)
			}
		})
	}
}

func TestSideRankOutOfRangeSelf(t *testing.T) {
	var table PreferenceTable

	// No rows at all: any self index ranks nothing.
	if _, ok := table.BigSide().Rank(NewIndex[Big](5), NewIndex[Little](0)); ok {
		t.Error("rank defined for a self index with no row")
	}
}

func TestSideBest(t *testing.T) {
	var table PreferenceTable
	bigs := table.BigSide()
	self := bigs.Insert(littleIndices(4, 2, 7, 1))

	tests := []struct {
		name       string
		candidates []Index[Little]
		best       Index[Little]
		rank       int
		ok         bool
	}{
		{
			name:       "picks the smallest rank",
			candidates: littleIndices(1, 7, 2),
			best:       NewIndex[Little](2),
			rank:       2,
			ok:         true,
		},
		{
			name:       "skips unranked candidates",
			candidates: littleIndices(9, 1, 8),
			best:       NewIndex[Little](1),
			rank:       4,
			ok:         true,
		},
		{
			name:       "no ranked candidate",
			candidates: littleIndices(9, 8),
			ok:         false,
		},
		{
			name:       "empty candidate set",
			candidates: nil,
			ok:         false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			best, rank, ok := bigs.Best(self, tt.candidates)
			if ok != tt.ok {
				t.Fatalf("Best ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if best != tt.best {
				t.Errorf("Best = %v, want %v", best, tt.best)
			}
			if rank.Value() != tt.rank {
				t.Errorf("rank = %d, want %d", rank.Value(), tt.rank)
			}
		})
	}
}

func TestRankBetter(t *testing.T) {
	var table PreferenceTable
	bigs := table.BigSide()
	self := bigs.Insert(littleIndices(0, 1))

	first, _ := bigs.Rank(self, NewIndex[Little](0))
	second, _ := bigs.Rank(self, NewIndex[Little](1))

	if !first.Better(second) {
		t.Error("rank 1 should be better than rank 2")
	}
	if second.Better(first) {
		t.Error("rank 2 should not be better than rank 1")
	}
	if first.Better(first) {
		t.Error("a rank should not be better than itself")
	}
}

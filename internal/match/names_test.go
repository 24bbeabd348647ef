package match

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamesInsertAssignsDenseIndices(t *testing.T) {
	var names Names
	bigs := names.Bigs()

	for i, name := range []string{"Ana", "Bo", "Cleo"} {
		idx, err := bigs.Insert(name)
		require.NoError(t, err)
		assert.Equal(t, i, idx.Position())
	}

	assert.Equal(t, 3, bigs.Len())
}

func TestNamesInsertIsIdempotentWithinSide(t *testing.T) {
	var names Names
	littles := names.Littles()

	first, err := littles.Insert("Pat")
	require.NoError(t, err)

	again, err := littles.Insert("Pat")
	require.NoError(t, err)

	assert.Equal(t, first, again)
	assert.Equal(t, 1, littles.Len())
}

func TestNamesRejectsCrossSideDuplicates(t *testing.T) {
	var names Names

	_, err := names.Bigs().Insert("Sam")
	require.NoError(t, err)

	_, err = names.Littles().Insert("Sam")
	require.ErrorIs(t, err, ErrNameTaken)

	// The failed insert must leave the Little side untouched.
	assert.Equal(t, 0, names.Littles().Len())
	_, ok := names.Littles().IndexOf("Sam")
	assert.False(t, ok)

	// And the other direction.
	_, err = names.Littles().Insert("Kim")
	require.NoError(t, err)
	_, err = names.Bigs().Insert("Kim")
	require.ErrorIs(t, err, ErrNameTaken)
}

func TestNamesLookupRoundTrip(t *testing.T) {
	var names Names
	bigs := names.Bigs()

	idx, err := bigs.Insert("Ana")
	require.NoError(t, err)

	got, ok := bigs.IndexOf("Ana")
	require.True(t, ok)
	assert.Equal(t, idx, got)

	name, ok := bigs.NameOf(idx)
	require.True(t, ok)
	assert.Equal(t, "Ana", name)
}

func TestNamesLookupAbsent(t *testing.T) {
	var names Names
	bigs := names.Bigs()

	_, ok := bigs.IndexOf("nobody")
	assert.False(t, ok)

	_, ok = bigs.NameOf(NewIndex[Big](7))
	assert.False(t, ok)
}

func TestNamesSidesStayDisjoint(t *testing.T) {
	var names Names

	for i := 0; i < 5; i++ {
		_, err := names.Bigs().Insert(fmt.Sprintf("B%d", i))
		require.NoError(t, err)
		_, err = names.Littles().Insert(fmt.Sprintf("L%d", i))
		require.NoError(t, err)
	}

	for i := 0; i < 5; i++ {
		_, ok := names.Littles().IndexOf(fmt.Sprintf("B%d", i))
		assert.False(t, ok)
		_, ok = names.Bigs().IndexOf(fmt.Sprintf("L%d", i))
		assert.False(t, ok)
	}
}

package chronos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComparer_LocalVersusInstant(t *testing.T) {
	paris := mustODT(t, 2013, 3, 4, 20, 21, 0, 3600)    // 19:21Z
	denver := mustODT(t, 2013, 3, 4, 19, 21, 0, -7*3600) // 02:21Z next day

	// The +01:00 value has the later local clock reading...
	cmp, err := CompareByLocal.Compare(paris, denver)
	require.NoError(t, err)
	assert.Equal(t, 1, cmp)

	// ...but the -07:00 value denotes the later absolute instant.
	cmp, err = CompareByInstant.Compare(paris, denver)
	require.NoError(t, err)
	assert.Equal(t, -1, cmp)
}

func TestComparer_LocalOrdersByDateThenTime(t *testing.T) {
	a := mustODT(t, 2013, 3, 4, 23, 0, 0, 0)
	b := mustODT(t, 2013, 3, 5, 1, 0, 0, 0)
	c := mustODT(t, 2013, 3, 5, 2, 0, 0, -10*3600)

	cmp, err := CompareByLocal.Compare(a, b)
	require.NoError(t, err)
	assert.Equal(t, -1, cmp)

	// Offset is ignored entirely by the local order.
	cmp, err = CompareByLocal.Compare(b, c)
	require.NoError(t, err)
	assert.Equal(t, -1, cmp)

	eq, err := CompareByLocal.Equal(a, a)
	require.NoError(t, err)
	assert.True(t, eq)
}

func TestComparer_LocalFailsAcrossCalendars(t *testing.T) {
	g := mustODT(t, 2013, 3, 4, 12, 0, 0, 0)
	j, err := g.WithCalendar(Julian)
	require.NoError(t, err)

	_, err = CompareByLocal.Compare(g, j)
	require.Error(t, err)
	assert.True(t, IsCode(err, CodeArgument))

	eq, err := CompareByLocal.Equal(g, j)
	require.Error(t, err)
	assert.True(t, IsCode(err, CodeArgument))
	assert.False(t, eq)
}

func TestComparer_InstantToleratesCalendarsAndOffsets(t *testing.T) {
	g := mustODT(t, 2013, 3, 4, 12, 0, 0, 0)
	j, err := g.WithCalendar(Julian)
	require.NoError(t, err)
	shifted, err := g.WithOffset(MustOffsetFromHours(5))
	require.NoError(t, err)

	for _, other := range []OffsetDateTime{j, shifted} {
		cmp, err := CompareByInstant.Compare(g, other)
		require.NoError(t, err)
		assert.Equal(t, 0, cmp)

		eq, err := CompareByInstant.Equal(g, other)
		require.NoError(t, err)
		assert.True(t, eq)
	}
}

func TestComparer_HashConsistency(t *testing.T) {
	g := mustODT(t, 2013, 3, 4, 12, 0, 0, 0)
	shifted, err := g.WithOffset(MustOffsetFromHours(5))
	require.NoError(t, err)

	// Local: same local fields hash alike regardless of offset.
	sameLocal := mustODT(t, 2013, 3, 4, 12, 0, 0, -3*3600)
	assert.Equal(t, CompareByLocal.Hash(g), CompareByLocal.Hash(sameLocal))

	// Instant: same instant hashes alike regardless of offset.
	assert.Equal(t, CompareByInstant.Hash(g), CompareByInstant.Hash(shifted))
	assert.NotEqual(t, CompareByInstant.Hash(g), CompareByInstant.Hash(sameLocal))
}

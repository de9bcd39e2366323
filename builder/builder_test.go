package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/koenigsberg/builder"
	"github.com/katalvlaran/koenigsberg/mapping"
)

func TestRing_ShapeAndNormalization(t *testing.T) {
	paths, nodes, err := builder.Ring(6)
	require.NoError(t, err)
	assert.Len(t, paths, 6)
	assert.Len(t, nodes, 6)

	m, err := mapping.Normalize(paths, nodes)
	require.NoError(t, err)
	assert.Equal(t, 6, m.PathCount())
	for _, ids := range m.NodesToPaths {
		assert.Len(t, ids, 2, "every ring node has degree 2")
	}
}

func TestRing_TooSmall(t *testing.T) {
	_, _, err := builder.Ring(2)
	assert.ErrorIs(t, err, builder.ErrTooFewNodes)
}

func TestComplete_PathCount(t *testing.T) {
	tests := []struct {
		n    int
		want int // n*(n-1)/2
	}{
		{2, 1},
		{4, 6},
		{5, 10},
	}
	for _, tc := range tests {
		paths, nodes, err := builder.Complete(tc.n)
		require.NoError(t, err)
		assert.Len(t, paths, tc.want)

		m, err := mapping.Normalize(paths, nodes)
		require.NoError(t, err)
		assert.Equal(t, tc.want, m.PathCount())
	}
}

func TestComplete_TooSmall(t *testing.T) {
	_, _, err := builder.Complete(1)
	assert.ErrorIs(t, err, builder.ErrTooFewNodes)
}

func TestKoenigsberg_DegreePattern(t *testing.T) {
	paths, nodes := builder.Koenigsberg()
	m, err := mapping.Normalize(paths, nodes)
	require.NoError(t, err)

	assert.Equal(t, 7, m.PathCount())
	degrees := make([]int, 0, 4)
	for _, label := range []string{"A", "B", "C", "D"} {
		degrees = append(degrees, len(m.NodesToPaths[m.NodeIDs[label]]))
	}
	assert.Equal(t, []int{5, 3, 3, 3}, degrees)
}

func TestLargerMaps_Normalize(t *testing.T) {
	paths, nodes, err := builder.TenSpotHexagon()
	require.NoError(t, err)
	m, err := mapping.Normalize(paths, nodes)
	require.NoError(t, err)
	assert.Equal(t, 19, m.PathCount())

	paths, nodes, err = builder.Cealdhame()
	require.NoError(t, err)
	m, err = mapping.Normalize(paths, nodes)
	require.NoError(t, err)
	assert.Equal(t, 50, m.PathCount())
}

func TestRing_Deterministic(t *testing.T) {
	p1, n1, err := builder.Ring(8)
	require.NoError(t, err)
	p2, n2, err := builder.Ring(8)
	require.NoError(t, err)
	assert.Equal(t, p1, p2)
	assert.Equal(t, n1, n2)
}

package mapping_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/koenigsberg/mapping"
)

// koenigsbergMaps returns the classical seven-bridge configuration:
// island A in the middle, B south, C north, D east; double bridges A↔C and
// A↔B, single bridges C↔D, A↔D, B↔D.
func koenigsbergMaps() (map[string][]string, map[string][]string) {
	pathsToNodes := map[string][]string{
		"1": {"C", "D"},
		"2": {"C", "A"},
		"3": {"C", "A"},
		"4": {"A", "B"},
		"5": {"A", "B"},
		"6": {"A", "D"},
		"7": {"B", "D"},
	}
	nodesToPaths := map[string][]string{
		"A": {"2", "3", "4", "5", "6"},
		"B": {"4", "5", "7"},
		"C": {"2", "3", "1"},
		"D": {"1", "6", "7"},
	}

	return pathsToNodes, nodesToPaths
}

func TestNormalize_Koenigsberg(t *testing.T) {
	p, n := koenigsbergMaps()
	m, err := mapping.Normalize(p, n)
	require.NoError(t, err)

	assert.Equal(t, 7, m.PathCount())
	assert.Len(t, m.NodesToPaths, 4)

	// Labels sorted ascending: paths "1".."7" → IDs 1..7, nodes A..D → 1..4.
	assert.Equal(t, mapping.PathID(1), m.PathIDs["1"])
	assert.Equal(t, mapping.PathID(7), m.PathIDs["7"])
	assert.Equal(t, mapping.NodeID(1), m.NodeIDs["A"])
	assert.Equal(t, mapping.NodeID(4), m.NodeIDs["D"])

	// Degree pattern 5-3-3-3.
	assert.Len(t, m.NodesToPaths[m.NodeIDs["A"]], 5)
	assert.Len(t, m.NodesToPaths[m.NodeIDs["B"]], 3)
	assert.Len(t, m.NodesToPaths[m.NodeIDs["C"]], 3)
	assert.Len(t, m.NodesToPaths[m.NodeIDs["D"]], 3)

	// Endpoints are stored with ascending node IDs.
	e := m.PathsToNodes[m.PathIDs["1"]]
	assert.Equal(t, mapping.Endpoints{m.NodeIDs["C"], m.NodeIDs["D"]}, e)
	assert.Equal(t, m.NodeIDs["D"], e.Other(m.NodeIDs["C"]))
	assert.Equal(t, m.NodeIDs["C"], e.Other(m.NodeIDs["D"]))
}

func TestNormalize_RoundTripLabels(t *testing.T) {
	p, n := koenigsbergMaps()
	m, err := mapping.Normalize(p, n)
	require.NoError(t, err)

	// Forward then reverse tables reproduce every original label.
	for label, id := range m.PathIDs {
		assert.Equal(t, label, m.PathLabels[id])
	}
	for label, id := range m.NodeIDs {
		assert.Equal(t, label, m.NodeLabels[id])
	}
	assert.Len(t, m.PathLabels, len(p))
	assert.Len(t, m.NodeLabels, len(n))
}

func TestNormalize_CandidateOrderAscending(t *testing.T) {
	p, n := koenigsbergMaps()
	m, err := mapping.Normalize(p, n)
	require.NoError(t, err)

	for _, ids := range m.NodesToPaths {
		for i := 1; i < len(ids); i++ {
			assert.Less(t, ids[i-1], ids[i])
		}
	}
}

func TestNormalize_Validation(t *testing.T) {
	tooMany := make(map[string][]string, 300)
	for i := 0; i < 300; i++ {
		tooMany[fmt.Sprintf("p%03d", i)] = []string{"X", "Y"}
	}

	tests := []struct {
		name  string
		paths map[string][]string
		nodes map[string][]string
		want  error
	}{
		{
			name:  "no paths",
			paths: map[string][]string{},
			nodes: map[string][]string{"A": {}},
			want:  mapping.ErrNotEnoughPaths,
		},
		{
			name:  "too many paths",
			paths: tooMany,
			nodes: map[string][]string{"X": {"p000"}, "Y": {"p000"}},
			want:  mapping.ErrTooManyPaths,
		},
		{
			name:  "three endpoints",
			paths: map[string][]string{"p": {"A", "B", "C"}},
			nodes: map[string][]string{"A": {"p"}, "B": {"p"}, "C": {"p"}},
			want:  mapping.ErrEndpointCount,
		},
		{
			name:  "self-loop endpoints",
			paths: map[string][]string{"p": {"A", "A"}},
			nodes: map[string][]string{"A": {"p"}},
			want:  mapping.ErrEndpointCount,
		},
		{
			name:  "unknown node",
			paths: map[string][]string{"p": {"A", "Z"}},
			nodes: map[string][]string{"A": {"p"}},
			want:  mapping.ErrUnknownNode,
		},
		{
			name:  "unknown path",
			paths: map[string][]string{"p": {"A", "B"}},
			nodes: map[string][]string{"A": {"p", "q"}, "B": {"p"}},
			want:  mapping.ErrUnknownPath,
		},
		{
			name:  "isolated node",
			paths: map[string][]string{"p": {"A", "B"}},
			nodes: map[string][]string{"A": {"p"}, "B": {"p"}, "C": {}},
			want:  mapping.ErrIsolatedNode,
		},
		{
			name:  "endpoint does not list path",
			paths: map[string][]string{"p": {"A", "B"}, "q": {"A", "B"}},
			nodes: map[string][]string{"A": {"p", "q"}, "B": {"p"}},
			want:  mapping.ErrInconsistent,
		},
		{
			name:  "node lists path not touching it",
			paths: map[string][]string{"p": {"A", "B"}, "q": {"A", "B"}},
			nodes: map[string][]string{"A": {"p", "q"}, "B": {"p", "q"}, "C": {"p"}},
			want:  mapping.ErrInconsistent,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := mapping.Normalize(tc.paths, tc.nodes)
			assert.Nil(t, m)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNormalize_TrailLabels(t *testing.T) {
	p, n := koenigsbergMaps()
	m, err := mapping.Normalize(p, n)
	require.NoError(t, err)

	trail := []byte{byte(m.PathIDs["2"]), byte(m.PathIDs["1"]), 0, 0}
	assert.Equal(t, []string{"2", "1"}, m.TrailLabels(trail))
}

func TestFromAdjacency_HexRing(t *testing.T) {
	graph := map[string][]string{
		"1": {"2", "6"},
		"2": {"1", "3"},
		"3": {"2", "4"},
		"4": {"3", "5"},
		"5": {"4", "6"},
		"6": {"1", "5"},
	}

	paths, nodes, err := mapping.FromAdjacency(graph)
	require.NoError(t, err)
	assert.Len(t, paths, 6)
	assert.Len(t, nodes, 6)
	assert.Equal(t, []string{"1", "2"}, paths["(1, 2)"])
	assert.Contains(t, nodes["1"], "(1, 2)")
	assert.Contains(t, nodes["1"], "(1, 6)")

	m, err := mapping.Normalize(paths, nodes)
	require.NoError(t, err)
	assert.Equal(t, 6, m.PathCount())
}

func TestFromAdjacency_Asymmetric(t *testing.T) {
	graph := map[string][]string{
		"A": {"B", "C"},
		"B": {"C"}, // missing the B→A back-reference
		"C": {"A", "B"},
	}

	_, _, err := mapping.FromAdjacency(graph)
	assert.ErrorIs(t, err, mapping.ErrAsymmetric)
}

func TestFromAdjacency_IsolatedNode(t *testing.T) {
	graph := map[string][]string{
		"A": {"B"},
		"B": {"A"},
		"C": {},
	}

	_, _, err := mapping.FromAdjacency(graph)
	assert.ErrorIs(t, err, mapping.ErrIsolatedNode)
}

func TestFromAdjacency_UnknownDestination(t *testing.T) {
	graph := map[string][]string{
		"A": {"B", "Z"},
		"B": {"A"},
	}

	_, _, err := mapping.FromAdjacency(graph)
	assert.ErrorIs(t, err, mapping.ErrUnknownNode)
}

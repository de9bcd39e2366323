package mapfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/koenigsberg/mapfile"
	"github.com/katalvlaran/koenigsberg/mapping"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestReadGraph_JSON(t *testing.T) {
	path := writeFile(t, "square.graph", `{
		"1": [2, 4],
		"2": [1, 3],
		"3": [2, 4],
		"4": [1, 3]
	}`)

	graph, err := mapfile.ReadGraph(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "4"}, graph["1"], "numeric labels become decimal strings")

	// End to end: the result is normalizable.
	paths, nodes, err := mapping.FromAdjacency(graph)
	require.NoError(t, err)
	m, err := mapping.Normalize(paths, nodes)
	require.NoError(t, err)
	assert.Equal(t, 4, m.PathCount())
}

func TestReadMap_JSON(t *testing.T) {
	path := writeFile(t, "bridges.map", `{
		"paths to nodes": {
			"1": ["C", "D"],
			"2": ["C", "A"],
			"3": ["C", "A"],
			"4": ["A", "B"],
			"5": ["A", "B"],
			"6": ["A", "D"],
			"7": ["B", "D"]
		},
		"nodes to paths": {
			"A": [2, 3, 4, 5, 6],
			"B": [4, 5, 7],
			"C": [1, 2, 3],
			"D": [1, 6, 7]
		}
	}`)

	paths, nodes, err := mapfile.ReadMap(path)
	require.NoError(t, err)
	assert.Len(t, paths, 7)
	assert.Equal(t, []string{"2", "3", "4", "5", "6"}, nodes["A"])

	m, err := mapping.Normalize(paths, nodes)
	require.NoError(t, err)
	assert.Equal(t, 7, m.PathCount())
}

func TestReadMap_JSONMissingKey(t *testing.T) {
	path := writeFile(t, "half.map", `{"paths to nodes": {"1": ["A", "B"]}}`)
	_, _, err := mapfile.ReadMap(path)
	assert.ErrorIs(t, err, mapfile.ErrBadDocument)
}

func TestReadGraph_JSONBadLabel(t *testing.T) {
	path := writeFile(t, "nested.graph", `{"1": [[2, 3]]}`)
	_, err := mapfile.ReadGraph(path)
	assert.ErrorIs(t, err, mapfile.ErrBadDocument)
}

func TestReadGraph_YAML(t *testing.T) {
	path := writeFile(t, "ring.yaml", `
1: [2, 6]
2: [1, 3]
3: [2, 4]
4: [3, 5]
5: [4, 6]
6: [1, 5]
`)

	graph, err := mapfile.ReadGraph(path)
	require.NoError(t, err)
	assert.Len(t, graph, 6)
	assert.ElementsMatch(t, []string{"2", "6"}, graph["1"])
}

func TestReadMap_YAML(t *testing.T) {
	path := writeFile(t, "tiny.yml", `
paths to nodes:
  p: [A, B]
nodes to paths:
  A: [p]
  B: [p]
`)

	paths, nodes, err := mapfile.ReadMap(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, paths["p"])
	assert.Equal(t, []string{"p"}, nodes["A"])

	m, err := mapping.Normalize(paths, nodes)
	require.NoError(t, err)
	assert.Equal(t, 1, m.PathCount())
}

func TestReadGraph_HCL(t *testing.T) {
	path := writeFile(t, "square.hcl", `
node "1" { to = ["2", "4"] }
node "2" { to = ["1", "3"] }
node "3" { to = ["2", "4"] }
node "4" { to = ["1", "3"] }
`)

	graph, err := mapfile.ReadGraph(path)
	require.NoError(t, err)
	assert.Len(t, graph, 4)
	assert.Equal(t, []string{"2", "4"}, graph["1"])
}

func TestReadMap_HCL(t *testing.T) {
	path := writeFile(t, "tiny.hcl", `
path "p" { joins = ["A", "B"] }
node "A" { paths = ["p"] }
node "B" { paths = ["p"] }
`)

	paths, nodes, err := mapfile.ReadMap(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, paths["p"])
	assert.Equal(t, []string{"p"}, nodes["B"])
}

func TestReadGraph_HCLDuplicateBlock(t *testing.T) {
	path := writeFile(t, "dup.hcl", `
node "1" { to = ["2"] }
node "1" { to = ["2"] }
node "2" { to = ["1"] }
`)

	_, err := mapfile.ReadGraph(path)
	assert.ErrorIs(t, err, mapfile.ErrBadDocument)
}

func TestReadGraph_RejectsMapExtension(t *testing.T) {
	path := writeFile(t, "bridges.map", `{
		"paths to nodes": {"p": ["A", "B"]},
		"nodes to paths": {"A": ["p"], "B": ["p"]}
	}`)

	_, err := mapfile.ReadGraph(path)
	assert.ErrorIs(t, err, mapfile.ErrUnknownFormat,
		"a two-mapping file handed to the adjacency reader is a format error")
}

func TestReadMap_RejectsGraphExtension(t *testing.T) {
	path := writeFile(t, "square.graph", `{"1": ["2"], "2": ["1"]}`)

	_, _, err := mapfile.ReadMap(path)
	assert.ErrorIs(t, err, mapfile.ErrUnknownFormat,
		"an adjacency file handed to the two-mapping reader is a format error")
}

func TestReadGraph_UnknownFormat(t *testing.T) {
	path := writeFile(t, "graph.txt", "whatever")
	_, err := mapfile.ReadGraph(path)
	assert.ErrorIs(t, err, mapfile.ErrUnknownFormat)

	_, _, err = mapfile.ReadMap(path)
	assert.ErrorIs(t, err, mapfile.ErrUnknownFormat)
}

func TestReadGraph_MissingFile(t *testing.T) {
	_, err := mapfile.ReadGraph(filepath.Join(t.TempDir(), "absent.graph"))
	assert.Error(t, err)
}

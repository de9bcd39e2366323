package mapfile

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Document keys of the two-mapping (".map") form.
const (
	keyPathsToNodes = "paths to nodes"
	keyNodesToPaths = "nodes to paths"
)

// ReadGraph reads an adjacency description (node → adjacent nodes) from
// path, decoding by extension. The shape-specific ".map" extension is
// rejected here so that handing the wrong kind of file over fails as a
// format error, not a confusing decode error.
func ReadGraph(path string) (map[string][]string, error) {
	switch ext(path) {
	case ".graph", ".json":
		return readGraphJSON(path)
	case ".yaml", ".yml":
		return readGraphYAML(path)
	case ".hcl":
		return readGraphHCL(path)
	default:
		return nil, fmt.Errorf("mapfile: %s is not an adjacency file: %w", path, ErrUnknownFormat)
	}
}

// ReadMap reads the explicit two-mapping description from path, returning
// (pathsToNodes, nodesToPaths). The shape-specific ".graph" extension is
// rejected, mirroring ReadGraph.
func ReadMap(path string) (map[string][]string, map[string][]string, error) {
	switch ext(path) {
	case ".map", ".json":
		return readMapJSON(path)
	case ".yaml", ".yml":
		return readMapYAML(path)
	case ".hcl":
		return readMapHCL(path)
	default:
		return nil, nil, fmt.Errorf("mapfile: %s is not a two-mapping file: %w", path, ErrUnknownFormat)
	}
}

func ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

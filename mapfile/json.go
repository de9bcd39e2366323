package mapfile

import (
	"fmt"
	"os"

	"github.com/bytedance/sonic"
)

// readGraphJSON decodes {"A": ["B", "C"], ...}. Values may be strings or
// numbers; JSON object keys are always strings.
func readGraphJSON(path string) (map[string][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mapfile: read %s: %w", path, err)
	}

	var doc map[string]interface{}
	if err = sonic.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("mapfile: decode %s: %w", path, err)
	}

	graph := make(map[string][]string, len(doc))
	for node, v := range doc {
		list, err := labelList(v)
		if err != nil {
			return nil, fmt.Errorf("mapfile: %s: node %q: %w", path, node, err)
		}
		graph[node] = list
	}

	return graph, nil
}

// readMapJSON decodes the two-mapping document:
//
//	{"paths to nodes": {...}, "nodes to paths": {...}}
func readMapJSON(path string) (map[string][]string, map[string][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("mapfile: read %s: %w", path, err)
	}

	var doc map[string]map[string]interface{}
	if err = sonic.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("mapfile: decode %s: %w", path, err)
	}

	paths, err := mapSection(doc, keyPathsToNodes)
	if err != nil {
		return nil, nil, fmt.Errorf("mapfile: %s: %w", path, err)
	}
	nodes, err := mapSection(doc, keyNodesToPaths)
	if err != nil {
		return nil, nil, fmt.Errorf("mapfile: %s: %w", path, err)
	}

	return paths, nodes, nil
}

// mapSection extracts and reshapes one of the two required top-level keys.
func mapSection(doc map[string]map[string]interface{}, key string) (map[string][]string, error) {
	section, ok := doc[key]
	if !ok {
		return nil, fmt.Errorf("missing %q key: %w", key, ErrBadDocument)
	}

	out := make(map[string][]string, len(section))
	for label, v := range section {
		list, err := labelList(v)
		if err != nil {
			return nil, fmt.Errorf("%q entry %q: %w", key, label, err)
		}
		out[label] = list
	}

	return out, nil
}

package mapping

import (
	"fmt"
	"sort"
)

// FromAdjacency expands a node→{adjacent nodes} description into the
// paths/nodes mapping pair Normalize expects, synthesizing one path per
// unordered adjacent pair. Path labels have the form "(A, B)" with endpoints
// in sorted order, so adjacency descriptions cannot express parallel paths;
// use the explicit two-mapping form for multigraphs.
//
// Adjacency must be symmetric: if A lists B, B must list A. Every destination
// must itself be a key of graph, and every node must have at least one
// neighbor. Violations return ErrAsymmetric, ErrUnknownNode, or
// ErrIsolatedNode.
func FromAdjacency(graph map[string][]string) (map[string][]string, map[string][]string, error) {
	// 1. Validate shape and symmetry.
	var node, dest string
	var dests []string
	for node, dests = range graph {
		if len(dests) == 0 {
			return nil, nil, fmt.Errorf("mapping: node %q has no adjacent nodes: %w", node, ErrIsolatedNode)
		}
		for _, dest = range dests {
			back, ok := graph[dest]
			if !ok {
				return nil, nil, fmt.Errorf("mapping: node %q is adjacent to unknown node %q: %w", node, dest, ErrUnknownNode)
			}
			if !containsLabel(back, node) {
				return nil, nil, fmt.Errorf("mapping: %q lists %q but not vice versa: %w", node, dest, ErrAsymmetric)
			}
		}
	}

	// 2. Collect each unordered pair exactly once.
	pathsToNodes := make(map[string][]string)
	nodesToPaths := make(map[string][]string, len(graph))
	for node, dests = range graph {
		paths := make([]string, 0, len(dests))
		for _, dest = range dests {
			a, b := node, dest
			if a > b {
				a, b = b, a
			}
			label := fmt.Sprintf("(%s, %s)", a, b)
			paths = append(paths, label)
			pathsToNodes[label] = []string{a, b}
		}
		sort.Strings(paths)
		nodesToPaths[node] = paths
	}

	return pathsToNodes, nodesToPaths, nil
}

// containsLabel reports whether list contains s. Lists are short; a linear
// scan beats sorting a copy.
func containsLabel(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}

	return false
}

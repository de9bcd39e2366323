package mapping

import (
	"fmt"
	"sort"
)

// Normalize validates pathsToNodes and nodesToPaths against each other and
// converts them to dense integer-indexed form. IDs are assigned 1..N by
// enumerating each label set in ascending sorted order, so the same
// description always normalizes identically.
//
// Validation is strict: any inconsistency fails with a sentinel error wrapped
// with the offending label. Nothing is repaired silently.
func Normalize(pathsToNodes map[string][]string, nodesToPaths map[string][]string) (*Normalized, error) {
	// 1. Bounds first: the ID spaces are single bytes.
	if len(pathsToNodes) == 0 {
		return nil, ErrNotEnoughPaths
	}
	if len(pathsToNodes) > MaxPaths {
		return nil, fmt.Errorf("mapping: %d paths: %w", len(pathsToNodes), ErrTooManyPaths)
	}
	if len(nodesToPaths) > MaxNodes {
		return nil, fmt.Errorf("mapping: %d nodes: %w", len(nodesToPaths), ErrTooManyNodes)
	}

	// 2. Assign IDs over sorted label sets.
	pathLabels := sortedKeys(pathsToNodes)
	nodeLabels := sortedKeys(nodesToPaths)

	m := &Normalized{
		PathsToNodes: make(map[PathID]Endpoints, len(pathLabels)),
		NodesToPaths: make(map[NodeID][]PathID, len(nodeLabels)),
		PathLabels:   make(map[PathID]string, len(pathLabels)),
		NodeLabels:   make(map[NodeID]string, len(nodeLabels)),
		PathIDs:      make(map[string]PathID, len(pathLabels)),
		NodeIDs:      make(map[string]NodeID, len(nodeLabels)),
	}
	for i, label := range pathLabels {
		id := PathID(i + 1)
		m.PathLabels[id] = label
		m.PathIDs[label] = id
	}
	for i, label := range nodeLabels {
		id := NodeID(i + 1)
		m.NodeLabels[id] = label
		m.NodeIDs[label] = id
	}

	// 3. Translate path endpoints, checking shape and node existence.
	var label string
	var ends []string
	for _, label = range pathLabels {
		ends = pathsToNodes[label]
		if len(ends) != 2 || ends[0] == ends[1] {
			return nil, fmt.Errorf("mapping: path %q joins %d node(s): %w", label, len(ends), ErrEndpointCount)
		}
		a, ok := m.NodeIDs[ends[0]]
		if !ok {
			return nil, fmt.Errorf("mapping: path %q references node %q: %w", label, ends[0], ErrUnknownNode)
		}
		b, ok := m.NodeIDs[ends[1]]
		if !ok {
			return nil, fmt.Errorf("mapping: path %q references node %q: %w", label, ends[1], ErrUnknownNode)
		}
		if a > b {
			a, b = b, a
		}
		m.PathsToNodes[m.PathIDs[label]] = Endpoints{a, b}
	}

	// 4. Translate node path-lists, checking path existence. A node touching
	// no path can never be reached by any trail.
	for _, label = range nodeLabels {
		nid := m.NodeIDs[label]
		list := nodesToPaths[label]
		if len(list) == 0 {
			return nil, fmt.Errorf("mapping: node %q: %w", label, ErrIsolatedNode)
		}
		ids := make([]PathID, 0, len(list))
		for _, p := range list {
			pid, ok := m.PathIDs[p]
			if !ok {
				return nil, fmt.Errorf("mapping: node %q lists path %q: %w", label, p, ErrUnknownPath)
			}
			ids = append(ids, pid)
		}
		// Ascending order gives the solver its deterministic tie-break.
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		m.NodesToPaths[nid] = ids
	}

	// 5. Cross-consistency: every incidence must be recorded on both sides.
	var pid PathID
	var e Endpoints
	for pid, e = range m.PathsToNodes {
		if !containsPath(m.NodesToPaths[e[0]], pid) {
			return nil, fmt.Errorf("mapping: node %q does not list path %q: %w",
				m.NodeLabels[e[0]], m.PathLabels[pid], ErrInconsistent)
		}
		if !containsPath(m.NodesToPaths[e[1]], pid) {
			return nil, fmt.Errorf("mapping: node %q does not list path %q: %w",
				m.NodeLabels[e[1]], m.PathLabels[pid], ErrInconsistent)
		}
	}
	var nid NodeID
	var ids []PathID
	for nid, ids = range m.NodesToPaths {
		for _, pid = range ids {
			e = m.PathsToNodes[pid]
			if e[0] != nid && e[1] != nid {
				return nil, fmt.Errorf("mapping: node %q lists path %q which does not touch it: %w",
					m.NodeLabels[nid], m.PathLabels[pid], ErrInconsistent)
			}
		}
	}

	return m, nil
}

// sortedKeys returns the keys of m in ascending order.
func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// containsPath reports whether the ascending slice ids contains pid.
func containsPath(ids []PathID, pid PathID) bool {
	i := sort.Search(len(ids), func(i int) bool { return ids[i] >= pid })

	return i < len(ids) && ids[i] == pid
}

package mapping

// MaxPaths and MaxNodes bound the dense ID spaces. IDs are single bytes in
// [1,255]; 0 marks an unused slot in the solver's scratch buffer.
const (
	MaxPaths = 255
	MaxNodes = 255
)

// PathID identifies a path (an undirected connection) in normalized form.
type PathID uint8

// NodeID identifies a node (a vertex) in normalized form.
type NodeID uint8

// Endpoints holds the two distinct nodes a path joins, in ascending ID order.
type Endpoints [2]NodeID

// Other returns the endpoint opposite n. Calling it with a node the path does
// not touch returns the first endpoint; Normalize guarantees the solver never
// does that.
func (e Endpoints) Other(n NodeID) NodeID {
	if e[0] == n {
		return e[1]
	}

	return e[0]
}

// Normalized is the integer-indexed form of a validated map description.
// It is produced once per run by Normalize and read-only thereafter.
type Normalized struct {
	// PathsToNodes maps each path ID to its two endpoints.
	PathsToNodes map[PathID]Endpoints

	// NodesToPaths maps each node ID to the paths touching it, in ascending
	// path-ID order. The solver relies on this order for deterministic
	// candidate enumeration.
	NodesToPaths map[NodeID][]PathID

	// PathLabels and NodeLabels are the forward (ID→label) tables.
	PathLabels map[PathID]string
	NodeLabels map[NodeID]string

	// PathIDs and NodeIDs are the reverse (label→ID) tables.
	PathIDs map[string]PathID
	NodeIDs map[string]NodeID
}

// PathCount reports the total number of paths; a trail of this length is a
// complete solution.
func (m *Normalized) PathCount() int { return len(m.PathsToNodes) }

// Nodes returns all node IDs in ascending order.
func (m *Normalized) Nodes() []NodeID {
	ids := make([]NodeID, 0, len(m.NodesToPaths))
	for id := NodeID(1); int(id) <= len(m.NodesToPaths); id++ {
		ids = append(ids, id)
	}

	return ids
}

// TrailLabels translates a trail of path IDs back into the caller's labels.
// Zero bytes (unused scratch slots) are skipped.
func (m *Normalized) TrailLabels(trail []byte) []string {
	labels := make([]string, 0, len(trail))
	for _, b := range trail {
		if b == 0 {
			continue
		}
		labels = append(labels, m.PathLabels[PathID(b)])
	}

	return labels
}

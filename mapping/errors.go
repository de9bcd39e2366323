package mapping

import "errors"

var (
	// ErrNotEnoughPaths indicates the description contains no paths at all;
	// a trail over zero connections is meaningless.
	ErrNotEnoughPaths = errors.New("mapping: description contains no paths")
	// ErrTooManyPaths indicates more than MaxPaths distinct paths.
	ErrTooManyPaths = errors.New("mapping: more than 255 paths")
	// ErrTooManyNodes indicates more than MaxNodes distinct nodes.
	ErrTooManyNodes = errors.New("mapping: more than 255 nodes")
	// ErrEndpointCount indicates a path that does not join exactly two
	// distinct nodes.
	ErrEndpointCount = errors.New("mapping: path must join exactly two distinct nodes")
	// ErrUnknownNode indicates a path endpoint that is absent from the
	// nodes→paths mapping.
	ErrUnknownNode = errors.New("mapping: node not present in nodes-to-paths mapping")
	// ErrUnknownPath indicates a node's path list names a path absent from
	// the paths→nodes mapping.
	ErrUnknownPath = errors.New("mapping: path not present in paths-to-nodes mapping")
	// ErrIsolatedNode indicates a node that touches no path at all; a trail
	// can never reach it, so the description is rejected rather than searched.
	ErrIsolatedNode = errors.New("mapping: node touches no path")
	// ErrInconsistent indicates the two mappings disagree: a path's endpoint
	// does not list that path, or a node lists a path that does not touch it.
	ErrInconsistent = errors.New("mapping: paths and nodes mappings disagree")
	// ErrAsymmetric indicates an adjacency description where A lists B but B
	// does not list A back.
	ErrAsymmetric = errors.New("mapping: adjacency is not symmetric")
)
